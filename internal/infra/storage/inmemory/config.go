package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/config"
)

// ConfigStore потокобезопасное in-memory хранилище конфигураций.
// Возвращает те же сентинельные ошибки, что и Postgres-репозиторий,
// поэтому usecase-слой не различает движки хранения.
type ConfigStore struct {
	mu      sync.RWMutex
	configs map[string]*domain.ReservationConfig
}

// NewConfigStore создает новое in-memory хранилище конфигураций
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		configs: make(map[string]*domain.ReservationConfig),
	}
}

// Get получает конфигурацию ресторана
func (s *ConfigStore) Get(_ context.Context, restaurantID string) (*domain.ReservationConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[restaurantID]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return cloneConfig(cfg), nil
}

// Set полностью заменяет конфигурацию ресторана
func (s *ConfigStore) Set(_ context.Context, cfg *domain.ReservationConfig) (*domain.ReservationConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := cloneConfig(cfg)
	if prev, ok := s.configs[cfg.RestaurantID]; ok {
		stored.CreatedAt = prev.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	s.configs[cfg.RestaurantID] = stored
	return cloneConfig(stored), nil
}

// Delete удаляет конфигурацию ресторана
func (s *ConfigStore) Delete(_ context.Context, restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[restaurantID]; !ok {
		return configRepo.ErrConfigNotFound
	}
	delete(s.configs, restaurantID)
	return nil
}

// cloneConfig делает глубокую копию: хранилище не должно делить
// изменяемое состояние с вызывающим кодом
func cloneConfig(cfg *domain.ReservationConfig) *domain.ReservationConfig {
	out := *cfg

	out.OpeningHours = make(map[int][]domain.TimeRange, len(cfg.OpeningHours))
	for day, ranges := range cfg.OpeningHours {
		out.OpeningHours[day] = append([]domain.TimeRange(nil), ranges...)
	}

	out.Areas = append([]domain.SeatingArea(nil), cfg.Areas...)

	return &out
}
