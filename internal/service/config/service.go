package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/config"
	"github.com/m04kA/SMC-ReservationService/internal/service/config/models"
)

// Service сервис для работы с конфигурацией бронирований ресторана
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get получает конфигурацию ресторана.
// Для ресторана без сохранённой конфигурации возвращается дефолтная:
// мастер настройки всегда имеет что показать.
func (s *Service) Get(ctx context.Context, restaurantID string) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for restaurant=%s", restaurantID)

	cfg, err := s.configRepo.Get(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("Get: no config for restaurant=%s, returning defaults", restaurantID)
			return models.FromDomainConfig(domain.DefaultConfig(restaurantID)), nil
		}
		s.logger.Error("Get: repository error for restaurant=%s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Set полностью заменяет конфигурацию ресторана.
// Документ валидируется целиком до записи; все нарушения возвращаются
// одним списком через InvalidConfigError.
func (s *Service) Set(ctx context.Context, restaurantID string, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Set: updating config for restaurant=%s", restaurantID)

	cfg := req.ToDomainConfig(restaurantID)

	if failures := domain.ValidateConfig(cfg); len(failures) > 0 {
		messages := make([]string, 0, len(failures))
		for _, f := range failures {
			messages = append(messages, f.Error())
		}
		s.logger.Warn("Set: config validation failed for restaurant=%s: %d failures", restaurantID, len(failures))
		return nil, &InvalidConfigError{Failures: messages}
	}

	stored, err := s.configRepo.Set(ctx, cfg)
	if err != nil {
		s.logger.Error("Set: repository error for restaurant=%s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Set: successfully updated config for restaurant=%s", restaurantID)
	return models.FromDomainConfig(stored), nil
}
