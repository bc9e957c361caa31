package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByRestaurantWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	SetAppliedBenefit(ctx context.Context, id string, benefitID string) error
}

// ConfigRepository интерфейс репозитория конфигурации ресторана
type ConfigRepository interface {
	Get(ctx context.Context, restaurantID string) (*domain.ReservationConfig, error)
}

// BenefitsClient интерфейс клиента сервиса лояльности.
// Проверка и списание разделены: списывать бенефит можно только после того,
// как бронирование создано.
type BenefitsClient interface {
	Validate(ctx context.Context, benefitID, userID, restaurantID string) error
	Consume(ctx context.Context, benefitID, userID, restaurantID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
