package config

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации ресторана
type ConfigRepository interface {
	Get(ctx context.Context, restaurantID string) (*domain.ReservationConfig, error)
	Set(ctx context.Context, cfg *domain.ReservationConfig) (*domain.ReservationConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
