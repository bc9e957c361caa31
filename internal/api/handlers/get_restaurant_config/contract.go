package get_restaurant_config

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/config/models"
)

type ConfigService interface {
	Get(ctx context.Context, restaurantID string) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
