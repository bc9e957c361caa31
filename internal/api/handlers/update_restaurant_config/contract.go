package update_restaurant_config

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/config/models"
)

type ConfigService interface {
	Set(ctx context.Context, restaurantID string, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
