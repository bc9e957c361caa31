package update_restaurant_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	configService "github.com/m04kA/SMC-ReservationService/internal/service/config"
	"github.com/m04kA/SMC-ReservationService/internal/service/config/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "конфигурация не прошла валидацию"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/restaurants/{restaurantId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["restaurantId"]

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Set(r.Context(), restaurantID, &req)
	if err != nil {
		var invalidCfg *configService.InvalidConfigError
		switch {
		case errors.As(err, &invalidCfg):
			h.logger.Warn("PUT /restaurants/{id}/config - Validation failed: restaurant_id=%s, failures=%d",
				restaurantID, len(invalidCfg.Failures))
			handlers.RespondJSON(w, http.StatusBadRequest, &ValidationErrorResponse{
				Code:     "INVALID_CONFIG",
				Message:  msgInvalidConfig,
				Failures: invalidCfg.Failures,
			})

		default:
			h.logger.Error("PUT /restaurants/{id}/config - Failed to update config: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/config - Config updated: restaurant_id=%s", restaurantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
