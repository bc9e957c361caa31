package get_restaurant_config

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/restaurants/{restaurantId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID := vars["restaurantId"]

	result, err := h.service.Get(r.Context(), restaurantID)
	if err != nil {
		h.logger.Error("GET /restaurants/{id}/config - Failed to get config: restaurant_id=%s, error=%v",
			restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /restaurants/{id}/config - Config retrieved: restaurant_id=%s", restaurantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
