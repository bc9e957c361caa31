package get_availability

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID == "" {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrInvalidInput)
	}

	if req.Guests > domain.MaxGuestsPerQuery {
		return fmt.Errorf("%w: guests must not exceed %d", ErrInvalidInput, domain.MaxGuestsPerQuery)
	}

	return nil
}
