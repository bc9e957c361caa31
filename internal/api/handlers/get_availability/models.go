package get_availability

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RestaurantID string   `json:"restaurantId"`
	Date         string   `json:"date"`   // "2026-09-07"
	Guests       int      `json:"guests"` // Размер компании
	Slots        []string `json:"slots"`  // ["12:00", "13:40", ...]

	// MinTimeToday минимальное время начала на сегодня, только для date=сегодня
	MinTimeToday *string `json:"minTimeToday,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	out := &AvailabilityResponse{
		RestaurantID: resp.RestaurantID,
		Date:         resp.Date.Format(domain.DateFormat),
		Guests:       resp.Guests,
		Slots:        slots,
	}

	if resp.MinTimeToday != nil {
		minTime := resp.MinTimeToday.String()
		out.MinTimeToday = &minTime
	}

	return out
}
