package create_reservation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var validate = validator.New()

// validateRequest валидирует форму запроса (без обращения к конфигурации)
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Guests > domain.MaxGuestsPerQuery {
		return fmt.Errorf("%w: guests must not exceed %d", ErrInvalidInput, domain.MaxGuestsPerQuery)
	}

	return nil
}

// validateAgainstConfig проверяет ограничения, зависящие от конфигурации ресторана
func validateAgainstConfig(req *Request, cfg *domain.ReservationConfig) error {
	if req.Guests > cfg.Rules.MaxPeoplePerReservation {
		return fmt.Errorf("%w: guests must not exceed %d", ErrInvalidInput, cfg.Rules.MaxPeoplePerReservation)
	}
	return nil
}

// determineStatus вычисляет начальный статус бронирования.
// CONFIRMED только при явном сигнале клиента, режиме auto и включённых
// бронированиях; во всех остальных случаях — ожидание подтверждения.
func determineStatus(req *Request, cfg *domain.ReservationConfig) domain.ReservationStatus {
	if req.AutoConfirmed && cfg.ConfirmationMode != domain.ConfirmationManual && cfg.ReservationsEnabled {
		return domain.StatusConfirmed
	}
	return domain.StatusPendingConfirmation
}

// slotInList проверяет членство запрошенного времени в списке доступных слотов
func slotInList(slot types.TimeString, slots []types.TimeString) bool {
	for _, s := range slots {
		if s.Minutes() == slot.Minutes() {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
