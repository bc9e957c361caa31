package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPendingConfirmation ReservationStatus = "PENDING_CONFIRMATION"
	StatusConfirmed           ReservationStatus = "CONFIRMED"
	StatusCompleted           ReservationStatus = "COMPLETED"
	StatusNoShow              ReservationStatus = "NO_SHOW"
	StatusCanceled            ReservationStatus = "CANCELED"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID           string
	RestaurantID string
	Date         time.Time // date only, time part is always midnight
	Time         types.TimeString
	Guests       int
	Notes        *string
	Status       ReservationStatus

	// Review flags: ReviewEnabled is switched on when the visit completes,
	// Reviewed is set by the review subsystem once a review is left
	ReviewEnabled bool
	Reviewed      bool

	UserID           *string
	AppliedBenefitID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the reservation occupies time on the
// restaurant's timeline and therefore excludes overlapping slots
func (r *Reservation) IsBlocking() bool {
	return r.Status == StatusConfirmed ||
		r.Status == StatusPendingConfirmation ||
		r.Status == StatusCompleted
}

// IsTerminal returns true if the reservation reached a final status
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCompleted ||
		r.Status == StatusNoShow ||
		r.Status == StatusCanceled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return CanTransition(r.Status, StatusCanceled)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	RestaurantID string             // Обязательный параметр
	Date         *time.Time         // Фильтр по дате (опционально)
	Status       *ReservationStatus // Фильтр по статусу (опционально)
	OnlyBlocking bool               // Только бронирования, занимающие время на таймлайне
}
