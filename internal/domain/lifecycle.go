package domain

import "errors"

// ErrInvalidTransition is returned when a status change is not permitted
// from the reservation's current status.
var ErrInvalidTransition = errors.New("invalid reservation status transition")

// allowedTransitions is the reservation lifecycle state machine.
// Terminal statuses (COMPLETED, NO_SHOW, CANCELED) have no outgoing edges.
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPendingConfirmation: {StatusConfirmed, StatusCanceled},
	StatusConfirmed:           {StatusCompleted, StatusNoShow, StatusCanceled},
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another. Self-transitions are not permitted.
func CanTransition(from, to ReservationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition applies a status change, enforcing the state machine.
// Completing a visit enables the review flow.
func (r *Reservation) Transition(to ReservationStatus) error {
	if !CanTransition(r.Status, to) {
		return ErrInvalidTransition
	}
	r.Status = to
	if to == StatusCompleted {
		r.ReviewEnabled = true
	}
	return nil
}
