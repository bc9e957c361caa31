package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleTransitions(t *testing.T) {
	tests := []struct {
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{StatusPendingConfirmation, StatusConfirmed, true},
		{StatusPendingConfirmation, StatusCanceled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCanceled, true},

		{StatusPendingConfirmation, StatusCompleted, false},
		{StatusPendingConfirmation, StatusNoShow, false},
		{StatusConfirmed, StatusPendingConfirmation, false},
		{StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	terminals := []ReservationStatus{StatusCompleted, StatusNoShow, StatusCanceled}

	for _, from := range terminals {
		for _, to := range AllStatuses {
			assert.False(t, CanTransition(from, to), "%s must be terminal", from)
		}

		r := &Reservation{Status: from}
		err := r.Transition(StatusConfirmed)
		require.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, from, r.Status, "status must not change on rejected transition")
	}
}

func TestTransitionToCompletedEnablesReview(t *testing.T) {
	r := &Reservation{Status: StatusConfirmed}
	require.NoError(t, r.Transition(StatusCompleted))
	assert.Equal(t, StatusCompleted, r.Status)
	assert.True(t, r.ReviewEnabled)
	assert.False(t, r.Reviewed)
}

func TestIsBlocking(t *testing.T) {
	blocking := []ReservationStatus{StatusConfirmed, StatusPendingConfirmation, StatusCompleted}
	for _, s := range blocking {
		r := &Reservation{Status: s}
		assert.True(t, r.IsBlocking(), "%s blocks the timeline", s)
	}

	for _, s := range []ReservationStatus{StatusCanceled, StatusNoShow} {
		r := &Reservation{Status: s}
		assert.False(t, r.IsBlocking(), "%s never blocks a slot", s)
	}
}
