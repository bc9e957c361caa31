package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/inmemory"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seedReservation(t *testing.T, store *inmemory.ReservationStore, res *domain.Reservation) *domain.Reservation {
	t.Helper()
	created, err := store.Create(context.Background(), res)
	require.NoError(t, err)
	return created
}

func pendingReservation(id string) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		RestaurantID: "rest-1",
		UserID:       ptr.Ptr("user-1"),
		Date:         time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		Time:         "19:00",
		Guests:       2,
		Status:       domain.StatusPendingConfirmation,
	}
}

func newService(store *inmemory.ReservationStore) *Service {
	return NewService(store, nopLogger{})
}

func TestGetByID(t *testing.T) {
	store := inmemory.NewReservationStore()
	seedReservation(t, store, pendingReservation("res-1"))
	svc := newService(store)

	resp, err := svc.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "19:00", resp.Time)

	_, err = svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	store := inmemory.NewReservationStore()
	seedReservation(t, store, pendingReservation("res-1"))
	svc := newService(store)

	resp, err := svc.UpdateStatus(context.Background(), "res-1", &models.UpdateStatusRequest{Status: "CONFIRMED"})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.False(t, resp.ReviewEnabled)

	resp, err = svc.UpdateStatus(context.Background(), "res-1", &models.UpdateStatusRequest{Status: "COMPLETED"})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.Status)
	assert.True(t, resp.ReviewEnabled, "completion unlocks the review")

	stored, err := store.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
	assert.True(t, stored.ReviewEnabled)
}

func TestUpdateStatusAppliesOverrides(t *testing.T) {
	store := inmemory.NewReservationStore()
	seedReservation(t, store, pendingReservation("res-1"))
	svc := newService(store)

	resp, err := svc.UpdateStatus(context.Background(), "res-1", &models.UpdateStatusRequest{
		Status:        "CONFIRMED",
		ReviewEnabled: ptr.Ptr(true),
		Notes:         ptr.Ptr("столик у окна"),
	})
	require.NoError(t, err)
	assert.True(t, resp.ReviewEnabled, "explicit reviewEnabled wins over the transition value")
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "столик у окна", *resp.Notes)

	stored, err := store.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.True(t, stored.ReviewEnabled)
	require.NotNil(t, stored.Notes)
	assert.Equal(t, "столик у окна", *stored.Notes)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	store := inmemory.NewReservationStore()
	seedReservation(t, store, pendingReservation("res-1"))
	svc := newService(store)

	// PENDING_CONFIRMATION -> COMPLETED перескакивает через подтверждение
	_, err := svc.UpdateStatus(context.Background(), "res-1", &models.UpdateStatusRequest{Status: "COMPLETED"})
	require.ErrorIs(t, err, ErrInvalidTransition)

	stored, err := store.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingConfirmation, stored.Status, "rejected transition must not change stored status")
}

func TestUpdateStatusValidation(t *testing.T) {
	store := inmemory.NewReservationStore()
	seedReservation(t, store, pendingReservation("res-1"))
	svc := newService(store)

	_, err := svc.UpdateStatus(context.Background(), "res-1", &models.UpdateStatusRequest{Status: "BANANAS"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "CONFIRMED"})
	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel(t *testing.T) {
	store := inmemory.NewReservationStore()
	seedReservation(t, store, pendingReservation("res-1"))
	svc := newService(store)

	resp, err := svc.Cancel(context.Background(), "res-1", &models.CancelReservationRequest{UserID: ptr.Ptr("user-1")})
	require.NoError(t, err)
	assert.Equal(t, "CANCELED", resp.Status)

	// отменённое бронирование отменить повторно нельзя
	_, err = svc.Cancel(context.Background(), "res-1", &models.CancelReservationRequest{UserID: ptr.Ptr("user-1")})
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancelAccessDenied(t *testing.T) {
	store := inmemory.NewReservationStore()
	seedReservation(t, store, pendingReservation("res-1"))
	svc := newService(store)

	_, err := svc.Cancel(context.Background(), "res-1", &models.CancelReservationRequest{UserID: ptr.Ptr("user-2")})
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Cancel(context.Background(), "res-1", &models.CancelReservationRequest{})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserReservations(t *testing.T) {
	store := inmemory.NewReservationStore()
	seedReservation(t, store, pendingReservation("res-1"))

	confirmed := pendingReservation("res-2")
	confirmed.Status = domain.StatusConfirmed
	seedReservation(t, store, confirmed)

	other := pendingReservation("res-3")
	other.UserID = ptr.Ptr("user-2")
	seedReservation(t, store, other)

	svc := newService(store)

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	resp, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("CONFIRMED"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "res-2", resp.Reservations[0].ID)

	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("BANANAS"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetRestaurantReservations(t *testing.T) {
	store := inmemory.NewReservationStore()
	seedReservation(t, store, pendingReservation("res-1"))

	nextDay := pendingReservation("res-2")
	nextDay.Date = time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC)
	seedReservation(t, store, nextDay)

	svc := newService(store)

	resp, err := svc.GetRestaurantReservations(context.Background(), &models.GetRestaurantReservationsRequest{
		RestaurantID: "rest-1",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	date := time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC)
	resp, err = svc.GetRestaurantReservations(context.Background(), &models.GetRestaurantReservationsRequest{
		RestaurantID: "rest-1",
		Date:         &date,
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "res-2", resp.Reservations[0].ID)
}
