package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/config"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type stubReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (s *stubReservationRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return s.reservations, s.err
}

type stubConfigRepo struct {
	cfg *domain.ReservationConfig
	err error
}

func (s *stubConfigRepo) Get(_ context.Context, _ string) (*domain.ReservationConfig, error) {
	return s.cfg, s.err
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(cfg *domain.ReservationConfig, cfgErr error, reservations []*domain.Reservation, now time.Time) *UseCase {
	uc := NewUseCase(
		&stubReservationRepo{reservations: reservations},
		&stubConfigRepo{cfg: cfg, err: cfgErr},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{t: now}
	return uc
}

func TestExecuteValidation(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, configRepo.ErrConfigNotFound, nil, now)

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing restaurant", &Request{Date: monday(), Guests: 2}},
		{"zero date", &Request{RestaurantID: "rest-1", Guests: 2}},
		{"zero guests", &Request{RestaurantID: "rest-1", Date: monday()}},
		{"too many guests", &Request{RestaurantID: "rest-1", Date: monday(), Guests: domain.MaxGuestsPerQuery + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteDefaultConfigWhenMissing(t *testing.T) {
	// ресторан без конфигурации: дефолт с закрытыми гейтами, слотов нет
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, configRepo.ErrConfigNotFound, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: "rest-unknown",
		Date:         monday(),
		Guests:       2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteFullPipeline(t *testing.T) {
	cfg := openConfig(hoursMonday(domain.TimeRange{Open: "12:00", Close: "16:00"}))
	existing := []*domain.Reservation{
		{ID: "res-1", Time: "12:00", Status: domain.StatusConfirmed},
	}

	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(cfg, nil, existing, now)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: "rest-1",
		Date:         monday(),
		Guests:       4,
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"13:40"}, resp.Slots)
	assert.Nil(t, resp.MinTimeToday, "min time is only reported for today")
}

func TestExecuteMinTimeTodayReported(t *testing.T) {
	cfg := openConfig(hoursMonday(domain.TimeRange{Open: "12:00", Close: "16:00"}))

	// запрос на сегодняшнюю дату: ранний слот отсечён, minTimeToday заполнен
	now := time.Date(2026, time.September, 7, 12, 30, 0, 0, time.UTC)
	uc := newTestUseCase(cfg, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: "rest-1",
		Date:         monday(),
		Guests:       4,
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"13:40"}, resp.Slots)
	require.NotNil(t, resp.MinTimeToday)
	assert.Equal(t, types.TimeString("13:30"), *resp.MinTimeToday)
}

func TestExecuteNotAcceptingReservations(t *testing.T) {
	cfg := openConfig(hoursMonday(domain.TimeRange{Open: "12:00", Close: "16:00"}))
	cfg.ReservationsPaused = true

	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(cfg, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: "rest-1",
		Date:         monday(),
		Guests:       4,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
