package create_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/inmemory"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type stubBenefits struct {
	validateErr   error
	consumeErr    error
	validateCalls int
	consumeCalls  int
}

func (s *stubBenefits) Validate(_ context.Context, _, _, _ string) error {
	s.validateCalls++
	return s.validateErr
}

func (s *stubBenefits) Consume(_ context.Context, _, _, _ string) error {
	s.consumeCalls++
	return s.consumeErr
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// singleSlotConfig конфигурация с единственным слотом 12:00 (12:00-14:00, 90+10)
func singleSlotConfig() *domain.ReservationConfig {
	return &domain.ReservationConfig{
		RestaurantID:        "rest-1",
		ReservationsEnabled: true,
		WizardCompleted:     true,
		OpeningHours: map[int][]domain.TimeRange{
			0: {}, 1: {{Open: "12:00", Close: "14:00"}}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {},
		},
		Areas: []domain.SeatingArea{
			{ID: "area-1", Name: "Interior", Enabled: true, CapacityPeople: 8, MinPartySize: 1, MaxPartySize: 6},
		},
		Rules: domain.ReservationRules{
			DurationMinutes:         90,
			BufferMinutes:           10,
			MaxPeoplePerReservation: 12,
			MinAdvanceHours:         1,
		},
		ConfirmationMode: domain.ConfirmationAuto,
	}
}

func monday() time.Time {
	return time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
}

type testEnv struct {
	uc       *UseCase
	store    *inmemory.ReservationStore
	benefits *stubBenefits
}

func newTestEnv(t *testing.T, cfg *domain.ReservationConfig, benefits *stubBenefits) *testEnv {
	t.Helper()

	store := inmemory.NewReservationStore()
	configs := inmemory.NewConfigStore()
	if cfg != nil {
		_, err := configs.Set(context.Background(), cfg)
		require.NoError(t, err)
	}

	if benefits == nil {
		benefits = &stubBenefits{}
	}
	uc := NewUseCase(store, configs, benefits, inmemory.NewTxManager(), nopLogger{})
	uc.timeProvider = &fixedTime{t: time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)}

	return &testEnv{uc: uc, store: store, benefits: benefits}
}

func validRequest() *Request {
	return &Request{
		RestaurantID:  "rest-1",
		UserID:        ptr.Ptr("user-1"),
		Date:          monday(),
		Time:          "12:00",
		Guests:        2,
		AutoConfirmed: true,
	}
}

func TestExecuteValidation(t *testing.T) {
	env := newTestEnv(t, singleSlotConfig(), nil)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing restaurant", func(r *Request) { r.RestaurantID = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"missing time", func(r *Request) { r.Time = "" }},
		{"bad time format", func(r *Request) { r.Time = "25:99" }},
		{"zero guests", func(r *Request) { r.Guests = 0 }},
		{"too many guests", func(r *Request) { r.Guests = domain.MaxGuestsPerQuery + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := env.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecutePastDateRejected(t *testing.T) {
	env := newTestEnv(t, singleSlotConfig(), nil)

	req := validRequest()
	req.Date = time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteGuestsAboveConfigLimit(t *testing.T) {
	cfg := singleSlotConfig()
	cfg.Rules.MaxPeoplePerReservation = 4
	env := newTestEnv(t, cfg, nil)

	req := validRequest()
	req.Guests = 5

	_, err := env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteCreatesConfirmedReservation(t *testing.T) {
	env := newTestEnv(t, singleSlotConfig(), nil)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.False(t, resp.ReviewEnabled)
	assert.False(t, resp.Reviewed)

	stored, err := env.store.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
}

func TestExecuteStatusDetermination(t *testing.T) {
	tests := []struct {
		name          string
		mode          domain.ConfirmationMode
		autoConfirmed bool
		enabled       bool
		want          domain.ReservationStatus
	}{
		{"auto mode with client signal", domain.ConfirmationAuto, true, true, domain.StatusConfirmed},
		{"auto mode without client signal", domain.ConfirmationAuto, false, true, domain.StatusPendingConfirmation},
		{"manual mode ignores client signal", domain.ConfirmationManual, true, true, domain.StatusPendingConfirmation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := singleSlotConfig()
			cfg.ConfirmationMode = tt.mode
			cfg.ReservationsEnabled = tt.enabled
			env := newTestEnv(t, cfg, nil)

			req := validRequest()
			req.AutoConfirmed = tt.autoConfirmed

			resp, err := env.uc.Execute(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), resp.Status)
		})
	}
}

func TestExecuteSlotTakenBySecondRequest(t *testing.T) {
	env := newTestEnv(t, singleSlotConfig(), nil)

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecuteConcurrentAdmission(t *testing.T) {
	// ключевой регрессионный тест пути записи: из двух одновременных
	// бронирований одного слота проходит ровно одно
	env := newTestEnv(t, singleSlotConfig(), nil)

	const attempts = 2
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	succeeded, unavailable := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotUnavailable):
			unavailable++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, unavailable)
}

func TestExecuteUnknownRestaurantNotAccepting(t *testing.T) {
	// нет конфигурации: дефолт с закрытыми гейтами, слотов нет
	env := newTestEnv(t, nil, nil)

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecuteMinAdvanceViolation(t *testing.T) {
	env := newTestEnv(t, singleSlotConfig(), nil)

	// запрос на сегодня за полчаса до слота при minAdvanceHours=1
	env.uc.timeProvider = &fixedTime{t: time.Date(2026, time.September, 7, 11, 30, 0, 0, time.UTC)}

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecuteMinAdvanceDoesNotReachFutureDates(t *testing.T) {
	cfg := singleSlotConfig()
	cfg.Rules.MinAdvanceHours = 30
	env := newTestEnv(t, cfg, nil)

	// воскресенье 18:00, бронь на понедельник 12:00: до слота меньше 30 часов,
	// но порог сравнивает минуты внутри сегодняшнего дня и будущие даты не трогает
	env.uc.timeProvider = &fixedTime{t: time.Date(2026, time.September, 6, 18, 0, 0, 0, time.UTC)}

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecuteBenefitApplied(t *testing.T) {
	env := newTestEnv(t, singleSlotConfig(), nil)

	req := validRequest()
	req.BenefitID = ptr.Ptr("benefit-1")

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.AppliedBenefitID)
	assert.Equal(t, "benefit-1", *resp.AppliedBenefitID)
	assert.Equal(t, 1, env.benefits.validateCalls)
	assert.Equal(t, 1, env.benefits.consumeCalls)

	// привязка сохранена, а не только отражена в ответе
	stored, err := env.store.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AppliedBenefitID)
	assert.Equal(t, "benefit-1", *stored.AppliedBenefitID)
}

func TestExecuteBenefitFailureDoesNotBlockReservation(t *testing.T) {
	env := newTestEnv(t, singleSlotConfig(), &stubBenefits{validateErr: errors.New("benefits service down")})

	req := validRequest()
	req.BenefitID = ptr.Ptr("benefit-1")

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err, "loyalty outage must not block admission")
	assert.Nil(t, resp.AppliedBenefitID)
	assert.Equal(t, 0, env.benefits.consumeCalls, "failed validation must not reach consume")
}

func TestExecuteRejectedAdmissionLeavesBenefitUnconsumed(t *testing.T) {
	env := newTestEnv(t, singleSlotConfig(), nil)

	// единственный слот уже занят
	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.UserID = ptr.Ptr("user-2")
	req.BenefitID = ptr.Ptr("benefit-1")

	_, err = env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 0, env.benefits.consumeCalls, "rejected admission must not consume the benefit")
}

func TestExecuteConsumeFailureLeavesReservationWithoutBenefit(t *testing.T) {
	env := newTestEnv(t, singleSlotConfig(), &stubBenefits{consumeErr: errors.New("consume timeout")})

	req := validRequest()
	req.BenefitID = ptr.Ptr("benefit-1")

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err, "failed consume must not undo the created reservation")
	assert.Nil(t, resp.AppliedBenefitID)

	stored, err := env.store.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.AppliedBenefitID)
}
