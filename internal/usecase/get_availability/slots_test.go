package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func openConfig(ranges map[int][]domain.TimeRange) *domain.ReservationConfig {
	return &domain.ReservationConfig{
		RestaurantID:        "rest-1",
		ReservationsEnabled: true,
		ReservationsPaused:  false,
		WizardCompleted:     true,
		OpeningHours:        ranges,
		Areas: []domain.SeatingArea{
			{ID: "area-1", Name: "Interior", Enabled: true, CapacityPeople: 10, MinPartySize: 2, MaxPartySize: 6},
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

// monday возвращает понедельник в будущем
func monday() time.Time {
	return time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
}

func hoursMonday(ranges ...domain.TimeRange) map[int][]domain.TimeRange {
	return map[int][]domain.TimeRange{
		0: {}, 1: ranges, 2: {}, 3: {}, 4: {}, 5: {}, 6: {},
	}
}

func TestGenerateSlotsStride(t *testing.T) {
	cfg := openConfig(hoursMonday(
		domain.TimeRange{Open: "12:00", Close: "16:00"},
	))

	slots := GenerateSlotsForDay(cfg, monday())
	require.Equal(t, []types.TimeString{"12:00", "13:40"}, slots)

	// соседние слоты отстоят минимум на duration + buffer
	step := cfg.Rules.DurationMinutes + cfg.Rules.BufferMinutes
	for i := 1; i < len(slots); i++ {
		assert.GreaterOrEqual(t, slots[i].Minutes(), slots[i-1].Minutes()+step)
	}
}

func TestGenerateSlotsReservationMustFitBeforeClose(t *testing.T) {
	// 13:40 + 90 = 15:10 > 15:00 — второй слот не помещается
	cfg := openConfig(hoursMonday(
		domain.TimeRange{Open: "12:00", Close: "15:00"},
	))

	slots := GenerateSlotsForDay(cfg, monday())
	assert.Equal(t, []types.TimeString{"12:00"}, slots)
}

func TestGenerateSlotsUnionOfRanges(t *testing.T) {
	// диапазоны в обратном порядке: объединение всё равно отсортировано
	cfg := openConfig(hoursMonday(
		domain.TimeRange{Open: "19:00", Close: "23:00"},
		domain.TimeRange{Open: "12:00", Close: "15:00"},
	))

	slots := GenerateSlotsForDay(cfg, monday())
	require.Equal(t, []types.TimeString{"12:00", "19:00", "20:40"}, slots)
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	cfg := openConfig(hoursMonday(
		domain.TimeRange{Open: "12:00", Close: "15:00"},
	))

	sunday := time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, GenerateSlotsForDay(cfg, sunday))
}

func TestGenerateSlotsGateShortCircuit(t *testing.T) {
	base := func() *domain.ReservationConfig {
		return openConfig(hoursMonday(domain.TimeRange{Open: "12:00", Close: "15:00"}))
	}

	disabled := base()
	disabled.ReservationsEnabled = false
	assert.Empty(t, GenerateSlotsForDay(disabled, monday()))

	paused := base()
	paused.ReservationsPaused = true
	assert.Empty(t, GenerateSlotsForDay(paused, monday()))

	noWizard := base()
	noWizard.WizardCompleted = false
	assert.Empty(t, GenerateSlotsForDay(noWizard, monday()))
}

func TestAvailableSlotsPartySizeAreaGate(t *testing.T) {
	cfg := openConfig(hoursMonday(domain.TimeRange{Open: "12:00", Close: "16:00"}))

	assert.Empty(t, AvailableSlots(cfg, monday(), 1, nil), "below min party size")
	assert.Empty(t, AvailableSlots(cfg, monday(), 7, nil), "above max party size")
	assert.NotEmpty(t, AvailableSlots(cfg, monday(), 4, nil))
}

func TestFilterConflictsExcludesOverlapping(t *testing.T) {
	cfg := openConfig(hoursMonday(domain.TimeRange{Open: "12:00", Close: "16:00"}))

	existing := []*domain.Reservation{
		{ID: "res-1", Time: "12:00", Status: domain.StatusConfirmed},
	}

	// блок-окно [12:00, 13:40): слот 12:00 конфликтует, 13:40 остаётся
	slots := AvailableSlots(cfg, monday(), 4, existing)
	assert.Equal(t, []types.TimeString{"13:40"}, slots)
}

func TestFilterConflictsBlockWindowCoversBuffer(t *testing.T) {
	cfg := openConfig(hoursMonday(domain.TimeRange{Open: "12:00", Close: "16:00"}))

	// блок-окно [12:30, 14:10) накрывает оба кандидата
	existing := []*domain.Reservation{
		{ID: "res-1", Time: "12:30", Status: domain.StatusPendingConfirmation},
	}

	assert.Empty(t, AvailableSlots(cfg, monday(), 4, existing))
}

func TestFilterConflictsIgnoresNonBlockingStatuses(t *testing.T) {
	cfg := openConfig(hoursMonday(domain.TimeRange{Open: "12:00", Close: "16:00"}))

	existing := []*domain.Reservation{
		{ID: "res-1", Time: "12:00", Status: domain.StatusCanceled},
		{ID: "res-2", Time: "13:40", Status: domain.StatusNoShow},
	}

	slots := AvailableSlots(cfg, monday(), 4, existing)
	assert.Equal(t, []types.TimeString{"12:00", "13:40"}, slots)
}

func TestFilterByMinAdvanceIdentityForFutureDate(t *testing.T) {
	slots := []types.TimeString{"12:00", "13:40"}
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	filtered := FilterByMinAdvance(slots, monday(), now, 1)
	assert.Equal(t, slots, filtered, "future dates pass through unchanged")

	// интервал больше суток не трогает завтрашние слоты: порог действует
	// только внутри сегодняшнего дня
	tomorrow := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	filtered = FilterByMinAdvance(slots, tomorrow, now, 30)
	assert.Equal(t, slots, filtered)
}

func TestFilterByMinAdvanceCutsEarlySlotsToday(t *testing.T) {
	slots := []types.TimeString{"12:00", "13:40", "19:00"}
	now := time.Date(2026, time.September, 7, 12, 30, 0, 0, time.UTC)

	// порог 13:30: слот 12:00 отсекается, 13:40 и 19:00 остаются
	filtered := FilterByMinAdvance(slots, monday(), now, 1)
	assert.Equal(t, []types.TimeString{"13:40", "19:00"}, filtered)
}

func TestFilterByMinAdvanceIdentityForPastDate(t *testing.T) {
	slots := []types.TimeString{"12:00", "19:00"}
	now := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)

	// прошедшие даты фильтр не трогает: их отклоняет проверка даты на записи
	assert.Equal(t, slots, FilterByMinAdvance(slots, monday(), now, 1))
}

func TestMinAvailableTimeToday(t *testing.T) {
	now := time.Date(2026, time.September, 7, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, types.TimeString("13:30"), MinAvailableTimeToday(now, 1))
}
