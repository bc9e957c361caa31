package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openHoursWith(monday []TimeRange) map[int][]TimeRange {
	return map[int][]TimeRange{
		0: {}, 1: monday, 2: {}, 3: {}, 4: {}, 5: {}, 6: {},
	}
}

func TestValidateTimeRange(t *testing.T) {
	assert.NoError(t, ValidateTimeRange(TimeRange{Open: "12:00", Close: "15:00"}))
	assert.Error(t, ValidateTimeRange(TimeRange{Open: "15:00", Close: "12:00"}))
	assert.Error(t, ValidateTimeRange(TimeRange{Open: "12:00", Close: "12:00"}), "zero-length range is invalid")
	assert.Error(t, ValidateTimeRange(TimeRange{Open: "1200", Close: "15:00"}))
}

func TestValidateRangesNoOverlap(t *testing.T) {
	overlapping := []TimeRange{
		{Open: "12:00", Close: "15:00"},
		{Open: "14:00", Close: "16:00"},
	}
	err := ValidateRangesNoOverlap(overlapping)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")

	touching := []TimeRange{
		{Open: "12:00", Close: "15:00"},
		{Open: "15:00", Close: "17:00"},
	}
	assert.NoError(t, ValidateRangesNoOverlap(touching), "touching endpoints do not overlap")

	// порядок вставки не гарантирован: поздний диапазон раньше в списке
	unordered := []TimeRange{
		{Open: "19:00", Close: "23:00"},
		{Open: "12:00", Close: "15:00"},
	}
	assert.NoError(t, ValidateRangesNoOverlap(unordered))
}

func TestValidateAtLeastOneDayOpen(t *testing.T) {
	allClosed := map[int][]TimeRange{0: {}, 1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {}}
	assert.Error(t, ValidateAtLeastOneDayOpen(allClosed))

	oneOpen := openHoursWith([]TimeRange{{Open: "12:00", Close: "15:00"}})
	assert.NoError(t, ValidateAtLeastOneDayOpen(oneOpen))
}

func TestValidateOpeningHoursComposition(t *testing.T) {
	overlapping := openHoursWith([]TimeRange{
		{Open: "12:00", Close: "15:00"},
		{Open: "14:00", Close: "16:00"},
	})
	err := ValidateOpeningHours(overlapping)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")

	shifted := openHoursWith([]TimeRange{
		{Open: "12:00", Close: "15:00"},
		{Open: "15:00", Close: "17:00"},
	})
	assert.NoError(t, ValidateOpeningHours(shifted))
}

func TestValidateArea(t *testing.T) {
	disabled := SeatingArea{Name: "Terraza", Enabled: false, CapacityPeople: 0, MinPartySize: 5, MaxPartySize: 2}
	assert.NoError(t, ValidateArea(disabled), "disabled areas are skipped")

	assert.Error(t, ValidateArea(SeatingArea{Name: "Bar", Enabled: true, CapacityPeople: 0, MinPartySize: 1, MaxPartySize: 4}))
	assert.Error(t, ValidateArea(SeatingArea{Name: "Bar", Enabled: true, CapacityPeople: 10, MinPartySize: 4, MaxPartySize: 2}))
	assert.NoError(t, ValidateArea(SeatingArea{Name: "Bar", Enabled: true, CapacityPeople: 10, MinPartySize: 1, MaxPartySize: 4}))
}

func TestValidateAreas(t *testing.T) {
	assert.Error(t, ValidateAreas(nil))
	assert.Error(t, ValidateAreas([]SeatingArea{{Name: "Interior", Enabled: false}}))

	ok := []SeatingArea{{Name: "Interior", Enabled: true, CapacityPeople: 20, MinPartySize: 1, MaxPartySize: 6}}
	assert.NoError(t, ValidateAreas(ok))
}

func TestValidateMaxCoherentWithAreas(t *testing.T) {
	areas := []SeatingArea{
		{Name: "Interior", Enabled: true, CapacityPeople: 40, MinPartySize: 1, MaxPartySize: 8},
		{Name: "Exterior", Enabled: false, CapacityPeople: 20, MinPartySize: 1, MaxPartySize: 12},
	}

	// только enabled области участвуют: порог 8, а не 12
	assert.Error(t, ValidateMaxCoherentWithAreas(areas, 6))
	assert.NoError(t, ValidateMaxCoherentWithAreas(areas, 8))
	assert.NoError(t, ValidateMaxCoherentWithAreas(areas, 10))
}

func TestValidateConfigItemizesFailures(t *testing.T) {
	cfg := DefaultConfig("rest-1")
	cfg.OpeningHours = map[int][]TimeRange{0: {}, 1: {}, 2: {}, 3: {}, 4: {}, 5: {}, 6: {}}
	cfg.Areas = nil
	cfg.Rules.DurationMinutes = 5

	failures := ValidateConfig(cfg)
	assert.GreaterOrEqual(t, len(failures), 3, "hours, areas and rules failures are all reported")

	valid := DefaultConfig("rest-1")
	assert.Empty(t, ValidateConfig(valid))
}
