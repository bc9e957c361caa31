package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ConfirmationMode controls the initial status of admitted reservations
type ConfirmationMode string

const (
	// ConfirmationAuto: admitted reservations start CONFIRMED when the
	// client signals auto-confirmation intent
	ConfirmationAuto ConfirmationMode = "auto"
	// ConfirmationManual: every admitted reservation starts
	// PENDING_CONFIRMATION and awaits manager approval
	ConfirmationManual ConfirmationMode = "manual"
)

// TimeRange is a single opening interval within a day.
// Invariant: Open < Close as wall-clock minutes.
type TimeRange struct {
	Open  types.TimeString
	Close types.TimeString
}

// SeatingArea is a bookable zone of the restaurant with its own capacity
// and party-size bounds
type SeatingArea struct {
	ID             string
	Name           string
	Enabled        bool
	CapacityPeople int
	MinPartySize   int
	MaxPartySize   int
}

// Fits returns true if the area can seat a party of the given size.
// Party-size bounds are checked independently of raw capacity.
func (a *SeatingArea) Fits(guests int) bool {
	return a.Enabled &&
		guests >= a.MinPartySize &&
		guests <= a.MaxPartySize &&
		a.CapacityPeople >= guests
}

// ReservationRules holds the slot arithmetic parameters of a restaurant
type ReservationRules struct {
	DurationMinutes         int
	BufferMinutes           int
	MaxPeoplePerReservation int
	MinAdvanceHours         int
}

// ReservationConfig is the full bookable schedule of a restaurant (1:1).
// Mutated only through a full-replace set operation, validated beforehand.
type ReservationConfig struct {
	RestaurantID string

	// Operational gates: slots are only produced when
	// enabled && !paused && wizardCompleted
	ReservationsEnabled bool
	ReservationsPaused  bool
	WizardCompleted     bool

	// OpeningHours maps weekday (0=Sunday..6=Saturday) to opening ranges.
	// Chronological order within a day is enforced by validation, not assumed.
	OpeningHours map[int][]TimeRange

	Areas []SeatingArea
	Rules ReservationRules

	ConfirmationMode ConfirmationMode

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsReservations checks the three operational gates
func (c *ReservationConfig) AcceptsReservations() bool {
	return c.ReservationsEnabled && !c.ReservationsPaused && c.WizardCompleted
}

// RangesFor returns the opening ranges for a weekday (0=Sunday..6=Saturday)
func (c *ReservationConfig) RangesFor(weekday int) []TimeRange {
	return c.OpeningHours[weekday]
}

// EnabledAreas returns the areas currently open for booking
func (c *ReservationConfig) EnabledAreas() []SeatingArea {
	out := make([]SeatingArea, 0, len(c.Areas))
	for _, a := range c.Areas {
		if a.Enabled {
			out = append(out, a)
		}
	}
	return out
}

// EligibleAreas returns the enabled areas able to seat a party of the
// given size
func (c *ReservationConfig) EligibleAreas(guests int) []SeatingArea {
	out := make([]SeatingArea, 0, len(c.Areas))
	for _, a := range c.Areas {
		if a.Fits(guests) {
			out = append(out, a)
		}
	}
	return out
}

// MaxEnabledPartySize returns the largest MaxPartySize among enabled areas,
// or 0 when no area is enabled
func (c *ReservationConfig) MaxEnabledPartySize() int {
	max := 0
	for _, a := range c.Areas {
		if a.Enabled && a.MaxPartySize > max {
			max = a.MaxPartySize
		}
	}
	return max
}

// NewArea creates a seating area with a fresh identifier
func NewArea(name string, capacity int) SeatingArea {
	return SeatingArea{
		ID:             fmt.Sprintf("area-%s", uuid.NewString()),
		Name:           name,
		Enabled:        true,
		CapacityPeople: capacity,
		MinPartySize:   1,
		MaxPartySize:   DefaultMaxPartySize,
	}
}

// DefaultConfig returns the safe initial configuration created when a
// restaurant is first referenced: Sunday closed, lunch and dinner ranges
// the rest of the week, two areas, wizard not completed.
func DefaultConfig(restaurantID string) *ReservationConfig {
	weekdayRanges := func(close types.TimeString) []TimeRange {
		return []TimeRange{
			{Open: "12:00", Close: "15:00"},
			{Open: "19:00", Close: close},
		}
	}

	return &ReservationConfig{
		RestaurantID:        restaurantID,
		ReservationsEnabled: false,
		ReservationsPaused:  false,
		WizardCompleted:     false,
		OpeningHours: map[int][]TimeRange{
			0: {},
			1: weekdayRanges("23:00"),
			2: weekdayRanges("23:00"),
			3: weekdayRanges("23:00"),
			4: weekdayRanges("23:00"),
			5: weekdayRanges("23:30"),
			6: weekdayRanges("23:30"),
		},
		Areas: []SeatingArea{
			NewArea("Interior", DefaultInteriorCapacity),
			NewArea("Exterior", DefaultExteriorCapacity),
		},
		Rules: ReservationRules{
			DurationMinutes:         DefaultDurationMinutes,
			BufferMinutes:           DefaultBufferMinutes,
			MaxPeoplePerReservation: DefaultMaxPeoplePerReservation,
			MinAdvanceHours:         DefaultMinAdvanceHours,
		},
		ConfirmationMode: ConfirmationAuto,
	}
}
