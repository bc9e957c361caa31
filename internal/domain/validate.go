package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel for every configuration validation
// failure; individual checks wrap it with field-level detail.
var ErrInvalidConfig = errors.New("invalid reservation config")

// ValidateTimeRange checks that a range opens strictly before it closes.
func ValidateTimeRange(r TimeRange) error {
	if err := r.Open.Validate(); err != nil {
		return fmt.Errorf("%w: range open time: %v", ErrInvalidConfig, err)
	}
	if err := r.Close.Validate(); err != nil {
		return fmt.Errorf("%w: range close time: %v", ErrInvalidConfig, err)
	}
	if r.Open.Minutes() >= r.Close.Minutes() {
		return fmt.Errorf("%w: close time %s must be later than open time %s", ErrInvalidConfig, r.Close, r.Open)
	}
	return nil
}

// ValidateRangesNoOverlap checks every unordered pair of ranges within a
// day with the half-open interval test: touching endpoints (one range
// closing exactly when the next opens) do not count as overlapping.
func ValidateRangesNoOverlap(ranges []TimeRange) error {
	for _, r := range ranges {
		if err := ValidateTimeRange(r); err != nil {
			return err
		}
	}
	for i := 0; i < len(ranges); i++ {
		aStart := ranges[i].Open.Minutes()
		aEnd := ranges[i].Close.Minutes()
		for j := i + 1; j < len(ranges); j++ {
			bStart := ranges[j].Open.Minutes()
			bEnd := ranges[j].Close.Minutes()
			if aStart < bEnd && aEnd > bStart {
				return fmt.Errorf("%w: ranges %s-%s and %s-%s overlap",
					ErrInvalidConfig,
					ranges[i].Open, ranges[i].Close,
					ranges[j].Open, ranges[j].Close)
			}
		}
	}
	return nil
}

// ValidateAtLeastOneDayOpen checks that not every weekday is closed.
func ValidateAtLeastOneDayOpen(openingHours map[int][]TimeRange) error {
	for _, ranges := range openingHours {
		if len(ranges) > 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: at least one day must be open", ErrInvalidConfig)
}

// ValidateOpeningHours composes the schedule checks across all seven
// weekdays: day-open first, then per-day range validity, then per-day
// overlap. Short-circuits on the first failure.
func ValidateOpeningHours(openingHours map[int][]TimeRange) error {
	if err := ValidateAtLeastOneDayOpen(openingHours); err != nil {
		return err
	}
	for day := 0; day < 7; day++ {
		ranges := openingHours[day]
		for _, r := range ranges {
			if err := ValidateTimeRange(r); err != nil {
				return fmt.Errorf("%w (weekday %d)", err, day)
			}
		}
		if err := ValidateRangesNoOverlap(ranges); err != nil {
			return fmt.Errorf("%w (weekday %d)", err, day)
		}
	}
	return nil
}

// ValidateArea checks an area's capacity and party-size bounds.
// Disabled areas are always valid.
func ValidateArea(a SeatingArea) error {
	if !a.Enabled {
		return nil
	}
	if a.CapacityPeople < 1 {
		return fmt.Errorf("%w: area %q: capacity must be at least 1", ErrInvalidConfig, a.Name)
	}
	if a.MinPartySize < 1 {
		return fmt.Errorf("%w: area %q: min party size must be at least 1", ErrInvalidConfig, a.Name)
	}
	if a.MaxPartySize < a.MinPartySize {
		return fmt.Errorf("%w: area %q: max party size must be >= min party size", ErrInvalidConfig, a.Name)
	}
	return nil
}

// ValidateAreas requires at least one enabled area and validates each one.
func ValidateAreas(areas []SeatingArea) error {
	enabled := 0
	for _, a := range areas {
		if a.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return fmt.Errorf("%w: at least one area must be enabled", ErrInvalidConfig)
	}
	for _, a := range areas {
		if err := ValidateArea(a); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMaxCoherentWithAreas checks the cross-entity invariant: the
// global per-reservation cap must not advertise a party size no enabled
// area can actually seat.
func ValidateMaxCoherentWithAreas(areas []SeatingArea, maxPeoplePerReservation int) error {
	maxArea := 0
	for _, a := range areas {
		if a.Enabled && a.MaxPartySize > maxArea {
			maxArea = a.MaxPartySize
		}
	}
	if maxArea > 0 && maxPeoplePerReservation < maxArea {
		return fmt.Errorf("%w: global max %d must be at least %d (largest area max party size)",
			ErrInvalidConfig, maxPeoplePerReservation, maxArea)
	}
	return nil
}

// ValidateRules checks the construction invariants of reservation rules.
func ValidateRules(rules ReservationRules) error {
	if rules.DurationMinutes < MinDurationMinutes {
		return fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidConfig, MinDurationMinutes)
	}
	if rules.BufferMinutes < MinBufferMinutes {
		return fmt.Errorf("%w: buffer must not be negative", ErrInvalidConfig)
	}
	if rules.MinAdvanceHours < MinAdvanceHours {
		return fmt.Errorf("%w: min advance hours must not be negative", ErrInvalidConfig)
	}
	if rules.MaxPeoplePerReservation < 1 {
		return fmt.Errorf("%w: max people per reservation must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// ValidateConfig runs every check over a full configuration document and
// returns all failures for itemized client display.
func ValidateConfig(cfg *ReservationConfig) []error {
	var failures []error

	if err := ValidateOpeningHours(cfg.OpeningHours); err != nil {
		failures = append(failures, err)
	}
	if err := ValidateAreas(cfg.Areas); err != nil {
		failures = append(failures, err)
	}
	if err := ValidateRules(cfg.Rules); err != nil {
		failures = append(failures, err)
	}
	if err := ValidateMaxCoherentWithAreas(cfg.Areas, cfg.Rules.MaxPeoplePerReservation); err != nil {
		failures = append(failures, err)
	}
	if cfg.ConfirmationMode != ConfirmationAuto && cfg.ConfirmationMode != ConfirmationManual {
		failures = append(failures, fmt.Errorf("%w: confirmation mode must be auto or manual", ErrInvalidConfig))
	}

	return failures
}
