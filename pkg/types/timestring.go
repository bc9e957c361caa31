package types

import (
	"fmt"
	"regexp"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:mm" format.
// It is the canonical time representation for opening hours, slots and
// reservation start times across the service.
type TimeString string

const minutesPerDay = 24 * 60

var timeStringPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// NewTimeString creates a TimeString from a time.Time, keeping only the
// wall-clock part.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:mm" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinutes converts minutes since midnight to a TimeString.
// Valid input range is [0, 1440); anything else is an error, never a wrap.
func FromMinutes(mins int) (TimeString, error) {
	if mins < 0 || mins >= minutesPerDay {
		return "", fmt.Errorf("minutes out of range [0, %d): %d", minutesPerDay, mins)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", mins/60, mins%60)), nil
}

// Validate checks that the value matches "HH:mm" and is a real wall-clock time.
func (t TimeString) Validate() error {
	if !timeStringPattern.MatchString(string(t)) {
		return fmt.Errorf("invalid time string format: %q, expected HH:mm", string(t))
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	if h > 23 || m > 59 {
		return fmt.Errorf("time out of range: %q", string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:mm" value.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the value as minutes since midnight.
// The value must have been validated; malformed input yields 0.
func (t TimeString) Minutes() int {
	if t.Validate() != nil {
		return 0
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h*60 + m
}

// AddMinutes returns the time shifted by the given number of minutes.
// The result must stay within the same day.
func (t TimeString) AddMinutes(mins int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return FromMinutes(t.Minutes() + mins)
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}
