// Package clock does wall-clock arithmetic for the sleep diary. Bed and
// wake times carry no date, so a wake time earlier than the bed time
// means the session crossed midnight.
package clock

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock reading without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// Minutes is the offset from midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// SleepDuration is the hours slept between going to bed and waking up.
// A wake time at or before the bed time is read as the next day, except
// that identical times yield zero rather than a full day.
func SleepDuration(bed, wake TimeOfDay) float64 {
	diff := wake.Minutes() - bed.Minutes()
	if diff < 0 {
		diff += minutesPerDay
	}
	return float64(diff) / 60
}

// SleepDurationStrings parses both times and computes the duration.
func SleepDurationStrings(bed, wake string) (float64, error) {
	b, err := ParseTimeOfDay(bed)
	if err != nil {
		return 0, fmt.Errorf("bed time: %w", err)
	}
	w, err := ParseTimeOfDay(wake)
	if err != nil {
		return 0, fmt.Errorf("wake time: %w", err)
	}
	return SleepDuration(b, w), nil
}
