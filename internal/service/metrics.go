package service

import (
	"time"

	"github.com/Hac254/Sweet-Dreams/internal"
)

const dateLayout = "2006-01-02"

// ComputeMetrics aggregates the whole diary. The second return is false
// when there are no entries, callers must not render the zero Metrics
// as real numbers.
//
// The last-week count covers the eight calendar days from a week before
// today through today, both ends included. Today is injected so the
// window is testable.
func ComputeMetrics(entries []internal.SleepEntry, today time.Time) (internal.Metrics, bool) {
	if len(entries) == 0 {
		return internal.Metrics{}, false
	}

	windowEnd := startOfDay(today)
	windowStart := windowEnd.AddDate(0, 0, -7)

	totalQuality := 0
	lastWeek := 0
	for _, e := range entries {
		totalQuality += e.SleepQuality

		date, err := time.ParseInLocation(dateLayout, e.Date, today.Location())
		if err != nil {
			continue
		}
		if !date.Before(windowStart) && !date.After(windowEnd) {
			lastWeek++
		}
	}

	return internal.Metrics{
		AverageQuality:  float64(totalQuality) / float64(len(entries)),
		TotalEntries:    len(entries),
		LastWeekEntries: lastWeek,
	}, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
