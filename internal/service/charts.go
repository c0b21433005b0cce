package service

import (
	"sort"

	"github.com/Hac254/Sweet-Dreams/internal"
	"github.com/Hac254/Sweet-Dreams/internal/clock"
)

type QualityPoint struct {
	Date    string `json:"date"`
	Quality int    `json:"quality"`
}

type DurationPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// QualitySeries maps the diary to date-ordered quality points for the
// trend chart.
func QualitySeries(entries []internal.SleepEntry) []QualityPoint {
	sorted := sortedByDate(entries)
	points := make([]QualityPoint, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, QualityPoint{Date: e.Date, Quality: e.SleepQuality})
	}
	return points
}

// DurationSeries maps the diary to date-ordered duration points.
// Entries whose times fail to parse are left out of the series.
func DurationSeries(entries []internal.SleepEntry) []DurationPoint {
	sorted := sortedByDate(entries)
	points := make([]DurationPoint, 0, len(sorted))
	for _, e := range sorted {
		hours, err := clock.SleepDurationStrings(e.BedTime, e.WakeTime)
		if err != nil {
			continue
		}
		points = append(points, DurationPoint{Date: e.Date, Hours: hours})
	}
	return points
}

// sortedByDate copies the entries and orders them by date ascending.
// ISO dates compare lexicographically, and the stable sort keeps same-day
// entries in insertion order.
func sortedByDate(entries []internal.SleepEntry) []internal.SleepEntry {
	sorted := make([]internal.SleepEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}
