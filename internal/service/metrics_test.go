package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Hac254/Sweet-Dreams/internal"
)

func metricsEntry(date string, quality int) internal.SleepEntry {
	return internal.SleepEntry{
		ID:           "e-" + date,
		Date:         date,
		BedTime:      "23:00",
		WakeTime:     "07:00",
		SleepQuality: quality,
		Mood:         "ok",
	}
}

func TestComputeMetricsEmptyDiary(t *testing.T) {
	m, ok := ComputeMetrics(nil, time.Now())
	assert.False(t, ok)
	assert.Equal(t, internal.Metrics{}, m)

	m, ok = ComputeMetrics([]internal.SleepEntry{}, time.Now())
	assert.False(t, ok)
	assert.Equal(t, internal.Metrics{}, m)
}

func TestComputeMetricsAverageAndTotal(t *testing.T) {
	entries := []internal.SleepEntry{
		metricsEntry("2026-08-20", 6),
		metricsEntry("2026-08-21", 7),
		metricsEntry("2026-08-22", 8),
	}

	m, ok := ComputeMetrics(entries, time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.InDelta(t, 7.0, m.AverageQuality, 1e-9)
	assert.Equal(t, 3, m.TotalEntries)
}

func TestComputeMetricsWeekWindow(t *testing.T) {
	today := time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC)
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}

	entries := []internal.SleepEntry{
		metricsEntry(day(0), 7),  // today, included
		metricsEntry(day(-7), 7), // window boundary, included
		metricsEntry(day(-8), 7), // too old
		metricsEntry(day(1), 7),  // future date
	}

	m, ok := ComputeMetrics(entries, today)
	assert.True(t, ok)
	assert.Equal(t, 4, m.TotalEntries)
	assert.Equal(t, 2, m.LastWeekEntries)
}

func TestComputeMetricsSkipsUnparseableDatesInWindow(t *testing.T) {
	today := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	entries := []internal.SleepEntry{
		metricsEntry("2026-08-23", 8),
		metricsEntry("not-a-date", 4),
	}

	m, ok := ComputeMetrics(entries, today)
	assert.True(t, ok)
	// Bad dates still count toward the averages, just not the window.
	assert.Equal(t, 2, m.TotalEntries)
	assert.InDelta(t, 6.0, m.AverageQuality, 1e-9)
	assert.Equal(t, 1, m.LastWeekEntries)
}
