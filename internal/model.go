package internal

import "time"

// SleepEntry is one recorded sleep session. Entries are immutable once
// created; the store only ever appends or deletes them.
type SleepEntry struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`          // calendar date, 2006-01-02
	BedTime      string    `json:"bed_time"`      // time of day, 15:04
	WakeTime     string    `json:"wake_time"`     // time of day, 15:04
	SleepQuality int       `json:"sleep_quality"` // 1-10 scale
	Mood         string    `json:"mood"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Metrics are the dashboard aggregates over the whole diary.
type Metrics struct {
	AverageQuality  float64 `json:"average_quality"`
	TotalEntries    int     `json:"total_entries"`
	LastWeekEntries int     `json:"last_week_entries"`
}

// FactorStatus rates one bedroom environment factor.
type FactorStatus string

const (
	StatusGood    FactorStatus = "good"
	StatusWarning FactorStatus = "warning"
	StatusBad     FactorStatus = "bad"
)

// EnvironmentFactor is one row of the static bedroom assessment.
type EnvironmentFactor struct {
	Category       string       `json:"category"`
	Status         FactorStatus `json:"status"`
	Recommendation string       `json:"recommendation"`
}

// RelaxationExercise is one audio exercise on the relaxation tab.
type RelaxationExercise struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	AudioURL        string `json:"audio_url"`
}

// EducationalResource is one article on the learn tab.
type EducationalResource struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	Category       string `json:"category"`
	URL            string `json:"url"`
	ReadingMinutes int    `json:"reading_minutes"`
}

// PlaybackStatus reports which relaxation exercise is selected and
// whether its audio is playing. At most one exercise is ever selected.
type PlaybackStatus struct {
	ExerciseID string `json:"exercise_id,omitempty"`
	Playing    bool   `json:"playing"`
}
