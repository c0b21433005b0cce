// Package catalog holds the static content behind the dashboard tabs.
// The assessment rows, exercises and articles are fixed configuration
// data, so they live here as package tables and the accessors hand out
// copies.
package catalog

import "github.com/Hac254/Sweet-Dreams/internal"

var environmentFactors = []internal.EnvironmentFactor{
	{
		Category:       "Light",
		Status:         internal.StatusWarning,
		Recommendation: "Dim the lights an hour before bed and keep screens out of the bedroom.",
	},
	{
		Category:       "Temperature",
		Status:         internal.StatusGood,
		Recommendation: "Keep the bedroom between 16 and 19°C for the deepest sleep.",
	},
	{
		Category:       "Noise",
		Status:         internal.StatusWarning,
		Recommendation: "Mask disruptive sounds with earplugs or steady white noise.",
	},
	{
		Category:       "Bed comfort",
		Status:         internal.StatusGood,
		Recommendation: "Replace pillows once a year and rotate the mattress every few months.",
	},
}

var relaxationExercises = []internal.RelaxationExercise{
	{
		ID:              "breathing-478",
		Name:            "4-7-8 Breathing",
		Description:     "Inhale for four counts, hold for seven, exhale for eight.",
		DurationMinutes: 5,
		AudioURL:        "/audio/breathing-478.mp3",
	},
	{
		ID:              "body-scan",
		Name:            "Progressive Body Scan",
		Description:     "Relax each muscle group in turn, from toes to forehead.",
		DurationMinutes: 12,
		AudioURL:        "/audio/body-scan.mp3",
	},
	{
		ID:              "rainfall",
		Name:            "Rainfall Soundscape",
		Description:     "Steady rain on a tin roof to settle a racing mind.",
		DurationMinutes: 30,
		AudioURL:        "/audio/rainfall.mp3",
	},
	{
		ID:              "guided-imagery",
		Name:            "Guided Imagery",
		Description:     "A narrated walk through a quiet forest at dusk.",
		DurationMinutes: 10,
		AudioURL:        "/audio/guided-imagery.mp3",
	},
}

var educationalResources = []internal.EducationalResource{
	{
		ID:             "sleep-hygiene-basics",
		Title:          "Sleep Hygiene Basics",
		Summary:        "The daily habits that set up a good night before you get into bed.",
		Category:       "habits",
		URL:            "/learn/sleep-hygiene-basics",
		ReadingMinutes: 6,
	},
	{
		ID:             "understanding-sleep-cycles",
		Title:          "Understanding Sleep Cycles",
		Summary:        "What happens across the 90-minute cycles and why waking mid-cycle feels rough.",
		Category:       "science",
		URL:            "/learn/understanding-sleep-cycles",
		ReadingMinutes: 8,
	},
	{
		ID:             "caffeine-and-sleep",
		Title:          "Caffeine and Sleep",
		Summary:        "How late-day caffeine lingers in the body and pushes bedtime back.",
		Category:       "habits",
		URL:            "/learn/caffeine-and-sleep",
		ReadingMinutes: 5,
	},
	{
		ID:             "winding-down",
		Title:          "Building a Wind-Down Routine",
		Summary:        "A repeatable last hour that tells the body the day is over.",
		Category:       "routines",
		URL:            "/learn/winding-down",
		ReadingMinutes: 7,
	},
	{
		ID:             "when-to-seek-help",
		Title:          "When to Seek Help",
		Summary:        "Signs that poor sleep has crossed from habit problem to health problem.",
		Category:       "health",
		URL:            "/learn/when-to-seek-help",
		ReadingMinutes: 4,
	},
}

// EnvironmentFactors returns the bedroom assessment rows.
func EnvironmentFactors() []internal.EnvironmentFactor {
	out := make([]internal.EnvironmentFactor, len(environmentFactors))
	copy(out, environmentFactors)
	return out
}

// RelaxationExercises returns the audio exercise list.
func RelaxationExercises() []internal.RelaxationExercise {
	out := make([]internal.RelaxationExercise, len(relaxationExercises))
	copy(out, relaxationExercises)
	return out
}

// ExerciseByID looks up a relaxation exercise.
func ExerciseByID(id string) (internal.RelaxationExercise, bool) {
	for _, e := range relaxationExercises {
		if e.ID == id {
			return e, true
		}
	}
	return internal.RelaxationExercise{}, false
}

// EducationalResources returns the learn tab articles.
func EducationalResources() []internal.EducationalResource {
	out := make([]internal.EducationalResource, len(educationalResources))
	copy(out, educationalResources)
	return out
}
