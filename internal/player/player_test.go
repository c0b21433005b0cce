package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hac254/Sweet-Dreams/internal"
)

func TestToggleStartsAndPauses(t *testing.T) {
	p := New()

	status := p.Toggle("rainfall")
	assert.Equal(t, internal.PlaybackStatus{ExerciseID: "rainfall", Playing: true}, status)

	status = p.Toggle("rainfall")
	assert.Equal(t, internal.PlaybackStatus{ExerciseID: "rainfall", Playing: false}, status)

	status = p.Toggle("rainfall")
	assert.Equal(t, internal.PlaybackStatus{ExerciseID: "rainfall", Playing: true}, status)
}

func TestToggleSwitchesExercise(t *testing.T) {
	p := New()

	p.Toggle("rainfall")
	status := p.Toggle("body-scan")

	assert.Equal(t, internal.PlaybackStatus{ExerciseID: "body-scan", Playing: true}, status)
}

func TestToggleSwitchesWhilePaused(t *testing.T) {
	p := New()

	p.Toggle("rainfall")
	p.Toggle("rainfall") // paused
	status := p.Toggle("body-scan")

	assert.Equal(t, internal.PlaybackStatus{ExerciseID: "body-scan", Playing: true}, status)
}

func TestStopClearsSelection(t *testing.T) {
	p := New()

	p.Toggle("rainfall")
	status := p.Stop()
	assert.Equal(t, internal.PlaybackStatus{}, status)
	assert.Equal(t, internal.PlaybackStatus{}, p.Status())
}

func TestStatusOnFreshPlayer(t *testing.T) {
	p := New()
	assert.Equal(t, internal.PlaybackStatus{}, p.Status())
}

func TestStatusDoesNotChangeState(t *testing.T) {
	p := New()
	p.Toggle("rainfall")

	first := p.Status()
	second := p.Status()
	assert.Equal(t, first, second)
	assert.True(t, second.Playing)
}
