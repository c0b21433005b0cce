// Package player tracks which relaxation exercise is playing. It holds
// the play and pause state the UI renders, the actual audio element
// lives on the client.
package player

import (
	"sync"

	"github.com/Hac254/Sweet-Dreams/internal"
)

// Player is the playback state for the relaxation tab. At most one
// exercise is selected at a time.
type Player struct {
	mu         sync.Mutex
	exerciseID string
	playing    bool
}

func New() *Player {
	return &Player{}
}

// Toggle plays or pauses the given exercise. Toggling the selected
// exercise flips play and pause, toggling a different one replaces the
// old source entirely and starts it from the top.
func (p *Player) Toggle(exerciseID string) internal.PlaybackStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.exerciseID == exerciseID {
		p.playing = !p.playing
	} else {
		p.exerciseID = exerciseID
		p.playing = true
	}
	return internal.PlaybackStatus{ExerciseID: p.exerciseID, Playing: p.playing}
}

// Stop clears the selection.
func (p *Player) Stop() internal.PlaybackStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.exerciseID = ""
	p.playing = false
	return internal.PlaybackStatus{}
}

// Status reports the current selection without changing it.
func (p *Player) Status() internal.PlaybackStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	return internal.PlaybackStatus{ExerciseID: p.exerciseID, Playing: p.playing}
}
