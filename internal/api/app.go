package api

import (
	"github.com/Hac254/Sweet-Dreams/internal"
	"github.com/Hac254/Sweet-Dreams/internal/player"
	"github.com/Hac254/Sweet-Dreams/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Entries() storage.EntryRepository
	Player() *player.Player
}

type app struct {
	logger  internal.Logger
	entries storage.EntryRepository
	player  *player.Player
}

func NewApp(logger internal.Logger, entries storage.EntryRepository, p *player.Player) App {
	return &app{logger: logger, entries: entries, player: p}
}

func (a *app) Logger() internal.Logger          { return a.logger }
func (a *app) Entries() storage.EntryRepository { return a.entries }
func (a *app) Player() *player.Player           { return a.player }
