package storage

import (
	"context"

	"github.com/Hac254/Sweet-Dreams/internal"
)

type EntryRepository interface {
	AddEntry(ctx context.Context, entry *internal.SleepEntry) error
	RemoveEntry(ctx context.Context, id string) error
	ListEntries(ctx context.Context) ([]internal.SleepEntry, error)
}
