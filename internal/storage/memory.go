package storage

import (
	"context"
	"sync"

	"github.com/Hac254/Sweet-Dreams/internal"
)

// MemoryStore keeps the diary for the lifetime of the process. Entries
// live in a slice in insertion order plus an id index for deletes.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*internal.SleepEntry
	byID    map[string]*internal.SleepEntry
	logger  internal.Logger
}

func NewMemoryStore(logger internal.Logger) *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]*internal.SleepEntry),
		logger: logger,
	}
}

// AddEntry stores a copy of the entry. Re-adding an existing ID updates
// the stored entry without disturbing its position.
func (s *MemoryStore) AddEntry(ctx context.Context, entry *internal.SleepEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byID[entry.ID]; ok {
		*existing = *entry
		s.logger.Debugf("storage: updated entry %s", entry.ID)
		return nil
	}

	stored := *entry
	s.entries = append(s.entries, &stored)
	s.byID[stored.ID] = &stored
	s.logger.Debugf("storage: added entry %s for %s", stored.ID, stored.Date)
	return nil
}

// RemoveEntry deletes the entry with the given id. Unknown ids are a
// silent no-op.
func (s *MemoryStore) RemoveEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return nil
	}
	delete(s.byID, id)
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.logger.Debugf("storage: removed entry %s", id)
	return nil
}

// ListEntries returns the entries in insertion order. Callers get
// copies, mutating the result never touches the store.
func (s *MemoryStore) ListEntries(ctx context.Context) ([]internal.SleepEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]internal.SleepEntry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = *e
	}
	return entries, nil
}

// --- Compile-time assertions ---
var _ EntryRepository = (*MemoryStore)(nil)
