package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Hac254/Sweet-Dreams/internal"
	"github.com/Hac254/Sweet-Dreams/internal/storage"
)

func newTestRepo() *storage.MemoryStore {
	return storage.NewMemoryStore(internal.NewZapLogger(zap.NewNop().Sugar()))
}

func validRequest() *EntryRequest {
	return &EntryRequest{
		Date:         "2026-08-20",
		BedTime:      "23:00",
		WakeTime:     "07:00",
		SleepQuality: 7,
		Mood:         "rested",
	}
}

func TestValidateEntryRequest(t *testing.T) {
	assert.NoError(t, ValidateEntryRequest(validRequest()))

	optionalNotes := validRequest()
	optionalNotes.Notes = "late coffee"
	assert.NoError(t, ValidateEntryRequest(optionalNotes))
}

func TestValidateEntryRequestRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EntryRequest)
	}{
		{"missing date", func(r *EntryRequest) { r.Date = "" }},
		{"wrong date format", func(r *EntryRequest) { r.Date = "20-08-2026" }},
		{"missing bed time", func(r *EntryRequest) { r.BedTime = "" }},
		{"bad bed time", func(r *EntryRequest) { r.BedTime = "25:00" }},
		{"bad wake time", func(r *EntryRequest) { r.WakeTime = "7am" }},
		{"quality below range", func(r *EntryRequest) { r.SleepQuality = 0 }},
		{"quality above range", func(r *EntryRequest) { r.SleepQuality = 11 }},
		{"missing mood", func(r *EntryRequest) { r.Mood = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			assert.Error(t, ValidateEntryRequest(req))
		})
	}
}

func TestCreateEntryAssignsIDAndTimestamp(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	first, err := CreateEntry(ctx, repo, validRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, "2026-08-20", first.Date)
	assert.Equal(t, 7, first.SleepQuality)

	second, err := CreateEntry(ctx, repo, validRequest())
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	entries, err := ListEntries(ctx, repo)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDeleteEntry(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	entry, err := CreateEntry(ctx, repo, validRequest())
	assert.NoError(t, err)

	assert.NoError(t, DeleteEntry(ctx, repo, entry.ID))

	entries, err := ListEntries(ctx, repo)
	assert.NoError(t, err)
	assert.Empty(t, entries)

	// Deleting again is a no-op, not an error.
	assert.NoError(t, DeleteEntry(ctx, repo, entry.ID))
}
