package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Hac254/Sweet-Dreams/internal"
	"github.com/Hac254/Sweet-Dreams/internal/storage"
)

var validate = validator.New()

type EntryRequest struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	BedTime      string `json:"bed_time" validate:"required,datetime=15:04"`
	WakeTime     string `json:"wake_time" validate:"required,datetime=15:04"`
	SleepQuality int    `json:"sleep_quality" validate:"required,gte=1,lte=10"`
	Mood         string `json:"mood" validate:"required"`
	Notes        string `json:"notes,omitempty" validate:"omitempty"`
}

func ValidateEntryRequest(body *EntryRequest) error {
	return validate.Struct(body)
}

func CreateEntry(ctx context.Context, repo storage.EntryRepository, body *EntryRequest) (*internal.SleepEntry, error) {
	entry := &internal.SleepEntry{
		ID:           uuid.NewString(),
		Date:         body.Date,
		BedTime:      body.BedTime,
		WakeTime:     body.WakeTime,
		SleepQuality: body.SleepQuality,
		Mood:         body.Mood,
		Notes:        body.Notes,
		CreatedAt:    time.Now(),
	}
	if err := repo.AddEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteEntry(ctx context.Context, repo storage.EntryRepository, id string) error {
	return repo.RemoveEntry(ctx, id)
}

func ListEntries(ctx context.Context, repo storage.EntryRepository) ([]internal.SleepEntry, error) {
	return repo.ListEntries(ctx)
}
