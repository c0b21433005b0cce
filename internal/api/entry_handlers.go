package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Hac254/Sweet-Dreams/internal"
	"github.com/Hac254/Sweet-Dreams/internal/clock"
	"github.com/Hac254/Sweet-Dreams/internal/service"
)

// entryView is a SleepEntry plus the duration the diary list shows.
type entryView struct {
	internal.SleepEntry
	DurationHours float64 `json:"duration_hours"`
}

func PostEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.EntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateEntry(c.Request.Context(), app.Entries(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save entry")
			return
		}

		HandleCreated(c, app.Logger(), toEntryView(*entry), nil)
	}
}

func GetEntries(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := service.ListEntries(c.Request.Context(), app.Entries())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries")
			return
		}

		views := make([]entryView, 0, len(entries))
		for _, e := range entries {
			views = append(views, toEntryView(e))
		}

		HandleSuccess(c, app.Logger(), views, map[string]any{"count": len(views)})
	}
}

func DeleteEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		// Removing an unknown ID is a silent no-op.
		if err := service.DeleteEntry(c.Request.Context(), app.Entries(), id); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to delete entry")
			return
		}

		HandleSuccess(c, app.Logger(), nil, map[string]any{"id": id})
	}
}

func toEntryView(e internal.SleepEntry) entryView {
	hours, err := clock.SleepDurationStrings(e.BedTime, e.WakeTime)
	if err != nil {
		hours = 0
	}
	return entryView{SleepEntry: e, DurationHours: hours}
}
