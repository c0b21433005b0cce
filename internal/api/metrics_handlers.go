package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hac254/Sweet-Dreams/internal/service"
)

func GetMetrics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := service.ListEntries(c.Request.Context(), app.Entries())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries for metrics")
			return
		}

		metrics, ok := service.ComputeMetrics(entries, time.Now())
		if !ok {
			// An empty diary has no numbers to show, the client renders
			// its add-your-first-entry state instead.
			HandleSuccess(c, app.Logger(), nil, map[string]any{"no_data": true})
			return
		}

		HandleSuccess(c, app.Logger(), metrics, nil)
	}
}

func GetCharts(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := service.ListEntries(c.Request.Context(), app.Entries())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries for charts")
			return
		}

		payload := map[string]any{
			"quality":  service.QualitySeries(entries),
			"duration": service.DurationSeries(entries),
		}
		HandleSuccess(c, app.Logger(), payload, map[string]any{"count": len(entries)})
	}
}
