package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Hac254/Sweet-Dreams/internal/catalog"
)

func GetEnvironment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		factors := catalog.EnvironmentFactors()
		HandleSuccess(c, app.Logger(), factors, map[string]any{"count": len(factors)})
	}
}

func GetRelaxationExercises(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		exercises := catalog.RelaxationExercises()
		HandleSuccess(c, app.Logger(), exercises, map[string]any{"count": len(exercises)})
	}
}

func ToggleRelaxation(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := catalog.ExerciseByID(id); !ok {
			HandleError(c, app.Logger(), fmt.Errorf("no exercise with id %q", id), 404, "Unknown relaxation exercise")
			return
		}

		status := app.Player().Toggle(id)
		HandleSuccess(c, app.Logger(), status, nil)
	}
}

func GetPlaybackStatus(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), app.Player().Status(), nil)
	}
}

func GetResources(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		resources := catalog.EducationalResources()
		HandleSuccess(c, app.Logger(), resources, map[string]any{"count": len(resources)})
	}
}
