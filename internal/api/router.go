package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Hac254/Sweet-Dreams/internal/config"
)

// NewRouter wires the middleware stack and every route.
func NewRouter(app App, cfg *config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLogger(app.Logger()))

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-ID")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	g := r.Group("/api")
	{
		g.POST("/entries", PostEntry(app))
		g.GET("/entries", GetEntries(app))
		g.DELETE("/entries/:id", DeleteEntry(app))

		g.GET("/metrics", GetMetrics(app))
		g.GET("/charts", GetCharts(app))

		g.GET("/environment", GetEnvironment(app))

		g.GET("/relaxation", GetRelaxationExercises(app))
		g.POST("/relaxation/:id/toggle", ToggleRelaxation(app))
		g.GET("/relaxation/status", GetPlaybackStatus(app))

		g.GET("/resources", GetResources(app))
	}

	return r
}
