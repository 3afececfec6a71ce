// Package server is the request/response translation layer around the
// scheduling engine: it turns the caller's department-grouped JSON into
// engine input and the resulting schedule back into a grouped JSON shape. It
// carries no scheduling semantics.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/limaJavier/unitime/internal/config"
	"github.com/limaJavier/unitime/pkg/model"
)

// NewRouter wires the HTTP routes around a scheduler.
func NewRouter(cfg *config.Config, scheduler model.Scheduler) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	h := &handlers{scheduler: scheduler, config: cfg}
	api := router.Group("/api")
	{
		api.GET("/health", h.health)
		api.POST("/generate-timetable", h.generateTimetable)
	}

	return router
}
