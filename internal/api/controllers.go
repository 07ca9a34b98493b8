package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"strategy-worker/internal/events"
	"strategy-worker/internal/strategy"
)

// getStatus reports what the worker is running right now.
func (s *Server) getStatus(c *gin.Context) {
	infos := []strategy.Info{}
	if s.Registry != nil {
		infos = s.Registry.List()
	}
	subscribers := 0
	if s.Bus != nil {
		subscribers = s.Bus.Subscribers(events.EventSignal)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"version":     s.Version,
		"uptime":      time.Since(s.startedAt).Round(time.Second).String(),
		"strategies":  infos,
		"subscribers": subscribers,
	})
}
