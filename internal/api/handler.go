package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"strategy-worker/internal/events"
	"strategy-worker/internal/strategy"
)

// Server exposes the monitor endpoints next to the gRPC port: liveness,
// Prometheus metrics, registry status and a websocket feed of signals.
type Server struct {
	Router   *gin.Engine
	Bus      *events.Bus
	Registry *strategy.Registry
	Log      zerolog.Logger
	Version  string

	startedAt time.Time
}

func NewServer(bus *events.Bus, reg *strategy.Registry, log zerolog.Logger, version string) *Server {
	r := gin.New()

	// Middleware stack (order matters!)
	r.Use(gin.Recovery())        // Panic recovery (first)
	r.Use(RequestIDMiddleware()) // Request ID tracking
	r.Use(RequestLogger(log))    // Request logging (after ID is set)
	r.Use(CORSMiddleware())      // CORS (last before routes)

	s := &Server{
		Router:    r,
		Bus:       bus,
		Registry:  reg,
		Log:       log,
		Version:   version,
		startedAt: time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.GET("/health", s.health)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.Router.GET("/ws/signals", s.wsSignals)

	api := s.Router.Group("/api")
	{
		api.GET("/status", s.getStatus)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Start(addr string) error {
	return s.Router.Run(addr)
}
