// Package licserver issues and verifies machine-bound license tokens and
// keeps a ledger of everything it signed.
package licserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"strategy-worker/internal/api"
	"strategy-worker/pkg/db"
)

// DefaultValidityDays applies when an issue request does not say how long
// the license should live.
const DefaultValidityDays = 30

const listLimit = 100

// Server wires the HTTP endpoints around the signing secret and the ledger.
type Server struct {
	Router *gin.Engine
	DB     *db.Database
	Secret string
	Log    zerolog.Logger
}

func NewServer(database *db.Database, secret string, log zerolog.Logger) *Server {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(api.RequestIDMiddleware())
	r.Use(api.RequestLogger(log))
	r.Use(api.CORSMiddleware())

	s := &Server{
		Router: r,
		DB:     database,
		Secret: secret,
		Log:    log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.GET("/health", s.health)

	lic := s.Router.Group("/license")
	{
		lic.POST("/issue", s.issueLicense)
		lic.GET("/verify", s.verifyLicense)
		lic.GET("/issued", s.listIssued)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Start(addr string) error {
	return s.Router.Run(addr)
}

func respondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{"code": code, "error": msg})
}
