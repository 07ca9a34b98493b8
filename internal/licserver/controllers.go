package licserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"strategy-worker/pkg/db"
	"strategy-worker/pkg/i18n"
	"strategy-worker/pkg/license"
)

type issueRequest struct {
	Machine string `json:"machine"`
	Days    int    `json:"days"`
	Note    string `json:"note"`
}

type issuedLicense struct {
	ID        string    `json:"id"`
	Machine   string    `json:"machine"`
	Token     string    `json:"token"`
	Note      string    `json:"note,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	IssuedAt  time.Time `json:"issued_at"`
}

// issueLicense signs a token bound to the requested machine and records it
// in the ledger.
func (s *Server) issueLicense(c *gin.Context) {
	var req issueRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Machine == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "machine is required")
		return
	}
	if req.Days <= 0 {
		req.Days = DefaultValidityDays
	}

	ttl := time.Duration(req.Days) * 24 * time.Hour
	token, err := license.CreateToken(s.Secret, req.Machine, ttl)
	if err != nil {
		s.Log.Error().Err(err).Msg("token signing failed")
		respondError(c, http.StatusInternalServerError, "SIGN_FAILED", "could not sign token")
		return
	}

	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	row := db.License{
		ID:        uuid.NewString(),
		Machine:   req.Machine,
		Token:     token,
		Note:      req.Note,
		ExpiresAt: expiresAt,
		IssuedAt:  now,
	}
	if err := s.DB.CreateLicense(c.Request.Context(), row); err != nil {
		s.Log.Error().Err(err).Msg("ledger insert failed")
		respondError(c, http.StatusInternalServerError, "LEDGER_WRITE_FAILED", "could not record license")
		return
	}
	s.Log.Info().Msgf(i18n.M().LicenseIssued, req.Machine, expiresAt.Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// verifyLicense checks a token's signature and expiry and reports whether
// this server's ledger knows it.
func (s *Server) verifyLicense(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "token query parameter is required")
		return
	}

	claims, err := license.ParseToken(s.Secret, token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": err.Error()})
		return
	}

	known := false
	if _, err := s.DB.Queries().GetLicenseByToken(c.Request.Context(), token); err == nil {
		known = true
	} else if !errors.Is(err, db.ErrNotFound) {
		s.Log.Error().Err(err).Msg("ledger lookup failed")
	}

	expires := ""
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":      true,
		"machine":    claims.Machine,
		"expires_at": expires,
		"known":      known,
	})
}

// listIssued returns recent ledger rows, optionally scoped to one machine.
func (s *Server) listIssued(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		rows []db.License
		err  error
	)
	if machine := c.Query("machine"); machine != "" {
		rows, err = s.DB.Queries().GetLicensesByMachine(ctx, machine)
	} else {
		rows, err = s.DB.ListRecentLicenses(ctx, listLimit)
	}
	if err != nil {
		s.Log.Error().Err(err).Msg("ledger query failed")
		respondError(c, http.StatusInternalServerError, "LEDGER_READ_FAILED", "could not read ledger")
		return
	}

	out := make([]issuedLicense, 0, len(rows))
	for _, l := range rows {
		out = append(out, issuedLicense{
			ID:        l.ID,
			Machine:   l.Machine,
			Token:     l.Token,
			Note:      l.Note,
			ExpiresAt: l.ExpiresAt,
			IssuedAt:  l.IssuedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"licenses": out, "count": len(out)})
}
