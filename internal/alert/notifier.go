package alert

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Notifier delivers operator alerts. Implementations are best effort and
// must never block or fail the tick path.
type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...any)
}

// Stdout logs alerts instead of delivering them anywhere.
type Stdout struct {
	Log zerolog.Logger
}

func NewStdout(log zerolog.Logger) *Stdout { return &Stdout{Log: log} }

func (s *Stdout) Send(msg string)                  { s.Log.Info().Str("alert", msg).Msg("alert") }
func (s *Stdout) Sendf(format string, args ...any) { s.Send(fmt.Sprintf(format, args...)) }

// Noop silently drops alerts; used when no channel is configured.
type Noop struct{}

func (Noop) Send(string)          {}
func (Noop) Sendf(string, ...any) {}

// New picks the delivery channel from configuration: Telegram when both the
// token and chat id are set, otherwise a silent no-op. A broken Telegram
// setup falls back to stdout so alerts stay visible.
func New(token, chatID string, log zerolog.Logger) Notifier {
	if token == "" || chatID == "" {
		log.Debug().Msg("telegram not configured, alerts disabled")
		return Noop{}
	}
	t, err := NewTelegram(token, chatID, log)
	if err != nil {
		log.Warn().Err(err).Msg("telegram init failed, falling back to stdout alerts")
		return NewStdout(log)
	}
	return t
}
