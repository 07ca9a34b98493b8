package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"strategy-worker/internal/events"
)

// Monitor watches the signal topic and forwards every decision to the
// configured notifier.
type Monitor struct {
	Bus      *events.Bus
	Notifier Notifier
	Log      zerolog.Logger
}

func (m *Monitor) Start(ctx context.Context) {
	if m.Bus == nil || m.Notifier == nil {
		m.Log.Warn().Msg("alert monitor not fully configured; skipping")
		return
	}
	stream, unsub := m.Bus.Subscribe(events.EventSignal, 50)
	go func() {
		defer unsub()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-stream:
				if !ok {
					return
				}
				if ev, ok := msg.(events.SignalEvent); ok {
					m.Notifier.Send(FormatSignal(ev))
				}
			}
		}
	}()
}

// FormatSignal renders one signal for chat delivery.
func FormatSignal(ev events.SignalEvent) string {
	return fmt.Sprintf("[%s] %s %s size=%g (%s)", ev.At.Format(time.RFC3339), ev.Action, ev.Symbol, ev.Size, ev.Note)
}
