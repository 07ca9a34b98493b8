package events

import "time"

// Event enumerates pub/sub topics inside the worker.
type Event string

const (
	// EventSignal carries a SignalEvent each time a strategy decides to act.
	EventSignal Event = "signal"
)

// SignalEvent is the payload published on EventSignal.
type SignalEvent struct {
	StrategyID string    `json:"strategy_id"`
	Action     string    `json:"action"`
	Symbol     string    `json:"symbol"`
	Size       float64   `json:"size"`
	Note       string    `json:"note"`
	At         time.Time `json:"at"`
}
