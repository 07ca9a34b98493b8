package strategy

// Actions carried by Signal. Strategies only ever emit BUY or SELL; HOLD is
// substituted at the service boundary when a strategy declines to act.
const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
	ActionHold = "HOLD"
)

// Signal is a decision emitted by a strategy.
type Signal struct {
	StrategyID string // The ID of the strategy instance
	Action     string // BUY, SELL, HOLD
	Symbol     string
	Size       float64
	Note       string
}

// Strategy defines the interface for all strategies.
//
// Implementations do not need to be safe for concurrent use; the Registry
// serializes OnTick calls per instance.
type Strategy interface {
	// ID returns the unique instance ID
	ID() string
	// Name returns the human-readable name
	Name() string
	// OnTick processes a new price update. Returning (nil, nil) means the
	// strategy chose not to act on this tick.
	OnTick(symbol string, price float64, ind map[string]float64) (*Signal, error)
}
