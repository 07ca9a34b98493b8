package strategy

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoRoute is returned by Dispatch when no registered instance covers the
// tick's symbol.
var ErrNoRoute = errors.New("no strategy for symbol")

// regEntry pairs an instance with the lock that serializes its ticks.
type regEntry struct {
	mu     sync.Mutex
	symbol string
	strat  Strategy
}

// Registry routes ticks to strategy instances by symbol. Each instance owns
// its own lock, so ticks for one symbol run strictly one at a time while
// ticks for different symbols proceed in parallel.
type Registry struct {
	mu       sync.RWMutex
	bySymbol map[string]*regEntry
	order    []*regEntry
}

func NewRegistry() *Registry {
	return &Registry{bySymbol: make(map[string]*regEntry)}
}

// Add registers an instance under a symbol. A symbol carries at most one
// instance.
func (r *Registry) Add(symbol string, s Strategy) error {
	if symbol == "" {
		return errors.New("registry: symbol is required")
	}
	if s == nil {
		return errors.New("registry: nil strategy")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bySymbol[symbol]; exists {
		return fmt.Errorf("registry: symbol %s already registered", symbol)
	}
	e := &regEntry{symbol: symbol, strat: s}
	r.bySymbol[symbol] = e
	r.order = append(r.order, e)
	return nil
}

// route picks the instance for a symbol: exact match first, otherwise the
// lone registered instance. A lone instance keeps seeing every tick and
// gates unrelated symbols itself.
func (r *Registry) route(symbol string) *regEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.bySymbol[symbol]; ok {
		return e
	}
	if len(r.order) == 1 {
		return r.order[0]
	}
	return nil
}

// Dispatch runs OnTick on the instance covering symbol while holding that
// instance's lock. The returned Signal is nil when the strategy declined to
// act; ErrNoRoute when no instance covers the symbol.
func (r *Registry) Dispatch(symbol string, price float64, ind map[string]float64) (*Signal, error) {
	e := r.route(symbol)
	if e == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoRoute, symbol)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	sig, err := e.strat.OnTick(symbol, price, ind)
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", e.strat.Name(), err)
	}
	if sig != nil {
		sig.StrategyID = e.strat.ID()
	}
	return sig, nil
}

// Info describes one registered instance for status endpoints.
type Info struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// List returns registered instances in registration order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Info, 0, len(r.order))
	for _, e := range r.order {
		out = append(out, Info{ID: e.strat.ID(), Name: e.strat.Name(), Symbol: e.symbol})
	}
	return out
}

// Count returns the number of registered instances.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
