// Package indicators computes the auxiliary values callers attach to ticks.
// Strategies read them from the tick's indicator map and fall back to their
// own windows when a key is absent.
package indicators

import "sync"

// Engine keeps a rolling price window per symbol and derives indicator
// values from it.
type Engine struct {
	mu      sync.Mutex
	prices  map[string][]float64
	window  int
	shortMA int
	longMA  int
	rsi     int
}

// NewEngine builds an engine with the given periods. The window grows to
// fit the largest period when it is too small.
func NewEngine(shortMA, longMA, rsiPeriod, window int) *Engine {
	if window < longMA {
		window = longMA
	}
	if window < rsiPeriod+1 {
		window = rsiPeriod + 1
	}
	return &Engine{
		prices:  make(map[string][]float64),
		window:  window,
		shortMA: shortMA,
		longMA:  longMA,
		rsi:     rsiPeriod,
	}
}

// Update folds a price into the symbol's window and returns the indicators
// that can already be computed. Keys are absent until their window fills,
// so a warming-up value is never mistaken for a real one.
func (e *Engine) Update(symbol string, price float64) map[string]float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	arr := append(e.prices[symbol], price)
	if len(arr) > e.window {
		arr = arr[len(arr)-e.window:]
	}
	e.prices[symbol] = arr

	values := make(map[string]float64, 3)
	if len(arr) >= e.shortMA {
		values["sma_short"] = SMA(arr, e.shortMA)
	}
	if len(arr) >= e.longMA {
		values["sma_long"] = SMA(arr, e.longMA)
	}
	if len(arr) >= e.rsi+1 {
		values["rsi"] = RSI(arr, e.rsi)
	}
	return values
}
