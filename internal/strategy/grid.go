package strategy

import (
	"fmt"
	"math"
)

// DefaultMinStepRatio is the re-arm filter used when none is configured:
// price must move 0.2% past a bound before the same side can fire again.
const DefaultMinStepRatio = 0.002

// GridStrategy trades a fixed price band: BUY at or below the lower bound,
// SELL at or above the upper bound, with a small hysteresis so a price
// hovering on a bound does not fire the same side twice.
type GridStrategy struct {
	id           string
	symbol       string
	upperBound   float64
	lowerBound   float64
	orderSize    float64
	lastAction   string
	minStepRatio float64
}

// NewGridStrategy builds a grid over [lower, upper] with the default step filter.
func NewGridStrategy(id, symbol string, lower, upper, size float64) (*GridStrategy, error) {
	return NewGridStrategyWithStep(id, symbol, lower, upper, size, DefaultMinStepRatio)
}

// NewGridStrategyWithStep builds a grid with an explicit re-arm ratio.
// Bounds must satisfy lower < upper, the order size must be positive and the
// ratio must lie in [0, 1). Anything else is a configuration error.
func NewGridStrategyWithStep(id, symbol string, lower, upper, size, minStepRatio float64) (*GridStrategy, error) {
	if symbol == "" {
		return nil, fmt.Errorf("grid %s: symbol is required", id)
	}
	if !(lower < upper) {
		return nil, fmt.Errorf("grid %s: lower bound %g must be below upper bound %g", id, lower, upper)
	}
	if !(size > 0) {
		return nil, fmt.Errorf("grid %s: order size %g must be positive", id, size)
	}
	if !(minStepRatio >= 0 && minStepRatio < 1) {
		return nil, fmt.Errorf("grid %s: min step ratio %g must be in [0, 1)", id, minStepRatio)
	}
	return &GridStrategy{
		id:           id,
		symbol:       symbol,
		upperBound:   upper,
		lowerBound:   lower,
		orderSize:    size,
		minStepRatio: minStepRatio,
	}, nil
}

func (g *GridStrategy) ID() string {
	return g.id
}

func (g *GridStrategy) Name() string { return "grid_" + g.symbol }

// OnTick emits BUY near the lower bound, SELL near the upper bound.
func (g *GridStrategy) OnTick(symbol string, price float64, ind map[string]float64) (*Signal, error) {
	if symbol != "" && symbol != g.symbol {
		return nil, nil
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, nil
	}

	// simple debounce to avoid spamming when price hovers around a bound
	if g.lastAction == ActionBuy && price > g.lowerBound*(1+g.minStepRatio) {
		g.lastAction = ""
	}
	if g.lastAction == ActionSell && price < g.upperBound*(1-g.minStepRatio) {
		g.lastAction = ""
	}

	if price <= g.lowerBound && g.lastAction != ActionBuy {
		g.lastAction = ActionBuy
		return &Signal{
			Action: ActionBuy,
			Symbol: g.symbol,
			Size:   g.orderSize,
			Note:   fmt.Sprintf("grid buy %.2f", price),
		}, nil
	}

	if price >= g.upperBound && g.lastAction != ActionSell {
		g.lastAction = ActionSell
		return &Signal{
			Action: ActionSell,
			Symbol: g.symbol,
			Size:   g.orderSize,
			Note:   fmt.Sprintf("grid sell %.2f", price),
		}, nil
	}

	return nil, nil
}
