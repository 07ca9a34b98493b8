package strategy

import (
	"fmt"
	"math"

	"strategy-worker/internal/indicators"
)

// RSIStrategy trades RSI overbought/oversold levels: BUY when RSI drops below
// the oversold threshold, SELL when it rises above the overbought threshold.
// When the tick carries a precomputed "rsi" indicator that value is used,
// otherwise the strategy derives RSI from its own rolling price window.
type RSIStrategy struct {
	id         string
	symbol     string
	period     int
	oversold   float64
	overbought float64
	orderSize  float64

	prices     []float64
	lastAction string
}

// NewRSIStrategy creates a new RSI strategy. The period must be positive,
// the thresholds must satisfy 0 < oversold < overbought < 100 and the order
// size must be positive.
func NewRSIStrategy(id, symbol string, period int, oversold, overbought, size float64) (*RSIStrategy, error) {
	if symbol == "" {
		return nil, fmt.Errorf("rsi %s: symbol is required", id)
	}
	if period <= 0 {
		return nil, fmt.Errorf("rsi %s: period %d must be positive", id, period)
	}
	if !(oversold > 0 && oversold < overbought && overbought < 100) {
		return nil, fmt.Errorf("rsi %s: thresholds %g/%g must satisfy 0 < oversold < overbought < 100", id, oversold, overbought)
	}
	if !(size > 0) {
		return nil, fmt.Errorf("rsi %s: order size %g must be positive", id, size)
	}
	return &RSIStrategy{
		id:         id,
		symbol:     symbol,
		period:     period,
		oversold:   oversold,
		overbought: overbought,
		orderSize:  size,
		prices:     make([]float64, 0, period+1),
	}, nil
}

func (s *RSIStrategy) ID() string {
	return s.id
}

func (s *RSIStrategy) Name() string { return "rsi_" + s.symbol }

func (s *RSIStrategy) OnTick(symbol string, price float64, ind map[string]float64) (*Signal, error) {
	if symbol != "" && symbol != s.symbol {
		return nil, nil
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, nil
	}

	rsi, ok := ind["rsi"]
	if !ok || math.IsNaN(rsi) {
		rsi, ok = s.computeRSI(price)
		if !ok {
			return nil, nil
		}
	}

	if rsi < s.oversold {
		if s.lastAction == ActionBuy {
			return nil, nil
		}
		s.lastAction = ActionBuy
		return &Signal{
			Action: ActionBuy,
			Symbol: s.symbol,
			Size:   s.orderSize,
			Note:   fmt.Sprintf("rsi oversold %.2f < %.2f", rsi, s.oversold),
		}, nil
	}

	if rsi > s.overbought {
		if s.lastAction == ActionSell {
			return nil, nil
		}
		s.lastAction = ActionSell
		return &Signal{
			Action: ActionSell,
			Symbol: s.symbol,
			Size:   s.orderSize,
			Note:   fmt.Sprintf("rsi overbought %.2f > %.2f", rsi, s.overbought),
		}, nil
	}

	// back in the neutral band, re-arm both sides
	s.lastAction = ""
	return nil, nil
}

// computeRSI folds price into the rolling window and derives RSI once the
// window holds period+1 samples.
func (s *RSIStrategy) computeRSI(price float64) (float64, bool) {
	s.prices = append(s.prices, price)
	if len(s.prices) > s.period+1 {
		s.prices = s.prices[1:]
	}
	if len(s.prices) < s.period+1 {
		return 0, false
	}
	return indicators.RSI(s.prices, s.period), true
}
