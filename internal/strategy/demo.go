package strategy

import (
	"fmt"
	"math"
)

// DemoStrategy is a simple momentum follower for local runs and demos: BUY
// when price jumps up by the threshold ratio since the previous tick, SELL
// when it jumps down. The first tick only primes the reference price.
type DemoStrategy struct {
	id        string
	symbol    string
	orderSize float64
	threshold float64
	lastPrice float64
}

// NewDemoStrategy builds a momentum demo. The threshold is a ratio, so
// 0.001 means a 0.1% move per tick.
func NewDemoStrategy(id, symbol string, size, threshold float64) (*DemoStrategy, error) {
	if symbol == "" {
		return nil, fmt.Errorf("demo %s: symbol is required", id)
	}
	if !(size > 0) {
		return nil, fmt.Errorf("demo %s: order size %g must be positive", id, size)
	}
	if !(threshold > 0) {
		return nil, fmt.Errorf("demo %s: threshold %g must be positive", id, threshold)
	}
	return &DemoStrategy{
		id:        id,
		symbol:    symbol,
		orderSize: size,
		threshold: threshold,
	}, nil
}

func (d *DemoStrategy) ID() string {
	return d.id
}

func (d *DemoStrategy) Name() string { return "demo_" + d.symbol }

func (d *DemoStrategy) OnTick(symbol string, price float64, ind map[string]float64) (*Signal, error) {
	if symbol != "" && symbol != d.symbol {
		return nil, nil
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, nil
	}
	if d.lastPrice == 0 {
		d.lastPrice = price
		return nil, nil
	}

	change := (price - d.lastPrice) / d.lastPrice
	d.lastPrice = price

	if change >= d.threshold {
		return &Signal{
			Action: ActionBuy,
			Symbol: d.symbol,
			Size:   d.orderSize,
			Note:   fmt.Sprintf("demo momentum buy %+.2f%%", change*100),
		}, nil
	}
	if change <= -d.threshold {
		return &Signal{
			Action: ActionSell,
			Symbol: d.symbol,
			Size:   d.orderSize,
			Note:   fmt.Sprintf("demo momentum sell %+.2f%%", change*100),
		}, nil
	}

	return nil, nil
}
