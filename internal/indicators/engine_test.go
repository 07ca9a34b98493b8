package indicators

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSMA(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	if got := SMA(values, 2); !almostEqual(got, 3.5) {
		t.Errorf("SMA period 2 = %g, expected 3.5", got)
	}
	if got := SMA(values, 4); !almostEqual(got, 2.5) {
		t.Errorf("SMA period 4 = %g, expected 2.5", got)
	}
	if got := SMA(values, 5); got != 0 {
		t.Errorf("SMA with short window = %g, expected 0", got)
	}
	if got := SMA(values, 0); got != 0 {
		t.Errorf("SMA with zero period = %g, expected 0", got)
	}
}

func TestRSI(t *testing.T) {
	rising := []float64{100, 101, 102, 103}
	if got := RSI(rising, 3); !almostEqual(got, 100) {
		t.Errorf("RSI all gains = %g, expected 100", got)
	}

	falling := []float64{103, 102, 101, 100}
	if got := RSI(falling, 3); !almostEqual(got, 0) {
		t.Errorf("RSI all losses = %g, expected 0", got)
	}

	// changes +1, -0.5, +1.5: gain 2.5, loss 0.5, rs 5
	mixed := []float64{100, 101, 100.5, 102}
	want := 100 - 100/6.0
	if got := RSI(mixed, 3); !almostEqual(got, want) {
		t.Errorf("RSI mixed = %g, expected %g", got, want)
	}

	if got := RSI(mixed, 4); got != 0 {
		t.Errorf("RSI with short window = %g, expected 0", got)
	}
}

func TestEngineWarmup(t *testing.T) {
	e := NewEngine(2, 3, 3, 10)

	// First tick can compute nothing.
	values := e.Update("BTCUSDT", 100)
	if len(values) != 0 {
		t.Fatalf("first update produced %v, expected no values", values)
	}

	values = e.Update("BTCUSDT", 101)
	if _, ok := values["sma_short"]; !ok {
		t.Error("sma_short missing after two prices")
	}
	if _, ok := values["rsi"]; ok {
		t.Error("rsi present before its window filled")
	}

	e.Update("BTCUSDT", 102)
	values = e.Update("BTCUSDT", 103)
	if got := values["sma_long"]; !almostEqual(got, 102) {
		t.Errorf("sma_long = %g, expected 102", got)
	}
	if got := values["rsi"]; !almostEqual(got, 100) {
		t.Errorf("rsi = %g, expected 100 for a rising walk", got)
	}
}

func TestEngineKeepsSymbolsApart(t *testing.T) {
	e := NewEngine(2, 2, 2, 10)
	e.Update("BTCUSDT", 100)
	e.Update("BTCUSDT", 110)

	values := e.Update("ETHUSDT", 2000)
	if len(values) != 0 {
		t.Fatalf("fresh symbol produced %v, expected no values", values)
	}
}

func TestEngineTrimsWindow(t *testing.T) {
	e := NewEngine(2, 2, 2, 3)
	for price := 100.0; price < 110; price++ {
		e.Update("BTCUSDT", price)
	}
	if n := len(e.prices["BTCUSDT"]); n != 3 {
		t.Errorf("window length = %d, expected 3", n)
	}
}

func TestEngineWindowGrowsToFitPeriods(t *testing.T) {
	e := NewEngine(2, 5, 9, 1)
	if e.window != 10 {
		t.Errorf("window = %d, expected 10 to fit rsi period 9", e.window)
	}
}
