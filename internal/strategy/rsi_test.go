package strategy

import (
	"math"
	"testing"
)

func mustRSI(t *testing.T, period int, oversold, overbought float64) *RSIStrategy {
	t.Helper()
	s, err := NewRSIStrategy("r1", "BTCUSDT", period, oversold, overbought, 1)
	if err != nil {
		t.Fatalf("NewRSIStrategy: %v", err)
	}
	return s
}

// When the tick carries a precomputed rsi value the strategy trades it
// directly, firing each side once until the neutral band re-arms it.
func TestRSIIndicatorDriven(t *testing.T) {
	s := mustRSI(t, 14, 30, 70)

	steps := []struct {
		rsi  float64
		want string
	}{
		{25, ActionBuy},
		{25, ""},  // still armed
		{50, ""},  // neutral, re-arms
		{25, ActionBuy},
		{75, ActionSell},
		{75, ""},
		{50, ""},
		{75, ActionSell},
	}

	for i, st := range steps {
		sig, err := s.OnTick("BTCUSDT", 100, map[string]float64{"rsi": st.rsi})
		if err != nil {
			t.Fatalf("step %d: OnTick returned error: %v", i, err)
		}
		got := ""
		if sig != nil {
			got = sig.Action
		}
		if got != st.want {
			t.Fatalf("step %d (rsi %v): action=%q, expected %q", i, st.rsi, got, st.want)
		}
	}
}

// Threshold comparisons are strict: rsi exactly on a threshold stays neutral.
func TestRSIThresholdsExclusive(t *testing.T) {
	s := mustRSI(t, 14, 30, 70)

	if sig, _ := s.OnTick("BTCUSDT", 100, map[string]float64{"rsi": 30}); sig != nil {
		t.Fatalf("rsi 30: got %+v, expected nil", sig)
	}
	if sig, _ := s.OnTick("BTCUSDT", 100, map[string]float64{"rsi": 70}); sig != nil {
		t.Fatalf("rsi 70: got %+v, expected nil", sig)
	}
}

// Without a precomputed indicator the strategy warms up its own window and
// derives RSI from price changes.
func TestRSISelfComputed(t *testing.T) {
	s := mustRSI(t, 2, 30, 70)

	if sig, _ := s.OnTick("BTCUSDT", 10, nil); sig != nil {
		t.Fatalf("warm-up tick 1: got %+v, expected nil", sig)
	}
	if sig, _ := s.OnTick("BTCUSDT", 11, nil); sig != nil {
		t.Fatalf("warm-up tick 2: got %+v, expected nil", sig)
	}
	// window [10 11 12]: all gains, RSI 100
	sig, _ := s.OnTick("BTCUSDT", 12, nil)
	if sig == nil || sig.Action != ActionSell {
		t.Fatalf("rising window: got %+v, expected SELL", sig)
	}
	// window [11 12 1]: heavy loss, RSI well below 30
	sig, _ = s.OnTick("BTCUSDT", 1, nil)
	if sig == nil || sig.Action != ActionBuy {
		t.Fatalf("crashing window: got %+v, expected BUY", sig)
	}
}

// A NaN indicator value is treated as absent and falls back to the window.
func TestRSIIgnoresNaNIndicator(t *testing.T) {
	s := mustRSI(t, 2, 30, 70)
	nan := map[string]float64{"rsi": math.NaN()}

	if sig, _ := s.OnTick("BTCUSDT", 10, nan); sig != nil {
		t.Fatalf("warm-up tick 1: got %+v, expected nil", sig)
	}
	if sig, _ := s.OnTick("BTCUSDT", 11, nan); sig != nil {
		t.Fatalf("warm-up tick 2: got %+v, expected nil", sig)
	}
	sig, _ := s.OnTick("BTCUSDT", 12, nan)
	if sig == nil || sig.Action != ActionSell {
		t.Fatalf("rising window: got %+v, expected SELL", sig)
	}
}

// Foreign symbols and non-positive prices are ignored.
func TestRSIGates(t *testing.T) {
	s := mustRSI(t, 14, 30, 70)

	if sig, _ := s.OnTick("ETHUSDT", 100, map[string]float64{"rsi": 25}); sig != nil {
		t.Fatalf("foreign symbol: got %+v, expected nil", sig)
	}
	if sig, _ := s.OnTick("BTCUSDT", -1, map[string]float64{"rsi": 25}); sig != nil {
		t.Fatalf("negative price: got %+v, expected nil", sig)
	}
}

// Invalid periods, thresholds and sizes are rejected at construction.
func TestRSIConstructorValidation(t *testing.T) {
	tests := []struct {
		name       string
		period     int
		oversold   float64
		overbought float64
		size       float64
		wantErr    bool
	}{
		{name: "valid", period: 14, oversold: 30, overbought: 70, size: 1},
		{name: "zero period", period: 0, oversold: 30, overbought: 70, size: 1, wantErr: true},
		{name: "zero oversold", period: 14, oversold: 0, overbought: 70, size: 1, wantErr: true},
		{name: "inverted thresholds", period: 14, oversold: 70, overbought: 30, size: 1, wantErr: true},
		{name: "overbought at 100", period: 14, oversold: 30, overbought: 100, size: 1, wantErr: true},
		{name: "zero size", period: 14, oversold: 30, overbought: 70, size: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRSIStrategy("r1", "BTCUSDT", tt.period, tt.oversold, tt.overbought, tt.size)
			if tt.wantErr && err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
