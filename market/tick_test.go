package market

import (
	"math"
	"testing"
)

func TestTickMid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bid      float64
		ask      float64
		expected float64
	}{
		{"simple", 1.0, 3.0, 2.0},
		{"same", 2.5, 2.5, 2.5},
		{"zero", 0.0, 0.0, 0.0},
		{"fractional", 1.1, 1.3, 1.2},
	}

	const tol = 1e-9

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tick := Tick{Bid: tt.bid, Ask: tt.ask}
			got := tick.Mid()
			if math.Abs(got-tt.expected) > tol {
				t.Fatalf("Mid() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTickSpread(t *testing.T) {
	t.Parallel()

	tick := Tick{Bid: 1.0849, Ask: 1.0851}
	if got := tick.Spread(); math.Abs(got-0.0002) > 1e-9 {
		t.Fatalf("Spread() = %v, expected 0.0002", got)
	}
}

func TestTickStore(t *testing.T) {
	t.Parallel()

	ts := NewTickStore()

	if _, err := ts.Get("EUR_USD"); err == nil {
		t.Fatal("expected error for missing tick")
	}

	ts.Set(Tick{Instrument: "EUR_USD", Bid: 1.0849, Ask: 1.0851})

	tick, err := ts.Get("EUR_USD")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if tick.Bid != 1.0849 || tick.Ask != 1.0851 {
		t.Fatalf("unexpected tick %+v", tick)
	}
}
