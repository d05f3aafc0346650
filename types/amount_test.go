package types

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestAmountArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func() (Amount, error)
		want Amount
	}{
		{"Add", func() (Amount, error) { return Amount(100).Add(200) }, 300},
		{"Add zero", func() (Amount, error) { return Amount(100).Add(0) }, 100},
		{"Sub", func() (Amount, error) { return Amount(500).Sub(200) }, 300},
		{"Sub to zero", func() (Amount, error) { return Amount(500).Sub(500) }, 0},
		{"Mul", func() (Amount, error) { return Amount(100).Mul(3) }, 300},
		{"Mul by zero", func() (Amount, error) { return Amount(100).Mul(0) }, 0},
		{"Zero mul", func() (Amount, error) { return Amount(0).Mul(100) }, 0},
		{"Percent", func() (Amount, error) { return Amount(1000).Percent(5) }, 50},
		{"Percent floors", func() (Amount, error) { return Amount(101).Percent(2) }, 2},
		{"Percent zero", func() (Amount, error) { return Amount(1000).Percent(0) }, 0},
		{"Units", func() (Amount, error) { return Units(3) }, 3 * Unit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAmountRangeErrors(t *testing.T) {
	tests := []struct {
		name string
		op   func() (Amount, error)
	}{
		{"Add overflow", func() (Amount, error) { return Amount(math.MaxUint64).Add(1) }},
		{"Sub underflow", func() (Amount, error) { return Amount(100).Sub(101) }},
		{"Mul overflow", func() (Amount, error) { return Amount(math.MaxUint64 / 2).Mul(3) }},
		{"Percent overflow", func() (Amount, error) { return Amount(math.MaxUint64).Percent(2) }},
		{"Units overflow", func() (Amount, error) { return Units(math.MaxUint64) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.op(); err != ErrAmountRange {
				t.Errorf("got %v, want ErrAmountRange", err)
			}
		})
	}
}

func TestSumAmounts(t *testing.T) {
	got, err := SumAmounts(1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6 {
		t.Errorf("got %d, want 6", got)
	}

	if _, err := SumAmounts(math.MaxUint64, 1); err != ErrAmountRange {
		t.Errorf("got %v, want ErrAmountRange", err)
	}
}

func TestAmountDisplay(t *testing.T) {
	tests := []struct {
		name   string
		amount Amount
		want   string
	}{
		{"Zero", 0, "0.000000000"},
		{"One unit", Unit, "1.000000000"},
		{"Fraction", 1_500_000_000, "1.500000000"},
		{"Sub-unit", 42, "0.000000042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.amount.String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAmountWholeUnits(t *testing.T) {
	if got := (2*Unit + 5).WholeUnits(); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if !Amount(0).IsZero() {
		t.Error("expected zero amount")
	}
	if Amount(1).IsZero() {
		t.Error("expected non-zero amount")
	}
}

func TestAmountMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Amount(1_500_000_000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"base_units":1500000000`) {
		t.Errorf("missing base units: %s", data)
	}
	if !strings.Contains(string(data), `"display":"1.500000000"`) {
		t.Errorf("missing display: %s", data)
	}
}
