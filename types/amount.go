// Package types provides common types used across the supply chain engine.
package types

import (
	"encoding/json"
	"fmt"
	"math"
)

// AmountDecimals is the number of decimal places between the base unit
// and one whole currency unit. One whole unit is 10^9 base units.
const AmountDecimals = 9

// Unit is one whole currency unit expressed in base units.
const Unit Amount = 1_000_000_000

// Amount represents a monetary value in the smallest currency unit.
// All arithmetic is integer-only and checked: an operation that would
// overflow or underflow returns ErrAmountRange instead of wrapping.
type Amount uint64

// ErrAmountRange is returned by checked arithmetic on overflow or underflow.
var ErrAmountRange = fmt.Errorf("types: amount out of range")

// Units creates an Amount from a count of whole currency units.
func Units(n uint64) (Amount, error) {
	return Amount(n).Mul(uint64(Unit))
}

// Add returns a+b, failing on overflow.
func (a Amount) Add(b Amount) (Amount, error) {
	if b > math.MaxUint64-a {
		return 0, ErrAmountRange
	}
	return a + b, nil
}

// Sub returns a-b, failing on underflow.
func (a Amount) Sub(b Amount) (Amount, error) {
	if b > a {
		return 0, ErrAmountRange
	}
	return a - b, nil
}

// Mul returns a×n, failing on overflow.
func (a Amount) Mul(n uint64) (Amount, error) {
	if a == 0 || n == 0 {
		return 0, nil
	}
	if uint64(a) > math.MaxUint64/n {
		return 0, ErrAmountRange
	}
	return a * Amount(n), nil
}

// Percent returns floor(a × pct / 100), failing on overflow of the
// intermediate product. Used for the platform fee split.
func (a Amount) Percent(pct uint64) (Amount, error) {
	product, err := a.Mul(pct)
	if err != nil {
		return 0, err
	}
	return product / 100, nil
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool { return a == 0 }

// WholeUnits returns the number of complete currency units in the amount.
func (a Amount) WholeUnits() uint64 { return uint64(a / Unit) }

// String returns the amount formatted in whole units with the base-unit
// fraction, e.g. 1500000000 base units render as "1.500000000".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%09d", a/Unit, a%Unit)
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Base    uint64 `json:"base_units"`
		Display string `json:"display"`
	}{
		Base:    uint64(a),
		Display: a.String(),
	})
}

// SumAmounts calculates the checked sum of multiple amounts.
func SumAmounts(values ...Amount) (Amount, error) {
	var total Amount
	for _, v := range values {
		next, err := total.Add(v)
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}
