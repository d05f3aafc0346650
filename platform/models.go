// Package platform holds the global platform configuration singleton:
// the platform owner's payout address and the fee percentage applied by
// the settlement engine to every withdrawal.
package platform

import (
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/types"
)

// DefaultFeePercent is the platform fee applied at bootstrap.
const DefaultFeePercent uint64 = 2

// MaxFeePercent is the upper bound the owner may configure.
const MaxFeePercent uint64 = 5

// Config is the platform configuration record. Created exactly once;
// only the fee percentage is mutable, and only by the owner.
type Config struct {
	types.Entity
	Addr        id.Address `json:"addr"`
	Owner       id.Address `json:"owner"`
	FeePercent  uint64     `json:"fee_percent"`
	Initialized bool       `json:"initialized"`
}
