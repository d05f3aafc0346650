// Package funds defines the raw value-transfer primitive the engine
// consumes. The engine never moves currency itself: it asks a Treasury
// to atomically debit one addressed balance and credit another, and a
// failed transfer aborts the whole calling operation.
package funds

import (
	"context"
	"errors"

	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/types"
)

// ErrInsufficientFunds is returned when the source's usable balance
// (raw balance minus the reserve floor) cannot cover a transfer.
var ErrInsufficientFunds = errors.New("funds: insufficient usable balance")

// Treasury is the raw value-transfer primitive.
//
// Transfer atomically moves amount from one addressed balance to another,
// failing without side effects when the source's usable balance is short.
// UsableBalance reports the balance available for transfer out of an
// address after the reserve floor is retained.
type Treasury interface {
	Transfer(ctx context.Context, from, to id.Address, amount types.Amount) error
	UsableBalance(ctx context.Context, addr id.Address) (types.Amount, error)
}
