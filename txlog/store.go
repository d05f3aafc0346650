package txlog

import (
	"context"

	"github.com/xraph/supplychain/id"
)

// ListOpts bounds a transaction listing.
type ListOpts struct {
	Limit  int
	Offset int
}

// Store is the persistence surface for the transaction log.
type Store interface {
	Append(ctx context.Context, tx *Transaction) error
	Get(ctx context.Context, addr id.Address) (*Transaction, error)
	ListByParty(ctx context.Context, party id.Address, opts ListOpts) ([]*Transaction, error)
}
