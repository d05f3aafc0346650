package identity

import (
	"context"

	"github.com/xraph/supplychain/id"
)

// Store is the persistence surface for identity records.
type Store interface {
	Create(ctx context.Context, ident *Identity) error
	Get(ctx context.Context, addr id.Address) (*Identity, error)
	Update(ctx context.Context, ident *Identity) error
}
