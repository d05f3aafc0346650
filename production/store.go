package production

import (
	"context"

	"github.com/xraph/supplychain/id"
)

// Store is the persistence surface for production records.
type Store interface {
	CreateFactory(ctx context.Context, f *Factory) error
	GetFactory(ctx context.Context, addr id.Address) (*Factory, error)
	UpdateFactory(ctx context.Context, f *Factory) error

	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, addr id.Address) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error

	CreateInspection(ctx context.Context, insp *Inspection) error
	GetInspection(ctx context.Context, addr id.Address) (*Inspection, error)
	UpdateInspection(ctx context.Context, insp *Inspection) error
}
