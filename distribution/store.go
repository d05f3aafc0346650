package distribution

import (
	"context"

	"github.com/xraph/supplychain/id"
)

// Store is the persistence surface for distribution records.
type Store interface {
	CreateWarehouse(ctx context.Context, w *Warehouse) error
	GetWarehouse(ctx context.Context, addr id.Address) (*Warehouse, error)
	UpdateWarehouse(ctx context.Context, w *Warehouse) error

	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, addr id.Address) (*Order, error)
	UpdateOrder(ctx context.Context, o *Order) error

	CreateLogistics(ctx context.Context, l *Logistics) error
	GetLogistics(ctx context.Context, addr id.Address) (*Logistics, error)
	UpdateLogistics(ctx context.Context, l *Logistics) error
}
