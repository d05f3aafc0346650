// Package store defines the unified storage interface for all supply
// chain records. Creation fails when the key already exists; reads
// return an isolated copy so staged mutations are never observable
// until the engine writes them back.
package store

import (
	"context"

	"github.com/xraph/supplychain/distribution"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/platform"
	"github.com/xraph/supplychain/production"
	"github.com/xraph/supplychain/retail"
	"github.com/xraph/supplychain/txlog"
)

// Store is the unified storage interface for all supply chain records.
// Instead of embedding the per-package sub-interfaces, all methods are
// declared explicitly to avoid naming conflicts.
type Store interface {
	// Platform configuration
	CreateConfig(ctx context.Context, cfg *platform.Config) error
	GetConfig(ctx context.Context) (*platform.Config, error)
	UpdateConfig(ctx context.Context, cfg *platform.Config) error

	// Identity registry
	CreateIdentity(ctx context.Context, ident *identity.Identity) error
	GetIdentity(ctx context.Context, addr id.Address) (*identity.Identity, error)
	UpdateIdentity(ctx context.Context, ident *identity.Identity) error

	// Production records
	CreateFactory(ctx context.Context, f *production.Factory) error
	GetFactory(ctx context.Context, addr id.Address) (*production.Factory, error)
	UpdateFactory(ctx context.Context, f *production.Factory) error
	CreateProduct(ctx context.Context, p *production.Product) error
	GetProduct(ctx context.Context, addr id.Address) (*production.Product, error)
	UpdateProduct(ctx context.Context, p *production.Product) error
	CreateInspection(ctx context.Context, insp *production.Inspection) error
	GetInspection(ctx context.Context, addr id.Address) (*production.Inspection, error)
	UpdateInspection(ctx context.Context, insp *production.Inspection) error

	// Distribution records
	CreateWarehouse(ctx context.Context, w *distribution.Warehouse) error
	GetWarehouse(ctx context.Context, addr id.Address) (*distribution.Warehouse, error)
	UpdateWarehouse(ctx context.Context, w *distribution.Warehouse) error
	CreateOrder(ctx context.Context, o *distribution.Order) error
	GetOrder(ctx context.Context, addr id.Address) (*distribution.Order, error)
	UpdateOrder(ctx context.Context, o *distribution.Order) error
	CreateLogistics(ctx context.Context, l *distribution.Logistics) error
	GetLogistics(ctx context.Context, addr id.Address) (*distribution.Logistics, error)
	UpdateLogistics(ctx context.Context, l *distribution.Logistics) error

	// Retail records
	CreateSeller(ctx context.Context, s *retail.Seller) error
	GetSeller(ctx context.Context, addr id.Address) (*retail.Seller, error)
	UpdateSeller(ctx context.Context, s *retail.Seller) error
	CreateSellerStock(ctx context.Context, s *retail.SellerStock) error
	GetSellerStock(ctx context.Context, addr id.Address) (*retail.SellerStock, error)
	UpdateSellerStock(ctx context.Context, s *retail.SellerStock) error
	CreateCustomerProduct(ctx context.Context, c *retail.CustomerProduct) error
	GetCustomerProduct(ctx context.Context, addr id.Address) (*retail.CustomerProduct, error)
	UpdateCustomerProduct(ctx context.Context, c *retail.CustomerProduct) error

	// Transaction log (append-only)
	AppendTransaction(ctx context.Context, tx *txlog.Transaction) error
	GetTransaction(ctx context.Context, addr id.Address) (*txlog.Transaction, error)
	ListTransactionsByParty(ctx context.Context, party id.Address, opts txlog.ListOpts) ([]*txlog.Transaction, error)

	// Core methods
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
