package supplychain

import (
	"context"

	"github.com/xraph/supplychain/distribution"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/production"
	"github.com/xraph/supplychain/retail"
)

// ──────────────────────────────────────────────────
// Record Queries
// ──────────────────────────────────────────────────

// GetFactory retrieves a factory by address.
func (c *Chain) GetFactory(ctx context.Context, addr id.Address) (*production.Factory, error) {
	return c.store.GetFactory(ctx, addr)
}

// GetProduct retrieves a product by address.
func (c *Chain) GetProduct(ctx context.Context, addr id.Address) (*production.Product, error) {
	return c.store.GetProduct(ctx, addr)
}

// GetInspection retrieves an inspection by address.
func (c *Chain) GetInspection(ctx context.Context, addr id.Address) (*production.Inspection, error) {
	return c.store.GetInspection(ctx, addr)
}

// GetWarehouse retrieves a warehouse by address.
func (c *Chain) GetWarehouse(ctx context.Context, addr id.Address) (*distribution.Warehouse, error) {
	return c.store.GetWarehouse(ctx, addr)
}

// GetOrder retrieves an order by address.
func (c *Chain) GetOrder(ctx context.Context, addr id.Address) (*distribution.Order, error) {
	return c.store.GetOrder(ctx, addr)
}

// GetLogistics retrieves a shipment carrier by address.
func (c *Chain) GetLogistics(ctx context.Context, addr id.Address) (*distribution.Logistics, error) {
	return c.store.GetLogistics(ctx, addr)
}

// GetSeller retrieves a seller by address.
func (c *Chain) GetSeller(ctx context.Context, addr id.Address) (*retail.Seller, error) {
	return c.store.GetSeller(ctx, addr)
}

// GetSellerStock retrieves a seller stock record by address.
func (c *Chain) GetSellerStock(ctx context.Context, addr id.Address) (*retail.SellerStock, error) {
	return c.store.GetSellerStock(ctx, addr)
}

// GetCustomerProduct retrieves a customer holding by address.
func (c *Chain) GetCustomerProduct(ctx context.Context, addr id.Address) (*retail.CustomerProduct, error) {
	return c.store.GetCustomerProduct(ctx, addr)
}

// GetCustomerHolding retrieves the holding of one customer for one
// product, resolving the stable (customer, product) address.
func (c *Chain) GetCustomerHolding(ctx context.Context, owner, product id.Address) (*retail.CustomerProduct, error) {
	return c.store.GetCustomerProduct(ctx, id.CustomerHolding(id.IdentityFor(owner), product))
}
