package supplychain

import (
	"context"
	"errors"

	"github.com/xraph/supplychain/distribution"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/retail"
	"github.com/xraph/supplychain/types"
)

// ──────────────────────────────────────────────────
// Retail Subsystem
// ──────────────────────────────────────────────────

// CreateSeller creates a retail outlet for a SELLER-role caller.
func (c *Chain) CreateSeller(ctx context.Context, caller id.Address, in retail.SellerInput) (*retail.Seller, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleSeller); err != nil {
		return nil, err
	}
	if err := boundedField("name", in.Name, retail.MaxNameLen); err != nil {
		return nil, err
	}
	if err := boundedField("description", in.Description, retail.MaxDescriptionLen); err != nil {
		return nil, err
	}
	if err := boundedField("contact_info", in.ContactInfo, retail.MaxContactLen); err != nil {
		return nil, err
	}

	seq, err := checkedIncr(ident.SellerCount)
	if err != nil {
		return nil, err
	}

	seller := &retail.Seller{
		Entity:      types.NewEntity(c.clock.Now()),
		Addr:        id.Derive(id.PrefixSeller, ident.Addr, seq),
		SellerID:    seq,
		Name:        in.Name,
		Description: in.Description,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		ContactInfo: in.ContactInfo,
		Owner:       caller,
	}
	ident.SellerCount = seq

	if err := c.store.CreateSeller(ctx, seller); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitSellerCreated(ctx, seller)
	c.logger.Info("seller created",
		"addr", seller.Addr,
		"seller_id", seller.SellerID,
	)
	return seller, nil
}

// ReceiveProductAsSeller accepts a delivered shipment into the seller's
// stock. The in-transit quantity becomes a SellerStock record, the
// shipment is marked delivered, and the order closes.
func (c *Chain) ReceiveProductAsSeller(ctx context.Context, caller, sellerAddr, orderAddr, logisticsAddr id.Address) (*retail.SellerStock, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleSeller); err != nil {
		return nil, err
	}
	seller, err := c.store.GetSeller(ctx, sellerAddr)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(seller.Owner, caller); err != nil {
		return nil, err
	}
	order, err := c.store.GetOrder(ctx, orderAddr)
	if err != nil {
		return nil, err
	}
	logistics, err := c.store.GetLogistics(ctx, logisticsAddr)
	if err != nil {
		return nil, err
	}
	if logistics.Delivered {
		return nil, ErrAlreadyProcessed
	}

	seq, err := checkedIncr(seller.ProductsCount)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	stock := &retail.SellerStock{
		Entity:      types.NewEntity(now),
		Addr:        id.Derive(id.PrefixSellerStock, seller.Addr, seq),
		SellerID:    seller.SellerID,
		SellerAddr:  seller.Addr,
		ProductID:   logistics.ProductID,
		ProductAddr: order.ProductAddr,
		Quantity:    logistics.Quantity,
	}
	seller.ProductsCount = seq
	seller.Touch(now)

	logistics.Delivered = true
	logistics.DeliveryConfirmed = true
	logistics.Status = distribution.ShipmentStatusDelivered
	logistics.ShipmentEndedAt = now
	logistics.Touch(now)

	order.Status = distribution.OrderStatusDelivered
	order.Touch(now)

	if err := c.store.CreateSellerStock(ctx, stock); err != nil {
		return nil, err
	}
	if err := c.store.UpdateSeller(ctx, seller); err != nil {
		return nil, err
	}
	if err := c.store.UpdateLogistics(ctx, logistics); err != nil {
		return nil, err
	}
	if err := c.store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}

	c.plugins.EmitShipmentDelivered(ctx, logistics)
	c.logger.Info("shipment received",
		"seller", seller.Addr,
		"stock", stock.Addr,
		"quantity", stock.Quantity,
	)
	return stock, nil
}

// BuyProductAsCustomer sells units from a seller's stock to the caller.
// MRP times quantity moves from the caller to the seller, the seller's
// stock shrinks, and the caller's holding of the product accumulates
// across repeat purchases.
func (c *Chain) BuyProductAsCustomer(ctx context.Context, caller, sellerAddr, stockAddr id.Address, quantity uint64) (*retail.CustomerProduct, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if ident.Role != identity.RoleCustomer && !ident.IsCustomer {
		return nil, ErrUnauthorized
	}
	seller, err := c.store.GetSeller(ctx, sellerAddr)
	if err != nil {
		return nil, err
	}
	stock, err := c.store.GetSellerStock(ctx, stockAddr)
	if err != nil {
		return nil, err
	}
	if quantity > stock.Quantity {
		return nil, ErrInsufficientStock
	}
	product, err := c.store.GetProduct(ctx, stock.ProductAddr)
	if err != nil {
		return nil, err
	}

	total, err := product.MRP.Mul(quantity)
	if err != nil {
		return nil, err
	}
	newSellerBalance, err := seller.Balance.Add(total)
	if err != nil {
		return nil, err
	}

	// The holding record is keyed by (customer, product); a repeat
	// purchase lands on the existing record and accumulates.
	holdingAddr := id.CustomerHolding(ident.Addr, product.Addr)
	holding, err := c.store.GetCustomerProduct(ctx, holdingAddr)
	fresh := false
	switch {
	case err == nil:
	case errors.Is(err, ErrCustomerProductNotFound):
		fresh = true
		holding = &retail.CustomerProduct{
			Entity:      types.NewEntity(c.clock.Now()),
			Addr:        holdingAddr,
			ProductID:   product.ProductID,
			ProductAddr: product.Addr,
			SellerAddr:  seller.Addr,
			Owner:       caller,
		}
	default:
		return nil, err
	}
	newHolding, err := checkedAdd(holding.Quantity, quantity)
	if err != nil {
		return nil, err
	}
	newProductCount, err := checkedIncr(ident.ProductCount)
	if err != nil {
		return nil, err
	}
	tx, err := c.stageTransaction(ident, caller, seller.Addr, total)
	if err != nil {
		return nil, err
	}

	if err := c.treasury.Transfer(ctx, caller, seller.Addr, total); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	holding.Quantity = newHolding
	holding.PurchasedAt = now
	holding.Touch(now)
	seller.Balance = newSellerBalance
	seller.Touch(now)
	stock.Quantity -= quantity
	stock.Touch(now)
	ident.ProductCount = newProductCount

	if fresh {
		err = c.store.CreateCustomerProduct(ctx, holding)
	} else {
		err = c.store.UpdateCustomerProduct(ctx, holding)
	}
	if err != nil {
		return nil, err
	}
	if err := c.store.AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}
	if err := c.store.UpdateSeller(ctx, seller); err != nil {
		return nil, err
	}
	if err := c.store.UpdateSellerStock(ctx, stock); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitCustomerPurchase(ctx, holding, quantity, uint64(total))
	c.logger.Info("customer purchase",
		"customer", caller,
		"product", product.Addr,
		"quantity", quantity,
		"total", total,
	)
	return holding, nil
}
