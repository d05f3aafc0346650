package supplychain

import (
	"context"

	"github.com/xraph/supplychain/distribution"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/types"
)

// ──────────────────────────────────────────────────
// Distribution Subsystem
// ──────────────────────────────────────────────────

// CreateWarehouse creates a wholesale site for a WAREHOUSE-role caller,
// bound to an existing factory.
func (c *Chain) CreateWarehouse(ctx context.Context, caller, factoryAddr id.Address, in distribution.WarehouseInput) (*distribution.Warehouse, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleWarehouse); err != nil {
		return nil, err
	}
	factory, err := c.store.GetFactory(ctx, factoryAddr)
	if err != nil {
		return nil, err
	}
	if err := matchID(in.FactoryID, factory.FactoryID); err != nil {
		return nil, err
	}
	if err := boundedField("name", in.Name, distribution.MaxNameLen); err != nil {
		return nil, err
	}
	if err := boundedField("description", in.Description, distribution.MaxDescriptionLen); err != nil {
		return nil, err
	}
	if err := boundedField("contact_info", in.ContactInfo, distribution.MaxContactLen); err != nil {
		return nil, err
	}

	seq, err := checkedIncr(ident.WarehouseCount)
	if err != nil {
		return nil, err
	}

	warehouse := &distribution.Warehouse{
		Entity:      types.NewEntity(c.clock.Now()),
		Addr:        id.Derive(id.PrefixWarehouse, ident.Addr, seq),
		WarehouseID: seq,
		FactoryID:   factory.FactoryID,
		Name:        in.Name,
		Description: in.Description,
		ContactInfo: in.ContactInfo,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Owner:       caller,
		Size:        in.Size,
	}
	ident.WarehouseCount = seq

	if err := c.store.CreateWarehouse(ctx, warehouse); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitWarehouseCreated(ctx, warehouse)
	c.logger.Info("warehouse created",
		"addr", warehouse.Addr,
		"warehouse_id", warehouse.WarehouseID,
	)
	return warehouse, nil
}

// BuyProductAsWarehouse purchases factory stock into a warehouse the
// caller owns. Requires the inspection fee to be settled first. The
// purchased quantity moves from the product's stock into the
// warehouse's held stock, and price times quantity moves from the
// caller to the factory.
func (c *Chain) BuyProductAsWarehouse(ctx context.Context, caller, warehouseAddr, productAddr, factoryAddr id.Address, productID, factoryID, quantity uint64) (*distribution.Warehouse, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleWarehouse); err != nil {
		return nil, err
	}
	warehouse, err := c.store.GetWarehouse(ctx, warehouseAddr)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(warehouse.Owner, caller); err != nil {
		return nil, err
	}
	product, err := c.store.GetProduct(ctx, productAddr)
	if err != nil {
		return nil, err
	}
	factory, err := c.store.GetFactory(ctx, factoryAddr)
	if err != nil {
		return nil, err
	}
	if err := matchID(productID, product.ProductID); err != nil {
		return nil, err
	}
	if err := matchID(factoryID, factory.FactoryID); err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, ErrInsufficientStock
	}
	if !product.InspectionFeePaid {
		return nil, ErrFeeUnpaid
	}

	cost, err := product.Price.Mul(quantity)
	if err != nil {
		return nil, err
	}
	newHeld, err := checkedAdd(warehouse.StockHeld, quantity)
	if err != nil {
		return nil, err
	}
	newFactoryBalance, err := factory.Balance.Add(cost)
	if err != nil {
		return nil, err
	}
	tx, err := c.stageTransaction(ident, caller, factory.Addr, cost)
	if err != nil {
		return nil, err
	}

	if err := c.treasury.Transfer(ctx, caller, factory.Addr, cost); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	warehouse.StockHeld = newHeld
	warehouse.ProductID = product.ProductID
	warehouse.ProductAddr = product.Addr
	warehouse.Touch(now)
	product.Stock -= quantity
	product.Touch(now)
	factory.Balance = newFactoryBalance
	factory.Touch(now)

	if err := c.store.AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}
	if err := c.store.UpdateWarehouse(ctx, warehouse); err != nil {
		return nil, err
	}
	if err := c.store.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	if err := c.store.UpdateFactory(ctx, factory); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitStockPurchased(ctx, warehouse, product, quantity, uint64(cost))
	c.logger.Info("warehouse purchased stock",
		"warehouse", warehouse.Addr,
		"product", product.Addr,
		"quantity", quantity,
		"cost", cost,
	)
	return warehouse, nil
}

// CreateOrderAsSeller places a wholesale order against a warehouse. The
// order total moves from the caller to the warehouse up front; the
// order starts in the ORDERED state.
func (c *Chain) CreateOrderAsSeller(ctx context.Context, caller, sellerAddr, warehouseAddr, productAddr id.Address, warehouseID, productID, quantity uint64) (*distribution.Order, error) {
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
	warehouse, err := c.store.GetWarehouse(ctx, warehouseAddr)
	if err != nil {
		return nil, err
	}
	product, err := c.store.GetProduct(ctx, productAddr)
	if err != nil {
		return nil, err
	}
	if err := matchID(warehouseID, warehouse.WarehouseID); err != nil {
		return nil, err
	}
	if err := matchID(productID, product.ProductID); err != nil {
		return nil, err
	}
	if warehouse.StockHeld < quantity {
		return nil, ErrInsufficientStock
	}

	total, err := product.Price.Mul(quantity)
	if err != nil {
		return nil, err
	}
	newWarehouseBalance, err := warehouse.Balance.Add(total)
	if err != nil {
		return nil, err
	}
	orderSeq, err := checkedIncr(seller.OrderCount)
	if err != nil {
		return nil, err
	}
	tx, err := c.stageTransaction(ident, caller, warehouse.Addr, total)
	if err != nil {
		return nil, err
	}

	if err := c.treasury.Transfer(ctx, caller, warehouse.Addr, total); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	order := &distribution.Order{
		Entity:        types.NewEntity(now),
		Addr:          id.Derive(id.PrefixOrder, seller.Addr, orderSeq),
		OrderID:       orderSeq,
		ProductID:     product.ProductID,
		ProductAddr:   product.Addr,
		Quantity:      quantity,
		WarehouseID:   warehouse.WarehouseID,
		WarehouseAddr: warehouse.Addr,
		TotalPrice:    total,
		SellerID:      seller.SellerID,
		SellerAddr:    seller.Addr,
		Status:        distribution.OrderStatusOrdered,
		PlacedAt:      now,
	}
	warehouse.Balance = newWarehouseBalance
	warehouse.Touch(now)
	seller.OrderCount = orderSeq
	seller.Touch(now)

	if err := c.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	if err := c.store.AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}
	if err := c.store.UpdateWarehouse(ctx, warehouse); err != nil {
		return nil, err
	}
	if err := c.store.UpdateSeller(ctx, seller); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitOrderPlaced(ctx, order)
	c.logger.Info("order placed",
		"order", order.Addr,
		"quantity", order.Quantity,
		"total", order.TotalPrice,
	)
	return order, nil
}

// CreateLogistics creates a shipment carrier for a LOGISTICS-role
// caller, bound to a warehouse and the product it holds.
func (c *Chain) CreateLogistics(ctx context.Context, caller, warehouseAddr, productAddr id.Address, in distribution.LogisticsInput) (*distribution.Logistics, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireOwner(ident.Owner, caller); err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleLogistics); err != nil {
		return nil, err
	}
	if err := boundedField("name", in.Name, distribution.MaxNameLen); err != nil {
		return nil, err
	}
	if err := boundedField("transport_mode", in.TransportMode, distribution.MaxTransportModeLen); err != nil {
		return nil, err
	}
	if err := boundedField("contact_info", in.ContactInfo, distribution.MaxContactLen); err != nil {
		return nil, err
	}
	warehouse, err := c.store.GetWarehouse(ctx, warehouseAddr)
	if err != nil {
		return nil, err
	}
	product, err := c.store.GetProduct(ctx, productAddr)
	if err != nil {
		return nil, err
	}
	if err := matchID(in.WarehouseID, warehouse.WarehouseID); err != nil {
		return nil, err
	}
	if err := matchID(in.ProductID, product.ProductID); err != nil {
		return nil, err
	}
	if err := matchID(in.ProductID, warehouse.ProductID); err != nil {
		return nil, err
	}

	seq, err := checkedIncr(ident.LogisticsCount)
	if err != nil {
		return nil, err
	}

	logistics := &distribution.Logistics{
		Entity:        types.NewEntity(c.clock.Now()),
		Addr:          id.Derive(id.PrefixLogistics, ident.Addr, seq),
		LogisticID:    seq,
		Name:          in.Name,
		TransportMode: in.TransportMode,
		ContactInfo:   in.ContactInfo,
		Status:        distribution.ShipmentStatusPending,
		ProductID:     product.ProductID,
		WarehouseID:   warehouse.WarehouseID,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		Owner:         caller,
	}
	ident.LogisticsCount = seq

	if err := c.store.CreateLogistics(ctx, logistics); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.logger.Info("logistics created",
		"addr", logistics.Addr,
		"transport_mode", logistics.TransportMode,
	)
	return logistics, nil
}

// SendLogisticsToSeller dispatches an order through a carrier. The
// caller must own the warehouse; the shipping cost moves from the
// caller to the carrier, the ordered quantity leaves the warehouse's
// held stock, and the shipment goes ON_THE_WAY. A carrier dispatches
// exactly once: shipment statuses only move forward.
func (c *Chain) SendLogisticsToSeller(ctx context.Context, caller, logisticsAddr, orderAddr, warehouseAddr, productAddr id.Address, logisticsID, productID, warehouseID uint64, shippingCost types.Amount) (*distribution.Logistics, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleWarehouse); err != nil {
		return nil, err
	}
	logistics, err := c.store.GetLogistics(ctx, logisticsAddr)
	if err != nil {
		return nil, err
	}
	order, err := c.store.GetOrder(ctx, orderAddr)
	if err != nil {
		return nil, err
	}
	warehouse, err := c.store.GetWarehouse(ctx, warehouseAddr)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(warehouse.Owner, caller); err != nil {
		return nil, err
	}
	product, err := c.store.GetProduct(ctx, productAddr)
	if err != nil {
		return nil, err
	}
	if err := matchID(productID, product.ProductID); err != nil {
		return nil, err
	}
	if err := matchID(warehouseID, warehouse.WarehouseID); err != nil {
		return nil, err
	}
	if err := matchID(logisticsID, logistics.LogisticID); err != nil {
		return nil, err
	}
	if err := matchID(order.WarehouseID, warehouse.WarehouseID); err != nil {
		return nil, err
	}
	if err := matchID(order.ProductID, warehouse.ProductID); err != nil {
		return nil, err
	}
	if logistics.Delivered || logistics.Status != distribution.ShipmentStatusPending {
		return nil, ErrAlreadyProcessed
	}
	if warehouse.StockHeld < order.Quantity {
		return nil, ErrInsufficientStock
	}

	newLogisticsBalance, err := logistics.Balance.Add(shippingCost)
	if err != nil {
		return nil, err
	}
	newLogisticCount, err := checkedIncr(warehouse.LogisticCount)
	if err != nil {
		return nil, err
	}
	tx, err := c.stageTransaction(ident, caller, logistics.Addr, shippingCost)
	if err != nil {
		return nil, err
	}

	if err := c.treasury.Transfer(ctx, caller, logistics.Addr, shippingCost); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	logistics.ShipmentStartedAt = now
	logistics.Quantity = order.Quantity
	logistics.Status = distribution.ShipmentStatusOnTheWay
	logistics.ShipmentCost = shippingCost
	logistics.Balance = newLogisticsBalance
	logistics.Touch(now)

	warehouse.LogisticCount = newLogisticCount
	warehouse.StockHeld -= order.Quantity
	warehouse.Touch(now)

	order.LogisticID = logistics.LogisticID
	order.LogisticsAddr = logistics.Addr
	order.Touch(now)

	if err := c.store.AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}
	if err := c.store.UpdateLogistics(ctx, logistics); err != nil {
		return nil, err
	}
	if err := c.store.UpdateWarehouse(ctx, warehouse); err != nil {
		return nil, err
	}
	if err := c.store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitShipmentDispatched(ctx, logistics, order)
	c.logger.Info("shipment dispatched",
		"logistics", logistics.Addr,
		"order", order.Addr,
		"quantity", logistics.Quantity,
	)
	return logistics, nil
}
