package supplychain

import (
	"context"

	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/production"
	"github.com/xraph/supplychain/txlog"
	"github.com/xraph/supplychain/types"
)

// ──────────────────────────────────────────────────
// Production Subsystem
// ──────────────────────────────────────────────────

// CreateFactory creates a manufacturing site for a FACTORY-role caller.
// The factory id is allocated from the identity's factory counter.
func (c *Chain) CreateFactory(ctx context.Context, caller id.Address, in production.FactoryInput) (*production.Factory, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleFactory); err != nil {
		return nil, err
	}
	if err := boundedField("name", in.Name, production.MaxNameLen); err != nil {
		return nil, err
	}
	if err := boundedField("description", in.Description, production.MaxDescriptionLen); err != nil {
		return nil, err
	}
	if err := boundedField("contact_info", in.ContactInfo, production.MaxContactLen); err != nil {
		return nil, err
	}

	seq, err := checkedIncr(ident.FactoryCount)
	if err != nil {
		return nil, err
	}

	factory := &production.Factory{
		Entity:      types.NewEntity(c.clock.Now()),
		Addr:        id.Derive(id.PrefixFactory, ident.Addr, seq),
		FactoryID:   seq,
		Name:        in.Name,
		Description: in.Description,
		ContactInfo: in.ContactInfo,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Owner:       caller,
	}
	ident.FactoryCount = seq

	if err := c.store.CreateFactory(ctx, factory); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitFactoryCreated(ctx, factory)
	c.logger.Info("factory created",
		"addr", factory.Addr,
		"factory_id", factory.FactoryID,
	)
	return factory, nil
}

// CreateProduct creates a product under a factory the caller owns.
// The product id is allocated from the factory's product counter and
// the product starts unchecked.
func (c *Chain) CreateProduct(ctx context.Context, caller, factoryAddr id.Address, in production.ProductInput) (*production.Product, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleFactory); err != nil {
		return nil, err
	}
	factory, err := c.store.GetFactory(ctx, factoryAddr)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(factory.Owner, caller); err != nil {
		return nil, err
	}
	if err := boundedField("name", in.Name, production.MaxNameLen); err != nil {
		return nil, err
	}
	if err := boundedField("description", in.Description, production.MaxDescriptionLen); err != nil {
		return nil, err
	}

	seq, err := checkedIncr(factory.ProductCount)
	if err != nil {
		return nil, err
	}

	product := &production.Product{
		Entity:          types.NewEntity(c.clock.Now()),
		Addr:            id.Derive(id.PrefixProduct, factory.Addr, seq),
		ProductID:       seq,
		FactoryID:       factory.FactoryID,
		FactoryAddr:     factory.Addr,
		Name:            in.Name,
		Description:     in.Description,
		Image:           in.Image,
		BatchNumber:     in.BatchNumber,
		Price:           in.Price,
		MRP:             in.MRP,
		Stock:           in.Stock,
		RawMaterialUsed: in.RawMaterialUsed,
	}
	factory.ProductCount = seq
	factory.Touch(c.clock.Now())

	if err := c.store.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	if err := c.store.UpdateFactory(ctx, factory); err != nil {
		return nil, err
	}

	c.plugins.EmitProductCreated(ctx, product)
	c.logger.Info("product created",
		"addr", product.Addr,
		"product_id", product.ProductID,
		"stock", product.Stock,
	)
	return product, nil
}

// InspectProduct certifies a product's quality. The caller must be an
// INSPECTOR; a product can be inspected exactly once.
func (c *Chain) InspectProduct(ctx context.Context, caller, factoryAddr, productAddr id.Address, in production.InspectionInput) (*production.Inspection, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleInspector); err != nil {
		return nil, err
	}
	factory, err := c.store.GetFactory(ctx, factoryAddr)
	if err != nil {
		return nil, err
	}
	product, err := c.store.GetProduct(ctx, productAddr)
	if err != nil {
		return nil, err
	}
	if err := matchID(factory.FactoryID, product.FactoryID); err != nil {
		return nil, err
	}
	if err := matchID(in.ProductID, product.ProductID); err != nil {
		return nil, err
	}
	if err := boundedField("name", in.Name, production.MaxNameLen); err != nil {
		return nil, err
	}
	if err := boundedField("outcome", in.Outcome, production.MaxOutcomeLen); err != nil {
		return nil, err
	}
	if err := boundedField("notes", in.Notes, production.MaxNotesLen); err != nil {
		return nil, err
	}
	if product.QualityChecked {
		return nil, ErrAlreadyProcessed
	}

	seq, err := checkedIncr(ident.InspectorCount)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	inspection := &production.Inspection{
		Entity:       types.NewEntity(now),
		Addr:         id.Derive(id.PrefixInspection, ident.Addr, seq),
		InspectionID: seq,
		Name:         in.Name,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		ProductID:    in.ProductID,
		Outcome:      in.Outcome,
		Notes:        in.Notes,
		InspectedAt:  now,
		FeePerUnit:   in.FeePerUnit,
		Owner:        caller,
	}
	ident.InspectorCount = seq

	product.QualityChecked = true
	product.InspectionID = seq
	product.InspectionAddr = inspection.Addr
	product.Touch(now)

	if err := c.store.CreateInspection(ctx, inspection); err != nil {
		return nil, err
	}
	if err := c.store.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitProductInspected(ctx, inspection)
	c.logger.Info("product inspected",
		"product", product.Addr,
		"inspection", inspection.Addr,
		"outcome", inspection.Outcome,
	)
	return inspection, nil
}

// PayInspector settles the inspection fee from the factory owner to the
// inspection record. The fee is fee-per-unit times the product's stock,
// computed with overflow checks. Marks the fee paid exactly once.
func (c *Chain) PayInspector(ctx context.Context, caller, productAddr, inspectionAddr id.Address, inspectionID, productID uint64) (*txlog.Transaction, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, identity.RoleFactory); err != nil {
		return nil, err
	}
	product, err := c.store.GetProduct(ctx, productAddr)
	if err != nil {
		return nil, err
	}
	inspection, err := c.store.GetInspection(ctx, inspectionAddr)
	if err != nil {
		return nil, err
	}
	if err := matchID(productID, product.ProductID); err != nil {
		return nil, err
	}
	if err := matchID(inspectionID, product.InspectionID); err != nil {
		return nil, err
	}
	if !product.QualityChecked {
		return nil, ErrNotInspected
	}
	if product.InspectionFeePaid {
		return nil, ErrAlreadyProcessed
	}

	amount, err := inspection.FeePerUnit.Mul(product.Stock)
	if err != nil {
		return nil, err
	}

	newBalance, err := inspection.Balance.Add(amount)
	if err != nil {
		return nil, err
	}
	tx, err := c.stageTransaction(ident, caller, inspection.Addr, amount)
	if err != nil {
		return nil, err
	}

	// All checks passed; move funds, then write back.
	if err := c.treasury.Transfer(ctx, caller, inspection.Addr, amount); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	inspection.Balance = newBalance
	inspection.Touch(now)
	product.InspectionFeePaid = true
	product.Touch(now)

	if err := c.store.AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}
	if err := c.store.UpdateInspection(ctx, inspection); err != nil {
		return nil, err
	}
	if err := c.store.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitInspectorPaid(ctx, inspection, uint64(amount))
	c.logger.Info("inspector paid",
		"inspection", inspection.Addr,
		"amount", amount,
	)
	return tx, nil
}
