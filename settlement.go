package supplychain

import (
	"context"

	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/txlog"
	"github.com/xraph/supplychain/types"
)

// MinimumWithdrawal is the smallest amount a withdrawal may move: one
// whole currency unit in base denomination.
const MinimumWithdrawal = types.Unit

// withdrawalSource describes the record a withdrawal drains.
type withdrawalSource struct {
	addr    id.Address
	owner   id.Address
	balance types.Amount
}

// settleWithdrawal is the shared settlement routine behind every
// withdrawal. Ordered steps:
//
//  1. authorize: the caller must own the source record AND carry the
//     expected role
//  2. floor: amount must reach the minimum withdrawal
//  3. sufficiency: the record's bookkeeping balance must cover amount
//  4. reserve: the source's usable treasury balance must cover amount
//  5. fee split: fee = floor(amount * fee% / 100), net = amount - fee
//  6. transfer net to the caller and fee to the platform owner
//  7. decrement the balance, append a transaction, bump the tx counter
//
// Every check and staged value precedes the first transfer, so a failed
// withdrawal leaves no observable mutation. The apply callback writes
// the decremented balance back to the source record.
func (c *Chain) settleWithdrawal(ctx context.Context, caller id.Address, role identity.Role, src withdrawalSource, amount types.Amount, apply func(ctx context.Context, newBalance types.Amount) error) (*txlog.Transaction, error) {
	ident, err := c.store.GetIdentity(ctx, id.IdentityFor(caller))
	if err != nil {
		return nil, err
	}
	if err := requireRole(ident, role); err != nil {
		return nil, err
	}
	if err := requireOwner(src.owner, caller); err != nil {
		return nil, err
	}

	if amount < MinimumWithdrawal {
		return nil, ErrBelowMinimumWithdrawal
	}
	if src.balance < amount {
		return nil, ErrInsufficientBalance
	}
	usable, err := c.treasury.UsableBalance(ctx, src.addr)
	if err != nil {
		return nil, err
	}
	if usable < amount {
		return nil, ErrInsufficientBalance
	}

	cfg, err := c.store.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	fee, err := amount.Percent(cfg.FeePercent)
	if err != nil {
		return nil, err
	}
	net, err := amount.Sub(fee)
	if err != nil {
		return nil, err
	}
	newBalance, err := src.balance.Sub(amount)
	if err != nil {
		return nil, err
	}
	tx, err := c.stageTransaction(ident, src.addr, caller, amount)
	if err != nil {
		return nil, err
	}

	if err := c.plugins.ApproveWithdrawal(ctx, caller.String(), uint64(amount)); err != nil {
		return nil, err
	}

	// All checks passed; move funds, then write back.
	if err := c.treasury.Transfer(ctx, src.addr, caller, net); err != nil {
		return nil, err
	}
	if !fee.IsZero() {
		if err := c.treasury.Transfer(ctx, src.addr, cfg.Owner, fee); err != nil {
			return nil, err
		}
	}

	if err := apply(ctx, newBalance); err != nil {
		return nil, err
	}
	if err := c.store.AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}
	if err := c.store.UpdateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitWithdrawal(ctx, src.addr, uint64(amount), uint64(fee), uint64(net))
	c.logger.Info("withdrawal settled",
		"source", src.addr,
		"amount", amount,
		"fee", fee,
		"net", net,
	)
	return tx, nil
}

// WithdrawFactoryBalance withdraws from a factory's accumulated sales.
func (c *Chain) WithdrawFactoryBalance(ctx context.Context, caller, factoryAddr id.Address, amount types.Amount) (*txlog.Transaction, error) {
	factory, err := c.store.GetFactory(ctx, factoryAddr)
	if err != nil {
		return nil, err
	}
	src := withdrawalSource{addr: factory.Addr, owner: factory.Owner, balance: factory.Balance}
	return c.settleWithdrawal(ctx, caller, identity.RoleFactory, src, amount, func(ctx context.Context, newBalance types.Amount) error {
		factory.Balance = newBalance
		factory.Touch(c.clock.Now())
		return c.store.UpdateFactory(ctx, factory)
	})
}

// WithdrawInspectorBalance withdraws accumulated inspection fees.
func (c *Chain) WithdrawInspectorBalance(ctx context.Context, caller, inspectionAddr id.Address, amount types.Amount) (*txlog.Transaction, error) {
	inspection, err := c.store.GetInspection(ctx, inspectionAddr)
	if err != nil {
		return nil, err
	}
	src := withdrawalSource{addr: inspection.Addr, owner: inspection.Owner, balance: inspection.Balance}
	return c.settleWithdrawal(ctx, caller, identity.RoleInspector, src, amount, func(ctx context.Context, newBalance types.Amount) error {
		inspection.Balance = newBalance
		inspection.Touch(c.clock.Now())
		return c.store.UpdateInspection(ctx, inspection)
	})
}

// WithdrawWarehouseBalance withdraws from a warehouse's accumulated
// order revenue.
func (c *Chain) WithdrawWarehouseBalance(ctx context.Context, caller, warehouseAddr id.Address, amount types.Amount) (*txlog.Transaction, error) {
	warehouse, err := c.store.GetWarehouse(ctx, warehouseAddr)
	if err != nil {
		return nil, err
	}
	src := withdrawalSource{addr: warehouse.Addr, owner: warehouse.Owner, balance: warehouse.Balance}
	return c.settleWithdrawal(ctx, caller, identity.RoleWarehouse, src, amount, func(ctx context.Context, newBalance types.Amount) error {
		warehouse.Balance = newBalance
		warehouse.Touch(c.clock.Now())
		return c.store.UpdateWarehouse(ctx, warehouse)
	})
}

// WithdrawLogisticsBalance withdraws accumulated shipping fees.
func (c *Chain) WithdrawLogisticsBalance(ctx context.Context, caller, logisticsAddr id.Address, amount types.Amount) (*txlog.Transaction, error) {
	logistics, err := c.store.GetLogistics(ctx, logisticsAddr)
	if err != nil {
		return nil, err
	}
	src := withdrawalSource{addr: logistics.Addr, owner: logistics.Owner, balance: logistics.Balance}
	return c.settleWithdrawal(ctx, caller, identity.RoleLogistics, src, amount, func(ctx context.Context, newBalance types.Amount) error {
		logistics.Balance = newBalance
		logistics.Touch(c.clock.Now())
		return c.store.UpdateLogistics(ctx, logistics)
	})
}

// WithdrawSellerBalance withdraws from a seller's accumulated sale
// proceeds.
func (c *Chain) WithdrawSellerBalance(ctx context.Context, caller, sellerAddr id.Address, amount types.Amount) (*txlog.Transaction, error) {
	seller, err := c.store.GetSeller(ctx, sellerAddr)
	if err != nil {
		return nil, err
	}
	src := withdrawalSource{addr: seller.Addr, owner: seller.Owner, balance: seller.Balance}
	return c.settleWithdrawal(ctx, caller, identity.RoleSeller, src, amount, func(ctx context.Context, newBalance types.Amount) error {
		seller.Balance = newBalance
		seller.Touch(c.clock.Now())
		return c.store.UpdateSeller(ctx, seller)
	})
}
