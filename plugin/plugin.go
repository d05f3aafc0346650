// Package plugin provides an extensible plugin system for the supply
// chain engine. Plugins can hook into record lifecycle and settlement
// events to extend functionality.
package plugin

import (
	"context"
)

// Plugin is the base interface that all plugins must implement.
type Plugin interface {
	Name() string
}

// ──────────────────────────────────────────────────
// Lifecycle hooks
// ──────────────────────────────────────────────────

// OnInit is called when the plugin is initialized.
type OnInit interface {
	Plugin
	OnInit(ctx context.Context, chain interface{}) error
}

// OnShutdown is called when the plugin is shutting down.
type OnShutdown interface {
	Plugin
	OnShutdown(ctx context.Context) error
}

// ──────────────────────────────────────────────────
// Platform and identity hooks
// ──────────────────────────────────────────────────

// OnPlatformInitialized is called when the platform configuration is created.
type OnPlatformInitialized interface {
	Plugin
	OnPlatformInitialized(ctx context.Context, cfg interface{}) error
}

// OnPlatformFeeChanged is called when the platform fee percentage changes.
type OnPlatformFeeChanged interface {
	Plugin
	OnPlatformFeeChanged(ctx context.Context, oldPct, newPct uint64) error
}

// OnIdentityRegistered is called when a new participant identity is registered.
type OnIdentityRegistered interface {
	Plugin
	OnIdentityRegistered(ctx context.Context, ident interface{}) error
}

// ──────────────────────────────────────────────────
// Production hooks
// ──────────────────────────────────────────────────

// OnFactoryCreated is called when a factory record is created.
type OnFactoryCreated interface {
	Plugin
	OnFactoryCreated(ctx context.Context, factory interface{}) error
}

// OnProductCreated is called when a product record is created.
type OnProductCreated interface {
	Plugin
	OnProductCreated(ctx context.Context, product interface{}) error
}

// OnProductInspected is called when an inspection record is attached to a product.
type OnProductInspected interface {
	Plugin
	OnProductInspected(ctx context.Context, inspection interface{}) error
}

// OnInspectorPaid is called when an inspection fee settles.
type OnInspectorPaid interface {
	Plugin
	OnInspectorPaid(ctx context.Context, inspection interface{}, amount uint64) error
}

// ──────────────────────────────────────────────────
// Distribution hooks
// ──────────────────────────────────────────────────

// OnWarehouseCreated is called when a warehouse record is created.
type OnWarehouseCreated interface {
	Plugin
	OnWarehouseCreated(ctx context.Context, warehouse interface{}) error
}

// OnStockPurchased is called when a warehouse buys stock from a factory.
type OnStockPurchased interface {
	Plugin
	OnStockPurchased(ctx context.Context, warehouse, product interface{}, quantity, cost uint64) error
}

// OnOrderPlaced is called when a seller places an order against a warehouse.
type OnOrderPlaced interface {
	Plugin
	OnOrderPlaced(ctx context.Context, order interface{}) error
}

// OnShipmentDispatched is called when a logistics carrier picks up an order.
type OnShipmentDispatched interface {
	Plugin
	OnShipmentDispatched(ctx context.Context, logistics, order interface{}) error
}

// OnShipmentDelivered is called when a shipment is confirmed delivered.
type OnShipmentDelivered interface {
	Plugin
	OnShipmentDelivered(ctx context.Context, logistics interface{}) error
}

// ──────────────────────────────────────────────────
// Retail hooks
// ──────────────────────────────────────────────────

// OnSellerCreated is called when a seller record is created.
type OnSellerCreated interface {
	Plugin
	OnSellerCreated(ctx context.Context, seller interface{}) error
}

// OnCustomerPurchase is called when a customer buys from a seller.
type OnCustomerPurchase interface {
	Plugin
	OnCustomerPurchase(ctx context.Context, purchase interface{}, quantity, price uint64) error
}

// ──────────────────────────────────────────────────
// Settlement hooks
// ──────────────────────────────────────────────────

// OnWithdrawal is called after a balance withdrawal settles, with the
// gross amount, the platform fee retained, and the net paid out.
type OnWithdrawal interface {
	Plugin
	OnWithdrawal(ctx context.Context, party interface{}, gross, fee, net uint64) error
}

// WithdrawalGate can veto a withdrawal before any funds move. A non-nil
// error aborts the settlement.
type WithdrawalGate interface {
	Plugin
	ApproveWithdrawal(ctx context.Context, owner string, amount uint64) error
}

// ──────────────────────────────────────────────────
// Shipping cost estimators
// ──────────────────────────────────────────────────

// ShippingEstimator provides custom shipment cost estimation.
type ShippingEstimator interface {
	Plugin
	EstimatorName() string
	Estimate(ctx context.Context, mode string, quantity uint64) (uint64, error)
}
