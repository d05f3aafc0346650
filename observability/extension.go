// Package observability provides a metrics extension for the supply
// chain engine that records lifecycle event counts via a MetricFactory.
package observability

import (
	"context"

	"github.com/xraph/supplychain/plugin"
)

// Ensure MetricsExtension implements required interfaces.
var (
	_ plugin.Plugin                = (*MetricsExtension)(nil)
	_ plugin.OnInit                = (*MetricsExtension)(nil)
	_ plugin.OnPlatformInitialized = (*MetricsExtension)(nil)
	_ plugin.OnPlatformFeeChanged  = (*MetricsExtension)(nil)
	_ plugin.OnIdentityRegistered  = (*MetricsExtension)(nil)
	_ plugin.OnFactoryCreated      = (*MetricsExtension)(nil)
	_ plugin.OnProductCreated      = (*MetricsExtension)(nil)
	_ plugin.OnProductInspected    = (*MetricsExtension)(nil)
	_ plugin.OnInspectorPaid       = (*MetricsExtension)(nil)
	_ plugin.OnWarehouseCreated    = (*MetricsExtension)(nil)
	_ plugin.OnStockPurchased      = (*MetricsExtension)(nil)
	_ plugin.OnOrderPlaced         = (*MetricsExtension)(nil)
	_ plugin.OnShipmentDispatched  = (*MetricsExtension)(nil)
	_ plugin.OnShipmentDelivered   = (*MetricsExtension)(nil)
	_ plugin.OnSellerCreated       = (*MetricsExtension)(nil)
	_ plugin.OnCustomerPurchase    = (*MetricsExtension)(nil)
	_ plugin.OnWithdrawal          = (*MetricsExtension)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// Histogram interface for metric histograms.
type Histogram interface {
	Observe(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// MetricsExtension records system-wide lifecycle metrics.
// Register it as an engine plugin to automatically track supply chain metrics.
type MetricsExtension struct {
	factory MetricFactory

	// Platform metrics
	PlatformInitialized Counter
	FeeChanged          Counter
	IdentityRegistered  Counter

	// Production metrics
	FactoryCreated   Counter
	ProductCreated   Counter
	ProductInspected Counter
	InspectorPaid    Counter
	InspectionFees   Histogram

	// Distribution metrics
	WarehouseCreated   Counter
	StockPurchased     Counter
	StockQuantity      Histogram
	OrderPlaced        Counter
	ShipmentDispatched Counter
	ShipmentDelivered  Counter

	// Retail metrics
	SellerCreated    Counter
	CustomerPurchase Counter
	PurchaseValue    Histogram

	// Settlement metrics
	Withdrawals    Counter
	WithdrawalFees Histogram
	WithdrawalNet  Histogram
}

// NewMetricsExtension creates a MetricsExtension with the provided MetricFactory.
// Use app.Metrics() in forge extensions.
func NewMetricsExtension(factory MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		factory: factory,

		// Platform metrics
		PlatformInitialized: factory.Counter("supplychain.platform.initialized"),
		FeeChanged:          factory.Counter("supplychain.platform.fee_changed"),
		IdentityRegistered:  factory.Counter("supplychain.identity.registered"),

		// Production metrics
		FactoryCreated:   factory.Counter("supplychain.factory.created"),
		ProductCreated:   factory.Counter("supplychain.product.created"),
		ProductInspected: factory.Counter("supplychain.product.inspected"),
		InspectorPaid:    factory.Counter("supplychain.inspector.paid"),
		InspectionFees:   factory.Histogram("supplychain.inspection.fee_amount"),

		// Distribution metrics
		WarehouseCreated:   factory.Counter("supplychain.warehouse.created"),
		StockPurchased:     factory.Counter("supplychain.stock.purchased"),
		StockQuantity:      factory.Histogram("supplychain.stock.quantity"),
		OrderPlaced:        factory.Counter("supplychain.order.placed"),
		ShipmentDispatched: factory.Counter("supplychain.shipment.dispatched"),
		ShipmentDelivered:  factory.Counter("supplychain.shipment.delivered"),

		// Retail metrics
		SellerCreated:    factory.Counter("supplychain.seller.created"),
		CustomerPurchase: factory.Counter("supplychain.customer.purchase"),
		PurchaseValue:    factory.Histogram("supplychain.customer.purchase_value"),

		// Settlement metrics
		Withdrawals:    factory.Counter("supplychain.withdrawal.settled"),
		WithdrawalFees: factory.Histogram("supplychain.withdrawal.fee_amount"),
		WithdrawalNet:  factory.Histogram("supplychain.withdrawal.net_amount"),
	}
}

// Name implements plugin.Plugin.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnInit implements plugin.OnInit.
func (m *MetricsExtension) OnInit(_ context.Context, _ interface{}) error {
	// No initialization needed
	return nil
}

// ──────────────────────────────────────────────────
// Platform and identity hooks
// ──────────────────────────────────────────────────

// OnPlatformInitialized implements plugin.OnPlatformInitialized.
func (m *MetricsExtension) OnPlatformInitialized(_ context.Context, _ interface{}) error {
	m.PlatformInitialized.Inc()
	return nil
}

// OnPlatformFeeChanged implements plugin.OnPlatformFeeChanged.
func (m *MetricsExtension) OnPlatformFeeChanged(_ context.Context, _, _ uint64) error {
	m.FeeChanged.Inc()
	return nil
}

// OnIdentityRegistered implements plugin.OnIdentityRegistered.
func (m *MetricsExtension) OnIdentityRegistered(_ context.Context, _ interface{}) error {
	m.IdentityRegistered.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Production hooks
// ──────────────────────────────────────────────────

// OnFactoryCreated implements plugin.OnFactoryCreated.
func (m *MetricsExtension) OnFactoryCreated(_ context.Context, _ interface{}) error {
	m.FactoryCreated.Inc()
	return nil
}

// OnProductCreated implements plugin.OnProductCreated.
func (m *MetricsExtension) OnProductCreated(_ context.Context, _ interface{}) error {
	m.ProductCreated.Inc()
	return nil
}

// OnProductInspected implements plugin.OnProductInspected.
func (m *MetricsExtension) OnProductInspected(_ context.Context, _ interface{}) error {
	m.ProductInspected.Inc()
	return nil
}

// OnInspectorPaid implements plugin.OnInspectorPaid.
func (m *MetricsExtension) OnInspectorPaid(_ context.Context, _ interface{}, amount uint64) error {
	m.InspectorPaid.Inc()
	m.InspectionFees.Observe(float64(amount))
	return nil
}

// ──────────────────────────────────────────────────
// Distribution hooks
// ──────────────────────────────────────────────────

// OnWarehouseCreated implements plugin.OnWarehouseCreated.
func (m *MetricsExtension) OnWarehouseCreated(_ context.Context, _ interface{}) error {
	m.WarehouseCreated.Inc()
	return nil
}

// OnStockPurchased implements plugin.OnStockPurchased.
func (m *MetricsExtension) OnStockPurchased(_ context.Context, _, _ interface{}, quantity, _ uint64) error {
	m.StockPurchased.Inc()
	m.StockQuantity.Observe(float64(quantity))
	return nil
}

// OnOrderPlaced implements plugin.OnOrderPlaced.
func (m *MetricsExtension) OnOrderPlaced(_ context.Context, _ interface{}) error {
	m.OrderPlaced.Inc()
	return nil
}

// OnShipmentDispatched implements plugin.OnShipmentDispatched.
func (m *MetricsExtension) OnShipmentDispatched(_ context.Context, _, _ interface{}) error {
	m.ShipmentDispatched.Inc()
	return nil
}

// OnShipmentDelivered implements plugin.OnShipmentDelivered.
func (m *MetricsExtension) OnShipmentDelivered(_ context.Context, _ interface{}) error {
	m.ShipmentDelivered.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Retail hooks
// ──────────────────────────────────────────────────

// OnSellerCreated implements plugin.OnSellerCreated.
func (m *MetricsExtension) OnSellerCreated(_ context.Context, _ interface{}) error {
	m.SellerCreated.Inc()
	return nil
}

// OnCustomerPurchase implements plugin.OnCustomerPurchase.
func (m *MetricsExtension) OnCustomerPurchase(_ context.Context, _ interface{}, _, price uint64) error {
	m.CustomerPurchase.Inc()
	m.PurchaseValue.Observe(float64(price))
	return nil
}

// ──────────────────────────────────────────────────
// Settlement hooks
// ──────────────────────────────────────────────────

// OnWithdrawal implements plugin.OnWithdrawal.
func (m *MetricsExtension) OnWithdrawal(_ context.Context, _ interface{}, _, fee, net uint64) error {
	m.Withdrawals.Inc()
	m.WithdrawalFees.Observe(float64(fee))
	m.WithdrawalNet.Observe(float64(net))
	return nil
}
