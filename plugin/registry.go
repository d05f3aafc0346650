package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"time"
)

// Registry manages all registered plugins and provides efficient dispatch.
// It uses type-cached discovery for O(1) dispatch performance.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
	logger  *slog.Logger

	// Type-cached plugin lists for efficient dispatch
	onInit                []OnInit
	onShutdown            []OnShutdown
	onPlatformInitialized []OnPlatformInitialized
	onPlatformFeeChanged  []OnPlatformFeeChanged
	onIdentityRegistered  []OnIdentityRegistered
	onFactoryCreated      []OnFactoryCreated
	onProductCreated      []OnProductCreated
	onProductInspected    []OnProductInspected
	onInspectorPaid       []OnInspectorPaid
	onWarehouseCreated    []OnWarehouseCreated
	onStockPurchased      []OnStockPurchased
	onOrderPlaced         []OnOrderPlaced
	onShipmentDispatched  []OnShipmentDispatched
	onShipmentDelivered   []OnShipmentDelivered
	onSellerCreated       []OnSellerCreated
	onCustomerPurchase    []OnCustomerPurchase
	onWithdrawal          []OnWithdrawal
	withdrawalGates       []WithdrawalGate
	shippingEstimators    map[string]ShippingEstimator
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		logger:             slog.Default(),
		shippingEstimators: make(map[string]ShippingEstimator),
	}
}

// WithLogger sets the logger for the registry.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register adds a plugin to the registry and caches its interfaces.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check for duplicate
	for _, existing := range r.plugins {
		if existing.Name() == p.Name() {
			return fmt.Errorf("plugin: duplicate registration: %s", p.Name())
		}
	}

	r.plugins = append(r.plugins, p)

	// Type-switch to cache interfaces
	if v, ok := p.(OnInit); ok {
		r.onInit = append(r.onInit, v)
	}
	if v, ok := p.(OnShutdown); ok {
		r.onShutdown = append(r.onShutdown, v)
	}
	if v, ok := p.(OnPlatformInitialized); ok {
		r.onPlatformInitialized = append(r.onPlatformInitialized, v)
	}
	if v, ok := p.(OnPlatformFeeChanged); ok {
		r.onPlatformFeeChanged = append(r.onPlatformFeeChanged, v)
	}
	if v, ok := p.(OnIdentityRegistered); ok {
		r.onIdentityRegistered = append(r.onIdentityRegistered, v)
	}
	if v, ok := p.(OnFactoryCreated); ok {
		r.onFactoryCreated = append(r.onFactoryCreated, v)
	}
	if v, ok := p.(OnProductCreated); ok {
		r.onProductCreated = append(r.onProductCreated, v)
	}
	if v, ok := p.(OnProductInspected); ok {
		r.onProductInspected = append(r.onProductInspected, v)
	}
	if v, ok := p.(OnInspectorPaid); ok {
		r.onInspectorPaid = append(r.onInspectorPaid, v)
	}
	if v, ok := p.(OnWarehouseCreated); ok {
		r.onWarehouseCreated = append(r.onWarehouseCreated, v)
	}
	if v, ok := p.(OnStockPurchased); ok {
		r.onStockPurchased = append(r.onStockPurchased, v)
	}
	if v, ok := p.(OnOrderPlaced); ok {
		r.onOrderPlaced = append(r.onOrderPlaced, v)
	}
	if v, ok := p.(OnShipmentDispatched); ok {
		r.onShipmentDispatched = append(r.onShipmentDispatched, v)
	}
	if v, ok := p.(OnShipmentDelivered); ok {
		r.onShipmentDelivered = append(r.onShipmentDelivered, v)
	}
	if v, ok := p.(OnSellerCreated); ok {
		r.onSellerCreated = append(r.onSellerCreated, v)
	}
	if v, ok := p.(OnCustomerPurchase); ok {
		r.onCustomerPurchase = append(r.onCustomerPurchase, v)
	}
	if v, ok := p.(OnWithdrawal); ok {
		r.onWithdrawal = append(r.onWithdrawal, v)
	}
	if v, ok := p.(WithdrawalGate); ok {
		r.withdrawalGates = append(r.withdrawalGates, v)
	}
	if v, ok := p.(ShippingEstimator); ok {
		r.shippingEstimators[v.EstimatorName()] = v
	}

	r.logger.Info("plugin registered",
		"name", p.Name(),
		"interfaces", r.getImplementedInterfaces(p),
	)

	return nil
}

// getImplementedInterfaces returns a list of interfaces implemented by the plugin.
func (r *Registry) getImplementedInterfaces(p Plugin) []string {
	var interfaces []string
	v := reflect.TypeOf(p)

	// Check each interface
	checkInterface := func(iface reflect.Type, name string) {
		if v.Implements(iface) {
			interfaces = append(interfaces, name)
		}
	}

	// List all interfaces to check
	checkInterface(reflect.TypeOf((*OnInit)(nil)).Elem(), "OnInit")
	checkInterface(reflect.TypeOf((*OnShutdown)(nil)).Elem(), "OnShutdown")
	checkInterface(reflect.TypeOf((*OnIdentityRegistered)(nil)).Elem(), "OnIdentityRegistered")
	checkInterface(reflect.TypeOf((*OnProductCreated)(nil)).Elem(), "OnProductCreated")
	checkInterface(reflect.TypeOf((*OnOrderPlaced)(nil)).Elem(), "OnOrderPlaced")
	checkInterface(reflect.TypeOf((*OnShipmentDelivered)(nil)).Elem(), "OnShipmentDelivered")
	checkInterface(reflect.TypeOf((*OnWithdrawal)(nil)).Elem(), "OnWithdrawal")
	checkInterface(reflect.TypeOf((*WithdrawalGate)(nil)).Elem(), "WithdrawalGate")
	checkInterface(reflect.TypeOf((*ShippingEstimator)(nil)).Elem(), "ShippingEstimator")

	return interfaces
}

// Get returns a plugin by name.
func (r *Registry) Get(name string) Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plugins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// List returns all registered plugins.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Plugin, len(r.plugins))
	copy(result, r.plugins)
	return result
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// ──────────────────────────────────────────────────
// Event emission methods
// ──────────────────────────────────────────────────

// EmitInit calls OnInit for all plugins that implement it.
func (r *Registry) EmitInit(ctx context.Context, chain interface{}) {
	r.mu.RLock()
	plugins := r.onInit
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnInit(ctx, chain)
		}); err != nil {
			r.logger.Warn("plugin OnInit failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitShutdown calls OnShutdown for all plugins that implement it.
func (r *Registry) EmitShutdown(ctx context.Context) {
	r.mu.RLock()
	plugins := r.onShutdown
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnShutdown(ctx)
		}); err != nil {
			r.logger.Warn("plugin OnShutdown failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitPlatformInitialized emits a platform initialized event.
func (r *Registry) EmitPlatformInitialized(ctx context.Context, cfg interface{}) {
	r.mu.RLock()
	plugins := r.onPlatformInitialized
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnPlatformInitialized(ctx, cfg)
		}); err != nil {
			r.logger.Warn("plugin OnPlatformInitialized failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitPlatformFeeChanged emits a platform fee changed event.
func (r *Registry) EmitPlatformFeeChanged(ctx context.Context, oldPct, newPct uint64) {
	r.mu.RLock()
	plugins := r.onPlatformFeeChanged
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnPlatformFeeChanged(ctx, oldPct, newPct)
		}); err != nil {
			r.logger.Warn("plugin OnPlatformFeeChanged failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitIdentityRegistered emits an identity registered event.
func (r *Registry) EmitIdentityRegistered(ctx context.Context, ident interface{}) {
	r.mu.RLock()
	plugins := r.onIdentityRegistered
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnIdentityRegistered(ctx, ident)
		}); err != nil {
			r.logger.Warn("plugin OnIdentityRegistered failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitFactoryCreated emits a factory created event.
func (r *Registry) EmitFactoryCreated(ctx context.Context, factory interface{}) {
	r.mu.RLock()
	plugins := r.onFactoryCreated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnFactoryCreated(ctx, factory)
		}); err != nil {
			r.logger.Warn("plugin OnFactoryCreated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitProductCreated emits a product created event.
func (r *Registry) EmitProductCreated(ctx context.Context, product interface{}) {
	r.mu.RLock()
	plugins := r.onProductCreated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnProductCreated(ctx, product)
		}); err != nil {
			r.logger.Warn("plugin OnProductCreated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitProductInspected emits a product inspected event.
func (r *Registry) EmitProductInspected(ctx context.Context, inspection interface{}) {
	r.mu.RLock()
	plugins := r.onProductInspected
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnProductInspected(ctx, inspection)
		}); err != nil {
			r.logger.Warn("plugin OnProductInspected failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitInspectorPaid emits an inspector paid event.
func (r *Registry) EmitInspectorPaid(ctx context.Context, inspection interface{}, amount uint64) {
	r.mu.RLock()
	plugins := r.onInspectorPaid
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnInspectorPaid(ctx, inspection, amount)
		}); err != nil {
			r.logger.Warn("plugin OnInspectorPaid failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitWarehouseCreated emits a warehouse created event.
func (r *Registry) EmitWarehouseCreated(ctx context.Context, warehouse interface{}) {
	r.mu.RLock()
	plugins := r.onWarehouseCreated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnWarehouseCreated(ctx, warehouse)
		}); err != nil {
			r.logger.Warn("plugin OnWarehouseCreated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitStockPurchased emits a stock purchased event.
func (r *Registry) EmitStockPurchased(ctx context.Context, warehouse, product interface{}, quantity, cost uint64) {
	r.mu.RLock()
	plugins := r.onStockPurchased
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnStockPurchased(ctx, warehouse, product, quantity, cost)
		}); err != nil {
			r.logger.Warn("plugin OnStockPurchased failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitOrderPlaced emits an order placed event.
func (r *Registry) EmitOrderPlaced(ctx context.Context, order interface{}) {
	r.mu.RLock()
	plugins := r.onOrderPlaced
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnOrderPlaced(ctx, order)
		}); err != nil {
			r.logger.Warn("plugin OnOrderPlaced failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitShipmentDispatched emits a shipment dispatched event.
func (r *Registry) EmitShipmentDispatched(ctx context.Context, logistics, order interface{}) {
	r.mu.RLock()
	plugins := r.onShipmentDispatched
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnShipmentDispatched(ctx, logistics, order)
		}); err != nil {
			r.logger.Warn("plugin OnShipmentDispatched failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitShipmentDelivered emits a shipment delivered event.
func (r *Registry) EmitShipmentDelivered(ctx context.Context, logistics interface{}) {
	r.mu.RLock()
	plugins := r.onShipmentDelivered
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnShipmentDelivered(ctx, logistics)
		}); err != nil {
			r.logger.Warn("plugin OnShipmentDelivered failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitSellerCreated emits a seller created event.
func (r *Registry) EmitSellerCreated(ctx context.Context, seller interface{}) {
	r.mu.RLock()
	plugins := r.onSellerCreated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnSellerCreated(ctx, seller)
		}); err != nil {
			r.logger.Warn("plugin OnSellerCreated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitCustomerPurchase emits a customer purchase event.
func (r *Registry) EmitCustomerPurchase(ctx context.Context, purchase interface{}, quantity, price uint64) {
	r.mu.RLock()
	plugins := r.onCustomerPurchase
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnCustomerPurchase(ctx, purchase, quantity, price)
		}); err != nil {
			r.logger.Warn("plugin OnCustomerPurchase failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitWithdrawal emits a withdrawal settled event.
func (r *Registry) EmitWithdrawal(ctx context.Context, party interface{}, gross, fee, net uint64) {
	r.mu.RLock()
	plugins := r.onWithdrawal
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnWithdrawal(ctx, party, gross, fee, net)
		}); err != nil {
			r.logger.Warn("plugin OnWithdrawal failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// ApproveWithdrawal runs every registered withdrawal gate. The first
// rejection aborts the settlement.
func (r *Registry) ApproveWithdrawal(ctx context.Context, owner string, amount uint64) error {
	r.mu.RLock()
	gates := r.withdrawalGates
	r.mu.RUnlock()

	for _, g := range gates {
		if err := r.callWithTimeout(ctx, g.Name(), func() error {
			return g.ApproveWithdrawal(ctx, owner, amount)
		}); err != nil {
			return fmt.Errorf("withdrawal rejected by %s: %w", g.Name(), err)
		}
	}
	return nil
}

// GetShippingEstimator returns a shipping estimator by name.
func (r *Registry) GetShippingEstimator(name string) ShippingEstimator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.shippingEstimators[name]
}

// callWithTimeout calls a plugin function with a timeout.
// Plugins should never block the settlement pipeline.
func (r *Registry) callWithTimeout(ctx context.Context, pluginName string, fn func() error) error {
	done := make(chan error, 1)

	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		return fmt.Errorf("plugin timeout: %s", pluginName)
	case <-ctx.Done():
		return ctx.Err()
	}
}
