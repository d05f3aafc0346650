// Package audithook bridges supply chain lifecycle events to an audit
// trail backend.
//
// It defines a local Recorder interface so the package does not import
// Chronicle directly. Callers inject a RecorderFunc adapter that bridges
// to Chronicle at wiring time.
package audithook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xraph/supplychain/plugin"
)

// Compile-time interface checks.
var (
	_ plugin.Plugin                = (*Extension)(nil)
	_ plugin.OnPlatformInitialized = (*Extension)(nil)
	_ plugin.OnPlatformFeeChanged  = (*Extension)(nil)
	_ plugin.OnIdentityRegistered  = (*Extension)(nil)
	_ plugin.OnFactoryCreated      = (*Extension)(nil)
	_ plugin.OnProductCreated      = (*Extension)(nil)
	_ plugin.OnProductInspected    = (*Extension)(nil)
	_ plugin.OnInspectorPaid       = (*Extension)(nil)
	_ plugin.OnWarehouseCreated    = (*Extension)(nil)
	_ plugin.OnStockPurchased      = (*Extension)(nil)
	_ plugin.OnOrderPlaced         = (*Extension)(nil)
	_ plugin.OnShipmentDispatched  = (*Extension)(nil)
	_ plugin.OnShipmentDelivered   = (*Extension)(nil)
	_ plugin.OnSellerCreated       = (*Extension)(nil)
	_ plugin.OnCustomerPurchase    = (*Extension)(nil)
	_ plugin.OnWithdrawal          = (*Extension)(nil)
)

// Recorder is the interface that audit backends must implement.
// This matches chronicle.Emitter but is defined locally so that the
// audit_hook package does not import Chronicle directly — callers inject
// the concrete *chronicle.Chronicle at wiring time.
type Recorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}

// AuditEvent is a local representation of an audit event.
// It mirrors chronicle/audit.Event but avoids a module dependency.
type AuditEvent struct {
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	Category   string         `json:"category"`
	ResourceID string         `json:"resource_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outcome    string         `json:"outcome"`
	Severity   string         `json:"severity"`
	Reason     string         `json:"reason,omitempty"`
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *AuditEvent) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *AuditEvent) error {
	return f(ctx, event)
}

// Extension bridges supply chain lifecycle events to an audit trail backend.
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates an Extension that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements plugin.Plugin.
func (e *Extension) Name() string { return "audit-hook" }

// ──────────────────────────────────────────────────
// Platform and identity hooks
// ──────────────────────────────────────────────────

// OnPlatformInitialized implements plugin.OnPlatformInitialized.
func (e *Extension) OnPlatformInitialized(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionPlatformInitialized, SeverityInfo, OutcomeSuccess,
		ResourcePlatform, "", CategoryPlatform, nil,
		"event", "platform_initialized",
	)
}

// OnPlatformFeeChanged implements plugin.OnPlatformFeeChanged.
func (e *Extension) OnPlatformFeeChanged(ctx context.Context, oldPct, newPct uint64) error {
	return e.record(ctx, ActionPlatformFeeChanged, SeverityWarning, OutcomeSuccess,
		ResourcePlatform, "", CategoryPlatform, nil,
		"old_percent", oldPct,
		"new_percent", newPct,
	)
}

// OnIdentityRegistered implements plugin.OnIdentityRegistered.
func (e *Extension) OnIdentityRegistered(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionIdentityRegistered, SeverityInfo, OutcomeSuccess,
		ResourceIdentity, "", CategoryRegistry, nil,
		"event", "identity_registered",
	)
}

// ──────────────────────────────────────────────────
// Production hooks
// ──────────────────────────────────────────────────

// OnFactoryCreated implements plugin.OnFactoryCreated.
func (e *Extension) OnFactoryCreated(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionFactoryCreated, SeverityInfo, OutcomeSuccess,
		ResourceFactory, "", CategoryProduction, nil,
		"event", "factory_created",
	)
}

// OnProductCreated implements plugin.OnProductCreated.
func (e *Extension) OnProductCreated(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionProductCreated, SeverityInfo, OutcomeSuccess,
		ResourceProduct, "", CategoryProduction, nil,
		"event", "product_created",
	)
}

// OnProductInspected implements plugin.OnProductInspected.
func (e *Extension) OnProductInspected(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionProductInspected, SeverityInfo, OutcomeSuccess,
		ResourceInspection, "", CategoryProduction, nil,
		"event", "product_inspected",
	)
}

// OnInspectorPaid implements plugin.OnInspectorPaid.
func (e *Extension) OnInspectorPaid(ctx context.Context, _ interface{}, amount uint64) error {
	return e.record(ctx, ActionInspectorPaid, SeverityInfo, OutcomeSuccess,
		ResourceInspection, "", CategoryProduction, nil,
		"amount", amount,
	)
}

// ──────────────────────────────────────────────────
// Distribution hooks
// ──────────────────────────────────────────────────

// OnWarehouseCreated implements plugin.OnWarehouseCreated.
func (e *Extension) OnWarehouseCreated(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionWarehouseCreated, SeverityInfo, OutcomeSuccess,
		ResourceWarehouse, "", CategoryDistribution, nil,
		"event", "warehouse_created",
	)
}

// OnStockPurchased implements plugin.OnStockPurchased.
func (e *Extension) OnStockPurchased(ctx context.Context, _, _ interface{}, quantity, cost uint64) error {
	return e.record(ctx, ActionStockPurchased, SeverityInfo, OutcomeSuccess,
		ResourceWarehouse, "", CategoryDistribution, nil,
		"quantity", quantity,
		"cost", cost,
	)
}

// OnOrderPlaced implements plugin.OnOrderPlaced.
func (e *Extension) OnOrderPlaced(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionOrderPlaced, SeverityInfo, OutcomeSuccess,
		ResourceOrder, "", CategoryDistribution, nil,
		"event", "order_placed",
	)
}

// OnShipmentDispatched implements plugin.OnShipmentDispatched.
func (e *Extension) OnShipmentDispatched(ctx context.Context, _, _ interface{}) error {
	return e.record(ctx, ActionShipmentDispatched, SeverityInfo, OutcomeSuccess,
		ResourceShipment, "", CategoryDistribution, nil,
		"event", "shipment_dispatched",
	)
}

// OnShipmentDelivered implements plugin.OnShipmentDelivered.
func (e *Extension) OnShipmentDelivered(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionShipmentDelivered, SeverityInfo, OutcomeSuccess,
		ResourceShipment, "", CategoryDistribution, nil,
		"event", "shipment_delivered",
	)
}

// ──────────────────────────────────────────────────
// Retail hooks
// ──────────────────────────────────────────────────

// OnSellerCreated implements plugin.OnSellerCreated.
func (e *Extension) OnSellerCreated(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionSellerCreated, SeverityInfo, OutcomeSuccess,
		ResourceSeller, "", CategoryRetail, nil,
		"event", "seller_created",
	)
}

// OnCustomerPurchase implements plugin.OnCustomerPurchase.
func (e *Extension) OnCustomerPurchase(ctx context.Context, _ interface{}, quantity, price uint64) error {
	return e.record(ctx, ActionCustomerPurchase, SeverityInfo, OutcomeSuccess,
		ResourcePurchase, "", CategoryRetail, nil,
		"quantity", quantity,
		"price", price,
	)
}

// ──────────────────────────────────────────────────
// Settlement hooks
// ──────────────────────────────────────────────────

// OnWithdrawal implements plugin.OnWithdrawal.
func (e *Extension) OnWithdrawal(ctx context.Context, _ interface{}, gross, fee, net uint64) error {
	return e.record(ctx, ActionWithdrawalSettled, SeverityInfo, OutcomeSuccess,
		ResourceWithdrawal, "", CategorySettlement, nil,
		"gross", gross,
		"fee", fee,
		"net", net,
	)
}

// ──────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────

// record builds and sends an audit event if the action is enabled.
func (e *Extension) record(
	ctx context.Context,
	action, severity, outcome string,
	resource, resourceID, category string,
	err error,
	kvPairs ...any,
) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	meta := make(map[string]any, len(kvPairs)/2+1)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvPairs[i])
		}
		meta[key] = kvPairs[i+1]
	}

	var reason string
	if err != nil {
		reason = err.Error()
		meta["error"] = err.Error()
	}

	evt := &AuditEvent{
		Action:     action,
		Resource:   resource,
		Category:   category,
		ResourceID: resourceID,
		Metadata:   meta,
		Outcome:    outcome,
		Severity:   severity,
		Reason:     reason,
	}

	if recErr := e.recorder.Record(ctx, evt); recErr != nil {
		e.logger.Warn("audit_hook: failed to record audit event",
			"action", action,
			"resource_id", resourceID,
			"error", recErr,
		)
	}
	return nil
}
