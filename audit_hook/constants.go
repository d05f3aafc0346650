package audithook

// Action constants for audit events.
const (
	// Platform actions
	ActionPlatformInitialized = "platform.initialized"
	ActionPlatformFeeChanged  = "platform.fee_changed"
	ActionIdentityRegistered  = "identity.registered"

	// Production actions
	ActionFactoryCreated   = "factory.created"
	ActionProductCreated   = "product.created"
	ActionProductInspected = "product.inspected"
	ActionInspectorPaid    = "inspector.paid"

	// Distribution actions
	ActionWarehouseCreated   = "warehouse.created"
	ActionStockPurchased     = "stock.purchased"
	ActionOrderPlaced        = "order.placed"
	ActionShipmentDispatched = "shipment.dispatched"
	ActionShipmentDelivered  = "shipment.delivered"

	// Retail actions
	ActionSellerCreated    = "seller.created"
	ActionCustomerPurchase = "customer.purchase"

	// Settlement actions
	ActionWithdrawalSettled = "withdrawal.settled"
)

// Resource constants for audit events.
const (
	ResourcePlatform   = "platform"
	ResourceIdentity   = "identity"
	ResourceFactory    = "factory"
	ResourceProduct    = "product"
	ResourceInspection = "inspection"
	ResourceWarehouse  = "warehouse"
	ResourceOrder      = "order"
	ResourceShipment   = "shipment"
	ResourceSeller     = "seller"
	ResourcePurchase   = "purchase"
	ResourceWithdrawal = "withdrawal"
)

// Category constants for audit events.
const (
	CategoryPlatform     = "platform"
	CategoryRegistry     = "registry"
	CategoryProduction   = "production"
	CategoryDistribution = "distribution"
	CategoryRetail       = "retail"
	CategorySettlement   = "settlement"
)

// Severity levels for audit events.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePartial = "partial"
)
