// Package distribution holds the wholesale-side records: warehouses that
// buy factory stock, seller purchase orders, and the logistics shipments
// that move stock from warehouse to seller.
package distribution

import (
	"time"

	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/types"
)

// Field length bounds enforced at creation.
const (
	MaxNameLen          = 32
	MaxDescriptionLen   = 512
	MaxContactLen       = 512
	MaxTransportModeLen = 32
)

// OrderStatus is the closed set of order states. Transitions move
// forward only.
type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ORDERED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// ShipmentStatus is the closed set of shipment states. Transitions move
// forward only.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "PENDING"
	ShipmentStatusOnTheWay  ShipmentStatus = "ON_THE_WAY"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
)

// Warehouse is a wholesale site owned by a WAREHOUSE-role identity,
// bound to a single factory. StockHeld counts units bought from the
// factory and not yet dispatched to sellers.
type Warehouse struct {
	types.Entity
	Addr          id.Address   `json:"addr"`
	WarehouseID   uint64       `json:"warehouse_id"`
	FactoryID     uint64       `json:"factory_id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	ContactInfo   string       `json:"contact_info"`
	ProductID     uint64       `json:"product_id"`
	ProductAddr   id.Address   `json:"product_addr"`
	StockHeld     uint64       `json:"stock_held"`
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
	Balance       types.Amount `json:"balance"`
	Owner         id.Address   `json:"owner"`
	Size          uint64       `json:"size"`
	LogisticCount uint64       `json:"logistic_count"`
}

// WarehouseInput carries the caller-supplied fields for CreateWarehouse.
type WarehouseInput struct {
	Name        string
	Description string
	ContactInfo string
	FactoryID   uint64
	Size        uint64
	Latitude    float64
	Longitude   float64
}

// Order is a seller's wholesale purchase. Sequence ids are allocated
// per seller.
type Order struct {
	types.Entity
	Addr          id.Address   `json:"addr"`
	OrderID       uint64       `json:"order_id"`
	ProductID     uint64       `json:"product_id"`
	ProductAddr   id.Address   `json:"product_addr"`
	Quantity      uint64       `json:"quantity"`
	WarehouseID   uint64       `json:"warehouse_id"`
	WarehouseAddr id.Address   `json:"warehouse_addr"`
	TotalPrice    types.Amount `json:"total_price"`
	SellerID      uint64       `json:"seller_id"`
	SellerAddr    id.Address   `json:"seller_addr"`
	LogisticID    uint64       `json:"logistic_id"`
	LogisticsAddr id.Address   `json:"logistics_addr"`
	Status        OrderStatus  `json:"status"`
	PlacedAt      time.Time    `json:"placed_at"`
}

// Logistics is a shipment carrier owned by a LOGISTICS-role identity.
// Quantity is the in-transit stock once the warehouse dispatches an order.
type Logistics struct {
	types.Entity
	Addr              id.Address     `json:"addr"`
	LogisticID        uint64         `json:"logistic_id"`
	Name              string         `json:"name"`
	TransportMode     string         `json:"transport_mode"`
	ContactInfo       string         `json:"contact_info"`
	Status            ShipmentStatus `json:"status"`
	ShipmentCost      types.Amount   `json:"shipment_cost"`
	ProductID         uint64         `json:"product_id"`
	Quantity          uint64         `json:"quantity"`
	DeliveryConfirmed bool           `json:"delivery_confirmed"`
	Balance           types.Amount   `json:"balance"`
	WarehouseID       uint64         `json:"warehouse_id"`
	ShipmentStartedAt time.Time      `json:"shipment_started_at"`
	ShipmentEndedAt   time.Time      `json:"shipment_ended_at"`
	Delivered         bool           `json:"delivered"`
	Latitude          float64        `json:"latitude"`
	Longitude         float64        `json:"longitude"`
	Owner             id.Address     `json:"owner"`
}

// LogisticsInput carries the caller-supplied fields for CreateLogistics.
type LogisticsInput struct {
	Name          string
	TransportMode string
	ContactInfo   string
	ProductID     uint64
	WarehouseID   uint64
	Latitude      float64
	Longitude     float64
}
