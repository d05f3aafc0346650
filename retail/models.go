// Package retail holds the retail-side records: sellers, the stock they
// receive from deliveries, and the products customers end up owning.
package retail

import (
	"time"

	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/types"
)

// Field length bounds enforced at creation.
const (
	MaxNameLen        = 32
	MaxDescriptionLen = 512
	MaxContactLen     = 512
)

// Seller is a retail outlet owned by a SELLER-role identity.
type Seller struct {
	types.Entity
	Addr          id.Address   `json:"addr"`
	SellerID      uint64       `json:"seller_id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	ProductsCount uint64       `json:"products_count"`
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
	ContactInfo   string       `json:"contact_info"`
	OrderCount    uint64       `json:"order_count"`
	Balance       types.Amount `json:"balance"`
	Owner         id.Address   `json:"owner"`
}

// SellerInput carries the caller-supplied fields for CreateSeller.
type SellerInput struct {
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	ContactInfo string
}

// SellerStock tracks the quantity of one product a seller holds,
// created when a shipment is received.
type SellerStock struct {
	types.Entity
	Addr        id.Address `json:"addr"`
	SellerID    uint64     `json:"seller_id"`
	SellerAddr  id.Address `json:"seller_addr"`
	ProductID   uint64     `json:"product_id"`
	ProductAddr id.Address `json:"product_addr"`
	Quantity    uint64     `json:"quantity"`
}

// CustomerProduct tracks units of one product owned by one customer.
// Quantity accumulates across repeat purchases from the same seller.
type CustomerProduct struct {
	types.Entity
	Addr        id.Address `json:"addr"`
	ProductID   uint64     `json:"product_id"`
	ProductAddr id.Address `json:"product_addr"`
	SellerAddr  id.Address `json:"seller_addr"`
	Owner       id.Address `json:"owner"`
	Quantity    uint64     `json:"quantity"`
	PurchasedAt time.Time  `json:"purchased_at"`
}
