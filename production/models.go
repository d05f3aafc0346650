// Package production holds the manufacturing-side records: factories,
// the products they make, and the quality inspections certifying them.
package production

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
	MaxOutcomeLen     = 120
	MaxNotesLen       = 512
)

// Factory is a manufacturing site owned by a FACTORY-role identity.
// Sequence ids are allocated from the identity's factory counter.
type Factory struct {
	types.Entity
	Addr         id.Address   `json:"addr"`
	FactoryID    uint64       `json:"factory_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	ContactInfo  string       `json:"contact_info"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Owner        id.Address   `json:"owner"`
	ProductCount uint64       `json:"product_count"`
	Balance      types.Amount `json:"balance"`
}

// FactoryInput carries the caller-supplied fields for CreateFactory.
type FactoryInput struct {
	Name        string
	Description string
	ContactInfo string
	Latitude    float64
	Longitude   float64
}

// Product is a manufactured good. Sequence ids are allocated per factory.
// QualityChecked and InspectionFeePaid are one-way flags: once set they
// never revert.
type Product struct {
	types.Entity
	Addr            id.Address   `json:"addr"`
	ProductID       uint64       `json:"product_id"`
	FactoryID       uint64       `json:"factory_id"`
	FactoryAddr     id.Address   `json:"factory_addr"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Image           string       `json:"image"`
	BatchNumber     string       `json:"batch_number"`
	Price           types.Amount `json:"price"`
	MRP             types.Amount `json:"mrp"`
	Stock           uint64       `json:"stock"`
	RawMaterialUsed uint64       `json:"raw_material_used"`

	QualityChecked    bool       `json:"quality_checked"`
	InspectionID      uint64     `json:"inspection_id"`
	InspectionAddr    id.Address `json:"inspection_addr"`
	InspectionFeePaid bool       `json:"inspection_fee_paid"`
}

// ProductInput carries the caller-supplied fields for CreateProduct.
type ProductInput struct {
	Name            string
	Description     string
	Image           string
	BatchNumber     string
	Price           types.Amount
	MRP             types.Amount
	Stock           uint64
	RawMaterialUsed uint64
}

// Inspection is a quality certification performed by an INSPECTOR-role
// identity. Its balance accumulates inspection fees and is drained by
// inspector withdrawals.
type Inspection struct {
	types.Entity
	Addr         id.Address   `json:"addr"`
	InspectionID uint64       `json:"inspection_id"`
	Name         string       `json:"name"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	ProductID    uint64       `json:"product_id"`
	Outcome      string       `json:"outcome"`
	Notes        string       `json:"notes"`
	InspectedAt  time.Time    `json:"inspected_at"`
	FeePerUnit   types.Amount `json:"fee_per_unit"`
	Balance      types.Amount `json:"balance"`
	Owner        id.Address   `json:"owner"`
}

// InspectionInput carries the caller-supplied fields for InspectProduct.
type InspectionInput struct {
	Name       string
	Latitude   float64
	Longitude  float64
	ProductID  uint64
	Outcome    string
	Notes      string
	FeePerUnit types.Amount
}
