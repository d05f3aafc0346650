// Package identity holds the actor registry: one record per signer wallet,
// carrying the actor's role and the monotonic counters used to allocate
// sequence ids for every record the actor creates.
package identity

import (
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/types"
)

// Role is the closed set of actor roles. Roles are compared as variants,
// never as raw text.
type Role string

const (
	RoleFactory   Role = "FACTORY"
	RoleInspector Role = "INSPECTOR"
	RoleWarehouse Role = "WAREHOUSE"
	RoleLogistics Role = "LOGISTICS"
	RoleSeller    Role = "SELLER"
	RoleCustomer  Role = "CUSTOMER"
)

// ParseRole maps a raw role string onto the closed Role set.
// Returns false for anything outside the set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleFactory, RoleInspector, RoleWarehouse, RoleLogistics, RoleSeller, RoleCustomer:
		return Role(s), true
	}
	return "", false
}

// Field length bounds enforced at registration.
const (
	MaxNameLen  = 32
	MaxEmailLen = 64
	MaxRoleLen  = 32
)

// Identity is a registered actor. The role is immutable after creation;
// the counters are incremented only by the engine when the actor creates
// downstream records.
type Identity struct {
	types.Entity
	Addr       id.Address `json:"addr"`
	Owner      id.Address `json:"owner"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	IsCustomer bool       `json:"is_customer"`

	FactoryCount     uint64 `json:"factory_count"`
	WarehouseCount   uint64 `json:"warehouse_count"`
	LogisticsCount   uint64 `json:"logistics_count"`
	SellerCount      uint64 `json:"seller_count"`
	InspectorCount   uint64 `json:"inspector_count"`
	ProductCount     uint64 `json:"product_count"`
	TransactionCount uint64 `json:"transaction_count"`

	Initialized bool `json:"initialized"`
}
