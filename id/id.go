// Package id defines the addressing scheme for all supply chain records.
//
// There are two kinds of addresses. Signer (wallet) addresses are minted
// with TypeID: globally unique, K-sortable, URL-safe, in the format
// "acct_suffix". Record addresses are derived deterministically from
// (record prefix, parent address, parent's next sequence number), which
// guarantees uniqueness without coordination: the parent's counter is
// bumped in the same atomic operation that creates the child.
package id

import (
	"fmt"
	"strings"

	"go.jetify.com/typeid/v2"
)

// Prefix identifies the record type encoded in an address.
type Prefix string

// Prefix constants for all record types.
const (
	PrefixAccount     Prefix = "acct" // Signer wallet
	PrefixIdentity    Prefix = "idn"  // Registered actor
	PrefixPlatform    Prefix = "pltf" // Platform configuration singleton
	PrefixFactory     Prefix = "fact" // Manufacturing site
	PrefixProduct     Prefix = "prod" // Manufactured good
	PrefixInspection  Prefix = "insp" // Quality inspection
	PrefixWarehouse   Prefix = "wrhs" // Wholesale warehouse
	PrefixOrder       Prefix = "ordr" // Seller purchase order
	PrefixLogistics   Prefix = "lgst" // Shipment carrier
	PrefixSeller      Prefix = "selr" // Retail seller
	PrefixSellerStock Prefix = "sstk" // Per-seller product stock
	PrefixCustomer    Prefix = "cust" // Customer-held product
	PrefixTransaction Prefix = "txn"  // Money movement record
)

// sep joins the components of a derived address.
const sep = "."

// Address is the unique key of a record or wallet in the store.
// The zero value is the nil address.
type Address string

// Nil is the zero-value address.
const Nil Address = ""

// NewAccount mints a new globally unique signer wallet address.
func NewAccount() Address {
	tid, err := typeid.Generate(string(PrefixAccount))
	if err != nil {
		panic(fmt.Sprintf("id: generate account address: %v", err))
	}
	return Address(tid.String())
}

// ParseAccount parses a signer wallet address, validating the "acct" prefix.
func ParseAccount(s string) (Address, error) {
	tid, err := typeid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("id: parse account %q: %w", s, err)
	}
	if tid.Prefix() != string(PrefixAccount) {
		return Nil, fmt.Errorf("id: expected prefix %q, got %q", PrefixAccount, tid.Prefix())
	}
	return Address(tid.String()), nil
}

// Derive computes the deterministic address of a child record.
// The same (prefix, parent, seq) triple always yields the same address.
func Derive(prefix Prefix, parent Address, seq uint64) Address {
	return Address(fmt.Sprintf("%s%s%s%s%d", prefix, sep, parent, sep, seq))
}

// PlatformConfig is the address of the platform configuration singleton.
func PlatformConfig() Address {
	return Address(string(PrefixPlatform) + sep + "state")
}

// IdentityFor returns the address of the identity registered by a signer.
// One identity exists per signer wallet.
func IdentityFor(owner Address) Address {
	return Address(string(PrefixIdentity) + sep + string(owner))
}

// CustomerHolding returns the address of the holding record for one
// (customer identity, product) pair. Repeat purchases of the same
// product land on the same record.
func CustomerHolding(owner, product Address) Address {
	return Address(string(PrefixCustomer) + sep + string(owner) + sep + string(product))
}

// IsNil reports whether the address is the zero value.
func (a Address) IsNil() bool { return a == Nil }

// String returns the address as a string.
func (a Address) String() string { return string(a) }

// Prefix returns the record-type prefix of the address.
func (a Address) Prefix() Prefix {
	s := string(a)
	if i := strings.IndexAny(s, sep+"_"); i > 0 {
		return Prefix(s[:i])
	}
	return ""
}

// Is reports whether the address carries the given record-type prefix.
func (a Address) Is(prefix Prefix) bool {
	return a.Prefix() == prefix
}
