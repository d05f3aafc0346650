package supplychain

import "github.com/xraph/supplychain/id"

// Address is the unique key of a record or wallet in the store.
type Address = id.Address

// Prefix identifies the record type encoded in an address.
type Prefix = id.Prefix
