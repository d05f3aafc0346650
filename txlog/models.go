// Package txlog holds the append-only transaction log: one record per
// money movement, sequenced per identity. Transactions are never updated
// or deleted.
package txlog

import (
	"time"

	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/types"
)

// Transaction records a single completed money movement.
type Transaction struct {
	types.Entity
	Addr      id.Address   `json:"addr"`
	Seq       uint64       `json:"seq"`
	From      id.Address   `json:"from"`
	To        id.Address   `json:"to"`
	Amount    types.Amount `json:"amount"`
	Timestamp time.Time    `json:"timestamp"`
	Confirmed bool         `json:"confirmed"`
}
