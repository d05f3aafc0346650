package funds

import (
	"context"
	"sync"

	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/types"
)

// compile-time interface check
var _ Treasury = (*Bank)(nil)

// Bank is an in-memory Treasury. Every funded address retains the
// configured reserve floor: transfers may spend only the usable balance
// above it. Record-backed addresses are funded implicitly on first credit.
type Bank struct {
	mu       sync.Mutex
	balances map[id.Address]types.Amount
	reserve  types.Amount
}

// NewBank creates a Bank with the given per-address reserve floor.
func NewBank(reserve types.Amount) *Bank {
	return &Bank{
		balances: make(map[id.Address]types.Amount),
		reserve:  reserve,
	}
}

// Reserve returns the per-address reserve floor.
func (b *Bank) Reserve() types.Amount { return b.reserve }

// Deposit credits an address from outside the system (faucet).
func (b *Bank) Deposit(addr id.Address, amount types.Amount) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := b.balances[addr].Add(amount)
	if err != nil {
		return err
	}
	b.balances[addr] = next
	return nil
}

// Balance returns the raw balance of an address.
func (b *Bank) Balance(addr id.Address) types.Amount {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[addr]
}

// UsableBalance implements Treasury.
func (b *Bank) UsableBalance(_ context.Context, addr id.Address) (types.Amount, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.usableLocked(addr), nil
}

// Transfer implements Treasury. The debit and credit are applied under
// one lock acquisition: no partial state is ever observable.
func (b *Bank) Transfer(_ context.Context, from, to id.Address, amount types.Amount) error {
	if amount.IsZero() {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.usableLocked(from) < amount {
		return ErrInsufficientFunds
	}

	credited, err := b.balances[to].Add(amount)
	if err != nil {
		return err
	}

	b.balances[from] -= amount
	b.balances[to] = credited
	return nil
}

func (b *Bank) usableLocked(addr id.Address) types.Amount {
	bal := b.balances[addr]
	if bal <= b.reserve {
		return 0
	}
	return bal - b.reserve
}
