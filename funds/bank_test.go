package funds_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xraph/supplychain/funds"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/types"
)

func TestBankTransfer(t *testing.T) {
	ctx := context.Background()
	from := id.NewAccount()
	to := id.NewAccount()

	b := funds.NewBank(0)
	if err := b.Deposit(from, 500); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if err := b.Transfer(ctx, from, to, 300); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := b.Balance(from); got != 200 {
		t.Errorf("from balance: got %d, want 200", got)
	}
	if got := b.Balance(to); got != 300 {
		t.Errorf("to balance: got %d, want 300", got)
	}
}

func TestBankInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	from := id.NewAccount()
	to := id.NewAccount()

	b := funds.NewBank(0)
	if err := b.Deposit(from, 100); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	err := b.Transfer(ctx, from, to, 101)
	if !errors.Is(err, funds.ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}

	// A failed transfer leaves both balances untouched.
	if got := b.Balance(from); got != 100 {
		t.Errorf("from balance: got %d, want 100", got)
	}
	if got := b.Balance(to); got != 0 {
		t.Errorf("to balance: got %d, want 0", got)
	}
}

func TestBankReserveFloor(t *testing.T) {
	ctx := context.Background()
	addr := id.NewAccount()
	other := id.NewAccount()

	b := funds.NewBank(types.Unit)
	if err := b.Deposit(addr, types.Unit+250); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	usable, err := b.UsableBalance(ctx, addr)
	if err != nil {
		t.Fatalf("usable: %v", err)
	}
	if usable != 250 {
		t.Errorf("usable: got %d, want 250", usable)
	}

	// Spending into the reserve is rejected.
	if err := b.Transfer(ctx, addr, other, 251); !errors.Is(err, funds.ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}
	// Spending the full usable balance is allowed.
	if err := b.Transfer(ctx, addr, other, 250); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := b.Balance(addr); got != types.Unit {
		t.Errorf("balance: got %d, want the reserve floor %d", got, types.Unit)
	}
}

func TestBankUsableBelowReserve(t *testing.T) {
	ctx := context.Background()
	addr := id.NewAccount()

	b := funds.NewBank(1000)
	if err := b.Deposit(addr, 400); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	usable, err := b.UsableBalance(ctx, addr)
	if err != nil {
		t.Fatalf("usable: %v", err)
	}
	if usable != 0 {
		t.Errorf("usable: got %d, want 0", usable)
	}
}

func TestBankZeroTransfer(t *testing.T) {
	ctx := context.Background()
	b := funds.NewBank(0)

	// A zero-amount transfer is a no-op even between unfunded addresses.
	if err := b.Transfer(ctx, id.NewAccount(), id.NewAccount(), 0); err != nil {
		t.Fatalf("zero transfer: %v", err)
	}
}
