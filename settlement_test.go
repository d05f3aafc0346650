package supplychain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xraph/supplychain"
	"github.com/xraph/supplychain/id"
)

// vetoGate rejects every withdrawal with the configured error.
type vetoGate struct {
	err error
}

func (vetoGate) Name() string { return "veto-gate" }

func (g vetoGate) ApproveWithdrawal(_ context.Context, _ string, _ uint64) error {
	return g.err
}

func TestWithdrawFactoryBalance(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	// 400 units of sales revenue accrued; withdraw 100 at the default
	// 2% fee: 2 to the platform owner, 98 to the caller.
	tx, err := f.chain.WithdrawFactoryBalance(ctx, f.factoryOwner, f.factory.Addr, units(t, 100))
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if tx.From != f.factory.Addr || tx.To != f.factoryOwner {
		t.Errorf("unexpected parties: %q -> %q", tx.From, tx.To)
	}
	if tx.Amount != units(t, 100) {
		t.Errorf("gross: got %s, want 100 units", tx.Amount)
	}

	factory, err := f.chain.GetFactory(ctx, f.factory.Addr)
	if err != nil {
		t.Fatalf("get factory: %v", err)
	}
	if factory.Balance != units(t, 300) {
		t.Errorf("record balance: got %s, want 300 units", factory.Balance)
	}

	// Wallet started at 1000, paid 200 inspection fee, received 98 net.
	if got := f.bank.Balance(f.factoryOwner); got != units(t, 898) {
		t.Errorf("caller wallet: got %s, want 898 units", got)
	}
	if got := f.bank.Balance(f.platformOwner); got != units(t, 2) {
		t.Errorf("platform fee: got %s, want 2 units", got)
	}
	if got := f.bank.Balance(f.factory.Addr); got != units(t, 300) {
		t.Errorf("source treasury: got %s, want 300 units", got)
	}
}

func TestWithdrawInspectorBalance(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	// Drain the full 200-unit fee balance at 2%: 4 fee, 196 net.
	if _, err := f.chain.WithdrawInspectorBalance(ctx, f.inspectorOwner, f.inspection.Addr, units(t, 200)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	inspection, err := f.chain.GetInspection(ctx, f.inspection.Addr)
	if err != nil {
		t.Fatalf("get inspection: %v", err)
	}
	if !inspection.Balance.IsZero() {
		t.Errorf("record balance: got %s, want 0", inspection.Balance)
	}
	if got := f.bank.Balance(f.inspectorOwner); got != units(t, 196) {
		t.Errorf("inspector wallet: got %s, want 196 units", got)
	}
	if got := f.bank.Balance(f.platformOwner); got != units(t, 4) {
		t.Errorf("platform fee: got %s, want 4 units", got)
	}
}

func TestWithdrawFeeSplit(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	// At the 5% ceiling a one-unit withdrawal splits into a
	// 50_000_000 base-unit fee and a 950_000_000 base-unit payout.
	if err := f.chain.SetPlatformFee(ctx, f.platformOwner, 5); err != nil {
		t.Fatalf("set fee: %v", err)
	}

	before := f.bank.Balance(f.factoryOwner)
	if _, err := f.chain.WithdrawFactoryBalance(ctx, f.factoryOwner, f.factory.Addr, units(t, 1)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	net, err := f.bank.Balance(f.factoryOwner).Sub(before)
	if err != nil {
		t.Fatalf("net: %v", err)
	}
	if net != 950_000_000 {
		t.Errorf("net: got %d, want 950000000", net)
	}
	if got := f.bank.Balance(f.platformOwner); got != 50_000_000 {
		t.Errorf("fee: got %d, want 50000000", got)
	}
}

func TestWithdrawZeroFee(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	if err := f.chain.SetPlatformFee(ctx, f.platformOwner, 0); err != nil {
		t.Fatalf("set fee: %v", err)
	}
	if _, err := f.chain.WithdrawFactoryBalance(ctx, f.factoryOwner, f.factory.Addr, units(t, 100)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if got := f.bank.Balance(f.platformOwner); !got.IsZero() {
		t.Errorf("platform owner must receive nothing at 0%%, got %s", got)
	}
	if got := f.bank.Balance(f.factoryOwner); got != units(t, 900) {
		t.Errorf("caller wallet: got %s, want 900 units", got)
	}
}

func TestWithdrawalGuards(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	intruder := registerActor(t, f.chain, "rival", "FACTORY")
	hundred := units(t, 100)
	belowMin := units(t, 1) - 1
	overBalance := units(t, 401)

	tests := []struct {
		name string
		op   func() error
		want error
	}{
		{"Below minimum", func() error {
			_, err := f.chain.WithdrawFactoryBalance(ctx, f.factoryOwner, f.factory.Addr, belowMin)
			return err
		}, supplychain.ErrBelowMinimumWithdrawal},
		{"Over record balance", func() error {
			_, err := f.chain.WithdrawFactoryBalance(ctx, f.factoryOwner, f.factory.Addr, overBalance)
			return err
		}, supplychain.ErrInsufficientBalance},
		{"Not the owner", func() error {
			_, err := f.chain.WithdrawFactoryBalance(ctx, intruder, f.factory.Addr, hundred)
			return err
		}, supplychain.ErrUnauthorized},
		{"Wrong role for source", func() error {
			_, err := f.chain.WithdrawInspectorBalance(ctx, f.factoryOwner, f.inspection.Addr, hundred)
			return err
		}, supplychain.ErrUnauthorized},
		{"Unknown source", func() error {
			_, err := f.chain.WithdrawFactoryBalance(ctx, f.factoryOwner, id.Derive(id.PrefixFactory, "idn.x", 9), hundred)
			return err
		}, supplychain.ErrFactoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	// None of the rejected withdrawals may have touched the record.
	factory, err := f.chain.GetFactory(ctx, f.factory.Addr)
	if err != nil {
		t.Fatalf("get factory: %v", err)
	}
	if factory.Balance != units(t, 400) {
		t.Errorf("record balance after failed withdrawals: got %s, want 400 units", factory.Balance)
	}
}

func TestWithdrawalReserveFloor(t *testing.T) {
	ctx := context.Background()

	// The treasury retains 350 units per address, so only 50 of the
	// factory's 400-unit balance is usable. The withdrawal clears the
	// bookkeeping check but not the treasury one.
	f := newFlowFixture(t, units(t, 350))

	_, err := f.chain.WithdrawFactoryBalance(ctx, f.factoryOwner, f.factory.Addr, units(t, 100))
	if !errors.Is(err, supplychain.ErrInsufficientBalance) {
		t.Fatalf("got %v, want ErrInsufficientBalance", err)
	}

	factory, err := f.chain.GetFactory(ctx, f.factory.Addr)
	if err != nil {
		t.Fatalf("get factory: %v", err)
	}
	if factory.Balance != units(t, 400) {
		t.Errorf("record balance: got %s, want 400 units", factory.Balance)
	}
}

func TestWithdrawalDrainsToReserve(t *testing.T) {
	ctx := context.Background()

	// With a 300-unit reserve, exactly 100 of the factory's 400-unit
	// treasury balance is usable. Withdrawing precisely that boundary
	// amount succeeds and leaves the source at the reserve.
	f := newFlowFixture(t, units(t, 300))

	if _, err := f.chain.WithdrawFactoryBalance(ctx, f.factoryOwner, f.factory.Addr, units(t, 100)); err != nil {
		t.Fatalf("withdraw at usable boundary: %v", err)
	}

	if got := f.bank.Balance(f.factory.Addr); got != units(t, 300) {
		t.Errorf("source treasury: got %s, want the 300-unit reserve", got)
	}
	factory, err := f.chain.GetFactory(ctx, f.factory.Addr)
	if err != nil {
		t.Fatalf("get factory: %v", err)
	}
	if factory.Balance != units(t, 300) {
		t.Errorf("record balance: got %s, want 300 units", factory.Balance)
	}
	// 2% fee on the 100-unit gross: 98 net to the caller, 2 to the
	// platform owner.
	if got := f.bank.Balance(f.platformOwner); got != units(t, 2) {
		t.Errorf("platform fee: got %s, want 2 units", got)
	}
}

func TestWithdrawalGateVeto(t *testing.T) {
	ctx := context.Background()
	veto := errors.New("held for review")
	f := newFlowFixture(t, 0, supplychain.WithPlugin(vetoGate{err: veto}))

	_, err := f.chain.WithdrawFactoryBalance(ctx, f.factoryOwner, f.factory.Addr, units(t, 100))
	if err == nil {
		t.Fatal("expected gate rejection")
	}
	if !errors.Is(err, veto) {
		t.Errorf("got %v, want wrapped gate error", err)
	}

	// A vetoed withdrawal moves no funds and mutates nothing.
	factory, getErr := f.chain.GetFactory(ctx, f.factory.Addr)
	if getErr != nil {
		t.Fatalf("get factory: %v", getErr)
	}
	if factory.Balance != units(t, 400) {
		t.Errorf("record balance: got %s, want 400 units", factory.Balance)
	}
	if got := f.bank.Balance(f.factory.Addr); got != units(t, 400) {
		t.Errorf("source treasury: got %s, want 400 units", got)
	}
	if got := f.bank.Balance(f.platformOwner); !got.IsZero() {
		t.Errorf("platform owner: got %s, want 0", got)
	}
}
