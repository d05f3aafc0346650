package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xraph/supplychain"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/platform"
	"github.com/xraph/supplychain/production"
	"github.com/xraph/supplychain/store/memory"
	"github.com/xraph/supplychain/txlog"
	"github.com/xraph/supplychain/types"
)

func TestConfigSingleton(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	if _, err := s.GetConfig(ctx); !errors.Is(err, supplychain.ErrConfigNotFound) {
		t.Fatalf("got %v, want ErrConfigNotFound", err)
	}

	cfg := &platform.Config{Addr: id.PlatformConfig(), Owner: id.NewAccount(), FeePercent: 2}
	if err := s.CreateConfig(ctx, cfg); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.CreateConfig(ctx, cfg); !errors.Is(err, supplychain.ErrAlreadyInitialized) {
		t.Fatalf("got %v, want ErrAlreadyInitialized", err)
	}

	got, err := s.GetConfig(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FeePercent != 2 {
		t.Errorf("fee: got %d, want 2", got.FeePercent)
	}

	got.FeePercent = 5
	if err := s.UpdateConfig(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = s.GetConfig(ctx)
	if got.FeePercent != 5 {
		t.Errorf("fee after update: got %d, want 5", got.FeePercent)
	}
}

func TestIdentityCRUD(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	owner := id.NewAccount()
	ident := &identity.Identity{
		Addr:  id.IdentityFor(owner),
		Owner: owner,
		Name:  "alice",
		Role:  identity.RoleFactory,
	}

	if _, err := s.GetIdentity(ctx, ident.Addr); !errors.Is(err, supplychain.ErrIdentityNotFound) {
		t.Fatalf("got %v, want ErrIdentityNotFound", err)
	}
	if err := s.UpdateIdentity(ctx, ident); !errors.Is(err, supplychain.ErrIdentityNotFound) {
		t.Fatalf("update missing: got %v, want ErrIdentityNotFound", err)
	}
	if err := s.CreateIdentity(ctx, ident); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.CreateIdentity(ctx, ident); !errors.Is(err, supplychain.ErrAlreadyExists) {
		t.Fatalf("duplicate: got %v, want ErrAlreadyExists", err)
	}

	got, err := s.GetIdentity(ctx, ident.Addr)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "alice" || got.Role != identity.RoleFactory {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	f := &production.Factory{Addr: "fact.idn.acct_x.1", FactoryID: 1, Name: "mill"}
	if err := s.CreateFactory(ctx, f); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating a read-out record must not leak into the store until the
	// explicit Update.
	got, _ := s.GetFactory(ctx, f.Addr)
	got.Balance = types.Unit

	again, _ := s.GetFactory(ctx, f.Addr)
	if again.Balance != 0 {
		t.Errorf("staged mutation leaked into store: balance %d", again.Balance)
	}

	if err := s.UpdateFactory(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ = s.GetFactory(ctx, f.Addr)
	if again.Balance != types.Unit {
		t.Errorf("update not applied: balance %d", again.Balance)
	}

	// Mutating the record handed to Create must not alter the stored copy.
	f.Name = "changed"
	again, _ = s.GetFactory(ctx, f.Addr)
	if again.Name != "mill" {
		t.Errorf("create did not copy: name %q", again.Name)
	}
}

func TestTransactionLog(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	alice := id.NewAccount()
	bob := id.NewAccount()
	carol := id.NewAccount()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := uint64(1); i <= 5; i++ {
		to := bob
		if i == 3 {
			to = carol
		}
		tx := &txlog.Transaction{
			Addr:      id.Derive(id.PrefixTransaction, id.IdentityFor(alice), i),
			Seq:       i,
			From:      alice,
			To:        to,
			Amount:    types.Amount(i * 100),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Confirmed: true,
		}
		if err := s.AppendTransaction(ctx, tx); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Duplicate addresses are rejected.
	dup := &txlog.Transaction{Addr: id.Derive(id.PrefixTransaction, id.IdentityFor(alice), 1)}
	if err := s.AppendTransaction(ctx, dup); !errors.Is(err, supplychain.ErrAlreadyExists) {
		t.Fatalf("duplicate: got %v, want ErrAlreadyExists", err)
	}

	got, err := s.GetTransaction(ctx, id.Derive(id.PrefixTransaction, id.IdentityFor(alice), 2))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Amount != 200 {
		t.Errorf("amount: got %d, want 200", got.Amount)
	}

	tests := []struct {
		name  string
		party id.Address
		opts  txlog.ListOpts
		want  int
	}{
		{"All for sender", alice, txlog.ListOpts{}, 5},
		{"All for receiver", bob, txlog.ListOpts{}, 4},
		{"Single receiver", carol, txlog.ListOpts{}, 1},
		{"Stranger", id.NewAccount(), txlog.ListOpts{}, 0},
		{"Limit", alice, txlog.ListOpts{Limit: 2}, 2},
		{"Offset", alice, txlog.ListOpts{Offset: 3}, 2},
		{"Limit and offset", alice, txlog.ListOpts{Limit: 2, Offset: 4}, 1},
		{"Offset past end", alice, txlog.ListOpts{Offset: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := s.ListTransactionsByParty(ctx, tt.party, tt.opts)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(txs) != tt.want {
				t.Errorf("got %d transactions, want %d", len(txs), tt.want)
			}
		})
	}
}

func TestLifecycle(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	if err := s.Migrate(ctx); err != nil {
		t.Errorf("migrate: %v", err)
	}
	if err := s.Ping(ctx); err != nil {
		t.Errorf("ping: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
