package id_test

import (
	"strings"
	"testing"

	"github.com/xraph/supplychain/id"
)

func TestNewAccount(t *testing.T) {
	a := id.NewAccount()
	if a.IsNil() {
		t.Fatal("expected non-nil address")
	}
	if !strings.HasPrefix(a.String(), "acct_") {
		t.Errorf("expected acct_ prefix, got %q", a)
	}
	if !a.Is(id.PrefixAccount) {
		t.Errorf("expected account prefix, got %q", a.Prefix())
	}
}

func TestNewAccountUnique(t *testing.T) {
	seen := make(map[id.Address]bool)
	for i := 0; i < 100; i++ {
		a := id.NewAccount()
		if seen[a] {
			t.Fatalf("duplicate address: %q", a)
		}
		seen[a] = true
	}
}

func TestParseAccountRoundTrip(t *testing.T) {
	a := id.NewAccount()
	parsed, err := id.ParseAccount(a.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != a {
		t.Errorf("got %q, want %q", parsed, a)
	}
}

func TestParseAccountRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Garbage", "not an address"},
		{"Wrong prefix", "plan_01h455vb4pex5vsknk084sn02q"},
		{"Derived address", "fact.idn.acct_x.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := id.ParseAccount(tt.input); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	parent := id.Address("idn.acct_01h455vb4pex5vsknk084sn02q")

	a := id.Derive(id.PrefixFactory, parent, 1)
	b := id.Derive(id.PrefixFactory, parent, 1)
	if a != b {
		t.Errorf("derivation not deterministic: %q != %q", a, b)
	}
	if !a.Is(id.PrefixFactory) {
		t.Errorf("expected factory prefix, got %q", a.Prefix())
	}

	c := id.Derive(id.PrefixFactory, parent, 2)
	if a == c {
		t.Error("distinct sequences must yield distinct addresses")
	}
	d := id.Derive(id.PrefixProduct, parent, 1)
	if a == d {
		t.Error("distinct prefixes must yield distinct addresses")
	}
}

func TestPlatformConfig(t *testing.T) {
	a := id.PlatformConfig()
	if a != id.PlatformConfig() {
		t.Error("platform config address must be stable")
	}
	if !a.Is(id.PrefixPlatform) {
		t.Errorf("expected platform prefix, got %q", a.Prefix())
	}
}

func TestIdentityFor(t *testing.T) {
	owner := id.NewAccount()
	a := id.IdentityFor(owner)
	if a != id.IdentityFor(owner) {
		t.Error("identity address must be stable per owner")
	}
	if !a.Is(id.PrefixIdentity) {
		t.Errorf("expected identity prefix, got %q", a.Prefix())
	}
	if a == id.IdentityFor(id.NewAccount()) {
		t.Error("distinct owners must yield distinct identities")
	}
}

func TestCustomerHolding(t *testing.T) {
	owner := id.Address("idn.acct_a")
	product := id.Address("prod.fact.idn.acct_b.1.1")

	a := id.CustomerHolding(owner, product)
	if a != id.CustomerHolding(owner, product) {
		t.Error("holding address must be stable per (owner, product)")
	}
	if !a.Is(id.PrefixCustomer) {
		t.Errorf("expected customer prefix, got %q", a.Prefix())
	}
	other := id.Address("prod.fact.idn.acct_b.1.2")
	if a == id.CustomerHolding(owner, other) {
		t.Error("distinct products must yield distinct holdings")
	}
}

func TestAddressPrefix(t *testing.T) {
	tests := []struct {
		name string
		addr id.Address
		want id.Prefix
	}{
		{"Account", id.NewAccount(), id.PrefixAccount},
		{"Derived", id.Derive(id.PrefixOrder, "selr.x.1", 4), id.PrefixOrder},
		{"Platform", id.PlatformConfig(), id.PrefixPlatform},
		{"Nil", id.Nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Prefix(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
