package supplychain_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/xraph/supplychain"
	"github.com/xraph/supplychain/funds"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/production"
	"github.com/xraph/supplychain/store/memory"
	"github.com/xraph/supplychain/types"
)

// TestDocumentationExamples verifies that the examples in the package
// documentation compile and run.
func TestDocumentationExamples(t *testing.T) {
	t.Run("QuickStartExample", func(t *testing.T) {
		// Create store (memory for demo, use PostgreSQL in production)
		store := memory.New()

		// Treasury backing value transfers
		treasury := funds.NewBank(0)

		// Create chain
		chain := supplychain.New(store, treasury,
			supplychain.WithLogger(slog.Default()),
		)

		// Start the engine (runs migrations, initializes plugins)
		ctx := context.Background()
		if err := chain.Start(ctx); err != nil {
			t.Fatal(err)
		}
		defer chain.Stop()

		// Bootstrap the platform
		platformOwner := id.NewAccount()
		if _, err := chain.InitializePlatform(ctx, platformOwner); err != nil {
			t.Fatal(err)
		}

		// Every actor registers an identity carrying exactly one role
		wallet := id.NewAccount()
		ident, err := chain.RegisterIdentity(ctx, wallet, "Acme", "ops@acme.example", "FACTORY")
		if err != nil {
			t.Fatal(err)
		}
		if ident.Role != "FACTORY" {
			t.Fatalf("unexpected role: %s", ident.Role)
		}

		// Records cross-reference each other down the chain
		factory, err := chain.CreateFactory(ctx, wallet, production.FactoryInput{Name: "Acme Plant 1"})
		if err != nil {
			t.Fatal(err)
		}
		price, err := types.Units(10)
		if err != nil {
			t.Fatal(err)
		}
		product, err := chain.CreateProduct(ctx, wallet, factory.Addr, production.ProductInput{
			Name:  "Widget",
			Price: price,
			Stock: 100,
		})
		if err != nil {
			t.Fatal(err)
		}
		if product.FactoryAddr != factory.Addr {
			t.Fatalf("product not linked to factory: %s", product.FactoryAddr)
		}
	})
}
