// Package supplychain provides an authoritative bookkeeping engine for
// multi-party physical-goods supply chains.
//
// The engine is designed as a library, not a service. Import it directly
// into your Go application. It records every step of a supply chain
// (manufacturing, quality inspection, wholesale distribution, shipping,
// retail stocking, and end-customer purchase) as a durable transition
// of shared state, frequently paired with a value transfer:
//
//   - Role- and ownership-based authorization on every transition
//   - Conservation of stock and currency across paired transitions
//   - Overflow-checked integer arithmetic on all balances and stock
//   - Monotonic, gapless per-actor identifier allocation
//   - A settlement engine splitting every withdrawal between the
//     beneficiary and an automatically computed platform fee
//
// # Quick Start
//
// Create a chain instance with your preferred store and treasury:
//
//	import (
//	    "github.com/xraph/supplychain"
//	    "github.com/xraph/supplychain/funds"
//	    "github.com/xraph/supplychain/store/postgres"
//	)
//
//	// Initialize store from a configured grove database handle
//	store := postgres.New(db) // db is a *grove.DB on the postgres driver
//
//	// Create chain
//	chain := supplychain.New(store, treasury)
//
//	// Start the chain (runs migrations, initializes plugins)
//	if err := chain.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer chain.Stop()
//
// # Core Concepts
//
// Every actor registers an identity carrying exactly one role:
//
//	ident, err := chain.RegisterIdentity(ctx, wallet, "Acme", "ops@acme.example", "FACTORY")
//
// Records cross-reference each other down the chain:
//
//	factory, err := chain.CreateFactory(ctx, wallet, production.FactoryInput{Name: "Acme Plant 1"})
//	price, err := types.Units(10)
//	product, err := chain.CreateProduct(ctx, wallet, factory.Addr, production.ProductInput{
//	    Name:  "Widget",
//	    Price: price,
//	    Stock: 100,
//	})
//
// Withdrawals settle through the shared settlement engine, which splits
// the platform fee automatically:
//
//	tx, err := chain.WithdrawFactoryBalance(ctx, wallet, factory.Addr, amount)
//
// # Atomicity
//
// Each operation is a single all-or-nothing transition: every
// authorization check, cross-link check, and arithmetic result is staged
// against copies before any record is written back. A failed operation
// leaves no observable mutation.
//
// All monetary values use the Amount type: unsigned integer base units
// with checked arithmetic, one whole unit being 1e9 base units.
//
// # Addressing
//
// Signer wallets use TypeID for globally unique, K-sortable addresses
// (acct_01h2xcejqtf2nbrexx3vqjhp41). Records use deterministic addresses
// derived from (record prefix, parent address, parent's next sequence
// number), which guarantees uniqueness without coordination.
package supplychain
