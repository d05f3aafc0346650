package extension

import (
	supplychain "github.com/xraph/supplychain"
	"github.com/xraph/supplychain/funds"
	"github.com/xraph/supplychain/plugin"
	"github.com/xraph/supplychain/store"
)

// Option configures the supply chain Forge extension.
type Option func(*Extension)

// WithStore sets the store for the engine.
func WithStore(s store.Store) Option {
	return func(e *Extension) {
		e.store = s
	}
}

// WithTreasury sets the treasury for the engine.
func WithTreasury(t funds.Treasury) Option {
	return func(e *Extension) {
		e.treasury = t
	}
}

// WithChainOption passes a supplychain.Option through to the underlying engine.
func WithChainOption(opt supplychain.Option) Option {
	return func(e *Extension) {
		e.chainOpts = append(e.chainOpts, opt)
	}
}

// WithPlugin registers an engine plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(e *Extension) {
		e.chainOpts = append(e.chainOpts, supplychain.WithPlugin(p))
	}
}

// WithConfig sets the Forge extension configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extension) { e.config = cfg }
}

// WithDisableMigrate prevents auto-migration on start.
func WithDisableMigrate() Option {
	return func(e *Extension) { e.config.DisableMigrate = true }
}

// WithTreasuryReserve sets the per-address reserve floor in base units
// for the default in-memory treasury.
func WithTreasuryReserve(reserve uint64) Option {
	return func(e *Extension) { e.config.TreasuryReserve = reserve }
}

// WithPlatformOwner bootstraps the platform configuration on start with
// the given owner address.
func WithPlatformOwner(owner string) Option {
	return func(e *Extension) { e.config.PlatformOwner = owner }
}

// WithRequireConfig requires config to be present in YAML files.
// If true and no config is found, Register returns an error.
func WithRequireConfig(require bool) Option {
	return func(e *Extension) { e.config.RequireConfig = require }
}
