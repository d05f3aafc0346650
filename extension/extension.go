// Package extension provides the Forge extension adapter for the supply
// chain engine.
//
// It implements the forge.Extension interface to integrate the engine
// into a Forge application with automatic dependency discovery,
// DI registration, and lifecycle management.
//
// Configuration can be provided programmatically via Option functions
// or via YAML configuration files under "extensions.supplychain" or
// "supplychain" keys.
package extension

import (
	"context"
	"errors"

	"github.com/xraph/forge"
	"github.com/xraph/vessel"

	supplychain "github.com/xraph/supplychain"
	"github.com/xraph/supplychain/funds"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/store"
	"github.com/xraph/supplychain/store/memory"
	"github.com/xraph/supplychain/types"
)

// ExtensionName is the name registered with Forge.
const ExtensionName = "supplychain"

// ExtensionDescription is the human-readable description.
const ExtensionDescription = "Supply chain bookkeeping and settlement engine"

// ExtensionVersion is the semantic version.
const ExtensionVersion = "0.1.0"

// Ensure Extension implements forge.Extension at compile time.
var _ forge.Extension = (*Extension)(nil)

// Extension adapts the supply chain engine as a Forge extension.
type Extension struct {
	*forge.BaseExtension

	config    Config
	engine    *supplychain.Chain
	store     store.Store
	treasury  funds.Treasury
	chainOpts []supplychain.Option
}

// New creates a new supply chain Forge extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{
		BaseExtension: forge.NewBaseExtension(ExtensionName, ExtensionVersion, ExtensionDescription),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Engine returns the underlying Chain instance.
// This is nil until Register is called.
func (e *Extension) Engine() *supplychain.Chain { return e.engine }

// Register implements [forge.Extension]. It loads configuration,
// initializes the engine, and registers it in the DI container.
func (e *Extension) Register(fapp forge.App) error {
	if err := e.BaseExtension.Register(fapp); err != nil {
		return err
	}

	if err := e.loadConfiguration(); err != nil {
		return err
	}

	// Use memory store if no store was provided programmatically.
	if e.store == nil {
		e.store = memory.New()
	}

	// Use an in-memory bank if no treasury was provided programmatically.
	if e.treasury == nil {
		e.treasury = funds.NewBank(types.Amount(e.config.TreasuryReserve))
	}

	eng := supplychain.New(e.store, e.treasury, e.chainOpts...)
	e.engine = eng

	return vessel.Provide(fapp.Container(), func() (*supplychain.Chain, error) {
		return e.engine, nil
	})
}

// Start implements [forge.Extension].
func (e *Extension) Start(ctx context.Context) error {
	if e.engine == nil {
		return errors.New("supplychain: extension not initialized")
	}

	if !e.config.DisableMigrate {
		if err := e.engine.Start(ctx); err != nil {
			return err
		}
	}

	if e.config.PlatformOwner != "" {
		_, err := e.engine.InitializePlatform(ctx, id.Address(e.config.PlatformOwner))
		if err != nil && !errors.Is(err, supplychain.ErrAlreadyInitialized) {
			return err
		}
	}

	e.MarkStarted()
	return nil
}

// Stop implements [forge.Extension].
func (e *Extension) Stop(_ context.Context) error {
	if e.engine != nil {
		if err := e.engine.Stop(); err != nil {
			e.MarkStopped()
			return err
		}
	}
	e.MarkStopped()
	return nil
}

// Health implements [forge.Extension].
func (e *Extension) Health(ctx context.Context) error {
	if e.store == nil {
		return errors.New("supplychain: store not initialized")
	}
	return e.store.Ping(ctx)
}

// --- Config Loading ---

// loadConfiguration loads config from YAML files or programmatic sources.
func (e *Extension) loadConfiguration() error {
	programmaticConfig := e.config

	// Try loading from config file.
	fileConfig, configLoaded := e.tryLoadFromConfigFile()

	if !configLoaded {
		if programmaticConfig.RequireConfig {
			return errors.New("supplychain: configuration is required but not found in config files; " +
				"ensure 'extensions.supplychain' or 'supplychain' key exists in your config")
		}

		// Use programmatic config merged with defaults.
		e.config = e.mergeWithDefaults(programmaticConfig)
	} else {
		// Config loaded from YAML -- merge with programmatic options.
		e.config = e.mergeConfigurations(fileConfig, programmaticConfig)
	}

	e.Logger().Debug("supplychain: configuration loaded",
		forge.F("disable_migrate", e.config.DisableMigrate),
		forge.F("treasury_reserve", e.config.TreasuryReserve),
		forge.F("platform_owner", e.config.PlatformOwner),
	)

	return nil
}

// tryLoadFromConfigFile attempts to load config from YAML files.
func (e *Extension) tryLoadFromConfigFile() (Config, bool) {
	cm := e.App().Config()
	var cfg Config

	// Try "extensions.supplychain" first (namespaced pattern).
	if cm.IsSet("extensions.supplychain") {
		if err := cm.Bind("extensions.supplychain", &cfg); err == nil {
			e.Logger().Debug("supplychain: loaded config from file",
				forge.F("key", "extensions.supplychain"),
			)
			return cfg, true
		}
		e.Logger().Warn("supplychain: failed to bind extensions.supplychain config",
			forge.F("error", "bind failed"),
		)
	}

	// Try legacy "supplychain" key.
	if cm.IsSet("supplychain") {
		if err := cm.Bind("supplychain", &cfg); err == nil {
			e.Logger().Debug("supplychain: loaded config from file",
				forge.F("key", "supplychain"),
			)
			return cfg, true
		}
		e.Logger().Warn("supplychain: failed to bind supplychain config",
			forge.F("error", "bind failed"),
		)
	}

	return Config{}, false
}

// mergeWithDefaults fills zero-valued fields with defaults.
func (e *Extension) mergeWithDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if cfg.TreasuryReserve == 0 {
		cfg.TreasuryReserve = defaults.TreasuryReserve
	}
	return cfg
}

// mergeConfigurations merges YAML config with programmatic options.
// YAML config takes precedence for most fields; programmatic bool flags fill gaps.
func (e *Extension) mergeConfigurations(yamlConfig, programmaticConfig Config) Config {
	// Programmatic bool flags override when true.
	if programmaticConfig.DisableMigrate {
		yamlConfig.DisableMigrate = true
	}

	// String fields: YAML takes precedence.
	if yamlConfig.PlatformOwner == "" && programmaticConfig.PlatformOwner != "" {
		yamlConfig.PlatformOwner = programmaticConfig.PlatformOwner
	}

	// Numeric fields: YAML takes precedence, programmatic fills gaps.
	if yamlConfig.TreasuryReserve == 0 && programmaticConfig.TreasuryReserve != 0 {
		yamlConfig.TreasuryReserve = programmaticConfig.TreasuryReserve
	}

	// Fill remaining zeros with defaults.
	return e.mergeWithDefaults(yamlConfig)
}
