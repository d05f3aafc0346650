package extension

// Config holds the supply chain extension configuration.
// Fields can be set programmatically via Option functions or loaded from
// YAML configuration files (under "extensions.supplychain" or "supplychain" keys).
type Config struct {
	// DisableMigrate prevents auto-migration on start.
	DisableMigrate bool `json:"disable_migrate" mapstructure:"disable_migrate" yaml:"disable_migrate"`

	// TreasuryReserve is the per-address reserve floor in base units.
	// When no treasury is provided programmatically, the extension builds
	// an in-memory bank with this floor (default: one whole unit).
	TreasuryReserve uint64 `json:"treasury_reserve" mapstructure:"treasury_reserve" yaml:"treasury_reserve"`

	// PlatformOwner, when set, bootstraps the platform configuration on
	// start with this address as the platform owner. Leave empty to
	// initialize the platform explicitly through the engine.
	PlatformOwner string `json:"platform_owner" mapstructure:"platform_owner" yaml:"platform_owner"`

	// RequireConfig requires config to be present in YAML files.
	// If true and no config is found, Register returns an error.
	RequireConfig bool `json:"-" yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TreasuryReserve: 1_000_000_000,
	}
}
