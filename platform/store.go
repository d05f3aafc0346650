package platform

import "context"

// Store is the persistence surface for the platform configuration.
type Store interface {
	Create(ctx context.Context, cfg *Config) error
	Get(ctx context.Context) (*Config, error)
	Update(ctx context.Context, cfg *Config) error
}
