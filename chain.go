package supplychain

import (
	"context"
	"log/slog"

	"github.com/xraph/supplychain/funds"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/platform"
	"github.com/xraph/supplychain/plugin"
	"github.com/xraph/supplychain/store"
	"github.com/xraph/supplychain/txlog"
	"github.com/xraph/supplychain/types"
)

// Chain is the supply chain bookkeeping engine. Every operation is a
// single atomic transition: all checks and all computed values are
// staged against copies before anything is written back, so a failed
// operation leaves no observable mutation.
type Chain struct {
	store    store.Store
	treasury funds.Treasury
	plugins  *plugin.Registry
	logger   *slog.Logger
	clock    Clock
}

// New creates a new Chain instance.
func New(s store.Store, t funds.Treasury, opts ...Option) *Chain {
	c := &Chain{
		store:    s,
		treasury: t,
		plugins:  plugin.NewRegistry(),
		logger:   slog.Default(),
		clock:    SystemClock{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Option configures a Chain instance.
type Option func(*Chain)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		c.logger = logger
		c.plugins.WithLogger(logger)
	}
}

// WithClock sets the timestamp source.
func WithClock(clock Clock) Option {
	return func(c *Chain) {
		c.clock = clock
	}
}

// WithPlugin registers a plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(c *Chain) {
		_ = c.plugins.Register(p) //nolint:errcheck // best-effort plugin registration during init
	}
}

// Start migrates the store and initializes plugins.
func (c *Chain) Start(ctx context.Context) error {
	if err := c.store.Migrate(ctx); err != nil {
		return err
	}

	c.plugins.EmitInit(ctx, c)

	c.logger.Info("supply chain engine started",
		"plugins", c.plugins.Count(),
	)

	return nil
}

// Stop shuts down the Chain.
func (c *Chain) Stop() error {
	ctx := context.Background()
	c.plugins.EmitShutdown(ctx)

	return c.store.Close()
}

// Plugins returns the plugin registry.
func (c *Chain) Plugins() *plugin.Registry { return c.plugins }

// ──────────────────────────────────────────────────
// Platform Configuration
// ──────────────────────────────────────────────────

// InitializePlatform creates the platform configuration singleton with
// the default fee. Fails if the platform was already initialized.
func (c *Chain) InitializePlatform(ctx context.Context, owner id.Address) (*platform.Config, error) {
	if _, err := c.store.GetConfig(ctx); err == nil {
		return nil, ErrAlreadyInitialized
	}

	cfg := &platform.Config{
		Entity:      types.NewEntity(c.clock.Now()),
		Addr:        id.PlatformConfig(),
		Owner:       owner,
		FeePercent:  platform.DefaultFeePercent,
		Initialized: true,
	}

	if err := c.store.CreateConfig(ctx, cfg); err != nil {
		return nil, err
	}

	c.plugins.EmitPlatformInitialized(ctx, cfg)
	c.logger.Info("platform initialized",
		"owner", cfg.Owner,
		"fee_percent", cfg.FeePercent,
	)
	return cfg, nil
}

// SetPlatformFee updates the fee percentage. Only the platform owner
// may call this, and the fee may not exceed the maximum.
func (c *Chain) SetPlatformFee(ctx context.Context, caller id.Address, feePercent uint64) error {
	cfg, err := c.store.GetConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Owner != caller {
		return ErrUnauthorized
	}
	if feePercent > platform.MaxFeePercent {
		return ErrInvalidPlatformFee
	}

	oldPct := cfg.FeePercent
	cfg.FeePercent = feePercent
	cfg.Touch(c.clock.Now())

	if err := c.store.UpdateConfig(ctx, cfg); err != nil {
		return err
	}

	c.plugins.EmitPlatformFeeChanged(ctx, oldPct, feePercent)
	return nil
}

// ──────────────────────────────────────────────────
// Identity Registry
// ──────────────────────────────────────────────────

// RegisterIdentity registers a new actor. One identity exists per owner
// address; the role is fixed at registration and all counters start at
// zero.
func (c *Chain) RegisterIdentity(ctx context.Context, owner id.Address, name, email, roleName string) (*identity.Identity, error) {
	if err := boundedField("name", name, identity.MaxNameLen); err != nil {
		return nil, err
	}
	if err := boundedField("email", email, identity.MaxEmailLen); err != nil {
		return nil, err
	}
	if err := boundedField("role", roleName, identity.MaxRoleLen); err != nil {
		return nil, err
	}
	role, ok := identity.ParseRole(roleName)
	if !ok {
		return nil, ErrInvalidRole
	}

	addr := id.IdentityFor(owner)
	if _, err := c.store.GetIdentity(ctx, addr); err == nil {
		return nil, ErrAlreadyInitialized
	}

	ident := &identity.Identity{
		Entity:      types.NewEntity(c.clock.Now()),
		Addr:        addr,
		Owner:       owner,
		Name:        name,
		Email:       email,
		Role:        role,
		IsCustomer:  role == identity.RoleCustomer,
		Initialized: true,
	}

	if err := c.store.CreateIdentity(ctx, ident); err != nil {
		return nil, err
	}

	c.plugins.EmitIdentityRegistered(ctx, ident)
	c.logger.Info("identity registered",
		"addr", ident.Addr,
		"role", ident.Role,
	)
	return ident, nil
}

// GetIdentity retrieves the identity registered by a signer.
func (c *Chain) GetIdentity(ctx context.Context, owner id.Address) (*identity.Identity, error) {
	return c.store.GetIdentity(ctx, id.IdentityFor(owner))
}

// GetConfig retrieves the platform configuration.
func (c *Chain) GetConfig(ctx context.Context) (*platform.Config, error) {
	return c.store.GetConfig(ctx)
}

// ──────────────────────────────────────────────────
// Transaction Log
// ──────────────────────────────────────────────────

// GetTransaction retrieves a transaction record by address.
func (c *Chain) GetTransaction(ctx context.Context, addr id.Address) (*txlog.Transaction, error) {
	return c.store.GetTransaction(ctx, addr)
}

// ListTransactions lists money movements touching a party address.
func (c *Chain) ListTransactions(ctx context.Context, party id.Address, opts txlog.ListOpts) ([]*txlog.Transaction, error) {
	return c.store.ListTransactionsByParty(ctx, party, opts)
}

// stageTransaction builds the next transaction record for an identity
// and bumps the staged identity's counter. The caller persists both.
func (c *Chain) stageTransaction(ident *identity.Identity, from, to id.Address, amount types.Amount) (*txlog.Transaction, error) {
	seq, err := checkedIncr(ident.TransactionCount)
	if err != nil {
		return nil, err
	}

	tx := &txlog.Transaction{
		Entity:    types.NewEntity(c.clock.Now()),
		Addr:      id.Derive(id.PrefixTransaction, ident.Addr, seq),
		Seq:       seq,
		From:      from,
		To:        to,
		Amount:    amount,
		Timestamp: c.clock.Now(),
		Confirmed: true,
	}

	ident.TransactionCount = seq
	return tx, nil
}
