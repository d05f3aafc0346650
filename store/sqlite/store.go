// Package sqlite provides a SQLite store implementation
// built on Grove ORM.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/sqlitedriver"
	"github.com/xraph/grove/migrate"

	supplychain "github.com/xraph/supplychain"
	"github.com/xraph/supplychain/distribution"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/platform"
	"github.com/xraph/supplychain/production"
	"github.com/xraph/supplychain/retail"
	chainstore "github.com/xraph/supplychain/store"
	"github.com/xraph/supplychain/txlog"
)

// compile-time interface check
var _ chainstore.Store = (*Store)(nil)

// Store implements store.Store using SQLite via Grove ORM.
type Store struct {
	db  *grove.DB
	sdb *sqlitedriver.SqliteDB
}

// New creates a new SQLite store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db:  db,
		sdb: sqlitedriver.Unwrap(db),
	}
}

// DB returns the underlying grove database for direct access.
func (s *Store) DB() *grove.DB { return s.db }

// Migrate creates the required tables and indexes using the grove orchestrator.
func (s *Store) Migrate(ctx context.Context) error {
	executor, err := migrate.NewExecutorFor(s.sdb)
	if err != nil {
		return fmt.Errorf("supplychain/sqlite: create migration executor: %w", err)
	}
	orch := migrate.NewOrchestrator(executor, Migrations)
	if _, err := orch.Migrate(ctx); err != nil {
		return fmt.Errorf("supplychain/sqlite: migration failed: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ==================== Platform config ====================

func (s *Store) CreateConfig(ctx context.Context, cfg *platform.Config) error {
	m := toConfigModel(cfg)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetConfig(ctx context.Context) (*platform.Config, error) {
	m := new(configModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", id.PlatformConfig().String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrConfigNotFound
		}
		return nil, err
	}
	return fromConfigModel(m), nil
}

func (s *Store) UpdateConfig(ctx context.Context, cfg *platform.Config) error {
	m := toConfigModel(cfg)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrConfigNotFound
	}
	return nil
}

// ==================== Identity registry ====================

func (s *Store) CreateIdentity(ctx context.Context, ident *identity.Identity) error {
	m := toIdentityModel(ident)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetIdentity(ctx context.Context, addr id.Address) (*identity.Identity, error) {
	m := new(identityModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrIdentityNotFound
		}
		return nil, err
	}
	return fromIdentityModel(m), nil
}

func (s *Store) UpdateIdentity(ctx context.Context, ident *identity.Identity) error {
	m := toIdentityModel(ident)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrIdentityNotFound
	}
	return nil
}

// ==================== Production records ====================

func (s *Store) CreateFactory(ctx context.Context, f *production.Factory) error {
	m := toFactoryModel(f)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetFactory(ctx context.Context, addr id.Address) (*production.Factory, error) {
	m := new(factoryModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrFactoryNotFound
		}
		return nil, err
	}
	return fromFactoryModel(m), nil
}

func (s *Store) UpdateFactory(ctx context.Context, f *production.Factory) error {
	m := toFactoryModel(f)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrFactoryNotFound
	}
	return nil
}

func (s *Store) CreateProduct(ctx context.Context, p *production.Product) error {
	m := toProductModel(p)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetProduct(ctx context.Context, addr id.Address) (*production.Product, error) {
	m := new(productModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrProductNotFound
		}
		return nil, err
	}
	return fromProductModel(m), nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *production.Product) error {
	m := toProductModel(p)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrProductNotFound
	}
	return nil
}

func (s *Store) CreateInspection(ctx context.Context, insp *production.Inspection) error {
	m := toInspectionModel(insp)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetInspection(ctx context.Context, addr id.Address) (*production.Inspection, error) {
	m := new(inspectionModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrInspectionNotFound
		}
		return nil, err
	}
	return fromInspectionModel(m), nil
}

func (s *Store) UpdateInspection(ctx context.Context, insp *production.Inspection) error {
	m := toInspectionModel(insp)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrInspectionNotFound
	}
	return nil
}

// ==================== Distribution records ====================

func (s *Store) CreateWarehouse(ctx context.Context, w *distribution.Warehouse) error {
	m := toWarehouseModel(w)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetWarehouse(ctx context.Context, addr id.Address) (*distribution.Warehouse, error) {
	m := new(warehouseModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrWarehouseNotFound
		}
		return nil, err
	}
	return fromWarehouseModel(m), nil
}

func (s *Store) UpdateWarehouse(ctx context.Context, w *distribution.Warehouse) error {
	m := toWarehouseModel(w)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrWarehouseNotFound
	}
	return nil
}

func (s *Store) CreateOrder(ctx context.Context, o *distribution.Order) error {
	m := toOrderModel(o)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetOrder(ctx context.Context, addr id.Address) (*distribution.Order, error) {
	m := new(orderModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrOrderNotFound
		}
		return nil, err
	}
	return fromOrderModel(m), nil
}

func (s *Store) UpdateOrder(ctx context.Context, o *distribution.Order) error {
	m := toOrderModel(o)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrOrderNotFound
	}
	return nil
}

func (s *Store) CreateLogistics(ctx context.Context, l *distribution.Logistics) error {
	m := toLogisticsModel(l)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetLogistics(ctx context.Context, addr id.Address) (*distribution.Logistics, error) {
	m := new(logisticsModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrLogisticsNotFound
		}
		return nil, err
	}
	return fromLogisticsModel(m), nil
}

func (s *Store) UpdateLogistics(ctx context.Context, l *distribution.Logistics) error {
	m := toLogisticsModel(l)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrLogisticsNotFound
	}
	return nil
}

// ==================== Retail records ====================

func (s *Store) CreateSeller(ctx context.Context, sl *retail.Seller) error {
	m := toSellerModel(sl)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetSeller(ctx context.Context, addr id.Address) (*retail.Seller, error) {
	m := new(sellerModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrSellerNotFound
		}
		return nil, err
	}
	return fromSellerModel(m), nil
}

func (s *Store) UpdateSeller(ctx context.Context, sl *retail.Seller) error {
	m := toSellerModel(sl)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrSellerNotFound
	}
	return nil
}

func (s *Store) CreateSellerStock(ctx context.Context, st *retail.SellerStock) error {
	m := toSellerStockModel(st)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetSellerStock(ctx context.Context, addr id.Address) (*retail.SellerStock, error) {
	m := new(sellerStockModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrSellerStockNotFound
		}
		return nil, err
	}
	return fromSellerStockModel(m), nil
}

func (s *Store) UpdateSellerStock(ctx context.Context, st *retail.SellerStock) error {
	m := toSellerStockModel(st)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrSellerStockNotFound
	}
	return nil
}

func (s *Store) CreateCustomerProduct(ctx context.Context, c *retail.CustomerProduct) error {
	m := toCustomerProductModel(c)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetCustomerProduct(ctx context.Context, addr id.Address) (*retail.CustomerProduct, error) {
	m := new(customerProductModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrCustomerProductNotFound
		}
		return nil, err
	}
	return fromCustomerProductModel(m), nil
}

func (s *Store) UpdateCustomerProduct(ctx context.Context, c *retail.CustomerProduct) error {
	m := toCustomerProductModel(c)
	m.UpdatedAt = now()
	res, err := s.sdb.NewUpdate(m).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return supplychain.ErrCustomerProductNotFound
	}
	return nil
}

// ==================== Transaction log ====================

func (s *Store) AppendTransaction(ctx context.Context, tx *txlog.Transaction) error {
	m := toTransactionModel(tx)
	_, err := s.sdb.NewInsert(m).Exec(ctx)
	return err
}

func (s *Store) GetTransaction(ctx context.Context, addr id.Address) (*txlog.Transaction, error) {
	m := new(transactionModel)
	err := s.sdb.NewSelect(m).
		Where("addr = ?", addr.String()).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, supplychain.ErrTransactionNotFound
		}
		return nil, err
	}
	return fromTransactionModel(m), nil
}

func (s *Store) ListTransactionsByParty(ctx context.Context, party id.Address, opts txlog.ListOpts) ([]*txlog.Transaction, error) {
	var models []transactionModel
	q := s.sdb.NewSelect(&models).
		Where("from_addr = ? OR to_addr = ?", party.String(), party.String())

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	q = q.OrderExpr("timestamp ASC")

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	result := make([]*txlog.Transaction, len(models))
	for i := range models {
		result[i] = fromTransactionModel(&models[i])
	}
	return result, nil
}

// ==================== Helpers ====================

// now returns the current UTC time.
func now() time.Time {
	return time.Now().UTC()
}

// isNoRows checks for the standard sql.ErrNoRows sentinel.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
