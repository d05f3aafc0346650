// Package mongo provides a MongoDB store implementation
// built on Grove ORM.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/mongodriver"

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

// Collection name constants.
const (
	colConfig           = "supplychain_config"
	colIdentities       = "supplychain_identities"
	colFactories        = "supplychain_factories"
	colProducts         = "supplychain_products"
	colInspections      = "supplychain_inspections"
	colWarehouses       = "supplychain_warehouses"
	colOrders           = "supplychain_orders"
	colLogistics        = "supplychain_logistics"
	colSellers          = "supplychain_sellers"
	colSellerStocks     = "supplychain_seller_stocks"
	colCustomerProducts = "supplychain_customer_products"
	colTransactions     = "supplychain_transactions"
)

// compile-time interface check
var _ chainstore.Store = (*Store)(nil)

// Store implements store.Store using MongoDB via Grove ORM.
type Store struct {
	db  *grove.DB
	mdb *mongodriver.MongoDB
}

// New creates a new MongoDB store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db:  db,
		mdb: mongodriver.Unwrap(db),
	}
}

// DB returns the underlying grove database for direct access.
func (s *Store) DB() *grove.DB { return s.db }

// Migrate creates indexes for all supply chain collections.
func (s *Store) Migrate(ctx context.Context) error {
	indexes := migrationIndexes()

	for col, models := range indexes {
		if len(models) == 0 {
			continue
		}
		_, err := s.mdb.Collection(col).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("supplychain/mongo: migrate %s indexes: %w", col, err)
		}
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
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create config: %w", err)
	}
	return nil
}

func (s *Store) GetConfig(ctx context.Context) (*platform.Config, error) {
	var m configModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": id.PlatformConfig().String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrConfigNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get config: %w", err)
	}
	return fromConfigModel(&m), nil
}

func (s *Store) UpdateConfig(ctx context.Context, cfg *platform.Config) error {
	m := toConfigModel(cfg)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update config: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrConfigNotFound
	}
	return nil
}

// ==================== Identity registry ====================

func (s *Store) CreateIdentity(ctx context.Context, ident *identity.Identity) error {
	m := toIdentityModel(ident)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create identity: %w", err)
	}
	return nil
}

func (s *Store) GetIdentity(ctx context.Context, addr id.Address) (*identity.Identity, error) {
	var m identityModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get identity: %w", err)
	}
	return fromIdentityModel(&m), nil
}

func (s *Store) UpdateIdentity(ctx context.Context, ident *identity.Identity) error {
	m := toIdentityModel(ident)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update identity: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrIdentityNotFound
	}
	return nil
}

// ==================== Production records ====================

func (s *Store) CreateFactory(ctx context.Context, f *production.Factory) error {
	m := toFactoryModel(f)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create factory: %w", err)
	}
	return nil
}

func (s *Store) GetFactory(ctx context.Context, addr id.Address) (*production.Factory, error) {
	var m factoryModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrFactoryNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get factory: %w", err)
	}
	return fromFactoryModel(&m), nil
}

func (s *Store) UpdateFactory(ctx context.Context, f *production.Factory) error {
	m := toFactoryModel(f)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update factory: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrFactoryNotFound
	}
	return nil
}

func (s *Store) CreateProduct(ctx context.Context, p *production.Product) error {
	m := toProductModel(p)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create product: %w", err)
	}
	return nil
}

func (s *Store) GetProduct(ctx context.Context, addr id.Address) (*production.Product, error) {
	var m productModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrProductNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get product: %w", err)
	}
	return fromProductModel(&m), nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *production.Product) error {
	m := toProductModel(p)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update product: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrProductNotFound
	}
	return nil
}

func (s *Store) CreateInspection(ctx context.Context, insp *production.Inspection) error {
	m := toInspectionModel(insp)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create inspection: %w", err)
	}
	return nil
}

func (s *Store) GetInspection(ctx context.Context, addr id.Address) (*production.Inspection, error) {
	var m inspectionModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrInspectionNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get inspection: %w", err)
	}
	return fromInspectionModel(&m), nil
}

func (s *Store) UpdateInspection(ctx context.Context, insp *production.Inspection) error {
	m := toInspectionModel(insp)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update inspection: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrInspectionNotFound
	}
	return nil
}

// ==================== Distribution records ====================

func (s *Store) CreateWarehouse(ctx context.Context, w *distribution.Warehouse) error {
	m := toWarehouseModel(w)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create warehouse: %w", err)
	}
	return nil
}

func (s *Store) GetWarehouse(ctx context.Context, addr id.Address) (*distribution.Warehouse, error) {
	var m warehouseModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get warehouse: %w", err)
	}
	return fromWarehouseModel(&m), nil
}

func (s *Store) UpdateWarehouse(ctx context.Context, w *distribution.Warehouse) error {
	m := toWarehouseModel(w)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update warehouse: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrWarehouseNotFound
	}
	return nil
}

func (s *Store) CreateOrder(ctx context.Context, o *distribution.Order) error {
	m := toOrderModel(o)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create order: %w", err)
	}
	return nil
}

func (s *Store) GetOrder(ctx context.Context, addr id.Address) (*distribution.Order, error) {
	var m orderModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get order: %w", err)
	}
	return fromOrderModel(&m), nil
}

func (s *Store) UpdateOrder(ctx context.Context, o *distribution.Order) error {
	m := toOrderModel(o)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update order: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrOrderNotFound
	}
	return nil
}

func (s *Store) CreateLogistics(ctx context.Context, l *distribution.Logistics) error {
	m := toLogisticsModel(l)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create logistics: %w", err)
	}
	return nil
}

func (s *Store) GetLogistics(ctx context.Context, addr id.Address) (*distribution.Logistics, error) {
	var m logisticsModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrLogisticsNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get logistics: %w", err)
	}
	return fromLogisticsModel(&m), nil
}

func (s *Store) UpdateLogistics(ctx context.Context, l *distribution.Logistics) error {
	m := toLogisticsModel(l)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update logistics: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrLogisticsNotFound
	}
	return nil
}

// ==================== Retail records ====================

func (s *Store) CreateSeller(ctx context.Context, sl *retail.Seller) error {
	m := toSellerModel(sl)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create seller: %w", err)
	}
	return nil
}

func (s *Store) GetSeller(ctx context.Context, addr id.Address) (*retail.Seller, error) {
	var m sellerModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrSellerNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get seller: %w", err)
	}
	return fromSellerModel(&m), nil
}

func (s *Store) UpdateSeller(ctx context.Context, sl *retail.Seller) error {
	m := toSellerModel(sl)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update seller: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrSellerNotFound
	}
	return nil
}

func (s *Store) CreateSellerStock(ctx context.Context, st *retail.SellerStock) error {
	m := toSellerStockModel(st)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create seller stock: %w", err)
	}
	return nil
}

func (s *Store) GetSellerStock(ctx context.Context, addr id.Address) (*retail.SellerStock, error) {
	var m sellerStockModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrSellerStockNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get seller stock: %w", err)
	}
	return fromSellerStockModel(&m), nil
}

func (s *Store) UpdateSellerStock(ctx context.Context, st *retail.SellerStock) error {
	m := toSellerStockModel(st)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update seller stock: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrSellerStockNotFound
	}
	return nil
}

func (s *Store) CreateCustomerProduct(ctx context.Context, c *retail.CustomerProduct) error {
	m := toCustomerProductModel(c)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: create customer product: %w", err)
	}
	return nil
}

func (s *Store) GetCustomerProduct(ctx context.Context, addr id.Address) (*retail.CustomerProduct, error) {
	var m customerProductModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrCustomerProductNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get customer product: %w", err)
	}
	return fromCustomerProductModel(&m), nil
}

func (s *Store) UpdateCustomerProduct(ctx context.Context, c *retail.CustomerProduct) error {
	m := toCustomerProductModel(c)
	m.UpdatedAt = now()

	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Addr}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: update customer product: %w", err)
	}
	if res.MatchedCount() == 0 {
		return supplychain.ErrCustomerProductNotFound
	}
	return nil
}

// ==================== Transaction log ====================

func (s *Store) AppendTransaction(ctx context.Context, tx *txlog.Transaction) error {
	m := toTransactionModel(tx)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("supplychain/mongo: append transaction: %w", err)
	}
	return nil
}

func (s *Store) GetTransaction(ctx context.Context, addr id.Address) (*txlog.Transaction, error) {
	var m transactionModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": addr.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, supplychain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("supplychain/mongo: get transaction: %w", err)
	}
	return fromTransactionModel(&m), nil
}

func (s *Store) ListTransactionsByParty(ctx context.Context, party id.Address, opts txlog.ListOpts) ([]*txlog.Transaction, error) {
	var models []transactionModel

	filter := bson.M{"$or": []bson.M{
		{"from_addr": party.String()},
		{"to_addr": party.String()},
	}}

	q := s.mdb.NewFind(&models).
		Filter(filter).
		Sort(bson.D{{Key: "timestamp", Value: 1}})

	if opts.Limit > 0 {
		q = q.Limit(int64(opts.Limit))
	}
	if opts.Offset > 0 {
		q = q.Skip(int64(opts.Offset))
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("supplychain/mongo: list transactions: %w", err)
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

// isNoDocuments checks if an error wraps mongo.ErrNoDocuments.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// migrationIndexes returns the index definitions for all supply chain collections.
func migrationIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		colConfig: {},
		colIdentities: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		colFactories: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		colProducts: {
			{Keys: bson.D{{Key: "factory_addr", Value: 1}}},
		},
		colInspections: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		colWarehouses: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		colOrders: {
			{Keys: bson.D{{Key: "seller_addr", Value: 1}}},
			{Keys: bson.D{{Key: "warehouse_addr", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		colLogistics: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		colSellers: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		colSellerStocks: {
			{Keys: bson.D{{Key: "seller_addr", Value: 1}}},
		},
		colCustomerProducts: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		colTransactions: {
			{Keys: bson.D{{Key: "from_addr", Value: 1}, {Key: "timestamp", Value: 1}}},
			{Keys: bson.D{{Key: "to_addr", Value: 1}, {Key: "timestamp", Value: 1}}},
		},
	}
}
