package memory

import (
	"context"
	"sync"

	"github.com/xraph/supplychain"
	"github.com/xraph/supplychain/distribution"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/platform"
	"github.com/xraph/supplychain/production"
	"github.com/xraph/supplychain/retail"
	"github.com/xraph/supplychain/txlog"
)

// Store is an in-memory implementation backed by maps. Every read hands
// out a copy, so callers can stage mutations on the returned record and
// only the explicit Update writes them back.
type Store struct {
	mu sync.RWMutex

	// Singleton platform configuration
	config *platform.Config

	// Identity registry keyed by derived identity address
	identities map[id.Address]*identity.Identity

	// Production records
	factories   map[id.Address]*production.Factory
	products    map[id.Address]*production.Product
	inspections map[id.Address]*production.Inspection

	// Distribution records
	warehouses map[id.Address]*distribution.Warehouse
	orders     map[id.Address]*distribution.Order
	logistics  map[id.Address]*distribution.Logistics

	// Retail records
	sellers          map[id.Address]*retail.Seller
	sellerStocks     map[id.Address]*retail.SellerStock
	customerProducts map[id.Address]*retail.CustomerProduct

	// Append-only transaction log
	transactions []*txlog.Transaction
	txByAddr     map[id.Address]*txlog.Transaction
}

func New() *Store {
	return &Store{
		identities:       make(map[id.Address]*identity.Identity),
		factories:        make(map[id.Address]*production.Factory),
		products:         make(map[id.Address]*production.Product),
		inspections:      make(map[id.Address]*production.Inspection),
		warehouses:       make(map[id.Address]*distribution.Warehouse),
		orders:           make(map[id.Address]*distribution.Order),
		logistics:        make(map[id.Address]*distribution.Logistics),
		sellers:          make(map[id.Address]*retail.Seller),
		sellerStocks:     make(map[id.Address]*retail.SellerStock),
		customerProducts: make(map[id.Address]*retail.CustomerProduct),
		transactions:     make([]*txlog.Transaction, 0),
		txByAddr:         make(map[id.Address]*txlog.Transaction),
	}
}

// Platform Store implementation
func (s *Store) CreateConfig(_ context.Context, cfg *platform.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config != nil {
		return supplychain.ErrAlreadyInitialized
	}
	cp := *cfg
	s.config = &cp
	return nil
}

func (s *Store) GetConfig(_ context.Context) (*platform.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.config == nil {
		return nil, supplychain.ErrConfigNotFound
	}
	cp := *s.config
	return &cp, nil
}

func (s *Store) UpdateConfig(_ context.Context, cfg *platform.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config == nil {
		return supplychain.ErrConfigNotFound
	}
	cp := *cfg
	s.config = &cp
	return nil
}

// Identity Store implementation
func (s *Store) CreateIdentity(_ context.Context, ident *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.identities[ident.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *ident
	s.identities[ident.Addr] = &cp
	return nil
}

func (s *Store) GetIdentity(_ context.Context, addr id.Address) (*identity.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ident, ok := s.identities[addr]; ok {
		cp := *ident
		return &cp, nil
	}
	return nil, supplychain.ErrIdentityNotFound
}

func (s *Store) UpdateIdentity(_ context.Context, ident *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.identities[ident.Addr]; !exists {
		return supplychain.ErrIdentityNotFound
	}
	cp := *ident
	s.identities[ident.Addr] = &cp
	return nil
}

// Factory Store implementation
func (s *Store) CreateFactory(_ context.Context, f *production.Factory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.factories[f.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *f
	s.factories[f.Addr] = &cp
	return nil
}

func (s *Store) GetFactory(_ context.Context, addr id.Address) (*production.Factory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f, ok := s.factories[addr]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, supplychain.ErrFactoryNotFound
}

func (s *Store) UpdateFactory(_ context.Context, f *production.Factory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.factories[f.Addr]; !exists {
		return supplychain.ErrFactoryNotFound
	}
	cp := *f
	s.factories[f.Addr] = &cp
	return nil
}

// Product Store implementation
func (s *Store) CreateProduct(_ context.Context, p *production.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *p
	s.products[p.Addr] = &cp
	return nil
}

func (s *Store) GetProduct(_ context.Context, addr id.Address) (*production.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.products[addr]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, supplychain.ErrProductNotFound
}

func (s *Store) UpdateProduct(_ context.Context, p *production.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.Addr]; !exists {
		return supplychain.ErrProductNotFound
	}
	cp := *p
	s.products[p.Addr] = &cp
	return nil
}

// Inspection Store implementation
func (s *Store) CreateInspection(_ context.Context, insp *production.Inspection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.inspections[insp.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *insp
	s.inspections[insp.Addr] = &cp
	return nil
}

func (s *Store) GetInspection(_ context.Context, addr id.Address) (*production.Inspection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if insp, ok := s.inspections[addr]; ok {
		cp := *insp
		return &cp, nil
	}
	return nil, supplychain.ErrInspectionNotFound
}

func (s *Store) UpdateInspection(_ context.Context, insp *production.Inspection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.inspections[insp.Addr]; !exists {
		return supplychain.ErrInspectionNotFound
	}
	cp := *insp
	s.inspections[insp.Addr] = &cp
	return nil
}

// Warehouse Store implementation
func (s *Store) CreateWarehouse(_ context.Context, w *distribution.Warehouse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.warehouses[w.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *w
	s.warehouses[w.Addr] = &cp
	return nil
}

func (s *Store) GetWarehouse(_ context.Context, addr id.Address) (*distribution.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if w, ok := s.warehouses[addr]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, supplychain.ErrWarehouseNotFound
}

func (s *Store) UpdateWarehouse(_ context.Context, w *distribution.Warehouse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.warehouses[w.Addr]; !exists {
		return supplychain.ErrWarehouseNotFound
	}
	cp := *w
	s.warehouses[w.Addr] = &cp
	return nil
}

// Order Store implementation
func (s *Store) CreateOrder(_ context.Context, o *distribution.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[o.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *o
	s.orders[o.Addr] = &cp
	return nil
}

func (s *Store) GetOrder(_ context.Context, addr id.Address) (*distribution.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if o, ok := s.orders[addr]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, supplychain.ErrOrderNotFound
}

func (s *Store) UpdateOrder(_ context.Context, o *distribution.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[o.Addr]; !exists {
		return supplychain.ErrOrderNotFound
	}
	cp := *o
	s.orders[o.Addr] = &cp
	return nil
}

// Logistics Store implementation
func (s *Store) CreateLogistics(_ context.Context, l *distribution.Logistics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.logistics[l.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *l
	s.logistics[l.Addr] = &cp
	return nil
}

func (s *Store) GetLogistics(_ context.Context, addr id.Address) (*distribution.Logistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l, ok := s.logistics[addr]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, supplychain.ErrLogisticsNotFound
}

func (s *Store) UpdateLogistics(_ context.Context, l *distribution.Logistics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.logistics[l.Addr]; !exists {
		return supplychain.ErrLogisticsNotFound
	}
	cp := *l
	s.logistics[l.Addr] = &cp
	return nil
}

// Seller Store implementation
func (s *Store) CreateSeller(_ context.Context, sl *retail.Seller) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sellers[sl.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *sl
	s.sellers[sl.Addr] = &cp
	return nil
}

func (s *Store) GetSeller(_ context.Context, addr id.Address) (*retail.Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sl, ok := s.sellers[addr]; ok {
		cp := *sl
		return &cp, nil
	}
	return nil, supplychain.ErrSellerNotFound
}

func (s *Store) UpdateSeller(_ context.Context, sl *retail.Seller) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sellers[sl.Addr]; !exists {
		return supplychain.ErrSellerNotFound
	}
	cp := *sl
	s.sellers[sl.Addr] = &cp
	return nil
}

// SellerStock Store implementation
func (s *Store) CreateSellerStock(_ context.Context, st *retail.SellerStock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sellerStocks[st.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *st
	s.sellerStocks[st.Addr] = &cp
	return nil
}

func (s *Store) GetSellerStock(_ context.Context, addr id.Address) (*retail.SellerStock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.sellerStocks[addr]; ok {
		cp := *st
		return &cp, nil
	}
	return nil, supplychain.ErrSellerStockNotFound
}

func (s *Store) UpdateSellerStock(_ context.Context, st *retail.SellerStock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sellerStocks[st.Addr]; !exists {
		return supplychain.ErrSellerStockNotFound
	}
	cp := *st
	s.sellerStocks[st.Addr] = &cp
	return nil
}

// CustomerProduct Store implementation
func (s *Store) CreateCustomerProduct(_ context.Context, c *retail.CustomerProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.customerProducts[c.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *c
	s.customerProducts[c.Addr] = &cp
	return nil
}

func (s *Store) GetCustomerProduct(_ context.Context, addr id.Address) (*retail.CustomerProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.customerProducts[addr]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, supplychain.ErrCustomerProductNotFound
}

func (s *Store) UpdateCustomerProduct(_ context.Context, c *retail.CustomerProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.customerProducts[c.Addr]; !exists {
		return supplychain.ErrCustomerProductNotFound
	}
	cp := *c
	s.customerProducts[c.Addr] = &cp
	return nil
}

// Transaction Store implementation
func (s *Store) AppendTransaction(_ context.Context, tx *txlog.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.txByAddr[tx.Addr]; exists {
		return supplychain.ErrAlreadyExists
	}
	cp := *tx
	s.transactions = append(s.transactions, &cp)
	s.txByAddr[tx.Addr] = &cp
	return nil
}

func (s *Store) GetTransaction(_ context.Context, addr id.Address) (*txlog.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tx, ok := s.txByAddr[addr]; ok {
		cp := *tx
		return &cp, nil
	}
	return nil, supplychain.ErrTransactionNotFound
}

func (s *Store) ListTransactionsByParty(_ context.Context, party id.Address, opts txlog.ListOpts) ([]*txlog.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*txlog.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.From == party || tx.To == party {
			cp := *tx
			result = append(result, &cp)
		}
	}

	// Apply limit/offset
	start := opts.Offset
	if start > len(result) {
		start = len(result)
	}
	end := start + opts.Limit
	if opts.Limit == 0 || end > len(result) {
		end = len(result)
	}

	return result[start:end], nil
}

// Core methods
func (s *Store) Migrate(_ context.Context) error { return nil }
func (s *Store) Ping(_ context.Context) error    { return nil }
func (s *Store) Close() error                    { return nil }
