package supplychain_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/xraph/supplychain"
	"github.com/xraph/supplychain/distribution"
	"github.com/xraph/supplychain/funds"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/production"
	"github.com/xraph/supplychain/retail"
	"github.com/xraph/supplychain/store/memory"
	"github.com/xraph/supplychain/txlog"
	"github.com/xraph/supplychain/types"
)

func units(t *testing.T, n uint64) types.Amount {
	t.Helper()
	a, err := types.Units(n)
	if err != nil {
		t.Fatalf("units(%d): %v", n, err)
	}
	return a
}

func newTestChain(reserve types.Amount, opts ...supplychain.Option) (*supplychain.Chain, *funds.Bank) {
	bank := funds.NewBank(reserve)
	base := []supplychain.Option{
		supplychain.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		supplychain.WithClock(supplychain.FixedClock{T: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}),
	}
	return supplychain.New(memory.New(), bank, append(base, opts...)...), bank
}

func registerActor(t *testing.T, c *supplychain.Chain, name, role string) id.Address {
	t.Helper()
	owner := id.NewAccount()
	if _, err := c.RegisterIdentity(context.Background(), owner, name, name+"@example.com", role); err != nil {
		t.Fatalf("register %s: %v", role, err)
	}
	return owner
}

// flowFixture drives the production and wholesale steps every
// downstream test depends on: a certified product with the inspection
// fee settled and 40 units bought into a warehouse.
type flowFixture struct {
	chain *supplychain.Chain
	bank  *funds.Bank

	platformOwner  id.Address
	factoryOwner   id.Address
	inspectorOwner id.Address
	warehouseOwner id.Address

	factory    *production.Factory
	product    *production.Product
	inspection *production.Inspection
	warehouse  *distribution.Warehouse
}

func newFlowFixture(t *testing.T, reserve types.Amount, opts ...supplychain.Option) *flowFixture {
	t.Helper()
	ctx := context.Background()

	f := &flowFixture{}
	f.chain, f.bank = newTestChain(reserve, opts...)

	f.platformOwner = id.NewAccount()
	if _, err := f.chain.InitializePlatform(ctx, f.platformOwner); err != nil {
		t.Fatalf("initialize platform: %v", err)
	}

	f.factoryOwner = registerActor(t, f.chain, "mill", string(identity.RoleFactory))
	f.inspectorOwner = registerActor(t, f.chain, "qa", string(identity.RoleInspector))
	f.warehouseOwner = registerActor(t, f.chain, "depot", string(identity.RoleWarehouse))

	funded, err := units(t, 1000).Add(reserve)
	if err != nil {
		t.Fatalf("funding: %v", err)
	}
	for _, w := range []id.Address{f.factoryOwner, f.warehouseOwner} {
		if err := f.bank.Deposit(w, funded); err != nil {
			t.Fatalf("deposit: %v", err)
		}
	}

	f.factory, err = f.chain.CreateFactory(ctx, f.factoryOwner, production.FactoryInput{
		Name:        "Steel Mill",
		Description: "rolled steel",
		ContactInfo: "mill@example.com",
	})
	if err != nil {
		t.Fatalf("create factory: %v", err)
	}

	f.product, err = f.chain.CreateProduct(ctx, f.factoryOwner, f.factory.Addr, production.ProductInput{
		Name:        "Beam",
		BatchNumber: "B-1",
		Price:       units(t, 10),
		MRP:         units(t, 15),
		Stock:       100,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	f.inspection, err = f.chain.InspectProduct(ctx, f.inspectorOwner, f.factory.Addr, f.product.Addr, production.InspectionInput{
		Name:       "QA pass",
		ProductID:  f.product.ProductID,
		Outcome:    "PASS",
		FeePerUnit: units(t, 2),
	})
	if err != nil {
		t.Fatalf("inspect product: %v", err)
	}

	if _, err := f.chain.PayInspector(ctx, f.factoryOwner, f.product.Addr, f.inspection.Addr, f.inspection.InspectionID, f.product.ProductID); err != nil {
		t.Fatalf("pay inspector: %v", err)
	}

	f.warehouse, err = f.chain.CreateWarehouse(ctx, f.warehouseOwner, f.factory.Addr, distribution.WarehouseInput{
		Name:      "Depot A",
		FactoryID: f.factory.FactoryID,
		Size:      5000,
	})
	if err != nil {
		t.Fatalf("create warehouse: %v", err)
	}

	f.warehouse, err = f.chain.BuyProductAsWarehouse(ctx, f.warehouseOwner, f.warehouse.Addr, f.product.Addr, f.factory.Addr,
		f.product.ProductID, f.factory.FactoryID, 40)
	if err != nil {
		t.Fatalf("buy stock: %v", err)
	}
	return f
}

func TestInitializePlatform(t *testing.T) {
	ctx := context.Background()
	chain, _ := newTestChain(0)

	owner := id.NewAccount()
	cfg, err := chain.InitializePlatform(ctx, owner)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if cfg.Owner != owner {
		t.Errorf("owner: got %q, want %q", cfg.Owner, owner)
	}
	if cfg.FeePercent != 2 {
		t.Errorf("default fee: got %d, want 2", cfg.FeePercent)
	}
	if !cfg.Initialized {
		t.Error("expected initialized flag")
	}

	if _, err := chain.InitializePlatform(ctx, id.NewAccount()); !errors.Is(err, supplychain.ErrAlreadyInitialized) {
		t.Fatalf("double init: got %v, want ErrAlreadyInitialized", err)
	}
}

func TestSetPlatformFee(t *testing.T) {
	ctx := context.Background()
	chain, _ := newTestChain(0)
	owner := id.NewAccount()
	if _, err := chain.InitializePlatform(ctx, owner); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	if err := chain.SetPlatformFee(ctx, id.NewAccount(), 3); !errors.Is(err, supplychain.ErrUnauthorized) {
		t.Fatalf("non-owner: got %v, want ErrUnauthorized", err)
	}
	if err := chain.SetPlatformFee(ctx, owner, 6); !errors.Is(err, supplychain.ErrInvalidPlatformFee) {
		t.Fatalf("over max: got %v, want ErrInvalidPlatformFee", err)
	}

	if err := chain.SetPlatformFee(ctx, owner, 5); err != nil {
		t.Fatalf("set fee: %v", err)
	}
	cfg, err := chain.GetConfig(ctx)
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if cfg.FeePercent != 5 {
		t.Errorf("fee: got %d, want 5", cfg.FeePercent)
	}
}

func TestRegisterIdentity(t *testing.T) {
	ctx := context.Background()
	chain, _ := newTestChain(0)

	owner := id.NewAccount()
	ident, err := chain.RegisterIdentity(ctx, owner, "alice", "alice@example.com", "FACTORY")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if ident.Addr != id.IdentityFor(owner) {
		t.Errorf("addr: got %q, want %q", ident.Addr, id.IdentityFor(owner))
	}
	if ident.Role != identity.RoleFactory {
		t.Errorf("role: got %q, want FACTORY", ident.Role)
	}
	if ident.IsCustomer {
		t.Error("factory must not be flagged as customer")
	}

	if _, err := chain.RegisterIdentity(ctx, owner, "alice", "alice@example.com", "SELLER"); !errors.Is(err, supplychain.ErrAlreadyInitialized) {
		t.Fatalf("duplicate: got %v, want ErrAlreadyInitialized", err)
	}

	if _, err := chain.RegisterIdentity(ctx, id.NewAccount(), "bob", "bob@example.com", "WIZARD"); !errors.Is(err, supplychain.ErrInvalidRole) {
		t.Fatalf("bad role: got %v, want ErrInvalidRole", err)
	}

	long := make([]byte, identity.MaxNameLen+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := chain.RegisterIdentity(ctx, id.NewAccount(), string(long), "c@example.com", "SELLER"); !errors.Is(err, supplychain.ErrInvalidInput) {
		t.Fatalf("long name: got %v, want ErrInvalidInput", err)
	}

	cust, err := chain.RegisterIdentity(ctx, id.NewAccount(), "carol", "carol@example.com", "CUSTOMER")
	if err != nil {
		t.Fatalf("register customer: %v", err)
	}
	if !cust.IsCustomer {
		t.Error("customer must carry the customer flag")
	}
}

func TestRoleEnforcement(t *testing.T) {
	ctx := context.Background()
	chain, _ := newTestChain(0)
	if _, err := chain.InitializePlatform(ctx, id.NewAccount()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	seller := registerActor(t, chain, "shop", string(identity.RoleSeller))

	tests := []struct {
		name string
		op   func() error
	}{
		{"CreateFactory", func() error {
			_, err := chain.CreateFactory(ctx, seller, production.FactoryInput{Name: "x"})
			return err
		}},
		{"CreateWarehouse", func() error {
			_, err := chain.CreateWarehouse(ctx, seller, "fact.x.1", distribution.WarehouseInput{Name: "x"})
			return err
		}},
		{"CreateLogistics", func() error {
			_, err := chain.CreateLogistics(ctx, seller, "wrhs.x.1", "prod.x.1", distribution.LogisticsInput{Name: "x"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); !errors.Is(err, supplychain.ErrUnauthorized) {
				t.Errorf("got %v, want ErrUnauthorized", err)
			}
		})
	}
}

func TestProductionFlow(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	product, err := f.chain.GetProduct(ctx, f.product.Addr)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if !product.QualityChecked {
		t.Error("expected quality checked")
	}
	if !product.InspectionFeePaid {
		t.Error("expected inspection fee paid")
	}
	if product.InspectionAddr != f.inspection.Addr {
		t.Errorf("inspection addr: got %q, want %q", product.InspectionAddr, f.inspection.Addr)
	}
	if product.Stock != 60 {
		t.Errorf("stock: got %d, want 60", product.Stock)
	}

	// Inspection fee is fee-per-unit times the full initial stock.
	inspection, err := f.chain.GetInspection(ctx, f.inspection.Addr)
	if err != nil {
		t.Fatalf("get inspection: %v", err)
	}
	if inspection.Balance != units(t, 200) {
		t.Errorf("inspection balance: got %s, want 200 units", inspection.Balance)
	}
	if got := f.bank.Balance(f.inspection.Addr); got != units(t, 200) {
		t.Errorf("inspection treasury: got %s, want 200 units", got)
	}

	// 40 units at price 10 moved the cost to the factory.
	factory, err := f.chain.GetFactory(ctx, f.factory.Addr)
	if err != nil {
		t.Fatalf("get factory: %v", err)
	}
	if factory.Balance != units(t, 400) {
		t.Errorf("factory balance: got %s, want 400 units", factory.Balance)
	}
	if f.warehouse.StockHeld != 40 {
		t.Errorf("stock held: got %d, want 40", f.warehouse.StockHeld)
	}
}

func TestInspectionGuards(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	// A product is inspected exactly once.
	_, err := f.chain.InspectProduct(ctx, f.inspectorOwner, f.factory.Addr, f.product.Addr, production.InspectionInput{
		Name: "again", ProductID: f.product.ProductID, Outcome: "PASS",
	})
	if !errors.Is(err, supplychain.ErrAlreadyProcessed) {
		t.Fatalf("re-inspect: got %v, want ErrAlreadyProcessed", err)
	}

	// The fee settles exactly once.
	_, err = f.chain.PayInspector(ctx, f.factoryOwner, f.product.Addr, f.inspection.Addr, f.inspection.InspectionID, f.product.ProductID)
	if !errors.Is(err, supplychain.ErrAlreadyProcessed) {
		t.Fatalf("re-pay: got %v, want ErrAlreadyProcessed", err)
	}
}

func TestBuyProductGuards(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	_, err := f.chain.BuyProductAsWarehouse(ctx, f.warehouseOwner, f.warehouse.Addr, f.product.Addr, f.factory.Addr,
		f.product.ProductID+7, f.factory.FactoryID, 1)
	if !errors.Is(err, supplychain.ErrIDMismatch) {
		t.Fatalf("wrong product id: got %v, want ErrIDMismatch", err)
	}

	_, err = f.chain.BuyProductAsWarehouse(ctx, f.warehouseOwner, f.warehouse.Addr, f.product.Addr, f.factory.Addr,
		f.product.ProductID, f.factory.FactoryID, 1000)
	if !errors.Is(err, supplychain.ErrInsufficientStock) {
		t.Fatalf("oversell: got %v, want ErrInsufficientStock", err)
	}

	// Another warehouse operator cannot buy into a warehouse they do not own.
	intruder := registerActor(t, f.chain, "rival", string(identity.RoleWarehouse))
	_, err = f.chain.BuyProductAsWarehouse(ctx, intruder, f.warehouse.Addr, f.product.Addr, f.factory.Addr,
		f.product.ProductID, f.factory.FactoryID, 1)
	if !errors.Is(err, supplychain.ErrUnauthorized) {
		t.Fatalf("intruder: got %v, want ErrUnauthorized", err)
	}
}

func TestBuyBeforeFeePaid(t *testing.T) {
	ctx := context.Background()
	chain, bank := newTestChain(0)
	if _, err := chain.InitializePlatform(ctx, id.NewAccount()); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	factoryOwner := registerActor(t, chain, "mill", string(identity.RoleFactory))
	inspectorOwner := registerActor(t, chain, "qa", string(identity.RoleInspector))
	warehouseOwner := registerActor(t, chain, "depot", string(identity.RoleWarehouse))
	if err := bank.Deposit(warehouseOwner, units(t, 1000)); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	factory, err := chain.CreateFactory(ctx, factoryOwner, production.FactoryInput{Name: "Mill"})
	if err != nil {
		t.Fatalf("create factory: %v", err)
	}
	product, err := chain.CreateProduct(ctx, factoryOwner, factory.Addr, production.ProductInput{
		Name: "Beam", Price: units(t, 10), MRP: units(t, 15), Stock: 100,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := chain.InspectProduct(ctx, inspectorOwner, factory.Addr, product.Addr, production.InspectionInput{
		Name: "QA", ProductID: product.ProductID, Outcome: "PASS", FeePerUnit: units(t, 2),
	}); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	warehouse, err := chain.CreateWarehouse(ctx, warehouseOwner, factory.Addr, distribution.WarehouseInput{
		Name: "Depot", FactoryID: factory.FactoryID,
	})
	if err != nil {
		t.Fatalf("create warehouse: %v", err)
	}

	// Inspected but the fee has not settled.
	_, err = chain.BuyProductAsWarehouse(ctx, warehouseOwner, warehouse.Addr, product.Addr, factory.Addr,
		product.ProductID, factory.FactoryID, 10)
	if !errors.Is(err, supplychain.ErrFeeUnpaid) {
		t.Fatalf("got %v, want ErrFeeUnpaid", err)
	}
}

func TestPayInspectorInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	chain, _ := newTestChain(0)
	if _, err := chain.InitializePlatform(ctx, id.NewAccount()); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	factoryOwner := registerActor(t, chain, "mill", string(identity.RoleFactory))
	inspectorOwner := registerActor(t, chain, "qa", string(identity.RoleInspector))

	factory, err := chain.CreateFactory(ctx, factoryOwner, production.FactoryInput{Name: "Mill"})
	if err != nil {
		t.Fatalf("create factory: %v", err)
	}
	product, err := chain.CreateProduct(ctx, factoryOwner, factory.Addr, production.ProductInput{
		Name: "Beam", Price: units(t, 10), Stock: 100,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	inspection, err := chain.InspectProduct(ctx, inspectorOwner, factory.Addr, product.Addr, production.InspectionInput{
		Name: "QA", ProductID: product.ProductID, Outcome: "PASS", FeePerUnit: units(t, 2),
	})
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	// The factory wallet holds nothing; the transfer must fail and the
	// fee-paid flag must stay unset.
	_, err = chain.PayInspector(ctx, factoryOwner, product.Addr, inspection.Addr, inspection.InspectionID, product.ProductID)
	if !errors.Is(err, funds.ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}
	product, err = chain.GetProduct(ctx, product.Addr)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if product.InspectionFeePaid {
		t.Error("failed payment must not mark the fee paid")
	}
}

func TestDistributionAndRetailFlow(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	sellerOwner := registerActor(t, f.chain, "shop", string(identity.RoleSeller))
	logisticsOwner := registerActor(t, f.chain, "fleet", string(identity.RoleLogistics))
	customerOwner := registerActor(t, f.chain, "carol", string(identity.RoleCustomer))
	for _, w := range []id.Address{sellerOwner, customerOwner} {
		if err := f.bank.Deposit(w, units(t, 500)); err != nil {
			t.Fatalf("deposit: %v", err)
		}
	}

	seller, err := f.chain.CreateSeller(ctx, sellerOwner, retail.SellerInput{Name: "Shop"})
	if err != nil {
		t.Fatalf("create seller: %v", err)
	}

	order, err := f.chain.CreateOrderAsSeller(ctx, sellerOwner, seller.Addr, f.warehouse.Addr, f.product.Addr,
		f.warehouse.WarehouseID, f.product.ProductID, 25)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.Status != distribution.OrderStatusOrdered {
		t.Errorf("order status: got %q, want ORDERED", order.Status)
	}
	if order.TotalPrice != units(t, 250) {
		t.Errorf("order total: got %s, want 250 units", order.TotalPrice)
	}
	warehouse, err := f.chain.GetWarehouse(ctx, f.warehouse.Addr)
	if err != nil {
		t.Fatalf("get warehouse: %v", err)
	}
	if warehouse.Balance != units(t, 250) {
		t.Errorf("warehouse balance: got %s, want 250 units", warehouse.Balance)
	}

	carrier, err := f.chain.CreateLogistics(ctx, logisticsOwner, f.warehouse.Addr, f.product.Addr, distribution.LogisticsInput{
		Name:          "Fleet",
		TransportMode: "TRUCK",
		ProductID:     f.product.ProductID,
		WarehouseID:   f.warehouse.WarehouseID,
	})
	if err != nil {
		t.Fatalf("create logistics: %v", err)
	}
	if carrier.Status != distribution.ShipmentStatusPending {
		t.Errorf("carrier status: got %q, want PENDING", carrier.Status)
	}

	carrier, err = f.chain.SendLogisticsToSeller(ctx, f.warehouseOwner, carrier.Addr, order.Addr, f.warehouse.Addr, f.product.Addr,
		carrier.LogisticID, f.product.ProductID, f.warehouse.WarehouseID, units(t, 30))
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if carrier.Status != distribution.ShipmentStatusOnTheWay {
		t.Errorf("carrier status: got %q, want ON_THE_WAY", carrier.Status)
	}
	if carrier.Quantity != 25 {
		t.Errorf("in-transit quantity: got %d, want 25", carrier.Quantity)
	}
	if carrier.Balance != units(t, 30) {
		t.Errorf("carrier balance: got %s, want 30 units", carrier.Balance)
	}
	warehouse, _ = f.chain.GetWarehouse(ctx, f.warehouse.Addr)
	if warehouse.StockHeld != 15 {
		t.Errorf("stock held after dispatch: got %d, want 15", warehouse.StockHeld)
	}

	// An in-flight shipment cannot be dispatched a second time.
	_, err = f.chain.SendLogisticsToSeller(ctx, f.warehouseOwner, carrier.Addr, order.Addr, f.warehouse.Addr, f.product.Addr,
		carrier.LogisticID, f.product.ProductID, f.warehouse.WarehouseID, units(t, 30))
	if !errors.Is(err, supplychain.ErrAlreadyProcessed) {
		t.Fatalf("re-dispatch in flight: got %v, want ErrAlreadyProcessed", err)
	}
	warehouse, _ = f.chain.GetWarehouse(ctx, f.warehouse.Addr)
	if warehouse.StockHeld != 15 {
		t.Errorf("stock held after rejected re-dispatch: got %d, want 15", warehouse.StockHeld)
	}

	stock, err := f.chain.ReceiveProductAsSeller(ctx, sellerOwner, seller.Addr, order.Addr, carrier.Addr)
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if stock.Quantity != 25 {
		t.Errorf("seller stock: got %d, want 25", stock.Quantity)
	}
	order, _ = f.chain.GetOrder(ctx, order.Addr)
	if order.Status != distribution.OrderStatusDelivered {
		t.Errorf("order status: got %q, want DELIVERED", order.Status)
	}

	// Delivery is confirmed exactly once.
	if _, err := f.chain.ReceiveProductAsSeller(ctx, sellerOwner, seller.Addr, order.Addr, carrier.Addr); !errors.Is(err, supplychain.ErrAlreadyProcessed) {
		t.Fatalf("double receive: got %v, want ErrAlreadyProcessed", err)
	}

	// A delivered shipment can never rewind to ON_THE_WAY: a second
	// dispatch of the same order must not move funds or stock again.
	_, err = f.chain.SendLogisticsToSeller(ctx, f.warehouseOwner, carrier.Addr, order.Addr, f.warehouse.Addr, f.product.Addr,
		carrier.LogisticID, f.product.ProductID, f.warehouse.WarehouseID, units(t, 30))
	if !errors.Is(err, supplychain.ErrAlreadyProcessed) {
		t.Fatalf("re-dispatch after delivery: got %v, want ErrAlreadyProcessed", err)
	}
	delivered, err := f.chain.GetLogistics(ctx, carrier.Addr)
	if err != nil {
		t.Fatalf("get logistics: %v", err)
	}
	if delivered.Status != distribution.ShipmentStatusDelivered {
		t.Errorf("carrier status: got %q, want DELIVERED", delivered.Status)
	}
	if !delivered.Delivered {
		t.Error("delivered flag must survive a rejected re-dispatch")
	}
	if delivered.Balance != units(t, 30) {
		t.Errorf("carrier balance: got %s, want 30 units", delivered.Balance)
	}
	warehouse, _ = f.chain.GetWarehouse(ctx, f.warehouse.Addr)
	if warehouse.StockHeld != 15 {
		t.Errorf("stock held after rejected re-dispatch: got %d, want 15", warehouse.StockHeld)
	}

	holding, err := f.chain.BuyProductAsCustomer(ctx, customerOwner, seller.Addr, stock.Addr, 5)
	if err != nil {
		t.Fatalf("customer purchase: %v", err)
	}
	if holding.Quantity != 5 {
		t.Errorf("holding: got %d, want 5", holding.Quantity)
	}

	// A repeat purchase of the same product accumulates on one record.
	again, err := f.chain.BuyProductAsCustomer(ctx, customerOwner, seller.Addr, stock.Addr, 3)
	if err != nil {
		t.Fatalf("repeat purchase: %v", err)
	}
	if again.Addr != holding.Addr {
		t.Errorf("repeat purchase landed on a new record: %q vs %q", again.Addr, holding.Addr)
	}
	if again.Quantity != 8 {
		t.Errorf("accumulated holding: got %d, want 8", again.Quantity)
	}

	stock, _ = f.chain.GetSellerStock(ctx, stock.Addr)
	if stock.Quantity != 17 {
		t.Errorf("remaining seller stock: got %d, want 17", stock.Quantity)
	}
	seller, _ = f.chain.GetSeller(ctx, seller.Addr)
	if seller.Balance != units(t, 120) {
		t.Errorf("seller balance: got %s, want 120 units", seller.Balance)
	}

	// Oversold purchase is rejected.
	if _, err := f.chain.BuyProductAsCustomer(ctx, customerOwner, seller.Addr, stock.Addr, 18); !errors.Is(err, supplychain.ErrInsufficientStock) {
		t.Fatalf("oversell: got %v, want ErrInsufficientStock", err)
	}

	// A non-customer cannot buy retail.
	if _, err := f.chain.BuyProductAsCustomer(ctx, f.factoryOwner, seller.Addr, stock.Addr, 1); !errors.Is(err, supplychain.ErrUnauthorized) {
		t.Fatalf("non-customer: got %v, want ErrUnauthorized", err)
	}
}

func TestTransactionLog(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t, 0)

	// The fixture settles two payments from distinct identities: the
	// inspection fee and the warehouse stock purchase.
	txs, err := f.chain.ListTransactions(ctx, f.factoryOwner, txlog.ListOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("factory owner transactions: got %d, want 1", len(txs))
	}
	tx := txs[0]
	if tx.From != f.factoryOwner || tx.To != f.inspection.Addr {
		t.Errorf("unexpected parties: %q -> %q", tx.From, tx.To)
	}
	if tx.Amount != units(t, 200) {
		t.Errorf("amount: got %s, want 200 units", tx.Amount)
	}
	if tx.Seq != 1 {
		t.Errorf("seq: got %d, want 1", tx.Seq)
	}
	if !tx.Confirmed {
		t.Error("expected confirmed transaction")
	}

	got, err := f.chain.GetTransaction(ctx, tx.Addr)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Addr != tx.Addr {
		t.Errorf("addr: got %q, want %q", got.Addr, tx.Addr)
	}

	// The identity's counter reflects every settled payment.
	ident, err := f.chain.GetIdentity(ctx, f.warehouseOwner)
	if err != nil {
		t.Fatalf("get identity: %v", err)
	}
	if ident.TransactionCount != 1 {
		t.Errorf("warehouse tx count: got %d, want 1", ident.TransactionCount)
	}
}

func TestStartStop(t *testing.T) {
	ctx := context.Background()
	chain, _ := newTestChain(0)

	if err := chain.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := chain.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
