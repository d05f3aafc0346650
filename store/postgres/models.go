package postgres

import (
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/supplychain/distribution"
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
	"github.com/xraph/supplychain/platform"
	"github.com/xraph/supplychain/production"
	"github.com/xraph/supplychain/retail"
	"github.com/xraph/supplychain/txlog"
	"github.com/xraph/supplychain/types"
)

// ==================== Platform config models ====================

type configModel struct {
	grove.BaseModel `grove:"table:supplychain_config"`

	Addr        string    `grove:"addr,pk"`
	Owner       string    `grove:"owner"`
	FeePercent  uint64    `grove:"fee_percent"`
	Initialized bool      `grove:"initialized"`
	CreatedAt   time.Time `grove:"created_at"`
	UpdatedAt   time.Time `grove:"updated_at"`
}

func toConfigModel(cfg *platform.Config) *configModel {
	return &configModel{
		Addr:        cfg.Addr.String(),
		Owner:       cfg.Owner.String(),
		FeePercent:  cfg.FeePercent,
		Initialized: cfg.Initialized,
		CreatedAt:   cfg.CreatedAt,
		UpdatedAt:   cfg.UpdatedAt,
	}
}

func fromConfigModel(m *configModel) *platform.Config {
	return &platform.Config{
		Entity:      types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:        id.Address(m.Addr),
		Owner:       id.Address(m.Owner),
		FeePercent:  m.FeePercent,
		Initialized: m.Initialized,
	}
}

// ==================== Identity models ====================

type identityModel struct {
	grove.BaseModel `grove:"table:supplychain_identities"`

	Addr             string    `grove:"addr,pk"`
	Owner            string    `grove:"owner"`
	Name             string    `grove:"name"`
	Email            string    `grove:"email"`
	Role             string    `grove:"role"`
	IsCustomer       bool      `grove:"is_customer"`
	FactoryCount     uint64    `grove:"factory_count"`
	WarehouseCount   uint64    `grove:"warehouse_count"`
	LogisticsCount   uint64    `grove:"logistics_count"`
	SellerCount      uint64    `grove:"seller_count"`
	InspectorCount   uint64    `grove:"inspector_count"`
	ProductCount     uint64    `grove:"product_count"`
	TransactionCount uint64    `grove:"transaction_count"`
	Initialized      bool      `grove:"initialized"`
	CreatedAt        time.Time `grove:"created_at"`
	UpdatedAt        time.Time `grove:"updated_at"`
}

func toIdentityModel(ident *identity.Identity) *identityModel {
	return &identityModel{
		Addr:             ident.Addr.String(),
		Owner:            ident.Owner.String(),
		Name:             ident.Name,
		Email:            ident.Email,
		Role:             string(ident.Role),
		IsCustomer:       ident.IsCustomer,
		FactoryCount:     ident.FactoryCount,
		WarehouseCount:   ident.WarehouseCount,
		LogisticsCount:   ident.LogisticsCount,
		SellerCount:      ident.SellerCount,
		InspectorCount:   ident.InspectorCount,
		ProductCount:     ident.ProductCount,
		TransactionCount: ident.TransactionCount,
		Initialized:      ident.Initialized,
		CreatedAt:        ident.CreatedAt,
		UpdatedAt:        ident.UpdatedAt,
	}
}

func fromIdentityModel(m *identityModel) *identity.Identity {
	return &identity.Identity{
		Entity:           types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:             id.Address(m.Addr),
		Owner:            id.Address(m.Owner),
		Name:             m.Name,
		Email:            m.Email,
		Role:             identity.Role(m.Role),
		IsCustomer:       m.IsCustomer,
		FactoryCount:     m.FactoryCount,
		WarehouseCount:   m.WarehouseCount,
		LogisticsCount:   m.LogisticsCount,
		SellerCount:      m.SellerCount,
		InspectorCount:   m.InspectorCount,
		ProductCount:     m.ProductCount,
		TransactionCount: m.TransactionCount,
		Initialized:      m.Initialized,
	}
}

// ==================== Production models ====================

type factoryModel struct {
	grove.BaseModel `grove:"table:supplychain_factories"`

	Addr         string    `grove:"addr,pk"`
	FactoryID    uint64    `grove:"factory_id"`
	Name         string    `grove:"name"`
	Description  string    `grove:"description"`
	ContactInfo  string    `grove:"contact_info"`
	Latitude     float64   `grove:"latitude"`
	Longitude    float64   `grove:"longitude"`
	Owner        string    `grove:"owner"`
	ProductCount uint64    `grove:"product_count"`
	Balance      uint64    `grove:"balance"`
	CreatedAt    time.Time `grove:"created_at"`
	UpdatedAt    time.Time `grove:"updated_at"`
}

func toFactoryModel(f *production.Factory) *factoryModel {
	return &factoryModel{
		Addr:         f.Addr.String(),
		FactoryID:    f.FactoryID,
		Name:         f.Name,
		Description:  f.Description,
		ContactInfo:  f.ContactInfo,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		Owner:        f.Owner.String(),
		ProductCount: f.ProductCount,
		Balance:      uint64(f.Balance),
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func fromFactoryModel(m *factoryModel) *production.Factory {
	return &production.Factory{
		Entity:       types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:         id.Address(m.Addr),
		FactoryID:    m.FactoryID,
		Name:         m.Name,
		Description:  m.Description,
		ContactInfo:  m.ContactInfo,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		Owner:        id.Address(m.Owner),
		ProductCount: m.ProductCount,
		Balance:      types.Amount(m.Balance),
	}
}

type productModel struct {
	grove.BaseModel `grove:"table:supplychain_products"`

	Addr              string    `grove:"addr,pk"`
	ProductID         uint64    `grove:"product_id"`
	FactoryID         uint64    `grove:"factory_id"`
	FactoryAddr       string    `grove:"factory_addr"`
	Name              string    `grove:"name"`
	Description       string    `grove:"description"`
	Image             string    `grove:"image"`
	BatchNumber       string    `grove:"batch_number"`
	Price             uint64    `grove:"price"`
	MRP               uint64    `grove:"mrp"`
	Stock             uint64    `grove:"stock"`
	RawMaterialUsed   uint64    `grove:"raw_material_used"`
	QualityChecked    bool      `grove:"quality_checked"`
	InspectionID      uint64    `grove:"inspection_id"`
	InspectionAddr    string    `grove:"inspection_addr"`
	InspectionFeePaid bool      `grove:"inspection_fee_paid"`
	CreatedAt         time.Time `grove:"created_at"`
	UpdatedAt         time.Time `grove:"updated_at"`
}

func toProductModel(p *production.Product) *productModel {
	return &productModel{
		Addr:              p.Addr.String(),
		ProductID:         p.ProductID,
		FactoryID:         p.FactoryID,
		FactoryAddr:       p.FactoryAddr.String(),
		Name:              p.Name,
		Description:       p.Description,
		Image:             p.Image,
		BatchNumber:       p.BatchNumber,
		Price:             uint64(p.Price),
		MRP:               uint64(p.MRP),
		Stock:             p.Stock,
		RawMaterialUsed:   p.RawMaterialUsed,
		QualityChecked:    p.QualityChecked,
		InspectionID:      p.InspectionID,
		InspectionAddr:    p.InspectionAddr.String(),
		InspectionFeePaid: p.InspectionFeePaid,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func fromProductModel(m *productModel) *production.Product {
	return &production.Product{
		Entity:            types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:              id.Address(m.Addr),
		ProductID:         m.ProductID,
		FactoryID:         m.FactoryID,
		FactoryAddr:       id.Address(m.FactoryAddr),
		Name:              m.Name,
		Description:       m.Description,
		Image:             m.Image,
		BatchNumber:       m.BatchNumber,
		Price:             types.Amount(m.Price),
		MRP:               types.Amount(m.MRP),
		Stock:             m.Stock,
		RawMaterialUsed:   m.RawMaterialUsed,
		QualityChecked:    m.QualityChecked,
		InspectionID:      m.InspectionID,
		InspectionAddr:    id.Address(m.InspectionAddr),
		InspectionFeePaid: m.InspectionFeePaid,
	}
}

type inspectionModel struct {
	grove.BaseModel `grove:"table:supplychain_inspections"`

	Addr         string    `grove:"addr,pk"`
	InspectionID uint64    `grove:"inspection_id"`
	Name         string    `grove:"name"`
	Latitude     float64   `grove:"latitude"`
	Longitude    float64   `grove:"longitude"`
	ProductID    uint64    `grove:"product_id"`
	Outcome      string    `grove:"outcome"`
	Notes        string    `grove:"notes"`
	InspectedAt  time.Time `grove:"inspected_at"`
	FeePerUnit   uint64    `grove:"fee_per_unit"`
	Balance      uint64    `grove:"balance"`
	Owner        string    `grove:"owner"`
	CreatedAt    time.Time `grove:"created_at"`
	UpdatedAt    time.Time `grove:"updated_at"`
}

func toInspectionModel(insp *production.Inspection) *inspectionModel {
	return &inspectionModel{
		Addr:         insp.Addr.String(),
		InspectionID: insp.InspectionID,
		Name:         insp.Name,
		Latitude:     insp.Latitude,
		Longitude:    insp.Longitude,
		ProductID:    insp.ProductID,
		Outcome:      insp.Outcome,
		Notes:        insp.Notes,
		InspectedAt:  insp.InspectedAt,
		FeePerUnit:   uint64(insp.FeePerUnit),
		Balance:      uint64(insp.Balance),
		Owner:        insp.Owner.String(),
		CreatedAt:    insp.CreatedAt,
		UpdatedAt:    insp.UpdatedAt,
	}
}

func fromInspectionModel(m *inspectionModel) *production.Inspection {
	return &production.Inspection{
		Entity:       types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:         id.Address(m.Addr),
		InspectionID: m.InspectionID,
		Name:         m.Name,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		ProductID:    m.ProductID,
		Outcome:      m.Outcome,
		Notes:        m.Notes,
		InspectedAt:  m.InspectedAt,
		FeePerUnit:   types.Amount(m.FeePerUnit),
		Balance:      types.Amount(m.Balance),
		Owner:        id.Address(m.Owner),
	}
}

// ==================== Distribution models ====================

type warehouseModel struct {
	grove.BaseModel `grove:"table:supplychain_warehouses"`

	Addr          string    `grove:"addr,pk"`
	WarehouseID   uint64    `grove:"warehouse_id"`
	FactoryID     uint64    `grove:"factory_id"`
	Name          string    `grove:"name"`
	Description   string    `grove:"description"`
	ContactInfo   string    `grove:"contact_info"`
	ProductID     uint64    `grove:"product_id"`
	ProductAddr   string    `grove:"product_addr"`
	StockHeld     uint64    `grove:"stock_held"`
	Latitude      float64   `grove:"latitude"`
	Longitude     float64   `grove:"longitude"`
	Balance       uint64    `grove:"balance"`
	Owner         string    `grove:"owner"`
	Size          uint64    `grove:"size"`
	LogisticCount uint64    `grove:"logistic_count"`
	CreatedAt     time.Time `grove:"created_at"`
	UpdatedAt     time.Time `grove:"updated_at"`
}

func toWarehouseModel(w *distribution.Warehouse) *warehouseModel {
	return &warehouseModel{
		Addr:          w.Addr.String(),
		WarehouseID:   w.WarehouseID,
		FactoryID:     w.FactoryID,
		Name:          w.Name,
		Description:   w.Description,
		ContactInfo:   w.ContactInfo,
		ProductID:     w.ProductID,
		ProductAddr:   w.ProductAddr.String(),
		StockHeld:     w.StockHeld,
		Latitude:      w.Latitude,
		Longitude:     w.Longitude,
		Balance:       uint64(w.Balance),
		Owner:         w.Owner.String(),
		Size:          w.Size,
		LogisticCount: w.LogisticCount,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func fromWarehouseModel(m *warehouseModel) *distribution.Warehouse {
	return &distribution.Warehouse{
		Entity:        types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:          id.Address(m.Addr),
		WarehouseID:   m.WarehouseID,
		FactoryID:     m.FactoryID,
		Name:          m.Name,
		Description:   m.Description,
		ContactInfo:   m.ContactInfo,
		ProductID:     m.ProductID,
		ProductAddr:   id.Address(m.ProductAddr),
		StockHeld:     m.StockHeld,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		Balance:       types.Amount(m.Balance),
		Owner:         id.Address(m.Owner),
		Size:          m.Size,
		LogisticCount: m.LogisticCount,
	}
}

type orderModel struct {
	grove.BaseModel `grove:"table:supplychain_orders"`

	Addr          string    `grove:"addr,pk"`
	OrderID       uint64    `grove:"order_id"`
	ProductID     uint64    `grove:"product_id"`
	ProductAddr   string    `grove:"product_addr"`
	Quantity      uint64    `grove:"quantity"`
	WarehouseID   uint64    `grove:"warehouse_id"`
	WarehouseAddr string    `grove:"warehouse_addr"`
	TotalPrice    uint64    `grove:"total_price"`
	SellerID      uint64    `grove:"seller_id"`
	SellerAddr    string    `grove:"seller_addr"`
	LogisticID    uint64    `grove:"logistic_id"`
	LogisticsAddr string    `grove:"logistics_addr"`
	Status        string    `grove:"status"`
	PlacedAt      time.Time `grove:"placed_at"`
	CreatedAt     time.Time `grove:"created_at"`
	UpdatedAt     time.Time `grove:"updated_at"`
}

func toOrderModel(o *distribution.Order) *orderModel {
	return &orderModel{
		Addr:          o.Addr.String(),
		OrderID:       o.OrderID,
		ProductID:     o.ProductID,
		ProductAddr:   o.ProductAddr.String(),
		Quantity:      o.Quantity,
		WarehouseID:   o.WarehouseID,
		WarehouseAddr: o.WarehouseAddr.String(),
		TotalPrice:    uint64(o.TotalPrice),
		SellerID:      o.SellerID,
		SellerAddr:    o.SellerAddr.String(),
		LogisticID:    o.LogisticID,
		LogisticsAddr: o.LogisticsAddr.String(),
		Status:        string(o.Status),
		PlacedAt:      o.PlacedAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func fromOrderModel(m *orderModel) *distribution.Order {
	return &distribution.Order{
		Entity:        types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:          id.Address(m.Addr),
		OrderID:       m.OrderID,
		ProductID:     m.ProductID,
		ProductAddr:   id.Address(m.ProductAddr),
		Quantity:      m.Quantity,
		WarehouseID:   m.WarehouseID,
		WarehouseAddr: id.Address(m.WarehouseAddr),
		TotalPrice:    types.Amount(m.TotalPrice),
		SellerID:      m.SellerID,
		SellerAddr:    id.Address(m.SellerAddr),
		LogisticID:    m.LogisticID,
		LogisticsAddr: id.Address(m.LogisticsAddr),
		Status:        distribution.OrderStatus(m.Status),
		PlacedAt:      m.PlacedAt,
	}
}

type logisticsModel struct {
	grove.BaseModel `grove:"table:supplychain_logistics"`

	Addr              string    `grove:"addr,pk"`
	LogisticID        uint64    `grove:"logistic_id"`
	Name              string    `grove:"name"`
	TransportMode     string    `grove:"transport_mode"`
	ContactInfo       string    `grove:"contact_info"`
	Status            string    `grove:"status"`
	ShipmentCost      uint64    `grove:"shipment_cost"`
	ProductID         uint64    `grove:"product_id"`
	Quantity          uint64    `grove:"quantity"`
	DeliveryConfirmed bool      `grove:"delivery_confirmed"`
	Balance           uint64    `grove:"balance"`
	WarehouseID       uint64    `grove:"warehouse_id"`
	ShipmentStartedAt time.Time `grove:"shipment_started_at"`
	ShipmentEndedAt   time.Time `grove:"shipment_ended_at"`
	Delivered         bool      `grove:"delivered"`
	Latitude          float64   `grove:"latitude"`
	Longitude         float64   `grove:"longitude"`
	Owner             string    `grove:"owner"`
	CreatedAt         time.Time `grove:"created_at"`
	UpdatedAt         time.Time `grove:"updated_at"`
}

func toLogisticsModel(l *distribution.Logistics) *logisticsModel {
	return &logisticsModel{
		Addr:              l.Addr.String(),
		LogisticID:        l.LogisticID,
		Name:              l.Name,
		TransportMode:     l.TransportMode,
		ContactInfo:       l.ContactInfo,
		Status:            string(l.Status),
		ShipmentCost:      uint64(l.ShipmentCost),
		ProductID:         l.ProductID,
		Quantity:          l.Quantity,
		DeliveryConfirmed: l.DeliveryConfirmed,
		Balance:           uint64(l.Balance),
		WarehouseID:       l.WarehouseID,
		ShipmentStartedAt: l.ShipmentStartedAt,
		ShipmentEndedAt:   l.ShipmentEndedAt,
		Delivered:         l.Delivered,
		Latitude:          l.Latitude,
		Longitude:         l.Longitude,
		Owner:             l.Owner.String(),
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func fromLogisticsModel(m *logisticsModel) *distribution.Logistics {
	return &distribution.Logistics{
		Entity:            types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:              id.Address(m.Addr),
		LogisticID:        m.LogisticID,
		Name:              m.Name,
		TransportMode:     m.TransportMode,
		ContactInfo:       m.ContactInfo,
		Status:            distribution.ShipmentStatus(m.Status),
		ShipmentCost:      types.Amount(m.ShipmentCost),
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		DeliveryConfirmed: m.DeliveryConfirmed,
		Balance:           types.Amount(m.Balance),
		WarehouseID:       m.WarehouseID,
		ShipmentStartedAt: m.ShipmentStartedAt,
		ShipmentEndedAt:   m.ShipmentEndedAt,
		Delivered:         m.Delivered,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		Owner:             id.Address(m.Owner),
	}
}

// ==================== Retail models ====================

type sellerModel struct {
	grove.BaseModel `grove:"table:supplychain_sellers"`

	Addr          string    `grove:"addr,pk"`
	SellerID      uint64    `grove:"seller_id"`
	Name          string    `grove:"name"`
	Description   string    `grove:"description"`
	ProductsCount uint64    `grove:"products_count"`
	Latitude      float64   `grove:"latitude"`
	Longitude     float64   `grove:"longitude"`
	ContactInfo   string    `grove:"contact_info"`
	OrderCount    uint64    `grove:"order_count"`
	Balance       uint64    `grove:"balance"`
	Owner         string    `grove:"owner"`
	CreatedAt     time.Time `grove:"created_at"`
	UpdatedAt     time.Time `grove:"updated_at"`
}

func toSellerModel(s *retail.Seller) *sellerModel {
	return &sellerModel{
		Addr:          s.Addr.String(),
		SellerID:      s.SellerID,
		Name:          s.Name,
		Description:   s.Description,
		ProductsCount: s.ProductsCount,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		ContactInfo:   s.ContactInfo,
		OrderCount:    s.OrderCount,
		Balance:       uint64(s.Balance),
		Owner:         s.Owner.String(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func fromSellerModel(m *sellerModel) *retail.Seller {
	return &retail.Seller{
		Entity:        types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:          id.Address(m.Addr),
		SellerID:      m.SellerID,
		Name:          m.Name,
		Description:   m.Description,
		ProductsCount: m.ProductsCount,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		ContactInfo:   m.ContactInfo,
		OrderCount:    m.OrderCount,
		Balance:       types.Amount(m.Balance),
		Owner:         id.Address(m.Owner),
	}
}

type sellerStockModel struct {
	grove.BaseModel `grove:"table:supplychain_seller_stocks"`

	Addr        string    `grove:"addr,pk"`
	SellerID    uint64    `grove:"seller_id"`
	SellerAddr  string    `grove:"seller_addr"`
	ProductID   uint64    `grove:"product_id"`
	ProductAddr string    `grove:"product_addr"`
	Quantity    uint64    `grove:"quantity"`
	CreatedAt   time.Time `grove:"created_at"`
	UpdatedAt   time.Time `grove:"updated_at"`
}

func toSellerStockModel(s *retail.SellerStock) *sellerStockModel {
	return &sellerStockModel{
		Addr:        s.Addr.String(),
		SellerID:    s.SellerID,
		SellerAddr:  s.SellerAddr.String(),
		ProductID:   s.ProductID,
		ProductAddr: s.ProductAddr.String(),
		Quantity:    s.Quantity,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func fromSellerStockModel(m *sellerStockModel) *retail.SellerStock {
	return &retail.SellerStock{
		Entity:      types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:        id.Address(m.Addr),
		SellerID:    m.SellerID,
		SellerAddr:  id.Address(m.SellerAddr),
		ProductID:   m.ProductID,
		ProductAddr: id.Address(m.ProductAddr),
		Quantity:    m.Quantity,
	}
}

type customerProductModel struct {
	grove.BaseModel `grove:"table:supplychain_customer_products"`

	Addr        string    `grove:"addr,pk"`
	ProductID   uint64    `grove:"product_id"`
	ProductAddr string    `grove:"product_addr"`
	SellerAddr  string    `grove:"seller_addr"`
	Owner       string    `grove:"owner"`
	Quantity    uint64    `grove:"quantity"`
	PurchasedAt time.Time `grove:"purchased_at"`
	CreatedAt   time.Time `grove:"created_at"`
	UpdatedAt   time.Time `grove:"updated_at"`
}

func toCustomerProductModel(c *retail.CustomerProduct) *customerProductModel {
	return &customerProductModel{
		Addr:        c.Addr.String(),
		ProductID:   c.ProductID,
		ProductAddr: c.ProductAddr.String(),
		SellerAddr:  c.SellerAddr.String(),
		Owner:       c.Owner.String(),
		Quantity:    c.Quantity,
		PurchasedAt: c.PurchasedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func fromCustomerProductModel(m *customerProductModel) *retail.CustomerProduct {
	return &retail.CustomerProduct{
		Entity:      types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:        id.Address(m.Addr),
		ProductID:   m.ProductID,
		ProductAddr: id.Address(m.ProductAddr),
		SellerAddr:  id.Address(m.SellerAddr),
		Owner:       id.Address(m.Owner),
		Quantity:    m.Quantity,
		PurchasedAt: m.PurchasedAt,
	}
}

// ==================== Transaction models ====================

type transactionModel struct {
	grove.BaseModel `grove:"table:supplychain_transactions"`

	Addr      string    `grove:"addr,pk"`
	Seq       uint64    `grove:"seq"`
	FromAddr  string    `grove:"from_addr"`
	ToAddr    string    `grove:"to_addr"`
	Amount    uint64    `grove:"amount"`
	Timestamp time.Time `grove:"timestamp"`
	Confirmed bool      `grove:"confirmed"`
	CreatedAt time.Time `grove:"created_at"`
	UpdatedAt time.Time `grove:"updated_at"`
}

func toTransactionModel(tx *txlog.Transaction) *transactionModel {
	return &transactionModel{
		Addr:      tx.Addr.String(),
		Seq:       tx.Seq,
		FromAddr:  tx.From.String(),
		ToAddr:    tx.To.String(),
		Amount:    uint64(tx.Amount),
		Timestamp: tx.Timestamp,
		Confirmed: tx.Confirmed,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

func fromTransactionModel(m *transactionModel) *txlog.Transaction {
	return &txlog.Transaction{
		Entity:    types.Entity{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Addr:      id.Address(m.Addr),
		Seq:       m.Seq,
		From:      id.Address(m.FromAddr),
		To:        id.Address(m.ToAddr),
		Amount:    types.Amount(m.Amount),
		Timestamp: m.Timestamp,
		Confirmed: m.Confirmed,
	}
}
