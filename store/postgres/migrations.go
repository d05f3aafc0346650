package postgres

import (
	"context"

	"github.com/xraph/grove/migrate"
)

// Migrations is the grove migration group for the supply chain store.
var Migrations = migrate.NewGroup("supplychain")

func init() {
	Migrations.MustRegister(
		&migrate.Migration{
			Name:    "create_supplychain_config",
			Version: "20240101000001",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS supplychain_config (
    addr        TEXT PRIMARY KEY,
    owner       TEXT NOT NULL DEFAULT '',
    fee_percent BIGINT NOT NULL DEFAULT 0,
    initialized BOOLEAN NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS supplychain_config`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_supplychain_identities",
			Version: "20240101000002",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS supplychain_identities (
    addr              TEXT PRIMARY KEY,
    owner             TEXT NOT NULL DEFAULT '',
    name              TEXT NOT NULL DEFAULT '',
    email             TEXT NOT NULL DEFAULT '',
    role              TEXT NOT NULL DEFAULT '',
    is_customer       BOOLEAN NOT NULL DEFAULT FALSE,
    factory_count     BIGINT NOT NULL DEFAULT 0,
    warehouse_count   BIGINT NOT NULL DEFAULT 0,
    logistics_count   BIGINT NOT NULL DEFAULT 0,
    seller_count      BIGINT NOT NULL DEFAULT 0,
    inspector_count   BIGINT NOT NULL DEFAULT 0,
    product_count     BIGINT NOT NULL DEFAULT 0,
    transaction_count BIGINT NOT NULL DEFAULT 0,
    initialized       BOOLEAN NOT NULL DEFAULT FALSE,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_identities_owner ON supplychain_identities (owner);
CREATE INDEX IF NOT EXISTS idx_supplychain_identities_role ON supplychain_identities (role);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS supplychain_identities`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_supplychain_production",
			Version: "20240101000003",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS supplychain_factories (
    addr          TEXT PRIMARY KEY,
    factory_id    BIGINT NOT NULL DEFAULT 0,
    name          TEXT NOT NULL DEFAULT '',
    description   TEXT NOT NULL DEFAULT '',
    contact_info  TEXT NOT NULL DEFAULT '',
    latitude      DOUBLE PRECISION NOT NULL DEFAULT 0,
    longitude     DOUBLE PRECISION NOT NULL DEFAULT 0,
    owner         TEXT NOT NULL DEFAULT '',
    product_count BIGINT NOT NULL DEFAULT 0,
    balance       BIGINT NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_factories_owner ON supplychain_factories (owner);

CREATE TABLE IF NOT EXISTS supplychain_products (
    addr                TEXT PRIMARY KEY,
    product_id          BIGINT NOT NULL DEFAULT 0,
    factory_id          BIGINT NOT NULL DEFAULT 0,
    factory_addr        TEXT NOT NULL DEFAULT '',
    name                TEXT NOT NULL DEFAULT '',
    description         TEXT NOT NULL DEFAULT '',
    image               TEXT NOT NULL DEFAULT '',
    batch_number        TEXT NOT NULL DEFAULT '',
    price               BIGINT NOT NULL DEFAULT 0,
    mrp                 BIGINT NOT NULL DEFAULT 0,
    stock               BIGINT NOT NULL DEFAULT 0,
    raw_material_used   BIGINT NOT NULL DEFAULT 0,
    quality_checked     BOOLEAN NOT NULL DEFAULT FALSE,
    inspection_id       BIGINT NOT NULL DEFAULT 0,
    inspection_addr     TEXT NOT NULL DEFAULT '',
    inspection_fee_paid BOOLEAN NOT NULL DEFAULT FALSE,
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_products_factory ON supplychain_products (factory_addr);

CREATE TABLE IF NOT EXISTS supplychain_inspections (
    addr          TEXT PRIMARY KEY,
    inspection_id BIGINT NOT NULL DEFAULT 0,
    name          TEXT NOT NULL DEFAULT '',
    latitude      DOUBLE PRECISION NOT NULL DEFAULT 0,
    longitude     DOUBLE PRECISION NOT NULL DEFAULT 0,
    product_id    BIGINT NOT NULL DEFAULT 0,
    outcome       TEXT NOT NULL DEFAULT '',
    notes         TEXT NOT NULL DEFAULT '',
    inspected_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    fee_per_unit  BIGINT NOT NULL DEFAULT 0,
    balance       BIGINT NOT NULL DEFAULT 0,
    owner         TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_inspections_owner ON supplychain_inspections (owner);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
DROP TABLE IF EXISTS supplychain_inspections;
DROP TABLE IF EXISTS supplychain_products;
DROP TABLE IF EXISTS supplychain_factories;
`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_supplychain_distribution",
			Version: "20240101000004",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS supplychain_warehouses (
    addr           TEXT PRIMARY KEY,
    warehouse_id   BIGINT NOT NULL DEFAULT 0,
    factory_id     BIGINT NOT NULL DEFAULT 0,
    name           TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL DEFAULT '',
    contact_info   TEXT NOT NULL DEFAULT '',
    product_id     BIGINT NOT NULL DEFAULT 0,
    product_addr   TEXT NOT NULL DEFAULT '',
    stock_held     BIGINT NOT NULL DEFAULT 0,
    latitude       DOUBLE PRECISION NOT NULL DEFAULT 0,
    longitude      DOUBLE PRECISION NOT NULL DEFAULT 0,
    balance        BIGINT NOT NULL DEFAULT 0,
    owner          TEXT NOT NULL DEFAULT '',
    size           BIGINT NOT NULL DEFAULT 0,
    logistic_count BIGINT NOT NULL DEFAULT 0,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_warehouses_owner ON supplychain_warehouses (owner);

CREATE TABLE IF NOT EXISTS supplychain_orders (
    addr           TEXT PRIMARY KEY,
    order_id       BIGINT NOT NULL DEFAULT 0,
    product_id     BIGINT NOT NULL DEFAULT 0,
    product_addr   TEXT NOT NULL DEFAULT '',
    quantity       BIGINT NOT NULL DEFAULT 0,
    warehouse_id   BIGINT NOT NULL DEFAULT 0,
    warehouse_addr TEXT NOT NULL DEFAULT '',
    total_price    BIGINT NOT NULL DEFAULT 0,
    seller_id      BIGINT NOT NULL DEFAULT 0,
    seller_addr    TEXT NOT NULL DEFAULT '',
    logistic_id    BIGINT NOT NULL DEFAULT 0,
    logistics_addr TEXT NOT NULL DEFAULT '',
    status         TEXT NOT NULL DEFAULT '',
    placed_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_orders_seller ON supplychain_orders (seller_addr);
CREATE INDEX IF NOT EXISTS idx_supplychain_orders_warehouse ON supplychain_orders (warehouse_addr);
CREATE INDEX IF NOT EXISTS idx_supplychain_orders_status ON supplychain_orders (status);

CREATE TABLE IF NOT EXISTS supplychain_logistics (
    addr                TEXT PRIMARY KEY,
    logistic_id         BIGINT NOT NULL DEFAULT 0,
    name                TEXT NOT NULL DEFAULT '',
    transport_mode      TEXT NOT NULL DEFAULT '',
    contact_info        TEXT NOT NULL DEFAULT '',
    status              TEXT NOT NULL DEFAULT '',
    shipment_cost       BIGINT NOT NULL DEFAULT 0,
    product_id          BIGINT NOT NULL DEFAULT 0,
    quantity            BIGINT NOT NULL DEFAULT 0,
    delivery_confirmed  BOOLEAN NOT NULL DEFAULT FALSE,
    balance             BIGINT NOT NULL DEFAULT 0,
    warehouse_id        BIGINT NOT NULL DEFAULT 0,
    shipment_started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    shipment_ended_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    delivered           BOOLEAN NOT NULL DEFAULT FALSE,
    latitude            DOUBLE PRECISION NOT NULL DEFAULT 0,
    longitude           DOUBLE PRECISION NOT NULL DEFAULT 0,
    owner               TEXT NOT NULL DEFAULT '',
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_logistics_owner ON supplychain_logistics (owner);
CREATE INDEX IF NOT EXISTS idx_supplychain_logistics_status ON supplychain_logistics (status);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
DROP TABLE IF EXISTS supplychain_logistics;
DROP TABLE IF EXISTS supplychain_orders;
DROP TABLE IF EXISTS supplychain_warehouses;
`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_supplychain_retail",
			Version: "20240101000005",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS supplychain_sellers (
    addr           TEXT PRIMARY KEY,
    seller_id      BIGINT NOT NULL DEFAULT 0,
    name           TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL DEFAULT '',
    products_count BIGINT NOT NULL DEFAULT 0,
    latitude       DOUBLE PRECISION NOT NULL DEFAULT 0,
    longitude      DOUBLE PRECISION NOT NULL DEFAULT 0,
    contact_info   TEXT NOT NULL DEFAULT '',
    order_count    BIGINT NOT NULL DEFAULT 0,
    balance        BIGINT NOT NULL DEFAULT 0,
    owner          TEXT NOT NULL DEFAULT '',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_sellers_owner ON supplychain_sellers (owner);

CREATE TABLE IF NOT EXISTS supplychain_seller_stocks (
    addr         TEXT PRIMARY KEY,
    seller_id    BIGINT NOT NULL DEFAULT 0,
    seller_addr  TEXT NOT NULL DEFAULT '',
    product_id   BIGINT NOT NULL DEFAULT 0,
    product_addr TEXT NOT NULL DEFAULT '',
    quantity     BIGINT NOT NULL DEFAULT 0,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_seller_stocks_seller ON supplychain_seller_stocks (seller_addr);

CREATE TABLE IF NOT EXISTS supplychain_customer_products (
    addr         TEXT PRIMARY KEY,
    product_id   BIGINT NOT NULL DEFAULT 0,
    product_addr TEXT NOT NULL DEFAULT '',
    seller_addr  TEXT NOT NULL DEFAULT '',
    owner        TEXT NOT NULL DEFAULT '',
    quantity     BIGINT NOT NULL DEFAULT 0,
    purchased_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_customer_products_owner ON supplychain_customer_products (owner);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
DROP TABLE IF EXISTS supplychain_customer_products;
DROP TABLE IF EXISTS supplychain_seller_stocks;
DROP TABLE IF EXISTS supplychain_sellers;
`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_supplychain_transactions",
			Version: "20240101000006",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS supplychain_transactions (
    addr       TEXT PRIMARY KEY,
    seq        BIGINT NOT NULL DEFAULT 0,
    from_addr  TEXT NOT NULL DEFAULT '',
    to_addr    TEXT NOT NULL DEFAULT '',
    amount     BIGINT NOT NULL DEFAULT 0,
    timestamp  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    confirmed  BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_supplychain_transactions_from ON supplychain_transactions (from_addr);
CREATE INDEX IF NOT EXISTS idx_supplychain_transactions_to ON supplychain_transactions (to_addr);
CREATE INDEX IF NOT EXISTS idx_supplychain_transactions_timestamp ON supplychain_transactions (timestamp);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS supplychain_transactions`)
				return err
			},
		},
	)
}
