package retail

import (
	"context"

	"github.com/xraph/supplychain/id"
)

// Store is the persistence surface for retail records.
type Store interface {
	CreateSeller(ctx context.Context, s *Seller) error
	GetSeller(ctx context.Context, addr id.Address) (*Seller, error)
	UpdateSeller(ctx context.Context, s *Seller) error

	CreateSellerStock(ctx context.Context, s *SellerStock) error
	GetSellerStock(ctx context.Context, addr id.Address) (*SellerStock, error)
	UpdateSellerStock(ctx context.Context, s *SellerStock) error

	CreateCustomerProduct(ctx context.Context, c *CustomerProduct) error
	GetCustomerProduct(ctx context.Context, addr id.Address) (*CustomerProduct, error)
	UpdateCustomerProduct(ctx context.Context, c *CustomerProduct) error
}
