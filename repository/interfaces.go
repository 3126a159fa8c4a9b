package repository

import (
	"context"

	"cantina-api/models"
)

// CatalogRepository is the product store. Create and Update validate their
// input before touching the database.
type CatalogRepository interface {
	Create(ctx context.Context, p *models.Product) (int64, error)
	Update(ctx context.Context, id int64, name string, price float64, quantity int) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, bool, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	DecrementStock(ctx context.Context, id int64, amount int) (int, error)
}

type AccountRepository interface {
	Create(ctx context.Context, username, password, email string) (int64, error)
	FindByCredentials(ctx context.Context, username, password string) (*models.Account, bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) (int64, error)
	ListActive(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, bool, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type SalesRepository interface {
	Create(ctx context.Context, s *models.Sale) (int64, error)
	ListAll(ctx context.Context) ([]models.Sale, error)
	ListByPurchaser(ctx context.Context, purchaser string) ([]models.Sale, error)
}

// Provider hands out repositories bound to the same connection or transaction
type Provider interface {
	Catalog() CatalogRepository
	Accounts() AccountRepository
	Orders() OrderRepository
	Sales() SalesRepository
}

// UnitOfWork runs fn atomically. The provider passed to fn is bound to the
// open transaction; fn returning an error rolls everything back.
type UnitOfWork interface {
	Provider
	Do(ctx context.Context, fn func(tx Provider) error) error
}
