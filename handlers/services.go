package handlers

import (
	"context"

	"cantina-api/models"
	"cantina-api/service"
)

// CatalogService is what the product routes need from the catalog
type CatalogService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	Create(ctx context.Context, in models.ProductInput, image string) (*models.Product, error)
	Update(ctx context.Context, id int64, in models.ProductUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ImageStore names uploaded product images and deletes them
type ImageStore interface {
	Place(filename string) (publicPath, diskPath string, err error)
	Remove(publicPath string) error
}

// FulfillmentService runs purchases, status changes and the sales ledger
type FulfillmentService interface {
	Purchase(ctx context.Context, productID int64, quantity int, purchaser string) (*service.PurchaseResult, error)
	Advance(ctx context.Context, orderID int64, status models.OrderStatus) (*service.AdvanceResult, error)
	ListActive(ctx context.Context) ([]models.Order, error)
	Sales(ctx context.Context, purchaser string) ([]models.Sale, error)
}

type AccountService interface {
	Register(ctx context.Context, in models.AccountRegister) (*models.Account, error)
	Login(ctx context.Context, in models.AccountLogin) (*models.Account, string, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
