// Package cache keeps a short-lived copy of the product listing.
package cache

import (
	"context"

	"cantina-api/models"
)

// ProductsKey is the cache key holding the full catalog listing
const ProductsKey = "cantina:productos"

// ProductCache stores the catalog listing. A miss is reported with ok=false
// and a nil error.
type ProductCache interface {
	GetProducts(ctx context.Context) (products []models.Product, ok bool, err error)
	SetProducts(ctx context.Context, products []models.Product) error
	Invalidate(ctx context.Context) error
}

// Nop never holds anything. It is used when no Redis URL is configured.
type Nop struct{}

func (Nop) GetProducts(context.Context) ([]models.Product, bool, error) { return nil, false, nil }
func (Nop) SetProducts(context.Context, []models.Product) error         { return nil }
func (Nop) Invalidate(context.Context) error                            { return nil }
