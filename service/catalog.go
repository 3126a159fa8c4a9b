package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cantina-api/cache"
	"cantina-api/models"
	"cantina-api/repository"

	"golang.org/x/sync/singleflight"
)

// ImageRemover deletes a stored product image by its public path
type ImageRemover interface {
	Remove(publicPath string) error
}

// Catalog manages products and keeps the cached listing in step with them
type Catalog struct {
	repo   repository.CatalogRepository
	cache  cache.ProductCache
	images ImageRemover
	group  singleflight.Group
}

func NewCatalog(repo repository.CatalogRepository, products cache.ProductCache, images ImageRemover) *Catalog {
	return &Catalog{repo: repo, cache: products, images: images}
}

// List returns every product, newest first. A cached copy is served when
// present; concurrent misses share one database read.
func (s *Catalog) List(ctx context.Context) ([]models.Product, error) {
	products, ok, err := s.cache.GetProducts(ctx)
	if err != nil {
		log.Printf("Product cache read failed, using database: %v", err)
	}
	if ok {
		return products, nil
	}

	// The shared read outlives whichever caller started it.
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(cache.ProductsKey, func() (interface{}, error) {
		products, err := s.repo.List(shared)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetProducts(shared, products); err != nil {
			log.Printf("Product cache write failed: %v", err)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Product), nil
}

// Get returns one product or a not-found error.
func (s *Catalog) Get(ctx context.Context, id int64) (*models.Product, error) {
	p, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	return p, nil
}

func (s *Catalog) Search(ctx context.Context, query string) ([]models.Product, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query))
}

// Create stores a new product. image is the public path of an already saved
// upload, or empty.
func (s *Catalog) Create(ctx context.Context, in models.ProductInput, image string) (*models.Product, error) {
	if in.Price == nil {
		return nil, models.NewValidationError("precio", "is required")
	}
	if in.Quantity == nil {
		return nil, models.NewValidationError("cantidad", "is required")
	}

	p := models.Product{
		Name:     strings.TrimSpace(in.Name),
		Price:    *in.Price,
		Quantity: *in.Quantity,
	}
	if image != "" {
		p.Image = &image
	}
	if d := strings.TrimSpace(in.Description); d != "" {
		p.Description = &d
	}

	id, err := s.repo.Create(ctx, &p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	s.invalidate(ctx)
	return &p, nil
}

// Update replaces name, price and quantity and returns the rows changed.
func (s *Catalog) Update(ctx context.Context, id int64, in models.ProductUpdate) (int64, error) {
	if in.Price == nil {
		return 0, models.NewValidationError("precio", "is required")
	}
	if in.Quantity == nil {
		return 0, models.NewValidationError("cantidad", "is required")
	}

	changed, err := s.repo.Update(ctx, id, strings.TrimSpace(in.Name), *in.Price, *in.Quantity)
	if err != nil {
		return 0, err
	}
	if changed > 0 {
		s.invalidate(ctx)
	}
	return changed, nil
}

// Delete removes a product and its stored image and returns the rows removed.
func (s *Catalog) Delete(ctx context.Context, id int64) (int64, error) {
	p, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, nil
	}

	s.invalidate(ctx)
	if p.Image != nil && *p.Image != "" {
		if err := s.images.Remove(*p.Image); err != nil {
			log.Printf("Failed to remove image %s of product %d: %v", *p.Image, id, err)
		}
	}
	return removed, nil
}

func (s *Catalog) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("Failed to invalidate product cache: %v", err)
	}
}
