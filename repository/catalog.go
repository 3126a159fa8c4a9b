package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cantina-api/database"
	"cantina-api/models"
)

const productColumns = `id, nombre, precio, cantidad, imagen, descripcion, creado`

// Catalog stores products in the productos table
type Catalog struct {
	gw *database.Gateway
}

func NewCatalog(gw *database.Gateway) *Catalog {
	return &Catalog{gw: gw}
}

// ValidateProduct checks the fields every stored product must satisfy.
func ValidateProduct(name string, price float64, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return models.NewValidationError("nombre", "is required")
	}
	if price < 0 {
		return models.NewValidationError("precio", "must not be negative")
	}
	if quantity < 0 {
		return models.NewValidationError("cantidad", "must not be negative")
	}
	return nil
}

// Create inserts p and returns its new id. The creation time defaults to now
// and is written back into p.
func (r *Catalog) Create(ctx context.Context, p *models.Product) (int64, error) {
	if err := ValidateProduct(p.Name, p.Price, p.Quantity); err != nil {
		return 0, err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return r.gw.Insert(ctx, "insert product",
		`INSERT INTO productos (nombre, precio, cantidad, imagen, descripcion, creado) VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
		p.Name, p.Price, p.Quantity, p.Image, p.Description, p.CreatedAt)
}

// Update replaces name, price and quantity. Image and description are kept.
func (r *Catalog) Update(ctx context.Context, id int64, name string, price float64, quantity int) (int64, error) {
	if err := ValidateProduct(name, price, quantity); err != nil {
		return 0, err
	}
	return r.gw.Execute(ctx, "update product",
		`UPDATE productos SET nombre = ?, precio = ?, cantidad = ? WHERE id = ?`,
		name, price, quantity, id)
}

func (r *Catalog) Delete(ctx context.Context, id int64) (int64, error) {
	return r.gw.Execute(ctx, "delete product", `DELETE FROM productos WHERE id = ?`, id)
}

// List returns every product, newest first.
func (r *Catalog) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.gw.Query(ctx, "list products", &products,
		`SELECT `+productColumns+` FROM productos ORDER BY id DESC`)
	return products, err
}

func (r *Catalog) GetByID(ctx context.Context, id int64) (*models.Product, bool, error) {
	var p models.Product
	found, err := r.gw.QueryRow(ctx, "get product", &p,
		`SELECT `+productColumns+` FROM productos WHERE id = ?`, id)
	if err != nil || !found {
		return nil, false, err
	}
	return &p, true, nil
}

// Search matches query as a case-insensitive substring of the name. LIKE
// wildcards in query are matched literally.
func (r *Catalog) Search(ctx context.Context, query string) ([]models.Product, error) {
	pattern := likePattern(query)
	products := []models.Product{}
	err := r.gw.Query(ctx, "search products", &products,
		`SELECT `+productColumns+` FROM productos WHERE nombre ILIKE ? ORDER BY id DESC`,
		pattern)
	return products, err
}

// DecrementStock subtracts amount from the product's stock in one statement
// and returns what is left. The stock is never driven below zero.
func (r *Catalog) DecrementStock(ctx context.Context, id int64, amount int) (int, error) {
	if amount <= 0 {
		return 0, models.NewValidationError("cantidad", "must be greater than zero")
	}

	var remaining int
	found, err := r.gw.QueryRow(ctx, "decrement stock", &remaining,
		`UPDATE productos SET cantidad = cantidad - ? WHERE id = ? AND cantidad >= ? RETURNING cantidad`,
		amount, id, amount)
	if err != nil {
		return 0, err
	}
	if found {
		return remaining, nil
	}

	// Nothing updated: either the product is gone or it holds too few units.
	var available int
	found, err = r.gw.QueryRow(ctx, "read stock", &available,
		`SELECT cantidad FROM productos WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	return 0, &models.InsufficientStockError{ProductID: id, Requested: amount, Available: available}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
