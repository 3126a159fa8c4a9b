package repository

import (
	"context"
	"time"

	"cantina-api/database"
	"cantina-api/models"
)

const saleColumns = `id, usuario, producto_id, nombre_producto, cantidad, precio_unitario, total, fecha`

// Sales stores the permanent sales record in the ventas table
type Sales struct {
	gw *database.Gateway
}

func NewSales(gw *database.Gateway) *Sales {
	return &Sales{gw: gw}
}

func (r *Sales) Create(ctx context.Context, s *models.Sale) (int64, error) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	return r.gw.Insert(ctx, "insert sale",
		`INSERT INTO ventas (usuario, producto_id, nombre_producto, cantidad, precio_unitario, total, fecha)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		s.Purchaser, s.ProductID, s.ProductName, s.Quantity, s.UnitPrice, s.Total, s.CreatedAt)
}

// ListAll returns every sale, newest first.
func (r *Sales) ListAll(ctx context.Context) ([]models.Sale, error) {
	sales := []models.Sale{}
	err := r.gw.Query(ctx, "list sales", &sales,
		`SELECT `+saleColumns+` FROM ventas ORDER BY fecha DESC, id DESC`)
	return sales, err
}

// ListByPurchaser returns the sales recorded for one purchaser, newest first.
func (r *Sales) ListByPurchaser(ctx context.Context, purchaser string) ([]models.Sale, error) {
	sales := []models.Sale{}
	err := r.gw.Query(ctx, "list sales by purchaser", &sales,
		`SELECT `+saleColumns+` FROM ventas WHERE usuario = ? ORDER BY fecha DESC, id DESC`, purchaser)
	return sales, err
}
