package repository

import (
	"context"
	"time"

	"cantina-api/database"
	"cantina-api/models"
)

const orderColumns = `id, usuario, producto_id, nombre_producto, cantidad, precio_unitario, total, estado, fecha`

// Orders stores open orders in the pedidos table
type Orders struct {
	gw *database.Gateway
}

func NewOrders(gw *database.Gateway) *Orders {
	return &Orders{gw: gw}
}

// Create inserts o and returns its id. Status defaults to pending and the
// timestamp to now; both are written back into o.
func (r *Orders) Create(ctx context.Context, o *models.Order) (int64, error) {
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	return r.gw.Insert(ctx, "insert order",
		`INSERT INTO pedidos (usuario, producto_id, nombre_producto, cantidad, precio_unitario, total, estado, fecha)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		o.Purchaser, o.ProductID, o.ProductName, o.Quantity, o.UnitPrice, o.Total, o.Status, o.CreatedAt)
}

// ListActive returns every order not yet delivered, newest first.
func (r *Orders) ListActive(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.gw.Query(ctx, "list orders", &orders,
		`SELECT `+orderColumns+` FROM pedidos WHERE estado <> ? ORDER BY fecha DESC, id DESC`,
		models.StatusDelivered)
	return orders, err
}

func (r *Orders) GetByID(ctx context.Context, id int64) (*models.Order, bool, error) {
	var o models.Order
	found, err := r.gw.QueryRow(ctx, "get order", &o,
		`SELECT `+orderColumns+` FROM pedidos WHERE id = ?`, id)
	if err != nil || !found {
		return nil, false, err
	}
	return &o, true, nil
}

func (r *Orders) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (int64, error) {
	return r.gw.Execute(ctx, "update order status",
		`UPDATE pedidos SET estado = ? WHERE id = ?`, status, id)
}

func (r *Orders) Delete(ctx context.Context, id int64) (int64, error) {
	return r.gw.Execute(ctx, "delete order", `DELETE FROM pedidos WHERE id = ?`, id)
}
