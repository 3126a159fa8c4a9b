// Package events announces order lifecycle changes to other systems.
package events

import (
	"context"
	"time"

	"cantina-api/models"
)

const (
	TypeOrderCreated = "pedido.creado"
	TypeSaleRecorded = "venta.registrada"
)

// Event is one order lifecycle change. Type doubles as the routing key.
type Event struct {
	Type       string             `json:"tipo"`
	OrderID    int64              `json:"pedido_id"`
	Status     models.OrderStatus `json:"estado,omitempty"`
	Order      *models.Order      `json:"pedido,omitempty"`
	Sale       *models.Sale       `json:"venta,omitempty"`
	OccurredAt time.Time          `json:"fecha"`
}

// OrderCreated builds the event for a new order.
func OrderCreated(o models.Order) Event {
	return Event{Type: TypeOrderCreated, OrderID: o.ID, Status: o.Status, Order: &o, OccurredAt: time.Now()}
}

// StatusChanged builds the event for an order moved to status.
func StatusChanged(orderID int64, status models.OrderStatus) Event {
	return Event{Type: "pedido." + string(status), OrderID: orderID, Status: status, OccurredAt: time.Now()}
}

// SaleRecorded builds the event for a delivered order turned into a sale.
func SaleRecorded(orderID int64, s models.Sale) Event {
	return Event{Type: TypeSaleRecorded, OrderID: orderID, Status: models.StatusDelivered, Sale: &s, OccurredAt: time.Now()}
}

// Publisher delivers events. Delivery is best effort; callers log failures.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
