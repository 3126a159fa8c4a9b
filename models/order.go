package models

import (
	"time"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pendiente"
	StatusPrepared  OrderStatus = "preparado"
	StatusDelivered OrderStatus = "entregado"
)

// GuestPurchaser names the buyer of anonymous purchases
const GuestPurchaser = "Invitado"

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPrepared, StatusDelivered:
		return true
	}
	return false
}

// Order is an open purchase. Product name and price are a snapshot taken at
// purchase time, not a live reference.
type Order struct {
	ID          int64       `gorm:"column:id;primaryKey" json:"id"`
	Purchaser   string      `gorm:"column:usuario;not null" json:"usuario"`
	ProductID   int64       `gorm:"column:producto_id;not null" json:"producto_id"`
	ProductName string      `gorm:"column:nombre_producto;not null" json:"nombre_producto"`
	Quantity    int         `gorm:"column:cantidad;not null" json:"cantidad"`
	UnitPrice   float64     `gorm:"column:precio_unitario;type:double precision;not null" json:"precio_unitario"`
	Total       float64     `gorm:"column:total;type:double precision;not null" json:"total"`
	Status      OrderStatus `gorm:"column:estado;type:text;default:'pendiente'" json:"estado"`
	CreatedAt   time.Time   `gorm:"column:fecha;not null;default:CURRENT_TIMESTAMP" json:"fecha"`
}

func (Order) TableName() string {
	return "pedidos"
}

// StatusInput is the body of an order status update
type StatusInput struct {
	Status OrderStatus `json:"estado"`
}
