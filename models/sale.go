package models

import (
	"time"
)

// Sale is the permanent record of a delivered order
type Sale struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Purchaser   string    `gorm:"column:usuario;not null;index" json:"usuario"`
	ProductID   int64     `gorm:"column:producto_id;not null" json:"producto_id"`
	ProductName string    `gorm:"column:nombre_producto;not null" json:"nombre_producto"`
	Quantity    int       `gorm:"column:cantidad;not null" json:"cantidad"`
	UnitPrice   float64   `gorm:"column:precio_unitario;type:double precision;not null" json:"precio_unitario"`
	Total       float64   `gorm:"column:total;type:double precision;not null" json:"total"`
	CreatedAt   time.Time `gorm:"column:fecha;not null;default:CURRENT_TIMESTAMP" json:"fecha"`
}

func (Sale) TableName() string {
	return "ventas"
}

// SaleFromOrder copies the order snapshot into a new sale.
func SaleFromOrder(o Order) Sale {
	return Sale{
		Purchaser:   o.Purchaser,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice,
		Total:       o.Total,
	}
}
