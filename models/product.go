package models

import (
	"time"
)

// Product represents a catalog item and its stock level
type Product struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:nombre;not null" json:"nombre"`
	Price       float64   `gorm:"column:precio;type:double precision;not null;check:precio >= 0" json:"precio"`
	Quantity    int       `gorm:"column:cantidad;not null;default:0;check:cantidad >= 0" json:"cantidad"`
	Image       *string   `gorm:"column:imagen" json:"imagen"`
	Description *string   `gorm:"column:descripcion" json:"descripcion"`
	CreatedAt   time.Time `gorm:"column:creado;not null;default:CURRENT_TIMESTAMP" json:"creado"`
}

func (Product) TableName() string {
	return "productos"
}

// ProductInput holds data for creating a product from a multipart form
type ProductInput struct {
	Name        string   `form:"nombre" json:"nombre"`
	Price       *float64 `form:"precio" json:"precio"`
	Quantity    *int     `form:"cantidad" json:"cantidad"`
	Description string   `form:"descripcion" json:"descripcion"`
}

// ProductUpdate holds the fields replaced by an edit
type ProductUpdate struct {
	Name     string   `json:"nombre"`
	Price    *float64 `json:"precio"`
	Quantity *int     `json:"cantidad"`
}

// PurchaseInput is the body of a purchase request
type PurchaseInput struct {
	Quantity  int    `json:"cantidad"`
	Purchaser string `json:"usuario"`
}
