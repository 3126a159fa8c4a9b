package models

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	stock := &InsufficientStockError{ProductID: 1, Requested: 5, Available: 2}
	assert.ErrorIs(t, stock, ErrInsufficientStock)
	assert.ErrorIs(t, fmt.Errorf("purchase: %w", stock), ErrInsufficientStock)
	assert.Equal(t, "insufficient stock for product 1: requested 5, available 2", stock.Error())

	invalid := NewValidationError("nombre", "is required")
	assert.ErrorIs(t, invalid, ErrValidation)
	assert.NotErrorIs(t, invalid, ErrNotFound)
	assert.Equal(t, "nombre: is required", invalid.Error())
	assert.Equal(t, "bad body", NewValidationError("", "bad body").Error())
}

func TestStorageErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := &StorageError{Op: "list products", Err: cause}

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "list products: connection refused", err.Error())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusPrepared.Valid())
	assert.True(t, StatusDelivered.Valid())
	assert.False(t, OrderStatus("enviado").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestSaleFromOrderCopiesSnapshot(t *testing.T) {
	o := Order{ID: 9, Purchaser: "ana", ProductID: 1, ProductName: "Empanada",
		Quantity: 3, UnitPrice: 500, Total: 1500, Status: StatusPrepared}

	s := SaleFromOrder(o)
	assert.Zero(t, s.ID)
	assert.Equal(t, "ana", s.Purchaser)
	assert.Equal(t, int64(1), s.ProductID)
	assert.Equal(t, "Empanada", s.ProductName)
	assert.Equal(t, 3, s.Quantity)
	assert.Equal(t, 500.0, s.UnitPrice)
	assert.Equal(t, 1500.0, s.Total)
}

func TestMoneyColumnsAreDoublePrecision(t *testing.T) {
	columns := map[interface{}][]string{
		&Product{}: {"precio"},
		&Order{}:   {"precio_unitario", "total"},
		&Sale{}:    {"precio_unitario", "total"},
	}
	for model, names := range columns {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)
		for _, name := range names {
			f := s.LookUpField(name)
			require.NotNil(t, f, "%s.%s", s.Table, name)
			assert.Equal(t, schema.DataType("double precision"), f.DataType, "%s.%s", s.Table, name)
		}
	}
}
