package handlers

import (
	"fmt"
	"net/http"

	"cantina-api/models"

	"github.com/gin-gonic/gin"
)

const orderNotFound = "Pedido no encontrado"

// OrderHandler serves the /pedidos and /ventas routes
type OrderHandler struct {
	orders FulfillmentService
}

func NewOrderHandler(orders FulfillmentService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GetOrders retrieves every order not yet delivered
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orders.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus moves an order to a new status. Delivering it moves
// the order into the sales history.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.orders.Advance(c.Request.Context(), id, input.Status)
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}

	if result.Sale != nil {
		c.JSON(http.StatusOK, gin.H{
			"mensaje": "Pedido entregado y movido al historial de ventas",
			"venta":   result.Sale,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": fmt.Sprintf("Pedido actualizado a %q (%d cambios)", result.Status, result.Changed),
		"cambios": result.Changed,
	})
}

// GetSales retrieves the sales history, filtered by :usuario when present
func (h *OrderHandler) GetSales(c *gin.Context) {
	sales, err := h.orders.Sales(c.Request.Context(), c.Param("usuario"))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, sales)
}
