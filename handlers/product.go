package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"cantina-api/middleware"
	"cantina-api/models"

	"github.com/gin-gonic/gin"
)

const productNotFound = "Producto no encontrado"

// ProductHandler serves the /productos routes
type ProductHandler struct {
	catalog CatalogService
	orders  FulfillmentService
	images  ImageStore
}

func NewProductHandler(catalog CatalogService, orders FulfillmentService, images ImageStore) *ProductHandler {
	return &ProductHandler{catalog: catalog, orders: orders, images: images}
}

// GetAllProducts retrieves all products
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct adds a new product from a multipart form with an optional
// "imagen" file
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input models.ProductInput

	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	// Save the image first so the product row can point at it
	var image string
	file, err := c.FormFile("imagen")
	switch {
	case err == nil:
		var dst string
		image, dst, err = h.images.Place(file.Filename)
		if err != nil {
			respondError(c, err, productNotFound)
			return
		}
		if err := c.SaveUploadedFile(file, dst); err != nil {
			respondError(c, fmt.Errorf("save image: %w", err), productNotFound)
			return
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		bindError(c, err)
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), input, image)
	if err != nil {
		if image != "" {
			if rmErr := h.images.Remove(image); rmErr != nil {
				log.Printf("Failed to remove orphaned image %s: %v", image, rmErr)
			}
		}
		respondError(c, err, productNotFound)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProduct retrieves a specific product by ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct replaces name, price and stock of a product
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.ProductUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	changed, err := h.catalog.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	if changed == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": productNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": fmt.Sprintf("Filas editadas: %d", changed),
		"cambios": changed,
	})
}

// DeleteProduct removes a specific product
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	removed, err := h.catalog.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	if removed == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": productNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": fmt.Sprintf("Filas borradas: %d", removed),
		"cambios": removed,
	})
}

// SearchProducts matches ?q= against product names and descriptions
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, products)
}

// PurchaseProduct buys units of a product and opens an order. A signed in
// user replaces the "usuario" field of the body.
func (h *ProductHandler) PurchaseProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if username := c.GetString(middleware.UsernameKey); username != "" {
		input.Purchaser = username
	}

	result, err := h.orders.Purchase(c.Request.Context(), id, input.Quantity, input.Purchaser)
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje":       "Compra realizada y pedido registrado",
		"stockRestante": result.RemainingStock,
		"pedido":        result.Order,
	})
}
