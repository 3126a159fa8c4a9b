// Package service holds the cantina workflows on top of the repositories.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cantina-api/cache"
	"cantina-api/events"
	"cantina-api/models"
	"cantina-api/repository"
)

// PurchaseResult is the order created by a purchase and the stock left
type PurchaseResult struct {
	Order          models.Order `json:"pedido"`
	RemainingStock int          `json:"stockRestante"`
}

// AdvanceResult describes what a status change did. Sale is set only when
// the order was delivered.
type AdvanceResult struct {
	Status  models.OrderStatus
	Changed int64
	Sale    *models.Sale
}

// Fulfillment runs the purchase and delivery workflows
type Fulfillment struct {
	uow       repository.UnitOfWork
	products  cache.ProductCache
	publisher events.Publisher
	now       func() time.Time
}

func NewFulfillment(uow repository.UnitOfWork, products cache.ProductCache, publisher events.Publisher) *Fulfillment {
	return &Fulfillment{uow: uow, products: products, publisher: publisher, now: time.Now}
}

// Purchase takes quantity units of a product and opens a pending order for
// them. The stock check, the decrement and the order insert commit together.
func (s *Fulfillment) Purchase(ctx context.Context, productID int64, quantity int, purchaser string) (*PurchaseResult, error) {
	if quantity <= 0 {
		return nil, models.NewValidationError("cantidad", "must be greater than zero")
	}
	purchaser = strings.TrimSpace(purchaser)
	if purchaser == "" {
		purchaser = models.GuestPurchaser
	}

	var result PurchaseResult
	err := s.uow.Do(ctx, func(tx repository.Provider) error {
		product, found, err := tx.Catalog().GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("product %d: %w", productID, models.ErrNotFound)
		}
		if quantity > product.Quantity {
			return &models.InsufficientStockError{ProductID: productID, Requested: quantity, Available: product.Quantity}
		}

		remaining, err := tx.Catalog().DecrementStock(ctx, productID, quantity)
		if err != nil {
			return err
		}

		order := models.Order{
			Purchaser:   purchaser,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   product.Price,
			Total:       LineTotal(quantity, product.Price),
			Status:      models.StatusPending,
			CreatedAt:   s.now(),
		}
		id, err := tx.Orders().Create(ctx, &order)
		if err != nil {
			return err
		}
		order.ID = id

		result = PurchaseResult{Order: order, RemainingStock: remaining}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateProducts(ctx)
	s.publish(ctx, events.OrderCreated(result.Order))
	return &result, nil
}

// Advance moves an order to status. Delivering an order records it as a
// sale and removes it from the open orders, in one transaction.
func (s *Fulfillment) Advance(ctx context.Context, orderID int64, status models.OrderStatus) (*AdvanceResult, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("estado", fmt.Sprintf("unknown status %q", status))
	}
	if status == models.StatusDelivered {
		return s.deliver(ctx, orderID)
	}

	changed, err := s.uow.Orders().UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	if changed == 0 {
		return nil, fmt.Errorf("order %d: %w", orderID, models.ErrNotFound)
	}

	s.publish(ctx, events.StatusChanged(orderID, status))
	return &AdvanceResult{Status: status, Changed: changed}, nil
}

func (s *Fulfillment) deliver(ctx context.Context, orderID int64) (*AdvanceResult, error) {
	var sale models.Sale
	err := s.uow.Do(ctx, func(tx repository.Provider) error {
		order, found, err := tx.Orders().GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("order %d: %w", orderID, models.ErrNotFound)
		}

		// The sale goes in before the order comes out.
		sale = models.SaleFromOrder(*order)
		sale.CreatedAt = s.now()
		id, err := tx.Sales().Create(ctx, &sale)
		if err != nil {
			return err
		}
		sale.ID = id

		removed, err := tx.Orders().Delete(ctx, orderID)
		if err != nil {
			return err
		}
		if removed == 0 {
			// Delivered concurrently; drop our sale with the rollback.
			return fmt.Errorf("order %d: %w", orderID, models.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.SaleRecorded(orderID, sale))
	return &AdvanceResult{Status: models.StatusDelivered, Changed: 1, Sale: &sale}, nil
}

// ListActive returns the orders not yet delivered, newest first.
func (s *Fulfillment) ListActive(ctx context.Context) ([]models.Order, error) {
	return s.uow.Orders().ListActive(ctx)
}

// Sales returns the sales ledger, or one purchaser's part of it when
// purchaser is not empty.
func (s *Fulfillment) Sales(ctx context.Context, purchaser string) ([]models.Sale, error) {
	if purchaser == "" {
		return s.uow.Sales().ListAll(ctx)
	}
	return s.uow.Sales().ListByPurchaser(ctx, purchaser)
}

func (s *Fulfillment) invalidateProducts(ctx context.Context) {
	if err := s.products.Invalidate(ctx); err != nil {
		log.Printf("Failed to invalidate product cache: %v", err)
	}
}

func (s *Fulfillment) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		log.Printf("Failed to publish %s for order %d: %v", e.Type, e.OrderID, err)
	}
}
