package repository

import (
	"context"

	"cantina-api/database"
)

// Store is the gateway-backed Provider and UnitOfWork
type Store struct {
	gw       *database.Gateway
	catalog  *Catalog
	accounts *Accounts
	orders   *Orders
	sales    *Sales
}

func NewStore(gw *database.Gateway) *Store {
	return &Store{
		gw:       gw,
		catalog:  NewCatalog(gw),
		accounts: NewAccounts(gw),
		orders:   NewOrders(gw),
		sales:    NewSales(gw),
	}
}

func (s *Store) Catalog() CatalogRepository  { return s.catalog }
func (s *Store) Accounts() AccountRepository { return s.accounts }
func (s *Store) Orders() OrderRepository     { return s.orders }
func (s *Store) Sales() SalesRepository      { return s.sales }

// Do runs fn inside one database transaction.
func (s *Store) Do(ctx context.Context, fn func(tx Provider) error) error {
	return s.gw.Transaction(ctx, func(tx *database.Gateway) error {
		return fn(NewStore(tx))
	})
}

// Ping checks the underlying database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.gw.Ping(ctx)
}
