package handlers

import (
	"context"

	"cantina-api/models"
	"cantina-api/service"

	"github.com/stretchr/testify/mock"
)

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]models.Product)
	return p, args.Error(1)
}

func (m *mockCatalog) Get(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockCatalog) Search(ctx context.Context, query string) ([]models.Product, error) {
	args := m.Called(ctx, query)
	p, _ := args.Get(0).([]models.Product)
	return p, args.Error(1)
}

func (m *mockCatalog) Create(ctx context.Context, in models.ProductInput, image string) (*models.Product, error) {
	args := m.Called(ctx, in, image)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockCatalog) Update(ctx context.Context, id int64, in models.ProductUpdate) (int64, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalog) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockFulfillment struct{ mock.Mock }

func (m *mockFulfillment) Purchase(ctx context.Context, productID int64, quantity int, purchaser string) (*service.PurchaseResult, error) {
	args := m.Called(ctx, productID, quantity, purchaser)
	r, _ := args.Get(0).(*service.PurchaseResult)
	return r, args.Error(1)
}

func (m *mockFulfillment) Advance(ctx context.Context, orderID int64, status models.OrderStatus) (*service.AdvanceResult, error) {
	args := m.Called(ctx, orderID, status)
	r, _ := args.Get(0).(*service.AdvanceResult)
	return r, args.Error(1)
}

func (m *mockFulfillment) ListActive(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]models.Order)
	return o, args.Error(1)
}

func (m *mockFulfillment) Sales(ctx context.Context, purchaser string) ([]models.Sale, error) {
	args := m.Called(ctx, purchaser)
	s, _ := args.Get(0).([]models.Sale)
	return s, args.Error(1)
}

type mockAccounts struct{ mock.Mock }

func (m *mockAccounts) Register(ctx context.Context, in models.AccountRegister) (*models.Account, error) {
	args := m.Called(ctx, in)
	a, _ := args.Get(0).(*models.Account)
	return a, args.Error(1)
}

func (m *mockAccounts) Login(ctx context.Context, in models.AccountLogin) (*models.Account, string, error) {
	args := m.Called(ctx, in)
	a, _ := args.Get(0).(*models.Account)
	return a, args.String(1), args.Error(2)
}

type mockImages struct{ mock.Mock }

func (m *mockImages) Place(filename string) (string, string, error) {
	args := m.Called(filename)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockImages) Remove(publicPath string) error {
	return m.Called(publicPath).Error(0)
}

type mockPinger struct{ mock.Mock }

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
