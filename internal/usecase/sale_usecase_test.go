package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
	repo "github.com/Kechnaouimoulaych/magasinapk/internal/repository"
	"github.com/Kechnaouimoulaych/magasinapk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type SaleCustomerRepoMock struct{ mock.Mock }

func (m *SaleCustomerRepoMock) List(ctx context.Context) ([]model.Customer, error) {
	panic("not used in SaleUsecase tests")
}

func (m *SaleCustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *SaleCustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	panic("not used in SaleUsecase tests")
}

func (m *SaleCustomerRepoMock) AddToTotalPurchases(ctx context.Context, customerID int64, amount float64) error {
	args := m.Called(ctx, customerID, amount)
	return args.Error(0)
}

func (m *SaleCustomerRepoMock) CountAll(ctx context.Context) (int64, error) {
	panic("not used in SaleUsecase tests")
}

type SaleSaleRepoMock struct{ mock.Mock }

func (m *SaleSaleRepoMock) List(ctx context.Context) ([]model.Sale, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Sale)
	return items, args.Error(1)
}

func (m *SaleSaleRepoMock) ListRecent(ctx context.Context, limit int) ([]model.Sale, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Sale)
	return items, args.Error(1)
}

func (m *SaleSaleRepoMock) Create(ctx context.Context, s model.Sale) (model.Sale, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Sale)
	return created, args.Error(1)
}

func (m *SaleSaleRepoMock) SumTotal(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type SaleInventoryRepoMock struct{ mock.Mock }

func (m *SaleInventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

// TxReposをモックで組み立てる
type txReposStub struct {
	products  repo.ProductRepository
	customers repo.CustomerRepository
	sales     repo.SaleRepository
	inventory repo.InventoryRepository
}

func (r *txReposStub) Products() repo.ProductRepository    { return r.products }
func (r *txReposStub) Customers() repo.CustomerRepository  { return r.customers }
func (r *txReposStub) Sales() repo.SaleRepository          { return r.sales }
func (r *txReposStub) Inventory() repo.InventoryRepository { return r.inventory }

// fnをそのまま実行するTransactionManager
type txManagerStub struct {
	repos *txReposStub
}

func (tm *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(tm.repos)
}

type saleMocks struct {
	products  *ProdProductRepoMock
	customers *SaleCustomerRepoMock
	sales     *SaleSaleRepoMock
	inventory *SaleInventoryRepoMock
}

func newSaleUsecaseWithMocks() (*usecase.SaleUsecase, saleMocks) {
	m := saleMocks{
		products:  new(ProdProductRepoMock),
		customers: new(SaleCustomerRepoMock),
		sales:     new(SaleSaleRepoMock),
		inventory: new(SaleInventoryRepoMock),
	}
	tm := &txManagerStub{repos: &txReposStub{
		products:  m.products,
		customers: m.customers,
		sales:     m.sales,
		inventory: m.inventory,
	}}
	return usecase.NewSaleUsecase(tm), m
}

// =====================
// RecordSale
// =====================

func TestSaleUsecase_RecordSale_CustomerNotFound(t *testing.T) {
	ctx := context.Background()
	uc, m := newSaleUsecaseWithMocks()

	m.customers.On("FindByID", mock.Anything, int64(99)).Return(model.Customer{}, repo.ErrNotFound)

	_, err := uc.RecordSale(ctx, usecase.RecordSaleInput{
		Date: "2024-06-10", CustomerID: 99, ProductID: 1, Quantity: 1,
	})
	assertErrContains(t, err, "customer not found")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)

	m.inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
	m.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaleUsecase_RecordSale_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	uc, m := newSaleUsecaseWithMocks()

	m.customers.On("FindByID", mock.Anything, int64(1)).Return(model.Customer{ID: 1, Name: "Emma Johnson"}, nil)
	m.products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.RecordSale(ctx, usecase.RecordSaleInput{
		Date: "2024-06-10", CustomerID: 1, ProductID: 99, Quantity: 1,
	})
	assertErrContains(t, err, "product not found")

	m.inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaleUsecase_RecordSale_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	uc, m := newSaleUsecaseWithMocks()

	m.customers.On("FindByID", mock.Anything, int64(1)).Return(model.Customer{ID: 1, Name: "Emma Johnson"}, nil)
	m.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Baby Onesie Set", Price: 24.99, Stock: 17}, nil)

	for _, qty := range []int64{0, -1} {
		_, err := uc.RecordSale(ctx, usecase.RecordSaleInput{
			Date: "2024-06-10", CustomerID: 1, ProductID: 1, Quantity: qty,
		})
		assertErrContains(t, err, "quantity must be > 0")
	}

	m.inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
	m.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaleUsecase_RecordSale_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	uc, m := newSaleUsecaseWithMocks()

	m.customers.On("FindByID", mock.Anything, int64(1)).Return(model.Customer{ID: 1, Name: "Emma Johnson"}, nil)
	m.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Baby Onesie Set", Price: 24.99, Stock: 2}, nil)
	m.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(5)).Return(false, nil)

	_, err := uc.RecordSale(ctx, usecase.RecordSaleInput{
		Date: "2024-06-10", CustomerID: 1, ProductID: 1, Quantity: 5,
	})
	assertErrContains(t, err, "insufficient stock")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)

	//売上も累計加算も行われない
	m.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.customers.AssertNotCalled(t, "AddToTotalPurchases", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaleUsecase_RecordSale_Success(t *testing.T) {
	ctx := context.Background()
	uc, m := newSaleUsecaseWithMocks()

	m.customers.On("FindByID", mock.Anything, int64(1)).Return(model.Customer{ID: 1, Name: "Emma Johnson"}, nil)
	m.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "Baby Onesie Set", Price: 24.99, Stock: 17, Size: "0-3M",
	}, nil)
	m.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(true, nil)

	m.sales.On("Create", mock.Anything, mock.MatchedBy(func(s model.Sale) bool {
		//販売時点のスナップショットで記録される
		return s.Date == "2024-06-10" &&
			s.CustomerName == "Emma Johnson" &&
			s.ProductName == "Baby Onesie Set" &&
			s.Size == "0-3M" &&
			s.Quantity == 2
	})).Return(model.Sale{ID: 10, Date: "2024-06-10", CustomerName: "Emma Johnson", ProductName: "Baby Onesie Set", Quantity: 2, Total: 49.98, Size: "0-3M"}, nil)

	m.customers.On("AddToTotalPurchases", mock.Anything, int64(1), mock.MatchedBy(func(v float64) bool {
		return v > 49.97 && v < 49.99
	})).Return(nil)

	out, err := uc.RecordSale(ctx, usecase.RecordSaleInput{
		Date: "2024-06-10", CustomerID: 1, ProductID: 1, Quantity: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.InDelta(t, 49.98, out.Total, 0.001)

	m.sales.AssertExpectations(t)
	m.customers.AssertExpectations(t)
	m.inventory.AssertExpectations(t)
}

func TestSaleUsecase_RecordSale_EmptyDateDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	uc, m := newSaleUsecaseWithMocks()

	m.customers.On("FindByID", mock.Anything, int64(1)).Return(model.Customer{ID: 1, Name: "Emma Johnson"}, nil)
	m.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Baby Onesie Set", Price: 24.99, Stock: 17}, nil)
	m.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(1)).Return(true, nil)

	m.sales.On("Create", mock.Anything, mock.MatchedBy(func(s model.Sale) bool {
		//YYYY-MM-DD
		return len(s.Date) == 10 && s.Date[4] == '-' && s.Date[7] == '-'
	})).Return(model.Sale{ID: 1}, nil)

	m.customers.On("AddToTotalPurchases", mock.Anything, int64(1), mock.Anything).Return(nil)

	_, err := uc.RecordSale(ctx, usecase.RecordSaleInput{CustomerID: 1, ProductID: 1, Quantity: 1})
	assert.NoError(t, err)

	m.sales.AssertExpectations(t)
}

// =====================
// ListSales
// =====================

func TestSaleUsecase_ListSales_NewestFirst(t *testing.T) {
	ctx := context.Background()
	uc, m := newSaleUsecaseWithMocks()

	m.sales.On("List", mock.Anything).Return([]model.Sale{
		{ID: 3}, {ID: 2}, {ID: 1},
	}, nil)

	out, err := uc.ListSales(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, int64(3), out.Items[0].ID)
	assert.Equal(t, int64(1), out.Items[2].ID)
}
