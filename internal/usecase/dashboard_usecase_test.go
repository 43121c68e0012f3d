package usecase_test

import (
	"context"
	"testing"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
	"github.com/Kechnaouimoulaych/magasinapk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type DashCustomerRepoMock struct{ SaleCustomerRepoMock }

func (m *DashCustomerRepoMock) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestDashboardUsecase_GetStats(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	cRepo := new(DashCustomerRepoMock)
	sRepo := new(SaleSaleRepoMock)
	uc := usecase.NewDashboardUsecase(pRepo, cRepo, sRepo)

	pRepo.On("CountAll", mock.Anything).Return(int64(4), nil)
	cRepo.On("CountAll", mock.Anything).Return(int64(2), nil)
	sRepo.On("SumTotal", mock.Anything).Return(106.95, nil)
	//ダッシュボードはしきい値5で数える
	pRepo.On("CountLowStock", mock.Anything, int64(5)).Return(int64(1), nil)
	sRepo.On("ListRecent", mock.Anything, 5).Return([]model.Sale{{ID: 2}, {ID: 1}}, nil)

	out, err := uc.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), out.TotalProducts)
	assert.Equal(t, int64(2), out.TotalCustomers)
	assert.InDelta(t, 106.95, out.TotalRevenue, 0.001)
	assert.Equal(t, int64(1), out.LowStockCount)
	assert.Equal(t, 2, len(out.RecentSales))
	assert.Equal(t, int64(2), out.RecentSales[0].ID)

	pRepo.AssertExpectations(t)
	cRepo.AssertExpectations(t)
	sRepo.AssertExpectations(t)
}

func TestDashboardUsecase_TotalRevenue_ZeroWhenNoSales(t *testing.T) {
	ctx := context.Background()

	sRepo := new(SaleSaleRepoMock)
	uc := usecase.NewDashboardUsecase(new(ProdProductRepoMock), new(DashCustomerRepoMock), sRepo)

	sRepo.On("SumTotal", mock.Anything).Return(float64(0), nil)

	sum, err := uc.TotalRevenue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, float64(0), sum)
}

func TestDashboardUsecase_LowStockCount_CallerThreshold(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewDashboardUsecase(pRepo, new(DashCustomerRepoMock), new(SaleSaleRepoMock))

	pRepo.On("CountLowStock", mock.Anything, int64(2)).Return(int64(2), nil)

	n, err := uc.LowStockCount(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = uc.LowStockCount(ctx, -1)
	assertErrContains(t, err, "threshold must be >= 0")
}

func TestDashboardUsecase_RecentSales_ZeroLimit(t *testing.T) {
	ctx := context.Background()

	sRepo := new(SaleSaleRepoMock)
	uc := usecase.NewDashboardUsecase(new(ProdProductRepoMock), new(DashCustomerRepoMock), sRepo)

	sRepo.On("ListRecent", mock.Anything, 0).Return([]model.Sale{}, nil)

	sales, err := uc.RecentSales(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(sales))
}
