package usecase

import (
	"context"
	"net/http"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
	repo "github.com/Kechnaouimoulaych/magasinapk/internal/repository"
)

// ダッシュボードのしきい値と表示件数。
// 在庫一覧のハイライト（2）とは独立した値なので統一しない。
const (
	DashboardLowStockThreshold int64 = 5
	DashboardRecentSalesLimit        = 5
)

// ストアの現在値から毎回計算し直す読み取り専用ビュー。状態は持たない。
type DashboardUsecase struct {
	productRepo  repo.ProductRepository
	customerRepo repo.CustomerRepository
	saleRepo     repo.SaleRepository
}

// DI
func NewDashboardUsecase(
	productRepo repo.ProductRepository,
	customerRepo repo.CustomerRepository,
	saleRepo repo.SaleRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

type DashboardStatsOutput struct {
	TotalProducts  int64        `json:"total_products"`
	TotalCustomers int64        `json:"total_customers"`
	TotalRevenue   float64      `json:"total_revenue"`
	LowStockCount  int64        `json:"low_stock_count"`
	RecentSales    []model.Sale `json:"recent_sales"`
}

func (u *DashboardUsecase) GetStats(ctx context.Context) (DashboardStatsOutput, error) {
	totalProducts, err := u.TotalProductCount(ctx)
	if err != nil {
		return DashboardStatsOutput{}, err
	}

	totalCustomers, err := u.TotalCustomerCount(ctx)
	if err != nil {
		return DashboardStatsOutput{}, err
	}

	revenue, err := u.TotalRevenue(ctx)
	if err != nil {
		return DashboardStatsOutput{}, err
	}

	lowStock, err := u.LowStockCount(ctx, DashboardLowStockThreshold)
	if err != nil {
		return DashboardStatsOutput{}, err
	}

	recent, err := u.RecentSales(ctx, DashboardRecentSalesLimit)
	if err != nil {
		return DashboardStatsOutput{}, err
	}

	return DashboardStatsOutput{
		TotalProducts:  totalProducts,
		TotalCustomers: totalCustomers,
		TotalRevenue:   revenue,
		LowStockCount:  lowStock,
		RecentSales:    recent,
	}, nil
}

func (u *DashboardUsecase) TotalProductCount(ctx context.Context) (int64, error) {
	n, err := u.productRepo.CountAll(ctx)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return n, nil
}

func (u *DashboardUsecase) TotalCustomerCount(ctx context.Context) (int64, error) {
	n, err := u.customerRepo.CountAll(ctx)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return n, nil
}

// 売上合計（0件なら0）
func (u *DashboardUsecase) TotalRevenue(ctx context.Context) (float64, error) {
	sum, err := u.saleRepo.SumTotal(ctx)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return sum, nil
}

// stock <= threshold の商品件数
func (u *DashboardUsecase) LowStockCount(ctx context.Context, threshold int64) (int64, error) {
	if threshold < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "threshold must be >= 0")
	}

	n, err := u.productRepo.CountLowStock(ctx, threshold)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return n, nil
}

// 新しい順で直近limit件。limit=0は空。
func (u *DashboardUsecase) RecentSales(ctx context.Context, limit int) ([]model.Sale, error) {
	if limit < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "limit must be >= 0")
	}

	sales, err := u.saleRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return sales, nil
}
