package usecase

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
	repo "github.com/Kechnaouimoulaych/magasinapk/internal/repository"
)

// 在庫不足。呼び出し側は入力を直して再試行できる。
var ErrInsufficientStock = NewHTTPError(http.StatusConflict, "insufficient stock")

type SaleUsecase struct {
	tx repo.TransactionManager

	// 売上登録は3点更新（売上・在庫・累計購入額）なので、
	// ストア単位で直列化して同時実行の交錯を防ぐ。
	mu sync.Mutex
}

func NewSaleUsecase(tx repo.TransactionManager) *SaleUsecase {
	return &SaleUsecase{tx: tx}
}

type RecordSaleInput struct {
	// 空なら当日（YYYY-MM-DD）
	Date       string
	CustomerID int64
	ProductID  int64
	Quantity   int64
}

type SaleOutput struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	CustomerName string  `json:"customer_name"`
	ProductName  string  `json:"product_name"`
	Quantity     int64   `json:"quantity"`
	Total        float64 `json:"total"`
	Size         string  `json:"size"`
}

type SaleListOutput struct {
	Items []SaleOutput `json:"items"`
	Total int          `json:"total"`
}

// 売上記録。売上行の作成・在庫減算・顧客累計の加算を1トランザクションで行う。
// 途中で失敗したらすべて巻き戻る（部分適用は残らない）。
func (u *SaleUsecase) RecordSale(ctx context.Context, in RecordSaleInput) (SaleOutput, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var out SaleOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//顧客と商品をIDで解決
		c, err := r.Customers().FindByID(ctx, in.CustomerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "customer not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		p, err := r.Products().FindByID(ctx, in.ProductID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if in.Quantity <= 0 {
			return NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
		}

		//在庫減算（足りないなら false）
		ok, err := r.Inventory().DecreaseStockIfEnough(ctx, in.ProductID, in.Quantity)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return ErrInsufficientStock
		}

		//販売時点の単価で確定。後から商品価格が変わっても再計算しない。
		total := float64(in.Quantity) * p.Price

		created, err := r.Sales().Create(ctx, model.Sale{
			Date:         date,
			CustomerName: c.Name,
			ProductName:  p.Name,
			Quantity:     in.Quantity,
			Total:        total,
			Size:         p.Size,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Customers().AddToTotalPurchases(ctx, c.ID, total); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toSaleOutput(created)
		return nil
	})

	if err != nil {
		return SaleOutput{}, err
	}
	return out, nil
}

// 新しい順で全件
func (u *SaleUsecase) ListSales(ctx context.Context) (SaleListOutput, error) {
	var outs SaleListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		sales, err := r.Sales().List(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items := make([]SaleOutput, 0, len(sales))
		for _, s := range sales {
			items = append(items, toSaleOutput(s))
		}
		outs = SaleListOutput{Items: items, Total: len(items)}
		return nil
	})

	if err != nil {
		return SaleListOutput{}, err
	}
	return outs, nil
}

func toSaleOutput(s model.Sale) SaleOutput {
	return SaleOutput{
		ID:           s.ID,
		Date:         s.Date,
		CustomerName: s.CustomerName,
		ProductName:  s.ProductName,
		Quantity:     s.Quantity,
		Total:        s.Total,
		Size:         s.Size,
	}
}
