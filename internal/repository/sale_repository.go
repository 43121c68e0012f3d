package repository

import (
	"context"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
)

type SaleRepository interface {
	// ID降順（新しい順）で全件
	List(ctx context.Context) ([]model.Sale, error)

	// ID降順で直近limit件。limit=0は空。
	ListRecent(ctx context.Context, limit int) ([]model.Sale, error)

	Create(ctx context.Context, s model.Sale) (model.Sale, error)

	// 売上合計（0件なら0）
	SumTotal(ctx context.Context) (float64, error)
}

// 在庫の永続化の約束。
type InventoryRepository interface {
	// 在庫が足りるときだけ減算
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
}
