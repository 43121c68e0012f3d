package repository

import (
	"context"
	"errors"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	// trueなら在庫ありのみ（売上登録フォーム向け）
	InStockOnly bool
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 名前昇順で全件
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	// ダッシュボード用の集計
	CountAll(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int64) (int64, error)
}
