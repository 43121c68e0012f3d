package repository

import (
	"context"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
)

type CustomerRepository interface {
	// 名前昇順で全件
	List(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)

	Create(ctx context.Context, c model.Customer) (model.Customer, error)

	// 累計購入額に加算（売上記録からのみ呼ばれる）
	AddToTotalPurchases(ctx context.Context, customerID int64, amount float64) error

	CountAll(ctx context.Context) (int64, error)
}
