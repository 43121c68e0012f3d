package main

import (
	"context"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
	repo "github.com/Kechnaouimoulaych/magasinapk/internal/repository"
	"github.com/Kechnaouimoulaych/magasinapk/internal/usecase"
)

// 商品テーブルが空のときだけ初期データを入れる。
// 売上は通常の記録経路を通すので、在庫と累計購入額は整合した状態で始まる。
func seedSampleData(
	ctx context.Context,
	products repo.ProductRepository,
	customers repo.CustomerRepository,
	sales *usecase.SaleUsecase,
) error {
	n, err := products.CountAll(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	seedProducts := []model.Product{
		{Name: "Baby Onesie Set", Category: "Bodysuits", Price: 24.99, Stock: 17, Supplier: "Baby Comfort Co", Size: "0-3M", AgeRange: "0-3M", Color: "Pink", Material: "Cotton", Condition: model.ConditionNew},
		{Name: "Infant Sleep Gown", Category: "Sleepwear", Price: 18.99, Stock: 11, Supplier: "Sleepy Baby", Size: "3-6M", AgeRange: "3-6M", Color: "Blue", Material: "Organic Cotton", Condition: model.ConditionNew},
		{Name: "Newborn Romper", Category: "Outerwear", Price: 32.99, Stock: 12, Supplier: "Little Angels", Size: "Newborn", AgeRange: "Newborn", Color: "Yellow", Material: "Bamboo", Condition: model.ConditionGentlyUsed},
		{Name: "Baby Footie Pajamas", Category: "Sleepwear", Price: 22.99, Stock: 4, Supplier: "Cozy Dreams", Size: "6-9M", AgeRange: "6-9M", Color: "White", Material: "Cotton Blend", Condition: model.ConditionNew},
	}

	created := make([]model.Product, 0, len(seedProducts))
	for _, p := range seedProducts {
		cp, err := products.Create(ctx, p)
		if err != nil {
			return err
		}
		created = append(created, cp)
	}

	emma, err := customers.Create(ctx, model.Customer{
		Name: "Emma Johnson", Email: "emma.j@email.com", Phone: "123-456-7890",
		BabyName: "Lily", BabyAge: "3 months",
	})
	if err != nil {
		return err
	}
	sarah, err := customers.Create(ctx, model.Customer{
		Name: "Sarah Williams", Email: "sarah.w@email.com", Phone: "098-765-4321",
		BabyName: "Max", BabyAge: "8 months",
	})
	if err != nil {
		return err
	}

	//初期売上（在庫減算・累計加算も通常通り行われる）
	if _, err := sales.RecordSale(ctx, usecase.RecordSaleInput{
		Date: "2024-06-10", CustomerID: emma.ID, ProductID: created[0].ID, Quantity: 2,
	}); err != nil {
		return err
	}
	if _, err := sales.RecordSale(ctx, usecase.RecordSaleInput{
		Date: "2024-06-12", CustomerID: sarah.ID, ProductID: created[1].ID, Quantity: 3,
	}); err != nil {
		return err
	}

	return nil
}
