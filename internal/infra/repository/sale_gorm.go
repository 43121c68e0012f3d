package repository

import (
	"context"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"

	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db *gorm.DB
}

// DI
func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

// ID降順（新しい順）で全件
func (r *SaleGormRepository) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	if err := r.db.WithContext(ctx).Order("id desc").Find(&sales).Error; err != nil {
		return []model.Sale{}, err
	}
	return sales, nil
}

// ID降順で直近limit件
func (r *SaleGormRepository) ListRecent(ctx context.Context, limit int) ([]model.Sale, error) {
	if limit <= 0 {
		return []model.Sale{}, nil
	}

	var sales []model.Sale
	if err := r.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&sales).Error; err != nil {
		return []model.Sale{}, err
	}
	return sales, nil
}

// 売上の作成
func (r *SaleGormRepository) Create(ctx context.Context, s model.Sale) (model.Sale, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Sale{}, err
	}
	return s, nil
}

// 売上合計（0件なら0）
func (r *SaleGormRepository) SumTotal(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// 在庫が足りるときだけ減らす
type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

func (r *InventoryGormRepository) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}
