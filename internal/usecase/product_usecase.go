package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
	repo "github.com/Kechnaouimoulaych/magasinapk/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 在庫一覧の行ハイライト用しきい値。ダッシュボード（5）とは別の値で使い分ける。
const InventoryLowStockThreshold int64 = 2

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	// trueなら在庫ありのみ（売上登録フォーム向け）
	InStockOnly bool
}

type ProductItemOutput struct {
	model.Product
	LowStock bool `json:"low_stock"`
}

type ProductListOutput struct {
	Items []ProductItemOutput `json:"items"`
	Total int                 `json:"total"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	products, err := u.productRepo.List(ctx, repo.ProductListQuery{InStockOnly: in.InStockOnly})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]ProductItemOutput, 0, len(products))
	for _, p := range products {
		items = append(items, ProductItemOutput{
			Product:  p,
			LowStock: p.Stock <= InventoryLowStockThreshold,
		})
	}

	return ProductListOutput{
		Items: items,
		Total: len(items),
	}, nil
}

// 入力フォーム用の選択肢
type ProductMetaOutput struct {
	Categories []string          `json:"categories"`
	AgeRanges  []string          `json:"age_ranges"`
	Conditions []model.Condition `json:"conditions"`
}

func (u *ProductUsecase) GetProductMeta() ProductMetaOutput {
	return ProductMetaOutput{
		Categories: model.Categories,
		AgeRanges:  model.AgeRanges,
		Conditions: []model.Condition{model.ConditionNew, model.ConditionGentlyUsed},
	}
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type ProductInput struct {
	Name      string
	Category  string
	Price     float64
	Stock     int64
	Supplier  string
	Size      string
	AgeRange  string
	Color     string
	Material  string
	Condition string
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	cond, err := normalizeCondition(in.Condition)
	if err != nil {
		return 0, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:      strings.TrimSpace(in.Name),
		Category:  in.Category,
		Price:     in.Price,
		Stock:     in.Stock,
		Supplier:  in.Supplier,
		Size:      in.Size,
		AgeRange:  in.AgeRange,
		Color:     in.Color,
		Material:  in.Material,
		Condition: cond,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p.ID, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in ProductInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	cond, err := normalizeCondition(in.Condition)
	if err != nil {
		return err
	}

	err = u.productRepo.Update(ctx, model.Product{
		ID:        productID,
		Name:      strings.TrimSpace(in.Name),
		Category:  in.Category,
		Price:     in.Price,
		Stock:     in.Stock,
		Supplier:  in.Supplier,
		Size:      in.Size,
		AgeRange:  in.AgeRange,
		Color:     in.Color,
		Material:  in.Material,
		Condition: cond,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 過去の売上レコードは残る（スナップショット名で参照）
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 未指定ならNew。指定時は既定の2値のみ許可。
func normalizeCondition(s string) (model.Condition, error) {
	switch model.Condition(strings.TrimSpace(s)) {
	case "":
		return model.ConditionNew, nil
	case model.ConditionNew:
		return model.ConditionNew, nil
	case model.ConditionGentlyUsed:
		return model.ConditionGentlyUsed, nil
	default:
		return "", NewHTTPError(http.StatusBadRequest, "invalid condition")
	}
}
