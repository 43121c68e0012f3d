package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
	repo "github.com/Kechnaouimoulaych/magasinapk/internal/repository"
)

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
}

// DI
func NewCustomerUsecase(customerRepo repo.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo}
}

type CustomerListOutput struct {
	Items []model.Customer `json:"items"`
	Total int              `json:"total"`
}

func (u *CustomerUsecase) ListCustomers(ctx context.Context) (CustomerListOutput, error) {
	customers, err := u.customerRepo.List(ctx)
	if err != nil {
		return CustomerListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CustomerListOutput{
		Items: customers,
		Total: len(customers),
	}, nil
}

type CustomerInput struct {
	Name     string
	Email    string
	Phone    string
	BabyName string
	BabyAge  string
}

// 累計購入額は入力に関係なく0で作成する
func (u *CustomerUsecase) CreateCustomer(ctx context.Context, in CustomerInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}

	c, err := u.customerRepo.Create(ctx, model.Customer{
		Name:           strings.TrimSpace(in.Name),
		Email:          in.Email,
		Phone:          in.Phone,
		BabyName:       in.BabyName,
		BabyAge:        in.BabyAge,
		TotalPurchases: 0,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c.ID, nil
}
