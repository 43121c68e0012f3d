package handler

import (
	"net/http"

	"github.com/Kechnaouimoulaych/magasinapk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SaleRequest は売上記録の入力です。dateは空なら当日。
type SaleRequest struct {
	Date       string `json:"date"`
	CustomerID int64  `json:"customer_id"`
	ProductID  int64  `json:"product_id"`
	Quantity   int64  `json:"quantity"`
}

// /sales のAPI
type SaleHandler struct {
	uc *usecase.SaleUsecase
}

// DI
func NewSaleHandler(uc *usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

func (h *SaleHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sales", h.list)
	e.POST("/sales", h.record)
}

func (h *SaleHandler) list(c echo.Context) error {
	out, err := h.uc.ListSales(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *SaleHandler) record(c echo.Context) error {
	var req SaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.RecordSale(c.Request().Context(), usecase.RecordSaleInput{
		Date:       req.Date,
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
