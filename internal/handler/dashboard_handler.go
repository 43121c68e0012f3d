package handler

import (
	"net/http"

	"github.com/Kechnaouimoulaych/magasinapk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /dashboard のAPI（集計ビュー）
type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

// DI
func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/dashboard", h.stats)
}

func (h *DashboardHandler) stats(c echo.Context) error {
	out, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
