package server

import (
	"context"
	"net/http"

	"github.com/Kechnaouimoulaych/magasinapk/internal/handler"
	appmw "github.com/Kechnaouimoulaych/magasinapk/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// 全ハンドラをまとめる
type Handlers struct {
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Sale      *handler.SaleHandler
	Dashboard *handler.DashboardHandler
}

type Server struct {
	e *echo.Echo
}

func New(logger *zap.Logger, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(appmw.RequestLogger(logger))

	RegisterRoutes(e, h)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	err := s.e.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
