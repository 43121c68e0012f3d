package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kechnaouimoulaych/magasinapk/internal/config"
	"github.com/Kechnaouimoulaych/magasinapk/internal/domain/model"
	"github.com/Kechnaouimoulaych/magasinapk/internal/handler"
	"github.com/Kechnaouimoulaych/magasinapk/internal/infra/db"
	infraRepo "github.com/Kechnaouimoulaych/magasinapk/internal/infra/repository"
	"github.com/Kechnaouimoulaych/magasinapk/internal/server"
	"github.com/Kechnaouimoulaych/magasinapk/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("failed to init logger:", err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to connect db", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Sale{},
	); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	saleRepo := infraRepo.NewSaleGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	saleUC := usecase.NewSaleUsecase(txManager)
	dashboardUC := usecase.NewDashboardUsecase(productRepo, customerRepo, saleRepo)

	//商品が空ならサンプルデータを投入
	if cfg.SeedSampleData {
		if err := seedSampleData(context.Background(), productRepo, customerRepo, saleUC); err != nil {
			logger.Fatal("failed to seed sample data", zap.Error(err))
		}
	}

	//Handler生成
	srv := server.New(logger, server.Handlers{
		Product:   handler.NewProductHandler(productUC),
		Customer:  handler.NewCustomerHandler(customerUC),
		Sale:      handler.NewSaleHandler(saleUC),
		Dashboard: handler.NewDashboardHandler(dashboardUC),
	})

	//Server起動
	addr := ":" + cfg.Port
	go func() {
		logger.Info("starting server", zap.String("addr", addr), zap.String("db", cfg.DBPath))
		if err := srv.Start(addr); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	//SIGINT/SIGTERMで停止
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
