package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"stocktrail/internal/caching"
	"stocktrail/internal/config"
	"stocktrail/internal/handlers"
	"stocktrail/internal/repositories"
	"stocktrail/internal/services"
	"stocktrail/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.App)

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Repositories
	companyRepo := repositories.NewCompanyRepo(pool)
	categoryRepo := repositories.NewCategoryRepo(pool)
	employeeRepo := repositories.NewEmployeeRepo(pool)
	itemRepo := repositories.NewItemRepo(pool)
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	warehouseItemsRepo := repositories.NewWarehouseItemsRepo(pool)
	historyRepo := repositories.NewInventoryHistoryRepo(pool)

	// Services
	companySvc := services.NewCompanyService(companyRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	employeeSvc := services.NewEmployeeService(employeeRepo, warehouseRepo)
	itemSvc := services.NewItemService(itemRepo, categoryRepo, companyRepo, warehouseItemsRepo, historyRepo)
	warehouseSvc := services.NewWarehouseService(warehouseRepo, warehouseItemsRepo, employeeRepo, cacheSvc)
	warehouseItemsSvc := services.NewWarehouseItemsService(pool, warehouseItemsRepo, warehouseRepo, itemRepo, cacheSvc)
	historySvc := services.NewInventoryHistoryService(pool, historyRepo, warehouseItemsSvc)

	// Handlers
	companyHandlers := handlers.NewCompanyHandlers(companySvc)
	categoryHandlers := handlers.NewCategoryHandlers(categorySvc)
	employeeHandlers := handlers.NewEmployeeHandlers(employeeSvc)
	itemHandlers := handlers.NewItemHandlers(itemSvc)
	warehouseHandlers := handlers.NewWarehouseHandlers(warehouseSvc, historySvc)
	warehouseItemsHandlers := handlers.NewWarehouseItemsHandlers(warehouseItemsSvc)
	historyHandlers := handlers.NewInventoryHistoryHandlers(historySvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.Ready)

	v1 := e.Group("/v1")

	v1.GET("/companies", companyHandlers.List)
	v1.POST("/companies", companyHandlers.Create)
	v1.GET("/companies/:id", companyHandlers.GetByID)
	v1.PUT("/companies/:id", companyHandlers.Update)
	v1.DELETE("/companies/:id", companyHandlers.Delete)

	v1.GET("/categories", categoryHandlers.List)
	v1.POST("/categories", categoryHandlers.Create)
	v1.GET("/categories/:id", categoryHandlers.GetByID)
	v1.PUT("/categories/:id", categoryHandlers.Update)
	v1.DELETE("/categories/:id", categoryHandlers.Delete)

	v1.GET("/employees", employeeHandlers.List)
	v1.POST("/employees", employeeHandlers.Create)
	v1.GET("/employees/:id", employeeHandlers.GetByID)
	v1.PUT("/employees/:id", employeeHandlers.Update)
	v1.DELETE("/employees/:id", employeeHandlers.Delete)

	v1.GET("/items", itemHandlers.List)
	v1.POST("/items", itemHandlers.Create)
	v1.GET("/items/sku/:sku", itemHandlers.GetBySKU)
	v1.GET("/items/:id", itemHandlers.GetByID)
	v1.PUT("/items/:id", itemHandlers.Update)
	v1.DELETE("/items/:id", itemHandlers.Delete)

	v1.GET("/warehouses", warehouseHandlers.List)
	v1.POST("/warehouses", warehouseHandlers.Create)
	v1.GET("/warehouses/capacities", warehouseHandlers.GetAllCapacities)
	v1.GET("/warehouses/:id", warehouseHandlers.GetByID)
	v1.PUT("/warehouses/:id", warehouseHandlers.Update)
	v1.DELETE("/warehouses/:id", warehouseHandlers.Delete)
	v1.GET("/warehouses/:id/capacity", warehouseHandlers.GetCapacity)
	v1.GET("/warehouses/:id/history", warehouseHandlers.GetHistory)

	v1.GET("/warehouse-items", warehouseItemsHandlers.List)
	v1.GET("/warehouse-items/search", warehouseItemsHandlers.Search)
	v1.GET("/warehouse-items/:warehouse_id/:item_id", warehouseItemsHandlers.Get)

	v1.GET("/inventory-history", historyHandlers.List)
	v1.POST("/inventory-history", historyHandlers.Create)
	v1.GET("/inventory-history/recent", historyHandlers.Recent)
	v1.GET("/inventory-history/:id", historyHandlers.GetByID)
	v1.PUT("/inventory-history/:id", historyHandlers.Update)
	v1.DELETE("/inventory-history/:id", historyHandlers.Delete)

	go func() {
		if err := e.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.GracefulTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

func setupLogger(app config.AppConfig) {
	opts := &slog.HandlerOptions{Level: app.SlogLevel()}

	var handler slog.Handler
	if app.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler).With("app", app.Name, "env", app.Environment))
}
