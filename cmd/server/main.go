package main

import (
	"database/sql"
	"net/http"

	"threadline-be/internal/cart"
	"threadline-be/internal/catalog"
	"threadline-be/internal/config"
	"threadline-be/internal/db"
	"threadline-be/internal/logger"
	"threadline-be/internal/metrics"
	"threadline-be/internal/middleware"
	"threadline-be/internal/order"
	"threadline-be/internal/product"
	"threadline-be/internal/rest"

	"go.uber.org/zap"
)

// Swappable for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

// newServer wires the domain services into the HTTP stack.
func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	catalogClient := catalog.NewClient(cfg.CommerceAPIURL, cfg.CommerceToken)
	catalogRepo := catalog.NewRepository(database)
	syncStats := &metrics.SyncMetrics{}
	catalogSvc := catalog.NewService(catalogClient, catalogRepo, syncStats)

	var orderClient order.Client
	if cfg.AdminToken != "" {
		orderClient = order.NewClient(cfg.AdminAPIURL, cfg.AdminToken)
	}
	orderSvc := order.NewService(orderClient)

	mux := http.NewServeMux()
	rest.NewHandler(cartSvc, productSvc, catalogSvc, orderSvc).RegisterRoutes(mux)

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.AuthMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	return handler
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	handler := newServer(cfg, database)

	logger.L().Info("server listening",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)

	return startServerFunc(":"+cfg.AppPort, handler)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
