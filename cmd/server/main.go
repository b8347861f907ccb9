package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/monolito/ecommerce-go/internal/handlers"
	"github.com/monolito/ecommerce-go/internal/logging"
	"github.com/monolito/ecommerce-go/internal/metrics"
	"github.com/monolito/ecommerce-go/internal/service"
	"github.com/monolito/ecommerce-go/internal/store"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// In-memory stores; everything lives and dies with the process.
	users := store.NewUserDirectory()
	inventory := store.NewInventoryStore()
	carts := store.NewCartStore()
	ledger := store.NewOrderLedger()

	orderMetrics := metrics.NewOrderMetrics(prometheus.DefaultRegisterer)

	cartService := service.NewCartService(users, inventory, carts, logger)
	orderService := service.NewOrderService(users, carts, inventory, ledger, logger, orderMetrics)

	userHandler := handlers.NewUserHandler(users)
	productHandler := handlers.NewProductHandler(inventory)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestLogger(logger))

	handlers.Register(router, userHandler, productHandler, cartHandler, orderHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("server starting", zap.String("addr", *addr))
	if err := router.Run(*addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
