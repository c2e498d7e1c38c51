// File: homigo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homigo/config"
	"homigo/database"
	addressRepo "homigo/database/repository/address"
	couponRepo "homigo/database/repository/coupon"
	planRepo "homigo/database/repository/plan"
	"homigo/handlers"
	"homigo/middleware"
	"homigo/routes"
	"homigo/services/address"
	"homigo/services/cart"
	"homigo/services/coupon"
	"homigo/services/plan"
	"homigo/services/pricing"
	"homigo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitCatalogCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	plansRepo := planRepo.NewMongoPlanRepo()
	couponsRepo := couponRepo.NewMongoCouponRepo()
	addressesRepo := addressRepo.NewMongoAddressRepo()

	// pricing gateway and the per-session cart store registry. Selections are
	// persisted in the cache Redis DB so sessions survive process restarts.
	gateway := pricing.NewDefaultPricingGateway(config.AppConfig.PricingEngineURL, logger)
	cartManager := cart.NewManager(gateway, logger, config.CartSessionTTL(), config.PricingTimeout())
	cartManager.Selections = cart.NewRedisSelectionStore(utils.GetCacheClient())

	// services.
	planService := &plan.DefaultPlanService{
		Repo:     plansRepo,
		Cache:    utils.GetCatalogCacheClient(),
		CacheTTL: config.PlanCacheTTL(),
		Logger:   logger,
	}
	couponService := &coupon.DefaultCouponService{
		Repo:   couponsRepo,
		Logger: logger,
	}
	addressService := &address.DefaultAddressService{
		Repo:   addressesRepo,
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Cart:      handlers.NewCartHandler(cartManager, logger),
		Plans:     handlers.NewPlanHandler(planService, logger),
		Coupons:   handlers.NewCouponHandler(couponService, logger),
		Addresses: handlers.NewAddressHandler(addressService, cartManager, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
