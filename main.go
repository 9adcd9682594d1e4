// File: nestly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nestly/config"
	"nestly/cron"
	"nestly/database"
	cartRepo "nestly/database/repository/cart"
	orderRepo "nestly/database/repository/order"
	"nestly/handlers"
	"nestly/middleware"
	"nestly/routes"
	"nestly/services/booking"
	"nestly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	carts := cartRepo.NewMongoCartRepo()
	orders := orderRepo.NewMongoOrderRepo()

	// background confirmation dispatch.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer taskClient.Close()
	cron.InitConfirmationWorker()

	// services.
	bookingService := &booking.DefaultBookingSessionService{
		Cache:      utils.GetSessionCacheClient(),
		CartRepo:   carts,
		OrderRepo:  orders,
		Providers:  &booking.StaticProviderDirectory{},
		TaskClient: taskClient,
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		CartMax:    config.AppConfig.CartMaxItems,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler)

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
