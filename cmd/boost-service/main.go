package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/LavaJover/shvark-boost-service/internal/config"
	"github.com/LavaJover/shvark-boost-service/internal/delivery/http/handlers"
	publisher "github.com/LavaJover/shvark-boost-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-boost-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-boost-service/internal/usecase"
	ordersvc "github.com/LavaJover/shvark-boost-service/internal/usecase/order"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.BoostDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.BoostDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)

	// Init metrics
	boostMetrics := metrics.NewBoostMetrics()

	// Init repos
	orderRepo := repository.NewDefaultOrderRepository(db)
	boosterRepo := repository.NewDefaultBoosterRepository(db)
	reportRepo := repository.NewDefaultProgressReportRepository(db)

	// Init payment handler
	httpPaymentHandler, err := handlers.NewHTTPPaymentHandler(fmt.Sprintf("%s:%s", cfg.PaymentService.Host, cfg.PaymentService.Port))
	if err != nil {
		log.Fatalf("failed to init payment handler")
	}

	// Init usecases
	orderUsecase := ordersvc.NewDefaultOrderUsecase(orderRepo, boosterRepo, reportRepo, pub, boostMetrics)
	boosterUsecase := usecase.NewDefaultBoosterUsecase(boosterRepo)
	progressUsecase := usecase.NewDefaultProgressUsecase(reportRepo, orderRepo, pub, boostMetrics)
	checkoutUsecase := usecase.NewDefaultCheckoutUsecase(orderUsecase, httpPaymentHandler, boostMetrics)
	checkoutUsecase.PaymentTimeout = time.Duration(cfg.PaymentService.TimeoutSeconds) * time.Second

	// HTTP API
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	boosterHandler := handlers.NewBoosterHandler(boosterUsecase)
	progressHandler := handlers.NewProgressHandler(progressUsecase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUsecase)
	router := handlers.NewRouter(orderHandler, boosterHandler, progressHandler, checkoutHandler)

	// Периодический запуск CancelOverdueOrders
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if err := orderUsecase.CancelOverdueOrders(context.Background()); err != nil {
				log.Printf("Auto-cancel error: %v", err)
			}
		}
	}()

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("starting boost service", "addr", addr, "env", cfg.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func setupLogger(cfg *config.BoostConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
