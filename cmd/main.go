package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"roomcraft/internal/config"
	httpapi "roomcraft/internal/http"
	"roomcraft/internal/logger"
	"roomcraft/internal/repository"
	"roomcraft/internal/service"

	_ "roomcraft/docs"
)

// @title Roomcraft API
// @version 1.0
// @description Furniture catalog, pricing and order backend for the room builder.
// @host localhost:9091
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "roomcraft")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	sim := repository.NewSimulator(cfg.Simulator.MinLatency, cfg.Simulator.MaxLatency, cfg.Simulator.ErrorRate, uint64(time.Now().UnixNano()))
	store := repository.NewMemoryStore(repository.WithSimulator(sim))
	if cfg.SeedCatalog {
		store.Seed(repository.DefaultCatalog())
	}
	ordersRepo := repository.NewMemoryOrders(store)
	tx := repository.NewMemoryTx(store)

	catalogSvc := service.NewCatalogService(store, tx, log)
	ordersSvc := service.NewOrderService(store, ordersRepo, tx, log)

	srv := httpapi.NewServer(catalogSvc, ordersSvc, log)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Info("HTTP server listening",
			zap.String("addr", httpServer.Addr),
			zap.Duration("sim_latency_min", cfg.Simulator.MinLatency),
			zap.Duration("sim_latency_max", cfg.Simulator.MaxLatency),
			zap.Float64("sim_error_rate", cfg.Simulator.ErrorRate),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}
