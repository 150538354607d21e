package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/quantgrad/greeks-engine/config"
	"github.com/quantgrad/greeks-engine/pkg/api"
	"github.com/quantgrad/greeks-engine/pkg/metrics"
	"github.com/quantgrad/greeks-engine/pkg/utils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger("api.main").Fatalf("failed to load configuration: %v", err)
	}

	logger.Init(cfg.App.LogLevel, cfg.App.Environment)
	log := logger.GetLogger("api.main")
	log.Infof("starting %s API service", cfg.App.Name)

	recorder := metrics.NewRecorder()

	handlers := api.CreateHandlers(api.HandlerConfig{
		DefaultStrike: cfg.Pricing.Strike,
		TaylorStep:    cfg.Taylor.Step,
		TaylorOrder:   cfg.Taylor.Order,
	}, recorder)

	server := api.NewServer(api.Config{
		Host:         cfg.API.Host,
		Port:         cfg.API.Port,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
		Environment:  cfg.App.Environment,
		RateLimit:    cfg.API.RateLimit,
		RateBurst:    cfg.API.RateBurst,
	}, handlers, recorder)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.API.Host, cfg.Metrics.Port),
			Handler: promhttp.Handler(),
		}
		g.Go(func() error {
			log.Infof("serving prometheus metrics on port %d", cfg.Metrics.Port)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
		defer cancel()

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Errorf("metrics server shutdown error: %v", err)
			}
		}
		return server.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("service error: %v", err)
	}
	log.Info("shutdown complete")
}
