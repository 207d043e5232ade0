package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"attesta/internal/credential/metrics"
	"attesta/internal/credential/service"
	"attesta/internal/credential/tracer"
	"attesta/internal/kyc"
	"attesta/internal/platform/config"
	"attesta/internal/platform/httpserver"
	"attesta/internal/platform/logger"
	"attesta/internal/platform/middleware"
	"attesta/internal/registry"
	httptransport "attesta/internal/transport/http"
	"attesta/pkg/platform/middleware/requesttime"
)

const adminTokenTTL = 30 * time.Minute

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing attesta",
		"addr", cfg.Addr,
		"status_registry_url", cfg.StatusRegistryURL,
		"batch_concurrency", cfg.BatchConcurrency,
	)

	issuers := registry.NewInMemoryStore()
	customers := kyc.NewInMemoryStore()
	if err := kyc.Seed(context.Background(), customers); err != nil {
		log.Error("seeding kyc records failed", "error", err)
		os.Exit(1)
	}

	svc := service.New(issuers, customers,
		service.Config{
			StatusRegistryURL: cfg.StatusRegistryURL,
			DefaultExpiryDays: cfg.DefaultExpiryDays,
			BatchConcurrency:  cfg.BatchConcurrency,
		},
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithTracer(tracer.NewOTel()),
	)

	tokens := middleware.NewTokenIssuer(cfg.JWTSigningKey, adminTokenTTL)
	handler := httptransport.NewHandler(svc, issuers, customers, tokens, cfg.AdminTokenHash, log)
	router := requesttime.Middleware(httptransport.NewRouter(handler, log))

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
