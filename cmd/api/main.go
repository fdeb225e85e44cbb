package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/estetica-agenda/internal/db"
	"github.com/BruksfildServices01/estetica-agenda/internal/enrichment"
	"github.com/BruksfildServices01/estetica-agenda/internal/logger"
	"github.com/BruksfildServices01/estetica-agenda/internal/metrics"
	"github.com/BruksfildServices01/estetica-agenda/internal/routes"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
)

func main() {

	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "estetica-agenda")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := dbpkg.OpenSlotStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open slot store", zap.Error(err))
	}
	defer func() {
		if err := kv.Close(); err != nil {
			zl.Error("failed to close slot store", zap.Error(err))
		}
	}()

	m := metrics.New()
	alerts := alert.NewCenter(zl, 50)
	store := storage.New(kv, zl, alerts, m)

	auditLog := audit.New(store)
	auditDispatcher := audit.NewDispatcher(auditLog, zl)
	defer auditDispatcher.Close()

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Infra{
		Logger:   zl,
		Store:    store,
		Alerts:   alerts,
		Metrics:  m,
		Gateway:  enrichment.New(cfg, zl, m),
		AuditLog: auditLog,
		Audit:    auditDispatcher,
	}, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.Bool("auth", cfg.AuthEnabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("failed to start server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
	zl.Info("server stopped")
}
