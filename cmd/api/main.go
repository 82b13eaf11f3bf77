package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-clinic/internal/audit"
	"github.com/BruksfildServices01/vet-clinic/internal/config"
	dbpkg "github.com/BruksfildServices01/vet-clinic/internal/db"
	"github.com/BruksfildServices01/vet-clinic/internal/logger"
	"github.com/BruksfildServices01/vet-clinic/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	db, err := dbpkg.Open(cfg)
	if err != nil {
		log.Error("database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := dbpkg.Migrate(db); err != nil {
		log.Error("database", slog.Any("error", err))
		os.Exit(1)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log, cfg.AuditQueueSize)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, auditDispatcher, log)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("server running", slog.String("addr", cfg.Addr()), slog.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", slog.Any("error", err))
	}
	if err := auditDispatcher.Close(ctx); err != nil {
		log.Warn("audit queue not drained", slog.Any("error", err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("server stopped")
}
