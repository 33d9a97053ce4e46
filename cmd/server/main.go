package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openletters/community/internal/auth"
	"github.com/openletters/community/internal/config"
	"github.com/openletters/community/internal/content"
	"github.com/openletters/community/internal/localstore"
	"github.com/openletters/community/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logCfg := zap.NewProductionConfig()
	if cfg.Debug {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store := localstore.Open(cfg.DataDir, logger)

	authSvc := auth.NewService(auth.Config{
		PrimaryAdminEmail:    cfg.PrimaryAdminEmail,
		PrimaryAdminPassword: cfg.PrimaryAdminPassword,
		SignInDelay:          cfg.SignInDelay,
	}, store, logger)

	registry := content.NewRegistry(store)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(authSvc, registry, logger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
