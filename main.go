package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wm-genai-governance/config"
	"wm-genai-governance/internal/api"
	"wm-genai-governance/internal/database"
	"wm-genai-governance/internal/fixtures"
	"wm-genai-governance/internal/metrics"
	"wm-genai-governance/internal/services"
	"wm-genai-governance/pkg/logger"

	"go.uber.org/zap"
)

const sweepInterval = time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Log

	set, err := fixtures.Load()
	if err != nil {
		log.Fatal("invalid fixtures", zap.Error(err))
	}

	db, err := database.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := database.Reset(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	if err := fixtures.Seed(db, set); err != nil {
		log.Fatal("failed to seed fixtures", zap.Error(err))
	}
	log.Info("registry loaded",
		zap.Int("models", len(set.Models)),
		zap.Int("evaluations", len(set.Evaluations)),
		zap.Int("demos", len(set.Demos)),
	)

	if cfg.RedisEnabled() {
		if err := database.ConnectRedis(context.Background(), cfg); err != nil {
			log.Warn("redis unavailable, summary cache disabled", zap.Error(err))
		} else {
			defer database.CloseRedis()
		}
	}
	services.SummaryCacheDuration = cfg.SummaryCacheTTL
	services.RecertWindowDays = cfg.RecertWindowDays

	metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services.DemoSessions = services.NewDemoSessionManager(
		set.Demos,
		services.NewHTTPDemoInvoker(cfg.DemoBackendURL, cfg.DemoBackendTimeout),
		cfg.DemoSessionIdleTTL,
	)
	go services.DemoSessions.Start(ctx, sweepInterval)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: api.NewRouter(cfg),
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("demo_backend", cfg.DemoBackendURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server exited")
}
