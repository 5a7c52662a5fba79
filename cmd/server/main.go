package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/api"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/app"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/cache"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/config"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/monitor"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/service"
	"github.com/andresuchdata/supplychain-ai/backend-go/pkg/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	if cfg.Server.LogFormat == "json" {
		logger.UseJSON(os.Stdout)
	}
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	locations, err := app.LoadNetwork(ctx, cfg)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load network seed")
	}

	core, err := app.NewCore(cfg, locations)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to build inventory store")
	}

	networkCache, err := cache.NewNetworkCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Redis unavailable, serving without cache")
		networkCache = cache.NewNoopNetworkCache()
	}

	rebalance := service.NewRebalanceService(core.Store, core.Engine, core.Executor, networkCache, service.Options{
		SettleDelay:   cfg.Engine.SettleDelay,
		AnalysisDelay: cfg.Engine.AnalysisDelay,
		UnitValue:     cfg.Engine.UnitValue,
	})
	healthMonitor := monitor.New(time.Now().UnixNano(), time.Now())

	if _, err := rebalance.Analyze(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("Initial analysis failed")
	}

	router := api.NewRouter(&api.Services{
		Rebalance: rebalance,
		Monitor:   healthMonitor,
	}, api.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info().Str("port", cfg.Server.Port).Int("locations", len(locations)).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return rebalance.RunScheduler(gctx, cfg.Engine.RefreshInterval)
	})

	g.Go(func() error {
		return healthMonitor.Run(gctx, cfg.Engine.MonitorTickInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error().Err(err).Msg("Server stopped with error")
	}

	rebalance.Wait()
	logger.Log.Info().Msg("Server exiting")
}
