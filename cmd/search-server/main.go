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

	"bookcafe-search/internal/common/config"
	"bookcafe-search/internal/common/database"
	"bookcafe-search/internal/common/logger"
	"bookcafe-search/internal/common/observability"

	bookstoreapi "bookcafe-search/internal/server/bookstore-api"
	searchhandler "bookcafe-search/internal/server/search-handler"
)

func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting search server...",
		zap.String("address", cfg.Server.Address),
		zap.String("source", cfg.BookstoreAPI.Source),
	)

	obs := observability.New("search-server")
	defer obs.Shutdown()

	var source searchhandler.Source
	switch cfg.BookstoreAPI.Source {
	case config.SourceLive:
		source = bookstoreapi.NewLiveSource(
			bookstoreapi.FromAppConfig(cfg.BookstoreAPI),
			obs,
			logger.ForComponent(log, "bookstore-api"),
		)
	default:
		sample, err := bookstoreapi.NewSampleSource(cfg.BookstoreAPI.NumOfRows)
		if err != nil {
			zapLog.Fatal("sample source failed", zap.Error(err))
		}
		source = sample
		zapLog.Warn("No CULTURE_API_KEY configured, serving sample data")
	}

	var (
		cache *database.RedisClient
		ready searchhandler.ReadinessCheck
	)
	if cfg.Redis.Address != "" {
		cache = database.NewRedis(cfg.Redis)
		err = retryWithBackoff(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			return cache.Ping(ctx)
		}, 5, time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer cache.Close()
		ready = cache.Ping
		zapLog.Info("Redis connected successfully")
	}

	handler := searchhandler.NewHandler(
		searchhandler.FromAppConfig(cfg),
		source,
		detailCache(cache),
		logger.ForComponent(log, "search-handler"),
	)
	router := searchhandler.NewRouter(handler, ready, logger.ForComponent(log, "http"))

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()
	zapLog.Info("Search server listening", zap.String("address", cfg.Server.Address))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Search server stopped")
}

// detailCache avoids handing a typed nil to the handler's interface.
func detailCache(c *database.RedisClient) searchhandler.DetailCache {
	if c == nil {
		return nil
	}
	return c
}
