// cmd/recommender/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"takeout-recommender/internal/catalog"
	"takeout-recommender/internal/common/camunda"
	"takeout-recommender/internal/common/config"
	"takeout-recommender/internal/common/database"
	"takeout-recommender/internal/common/genai"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/common/observability"
	"takeout-recommender/internal/matching/imagery"
	"takeout-recommender/internal/server"

	cr "takeout-recommender/internal/workers/recommendation/chat-recommend"
	fr "takeout-recommender/internal/workers/recommendation/filter-restaurants"
)

// retryWithBackoff attempts to execute a function with exponential backoff
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
	bootLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting recommender...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name, nil)
	defer obs.Shutdown()

	ctx := context.Background()
	checks := map[string]server.ReadinessCheck{}

	// --- Catalog ---
	var cat *catalog.Catalog
	err = retryWithBackoff(func() error {
		src, closeSource, err := catalog.NewSource(cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		cat, err = catalog.Load(ctx, src, log)
		return err
	}, 5, 2*time.Second, zapLog, "Catalog load")
	if err != nil {
		zapLog.Fatal("catalog load failed after retries", zap.Error(err))
	}
	checks["catalog"] = func(context.Context) error {
		if cat.Len() == 0 {
			return fmt.Errorf("catalog is empty")
		}
		return nil
	}

	// --- Redis reason cache (optional) ---
	var reasonCache fr.ReasonCache
	rdb, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis client failed", zap.Error(err))
	}
	if rdb != nil {
		err = retryWithBackoff(func() error {
			return rdb.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis ping")
		if err != nil {
			zapLog.Warn("redis unavailable, reason cache disabled", zap.Error(err))
		} else {
			reasonCache = fr.NewRedisReasonCache(rdb.Client, cfg.Recommend.CacheTTL())
			checks["redis"] = rdb.Ping
			zapLog.Info("Redis connected successfully")
		}
		defer rdb.Close()
	}

	// --- AI provider ---
	provider := genai.NewLazyProvider(genai.ConfigFrom(cfg.AI), log)
	if !provider.Available() {
		zapLog.Warn("AI service unavailable, chat will answer with an error and reasons fall back to defaults")
	}

	images := imagery.NewResolver()
	chatHandler := cr.NewHandler(cr.LoadConfig(cfg), cat, provider, images, log)
	filterHandler := fr.NewHandler(fr.LoadConfig(cfg), cat, provider, reasonCache, log)

	// --- Zeebe job workers (optional) ---
	var workers []*camunda.CamundaWorker
	if cfg.Camunda.Enabled {
		var zeebeClient *camunda.Client
		err = retryWithBackoff(func() error {
			var err error
			zeebeClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
			return err
		}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		defer zeebeClient.Close()
		zapLog.Info("Zeebe client connected successfully")
		checks["zeebe"] = zeebeClient.HealthCheck

		workers = append(workers,
			startWorker(zeebeClient, cr.TaskType, cfg, chatHandler, log),
			startWorker(zeebeClient, fr.TaskType, cfg, filterHandler, log),
		)
	}

	// --- HTTP API ---
	srv := server.New(server.Options{
		Config:        cfg,
		Catalog:       cat,
		Chat:          chatHandler,
		Filter:        filterHandler,
		Observability: obs,
		Checks:        checks,
		Logger:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		zapLog.Info("Shutdown signal received, stopping...")
	case err := <-errCh:
		if err != nil {
			zapLog.Error("HTTP server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping HTTP server", zap.Error(err))
	}
	for _, w := range workers {
		if w != nil {
			w.Stop()
		}
	}

	zapLog.Info("Recommender stopped gracefully")
}

func startWorker(client *camunda.Client, taskType string, cfg *config.Config, handler camunda.JobHandler, log logger.Logger) *camunda.CamundaWorker {
	wcfg := config.GetWorkerConfig(cfg, taskType)
	if !wcfg.Enabled {
		log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return nil
	}
	return camunda.NewWorker(client.GetClient(), taskType, wcfg.MaxJobsActive,
		config.GetDuration(wcfg.Timeout), handler, log)
}
