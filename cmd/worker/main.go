package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abrahub/backend/internal/adplatform"
	"github.com/abrahub/backend/internal/config"
	"github.com/abrahub/backend/internal/db"
	"github.com/abrahub/backend/internal/events"
	"github.com/abrahub/backend/internal/models"
	"github.com/abrahub/backend/internal/repositories"
	"github.com/abrahub/backend/internal/services"
	"go.uber.org/zap"
)

// The worker runs the optimizer on a schedule, covering the gap between
// dashboard-triggered runs. Disabled unless WORKER_RUN_INTERVAL_MINUTES > 0.
func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	if cfg.WorkerRunInterval <= 0 {
		log.Info("scheduled runs disabled, set WORKER_RUN_INTERVAL_MINUTES to enable")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	campaignRepo := repositories.NewCampaignRepo(pool)
	configRepo := repositories.NewConfigRepo(pool)
	pendingRepo := repositories.NewPendingActionRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	publisher := events.NewRedisPublisher(rdb, log)

	platforms := map[string]adplatform.Client{
		models.PlatformMeta:   adplatform.NewMetaClient(cfg.MetaBaseURL, cfg.MetaAPIVersion, cfg.MetaAccessToken, log),
		models.PlatformGoogle: adplatform.NewGoogleClient(cfg.GoogleBaseURL, cfg.GoogleAPIVersion, cfg.GoogleDeveloperToken, cfg.GoogleAccessToken, cfg.GoogleCustomerID, log),
	}

	executor := services.NewActionExecutor(platforms, campaignRepo, log)
	optimizerService := services.NewOptimizerService(campaignRepo, configRepo, pendingRepo, auditRepo, executor, publisher, cfg, log)

	log.Info("worker started", zap.Duration("interval", cfg.WorkerRunInterval))

	ticker := time.NewTicker(cfg.WorkerRunInterval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			runOnce(ctx, optimizerService, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		}
	}
}

func runOnce(ctx context.Context, svc *services.OptimizerService, log *zap.Logger) {
	result, err := svc.Run(ctx, services.PlatformAll)
	if err != nil {
		log.Error("scheduled optimizer run failed", zap.Error(err))
		return
	}
	log.Info("scheduled optimizer run completed",
		zap.Int("evaluated", result.Evaluated),
		zap.Int("paused", result.Paused),
		zap.Int("boosted", result.Boosted),
		zap.Int("pending", result.PendingApproval),
		zap.Int("errors", len(result.Errors)))
}
