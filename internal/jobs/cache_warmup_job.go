package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CacheWarmupJob periodically refreshes the active-orders cache by running
// the active-orders query. On a populated cache the run is a cheap hit; the
// job only does real work when an invalidation or TTL expiry has emptied
// the entry, which keeps the first reader after a write from paying the
// rebuild latency.
type CacheWarmupJob struct {
	handler queries.GetActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCacheWarmupJob creates a job that keeps the active-orders cache warm.
// The interval matches the cache TTL so an untouched entry is rebuilt at
// most once per expiry.
func NewCacheWarmupJob(handler queries.GetActiveOrdersQueryHandler, logger *slog.Logger) *CacheWarmupJob {
	return &CacheWarmupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cache_warmup_job"),
	}
}

// Start begins the cache warmup job to run every 30 seconds.
func (j *CacheWarmupJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetActiveOrdersQuery()

		if _, err := j.handler.Handle(ctx, query); err != nil {
			j.logger.ErrorContext(ctx, "Cache warmup job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cache warmup job started (running every 30 seconds)")
	return nil
}

// Stop stops the cache warmup job.
func (j *CacheWarmupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cache warmup job stopped")
}
