// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. CacheWarmupJob - Runs every 30 seconds to keep the active-orders cache populated
//
// # Usage
//
//	job := jobs.NewCacheWarmupJob(getActiveOrdersHandler, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start cache warmup job:", err)
//	}
//	defer job.Stop()
//
// # Scheduling
//
// The warmup interval matches the cache TTL, so an entry that readers have
// let expire is rebuilt at most once per expiry window. When the cache is
// already populated a run is a plain cache hit and touches no storage.
//
// # Error Handling
//
// Warmup failures are logged and skipped; the next run retries. The cache
// remains correct either way because readers rebuild it on demand.
package jobs
