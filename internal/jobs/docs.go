// Package jobs provides scheduled background tasks for the retail service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// (six field expressions, seconds first).
//
// # Available Jobs
//
// 1. LowStockJob - scans the ledger for items at or below the threshold, sets
// the retailops_low_stock_items gauge and logs a warning per item
// 2. StockCacheWarmJob - copies ledger quantities into the stock cache; only
// scheduled when the cache is enabled
//
// # Usage
//
//	jobManager := jobs.NewJobManager(lowStockJob, warmJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Failed job starts stop
// any already running jobs.
package jobs
