// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps the warehouse depends on.
//
// # Available Jobs
//
// 1. OrderImportJob - Runs every minute to pull open orders from the commerce platform
// 2. DeliverySyncJob - Runs every minute to reconcile delivery stops with the routing platform
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(importOrdersHandler, syncDeliveriesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs run once per minute. The delivery sync fires at second 30 of each
// minute so the two sweeps never hit their upstreams at the same instant.
//
// # Error Handling
//
// - Both jobs log sweep failures and wait for the next tick; a failed sweep is retried, not aborted
// - Failed job starts will stop any already running jobs
package jobs
