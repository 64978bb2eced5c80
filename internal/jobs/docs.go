// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. DispatchBacklogJob - Runs every 30 seconds to compare waiting orders with available drivers
// 2. StalePresenceJob - Runs every minute to flag drivers off shift after a missed heartbeat window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required repositories
//	jobManager := jobs.NewJobManager(orderRepo, presenceRepo, 10*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and keep running; a transient database error never stops the schedule
// - Failed job starts will stop any already running jobs
package jobs
