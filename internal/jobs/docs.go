// Package jobs provides scheduled background tasks for the freight system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipment pipeline.
//
// # Available Jobs
//
// 1. DriverAssignmentJob - Runs every five seconds to dispatch warehouse shipments to available drivers
// 2. WarehouseReconciliationJob - Runs every minute to realign warehouse load counters with shipment rows
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignDriverHandler, recalculateLoadsHandler, logger)
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
// The assignment job uses the cron expression "*/5 * * * * *" to keep dispatch
// latency low without hammering the database. The reconciliation job uses
// "0 * * * * *" since load drift is rare and the recount locks warehouse rows.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no shipments, no drivers)
// - Reconciliation job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
