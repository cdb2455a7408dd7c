// Package jobs provides scheduled background tasks for the delivery engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the order lifecycle needs.
//
// # Available Jobs
//
// 1. AutoAssignmentJob - Periodically assigns the oldest unassigned special order to the least loaded available courier
// 2. AutoConfirmJob - Periodically completes delivered orders whose confirmation window lapsed without a manual confirmation or dispute
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(autoAssignHandler, autoConfirmHandler, schedules, logger)
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
// Schedules are cron expressions with a seconds field. The defaults run the
// assignment pass every 15 seconds and the confirmation sweep every five
// minutes; both can be overridden through JobSchedules.
//
// # Error Handling
//
// - The assignment job ignores expected business errors (no pending special orders, no free couriers)
// - The confirmation sweep logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
