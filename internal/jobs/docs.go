// Package jobs provides scheduled background tasks for the kitchen system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping required for the ordering service.
//
// # Available Jobs
//
// 1. DraftCleanupJob - Runs hourly to soft-delete abandoned draft carts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(removeStaleDraftsHandler, draftTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next tick; the job never
// takes the process down.
package jobs
