// Package jobs provides scheduled background tasks for the resource sharing
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatusReportJob - Runs every minute and logs the per-status resource
// counts, giving operators a heartbeat view of the donation pipeline without
// querying the database by hand.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statusSummaryHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job is read-only; its failures are logged and the next tick
// retries from scratch.
package jobs
