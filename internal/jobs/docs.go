// Package jobs provides scheduled background tasks for the API server.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SettingsReloadJob - re-reads a dotenv settings file into the shared
// settings store on a schedule, so edits to the file reach a running server
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(logger, jobs.NewSettingsReloadJob(provider, path, "@every 30s", logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed reload is logged and the store keeps its previous values; the
// next tick tries again. Failed job starts stop any already running jobs.
package jobs
