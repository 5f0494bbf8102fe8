package jobs

import (
	"context"
	"log/slog"

	"creational/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SettingsReloadJob merges a dotenv settings file into the shared store on
// a cron schedule.
type SettingsReloadJob struct {
	provider ports.SettingsProvider
	path     string
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSettingsReloadJob creates a job reloading path on schedule. The schedule
// uses the standard cron syntax with optional seconds, or descriptors such
// as "@every 30s".
func NewSettingsReloadJob(
	provider ports.SettingsProvider,
	path string,
	schedule string,
	logger *slog.Logger,
) *SettingsReloadJob {
	return &SettingsReloadJob{
		provider: provider,
		path:     path,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		logger:   logger.With("component", "settings_reload_job"),
	}
}

// Name identifies the job in logs and errors.
func (j *SettingsReloadJob) Name() string {
	return "settings reload"
}

// Start loads the file once and then schedules periodic reloads.
func (j *SettingsReloadJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Reload); err != nil {
		return err
	}

	j.Reload()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settings reload job started",
		"path", j.path, "schedule", j.schedule)
	return nil
}

// Reload merges the file into the store once.
func (j *SettingsReloadJob) Reload() {
	ctx := context.Background()

	n, err := j.provider.Store().LoadFile(j.path)
	if err != nil {
		j.logger.ErrorContext(ctx, "Settings reload failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Settings reloaded", "path", j.path, "keys", n)
}

// Stop stops the scheduler and waits for a running reload to finish.
func (j *SettingsReloadJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Settings reload job stopped")
}
