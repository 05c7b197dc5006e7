package jobs

import (
	"context"
	"log/slog"
	"time"

	"kitchen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DraftCleanupJob soft-deletes draft carts that were abandoned for longer
// than the configured TTL. Runs hourly; stale carts are not urgent.
type DraftCleanupJob struct {
	handler  commands.RemoveStaleDraftsCommandHandler
	draftTTL time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDraftCleanupJob creates a cleanup job for abandoned carts.
func NewDraftCleanupJob(
	handler commands.RemoveStaleDraftsCommandHandler,
	draftTTL time.Duration,
	logger *slog.Logger,
) *DraftCleanupJob {
	return &DraftCleanupJob{
		handler:  handler,
		draftTTL: draftTTL,
		cron:     cron.New(),
		logger:   logger.With("component", "draft_cleanup_job"),
	}
}

// Start schedules the cleanup to run at the top of every hour.
func (j *DraftCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRemoveStaleDraftsCommand(j.draftTTL)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft cleanup command rejected", "error", err)
			return
		}

		affected, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft cleanup job failed", "error", err)
			return
		}

		if affected > 0 {
			j.logger.InfoContext(ctx, "Stale draft carts removed", "count", affected)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *DraftCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft cleanup job stopped")
}
