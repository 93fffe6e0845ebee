package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliverySyncJob manages the scheduled reconciliation of delivery stops
// against the routing platform. Runs every minute, offset from the import
// sweep so the two never hit their upstreams at the same instant.
type DeliverySyncJob struct {
	handler commands.SyncDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliverySyncJob creates a new job for syncing delivery statuses.
// Uses SyncDeliveriesCommandHandler to run one sweep per tick.
func NewDeliverySyncJob(handler commands.SyncDeliveriesCommandHandler, logger *slog.Logger) *DeliverySyncJob {
	return &DeliverySyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_sync_job"),
	}
}

// Start begins the delivery sync job to run every minute.
func (j *DeliverySyncJob) Start() error {
	_, err := j.cron.AddFunc("30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSyncDeliveriesCommand()

		delivered, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery sync job failed", "error", err)
			return
		}

		if delivered > 0 {
			j.logger.InfoContext(ctx, "Marked orders delivered", "count", delivered)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery sync job started (running every minute)")
	return nil
}

// Stop stops the delivery sync job.
func (j *DeliverySyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery sync job stopped")
}
