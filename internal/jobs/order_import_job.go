package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderImportJob manages the scheduled import of open orders from the
// commerce platform. Runs every minute and pulls any orders not yet tracked.
type OrderImportJob struct {
	handler commands.ImportOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderImportJob creates a new job for importing orders.
// Uses ImportOrdersCommandHandler to run one sweep per tick.
func NewOrderImportJob(handler commands.ImportOrdersCommandHandler, logger *slog.Logger) *OrderImportJob {
	return &OrderImportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_import_job"),
	}
}

// Start begins the order import job to run every minute.
func (j *OrderImportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewImportOrdersCommand()

		imported, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order import job failed", "error", err)
			return
		}

		if imported > 0 {
			j.logger.InfoContext(ctx, "Imported new orders", "count", imported)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order import job started (running every minute)")
	return nil
}

// Stop stops the order import job.
func (j *OrderImportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order import job stopped")
}
