package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WarehouseReconciliationJob manages the scheduled recount of warehouse loads.
// Runs every minute to realign stored load counters with actual shipment rows.
type WarehouseReconciliationJob struct {
	handler commands.RecalculateWarehouseLoadsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWarehouseReconciliationJob creates a new job for reconciling warehouse loads.
// Uses RecalculateWarehouseLoadsCommandHandler to recount shipments per warehouse.
func NewWarehouseReconciliationJob(
	handler commands.RecalculateWarehouseLoadsCommandHandler,
	logger *slog.Logger,
) *WarehouseReconciliationJob {
	return &WarehouseReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "warehouse_reconciliation_job"),
	}
}

// Start begins the warehouse reconciliation job to run every minute.
func (j *WarehouseReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRecalculateWarehouseLoadsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Warehouse reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Warehouse reconciliation job started (running every minute)")
	return nil
}

// Stop stops the warehouse reconciliation job.
func (j *WarehouseReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Warehouse reconciliation job stopped")
}
