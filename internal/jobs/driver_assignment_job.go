package jobs

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverAssignmentJob manages the scheduled dispatch of shipments to drivers.
// Runs every five seconds to match warehouse shipments with available drivers.
type DriverAssignmentJob struct {
	handler commands.AssignDriverCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverAssignmentJob creates a new job for dispatching shipments.
// Uses AssignDriverCommandHandler to pair the oldest waiting shipment with a driver.
func NewDriverAssignmentJob(handler commands.AssignDriverCommandHandler, logger *slog.Logger) *DriverAssignmentJob {
	return &DriverAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_assignment_job"),
	}
}

// Start begins the driver assignment job to run every five seconds.
func (j *DriverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignDriverCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoWaitingShipmentFound) && !errors.Is(err, commands.ErrNoAvailableDriversFound) {
				j.logger.ErrorContext(ctx, "Driver assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver assignment job started (running every five seconds)")
	return nil
}

// Stop stops the driver assignment job.
func (j *DriverAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver assignment job stopped")
}
