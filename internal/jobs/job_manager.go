package jobs

import (
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverAssignmentJob        *DriverAssignmentJob
	warehouseReconciliationJob *WarehouseReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignDriverHandler commands.AssignDriverCommandHandler,
	recalculateLoadsHandler commands.RecalculateWarehouseLoadsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverAssignmentJob:        NewDriverAssignmentJob(assignDriverHandler, logger),
		warehouseReconciliationJob: NewWarehouseReconciliationJob(recalculateLoadsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver assignment job: %w", err)
	}

	if err := jm.warehouseReconciliationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.driverAssignmentJob.Stop()
		return fmt.Errorf("failed to start warehouse reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.warehouseReconciliationJob.Stop()
	jm.driverAssignmentJob.Stop()
}
