package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expiryJob *DeliveryRequestExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(expiryHandler ExpiryHandler, expirySchedule string, logger *zap.Logger) *JobManager {
	return &JobManager{
		expiryJob: NewDeliveryRequestExpiryJob(expiryHandler, expirySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery request expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expiryJob.Stop()
}
