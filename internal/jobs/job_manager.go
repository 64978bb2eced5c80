package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchBacklogJob *DispatchBacklogJob
	stalePresenceJob   *StalePresenceJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orders ports.OrderRepository,
	presence ports.PresenceRepository,
	presenceMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchBacklogJob: NewDispatchBacklogJob(orders, presence, logger),
		stalePresenceJob:   NewStalePresenceJob(presence, presenceMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch backlog job: %w", err)
	}

	if err := jm.stalePresenceJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchBacklogJob.Stop()
		return fmt.Errorf("failed to start stale presence job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchBacklogJob.Stop()
	jm.stalePresenceJob.Stop()
}
