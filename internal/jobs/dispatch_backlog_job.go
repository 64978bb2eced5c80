package jobs

import (
	"context"
	"log/slog"

	"github.com/marribaloch/Indian-food/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DispatchBacklogJob periodically measures the dispatch feed. It compares
// the number of orders waiting for a driver with the number of drivers
// currently available and raises a log warning when orders are piling up
// with nobody on shift to take them.
type DispatchBacklogJob struct {
	orders   ports.OrderRepository
	presence ports.PresenceRepository
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDispatchBacklogJob creates the backlog monitoring job.
func NewDispatchBacklogJob(
	orders ports.OrderRepository,
	presence ports.PresenceRepository,
	logger *slog.Logger,
) *DispatchBacklogJob {
	return &DispatchBacklogJob{
		orders:   orders,
		presence: presence,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dispatch_backlog_job"),
	}
}

// Start begins the backlog check, running every 30 seconds.
func (j *DispatchBacklogJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch backlog job started (running every 30 seconds)")
	return nil
}

// Stop stops the backlog check.
func (j *DispatchBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch backlog job stopped")
}

func (j *DispatchBacklogJob) run() {
	ctx := context.Background()

	waiting, err := j.orders.CountDispatchable(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch backlog check failed", "error", err)
		return
	}
	if waiting == 0 {
		return
	}

	available, err := j.presence.GetAllAvailable(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch backlog check failed", "error", err)
		return
	}

	if len(available) == 0 {
		j.logger.WarnContext(ctx, "Orders waiting with no drivers available",
			"waiting_orders", waiting)
		return
	}

	j.logger.InfoContext(ctx, "Dispatch feed status",
		"waiting_orders", waiting,
		"available_drivers", len(available))
}
