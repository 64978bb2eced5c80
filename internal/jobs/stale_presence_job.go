package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/driver"
	"github.com/marribaloch/Indian-food/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StalePresenceMaxAge is how long a driver stays available without a
// heartbeat before the sweep flags them off shift.
const StalePresenceMaxAge = 10 * time.Minute

// StalePresenceJob sweeps the presence registry and marks drivers
// unavailable when their last report is too old. Drivers whose app died
// mid-shift would otherwise sit on the registry as available forever.
type StalePresenceJob struct {
	presence ports.PresenceRepository
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStalePresenceJob creates the presence sweep job.
func NewStalePresenceJob(presence ports.PresenceRepository, maxAge time.Duration, logger *slog.Logger) *StalePresenceJob {
	if maxAge <= 0 {
		maxAge = StalePresenceMaxAge
	}
	return &StalePresenceJob{
		presence: presence,
		maxAge:   maxAge,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_presence_job"),
	}
}

// Start begins the sweep, running once a minute.
func (j *StalePresenceJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale presence job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *StalePresenceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale presence job stopped")
}

func (j *StalePresenceJob) run() {
	ctx := context.Background()
	now := time.Now().UTC()

	available, err := j.presence.GetAllAvailable(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale presence sweep failed", "error", err)
		return
	}

	swept := 0
	for _, current := range available {
		if !current.IsStale(now, j.maxAge) {
			continue
		}

		offShift, buildErr := driver.NewPresence(current.DriverID(), false, current.Location(), now)
		if buildErr != nil {
			j.logger.ErrorContext(ctx, "Stale presence sweep failed", "driver_id", current.DriverID(), "error", buildErr)
			continue
		}

		if upsertErr := j.presence.Upsert(ctx, offShift); upsertErr != nil {
			j.logger.ErrorContext(ctx, "Stale presence sweep failed", "driver_id", current.DriverID(), "error", upsertErr)
			continue
		}
		swept++
	}

	if swept > 0 {
		j.logger.InfoContext(ctx, "Swept stale driver presence", "drivers", swept)
	}
}
