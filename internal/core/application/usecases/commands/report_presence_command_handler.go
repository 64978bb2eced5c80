package commands

import (
	"context"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/driver"
)

// ReportPresenceCommandHandler records a driver's availability report.
// The registry keeps one row per driver and the newest report wins.
type ReportPresenceCommandHandler struct {
	uowFactory PresenceUoWFactory
}

// NewReportPresenceCommandHandler creates a handler for presence reports.
func NewReportPresenceCommandHandler(uowFactory PresenceUoWFactory) ReportPresenceCommandHandler {
	return ReportPresenceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the presence report.
func (h ReportPresenceCommandHandler) Handle(ctx context.Context, cmd ReportPresenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	presence, err := driver.NewPresence(cmd.DriverID(), cmd.Available(), cmd.Location(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PresenceRepository().Upsert(ctx, presence); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
