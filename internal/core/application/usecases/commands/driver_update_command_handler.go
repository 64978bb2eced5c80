package commands

import (
	"context"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/driver"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/core/ports"
)

// DriverUpdateResult carries the optionally-updated order and whether a
// finalization notification could not be delivered. Order is nil when the
// update was a pure location refresh.
type DriverUpdateResult struct {
	Order              *order.Order
	NotificationFailed bool
}

// DriverUpdateCommandHandler processes the combined driver update.
//
// The presence refresh always happens; the order progress report is applied
// only when the update names an order, and only the assigned driver may
// report on it. An unrecognized progress marker updates the location and
// nothing else.
type DriverUpdateCommandHandler struct {
	uowFactory DriverUpdateUoWFactory
	notifier   ports.Notifier
}

// NewDriverUpdateCommandHandler creates a handler for combined driver updates.
func NewDriverUpdateCommandHandler(uowFactory DriverUpdateUoWFactory, notifier ports.Notifier) DriverUpdateCommandHandler {
	return DriverUpdateCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the combined update.
func (h DriverUpdateCommandHandler) Handle(ctx context.Context, cmd DriverUpdateCommand) (DriverUpdateResult, error) {
	if err := cmd.Validate(); err != nil {
		return DriverUpdateResult{}, err
	}

	now := time.Now().UTC()

	presence, err := driver.NewPresence(cmd.DriverID(), true, cmd.Location(), now)
	if err != nil {
		return DriverUpdateResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return DriverUpdateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PresenceRepository().Upsert(ctx, presence); err != nil {
		return DriverUpdateResult{}, err
	}

	var aggregate *order.Order
	statusChanged := false
	if cmd.OrderID() != nil {
		orderRepo := uow.OrderRepository()
		aggregate, err = orderRepo.Get(ctx, *cmd.OrderID())
		if err != nil {
			return DriverUpdateResult{}, err
		}

		previousStatus := aggregate.Status()
		previousDriver := aggregate.Driver()
		statusChanged, err = aggregate.ReportDriverProgress(cmd.DriverID(), cmd.SubStatus(), now)
		if err != nil {
			return DriverUpdateResult{}, err
		}

		if err = orderRepo.Update(ctx, aggregate, previousStatus, previousDriver); err != nil {
			return DriverUpdateResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return DriverUpdateResult{}, err
	}

	notificationFailed := false
	if statusChanged {
		notificationFailed = h.notifier.OrderStatusChanged(ctx, aggregate) != nil
	}

	return DriverUpdateResult{Order: aggregate, NotificationFailed: notificationFailed}, nil
}
