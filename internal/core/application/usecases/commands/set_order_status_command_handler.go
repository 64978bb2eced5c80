package commands

import (
	"context"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/core/ports"
)

// SetOrderStatusResult carries the updated order and whether the status
// notification could not be delivered.
type SetOrderStatusResult struct {
	Order              *order.Order
	NotificationFailed bool
}

// SetOrderStatusCommandHandler applies an operator status change to an order.
// The aggregate enforces transition legality; the repository update is
// preconditioned on the status and driver assignment the transition started
// from, so concurrent writers surface as conflicts instead of lost updates.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewSetOrderStatusCommandHandler creates a handler for status changes.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status change command.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (SetOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return SetOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SetOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return SetOrderStatusResult{}, err
	}

	previousStatus := aggregate.Status()
	previousDriver := aggregate.Driver()
	if err = aggregate.ChangeStatus(cmd.Next(), time.Now().UTC()); err != nil {
		return SetOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate, previousStatus, previousDriver); err != nil {
		return SetOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SetOrderStatusResult{}, err
	}

	notificationFailed := h.notifier.OrderStatusChanged(ctx, aggregate) != nil
	return SetOrderStatusResult{Order: aggregate, NotificationFailed: notificationFailed}, nil
}
