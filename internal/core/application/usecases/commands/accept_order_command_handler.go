package commands

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/core/ports"
)

// AcceptOrderResult carries the claimed order and whether the status
// notification could not be delivered.
type AcceptOrderResult struct {
	Order              *order.Order
	NotificationFailed bool
}

// AcceptOrderCommandHandler handles a driver claiming an order.
//
// The claim itself is a single conditional update in the repository: it
// succeeds only for an unassigned order in an acceptable status, so two
// drivers racing for the same order produce exactly one winner. The loser
// gets a conflict, never a corrupted assignment.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (AcceptOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	// Existence first, so an unknown order is reported as not found rather
	// than as a claim conflict.
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return AcceptOrderResult{}, err
	}

	aggregate, err := orderRepo.AssignDriver(ctx, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return AcceptOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptOrderResult{}, err
	}

	notificationFailed := h.notifier.OrderStatusChanged(ctx, aggregate) != nil
	return AcceptOrderResult{Order: aggregate, NotificationFailed: notificationFailed}, nil
}
