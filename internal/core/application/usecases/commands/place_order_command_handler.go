package commands

import (
	"context"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/core/domain/services"
	"github.com/marribaloch/Indian-food/internal/core/ports"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"
)

// PlaceOrderResult carries the persisted order and whether the confirmation
// notification could not be delivered. A failed notification never fails the
// placement itself.
type PlaceOrderResult struct {
	Order              *order.Order
	NotificationFailed bool
}

// PlaceOrderCommandHandler handles the business logic for order placement:
// catalog re-pricing, guest identity resolution, route estimation, fee
// calculation and persistence, in that sequence. The route estimate is
// produced before anything is written so a slow geo backend can never leave
// a half-priced order behind.
type PlaceOrderCommandHandler struct {
	uowFactory    PlaceOrderUoWFactory
	geoEstimator  ports.GeoEstimator
	feeCalculator services.FeeCalculator
	notifier      ports.Notifier
	origin        kernel.Location
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// origin is the restaurant pickup point used for every route estimate.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	geoEstimator ports.GeoEstimator,
	feeCalculator services.FeeCalculator,
	notifier ports.Notifier,
	origin kernel.Location,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:    uowFactory,
		geoEstimator:  geoEstimator,
		feeCalculator: feeCalculator,
		notifier:      notifier,
		origin:        origin,
	}
}

// Handle processes the order placement command.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	estimate := h.estimate(ctx, cmd.Dropoff())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := h.priceItems(ctx, uow.Catalog(), cmd.Items())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	customerID := cmd.CustomerID()
	if customerID == nil {
		id, err := uow.Identity().ResolveCustomerByEmail(ctx, cmd.ContactEmail())
		if err != nil {
			return PlaceOrderResult{}, err
		}
		customerID = &id
	}

	totals, err := h.feeCalculator.Quote(items, estimate)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	aggregate, err := order.NewOrder(customerID, cmd.ContactEmail(), items, totals, cmd.Dropoff(), time.Now().UTC())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	notificationFailed := h.notifier.OrderStatusChanged(ctx, aggregate) != nil
	return PlaceOrderResult{Order: aggregate, NotificationFailed: notificationFailed}, nil
}

// estimate resolves the route estimate for the dropoff, or nil when there is
// no dropoff or the estimator cannot produce one. Absence of an estimate is
// not an error; the fee calculator falls back to the flat fee.
func (h PlaceOrderCommandHandler) estimate(ctx context.Context, dropoff *kernel.Location) *kernel.RouteEstimate {
	if dropoff == nil {
		return nil
	}

	est, err := h.geoEstimator.Estimate(ctx, h.origin, *dropoff)
	if err != nil {
		return nil
	}
	return &est
}

// priceItems turns cart lines into validated line items. Lines referencing
// the catalog take their name and price from it and are rejected when the
// entry is missing or inactive.
func (h PlaceOrderCommandHandler) priceItems(
	ctx context.Context,
	catalog ports.Catalog,
	cartItems []PlaceOrderItem,
) ([]order.LineItem, error) {
	var catalogIDs []int64
	for _, item := range cartItems {
		if item.MenuItemID > 0 {
			catalogIDs = append(catalogIDs, item.MenuItemID)
		}
	}

	var entries map[int64]ports.CatalogItem
	if len(catalogIDs) > 0 {
		var err error
		entries, err = catalog.GetItems(ctx, catalogIDs)
		if err != nil {
			return nil, err
		}
	}

	items := make([]order.LineItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		name, unitPrice := cartItem.Name, cartItem.UnitPrice
		if cartItem.MenuItemID > 0 {
			entry, ok := entries[cartItem.MenuItemID]
			if !ok {
				return nil, errs.NewObjectNotFoundError("menu item", cartItem.MenuItemID)
			}
			if !entry.Active {
				return nil, errs.NewValueIsInvalidError("menu item")
			}
			name, unitPrice = entry.Name, entry.Price
		}

		item, err := order.NewLineItem(cartItem.MenuItemID, name, unitPrice, cartItem.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
