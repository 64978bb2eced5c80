package queries

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListDispatchableOrdersQueryHandler serves the driver-facing dispatch feed.
// Only unassigned orders in a dispatchable status appear; the feed is a
// snapshot, and the acceptance claim remains the single source of truth.
type ListDispatchableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListDispatchableOrdersQueryHandler creates a handler for the dispatch feed.
func NewListDispatchableOrdersQueryHandler(db *gorm.DB) ListDispatchableOrdersQueryHandler {
	return ListDispatchableOrdersQueryHandler{db: db}
}

// Handle executes the feed query.
func (h ListDispatchableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListDispatchableOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := []string{
		order.Confirmed.String(),
		order.Preparing.String(),
		order.Ready.String(),
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Table("orders").
		Where("driver_id IS NULL AND status IN ?", statuses).
		Order("created_at ASC, id ASC").
		Limit(query.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		resp, err := toOrderResponse(row)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
