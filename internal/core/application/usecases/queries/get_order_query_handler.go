package queries

import (
	"context"
	"errors"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. An order outside the query's owner scope is
// indistinguishable from a missing one.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Where("id = ?", query.OrderID())
	if query.OwnerID() != nil {
		tx = tx.Where("user_id = ?", *query.OwnerID())
	}

	var row orderRow
	if err := tx.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderResponse{}, err
	}

	return toOrderResponse(row)
}
