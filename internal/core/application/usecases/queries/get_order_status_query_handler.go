package queries

import (
	"context"
	"errors"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler serves the polling view of an order.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for status polling.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the polling lookup.
func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (OrderStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatusResponse{}, err
	}

	var row struct {
		ID           int64  `gorm:"column:id"`
		Status       string `gorm:"column:status"`
		DriverStatus string `gorm:"column:driver_status"`
		DriverID     *int64 `gorm:"column:driver_id"`
	}

	err := h.db.WithContext(ctx).Table("orders").
		Select("id", "status", "driver_status", "driver_id").
		Where("id = ?", query.OrderID()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderStatusResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderStatusResponse{}, err
	}

	return OrderStatusResponse{
		OrderID:      row.ID,
		Status:       row.Status,
		DriverStatus: row.DriverStatus,
		DriverID:     row.DriverID,
	}, nil
}
