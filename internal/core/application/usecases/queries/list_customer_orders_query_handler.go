package queries

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListCustomerOrdersQueryHandler reads a customer's order history.
type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomerOrdersQueryHandler creates a handler for order history queries.
func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

// Handle executes the history query. A customer with no orders gets an empty
// listing, not an error. The listing is paged, so the spending summary comes
// from its own aggregate over the full history rather than the page rows.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) (CustomerOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerOrdersResponse{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Table("orders").
		Where("user_id = ?", query.CustomerID()).
		Order("created_at DESC, id DESC").
		Limit(query.Limit()).
		Find(&rows).Error
	if err != nil {
		return CustomerOrdersResponse{}, err
	}

	var summary struct {
		DeliveredCount int
		TotalSpent     int64
	}
	err = h.db.WithContext(ctx).Table("orders").
		Select("COUNT(*) AS delivered_count, COALESCE(SUM(grand_total), 0) AS total_spent").
		Where("user_id = ? AND status = ?", query.CustomerID(), order.Delivered.String()).
		Scan(&summary).Error
	if err != nil {
		return CustomerOrdersResponse{}, err
	}

	response := CustomerOrdersResponse{
		Orders:         make([]OrderResponse, 0, len(rows)),
		DeliveredCount: summary.DeliveredCount,
		TotalSpent:     summary.TotalSpent,
	}
	for _, row := range rows {
		resp, err := toOrderResponse(row)
		if err != nil {
			return CustomerOrdersResponse{}, err
		}
		response.Orders = append(response.Orders, resp)
	}

	return response, nil
}
