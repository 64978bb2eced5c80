// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read projection rows straight from the database and map
// them to response structs; they never mutate state.
package queries

import (
	"encoding/json"
	"time"
)

// OrderItemResponse is one priced line of an order as returned to clients.
type OrderItemResponse struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	Subtotal   int64  `json:"subtotal"`
}

// OrderResponse is the full read model of an order.
type OrderResponse struct {
	ID           int64               `json:"id"`
	CustomerID   *int64              `json:"customer_id,omitempty"`
	ContactEmail string              `json:"contact_email"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items"`
	ItemsTotal   int64               `json:"items_total"`
	DeliveryFee  int64               `json:"delivery_fee"`
	ServiceFee   int64               `json:"service_fee"`
	GrandTotal   int64               `json:"grand_total"`
	DriverID     *int64              `json:"driver_id,omitempty"`
	DriverStatus string              `json:"driver_status,omitempty"`
	PickedUpAt   *time.Time          `json:"picked_up_at,omitempty"`
	DeliveredAt  *time.Time          `json:"delivered_at,omitempty"`
	DropoffLat   *float64            `json:"dropoff_lat,omitempty"`
	DropoffLng   *float64            `json:"dropoff_lng,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// orderRow mirrors the orders table for read-side scanning.
type orderRow struct {
	ID           int64      `gorm:"column:id"`
	UserID       *int64     `gorm:"column:user_id"`
	ContactEmail string     `gorm:"column:contact_email"`
	Items        []byte     `gorm:"column:items"`
	ItemsTotal   int64      `gorm:"column:items_total"`
	DeliveryFee  int64      `gorm:"column:delivery_fee"`
	ServiceFee   int64      `gorm:"column:service_fee"`
	GrandTotal   int64      `gorm:"column:grand_total"`
	Status       string     `gorm:"column:status"`
	DriverID     *int64     `gorm:"column:driver_id"`
	DriverStatus string     `gorm:"column:driver_status"`
	PickedUpAt   *time.Time `gorm:"column:picked_up_at"`
	DeliveredAt  *time.Time `gorm:"column:delivered_at"`
	DropoffLat   *float64   `gorm:"column:dropoff_lat"`
	DropoffLng   *float64   `gorm:"column:dropoff_lng"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
}

type itemRow struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
}

func toOrderResponse(row orderRow) (OrderResponse, error) {
	var items []itemRow
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &items); err != nil {
			return OrderResponse{}, err
		}
	}

	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			Subtotal:   item.UnitPrice * int64(item.Quantity),
		})
	}

	return OrderResponse{
		ID:           row.ID,
		CustomerID:   row.UserID,
		ContactEmail: row.ContactEmail,
		Status:       row.Status,
		Items:        itemResponses,
		ItemsTotal:   row.ItemsTotal,
		DeliveryFee:  row.DeliveryFee,
		ServiceFee:   row.ServiceFee,
		GrandTotal:   row.GrandTotal,
		DriverID:     row.DriverID,
		DriverStatus: row.DriverStatus,
		PickedUpAt:   row.PickedUpAt,
		DeliveredAt:  row.DeliveredAt,
		DropoffLat:   row.DropoffLat,
		DropoffLng:   row.DropoffLng,
		CreatedAt:    row.CreatedAt,
	}, nil
}
