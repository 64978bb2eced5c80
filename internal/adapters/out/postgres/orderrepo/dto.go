// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are serialized into a JSON column so the priced cart round-trips
// exactly as it was at order time; money columns are whole VND.
type OrderDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	UserID       *int64     `gorm:"index"`
	ContactEmail string     `gorm:"size:255;not null"`
	Items        []byte     `gorm:"type:jsonb;not null"`
	ItemsTotal   int64      `gorm:"not null"`
	DeliveryFee  int64      `gorm:"not null"`
	ServiceFee   int64      `gorm:"not null"`
	GrandTotal   int64      `gorm:"not null"`
	Status       string     `gorm:"size:32;not null;index"`
	DriverID     *int64     `gorm:"index"`
	DriverStatus string     `gorm:"size:64;not null;default:''"`
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time
	DropoffLat   *float64
	DropoffLng   *float64
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type itemDTO struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	itemDTOs := make([]itemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemDTO{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
		})
	}

	rawItems, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	var dropoffLat, dropoffLng *float64
	if dropoff := aggregate.Dropoff(); dropoff != nil {
		lat, lng := dropoff.Lat(), dropoff.Lng()
		dropoffLat, dropoffLng = &lat, &lng
	}

	totals := aggregate.Totals()
	return OrderDTO{
		ID:           aggregate.ID(),
		UserID:       aggregate.CustomerID(),
		ContactEmail: aggregate.ContactEmail(),
		Items:        rawItems,
		ItemsTotal:   totals.ItemsTotal(),
		DeliveryFee:  totals.DeliveryFee(),
		ServiceFee:   totals.ServiceFee(),
		GrandTotal:   totals.GrandTotal(),
		Status:       aggregate.Status().String(),
		DriverID:     aggregate.Driver(),
		DriverStatus: aggregate.DriverStatus(),
		PickedUpAt:   aggregate.PickedUpAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		DropoffLat:   dropoffLat,
		DropoffLng:   dropoffLng,
		CreatedAt:    aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database row back into an order aggregate, re-running
// every domain validation so corrupt rows surface loudly.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var itemDTOs []itemDTO
	if len(dto.Items) > 0 {
		if err := json.Unmarshal(dto.Items, &itemDTOs); err != nil {
			return nil, err
		}
	}

	items := make([]order.LineItem, 0, len(itemDTOs))
	for _, item := range itemDTOs {
		lineItem, err := order.NewLineItem(item.MenuItemID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, lineItem)
	}

	totals, err := order.RestoreTotals(dto.ItemsTotal, dto.DeliveryFee, dto.ServiceFee, dto.GrandTotal)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var dropoff *kernel.Location
	if dto.DropoffLat != nil && dto.DropoffLng != nil {
		loc, locErr := kernel.NewLocation(*dto.DropoffLat, *dto.DropoffLng)
		if locErr != nil {
			return nil, locErr
		}
		dropoff = &loc
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.ContactEmail,
		items,
		totals,
		status,
		dto.DriverID,
		dto.DriverStatus,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dropoff,
		dto.CreatedAt,
	)
}
