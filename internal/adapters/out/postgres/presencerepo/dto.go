// Package presencerepo persists driver presence rows. The registry keeps one
// row per driver and each report overwrites the previous one.
package presencerepo

import (
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/driver"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
)

// PresenceDTO represents the database structure for driver presence.
type PresenceDTO struct {
	DriverID  int64 `gorm:"primaryKey"`
	Available bool  `gorm:"not null;index"`
	Lat       *float64
	Lng       *float64
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for presence rows.
func (PresenceDTO) TableName() string {
	return "driver_presence"
}

func fromDomain(presence driver.Presence) PresenceDTO {
	var lat, lng *float64
	if loc := presence.Location(); loc != nil {
		latVal, lngVal := loc.Lat(), loc.Lng()
		lat, lng = &latVal, &lngVal
	}

	return PresenceDTO{
		DriverID:  presence.DriverID(),
		Available: presence.Available(),
		Lat:       lat,
		Lng:       lng,
		UpdatedAt: presence.UpdatedAt(),
	}
}

func toDomain(dto PresenceDTO) (driver.Presence, error) {
	var location *kernel.Location
	if dto.Lat != nil && dto.Lng != nil {
		loc, err := kernel.NewLocation(*dto.Lat, *dto.Lng)
		if err != nil {
			return driver.Presence{}, err
		}
		location = &loc
	}

	return driver.NewPresence(dto.DriverID, dto.Available, location, dto.UpdatedAt)
}
