package ports

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/driver"
)

// PresenceRepository defines the persistence contract for driver presence.
// The registry keeps exactly one row per driver; Upsert overwrites it
// (last-write-wins) and rows are never expired by the store.
type PresenceRepository interface {
	// Upsert inserts or replaces the presence row for the reporting driver.
	Upsert(ctx context.Context, presence driver.Presence) error

	// Get retrieves the presence row for a driver.
	// Returns errs.ErrObjectNotFound when the driver has never reported.
	Get(ctx context.Context, driverID int64) (*driver.Presence, error)

	// GetAllAvailable retrieves every driver currently flagged available.
	GetAllAvailable(ctx context.Context) ([]driver.Presence, error)
}
