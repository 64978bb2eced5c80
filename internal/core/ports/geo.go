package ports

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
)

// GeoEstimator estimates the road distance and travel time between two points.
// Implementations may call an external routing service; they take a context
// and are expected to bound their own latency.
type GeoEstimator interface {
	Estimate(ctx context.Context, origin, destination kernel.Location) (kernel.RouteEstimate, error)
}
