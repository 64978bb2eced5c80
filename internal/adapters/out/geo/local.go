// Package geo provides route estimation adapters: a Google Distance Matrix
// client, a local haversine fallback, and a resilient wrapper that degrades
// from the remote service to the local estimate without failing the caller.
package geo

import (
	"context"
	"math"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
)

const earthRadiusKm = 6371.0

// minutesPerKm approximates urban driving pace for the fallback estimate.
const minutesPerKm = 3.0

// LocalEstimator estimates routes without any network dependency: great
// circle distance, and a duration derived from it with a time-of-day
// multiplier for rush hours.
type LocalEstimator struct {
	now func() time.Time
}

// NewLocalEstimator creates a local estimator on the real clock.
func NewLocalEstimator() *LocalEstimator {
	return &LocalEstimator{now: time.Now}
}

// NewLocalEstimatorWithClock creates a local estimator on the given clock.
func NewLocalEstimatorWithClock(now func() time.Time) *LocalEstimator {
	return &LocalEstimator{now: now}
}

// Estimate computes the haversine distance and a traffic-adjusted duration.
func (e *LocalEstimator) Estimate(_ context.Context, origin, destination kernel.Location) (kernel.RouteEstimate, error) {
	if err := origin.Validate(); err != nil {
		return kernel.RouteEstimate{}, err
	}
	if err := destination.Validate(); err != nil {
		return kernel.RouteEstimate{}, err
	}

	distanceKm := haversineKm(origin, destination)
	durationMin := distanceKm * minutesPerKm * trafficMultiplier(e.now().Hour())

	return kernel.RouteEstimate{
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
	}, nil
}

// trafficMultiplier scales the naive duration for Ho Chi Minh City rush
// hours: morning and evening peaks are worst, lunch is slightly congested.
func trafficMultiplier(hour int) float64 {
	switch {
	case (hour >= 7 && hour <= 9) || (hour >= 16 && hour <= 19):
		return 1.3
	case hour >= 11 && hour <= 13:
		return 1.15
	default:
		return 1.0
	}
}

func haversineKm(origin, destination kernel.Location) float64 {
	lat1 := origin.Lat() * math.Pi / 180
	lat2 := destination.Lat() * math.Pi / 180
	dLat := (destination.Lat() - origin.Lat()) * math.Pi / 180
	dLng := (destination.Lng() - origin.Lng()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
