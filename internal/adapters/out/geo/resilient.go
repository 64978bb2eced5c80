package geo

import (
	"context"
	"log/slog"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/core/ports"
)

// ResilientEstimator tries a primary estimator and silently falls back to a
// secondary one. Route estimation is advisory: an unreachable routing
// service must never block an order, so the fallback is logged at warning
// level and the caller sees only a usable estimate.
type ResilientEstimator struct {
	primary  ports.GeoEstimator
	fallback ports.GeoEstimator
	logger   *slog.Logger
}

// NewResilientEstimator creates a fallback chain of two estimators.
func NewResilientEstimator(primary, fallback ports.GeoEstimator, logger *slog.Logger) *ResilientEstimator {
	return &ResilientEstimator{
		primary:  primary,
		fallback: fallback,
		logger:   logger.With("component", "geo"),
	}
}

// Estimate returns the primary estimate, or the fallback's when the primary
// fails.
func (e *ResilientEstimator) Estimate(ctx context.Context, origin, destination kernel.Location) (kernel.RouteEstimate, error) {
	estimate, err := e.primary.Estimate(ctx, origin, destination)
	if err == nil {
		return estimate, nil
	}

	e.logger.Warn("primary route estimator failed, using fallback", "error", err)
	return e.fallback.Estimate(ctx, origin, destination)
}
