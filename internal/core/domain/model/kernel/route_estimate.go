package kernel

// RouteEstimate is the distance/duration estimate for a single pairwise trip
// between two locations. It is produced by a geo estimator and consumed by the
// dynamic pricing policy.
//
// A zero-value RouteEstimate is meaningful: it is the degraded result returned
// when even the fallback estimator cannot work with its inputs.
type RouteEstimate struct {
	DistanceKm  float64
	DurationMin float64
}

// Floored returns a copy with negative components raised to zero. Corrupt
// estimator output must never turn into a negative fee.
func (e RouteEstimate) Floored() RouteEstimate {
	if e.DistanceKm < 0 {
		e.DistanceKm = 0
	}
	if e.DurationMin < 0 {
		e.DurationMin = 0
	}
	return e
}
