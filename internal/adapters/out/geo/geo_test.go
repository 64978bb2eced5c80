package geo_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/marribaloch/Indian-food/internal/adapters/out/geo"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}

func clockAt(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC)
	}
}

func TestLocalEstimator_Estimate(t *testing.T) {
	ctx := context.Background()
	saigon := mustLocation(t, 10.7769, 106.7009)
	airport := mustLocation(t, 10.8188, 106.6520)

	t.Run("identical_points_are_zero", func(t *testing.T) {
		e := geo.NewLocalEstimatorWithClock(clockAt(22))
		est, err := e.Estimate(ctx, saigon, saigon)
		require.NoError(t, err)
		assert.InDelta(t, 0, est.DistanceKm, 1e-9)
		assert.InDelta(t, 0, est.DurationMin, 1e-9)
	})

	t.Run("distance_is_symmetric", func(t *testing.T) {
		e := geo.NewLocalEstimatorWithClock(clockAt(22))
		there, err := e.Estimate(ctx, saigon, airport)
		require.NoError(t, err)
		back, err := e.Estimate(ctx, airport, saigon)
		require.NoError(t, err)
		assert.InDelta(t, there.DistanceKm, back.DistanceKm, 1e-9)
	})

	t.Run("downtown_to_airport_is_plausible", func(t *testing.T) {
		e := geo.NewLocalEstimatorWithClock(clockAt(22))
		est, err := e.Estimate(ctx, saigon, airport)
		require.NoError(t, err)
		// great circle distance is roughly 7 km
		assert.InDelta(t, 7.0, est.DistanceKm, 0.5)
	})

	t.Run("rush_hour_inflates_duration", func(t *testing.T) {
		offPeak, err := geo.NewLocalEstimatorWithClock(clockAt(22)).Estimate(ctx, saigon, airport)
		require.NoError(t, err)
		lunch, err := geo.NewLocalEstimatorWithClock(clockAt(12)).Estimate(ctx, saigon, airport)
		require.NoError(t, err)
		peak, err := geo.NewLocalEstimatorWithClock(clockAt(8)).Estimate(ctx, saigon, airport)
		require.NoError(t, err)

		assert.InDelta(t, offPeak.DurationMin*1.15, lunch.DurationMin, 1e-6)
		assert.InDelta(t, offPeak.DurationMin*1.3, peak.DurationMin, 1e-6)
	})

	t.Run("rejects_unconstructed_locations", func(t *testing.T) {
		e := geo.NewLocalEstimator()
		var zero kernel.Location
		_, err := e.Estimate(ctx, zero, airport)
		require.Error(t, err)
	})
}

func TestGoogleEstimator_Estimate(t *testing.T) {
	ctx := context.Background()
	origin := mustLocation(t, 10.7769, 106.7009)
	destination := mustLocation(t, 10.8188, 106.6520)

	t.Run("parses_traffic_aware_response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "driving", query.Get("mode"))
			assert.Equal(t, "now", query.Get("departure_time"))
			assert.Equal(t, "test-key", query.Get("key"))

			fmt.Fprint(w, `{
				"status": "OK",
				"rows": [{"elements": [{
					"status": "OK",
					"distance": {"value": 8200},
					"duration": {"value": 1080},
					"duration_in_traffic": {"value": 1440}
				}]}]
			}`)
		}))
		defer server.Close()

		e := geo.NewGoogleEstimatorWithBaseURL("test-key", server.URL, 0)
		est, err := e.Estimate(ctx, origin, destination)

		require.NoError(t, err)
		assert.InDelta(t, 8.2, est.DistanceKm, 1e-9)
		assert.InDelta(t, 24.0, est.DurationMin, 1e-9)
	})

	t.Run("falls_back_to_static_duration_without_traffic", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{
				"status": "OK",
				"rows": [{"elements": [{
					"status": "OK",
					"distance": {"value": 5000},
					"duration": {"value": 900}
				}]}]
			}`)
		}))
		defer server.Close()

		e := geo.NewGoogleEstimatorWithBaseURL("test-key", server.URL, 0)
		est, err := e.Estimate(ctx, origin, destination)

		require.NoError(t, err)
		assert.InDelta(t, 5.0, est.DistanceKm, 1e-9)
		assert.InDelta(t, 15.0, est.DurationMin, 1e-9)
	})

	t.Run("element_error_is_an_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{
				"status": "OK",
				"rows": [{"elements": [{"status": "ZERO_RESULTS"}]}]
			}`)
		}))
		defer server.Close()

		e := geo.NewGoogleEstimatorWithBaseURL("test-key", server.URL, 0)
		_, err := e.Estimate(ctx, origin, destination)
		require.Error(t, err)
	})

	t.Run("http_error_is_an_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		e := geo.NewGoogleEstimatorWithBaseURL("test-key", server.URL, 0)
		_, err := e.Estimate(ctx, origin, destination)
		require.Error(t, err)
	})
}

type failingEstimator struct{}

func (failingEstimator) Estimate(context.Context, kernel.Location, kernel.Location) (kernel.RouteEstimate, error) {
	return kernel.RouteEstimate{}, errors.New("upstream unreachable")
}

func TestResilientEstimator_Estimate(t *testing.T) {
	ctx := context.Background()
	origin := mustLocation(t, 10.7769, 106.7009)
	destination := mustLocation(t, 10.8188, 106.6520)
	logger := slog.Default()

	t.Run("prefers_primary", func(t *testing.T) {
		primary := geo.NewLocalEstimatorWithClock(clockAt(8))
		fallback := geo.NewLocalEstimatorWithClock(clockAt(22))
		e := geo.NewResilientEstimator(primary, fallback, logger)

		est, err := e.Estimate(ctx, origin, destination)
		require.NoError(t, err)

		direct, err := primary.Estimate(ctx, origin, destination)
		require.NoError(t, err)
		assert.Equal(t, direct, est)
	})

	t.Run("falls_back_when_primary_fails", func(t *testing.T) {
		fallback := geo.NewLocalEstimatorWithClock(clockAt(22))
		e := geo.NewResilientEstimator(failingEstimator{}, fallback, logger)

		est, err := e.Estimate(ctx, origin, destination)
		require.NoError(t, err)
		assert.Positive(t, est.DistanceKm)
	})
}
