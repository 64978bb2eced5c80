package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"
)

const distanceMatrixURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// defaultGoogleTimeout bounds one Distance Matrix call so a slow upstream
// can never stall order placement.
const defaultGoogleTimeout = 8 * time.Second

// GoogleEstimator estimates routes via the Google Distance Matrix API in
// driving mode with live traffic (departure_time=now). When the response
// carries duration_in_traffic it is preferred over the static duration.
type GoogleEstimator struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGoogleEstimator creates a Distance Matrix client with the default timeout.
func NewGoogleEstimator(apiKey string) *GoogleEstimator {
	return &GoogleEstimator{
		apiKey:  apiKey,
		baseURL: distanceMatrixURL,
		client:  &http.Client{Timeout: defaultGoogleTimeout},
	}
}

// NewGoogleEstimatorWithBaseURL creates a client against a custom endpoint.
// Used by tests to point the client at a stub server.
func NewGoogleEstimatorWithBaseURL(apiKey, baseURL string, timeout time.Duration) *GoogleEstimator {
	if timeout <= 0 {
		timeout = defaultGoogleTimeout
	}
	return &GoogleEstimator{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Meters int64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Seconds int64 `json:"value"`
			} `json:"duration"`
			DurationInTraffic *struct {
				Seconds int64 `json:"value"`
			} `json:"duration_in_traffic"`
		} `json:"elements"`
	} `json:"rows"`
}

// Estimate calls the Distance Matrix API for one origin/destination pair.
func (e *GoogleEstimator) Estimate(ctx context.Context, origin, destination kernel.Location) (kernel.RouteEstimate, error) {
	if err := origin.Validate(); err != nil {
		return kernel.RouteEstimate{}, err
	}
	if err := destination.Validate(); err != nil {
		return kernel.RouteEstimate{}, err
	}

	query := url.Values{}
	query.Set("origins", fmt.Sprintf("%f,%f", origin.Lat(), origin.Lng()))
	query.Set("destinations", fmt.Sprintf("%f,%f", destination.Lat(), destination.Lng()))
	query.Set("mode", "driving")
	query.Set("departure_time", "now")
	query.Set("key", e.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return kernel.RouteEstimate{}, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return kernel.RouteEstimate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.RouteEstimate{}, fmt.Errorf("distance matrix: unexpected status %d", resp.StatusCode)
	}

	var payload distanceMatrixResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return kernel.RouteEstimate{}, err
	}

	if payload.Status != "OK" || len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return kernel.RouteEstimate{}, errs.NewValueIsInvalidErrorWithCause("distance matrix response",
			fmt.Errorf("status %q", payload.Status))
	}

	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		return kernel.RouteEstimate{}, errs.NewValueIsInvalidErrorWithCause("distance matrix element",
			fmt.Errorf("status %q", element.Status))
	}

	durationSeconds := element.Duration.Seconds
	if element.DurationInTraffic != nil {
		durationSeconds = element.DurationInTraffic.Seconds
	}

	return kernel.RouteEstimate{
		DistanceKm:  float64(element.Distance.Meters) / 1000,
		DurationMin: float64(durationSeconds) / 60,
	}, nil
}
