package elevation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// OpenElevationClient batch-queries an Open-Elevation style lookup
// endpoint.
type OpenElevationClient struct {
	session *http.Client
	url     string
}

// NewOpenElevationClient builds a client for url (e.g.
// "https://api.open-elevation.com/api/v1/lookup").
func NewOpenElevationClient(url string) *OpenElevationClient {
	return &OpenElevationClient{
		session: &http.Client{Timeout: 10 * time.Second},
		url:     url,
	}
}

type lookupRequest struct {
	Locations []lookupLocation `json:"locations"`
}

type lookupLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type lookupResponse struct {
	Results []struct {
		Elevation float64 `json:"elevation"`
	} `json:"results"`
}

// Elevations returns elevations for coords, in the same order. A response
// whose length does not match the request is a provider failure.
func (c *OpenElevationClient) Elevations(
	ctx context.Context,
	coords []domain.Coordinate,
) (_ []float64, err error) {
	defer obs.Time(ctx, "elevation.Elevations")(&err)

	if len(coords) == 0 {
		return nil, nil
	}

	body := lookupRequest{Locations: make([]lookupLocation, 0, len(coords))}
	for _, c := range coords {
		body.Locations = append(body.Locations, lookupLocation{Latitude: c.Lat, Longitude: c.Lon})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal lookup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: elevation lookup: %v", ports.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: elevation lookup status %d", ports.ErrProviderUnavailable, resp.StatusCode)
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode elevation response: %v", ports.ErrProviderUnavailable, err)
	}

	if len(decoded.Results) != len(coords) {
		return nil, fmt.Errorf(
			"%w: elevation returned %d results for %d coordinates",
			ports.ErrProviderUnavailable, len(decoded.Results), len(coords),
		)
	}

	elevations := make([]float64, len(decoded.Results))
	for i, r := range decoded.Results {
		elevations[i] = r.Elevation
	}

	return elevations, nil
}
