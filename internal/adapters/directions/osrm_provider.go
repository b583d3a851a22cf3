package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"trip-route-service/internal/adapters/cache"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// OSRMProvider implements DirectionsProvider against an OSRM-compatible
// routing engine.
//
// It coordinates:
//   - Per-profile route requests with retry/backoff
//   - Geometry decoding (GeoJSON coordinate lists or encoded polylines)
//   - An optional persistent leg cache
//
// The provider is safe for concurrent use.
type OSRMProvider struct {
	session  *http.Client
	baseURL  string
	legCache *cache.SQLDirectionsCache
}

// NewOSRMProvider builds a provider for baseURL (e.g.
// "https://router.project-osrm.org"). legCache may be nil.
func NewOSRMProvider(baseURL string, legCache *cache.SQLDirectionsCache) *OSRMProvider {
	return &OSRMProvider{
		session:  &http.Client{Timeout: 10 * time.Second},
		baseURL:  baseURL,
		legCache: legCache,
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64         `json:"distance"`
		Duration float64         `json:"duration"`
		Geometry json.RawMessage `json:"geometry"`
	} `json:"routes"`
}

type geojsonGeometry struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// Route fetches one leg for the given profile. Provider failures map onto
// the shared taxonomy: transport problems and non-2xx responses surface as
// ErrProviderUnavailable, an empty result as ErrNoRouteFound, and bad
// geometry as ErrGeometryDecode.
func (p *OSRMProvider) Route(
	ctx context.Context,
	profile ports.Profile,
	origin, destination domain.Coordinate,
) (_ ports.Leg, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	if p.legCache != nil {
		if leg, ok, err := p.legCache.Get(ctx, string(profile), origin, destination); err != nil {
			log.Printf("directions cache read failed: %v", err)
		} else if ok {
			return leg, nil
		}
	}

	url := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson&alternatives=false&steps=false",
		p.baseURL, osrmProfile(profile),
		origin.Lon, origin.Lat, destination.Lon, destination.Lat,
	)

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		return p.newRequest(ctx, url)
	})
	if err != nil {
		return ports.Leg{}, fmt.Errorf("%w: osrm %s: %v", ports.ErrProviderUnavailable, profile, err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.Leg{}, fmt.Errorf("%w: decode osrm response: %v", ports.ErrProviderUnavailable, err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return ports.Leg{}, fmt.Errorf("%w: osrm code=%q routes=%d", ports.ErrNoRouteFound, decoded.Code, len(decoded.Routes))
	}

	route := decoded.Routes[0]

	path, err := decodeGeometry(route.Geometry)
	if err != nil {
		return ports.Leg{}, fmt.Errorf("%w: %v", ports.ErrGeometryDecode, err)
	}

	leg := ports.Leg{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Path:            path,
	}

	if p.legCache != nil {
		if err := p.legCache.Put(ctx, string(profile), origin, destination, leg); err != nil {
			log.Printf("directions cache write failed: %v", err)
		}
	}

	return leg, nil
}

// decodeGeometry accepts either a GeoJSON LineString object ([lon,lat]
// pairs) or an encoded polyline string.
func decodeGeometry(raw json.RawMessage) ([]domain.Coordinate, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty geometry")
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("unmarshal polyline: %w", err)
		}
		return decodePolyline(encoded)
	}

	var geom geojsonGeometry
	if err := json.Unmarshal(raw, &geom); err != nil {
		return nil, fmt.Errorf("unmarshal geojson geometry: %w", err)
	}

	coords := make([]domain.Coordinate, 0, len(geom.Coordinates))
	for _, pair := range geom.Coordinates {
		if len(pair) < 2 {
			return nil, fmt.Errorf("geojson pair has %d components", len(pair))
		}
		coords = append(coords, domain.Coordinate{Lat: pair[1], Lon: pair[0]})
	}

	return coords, nil
}

func osrmProfile(profile ports.Profile) string {
	switch profile {
	case ports.ProfileDriving:
		return "driving"
	case ports.ProfileFoot:
		return "foot"
	case ports.ProfileBike:
		return "bike"
	}
	return string(profile)
}
