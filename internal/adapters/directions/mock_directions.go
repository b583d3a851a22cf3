package directions

import (
	"context"
	"fmt"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

type MockLeg struct {
	Profile ports.Profile
	From    domain.Coordinate
	To      domain.Coordinate
	Meters  float64
	Seconds float64
	Path    []domain.Coordinate
}

// MockDirectionsProvider serves canned legs keyed by profile and endpoints.
type MockDirectionsProvider struct {
	m map[string]ports.Leg
}

func NewMockDirectionsProvider(legs []MockLeg) *MockDirectionsProvider {
	m := make(map[string]ports.Leg, len(legs))
	for _, l := range legs {
		path := l.Path
		if path == nil {
			path = []domain.Coordinate{l.From, l.To}
		}
		m[legKey(l.Profile, l.From, l.To)] = ports.Leg{
			DistanceMeters:  l.Meters,
			DurationSeconds: l.Seconds,
			Path:            path,
		}
	}
	return &MockDirectionsProvider{m: m}
}

func (p *MockDirectionsProvider) Route(
	ctx context.Context,
	profile ports.Profile,
	origin, destination domain.Coordinate,
) (ports.Leg, error) {
	leg, ok := p.m[legKey(profile, origin, destination)]
	if !ok {
		return ports.Leg{}, fmt.Errorf("%w: missing mock leg %s %v -> %v", ports.ErrNoRouteFound, profile, origin, destination)
	}
	return leg, nil
}

func legKey(profile ports.Profile, from, to domain.Coordinate) string {
	return fmt.Sprintf("%s|%.5f,%.5f|%.5f,%.5f", profile, from.Lat, from.Lon, to.Lat, to.Lon)
}
