package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Contract for querying transit stops and stations near a coordinate.
type StopFinder interface {
	// NearbyStops returns stops within radiusMeters of center.
	NearbyStops(ctx context.Context, center domain.Coordinate, radiusMeters int) ([]domain.TransitStop, error)
}
