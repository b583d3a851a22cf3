package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Contract for batch elevation lookup. The result is a parallel array in
// the same order as coords.
type ElevationProvider interface {
	Elevations(ctx context.Context, coords []domain.Coordinate) ([]float64, error)
}
