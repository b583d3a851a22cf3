package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Contract for a bike-share directory: the list of networks and the live
// station availability within one network.
type BikeShareDirectory interface {
	Networks(ctx context.Context) ([]domain.BikeNetwork, error)
	Stations(ctx context.Context, networkID string) ([]domain.BikeStation, error)
}
