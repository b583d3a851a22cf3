package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Profile selects the routing engine's travel profile.
type Profile string

const (
	ProfileDriving Profile = "driving"
	ProfileFoot    Profile = "foot"
	ProfileBike    Profile = "bike"
)

// Leg is one provider-computed path between two coordinates. Duration is
// the provider's raw estimate; strategies may recompute it from an assumed
// speed before building a segment.
type Leg struct {
	DistanceMeters  float64
	DurationSeconds float64
	Path            []domain.Coordinate
}

// Contract for an external routing engine (one call per profile and
// origin/destination pair).
type DirectionsProvider interface {
	Route(ctx context.Context, profile Profile, origin, destination domain.Coordinate) (Leg, error)
}
