package services

import (
	"trip-route-service/internal/domain"
)

// nearest selects the usable candidate closest to center, using haversine
// great-circle distance, subject to a maximum distance cutoff.
//
// The first candidate at the minimum distance wins, so slice order is the
// deterministic tie-breaker.
func nearest[T any](
	center domain.Coordinate,
	candidates []T,
	maxDistanceKm float64,
	coordOf func(T) domain.Coordinate,
	usable func(T) bool,
) (T, bool) {
	var (
		best   T
		bestKm float64
		found  bool
	)

	for _, c := range candidates {
		if !usable(c) {
			continue
		}

		km := domain.HaversineKm(center, coordOf(c))
		if km >= maxDistanceKm {
			continue
		}

		if !found || km < bestKm {
			best = c
			bestKm = km
			found = true
		}
	}

	if !found {
		var zero T
		return zero, false
	}
	return best, true
}
