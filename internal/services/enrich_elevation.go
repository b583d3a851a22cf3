package services

import (
	"context"
	"log"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// Largest number of points sent to the elevation provider per profile.
const maxElevationSamples = 100

// ElevationEnricher builds elevation profiles for route paths. Like POI
// enrichment it is best effort: provider failures degrade to an empty
// profile rather than an error.
type ElevationEnricher struct {
	Provider ports.ElevationProvider
}

// Profile samples path down to the provider limit, looks elevations up,
// and summarizes them. TotalDistanceKm always covers the original path,
// not the resampled one.
func (e *ElevationEnricher) Profile(ctx context.Context, path []domain.Coordinate) domain.ElevationProfile {
	var err error
	defer obs.Time(ctx, "elevation.Profile")(&err)

	if len(path) == 0 {
		return domain.ElevationProfile{}
	}

	sampled := resamplePath(path, maxElevationSamples)

	elevations, err := e.Provider.Elevations(ctx, sampled)
	if err != nil {
		log.Printf("elevation lookup failed: %v", err)
		return domain.ElevationProfile{}
	}
	if len(elevations) != len(sampled) {
		log.Printf("elevation lookup returned %d values for %d points", len(elevations), len(sampled))
		return domain.ElevationProfile{}
	}

	profile := domain.ElevationProfile{
		Points:          make([]domain.ElevationPoint, len(sampled)),
		MinMeters:       elevations[0],
		MaxMeters:       elevations[0],
		TotalDistanceKm: domain.PathLengthKm(path),
	}

	for i, coord := range sampled {
		elev := elevations[i]
		profile.Points[i] = domain.ElevationPoint{Coord: coord, ElevationMeters: elev}

		profile.MinMeters = min(profile.MinMeters, elev)
		profile.MaxMeters = max(profile.MaxMeters, elev)

		if i > 0 {
			delta := elev - elevations[i-1]
			if delta > 0 {
				profile.GainMeters += delta
			} else {
				profile.LossMeters += -delta
			}
		}
	}

	return profile
}

// resamplePath thins path to at most maxPoints with a fixed stride,
// always keeping the first and last points.
func resamplePath(path []domain.Coordinate, maxPoints int) []domain.Coordinate {
	if len(path) <= maxPoints {
		return path
	}

	stride := (len(path) + maxPoints - 1) / maxPoints
	sampled := make([]domain.Coordinate, 0, maxPoints+1)
	for i := 0; i < len(path); i += stride {
		sampled = append(sampled, path[i])
	}

	last := path[len(path)-1]
	if sampled[len(sampled)-1] != last {
		sampled = append(sampled, last)
	}
	return sampled
}
