package services

import (
	"context"
	"fmt"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

const (
	transitStopRadiusMeters = 500
	// Flat single-ticket fare applied when a transit leg is present.
	transitFare = 4.50
)

// economicRoute prefers walk → transit → walk. Each step degrades to a
// plain walking route when its candidates or providers fail; the fallback
// is one-directional.
func (p *Planner) economicRoute(
	ctx context.Context,
	origin, destination domain.PlaceReference,
) (*domain.ComputedRoute, error) {
	var attempts []error

	walkOnly := func() (*domain.ComputedRoute, error) {
		route, err := p.walkingFallback(ctx, origin, destination, attempts)
		if err != nil {
			return nil, err
		}
		fare := 0.0
		route.CostEstimate = &fare
		return route, nil
	}

	originStops, err := p.Stops.NearbyStops(ctx, origin.Coord, transitStopRadiusMeters)
	if err != nil {
		attempts = append(attempts, fmt.Errorf("stops near origin: %w", err))
		return walkOnly()
	}

	board, ok := nearestStop(origin.Coord, originStops)
	if !ok {
		attempts = append(attempts, fmt.Errorf("origin: %w", ports.ErrStopNotFound))
		return walkOnly()
	}

	destStops, err := p.Stops.NearbyStops(ctx, destination.Coord, transitStopRadiusMeters)
	if err != nil {
		attempts = append(attempts, fmt.Errorf("stops near destination: %w", err))
		return walkOnly()
	}

	alight, ok := nearestStop(destination.Coord, destStops)
	if !ok {
		attempts = append(attempts, fmt.Errorf("destination: %w", ports.ErrStopNotFound))
		return walkOnly()
	}

	segments, err := gatherSegments(
		func() (domain.RouteSegment, error) {
			return p.walkSegment(ctx, origin, stopPlace(board))
		},
		func() (domain.RouteSegment, error) {
			return p.transitSegment(ctx, board, alight)
		},
		func() (domain.RouteSegment, error) {
			return p.walkSegment(ctx, stopPlace(alight), destination)
		},
	)
	if err != nil {
		attempts = append(attempts, fmt.Errorf("multimodal segments: %w", err))
		return walkOnly()
	}

	route := domain.AssembleRoute(segments)
	fare := transitFare
	route.CostEstimate = &fare
	return route, nil
}

func nearestStop(center domain.Coordinate, stops []domain.TransitStop) (domain.TransitStop, bool) {
	return nearest(center, stops, transitStopRadiusMeters/1000.0,
		func(s domain.TransitStop) domain.Coordinate { return s.Coord },
		func(domain.TransitStop) bool { return true },
	)
}

func stopPlace(stop domain.TransitStop) domain.PlaceReference {
	return domain.PlaceReference{Label: stop.Name, Coord: stop.Coord}
}
