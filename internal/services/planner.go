package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// Strategy selects how a trip is planned.
type Strategy string

const (
	// StrategyFast is a single driving route with no fallback.
	StrategyFast Strategy = "fast"
	// StrategyEconomic prefers walk → transit → walk, degrading to walking.
	StrategyEconomic Strategy = "economic"
	// StrategyGreen prefers walking or shared bikes, degrading to walking.
	StrategyGreen Strategy = "green"
)

// ParseStrategy validates a client-supplied strategy name. The empty
// string defaults to fast.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFast, StrategyEconomic, StrategyGreen:
		return Strategy(s), nil
	case "":
		return StrategyFast, nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// Planner computes multimodal routes by composing the directions, transit
// stop, and bike-share providers. Each strategy owns its fallback chain;
// Economic and Green only degrade toward walking, never the other way.
type Planner struct {
	Directions ports.DirectionsProvider
	Stops      ports.StopFinder
	Bikes      ports.BikeShareDirectory
}

// ComputeRoute plans a trip from origin to destination. It fails with
// ErrRouteUnavailable only when every fallback, including the walking
// route, is exhausted; the Fast strategy surfaces provider errors directly.
func (p *Planner) ComputeRoute(
	ctx context.Context,
	origin, destination domain.PlaceReference,
	strategy Strategy,
) (_ *domain.ComputedRoute, err error) {
	defer obs.Time(ctx, "planner.ComputeRoute")(&err)

	switch strategy {
	case StrategyFast:
		return p.fastRoute(ctx, origin, destination)
	case StrategyEconomic:
		return p.economicRoute(ctx, origin, destination)
	case StrategyGreen:
		return p.greenRoute(ctx, origin, destination)
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}

// fastRoute is one driving-profile call; provider failures propagate
// unchanged.
func (p *Planner) fastRoute(
	ctx context.Context,
	origin, destination domain.PlaceReference,
) (*domain.ComputedRoute, error) {
	leg, err := p.Directions.Route(ctx, ports.ProfileDriving, origin.Coord, destination.Coord)
	if err != nil {
		return nil, err
	}

	seg := domain.RouteSegment{
		Mode:            domain.ModeCar,
		Path:            leg.Path,
		DistanceMeters:  leg.DistanceMeters,
		DurationSeconds: leg.DurationSeconds,
		Start:           origin,
		End:             destination,
		Instructions:    "Follow the fastest driving route",
	}

	return domain.AssembleRoute([]domain.RouteSegment{seg}), nil
}

// walkingRoute is the terminal fallback: a single walking segment.
func (p *Planner) walkingRoute(
	ctx context.Context,
	origin, destination domain.PlaceReference,
) (*domain.ComputedRoute, error) {
	seg, err := p.walkSegment(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	return domain.AssembleRoute([]domain.RouteSegment{seg}), nil
}

// walkingFallback degrades to a walking-only route after the richer
// candidates failed. attempts carries the collected failure reasons; if
// even walking fails, the whole chain surfaces as ErrRouteUnavailable.
func (p *Planner) walkingFallback(
	ctx context.Context,
	origin, destination domain.PlaceReference,
	attempts []error,
) (*domain.ComputedRoute, error) {
	for _, a := range attempts {
		log.Printf("route fallback: %v", a)
	}

	route, err := p.walkingRoute(ctx, origin, destination)
	if err != nil {
		attempts = append(attempts, fmt.Errorf("walking route: %w", err))
		return nil, fmt.Errorf("%w: %v", ports.ErrRouteUnavailable, errors.Join(attempts...))
	}
	return route, nil
}

// gatherSegments fans out independent segment requests and joins them with
// a barrier that waits for all to settle. A multimodal attempt needs every
// segment, so any failure fails the attempt.
func gatherSegments(builders ...func() (domain.RouteSegment, error)) ([]domain.RouteSegment, error) {
	segments := make([]domain.RouteSegment, len(builders))
	errs := make([]error, len(builders))

	var wg sync.WaitGroup
	for i, build := range builders {
		wg.Add(1)
		go func(i int, build func() (domain.RouteSegment, error)) {
			defer wg.Done()
			segments[i], errs[i] = build()
		}(i, build)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return segments, nil
}

// recomputedDuration replaces a provider's raw duration with one derived
// from an assumed speed, rounded to whole seconds.
func recomputedDuration(distanceMeters, speedKmh float64) float64 {
	return math.Round(distanceMeters / 1000 / speedKmh * 3600)
}
