package services

import (
	"context"
	"fmt"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// Assumed speeds replacing provider durations. The routing engine has no
// real transit timing (driving geometry stands in for the transit leg),
// its bike durations assume racing speeds, and its walking durations run
// hot for casual walkers.
const (
	walkSpeedKmh       = 5
	sharedBikeSpeedKmh = 13
	busSpeedKmh        = 20
	subwaySpeedKmh     = 40
	railSpeedKmh       = 50
)

func transitSpeedKmh(mode domain.TravelMode) float64 {
	switch mode {
	case domain.ModeBus:
		return busSpeedKmh
	case domain.ModeSubway:
		return subwaySpeedKmh
	case domain.ModeRail:
		return railSpeedKmh
	case domain.ModeCar, domain.ModeWalk, domain.ModeBike, domain.ModeBikeShare:
		// Not transit modes; callers only pass stop-derived modes.
	}
	return busSpeedKmh
}

func transitInstructions(mode domain.TravelMode, to string) string {
	switch mode {
	case domain.ModeSubway:
		return fmt.Sprintf("Take the subway to %s", to)
	case domain.ModeRail:
		return fmt.Sprintf("Take the train to %s", to)
	case domain.ModeBus, domain.ModeCar, domain.ModeWalk, domain.ModeBike, domain.ModeBikeShare:
	}
	return fmt.Sprintf("Take the bus to %s", to)
}

// walkSegment routes on the foot profile and recomputes the duration at
// walking pace.
func (p *Planner) walkSegment(
	ctx context.Context,
	from, to domain.PlaceReference,
) (domain.RouteSegment, error) {
	leg, err := p.Directions.Route(ctx, ports.ProfileFoot, from.Coord, to.Coord)
	if err != nil {
		return domain.RouteSegment{}, fmt.Errorf("walk segment to %q: %w", to.Label, err)
	}

	return domain.RouteSegment{
		Mode:            domain.ModeWalk,
		Path:            leg.Path,
		DistanceMeters:  leg.DistanceMeters,
		DurationSeconds: recomputedDuration(leg.DistanceMeters, walkSpeedKmh),
		Start:           from,
		End:             to,
		Instructions:    fmt.Sprintf("Walk to %s", to.Label),
	}, nil
}

// transitSegment approximates a transit leg: driving-profile geometry with
// the duration recomputed from the boarding stop's assumed mode speed.
func (p *Planner) transitSegment(
	ctx context.Context,
	board, alight domain.TransitStop,
) (domain.RouteSegment, error) {
	leg, err := p.Directions.Route(ctx, ports.ProfileDriving, board.Coord, alight.Coord)
	if err != nil {
		return domain.RouteSegment{}, fmt.Errorf("transit segment %q -> %q: %w", board.Name, alight.Name, err)
	}

	return domain.RouteSegment{
		Mode:            board.Mode,
		Path:            leg.Path,
		DistanceMeters:  leg.DistanceMeters,
		DurationSeconds: recomputedDuration(leg.DistanceMeters, transitSpeedKmh(board.Mode)),
		Start:           domain.PlaceReference{Label: board.Name, Coord: board.Coord},
		End:             domain.PlaceReference{Label: alight.Name, Coord: alight.Coord},
		Instructions:    transitInstructions(board.Mode, alight.Name),
	}, nil
}

// bikeSegment routes on the bike profile at shared-bike pace.
func (p *Planner) bikeSegment(
	ctx context.Context,
	from, to domain.PlaceReference,
) (domain.RouteSegment, error) {
	leg, err := p.Directions.Route(ctx, ports.ProfileBike, from.Coord, to.Coord)
	if err != nil {
		return domain.RouteSegment{}, fmt.Errorf("bike segment to %q: %w", to.Label, err)
	}

	return domain.RouteSegment{
		Mode:            domain.ModeBikeShare,
		Path:            leg.Path,
		DistanceMeters:  leg.DistanceMeters,
		DurationSeconds: recomputedDuration(leg.DistanceMeters, sharedBikeSpeedKmh),
		Start:           from,
		End:             to,
		Instructions:    fmt.Sprintf("Ride a shared bike to %s", to.Label),
	}, nil
}
