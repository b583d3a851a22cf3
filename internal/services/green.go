package services

import (
	"context"
	"fmt"
	"math"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

const (
	shortTripKm         = 1
	bikeNetworkRadiusKm = 50
	bikeStationRadiusKm = 2
	// Displaced car emissions per kilometer not driven.
	co2GramsPerKm = 120
)

// greenRoute prefers walking for short trips and shared bikes otherwise,
// degrading to walking whenever no network, bikes, or docks are usable.
// Every green result carries the CO2-avoided annotation.
func (p *Planner) greenRoute(
	ctx context.Context,
	origin, destination domain.PlaceReference,
) (*domain.ComputedRoute, error) {
	crowKm := domain.HaversineKm(origin.Coord, destination.Coord)

	var attempts []error

	walkOnly := func() (*domain.ComputedRoute, error) {
		route, err := p.walkingFallback(ctx, origin, destination, attempts)
		if err != nil {
			return nil, err
		}
		// The walking annotation uses the great-circle distance, not the
		// routed distance.
		annotateCO2(route, crowKm)
		return route, nil
	}

	if crowKm < shortTripKm {
		return walkOnly()
	}

	networks, err := p.Bikes.Networks(ctx)
	if err != nil {
		attempts = append(attempts, fmt.Errorf("bike networks: %w", err))
		return walkOnly()
	}

	network, ok := nearest(origin.Coord, networks, bikeNetworkRadiusKm,
		func(n domain.BikeNetwork) domain.Coordinate { return n.Coord },
		func(domain.BikeNetwork) bool { return true },
	)
	if !ok {
		attempts = append(attempts, fmt.Errorf("no bike network within %dkm: %w", bikeNetworkRadiusKm, ports.ErrStationUnavailable))
		return walkOnly()
	}

	stations, err := p.Bikes.Stations(ctx, network.ID)
	if err != nil {
		attempts = append(attempts, fmt.Errorf("stations for network %q: %w", network.ID, err))
		return walkOnly()
	}

	pickup, ok := nearest(origin.Coord, stations, bikeStationRadiusKm,
		func(s domain.BikeStation) domain.Coordinate { return s.Coord },
		func(s domain.BikeStation) bool { return s.BikesAvailable > 0 },
	)
	if !ok {
		attempts = append(attempts, fmt.Errorf("pickup near origin: %w", ports.ErrStationUnavailable))
		return walkOnly()
	}

	dropoff, ok := nearest(destination.Coord, stations, bikeStationRadiusKm,
		func(s domain.BikeStation) domain.Coordinate { return s.Coord },
		func(s domain.BikeStation) bool { return s.DocksFree > 0 },
	)
	if !ok {
		attempts = append(attempts, fmt.Errorf("dropoff near destination: %w", ports.ErrStationUnavailable))
		return walkOnly()
	}

	segments, err := gatherSegments(
		func() (domain.RouteSegment, error) {
			return p.walkSegment(ctx, origin, stationPlace(pickup))
		},
		func() (domain.RouteSegment, error) {
			return p.bikeSegment(ctx, stationPlace(pickup), stationPlace(dropoff))
		},
		func() (domain.RouteSegment, error) {
			return p.walkSegment(ctx, stationPlace(dropoff), destination)
		},
	)
	if err != nil {
		attempts = append(attempts, fmt.Errorf("bike-share segments: %w", err))
		return walkOnly()
	}

	route := domain.AssembleRoute(segments)
	annotateCO2(route, route.TotalDistanceMeters/1000)
	return route, nil
}

func annotateCO2(route *domain.ComputedRoute, km float64) {
	grams := int(math.Round(km * co2GramsPerKm))
	route.CO2AvoidedGrams = &grams
}

func stationPlace(station domain.BikeStation) domain.PlaceReference {
	return domain.PlaceReference{Label: station.Name, Coord: station.Coord}
}
