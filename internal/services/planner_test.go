package services

import (
	"context"
	"errors"
	"testing"

	"trip-route-service/internal/adapters/directions"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

type stubStops struct {
	stops []domain.TransitStop
	err   error
}

func (s stubStops) NearbyStops(_ context.Context, _ domain.Coordinate, _ int) ([]domain.TransitStop, error) {
	return s.stops, s.err
}

type stubBikes struct {
	networks []domain.BikeNetwork
	stations []domain.BikeStation
	err      error
}

func (s stubBikes) Networks(_ context.Context) ([]domain.BikeNetwork, error) {
	return s.networks, s.err
}

func (s stubBikes) Stations(_ context.Context, _ string) ([]domain.BikeStation, error) {
	return s.stations, s.err
}

type failingDirections struct{}

func (failingDirections) Route(_ context.Context, _ ports.Profile, _, _ domain.Coordinate) (ports.Leg, error) {
	return ports.Leg{}, ports.ErrProviderUnavailable
}

func place(label string, lat, lon float64) domain.PlaceReference {
	return domain.PlaceReference{Label: label, Coord: domain.Coordinate{Lat: lat, Lon: lon}}
}

func TestParseStrategy(t *testing.T) {
	if s, err := ParseStrategy(""); err != nil || s != StrategyFast {
		t.Fatalf("ParseStrategy(\"\") = %q, %v; want fast", s, err)
	}
	if s, err := ParseStrategy("green"); err != nil || s != StrategyGreen {
		t.Fatalf("ParseStrategy(green) = %q, %v", s, err)
	}
	if _, err := ParseStrategy("teleport"); err == nil {
		t.Fatal("ParseStrategy(teleport) accepted an unknown strategy")
	}
}

func TestFastRoutePropagatesProviderError(t *testing.T) {
	p := &Planner{Directions: failingDirections{}, Stops: stubStops{}, Bikes: stubBikes{}}

	_, err := p.ComputeRoute(context.Background(), place("a", 0, 0), place("b", 0, 1), StrategyFast)
	if !errors.Is(err, ports.ErrProviderUnavailable) {
		t.Fatalf("fast route error = %v, want ErrProviderUnavailable", err)
	}
}

func TestGreenShortTripWalks(t *testing.T) {
	origin := place("home", 0, 0)
	dest := place("cafe", 0, 0.0045) // ~0.5km at the equator

	mock := directions.NewMockDirectionsProvider([]directions.MockLeg{
		{Profile: ports.ProfileFoot, From: origin.Coord, To: dest.Coord, Meters: 500, Seconds: 999},
	})
	p := &Planner{Directions: mock, Stops: stubStops{}, Bikes: stubBikes{}}

	route, err := p.ComputeRoute(context.Background(), origin, dest, StrategyGreen)
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}

	if len(route.Segments) != 1 || route.Segments[0].Mode != domain.ModeWalk {
		t.Fatalf("segments = %+v, want a single walk", route.Segments)
	}
	if route.Segments[0].DurationSeconds != 360 {
		t.Fatalf("walk duration = %v, want 360 (500m at 5km/h)", route.Segments[0].DurationSeconds)
	}
	if route.CO2AvoidedGrams == nil || *route.CO2AvoidedGrams != 60 {
		t.Fatalf("co2 = %v, want 60g for a 0.5km trip", route.CO2AvoidedGrams)
	}
}

func TestGreenFallsBackWhenNoBikesAvailable(t *testing.T) {
	origin := place("home", 0, 0)
	dest := place("office", 0, 0.0449666) // ~5km at the equator

	mock := directions.NewMockDirectionsProvider([]directions.MockLeg{
		{Profile: ports.ProfileFoot, From: origin.Coord, To: dest.Coord, Meters: 5100, Seconds: 999},
	})
	bikes := stubBikes{
		networks: []domain.BikeNetwork{{ID: "citybike", Coord: origin.Coord}},
		stations: []domain.BikeStation{
			{ID: "s1", Name: "Empty Dock", Coord: domain.Coordinate{Lat: 0, Lon: 0.001}, BikesAvailable: 0, DocksFree: 8},
		},
	}
	p := &Planner{Directions: mock, Stops: stubStops{}, Bikes: bikes}

	route, err := p.ComputeRoute(context.Background(), origin, dest, StrategyGreen)
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}

	if len(route.Segments) != 1 || route.Segments[0].Mode != domain.ModeWalk {
		t.Fatalf("segments = %+v, want a single walk fallback", route.Segments)
	}
	if route.CO2AvoidedGrams == nil || *route.CO2AvoidedGrams != 600 {
		t.Fatalf("co2 = %v, want 600g from the great-circle distance", route.CO2AvoidedGrams)
	}
}

func TestGreenBikeShareRoute(t *testing.T) {
	origin := place("home", 0, 0)
	dest := place("office", 0, 0.0449666)
	pickup := domain.Coordinate{Lat: 0, Lon: 0.0005}
	dropoff := domain.Coordinate{Lat: 0, Lon: 0.0445}

	mock := directions.NewMockDirectionsProvider([]directions.MockLeg{
		{Profile: ports.ProfileFoot, From: origin.Coord, To: pickup, Meters: 55, Seconds: 999},
		{Profile: ports.ProfileBike, From: pickup, To: dropoff, Meters: 4900, Seconds: 999},
		{Profile: ports.ProfileFoot, From: dropoff, To: dest.Coord, Meters: 52, Seconds: 999},
	})
	bikes := stubBikes{
		networks: []domain.BikeNetwork{{ID: "citybike", Coord: origin.Coord}},
		stations: []domain.BikeStation{
			{ID: "s1", Name: "Market Sq", Coord: pickup, BikesAvailable: 3, DocksFree: 0},
			{ID: "s2", Name: "Harbor", Coord: dropoff, BikesAvailable: 0, DocksFree: 2},
		},
	}
	p := &Planner{Directions: mock, Stops: stubStops{}, Bikes: bikes}

	route, err := p.ComputeRoute(context.Background(), origin, dest, StrategyGreen)
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}

	if len(route.Segments) != 3 {
		t.Fatalf("got %d segments, want walk/bike/walk", len(route.Segments))
	}
	modes := []domain.TravelMode{route.Segments[0].Mode, route.Segments[1].Mode, route.Segments[2].Mode}
	want := []domain.TravelMode{domain.ModeWalk, domain.ModeBikeShare, domain.ModeWalk}
	for i := range want {
		if modes[i] != want[i] {
			t.Fatalf("segment modes = %v, want %v", modes, want)
		}
	}

	if route.Segments[1].DurationSeconds != 1357 {
		t.Fatalf("bike duration = %v, want 1357 (4900m at 13km/h)", route.Segments[1].DurationSeconds)
	}
	if route.TotalDistanceMeters != 55+4900+52 {
		t.Fatalf("total distance = %v, want segment sum", route.TotalDistanceMeters)
	}
	if route.CO2AvoidedGrams == nil || *route.CO2AvoidedGrams != 601 {
		t.Fatalf("co2 = %v, want 601g from the routed distance", route.CO2AvoidedGrams)
	}
}

func TestEconomicWalksWhenNoStops(t *testing.T) {
	origin := place("home", 0, 0)
	dest := place("museum", 0, 0.01)

	mock := directions.NewMockDirectionsProvider([]directions.MockLeg{
		{Profile: ports.ProfileFoot, From: origin.Coord, To: dest.Coord, Meters: 1200, Seconds: 999},
	})
	p := &Planner{Directions: mock, Stops: stubStops{}, Bikes: stubBikes{}}

	route, err := p.ComputeRoute(context.Background(), origin, dest, StrategyEconomic)
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}

	if len(route.Segments) != 1 || route.Segments[0].Mode != domain.ModeWalk {
		t.Fatalf("segments = %+v, want a single walk", route.Segments)
	}
	if route.CostEstimate == nil || *route.CostEstimate != 0 {
		t.Fatalf("cost = %v, want free walking route", route.CostEstimate)
	}
}

func TestEconomicMultimodalRoute(t *testing.T) {
	origin := place("home", 0, 0)
	dest := place("stadium", 0, 0.041)
	board := domain.TransitStop{ID: 1, Mode: domain.ModeBus, Name: "Main St", Coord: domain.Coordinate{Lat: 0, Lon: 0.001}}
	alight := domain.TransitStop{ID: 2, Mode: domain.ModeBus, Name: "Stadium Gate", Coord: domain.Coordinate{Lat: 0, Lon: 0.04}}

	mock := directions.NewMockDirectionsProvider([]directions.MockLeg{
		{Profile: ports.ProfileFoot, From: origin.Coord, To: board.Coord, Meters: 110, Seconds: 999},
		{Profile: ports.ProfileDriving, From: board.Coord, To: alight.Coord, Meters: 4400, Seconds: 999},
		{Profile: ports.ProfileFoot, From: alight.Coord, To: dest.Coord, Meters: 120, Seconds: 999},
	})
	p := &Planner{
		Directions: mock,
		Stops:      stubStops{stops: []domain.TransitStop{board, alight}},
		Bikes:      stubBikes{},
	}

	route, err := p.ComputeRoute(context.Background(), origin, dest, StrategyEconomic)
	if err != nil {
		t.Fatalf("ComputeRoute: %v", err)
	}

	if len(route.Segments) != 3 {
		t.Fatalf("got %d segments, want walk/transit/walk", len(route.Segments))
	}
	if route.Segments[1].Mode != domain.ModeBus {
		t.Fatalf("middle segment mode = %q, want bus", route.Segments[1].Mode)
	}
	if route.Segments[0].DurationSeconds != 79 {
		t.Fatalf("first walk duration = %v, want 79 (110m at 5km/h)", route.Segments[0].DurationSeconds)
	}
	if route.Segments[1].DurationSeconds != 792 {
		t.Fatalf("bus duration = %v, want 792 (4400m at 20km/h)", route.Segments[1].DurationSeconds)
	}
	if route.TotalDistanceMeters != 110+4400+120 {
		t.Fatalf("total distance = %v, want segment sum", route.TotalDistanceMeters)
	}
	if route.TotalDurationSeconds != 79+792+86 {
		t.Fatalf("total duration = %v, want recomputed sum", route.TotalDurationSeconds)
	}
	if route.CostEstimate == nil || *route.CostEstimate != 4.50 {
		t.Fatalf("cost = %v, want flat 4.50 fare", route.CostEstimate)
	}
}

func TestEconomicExhaustedFallbacks(t *testing.T) {
	p := &Planner{
		Directions: failingDirections{},
		Stops:      stubStops{err: ports.ErrProviderUnavailable},
		Bikes:      stubBikes{},
	}

	_, err := p.ComputeRoute(context.Background(), place("a", 0, 0), place("b", 0, 1), StrategyEconomic)
	if !errors.Is(err, ports.ErrRouteUnavailable) {
		t.Fatalf("error = %v, want ErrRouteUnavailable once walking also fails", err)
	}
}
