package bikeshare

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"trip-route-service/internal/ports"
)

func TestCityBikesDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/networks":
			w.Write([]byte(`{"networks": [
				{"id": "bikesampa", "location": {"latitude": -23.55, "longitude": -46.63}},
				{"id": "bixi", "location": {"latitude": 45.5, "longitude": -73.56}}
			]}`))
		case "/networks/bikesampa":
			w.Write([]byte(`{"network": {"stations": [
				{"id": "s1", "name": "Paulista", "latitude": -23.56, "longitude": -46.65, "free_bikes": 3, "empty_slots": 7}
			]}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	d := NewCityBikesDirectory(srv.URL)

	networks, err := d.Networks(context.Background())
	if err != nil {
		t.Fatalf("Networks: unexpected error: %v", err)
	}
	if len(networks) != 2 {
		t.Fatalf("got %d networks, want 2", len(networks))
	}
	if networks[0].ID != "bikesampa" || networks[0].Coord.Lat != -23.55 {
		t.Fatalf("networks[0] = %+v", networks[0])
	}

	stations, err := d.Stations(context.Background(), "bikesampa")
	if err != nil {
		t.Fatalf("Stations: unexpected error: %v", err)
	}
	if len(stations) != 1 {
		t.Fatalf("got %d stations, want 1", len(stations))
	}

	s := stations[0]
	if s.BikesAvailable != 3 || s.DocksFree != 7 || s.Capacity != 10 {
		t.Fatalf("station availability = %+v, want bikes=3 docks=7 capacity=10", s)
	}
}

func TestCityBikesDirectoryHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	d := NewCityBikesDirectory(srv.URL)

	if _, err := d.Networks(context.Background()); !errors.Is(err, ports.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}
