package elevation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

func TestOpenElevationClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Locations []struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"locations"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Locations) != 2 {
			t.Errorf("got %d locations, want 2", len(req.Locations))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"latitude": 0, "longitude": 0, "elevation": 720},
			{"latitude": 0, "longitude": 1, "elevation": 815}
		]}`))
	}))
	defer srv.Close()

	c := NewOpenElevationClient(srv.URL)

	got, err := c.Elevations(context.Background(), []domain.Coordinate{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 720 || got[1] != 815 {
		t.Fatalf("elevations = %v, want [720 815]", got)
	}
}

func TestOpenElevationClientLengthMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"elevation": 10}]}`))
	}))
	defer srv.Close()

	c := NewOpenElevationClient(srv.URL)

	_, err := c.Elevations(context.Background(), []domain.Coordinate{{}, {Lat: 1}})
	if !errors.Is(err, ports.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestOpenElevationClientEmptyInput(t *testing.T) {
	c := NewOpenElevationClient("http://unused")

	got, err := c.Elevations(context.Background(), nil)
	if err != nil || got != nil {
		t.Fatalf("empty input = (%v, %v), want (nil, nil)", got, err)
	}
}
