package bikeshare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// CityBikesDirectory implements BikeShareDirectory against a CityBikes-style
// API: one list-networks call and one per-network station call.
type CityBikesDirectory struct {
	session *http.Client
	baseURL string
}

// NewCityBikesDirectory builds a directory client for baseURL (e.g.
// "https://api.citybik.es/v2").
func NewCityBikesDirectory(baseURL string) *CityBikesDirectory {
	return &CityBikesDirectory{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

type networksResponse struct {
	Networks []struct {
		ID       string `json:"id"`
		Location struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
	} `json:"networks"`
}

type networkResponse struct {
	Network struct {
		Stations []struct {
			ID         string  `json:"id"`
			Name       string  `json:"name"`
			Latitude   float64 `json:"latitude"`
			Longitude  float64 `json:"longitude"`
			FreeBikes  int     `json:"free_bikes"`
			EmptySlots int     `json:"empty_slots"`
		} `json:"stations"`
	} `json:"network"`
}

// Networks lists every bike-share network with its reference coordinate.
func (d *CityBikesDirectory) Networks(ctx context.Context) (_ []domain.BikeNetwork, err error) {
	defer obs.Time(ctx, "citybikes.Networks")(&err)

	var decoded networksResponse
	if err := d.getJSON(ctx, d.baseURL+"/networks", &decoded); err != nil {
		return nil, err
	}

	networks := make([]domain.BikeNetwork, 0, len(decoded.Networks))
	for _, n := range decoded.Networks {
		networks = append(networks, domain.BikeNetwork{
			ID:    n.ID,
			Coord: domain.Coordinate{Lat: n.Location.Latitude, Lon: n.Location.Longitude},
		})
	}

	return networks, nil
}

// Stations returns live availability for one network.
func (d *CityBikesDirectory) Stations(ctx context.Context, networkID string) (_ []domain.BikeStation, err error) {
	defer obs.Time(ctx, "citybikes.Stations")(&err)

	var decoded networkResponse
	if err := d.getJSON(ctx, d.baseURL+"/networks/"+networkID, &decoded); err != nil {
		return nil, err
	}

	stations := make([]domain.BikeStation, 0, len(decoded.Network.Stations))
	for _, s := range decoded.Network.Stations {
		stations = append(stations, domain.BikeStation{
			ID:             s.ID,
			Name:           s.Name,
			Coord:          domain.Coordinate{Lat: s.Latitude, Lon: s.Longitude},
			BikesAvailable: s.FreeBikes,
			DocksFree:      s.EmptySlots,
			Capacity:       s.FreeBikes + s.EmptySlots,
		})
	}

	return stations, nil
}

func (d *CityBikesDirectory) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.session.Do(req)
	if err != nil {
		return fmt.Errorf("%w: citybikes: %v", ports.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: citybikes status %d", ports.ErrProviderUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode citybikes response: %v", ports.ErrProviderUnavailable, err)
	}

	return nil
}
