package transit

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	overpass "github.com/serjvanilla/go-overpass"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// OverpassStopFinder queries an Overpass endpoint for transit stops and
// stations around a coordinate.
type OverpassStopFinder struct {
	client *overpass.Client
}

func NewOverpassStopFinder(endpoint string, timeout time.Duration) *OverpassStopFinder {
	httpClient := &http.Client{Timeout: timeout}
	client := overpass.NewWithSettings(endpoint, 2, httpClient)
	return &OverpassStopFinder{client: &client}
}

// NearbyStops returns bus stops and rail/subway stations within
// radiusMeters of center, classified from their tag map.
func (f *OverpassStopFinder) NearbyStops(
	ctx context.Context,
	center domain.Coordinate,
	radiusMeters int,
) ([]domain.TransitStop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		[out:json][timeout:25];
		(
			node["highway"="bus_stop"](around:%d,%f,%f);
			node["railway"="station"](around:%d,%f,%f);
			node["railway"="subway_entrance"](around:%d,%f,%f);
		);
		out body;
	`,
		radiusMeters, center.Lat, center.Lon,
		radiusMeters, center.Lat, center.Lon,
		radiusMeters, center.Lat, center.Lon,
	)

	result, err := f.client.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: overpass stop query: %v", ports.ErrProviderUnavailable, err)
	}

	stops := make([]domain.TransitStop, 0, len(result.Nodes))
	for _, node := range result.Nodes {
		if node == nil || (node.Lat == 0 && node.Lon == 0) {
			continue
		}

		mode := classifyStop(node.Tags)
		stops = append(stops, domain.TransitStop{
			ID:    node.ID,
			Mode:  mode,
			Name:  stopName(node.Tags, mode),
			Coord: domain.Coordinate{Lat: node.Lat, Lon: node.Lon},
		})
	}

	// Result nodes come from a map; sort for deterministic downstream
	// tie-breaking.
	sort.Slice(stops, func(i, j int) bool { return stops[i].ID < stops[j].ID })

	return stops, nil
}

// classifyStop maps an element's tag map onto a transit mode. Anything not
// recognizably rail-bound is treated as a bus stop.
func classifyStop(tags map[string]string) domain.TravelMode {
	switch {
	case tags["railway"] == "station" && tags["station"] == "subway":
		return domain.ModeSubway
	case tags["railway"] == "subway_entrance":
		return domain.ModeSubway
	case tags["railway"] == "station":
		return domain.ModeRail
	}
	return domain.ModeBus
}

func stopName(tags map[string]string, mode domain.TravelMode) string {
	if name := tags["name"]; name != "" {
		return name
	}

	switch mode {
	case domain.ModeSubway:
		return "Subway station"
	case domain.ModeRail:
		return "Train station"
	default:
		return "Bus stop"
	}
}
