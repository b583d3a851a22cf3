package poi

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	overpass "github.com/serjvanilla/go-overpass"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// OverpassPOIClient issues categorized bounding-box queries against an
// Overpass endpoint.
type OverpassPOIClient struct {
	client *overpass.Client
}

func NewOverpassPOIClient(endpoint string, timeout time.Duration) *OverpassPOIClient {
	httpClient := &http.Client{Timeout: timeout}
	client := overpass.NewWithSettings(endpoint, 2, httpClient)
	return &OverpassPOIClient{client: &client}
}

type queryResult struct {
	result overpass.Result
	err    error
}

// FindCategory runs one category query over the bounding box
// "minLat,minLng,maxLat,maxLng". The query is bounded by ctx; a timed-out
// query still completes in the background and consumes provider quota.
func (c *OverpassPOIClient) FindCategory(
	ctx context.Context,
	bbox string,
	category domain.POICategory,
) ([]domain.PointOfInterest, error) {
	query, err := categoryQuery(category, bbox)
	if err != nil {
		return nil, err
	}

	done := make(chan queryResult, 1)
	go func() {
		result, err := c.client.Query(query)
		done <- queryResult{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: overpass %s query: %v", ports.ErrProviderUnavailable, category, ctx.Err())
	case qr := <-done:
		if qr.err != nil {
			return nil, fmt.Errorf("%w: overpass %s query: %v", ports.ErrProviderUnavailable, category, qr.err)
		}
		return convertNodes(qr.result, category), nil
	}
}

// categoryQuery builds the Overpass QL for one category over a bbox.
// Result sizes are capped per category to keep free-tier responses small.
func categoryQuery(category domain.POICategory, bbox string) (string, error) {
	switch category {
	case domain.POIWater:
		return fmt.Sprintf(`[out:json][timeout:10];(node["amenity"="drinking_water"](%s);node["amenity"="fountain"]["drinking_water"="yes"](%s););out body 50;`, bbox, bbox), nil
	case domain.POIRest:
		return fmt.Sprintf(`[out:json][timeout:10];(node["amenity"="bench"](%s);node["leisure"="park"]["name"](%s););out body 50;`, bbox, bbox), nil
	case domain.POIHealth:
		return fmt.Sprintf(`[out:json][timeout:10];(node["amenity"="hospital"](%s);node["amenity"="clinic"](%s);node["amenity"="pharmacy"](%s););out body 30;`, bbox, bbox, bbox), nil
	case domain.POIToilet:
		return fmt.Sprintf(`[out:json][timeout:10];(node["amenity"="toilets"]["access"!="private"](%s););out body 30;`, bbox), nil
	case domain.POILandmark:
		return fmt.Sprintf(`[out:json][timeout:10];(
			node["tourism"="museum"]["name"](%s);
			node["tourism"="attraction"]["name"](%s);
			node["historic"="monument"]["name"](%s);
			node["amenity"="theatre"]["name"](%s);
			node["amenity"="university"]["name"](%s);
			node["leisure"="stadium"]["name"](%s);
			node["shop"="mall"]["name"](%s);
		);out body 40;`, bbox, bbox, bbox, bbox, bbox, bbox, bbox), nil
	}
	return "", fmt.Errorf("unknown poi category %q", category)
}

func convertNodes(result overpass.Result, category domain.POICategory) []domain.PointOfInterest {
	pois := make([]domain.PointOfInterest, 0, len(result.Nodes))
	for _, node := range result.Nodes {
		if node == nil {
			continue
		}
		poi, ok := convertPOI(category, node.ID, node.Lat, node.Lon, node.Tags)
		if !ok {
			continue
		}
		pois = append(pois, poi)
	}

	sort.Slice(pois, func(i, j int) bool { return pois[i].ID < pois[j].ID })
	return pois
}

// convertPOI maps one element onto a PointOfInterest. Elements without a
// coordinate are dropped.
func convertPOI(
	category domain.POICategory,
	id int64,
	lat, lon float64,
	tags map[string]string,
) (domain.PointOfInterest, bool) {
	if lat == 0 && lon == 0 {
		return domain.PointOfInterest{}, false
	}

	name := tags["name"]
	if name == "" {
		name = defaultName(category, tags)
	}

	return domain.PointOfInterest{
		ID:          fmt.Sprintf("%s-%d", category, id),
		Name:        name,
		Category:    category,
		Coord:       domain.Coordinate{Lat: lat, Lon: lon},
		Description: describeTags(tags),
	}, true
}

func defaultName(category domain.POICategory, tags map[string]string) string {
	switch category {
	case domain.POIWater:
		if tags["amenity"] == "fountain" {
			return "Fountain"
		}
		return "Drinking water"
	case domain.POIRest:
		if tags["leisure"] == "park" {
			return "Park"
		}
		return "Bench"
	case domain.POIHealth:
		switch tags["amenity"] {
		case "hospital":
			return "Hospital"
		case "pharmacy":
			return "Pharmacy"
		case "clinic":
			return "Clinic"
		}
		return "Health facility"
	case domain.POIToilet:
		return "Public toilet"
	case domain.POILandmark:
		switch {
		case tags["tourism"] == "museum":
			return "Museum"
		case tags["tourism"] == "attraction":
			return "Tourist attraction"
		case tags["historic"] == "monument":
			return "Monument"
		case tags["amenity"] == "theatre":
			return "Theatre"
		case tags["amenity"] == "university":
			return "University"
		case tags["leisure"] == "stadium":
			return "Stadium"
		case tags["shop"] == "mall":
			return "Shopping mall"
		}
		return "Landmark"
	}
	return "Point of interest"
}

// describeTags condenses well-known tags into a short description line.
func describeTags(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}

	var parts []string
	if v := tags["operator"]; v != "" {
		parts = append(parts, "Operator: "+v)
	}
	if v := tags["opening_hours"]; v != "" {
		parts = append(parts, "Hours: "+v)
	}
	if tags["access"] == "yes" {
		parts = append(parts, "Public access")
	}
	if tags["wheelchair"] == "yes" {
		parts = append(parts, "Wheelchair accessible")
	}
	if tags["fee"] == "no" {
		parts = append(parts, "Free")
	}

	return strings.Join(parts, " • ")
}
