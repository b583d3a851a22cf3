package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Contract for categorized bounding-box queries against a spatial
// point-data service. The bounding box is "minLat,minLng,maxLat,maxLng".
type POIProvider interface {
	FindCategory(ctx context.Context, bbox string, category domain.POICategory) ([]domain.PointOfInterest, error)
}
