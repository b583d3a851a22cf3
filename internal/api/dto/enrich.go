package dto

import "trip-route-service/internal/domain"

// EnrichRequest carries the route path to enrich, as returned by the
// routes endpoint.
type EnrichRequest struct {
	Path []domain.Coordinate `json:"path"`
}

type POIResponse struct {
	POIs []domain.PointOfInterest `json:"pois"`
}
