package dto

import "trip-route-service/internal/domain"

type PlaceRequest struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type RouteRequest struct {
	Origin      PlaceRequest `json:"origin"`
	Destination PlaceRequest `json:"destination"`
	Strategy    string       `json:"strategy"`
}

type RouteResponse struct {
	Strategy string                `json:"strategy"`
	Route    *domain.ComputedRoute `json:"route"`
}
