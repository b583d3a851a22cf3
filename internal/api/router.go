package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"trip-route-service/internal/api/handlers"
	"trip-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	planner *services.Planner,
	elevation *services.ElevationEnricher,
	pois *services.POIEnricher,
) http.Handler {
	r := mux.NewRouter()

	routeHandler := &handlers.RouteHandler{Planner: planner}
	enrichHandler := &handlers.EnrichHandler{Elevation: elevation, POIs: pois}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/routes", routeHandler.Compute).Methods(http.MethodPost)
	r.HandleFunc("/enrich/elevation", enrichHandler.ElevationProfile).Methods(http.MethodPost)
	r.HandleFunc("/enrich/poi", enrichHandler.PointsOfInterest).Methods(http.MethodPost)

	return requestMiddleware(r)
}
