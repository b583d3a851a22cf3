package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

type RouteHandler struct {
	Planner *services.Planner
}

// Compute plans a route between two places under the requested strategy.
// Planner fallbacks run inside ComputeRoute; this handler only translates
// the terminal outcome to a status code.
func (h *RouteHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	origin, err := toPlace(req.Origin, "origin")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	destination, err := toPlace(req.Destination, "destination")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	strategy, err := services.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	route, err := h.Planner.ComputeRoute(r.Context(), origin, destination, strategy)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrRouteUnavailable), errors.Is(err, ports.ErrNoRouteFound):
			writeError(w, r, http.StatusNotFound, "no route found")
		case errors.Is(err, ports.ErrProviderUnavailable):
			writeError(w, r, http.StatusBadGateway, "routing provider unavailable")
		default:
			log.Printf("compute route failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		Strategy: string(strategy),
		Route:    route,
	})
}

func toPlace(p dto.PlaceRequest, field string) (domain.PlaceReference, error) {
	if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
		return domain.PlaceReference{}, errors.New(field + " coordinates out of range")
	}

	label := strings.TrimSpace(p.Label)
	if label == "" {
		label = field
	}

	return domain.PlaceReference{
		Label: label,
		Coord: domain.Coordinate{Lat: p.Lat, Lon: p.Lon},
	}, nil
}
