package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/services"
)

type EnrichHandler struct {
	Elevation *services.ElevationEnricher
	POIs      *services.POIEnricher
}

// ElevationProfile returns the elevation summary of a route path.
// Enrichment is best effort, so degraded lookups still answer 200 with an
// empty profile.
func (h *EnrichHandler) ElevationProfile(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePath(w, r)
	if !ok {
		return
	}

	profile := h.Elevation.Profile(r.Context(), req.Path)
	writeJSON(w, r, http.StatusOK, profile)
}

// PointsOfInterest returns categorized map points near a route path.
// Skipped or failed lookups answer 200 with an empty list.
func (h *EnrichHandler) PointsOfInterest(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePath(w, r)
	if !ok {
		return
	}

	pois := h.POIs.Enrich(r.Context(), req.Path)
	if pois == nil {
		// Keep the response field a JSON array, not null.
		pois = []domain.PointOfInterest{}
	}
	writeJSON(w, r, http.StatusOK, dto.POIResponse{POIs: pois})
}

func decodePath(w http.ResponseWriter, r *http.Request) (dto.EnrichRequest, bool) {
	var req dto.EnrichRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return dto.EnrichRequest{}, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return dto.EnrichRequest{}, false
	}

	return req, true
}
