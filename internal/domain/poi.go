package domain

// POICategory classifies a point of interest along a route.
type POICategory string

const (
	POIWater    POICategory = "water"
	POIRest     POICategory = "rest"
	POIHealth   POICategory = "health"
	POIToilet   POICategory = "toilet"
	POILandmark POICategory = "landmark"
)

// POICategories lists every category in dispatch order.
func POICategories() []POICategory {
	return []POICategory{POIWater, POIRest, POIHealth, POIToilet, POILandmark}
}

// PointOfInterest is a categorized map point near a route.
// ID is "category-sourceID" and doubles as the deduplication key.
type PointOfInterest struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    POICategory `json:"category"`
	Coord       Coordinate  `json:"coord"`
	Description string      `json:"description,omitempty"`
}
