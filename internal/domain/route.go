package domain

// RouteSegment is a single-mode leg of a planned trip.
type RouteSegment struct {
	Mode            TravelMode     `json:"mode"`
	Path            []Coordinate   `json:"path"`
	DistanceMeters  float64        `json:"distance_meters"`
	DurationSeconds float64        `json:"duration_seconds"`
	Start           PlaceReference `json:"start"`
	End             PlaceReference `json:"end"`
	Instructions    string         `json:"instructions"`
}

// ComputedRoute is an end-to-end planned trip. It is immutable once
// returned: Path is the concatenation of all segment paths, the totals are
// the sums over segments, and segment order is fixed (walk → transit/bike
// → walk, or a single segment).
type ComputedRoute struct {
	TotalDistanceMeters  float64        `json:"total_distance_meters"`
	TotalDurationSeconds float64        `json:"total_duration_seconds"`
	Path                 []Coordinate   `json:"path"`
	Segments             []RouteSegment `json:"segments"`
	CostEstimate         *float64       `json:"cost_estimate,omitempty"`
	CO2AvoidedGrams      *int           `json:"co2_avoided_grams,omitempty"`
}

// AssembleRoute builds a ComputedRoute from ordered segments, deriving the
// concatenated path and the distance/duration totals.
func AssembleRoute(segments []RouteSegment) *ComputedRoute {
	var (
		path            []Coordinate
		distanceMeters  float64
		durationSeconds float64
	)

	for _, seg := range segments {
		path = append(path, seg.Path...)
		distanceMeters += seg.DistanceMeters
		durationSeconds += seg.DurationSeconds
	}

	return &ComputedRoute{
		TotalDistanceMeters:  distanceMeters,
		TotalDurationSeconds: durationSeconds,
		Path:                 path,
		Segments:             segments,
	}
}
