package domain

// ElevationPoint is one sampled elevation along a path.
type ElevationPoint struct {
	Coord           Coordinate `json:"coord"`
	ElevationMeters float64    `json:"elevation_meters"`
}

// ElevationProfile summarizes the elevation of a route path.
// MinMeters ≤ every point ≤ MaxMeters; GainMeters and LossMeters are
// non-negative; TotalDistanceKm covers the original, non-resampled path.
type ElevationProfile struct {
	Points          []ElevationPoint `json:"points"`
	MinMeters       float64          `json:"elevation_min"`
	MaxMeters       float64          `json:"elevation_max"`
	GainMeters      float64          `json:"gain_meters"`
	LossMeters      float64          `json:"loss_meters"`
	TotalDistanceKm float64          `json:"total_distance_km"`
}
