package domain

// Immutable geographic coordinate (latitude, longitude) in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PlaceReference is a named anchor on the map: an origin, a destination,
// a transit stop, or a bike station.
type PlaceReference struct {
	Label string     `json:"label"`
	Coord Coordinate `json:"coord"`
}
