package domain

// BikeNetwork is one bike-share system, anchored at its reference location.
type BikeNetwork struct {
	ID    string     `json:"id"`
	Coord Coordinate `json:"coord"`
}

// BikeStation is a dock in a bike-share network with live availability.
type BikeStation struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Coord          Coordinate `json:"coord"`
	BikesAvailable int        `json:"bikes_available"`
	DocksFree      int        `json:"docks_free"`
	Capacity       int        `json:"capacity"`
}
