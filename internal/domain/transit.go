package domain

// TransitStop is a public-transport boarding point. Mode is restricted to
// ModeBus, ModeSubway, or ModeRail.
type TransitStop struct {
	ID    int64      `json:"id"`
	Mode  TravelMode `json:"mode"`
	Name  string     `json:"name"`
	Coord Coordinate `json:"coord"`
}
