package domain

// TravelMode is the closed set of modes a route segment can use.
// Consumers (speed tables, instructions, display) switch exhaustively
// over these values so new modes fail loudly at every call site.
type TravelMode string

const (
	ModeCar       TravelMode = "car"
	ModeWalk      TravelMode = "walk"
	ModeBike      TravelMode = "bike"
	ModeBikeShare TravelMode = "bike_share"
	ModeBus       TravelMode = "bus"
	ModeSubway    TravelMode = "subway"
	ModeRail      TravelMode = "rail"
)

// Valid reports whether m is one of the closed enum values.
func Valid(m TravelMode) bool {
	switch m {
	case ModeCar, ModeWalk, ModeBike, ModeBikeShare, ModeBus, ModeSubway, ModeRail:
		return true
	}
	return false
}
