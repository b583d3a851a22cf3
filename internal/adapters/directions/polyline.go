package directions

import (
	"fmt"

	"trip-route-service/internal/domain"
)

// decodePolyline decodes a signed-delta encoded polyline (precision 1e5).
// Each coordinate component is read 5 bits at a time, low group first, with
// bit 0x20 as the continuation flag; the zig-zag decoded value accumulates
// as a running delta and divides by 100,000.
func decodePolyline(encoded string) ([]domain.Coordinate, error) {
	var (
		coords   []domain.Coordinate
		lat, lon int64
		i        int
	)

	readComponent := func() (int64, error) {
		var result int64
		var shift uint

		for {
			if i >= len(encoded) {
				return 0, fmt.Errorf("truncated component at byte %d", i)
			}

			b := int64(encoded[i]) - 63
			i++

			if b < 0 {
				return 0, fmt.Errorf("invalid byte %q at position %d", encoded[i-1], i-1)
			}

			result |= (b & 0x1f) << shift
			shift += 5

			if b&0x20 == 0 {
				break
			}
		}

		if result&1 != 0 {
			return ^(result >> 1), nil
		}
		return result >> 1, nil
	}

	for i < len(encoded) {
		dLat, err := readComponent()
		if err != nil {
			return nil, err
		}
		dLon, err := readComponent()
		if err != nil {
			return nil, err
		}

		lat += dLat
		lon += dLon

		coords = append(coords, domain.Coordinate{
			Lat: float64(lat) / 1e5,
			Lon: float64(lon) / 1e5,
		})
	}

	return coords, nil
}
