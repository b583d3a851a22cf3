package transit

import (
	"testing"

	"trip-route-service/internal/domain"
)

func TestClassifyStop(t *testing.T) {
	cases := []struct {
		name string
		tags map[string]string
		want domain.TravelMode
	}{
		{"subway station", map[string]string{"railway": "station", "station": "subway"}, domain.ModeSubway},
		{"subway entrance", map[string]string{"railway": "subway_entrance"}, domain.ModeSubway},
		{"rail station", map[string]string{"railway": "station"}, domain.ModeRail},
		{"bus stop", map[string]string{"highway": "bus_stop"}, domain.ModeBus},
		{"untagged", map[string]string{}, domain.ModeBus},
	}

	for _, tc := range cases {
		if got := classifyStop(tc.tags); got != tc.want {
			t.Errorf("%s: classifyStop = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestStopName(t *testing.T) {
	if got := stopName(map[string]string{"name": "Sé"}, domain.ModeSubway); got != "Sé" {
		t.Fatalf("named stop = %q, want Sé", got)
	}
	if got := stopName(nil, domain.ModeSubway); got != "Subway station" {
		t.Fatalf("default subway name = %q", got)
	}
	if got := stopName(nil, domain.ModeBus); got != "Bus stop" {
		t.Fatalf("default bus name = %q", got)
	}
}
