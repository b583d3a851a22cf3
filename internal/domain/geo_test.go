package domain

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	// One degree of longitude on the equator is ~111.19 km for R=6371.
	a := Coordinate{Lat: 0, Lon: 0}
	b := Coordinate{Lat: 0, Lon: 1}

	got := HaversineKm(a, b)
	want := 111.195

	if math.Abs(got-want) > 0.01 {
		t.Fatalf("HaversineKm = %.4f, want %.3f±0.01", got, want)
	}

	if d := HaversineKm(a, a); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestPathLengthKm(t *testing.T) {
	path := []Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.5},
		{Lat: 0, Lon: 1},
	}

	got := PathLengthKm(path)
	direct := HaversineKm(path[0], path[2])

	if math.Abs(got-direct) > 0.001 {
		t.Fatalf("collinear path length = %.5f, direct = %.5f", got, direct)
	}

	if l := PathLengthKm(nil); l != 0 {
		t.Fatalf("empty path length = %v, want 0", l)
	}
}
