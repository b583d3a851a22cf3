package poi

import (
	"strings"
	"testing"

	"trip-route-service/internal/domain"
)

func TestCategoryQueryCoversAllCategories(t *testing.T) {
	bbox := "-23.56,-46.66,-23.54,-46.64"

	for _, cat := range domain.POICategories() {
		q, err := categoryQuery(cat, bbox)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", cat, err)
		}
		if !strings.Contains(q, bbox) {
			t.Fatalf("%s: query does not scope to bbox: %s", cat, q)
		}
		if !strings.Contains(q, "[timeout:10]") {
			t.Fatalf("%s: query missing timeout", cat)
		}
	}

	if _, err := categoryQuery(domain.POICategory("bogus"), bbox); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestConvertPOI(t *testing.T) {
	poi, ok := convertPOI(domain.POIWater, 42, -23.55, -46.63, map[string]string{
		"amenity":       "drinking_water",
		"operator":      "City",
		"opening_hours": "24/7",
		"fee":           "no",
	})
	if !ok {
		t.Fatal("expected conversion to succeed")
	}

	if poi.ID != "water-42" {
		t.Fatalf("ID = %q, want water-42", poi.ID)
	}
	if poi.Name != "Drinking water" {
		t.Fatalf("Name = %q, want default drinking water name", poi.Name)
	}
	if poi.Description != "Operator: City • Hours: 24/7 • Free" {
		t.Fatalf("Description = %q", poi.Description)
	}

	// Elements lacking a coordinate are dropped.
	if _, ok := convertPOI(domain.POIRest, 1, 0, 0, nil); ok {
		t.Fatal("expected zero-coordinate element to be dropped")
	}
}

func TestConvertPOINamedElement(t *testing.T) {
	poi, ok := convertPOI(domain.POILandmark, 7, 1, 2, map[string]string{
		"name":    "Museu do Ipiranga",
		"tourism": "museum",
	})
	if !ok {
		t.Fatal("expected conversion to succeed")
	}
	if poi.Name != "Museu do Ipiranga" {
		t.Fatalf("Name = %q, want tag name to win over default", poi.Name)
	}
	if poi.Category != domain.POILandmark {
		t.Fatalf("Category = %q", poi.Category)
	}
}
