package catalog

import "testing"

var cities = []string{"New York", "Los Angeles", "Chicago", "San Francisco", "Miami", "Boston"}

func TestNew_AllCitiesPresent(t *testing.T) {
	c := New()
	for _, city := range cities {
		if len(c.Hotels(city)) == 0 {
			t.Errorf("no hotels for %s", city)
		}
	}
}

func TestHotels_UnknownCity(t *testing.T) {
	c := New()
	if got := c.Hotels("Nowhereville"); got != nil {
		t.Errorf("expected nil for unknown city, got %d records", len(got))
	}
}

func TestHotels_RecordBounds(t *testing.T) {
	c := New()
	for _, city := range cities {
		for _, r := range c.Hotels(city) {
			if r.Stars < 3 || r.Stars > 5 {
				t.Errorf("%s: stars %d outside 3-5", r.Name, r.Stars)
			}
			if r.Rating < 4.0 || r.Rating > 4.7 {
				t.Errorf("%s: rating %.1f outside 4.0-4.7", r.Name, r.Rating)
			}
			if r.Location != city {
				t.Errorf("%s: location %q, want %q", r.Name, r.Location, city)
			}
			if r.Description == "" {
				t.Errorf("%s: no description generated", r.Name)
			}
		}
	}
}

func TestHotelByID(t *testing.T) {
	c := New()
	records := c.Hotels("New York")

	first, ok := c.HotelByID("New York", 1)
	if !ok || first.Name != records[0].Name {
		t.Errorf("HotelByID(1) = %q, want %q", first.Name, records[0].Name)
	}

	if _, ok := c.HotelByID("New York", 0); ok {
		t.Error("id 0 should not resolve")
	}
	if _, ok := c.HotelByID("New York", len(records)+1); ok {
		t.Error("out-of-range id should not resolve")
	}
	if _, ok := c.HotelByID("Nowhereville", 1); ok {
		t.Error("unknown city should not resolve")
	}
}

func TestCityFromLocation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"New York, NY", "New York"},
		{"Chicago", "Chicago"},
		{"  Miami , FL", "Miami"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CityFromLocation(tt.in); got != tt.want {
			t.Errorf("CityFromLocation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocationsAndAirlines(t *testing.T) {
	c := New()
	if len(c.Locations()) != 6 {
		t.Errorf("got %d locations, want 6", len(c.Locations()))
	}
	if len(c.Airlines()) != 5 {
		t.Errorf("got %d airlines, want 5", len(c.Airlines()))
	}
}
