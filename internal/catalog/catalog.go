// Package catalog holds the fixed tables the synthesizers draw from:
// hotels per city, searchable locations, and the airline set. A Catalog
// is constructed explicitly and read-only afterwards; nothing in this
// package mutates shared state.
package catalog

import (
	"strings"

	"github.com/dharmasatrya/travelbook/internal/describe"
	"github.com/dharmasatrya/travelbook/internal/models"
)

type Coordinates = models.Coordinates

// Record is the static part of a hotel entry. Commercial fields (id,
// price, review count) are attached by the synthesizer per search.
type Record struct {
	Name        string
	Location    string
	Address     string
	Stars       int
	Rating      float64
	Image       string
	Images      []string
	Amenities   []string
	Coordinates Coordinates
	Description string
}

// Location is a searchable origin or destination.
type Location struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

var locations = []Location{
	{Name: "New York, NY", Code: "NYC"},
	{Name: "Los Angeles, CA", Code: "LAX"},
	{Name: "Chicago, IL", Code: "ORD"},
	{Name: "San Francisco, CA", Code: "SFO"},
	{Name: "Miami, FL", Code: "MIA"},
	{Name: "Boston, MA", Code: "BOS"},
}

var airlines = []string{
	"United Airlines",
	"Delta Air Lines",
	"American Airlines",
	"Southwest Airlines",
	"JetBlue Airways",
}

// Catalog is an injected read-only table set.
type Catalog struct {
	hotels map[string][]Record
}

// New builds the catalog and pre-generates a description for every
// record that does not already carry one, so callers never need a
// network round trip to show hotel prose.
func New() *Catalog {
	hotels := make(map[string][]Record, len(hotelRecords))
	for city, records := range hotelRecords {
		enriched := make([]Record, len(records))
		for i, r := range records {
			if r.Description == "" {
				r.Description = describe.Generate(describe.HotelInfo{
					Name:     r.Name,
					Location: r.Location,
					Address:  r.Address,
					Stars:    r.Stars,
				})
			}
			enriched[i] = r
		}
		hotels[city] = enriched
	}
	return &Catalog{hotels: hotels}
}

// Hotels returns the fixed hotel records for a city, in catalog order.
// Unknown cities yield nil.
func (c *Catalog) Hotels(city string) []Record {
	return c.hotels[city]
}

// HotelByID resolves a city hotel by its 1-based catalog position.
func (c *Catalog) HotelByID(city string, id int) (Record, bool) {
	records := c.hotels[city]
	if id < 1 || id > len(records) {
		return Record{}, false
	}
	return records[id-1], true
}

// CityFromLocation extracts the catalog key from a free-form location
// string: the leading comma-delimited token, trimmed.
func CityFromLocation(location string) string {
	city, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(city)
}

func (c *Catalog) Locations() []Location {
	return locations
}

func (c *Catalog) Airlines() []string {
	return airlines
}
