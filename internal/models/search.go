package models

import "time"

const (
	SearchTypeFlights = "flights"
	SearchTypeHotels  = "hotels"
)

// Passengers is the party size breakdown of a search. Total is always
// Adults + Children; the parser computes it so callers never have to.
type Passengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Total    int `json:"total"`
}

// SearchData is a normalized, validated search request. It is only ever
// constructed by ParseSearchQuery, which enforces every bound; code
// holding a SearchData may rely on the fields being well-formed.
type SearchData struct {
	SearchType          string     `json:"searchType"`
	Location            string     `json:"location"`
	Destination         string     `json:"destination,omitempty"`
	CheckIn             time.Time  `json:"checkIn"`
	CheckOut            time.Time  `json:"checkOut"`
	CheckInFlexibility  string     `json:"checkInFlexibility"`
	CheckOutFlexibility string     `json:"checkOutFlexibility"`
	Passengers          Passengers `json:"passengers"`
}

// Nights returns the stay length in whole nights.
func (s *SearchData) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}
