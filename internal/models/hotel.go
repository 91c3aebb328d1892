package models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Hotel is a catalog entry enriched with synthesized commercial fields.
// The static part comes straight from the catalog; ID, PricePerNight and
// ReviewCount are filled in per search. ID is the 1-based position of
// the entry in its city's catalog slice, so the same city always yields
// the same ids in the same order.
type Hotel struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Location       string      `json:"location"`
	Address        string      `json:"address"`
	Stars          int         `json:"stars"`
	Rating         float64     `json:"rating"`
	ReviewCount    int         `json:"reviewCount"`
	PricePerNight  int         `json:"pricePerNight"`
	PriceFormatted string      `json:"priceFormatted,omitempty"`
	TotalPrice     int         `json:"totalPrice"`
	TotalFormatted string      `json:"totalFormatted,omitempty"`
	Image          string      `json:"image"`
	Images         []string    `json:"images"`
	Amenities      []string    `json:"amenities"`
	Coordinates    Coordinates `json:"coordinates"`
	Description    string      `json:"description,omitempty"`
}
