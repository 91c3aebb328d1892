package models

// Room is a per-hotel offer. Rooms are derived deterministically from
// the hotel id: the same hotel always returns the same rooms with the
// same availability numbers.
type Room struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Images         []string `json:"images"`
	Capacity       string   `json:"capacity"`
	BedConfig      string   `json:"bedConfig"`
	BedCount       int      `json:"bedCount"`
	Features       []string `json:"features"`
	PricePerNight  int      `json:"pricePerNight"`
	PriceFormatted string   `json:"priceFormatted,omitempty"`
	OriginalPrice  int      `json:"originalPrice,omitempty"`
	Discount       int      `json:"discount,omitempty"`
	Availability   int      `json:"availability"`
}
