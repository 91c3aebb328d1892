package models

import "time"

const (
	BookingTypeFlight = "flight"
	BookingTypeHotel  = "hotel"
)

// Booking is a finalized selection tied to its originating search.
// Exactly one of Flight or Hotel is set depending on Type; Room only
// accompanies a hotel booking.
type Booking struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	BookingDate time.Time   `json:"bookingDate"`
	Flight      *Flight     `json:"flight,omitempty"`
	Hotel       *Hotel      `json:"hotel,omitempty"`
	Room        *Room       `json:"room,omitempty"`
	SearchData  *SearchData `json:"searchData,omitempty"`
}
