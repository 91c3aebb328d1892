package models

// Endpoint is one side of a flight leg: an airport code plus the local
// clock time as an HH:MM string.
type Endpoint struct {
	Airport string `json:"airport"`
	Time    string `json:"time"`
}

// Flight is a synthesized offer. IDs are sequence numbers unique within
// one search only; flight numbers are derived from the airline name and
// carry no global uniqueness guarantee.
type Flight struct {
	ID             int      `json:"id"`
	Airline        string   `json:"airline"`
	FlightNumber   string   `json:"flightNumber"`
	Departure      Endpoint `json:"departure"`
	Arrival        Endpoint `json:"arrival"`
	Duration       string   `json:"duration"`
	Price          int      `json:"price"`
	PriceFormatted string   `json:"priceFormatted,omitempty"`
	Stops          int      `json:"stops"`
}
