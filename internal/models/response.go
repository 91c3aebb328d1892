package models

// SearchMetadata describes how a search was served, mirroring the shape
// the UI shows on the results page.
type SearchMetadata struct {
	TotalResults int   `json:"totalResults"`
	SearchTimeMs int64 `json:"searchTimeMs"`
	CacheHit     bool  `json:"cacheHit"`
}

type FlightSearchResponse struct {
	SearchData SearchData     `json:"searchData"`
	Metadata   SearchMetadata `json:"metadata"`
	Flights    []Flight       `json:"flights"`
}

type HotelSearchResponse struct {
	SearchData SearchData     `json:"searchData"`
	Metadata   SearchMetadata `json:"metadata"`
	Hotels     []Hotel        `json:"hotels"`
}

type RoomsResponse struct {
	HotelID int    `json:"hotelId"`
	Rooms   []Room `json:"rooms"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
