// Package describe produces prose descriptions for hotels. The catalog
// pre-generates descriptions with the tiered template generator so the
// rest of the system never waits on the network; the Wikipedia provider
// is an optional upgrade path for richer text.
package describe

import "strings"

// HotelInfo identifies a hotel for description purposes.
type HotelInfo struct {
	Name     string
	Location string
	Address  string
	Stars    int
}

var luxurySignals = []string{"ritz", "four seasons", "peninsula", "mandarin"}

func isLuxury(name string) bool {
	lower := strings.ToLower(name)
	for _, signal := range luxurySignals {
		if strings.Contains(lower, signal) {
			return true
		}
	}
	return false
}

func locationType(city string) string {
	switch city {
	case "New York":
		return "Manhattan"
	case "Los Angeles":
		return "Los Angeles"
	case "Chicago":
		return "downtown Chicago"
	case "San Francisco":
		return "San Francisco"
	case "Miami":
		return "Miami Beach"
	case "Boston":
		return "downtown Boston"
	default:
		return strings.ToLower(city)
	}
}

// Generate builds a description from the hotel's own data. Flagship
// luxury brands get the top tier, remaining five-star properties a
// refined middle tier, everything else the standard text.
func Generate(hotel HotelInfo) string {
	area := locationType(hotel.Location)

	if isLuxury(hotel.Name) {
		return "Luxury " + area + " hotel offering world-class amenities and exceptional service. " +
			"This prestigious property combines elegant accommodations with modern conveniences, " +
			"providing an unforgettable experience in the heart of " + hotel.Location + "."
	}

	if hotel.Stars >= 5 {
		return "Five-star " + area + " hotel known for refined accommodations and attentive service. " +
			"Guests enjoy premium amenities and an address close to the best of " + hotel.Location + "."
	}

	return "Well-appointed hotel located in " + area + ", " + hotel.Location + ". " +
		"This property offers comfortable accommodations and convenient access to local attractions, " +
		"dining, and entertainment. Perfect for both business and leisure travelers."
}
