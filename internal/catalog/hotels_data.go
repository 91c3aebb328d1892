package catalog

// Hotel inventory per city. Order is load-bearing: result ids are the
// 1-based position of each entry, so entries must not be reordered.
var hotelRecords = map[string][]Record{
	"New York": {
		{
			Name:        "The Plaza Hotel",
			Location:    "New York",
			Address:     "768 5th Ave, New York, NY 10019",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"Free WiFi", "Spa", "Fine Dining", "Concierge", "Valet Parking", "Butler Service", "Champagne Bar"},
			Coordinates: Coordinates{Lat: 40.7645, Lng: -73.9744},
		},
		{
			Name:        "The St. Regis New York",
			Location:    "New York",
			Address:     "2 E 55th St, New York, NY 10022",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Free WiFi", "Butler Service", "Spa", "Fitness Center", "Fine Dining", "Bar", "Room Service"},
			Coordinates: Coordinates{Lat: 40.7614, Lng: -73.9745},
		},
		{
			Name:        "The Peninsula New York",
			Location:    "New York",
			Address:     "700 5th Ave, New York, NY 10019",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"Rooftop Bar", "Spa", "Pool", "Free WiFi", "Fitness Center", "Fine Dining", "Valet Parking"},
			Coordinates: Coordinates{Lat: 40.7623, Lng: -73.9754},
		},
		{
			Name:        "Mandarin Oriental New York",
			Location:    "New York",
			Address:     "80 Columbus Circle, New York, NY 10023",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-4.jpg",
			Images:      []string{"/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg"},
			Amenities:   []string{"Spa", "Pool", "Free WiFi", "Fitness Center", "Michelin-Star Restaurant", "Central Park Views", "Concierge"},
			Coordinates: Coordinates{Lat: 40.7681, Lng: -73.9819},
		},
		{
			Name:        "The Carlyle, A Rosewood Hotel",
			Location:    "New York",
			Address:     "35 E 76th St, New York, NY 10021",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-5.jpg",
			Images:      []string{"/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg"},
			Amenities:   []string{"Bemelmans Bar", "Caf\u00e9 Carlyle", "Spa", "Fitness Center", "Free WiFi", "Concierge", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 40.7747, Lng: -73.9632},
		},
		{
			Name:        "The Ritz-Carlton New York, Central Park",
			Location:    "New York",
			Address:     "50 Central Park S, New York, NY 10019",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-6.jpg",
			Images:      []string{"/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg"},
			Amenities:   []string{"Central Park Views", "Spa", "Fine Dining", "Club Lounge", "Free WiFi", "Fitness Center", "Valet Parking"},
			Coordinates: Coordinates{Lat: 40.7654, Lng: -73.9768},
		},
		{
			Name:        "Four Seasons Hotel New York",
			Location:    "New York",
			Address:     "57 E 57th St, New York, NY 10022",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-7.jpg",
			Images:      []string{"/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg"},
			Amenities:   []string{"Spa", "Fine Dining", "Free WiFi", "Fitness Center", "Bar", "Concierge", "Room Service"},
			Coordinates: Coordinates{Lat: 40.7626, Lng: -73.9722},
		},
		{
			Name:        "Park Hyatt New York",
			Location:    "New York",
			Address:     "153 W 57th St, New York, NY 10019",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-8.jpg",
			Images:      []string{"/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg"},
			Amenities:   []string{"Spa", "Pool", "Fine Dining", "Free WiFi", "Fitness Center", "Living Room Bar", "Art Collection"},
			Coordinates: Coordinates{Lat: 40.7651, Lng: -73.9784},
		},
		{
			Name:        "The Lowell Hotel",
			Location:    "New York",
			Address:     "28 E 63rd St, New York, NY 10065",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-9.jpg",
			Images:      []string{"/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg"},
			Amenities:   []string{"Fireplaces", "Kitchenettes", "Pembroke Room", "Free WiFi", "Fitness Center", "Concierge", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 40.7677, Lng: -73.9684},
		},
		{
			Name:        "The Beekman, A Thompson Hotel",
			Location:    "New York",
			Address:     "123 Nassau St, New York, NY 10038",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-10.jpg",
			Images:      []string{"/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg"},
			Amenities:   []string{"Temple Court Restaurant", "Bar", "Free WiFi", "Fitness Center", "Historic Architecture", "Atrium", "Concierge"},
			Coordinates: Coordinates{Lat: 40.7112, Lng: -74.0058},
		},
		{
			Name:        "1 Hotel Brooklyn Bridge",
			Location:    "New York",
			Address:     "60 Furman St, Brooklyn, NY 11201",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-11.jpg",
			Images:      []string{"/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg"},
			Amenities:   []string{"Rooftop Pool", "Spa", "Farm-to-Table Dining", "Free WiFi", "Fitness Center", "Brooklyn Bridge Views", "Eco-Friendly"},
			Coordinates: Coordinates{Lat: 40.7024, Lng: -73.9931},
		},
		{
			Name:        "The Greenwich Hotel",
			Location:    "New York",
			Address:     "377 Greenwich St, New York, NY 10013",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-12.jpg",
			Images:      []string{"/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg"},
			Amenities:   []string{"Shibui Spa", "Pool", "Italian Restaurant", "Free WiFi", "Fitness Center", "Courtyard", "Private Spaces"},
			Coordinates: Coordinates{Lat: 40.7195, Lng: -74.0097},
		},
		{
			Name:        "Baccarat Hotel New York",
			Location:    "New York",
			Address:     "28 W 53rd St, New York, NY 10019",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-13.jpg",
			Images:      []string{"/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg"},
			Amenities:   []string{"Spa de La Mer", "Bar", "Fine Dining", "Crystal Decor", "Free WiFi", "Fitness Center", "Concierge"},
			Coordinates: Coordinates{Lat: 40.7610, Lng: -73.9760},
		},
		{
			Name:        "The Mark Hotel",
			Location:    "New York",
			Address:     "25 E 77th St, New York, NY 10075",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"Jean-Georges Restaurant", "Bar", "Spa", "Free WiFi", "Fitness Center", "Pet Friendly", "Designer Interiors"},
			Coordinates: Coordinates{Lat: 40.7756, Lng: -73.9632},
		},
		{
			Name:        "Conrad New York Downtown",
			Location:    "New York",
			Address:     "102 North End Ave, New York, NY 10282",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Hudson River Views", "Restaurants", "Bar", "Free WiFi", "Fitness Center", "Concierge", "Business Center"},
			Coordinates: Coordinates{Lat: 40.7156, Lng: -74.0157},
		},
		{
			Name:        "Crosby Street Hotel",
			Location:    "New York",
			Address:     "79 Crosby St, New York, NY 10012",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"Screening Room", "Drawing Room", "Terrace", "Free WiFi", "Fitness Center", "Bar", "British Design"},
			Coordinates: Coordinates{Lat: 40.7217, Lng: -73.9968},
		},
		{
			Name:        "The NoMad Hotel",
			Location:    "New York",
			Address:     "1170 Broadway, New York, NY 10001",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-4.jpg",
			Images:      []string{"/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg"},
			Amenities:   []string{"NoMad Restaurant", "Library", "Rooftop", "Free WiFi", "Fitness Center", "Bar", "Classic Design"},
			Coordinates: Coordinates{Lat: 40.7453, Lng: -73.9881},
		},
		{
			Name:        "The Knickerbocker",
			Location:    "New York",
			Address:     "6 Times Square, New York, NY 10036",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-5.jpg",
			Images:      []string{"/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg"},
			Amenities:   []string{"Rooftop Bar", "Charlie Palmer Restaurant", "Free WiFi", "Fitness Center", "Times Square Views", "Concierge", "Historic Building"},
			Coordinates: Coordinates{Lat: 40.7572, Lng: -73.9868},
		},
		{
			Name:        "The Ludlow Hotel",
			Location:    "New York",
			Address:     "180 Ludlow St, New York, NY 10002",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-6.jpg",
			Images:      []string{"/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg"},
			Amenities:   []string{"Dirty French Restaurant", "Bar", "Terrace", "Free WiFi", "Fitness Center", "Lower East Side Location", "Modern Design"},
			Coordinates: Coordinates{Lat: 40.7213, Lng: -73.9883},
		},
		{
			Name:        "The Bowery Hotel",
			Location:    "New York",
			Address:     "335 Bowery, New York, NY 10003",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-7.jpg",
			Images:      []string{"/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg"},
			Amenities:   []string{"Gemma Restaurant", "Lobby Bar", "Free WiFi", "Fitness Center", "Floor-to-Ceiling Windows", "Vintage Decor", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 40.7267, Lng: -73.9919},
		},
	},
	"Los Angeles": {
		{
			Name:        "The Beverly Hills Hotel",
			Location:    "Los Angeles",
			Address:     "9641 Sunset Blvd, Beverly Hills, CA 90210",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-8.jpg",
			Images:      []string{"/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg"},
			Amenities:   []string{"Polo Lounge", "Spa", "Pool", "Cabanas", "Free WiFi", "Fitness Center", "Tennis Courts"},
			Coordinates: Coordinates{Lat: 34.0789, Lng: -118.4152},
		},
		{
			Name:        "Hotel Bel-Air",
			Location:    "Los Angeles",
			Address:     "701 Stone Canyon Rd, Los Angeles, CA 90077",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-9.jpg",
			Images:      []string{"/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg"},
			Amenities:   []string{"Spa", "Pool", "Wolfgang Puck Restaurant", "Gardens", "Free WiFi", "Fitness Center", "Swan Lake"},
			Coordinates: Coordinates{Lat: 34.0970, Lng: -118.4517},
		},
		{
			Name:        "Four Seasons Hotel Los Angeles at Beverly Hills",
			Location:    "Los Angeles",
			Address:     "300 S Doheny Dr, Los Angeles, CA 90048",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-10.jpg",
			Images:      []string{"/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg"},
			Amenities:   []string{"Spa", "Rooftop Pool", "Culina Restaurant", "Free WiFi", "Fitness Center", "Cabanas", "Gardens"},
			Coordinates: Coordinates{Lat: 34.0754, Lng: -118.3842},
		},
		{
			Name:        "Montage Beverly Hills",
			Location:    "Los Angeles",
			Address:     "225 N Canon Dr, Beverly Hills, CA 90210",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-11.jpg",
			Images:      []string{"/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg"},
			Amenities:   []string{"Spa Montage", "Rooftop Pool", "Fine Dining", "Free WiFi", "Fitness Center", "Concierge", "Golden Triangle Location"},
			Coordinates: Coordinates{Lat: 34.0687, Lng: -118.3996},
		},
		{
			Name:        "The Peninsula Beverly Hills",
			Location:    "Los Angeles",
			Address:     "9882 S Santa Monica Blvd, Beverly Hills, CA 90212",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-12.jpg",
			Images:      []string{"/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg"},
			Amenities:   []string{"Rooftop Pool", "Spa", "The Belvedere Restaurant", "Free WiFi", "Fitness Center", "Valet Parking", "Gardens"},
			Coordinates: Coordinates{Lat: 34.0667, Lng: -118.4100},
		},
		{
			Name:        "Shutters on the Beach",
			Location:    "Los Angeles",
			Address:     "1 Pico Blvd, Santa Monica, CA 90405",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-13.jpg",
			Images:      []string{"/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg"},
			Amenities:   []string{"Beach Access", "Spa", "Pool", "One Pico Restaurant", "Free WiFi", "Fitness Center", "Ocean Views"},
			Coordinates: Coordinates{Lat: 34.0085, Lng: -118.4987},
		},
		{
			Name:        "Fairmont Miramar Hotel & Bungalows",
			Location:    "Los Angeles",
			Address:     "101 Wilshire Blvd, Santa Monica, CA 90401",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"Pool", "Spa", "FIG Restaurant", "Ocean Views", "Free WiFi", "Fitness Center", "Bungalows"},
			Coordinates: Coordinates{Lat: 34.0155, Lng: -118.4995},
		},
		{
			Name:        "Sunset Tower Hotel",
			Location:    "Los Angeles",
			Address:     "8358 Sunset Blvd, West Hollywood, CA 90069",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Tower Bar", "Pool", "Fitness Center", "Free WiFi", "Art Deco Architecture", "Terrace", "City Views"},
			Coordinates: Coordinates{Lat: 34.0965, Lng: -118.3770},
		},
		{
			Name:        "The London West Hollywood",
			Location:    "Los Angeles",
			Address:     "1020 N San Vicente Blvd, West Hollywood, CA 90069",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"Rooftop Pool", "Restaurant", "Bar", "Free WiFi", "Fitness Center", "Suites", "City Views"},
			Coordinates: Coordinates{Lat: 34.0900, Lng: -118.3844},
		},
		{
			Name:        "Chateau Marmont",
			Location:    "Los Angeles",
			Address:     "8221 Sunset Blvd, Los Angeles, CA 90046",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-4.jpg",
			Images:      []string{"/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg"},
			Amenities:   []string{"Pool", "Restaurant", "Bar", "Garden", "Free WiFi", "Bungalows", "Historic Property"},
			Coordinates: Coordinates{Lat: 34.0963, Lng: -118.3689},
		},
		{
			Name:        "The Proper Hotel",
			Location:    "Los Angeles",
			Address:     "1100 S Broadway, Los Angeles, CA 90015",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-5.jpg",
			Images:      []string{"/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg"},
			Amenities:   []string{"Rooftop Pool", "Spa", "Restaurants", "Bar", "Free WiFi", "Fitness Center", "Art Collection"},
			Coordinates: Coordinates{Lat: 34.0461, Lng: -118.2567},
		},
		{
			Name:        "Hotel Casa del Mar",
			Location:    "Los Angeles",
			Address:     "1910 Ocean Way, Santa Monica, CA 90405",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-6.jpg",
			Images:      []string{"/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg"},
			Amenities:   []string{"Beach Access", "Spa", "Pool", "Catch Restaurant", "Free WiFi", "Fitness Center", "Ocean Views"},
			Coordinates: Coordinates{Lat: 34.0096, Lng: -118.4989},
		},
		{
			Name:        "Waldorf Astoria Beverly Hills",
			Location:    "Los Angeles",
			Address:     "9850 Wilshire Blvd, Beverly Hills, CA 90210",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-7.jpg",
			Images:      []string{"/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg"},
			Amenities:   []string{"Rooftop Pool", "Spa", "Jean-Georges Restaurant", "Free WiFi", "Fitness Center", "City Views", "Concierge"},
			Coordinates: Coordinates{Lat: 34.0644, Lng: -118.4131},
		},
		{
			Name:        "The Ritz-Carlton, Los Angeles",
			Location:    "Los Angeles",
			Address:     "900 W Olympic Blvd, Los Angeles, CA 90015",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-8.jpg",
			Images:      []string{"/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg"},
			Amenities:   []string{"Rooftop Pool", "Spa", "WP24 Restaurant", "Free WiFi", "Fitness Center", "City Views", "Club Lounge"},
			Coordinates: Coordinates{Lat: 34.0449, Lng: -118.2663},
		},
		{
			Name:        "InterContinental Los Angeles Downtown",
			Location:    "Los Angeles",
			Address:     "900 Wilshire Blvd, Los Angeles, CA 90017",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-9.jpg",
			Images:      []string{"/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg"},
			Amenities:   []string{"Rooftop Pool", "Spa", "Restaurant", "Bar", "Free WiFi", "Fitness Center", "City Views"},
			Coordinates: Coordinates{Lat: 34.0506, Lng: -118.2598},
		},
		{
			Name:        "The LINE LA",
			Location:    "Los Angeles",
			Address:     "3515 Wilshire Blvd, Los Angeles, CA 90010",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-10.jpg",
			Images:      []string{"/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg"},
			Amenities:   []string{"Rooftop Restaurant", "Pool", "Commissary Restaurant", "Free WiFi", "Fitness Center", "Korean Spa", "Modern Design"},
			Coordinates: Coordinates{Lat: 34.0614, Lng: -118.3091},
		},
		{
			Name:        "Ace Hotel Downtown Los Angeles",
			Location:    "Los Angeles",
			Address:     "929 S Broadway, Los Angeles, CA 90015",
			Stars:       4,
			Rating:      4.2,
			Image:       "/images/hotels/generic-11.jpg",
			Images:      []string{"/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg"},
			Amenities:   []string{"Rooftop Bar", "LA Chapter Restaurant", "Theater", "Free WiFi", "Fitness Center", "Pool", "Historic Building"},
			Coordinates: Coordinates{Lat: 34.0456, Lng: -118.2565},
		},
		{
			Name:        "Hotel Figueroa",
			Location:    "Los Angeles",
			Address:     "939 S Figueroa St, Los Angeles, CA 90015",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-12.jpg",
			Images:      []string{"/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg"},
			Amenities:   []string{"Pool", "Restaurants", "Bars", "Free WiFi", "Fitness Center", "Spanish Colonial Revival", "Veranda"},
			Coordinates: Coordinates{Lat: 34.0450, Lng: -118.2622},
		},
		{
			Name:        "Freehand Los Angeles",
			Location:    "Los Angeles",
			Address:     "416 W 8th St, Los Angeles, CA 90014",
			Stars:       4,
			Rating:      4.2,
			Image:       "/images/hotels/generic-13.jpg",
			Images:      []string{"/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg"},
			Amenities:   []string{"Rooftop Bar", "Restaurant", "Pool", "Free WiFi", "Cafe", "Exchange Workspace", "Social Spaces"},
			Coordinates: Coordinates{Lat: 34.0446, Lng: -118.2605},
		},
		{
			Name:        "SLS Hotel at Beverly Hills",
			Location:    "Los Angeles",
			Address:     "465 S La Cienega Blvd, Los Angeles, CA 90048",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"Pool", "Spa", "Bazaar Restaurant", "Bar", "Free WiFi", "Fitness Center", "Philippe Starck Design"},
			Coordinates: Coordinates{Lat: 34.0755, Lng: -118.3759},
		},
	},
	"Chicago": {
		{
			Name:        "The Peninsula Chicago",
			Location:    "Chicago",
			Address:     "108 E Superior St, Chicago, IL 60611",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Spa", "Pool", "Shanghai Terrace", "Free WiFi", "Fitness Center", "Afternoon Tea", "Concierge"},
			Coordinates: Coordinates{Lat: 41.8957, Lng: -87.6251},
		},
		{
			Name:        "Four Seasons Hotel Chicago",
			Location:    "Chicago",
			Address:     "120 E Delaware Pl, Chicago, IL 60611",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"Spa", "Pool", "Fine Dining", "Lake Views", "Free WiFi", "Fitness Center", "Concierge"},
			Coordinates: Coordinates{Lat: 41.8992, Lng: -87.6262},
		},
		{
			Name:        "The Langham, Chicago",
			Location:    "Chicago",
			Address:     "330 N Wabash Ave, Chicago, IL 60611",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-4.jpg",
			Images:      []string{"/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg"},
			Amenities:   []string{"Chuan Spa", "Pool", "Travelle Restaurant", "River Views", "Free WiFi", "Fitness Center", "Afternoon Tea"},
			Coordinates: Coordinates{Lat: 41.8880, Lng: -87.6263},
		},
		{
			Name:        "The Ritz-Carlton, Chicago",
			Location:    "Chicago",
			Address:     "160 E Pearson St, Chicago, IL 60611",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-5.jpg",
			Images:      []string{"/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg"},
			Amenities:   []string{"Spa", "Pool", "Deca Restaurant", "Water Tower Views", "Free WiFi", "Fitness Center", "Club Lounge"},
			Coordinates: Coordinates{Lat: 41.8979, Lng: -87.6256},
		},
		{
			Name:        "Park Hyatt Chicago",
			Location:    "Chicago",
			Address:     "800 N Michigan Ave, Chicago, IL 60611",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-6.jpg",
			Images:      []string{"/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg"},
			Amenities:   []string{"Spa", "Pool", "NoMI Kitchen", "Water Tower Views", "Free WiFi", "Fitness Center", "Art Collection"},
			Coordinates: Coordinates{Lat: 41.8978, Lng: -87.6238},
		},
		{
			Name:        "Waldorf Astoria Chicago",
			Location:    "Chicago",
			Address:     "11 E Walton St, Chicago, IL 60611",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-7.jpg",
			Images:      []string{"/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg"},
			Amenities:   []string{"Spa", "Pool", "Bernard's Bar", "Free WiFi", "Fitness Center", "Gold Coast Location", "Concierge"},
			Coordinates: Coordinates{Lat: 41.9006, Lng: -87.6265},
		},
		{
			Name:        "The Gwen, a Luxury Collection Hotel",
			Location:    "Chicago",
			Address:     "521 N Rush St, Chicago, IL 60611",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-8.jpg",
			Images:      []string{"/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg"},
			Amenities:   []string{"Rooftop Terrace", "Upstairs Restaurant", "Bar", "Free WiFi", "Fitness Center", "Art Deco", "River North"},
			Coordinates: Coordinates{Lat: 41.8920, Lng: -87.6266},
		},
		{
			Name:        "Sofitel Chicago Magnificent Mile",
			Location:    "Chicago",
			Address:     "20 E Chestnut St, Chicago, IL 60611",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-9.jpg",
			Images:      []string{"/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg"},
			Amenities:   []string{"Caf\u00e9 des Architectes", "Bar", "Free WiFi", "Fitness Center", "French Design", "Spa Services", "City Views"},
			Coordinates: Coordinates{Lat: 41.8981, Lng: -87.6278},
		},
		{
			Name:        "Thompson Chicago",
			Location:    "Chicago",
			Address:     "21 E Bellevue Pl, Chicago, IL 60611",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-10.jpg",
			Images:      []string{"/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg"},
			Amenities:   []string{"Nico Osteria", "Rooftop Bar", "Free WiFi", "Fitness Center", "Modern Design", "Gold Coast", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 41.8996, Lng: -87.6277},
		},
		{
			Name:        "The Chicago Athletic Association",
			Location:    "Chicago",
			Address:     "12 S Michigan Ave, Chicago, IL 60603",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-11.jpg",
			Images:      []string{"/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg"},
			Amenities:   []string{"Cindy's Rooftop", "Cherry Circle Room", "Game Room", "Free WiFi", "Fitness Center", "Historic Building", "Millennium Park Views"},
			Coordinates: Coordinates{Lat: 41.8814, Lng: -87.6245},
		},
		{
			Name:        "Viceroy Chicago",
			Location:    "Chicago",
			Address:     "1118 N State St, Chicago, IL 60610",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-12.jpg",
			Images:      []string{"/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg"},
			Amenities:   []string{"Rooftop Bar", "Somerset Restaurant", "Free WiFi", "Fitness Center", "Gold Coast", "Modern Design", "City Views"},
			Coordinates: Coordinates{Lat: 41.9034, Lng: -87.6281},
		},
		{
			Name:        "The Hoxton, Chicago",
			Location:    "Chicago",
			Address:     "200 N Green St, Chicago, IL 60607",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-13.jpg",
			Images:      []string{"/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg"},
			Amenities:   []string{"Cira Restaurant", "Rooftop Bar", "Free WiFi", "Coffee & Pastries", "West Loop", "Industrial Design", "Open Lobby"},
			Coordinates: Coordinates{Lat: 41.8859, Lng: -87.6488},
		},
		{
			Name:        "Kimpton Hotel Monaco Chicago",
			Location:    "Chicago",
			Address:     "225 N Wabash Ave, Chicago, IL 60601",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"South Water Kitchen", "Wine Hour", "Free WiFi", "Fitness Center", "Pet Friendly", "Bikes", "Theater District"},
			Coordinates: Coordinates{Lat: 41.8866, Lng: -87.6259},
		},
		{
			Name:        "Hotel EMC2",
			Location:    "Chicago",
			Address:     "228 E Ontario St, Chicago, IL 60611",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Albert Restaurant", "Bar", "Free WiFi", "Fitness Center", "Science Theme", "Art Installation", "Streeterville"},
			Coordinates: Coordinates{Lat: 41.8933, Lng: -87.6218},
		},
		{
			Name:        "Virgin Hotels Chicago",
			Location:    "Chicago",
			Address:     "203 N Wabash Ave, Chicago, IL 60601",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"Miss Ricky's", "Cerise Rooftop", "Free WiFi", "Fitness Center", "Modern Design", "Loop Location", "Commons Club"},
			Coordinates: Coordinates{Lat: 41.8863, Lng: -87.6262},
		},
		{
			Name:        "The Robey",
			Location:    "Chicago",
			Address:     "2018 W North Ave, Chicago, IL 60647",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-4.jpg",
			Images:      []string{"/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg"},
			Amenities:   []string{"Caf\u00e9 Robey", "Rooftop Bar", "Free WiFi", "Wicker Park", "Mid-Century Design", "City Views", "Neighborhood Location"},
			Coordinates: Coordinates{Lat: 41.9104, Lng: -87.6777},
		},
		{
			Name:        "Ace Hotel Chicago",
			Location:    "Chicago",
			Address:     "311 N Morgan St, Chicago, IL 60607",
			Stars:       4,
			Rating:      4.2,
			Image:       "/images/hotels/generic-5.jpg",
			Images:      []string{"/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg"},
			Amenities:   []string{"City Mouse Restaurant", "Coffee Bar", "Free WiFi", "Fitness Center", "West Loop", "Industrial Design", "Co-Working"},
			Coordinates: Coordinates{Lat: 41.8878, Lng: -87.6518},
		},
		{
			Name:        "Freehand Chicago",
			Location:    "Chicago",
			Address:     "19 E Ohio St, Chicago, IL 60611",
			Stars:       3,
			Rating:      4.1,
			Image:       "/images/hotels/generic-6.jpg",
			Images:      []string{"/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg"},
			Amenities:   []string{"Broken Shaker Bar", "Caf\u00e9", "Free WiFi", "Social Spaces", "River North", "Vintage Design", "Co-Working"},
			Coordinates: Coordinates{Lat: 41.8923, Lng: -87.6279},
		},
		{
			Name:        "Hotel Lincoln",
			Location:    "Chicago",
			Address:     "1816 N Clark St, Chicago, IL 60614",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-7.jpg",
			Images:      []string{"/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg"},
			Amenities:   []string{"Perennial Virant", "J. Parker Rooftop", "Free WiFi", "Lincoln Park", "Park Views", "Bikes", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 41.9154, Lng: -87.6352},
		},
		{
			Name:        "Pendry Chicago",
			Location:    "Chicago",
			Address:     "230 N Michigan Ave, Chicago, IL 60601",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-8.jpg",
			Images:      []string{"/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg"},
			Amenities:   []string{"Rooftop Bar", "Spa", "Pool", "Restaurants", "Free WiFi", "Fitness Center", "River Views"},
			Coordinates: Coordinates{Lat: 41.8865, Lng: -87.6243},
		},
	},
	"San Francisco": {
		{
			Name:        "Four Seasons Hotel San Francisco",
			Location:    "San Francisco",
			Address:     "757 Market St, San Francisco, CA 94103",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-9.jpg",
			Images:      []string{"/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg"},
			Amenities:   []string{"Spa", "Pool", "MKT Restaurant", "Free WiFi", "Fitness Center", "Bay Views", "Concierge"},
			Coordinates: Coordinates{Lat: 37.7856, Lng: -122.4053},
		},
		{
			Name:        "The Ritz-Carlton, San Francisco",
			Location:    "San Francisco",
			Address:     "600 Stockton St, San Francisco, CA 94108",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-10.jpg",
			Images:      []string{"/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg"},
			Amenities:   []string{"Spa", "Parallel 37 Restaurant", "Club Lounge", "Free WiFi", "Fitness Center", "Nob Hill", "Concierge"},
			Coordinates: Coordinates{Lat: 37.7921, Lng: -122.4106},
		},
		{
			Name:        "The St. Regis San Francisco",
			Location:    "San Francisco",
			Address:     "125 3rd St, San Francisco, CA 94103",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-11.jpg",
			Images:      []string{"/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg"},
			Amenities:   []string{"Rem\u00e8de Spa", "Grill Restaurant", "Butler Service", "Free WiFi", "Fitness Center", "Museum Tower", "Art Collection"},
			Coordinates: Coordinates{Lat: 37.7856, Lng: -122.4008},
		},
		{
			Name:        "Fairmont San Francisco",
			Location:    "San Francisco",
			Address:     "950 Mason St, San Francisco, CA 94108",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-12.jpg",
			Images:      []string{"/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg"},
			Amenities:   []string{"Tonga Room", "Laurel Court", "Spa", "Free WiFi", "Fitness Center", "Nob Hill", "Historic Property"},
			Coordinates: Coordinates{Lat: 37.7925, Lng: -122.4106},
		},
		{
			Name:        "Palace Hotel, A Luxury Collection",
			Location:    "San Francisco",
			Address:     "2 New Montgomery St, San Francisco, CA 94105",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-13.jpg",
			Images:      []string{"/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg"},
			Amenities:   []string{"Garden Court", "Pied Piper Bar", "Pool", "Free WiFi", "Fitness Center", "Historic Property", "Grand Ballroom"},
			Coordinates: Coordinates{Lat: 37.7883, Lng: -122.4011},
		},
		{
			Name:        "The Fairmont Heritage Place, Ghirardelli Square",
			Location:    "San Francisco",
			Address:     "900 North Point St, San Francisco, CA 94109",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"Bay Views", "Full Kitchens", "Spa", "Pool", "Free WiFi", "Fitness Center", "Ghirardelli Square"},
			Coordinates: Coordinates{Lat: 37.8058, Lng: -122.4224},
		},
		{
			Name:        "Hotel Nikko San Francisco",
			Location:    "San Francisco",
			Address:     "222 Mason St, San Francisco, CA 94102",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Pool", "Anzu Restaurant", "Fitness Center", "Free WiFi", "Union Square", "Japanese-Inspired", "Sauna"},
			Coordinates: Coordinates{Lat: 37.7856, Lng: -122.4094},
		},
		{
			Name:        "InterContinental Mark Hopkins",
			Location:    "San Francisco",
			Address:     "999 California St, San Francisco, CA 94108",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"Top of the Mark", "Fitness Center", "Free WiFi", "Nob Hill", "Panoramic Views", "Historic Property", "Concierge"},
			Coordinates: Coordinates{Lat: 37.7923, Lng: -122.4115},
		},
		{
			Name:        "The Westin St. Francis",
			Location:    "San Francisco",
			Address:     "335 Powell St, San Francisco, CA 94102",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-4.jpg",
			Images:      []string{"/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg"},
			Amenities:   []string{"Oak Room Restaurant", "Clock Bar", "Free WiFi", "Fitness Center", "Union Square", "Historic Property", "City Views"},
			Coordinates: Coordinates{Lat: 37.7877, Lng: -122.4082},
		},
		{
			Name:        "The Clift Royal Sonesta Hotel",
			Location:    "San Francisco",
			Address:     "495 Geary St, San Francisco, CA 94102",
			Stars:       5,
			Rating:      4.3,
			Image:       "/images/hotels/generic-5.jpg",
			Images:      []string{"/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg"},
			Amenities:   []string{"Velvet Room", "Redwood Room", "Free WiFi", "Fitness Center", "Union Square", "Philippe Starck Design", "Art Collection"},
			Coordinates: Coordinates{Lat: 37.7867, Lng: -122.4109},
		},
		{
			Name:        "Hotel Zephyr",
			Location:    "San Francisco",
			Address:     "250 Beach St, San Francisco, CA 94133",
			Stars:       4,
			Rating:      4.2,
			Image:       "/images/hotels/generic-6.jpg",
			Images:      []string{"/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg"},
			Amenities:   []string{"Bay Views", "Fisherman's Wharf", "Restaurant", "Free WiFi", "Fitness Center", "Games", "Nautical Theme"},
			Coordinates: Coordinates{Lat: 37.8082, Lng: -122.4152},
		},
		{
			Name:        "The Marker San Francisco",
			Location:    "San Francisco",
			Address:     "501 Geary St, San Francisco, CA 94102",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-7.jpg",
			Images:      []string{"/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg"},
			Amenities:   []string{"Tratto Restaurant", "Bar", "Free WiFi", "Fitness Center", "Union Square", "Theater District", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 37.7867, Lng: -122.4115},
		},
		{
			Name:        "Hotel Zelos",
			Location:    "San Francisco",
			Address:     "12 4th St, San Francisco, CA 94103",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-8.jpg",
			Images:      []string{"/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg"},
			Amenities:   []string{"Dirty Habit Restaurant", "Bar", "Free WiFi", "Fitness Center", "SoMa", "Modern Design", "Art Collection"},
			Coordinates: Coordinates{Lat: 37.7853, Lng: -122.4043},
		},
		{
			Name:        "Hotel Zetta",
			Location:    "San Francisco",
			Address:     "55 5th St, San Francisco, CA 94103",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-9.jpg",
			Images:      []string{"/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg"},
			Amenities:   []string{"Cavalier Restaurant", "Playroom", "Free WiFi", "Fitness Center", "SoMa", "Tech-Friendly", "Games"},
			Coordinates: Coordinates{Lat: 37.7839, Lng: -122.4060},
		},
		{
			Name:        "The Proper Hotel",
			Location:    "San Francisco",
			Address:     "1100 Market St, San Francisco, CA 94102",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-10.jpg",
			Images:      []string{"/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg"},
			Amenities:   []string{"Villon Restaurant", "Rooftop Bar", "Free WiFi", "Fitness Center", "Mid-Market", "Kelly Wearstler Design", "Art Collection"},
			Coordinates: Coordinates{Lat: 37.7815, Lng: -122.4115},
		},
		{
			Name:        "Hotel Vitale",
			Location:    "San Francisco",
			Address:     "8 Mission St, San Francisco, CA 94105",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-11.jpg",
			Images:      []string{"/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg"},
			Amenities:   []string{"Americano Restaurant", "Spa", "Bay Views", "Free WiFi", "Fitness Center", "Embarcadero", "Rooftop Soaking Tubs"},
			Coordinates: Coordinates{Lat: 37.7937, Lng: -122.3933},
		},
		{
			Name:        "Omni San Francisco",
			Location:    "San Francisco",
			Address:     "500 California St, San Francisco, CA 94104",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-12.jpg",
			Images:      []string{"/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg"},
			Amenities:   []string{"Bob's Steak & Chop House", "Financial District", "Free WiFi", "Fitness Center", "Cable Car Access", "Historic Building", "Concierge"},
			Coordinates: Coordinates{Lat: 37.7930, Lng: -122.4034},
		},
		{
			Name:        "Hotel Kabuki",
			Location:    "San Francisco",
			Address:     "1625 Post St, San Francisco, CA 94115",
			Stars:       4,
			Rating:      4.2,
			Image:       "/images/hotels/generic-13.jpg",
			Images:      []string{"/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg"},
			Amenities:   []string{"Ippongi Restaurant", "Bar", "Free WiFi", "Fitness Center", "Japantown", "Japanese-Inspired", "Zen Garden"},
			Coordinates: Coordinates{Lat: 37.7850, Lng: -122.4309},
		},
		{
			Name:        "The Phoenix Hotel",
			Location:    "San Francisco",
			Address:     "601 Eddy St, San Francisco, CA 94109",
			Stars:       3,
			Rating:      4.0,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"Pool", "Chambers Restaurant", "Free WiFi", "Tenderloin", "Rock 'n' Roll Theme", "Murals", "Boutique"},
			Coordinates: Coordinates{Lat: 37.7833, Lng: -122.4188},
		},
		{
			Name:        "The Line San Francisco",
			Location:    "San Francisco",
			Address:     "1124 Market St, San Francisco, CA 94102",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Restaurant", "Bar", "Free WiFi", "Fitness Center", "Mid-Market", "Modern Design", "Social Spaces"},
			Coordinates: Coordinates{Lat: 37.7814, Lng: -122.4119},
		},
	},
	"Miami": {
		{
			Name:        "Fontainebleau Miami Beach",
			Location:    "Miami",
			Address:     "4441 Collins Ave, Miami Beach, FL 33140",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"LIV Nightclub", "Spa", "Multiple Pools", "Beach Access", "Free WiFi", "Restaurants", "Fitness Center"},
			Coordinates: Coordinates{Lat: 25.8193, Lng: -80.1240},
		},
		{
			Name:        "Faena Hotel Miami Beach",
			Location:    "Miami",
			Address:     "3201 Collins Ave, Miami Beach, FL 33140",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-4.jpg",
			Images:      []string{"/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg"},
			Amenities:   []string{"Faena Theater", "Spa", "Beach Access", "Pool", "Fine Dining", "Free WiFi", "Art Collection"},
			Coordinates: Coordinates{Lat: 25.8096, Lng: -80.1229},
		},
		{
			Name:        "The Setai, Miami Beach",
			Location:    "Miami",
			Address:     "2001 Collins Ave, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-5.jpg",
			Images:      []string{"/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg"},
			Amenities:   []string{"Three Pools", "Spa", "Beach Access", "Asian-Fusion Dining", "Free WiFi", "Fitness Center", "Art Deco"},
			Coordinates: Coordinates{Lat: 25.7913, Lng: -80.1300},
		},
		{
			Name:        "Four Seasons Hotel Miami",
			Location:    "Miami",
			Address:     "1435 Brickell Ave, Miami, FL 33131",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-6.jpg",
			Images:      []string{"/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg"},
			Amenities:   []string{"Edge Steak & Bar", "Spa", "Rooftop Pool", "Free WiFi", "Fitness Center", "Brickell", "Bay Views"},
			Coordinates: Coordinates{Lat: 25.7617, Lng: -80.1918},
		},
		{
			Name:        "Mandarin Oriental, Miami",
			Location:    "Miami",
			Address:     "500 Brickell Key Dr, Miami, FL 33131",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-7.jpg",
			Images:      []string{"/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg"},
			Amenities:   []string{"La Mar Restaurant", "Spa", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Private Island"},
			Coordinates: Coordinates{Lat: 25.7658, Lng: -80.1867},
		},
		{
			Name:        "The Ritz-Carlton, South Beach",
			Location:    "Miami",
			Address:     "1 Lincoln Rd, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-8.jpg",
			Images:      []string{"/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg"},
			Amenities:   []string{"DiLido Beach Club", "Spa", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Art Deco"},
			Coordinates: Coordinates{Lat: 25.7809, Lng: -80.1300},
		},
		{
			Name:        "W South Beach",
			Location:    "Miami",
			Address:     "2201 Collins Ave, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-9.jpg",
			Images:      []string{"/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg"},
			Amenities:   []string{"Mr Chow", "WALL Lounge", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Spa"},
			Coordinates: Coordinates{Lat: 25.7932, Lng: -80.1299},
		},
		{
			Name:        "SLS South Beach",
			Location:    "Miami",
			Address:     "1701 Collins Ave, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.3,
			Image:       "/images/hotels/generic-10.jpg",
			Images:      []string{"/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg"},
			Amenities:   []string{"Hyde Beach", "Katsuya Restaurant", "Pool", "Beach Access", "Free WiFi", "Fitness Center", "Philippe Starck Design"},
			Coordinates: Coordinates{Lat: 25.7900, Lng: -80.1301},
		},
		{
			Name:        "1 Hotel South Beach",
			Location:    "Miami",
			Address:     "2341 Collins Ave, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-11.jpg",
			Images:      []string{"/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg"},
			Amenities:   []string{"Watr Rooftop", "Spa", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Eco-Friendly"},
			Coordinates: Coordinates{Lat: 25.7946, Lng: -80.1298},
		},
		{
			Name:        "The Betsy Hotel",
			Location:    "Miami",
			Address:     "1440 Ocean Dr, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-12.jpg",
			Images:      []string{"/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg"},
			Amenities:   []string{"LT Steak & Seafood", "Rooftop", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Writers Room"},
			Coordinates: Coordinates{Lat: 25.7810, Lng: -80.1299},
		},
		{
			Name:        "Soho Beach House",
			Location:    "Miami",
			Address:     "4385 Collins Ave, Miami Beach, FL 33140",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-13.jpg",
			Images:      []string{"/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg"},
			Amenities:   []string{"Cecconi's Restaurant", "Cowshed Spa", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Members Club"},
			Coordinates: Coordinates{Lat: 25.8182, Lng: -80.1241},
		},
		{
			Name:        "The Confidante Miami Beach",
			Location:    "Miami",
			Address:     "4041 Collins Ave, Miami Beach, FL 33140",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"Bird & Bone", "Backyard", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Retro Design"},
			Coordinates: Coordinates{Lat: 25.8146, Lng: -80.1234},
		},
		{
			Name:        "The Palms Hotel & Spa",
			Location:    "Miami",
			Address:     "3025 Collins Ave, Miami Beach, FL 33140",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Essensia Restaurant", "Spa", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Wellness Focus"},
			Coordinates: Coordinates{Lat: 25.8073, Lng: -80.1227},
		},
		{
			Name:        "The Shore Club",
			Location:    "Miami",
			Address:     "1901 Collins Ave, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"Skybar", "Restaurant", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Gardens"},
			Coordinates: Coordinates{Lat: 25.7910, Lng: -80.1300},
		},
		{
			Name:        "Kimpton EPIC Hotel",
			Location:    "Miami",
			Address:     "270 Biscayne Blvd Way, Miami, FL 33131",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-4.jpg",
			Images:      []string{"/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg"},
			Amenities:   []string{"Area 31 Restaurant", "Rooftop Pool", "Spa", "Free WiFi", "Fitness Center", "Bay Views", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 25.7705, Lng: -80.1871},
		},
		{
			Name:        "Nautilus, A SIXTY Hotel",
			Location:    "Miami",
			Address:     "1825 Collins Ave, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-5.jpg",
			Images:      []string{"/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg"},
			Amenities:   []string{"Nautilus Cabana Club", "Pool", "Beach Access", "Free WiFi", "Fitness Center", "Art Deco", "Tropicale Restaurant"},
			Coordinates: Coordinates{Lat: 25.7896, Lng: -80.1301},
		},
		{
			Name:        "Delano South Beach",
			Location:    "Miami",
			Address:     "1685 Collins Ave, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.3,
			Image:       "/images/hotels/generic-6.jpg",
			Images:      []string{"/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg"},
			Amenities:   []string{"Bianca Restaurant", "Pool", "Beach Access", "Spa", "Free WiFi", "Fitness Center", "White Design"},
			Coordinates: Coordinates{Lat: 25.7898, Lng: -80.1301},
		},
		{
			Name:        "The Miami Beach EDITION",
			Location:    "Miami",
			Address:     "2901 Collins Ave, Miami Beach, FL 33140",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-7.jpg",
			Images:      []string{"/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg"},
			Amenities:   []string{"Matador Room", "Basement Nightclub", "Beach Access", "Pool", "Free WiFi", "Fitness Center", "Ice Skating Rink"},
			Coordinates: Coordinates{Lat: 25.8066, Lng: -80.1227},
		},
		{
			Name:        "Hotel Victor",
			Location:    "Miami",
			Address:     "1144 Ocean Dr, Miami Beach, FL 33139",
			Stars:       4,
			Rating:      4.2,
			Image:       "/images/hotels/generic-8.jpg",
			Images:      []string{"/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg"},
			Amenities:   []string{"Pawn Broker", "Pool", "Beach Access", "Free WiFi", "Fitness Center", "Art Deco", "Ocean Drive"},
			Coordinates: Coordinates{Lat: 25.7806, Lng: -80.1299},
		},
		{
			Name:        "Royal Palm South Beach",
			Location:    "Miami",
			Address:     "1545 Collins Ave, Miami Beach, FL 33139",
			Stars:       5,
			Rating:      4.4,
			Image:       "/images/hotels/generic-9.jpg",
			Images:      []string{"/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg"},
			Amenities:   []string{"Florida Cookery", "Pool", "Beach Access", "Free WiFi", "Fitness Center", "Art Deco", "Garden"},
			Coordinates: Coordinates{Lat: 25.7876, Lng: -80.1302},
		},
	},
	"Boston": {
		{
			Name:        "Four Seasons Hotel Boston",
			Location:    "Boston",
			Address:     "200 Boylston St, Boston, MA 02116",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-10.jpg",
			Images:      []string{"/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg"},
			Amenities:   []string{"Spa", "Pool", "Bristol Lounge", "Free WiFi", "Fitness Center", "Public Garden Views", "Concierge"},
			Coordinates: Coordinates{Lat: 42.3519, Lng: -71.0707},
		},
		{
			Name:        "The Langham, Boston",
			Location:    "Boston",
			Address:     "250 Franklin St, Boston, MA 02110",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-11.jpg",
			Images:      []string{"/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg"},
			Amenities:   []string{"Grill 23 & Bar", "Bond Lounge", "Spa", "Free WiFi", "Fitness Center", "Former Federal Reserve", "Concierge"},
			Coordinates: Coordinates{Lat: 42.3558, Lng: -71.0539},
		},
		{
			Name:        "Boston Harbor Hotel",
			Location:    "Boston",
			Address:     "70 Rowes Wharf, Boston, MA 02110",
			Stars:       5,
			Rating:      4.7,
			Image:       "/images/hotels/generic-12.jpg",
			Images:      []string{"/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg"},
			Amenities:   []string{"Rowes Wharf Bar", "Spa", "Harbor Views", "Free WiFi", "Fitness Center", "Boat Access", "Wine Festival"},
			Coordinates: Coordinates{Lat: 42.3561, Lng: -71.0502},
		},
		{
			Name:        "Mandarin Oriental, Boston",
			Location:    "Boston",
			Address:     "776 Boylston St, Boston, MA 02199",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-13.jpg",
			Images:      []string{"/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg"},
			Amenities:   []string{"Bar Boulud", "Spa", "Free WiFi", "Fitness Center", "Back Bay", "Fenway Park Views", "Concierge"},
			Coordinates: Coordinates{Lat: 42.3478, Lng: -71.0827},
		},
		{
			Name:        "The Ritz-Carlton, Boston",
			Location:    "Boston",
			Address:     "10 Avery St, Boston, MA 02111",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"Artisan Bistro", "Spa", "Free WiFi", "Fitness Center", "Downtown Crossing", "Theater District", "Club Lounge"},
			Coordinates: Coordinates{Lat: 42.3531, Lng: -71.0623},
		},
		{
			Name:        "XV Beacon",
			Location:    "Boston",
			Address:     "15 Beacon St, Boston, MA 02108",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Mooo.... Restaurant", "Free WiFi", "Fitness Center", "Beacon Hill", "Gas Fireplaces", "Pet Friendly", "Custom Minibar"},
			Coordinates: Coordinates{Lat: 42.3586, Lng: -71.0633},
		},
		{
			Name:        "The Liberty, A Luxury Collection Hotel",
			Location:    "Boston",
			Address:     "215 Charles St, Boston, MA 02114",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"Clink. Restaurant", "Alibi Bar", "Free WiFi", "Fitness Center", "Former Jail", "Historic Property", "Unique Design"},
			Coordinates: Coordinates{Lat: 42.3612, Lng: -71.0683},
		},
		{
			Name:        "Fairmont Copley Plaza",
			Location:    "Boston",
			Address:     "138 St James Ave, Boston, MA 02116",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-4.jpg",
			Images:      []string{"/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg"},
			Amenities:   []string{"OAK Long Bar + Kitchen", "Free WiFi", "Fitness Center", "Back Bay", "Historic Property", "Grand Ballroom", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 42.3495, Lng: -71.0771},
		},
		{
			Name:        "The Newbury Boston",
			Location:    "Boston",
			Address:     "1 Newbury St, Boston, MA 02116",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-5.jpg",
			Images:      []string{"/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg"},
			Amenities:   []string{"Contessa Restaurant", "Rooftop", "Free WiFi", "Fitness Center", "Public Garden Views", "Newbury Street", "Spa"},
			Coordinates: Coordinates{Lat: 42.3536, Lng: -71.0708},
		},
		{
			Name:        "The Eliot Hotel",
			Location:    "Boston",
			Address:     "370 Commonwealth Ave, Boston, MA 02215",
			Stars:       5,
			Rating:      4.6,
			Image:       "/images/hotels/generic-6.jpg",
			Images:      []string{"/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg"},
			Amenities:   []string{"Uni Restaurant", "Free WiFi", "Fitness Center", "Back Bay", "Suites", "Kitchenettes", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 42.3495, Lng: -71.0884},
		},
		{
			Name:        "Omni Parker House",
			Location:    "Boston",
			Address:     "60 School St, Boston, MA 02108",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-7.jpg",
			Images:      []string{"/images/hotels/generic-7.jpg", "/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg"},
			Amenities:   []string{"Parker's Restaurant", "Last Hurrah Bar", "Free WiFi", "Fitness Center", "Oldest Hotel", "Freedom Trail", "Boston Cream Pie"},
			Coordinates: Coordinates{Lat: 42.3579, Lng: -71.0599},
		},
		{
			Name:        "The Lenox Hotel",
			Location:    "Boston",
			Address:     "61 Exeter St, Boston, MA 02116",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-8.jpg",
			Images:      []string{"/images/hotels/generic-8.jpg", "/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg"},
			Amenities:   []string{"City Table", "City Bar", "Free WiFi", "Fitness Center", "Back Bay", "Fireplaces", "Historic Property"},
			Coordinates: Coordinates{Lat: 42.3493, Lng: -71.0794},
		},
		{
			Name:        "Hotel Commonwealth",
			Location:    "Boston",
			Address:     "500 Commonwealth Ave, Boston, MA 02215",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-9.jpg",
			Images:      []string{"/images/hotels/generic-9.jpg", "/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg"},
			Amenities:   []string{"Island Creek Oyster Bar", "Hawthorne Bar", "Free WiFi", "Fitness Center", "Fenway", "Red Sox", "Rooftop"},
			Coordinates: Coordinates{Lat: 42.3487, Lng: -71.0969},
		},
		{
			Name:        "Omni Boston Hotel at the Seaport",
			Location:    "Boston",
			Address:     "450 Summer St, Boston, MA 02210",
			Stars:       5,
			Rating:      4.5,
			Image:       "/images/hotels/generic-10.jpg",
			Images:      []string{"/images/hotels/generic-10.jpg", "/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg"},
			Amenities:   []string{"Rooftop Pool", "Spa", "Restaurants", "Free WiFi", "Fitness Center", "Seaport", "Harbor Views"},
			Coordinates: Coordinates{Lat: 42.3479, Lng: -71.0421},
		},
		{
			Name:        "The Godfrey Hotel Boston",
			Location:    "Boston",
			Address:     "505 Washington St, Boston, MA 02111",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-11.jpg",
			Images:      []string{"/images/hotels/generic-11.jpg", "/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg"},
			Amenities:   []string{"RUKA Restobar", "George Howell Coffee", "Free WiFi", "Fitness Center", "Downtown Crossing", "Modern Design", "Pet Friendly"},
			Coordinates: Coordinates{Lat: 42.3544, Lng: -71.0631},
		},
		{
			Name:        "The Bostonian Boston",
			Location:    "Boston",
			Address:     "26 North St, Boston, MA 02109",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-12.jpg",
			Images:      []string{"/images/hotels/generic-12.jpg", "/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg"},
			Amenities:   []string{"North 26 Restaurant", "Free WiFi", "Fitness Center", "Faneuil Hall", "Waterfront", "Historic District", "Balconies"},
			Coordinates: Coordinates{Lat: 42.3602, Lng: -71.0556},
		},
		{
			Name:        "citizenM Boston North Station",
			Location:    "Boston",
			Address:     "80-120 Causeway St, Boston, MA 02114",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-13.jpg",
			Images:      []string{"/images/hotels/generic-13.jpg", "/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg"},
			Amenities:   []string{"CanteenM", "CloudM Bar", "Free WiFi", "24hr Gym", "North Station", "TD Garden", "Modern Design"},
			Coordinates: Coordinates{Lat: 42.3661, Lng: -71.0621},
		},
		{
			Name:        "The Verb Hotel",
			Location:    "Boston",
			Address:     "1271 Boylston St, Boston, MA 02215",
			Stars:       4,
			Rating:      4.4,
			Image:       "/images/hotels/generic-1.jpg",
			Images:      []string{"/images/hotels/generic-1.jpg", "/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg"},
			Amenities:   []string{"Hojoko Restaurant", "Pool", "Free WiFi", "Fenway Park", "Rock 'n' Roll Theme", "Vinyl Records", "Retro Design"},
			Coordinates: Coordinates{Lat: 42.3473, Lng: -71.1007},
		},
		{
			Name:        "The Revolution Hotel",
			Location:    "Boston",
			Address:     "40 Berkeley St, Boston, MA 02116",
			Stars:       3,
			Rating:      4.2,
			Image:       "/images/hotels/generic-2.jpg",
			Images:      []string{"/images/hotels/generic-2.jpg", "/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg"},
			Amenities:   []string{"Cosmica Restaurant", "Free WiFi", "Fitness Center", "South End", "Modern Design", "Co-Working", "Budget Luxury"},
			Coordinates: Coordinates{Lat: 42.3507, Lng: -71.0721},
		},
		{
			Name:        "The Boxer Boston",
			Location:    "Boston",
			Address:     "107 Merrimac St, Boston, MA 02114",
			Stars:       4,
			Rating:      4.3,
			Image:       "/images/hotels/generic-3.jpg",
			Images:      []string{"/images/hotels/generic-3.jpg", "/images/hotels/generic-4.jpg", "/images/hotels/generic-5.jpg", "/images/hotels/generic-6.jpg", "/images/hotels/generic-7.jpg"},
			Amenities:   []string{"Finch Restaurant", "Free WiFi", "Fitness Center", "West End", "Boutique", "Pet Friendly", "TD Garden"},
			Coordinates: Coordinates{Lat: 42.3639, Lng: -71.0625},
		},
	},
}
