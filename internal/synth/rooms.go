package synth

import (
	"fmt"

	"github.com/dharmasatrya/travelbook/internal/models"
	"github.com/dharmasatrya/travelbook/pkg/currency"
)

// roomTemplate is one entry of the fixed room lineup. A hotel's rooms
// are always a prefix of this list, so a bigger hotel id changes the
// room count, never the mix.
type roomTemplate struct {
	name       string
	capacity   string
	bedConfig  string
	bedCount   int
	basePrice  int
	features   []string
	imageCount int
	discount   int // 0 means not discountable
}

var roomTemplates = []roomTemplate{
	{
		name:       "Deluxe King Room",
		capacity:   "Sleeps 2",
		bedConfig:  "1 King Bed",
		bedCount:   1,
		basePrice:  189,
		features:   []string{"Reserve now, pay later", "Free Wifi", "City View", "Work Desk"},
		imageCount: 3,
	},
	{
		name:       "Premier Double Queen",
		capacity:   "Sleeps 4",
		bedConfig:  "2 Queen Beds",
		bedCount:   2,
		basePrice:  229,
		features:   []string{"Reserve now, pay later", "Free Wifi", "Mini Fridge", "Coffee Maker"},
		imageCount: 4,
		discount:   30,
	},
	{
		name:       "Suite (Level)",
		capacity:   "Sleeps 3",
		bedConfig:  "1 King Bed + Sofa Bed",
		bedCount:   2,
		basePrice:  329,
		features:   []string{"Reserve now, pay later", "Free Wifi", "Separate Living Area", "Premium Toiletries"},
		imageCount: 5,
	},
	{
		name:       "Executive Corner Suite",
		capacity:   "Sleeps 4",
		bedConfig:  "1 King Bed + Sofa Bed",
		bedCount:   2,
		basePrice:  409,
		features:   []string{"Reserve now, pay later", "Free Wifi", "Corner Views", "Executive Lounge Access"},
		imageCount: 5,
		discount:   50,
	},
	{
		name:       "Family Suite",
		capacity:   "Sleeps 6",
		bedConfig:  "2 Queen Beds + Sofa Bed",
		bedCount:   3,
		basePrice:  469,
		features:   []string{"Reserve now, pay later", "Free Wifi", "Kitchenette", "Two Bathrooms"},
		imageCount: 6,
	},
	{
		name:       "Penthouse Suite",
		capacity:   "Sleeps 4",
		bedConfig:  "1 King Bed + 1 Queen Bed",
		bedCount:   2,
		basePrice:  799,
		features:   []string{"Reserve now, pay later", "Free Wifi", "Panoramic Terrace", "Butler Service"},
		imageCount: 8,
		discount:   100,
	},
}

// Shared pool of generic room photos; each room takes a prefix.
var roomImagePool = func() []string {
	pool := make([]string, 10)
	for i := range pool {
		pool[i] = fmt.Sprintf("/images/rooms/room-%d.jpg", i+1)
	}
	return pool
}()

// Rooms derives the room inventory for a hotel. This is a pure function
// of the hotel id: no randomness, so repeated calls return identical
// offers and availability numbers.
func Rooms(hotelID int) []models.Room {
	count := 3 + hotelID%4
	rooms := make([]models.Room, 0, count)

	for i := 0; i < count; i++ {
		tmpl := roomTemplates[i]

		room := models.Room{
			ID:            hotelID*100 + i + 1,
			Name:          tmpl.name,
			Images:        roomImagePool[:tmpl.imageCount],
			Capacity:      tmpl.capacity,
			BedConfig:     tmpl.bedConfig,
			BedCount:      tmpl.bedCount,
			Features:      tmpl.features,
			PricePerNight: tmpl.basePrice,
			Availability:  1 + (hotelID*7+i*3)%10,
		}

		if tmpl.discount > 0 {
			room.OriginalPrice = tmpl.basePrice
			room.Discount = tmpl.discount
			room.PricePerNight = tmpl.basePrice - tmpl.discount
		}
		room.PriceFormatted = currency.FormatUSD(room.PricePerNight)

		rooms = append(rooms, room)
	}

	return rooms
}
