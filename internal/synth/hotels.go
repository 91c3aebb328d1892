package synth

import (
	"math/rand"
	"sort"

	"github.com/dharmasatrya/travelbook/internal/catalog"
	"github.com/dharmasatrya/travelbook/internal/models"
	"github.com/dharmasatrya/travelbook/pkg/currency"
)

// HotelGenerator maps a search to the city's catalog slice and attaches
// synthesized commercial fields.
type HotelGenerator struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

func NewHotelGenerator(c *catalog.Catalog, rng *rand.Rand) *HotelGenerator {
	return &HotelGenerator{catalog: c, rng: rng}
}

// nightlyFloor keys the price band to the star count.
func nightlyFloor(stars int) int {
	switch stars {
	case 5:
		return 300
	case 4:
		return 150
	default:
		return 100
	}
}

// Generate returns the city's hotels sorted descending by rating, with
// per-search nightly price, total-stay price and review-count fields. An unknown city yields an
// empty list, not an error; presenting "no results" is the caller's job.
func (g *HotelGenerator) Generate(req *models.SearchData) []models.Hotel {
	city := catalog.CityFromLocation(req.Location)
	records := g.catalog.Hotels(city)

	// Same-day RFC 3339 stays still bill one night.
	nights := req.Nights()
	if nights < 1 {
		nights = 1
	}

	results := make([]models.Hotel, len(records))
	for i, r := range records {
		price := g.rng.Intn(200) + nightlyFloor(r.Stars)
		total := price * nights
		results[i] = models.Hotel{
			ID:             i + 1,
			Name:           r.Name,
			Location:       r.Location,
			Address:        r.Address,
			Stars:          r.Stars,
			Rating:         r.Rating,
			ReviewCount:    500 + g.rng.Intn(2000),
			PricePerNight:  price,
			PriceFormatted: currency.FormatUSD(price),
			TotalPrice:     total,
			TotalFormatted: currency.FormatUSD(total),
			Image:          r.Image,
			Images:         r.Images,
			Amenities:      r.Amenities,
			Coordinates:    r.Coordinates,
			Description:    r.Description,
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rating > results[j].Rating
	})

	return results
}
