package synth

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dharmasatrya/travelbook/internal/catalog"
	"github.com/dharmasatrya/travelbook/internal/models"
	"github.com/dharmasatrya/travelbook/pkg/currency"
)

func hotelRequest(location string) *models.SearchData {
	return &models.SearchData{
		SearchType: models.SearchTypeHotels,
		Location:   location,
		CheckIn:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Passengers: models.Passengers{Adults: 2, Total: 2},
	}
}

func newHotelGen(seed int64) *HotelGenerator {
	return NewHotelGenerator(catalog.New(), rand.New(rand.NewSource(seed)))
}

func TestHotelGenerator_RatingOrdering(t *testing.T) {
	gen := newHotelGen(1)
	hotels := gen.Generate(hotelRequest("New York, NY"))
	if len(hotels) == 0 {
		t.Fatal("no hotels for New York")
	}
	for i := 1; i < len(hotels); i++ {
		if hotels[i].Rating > hotels[i-1].Rating {
			t.Fatalf("rating increases at index %d: %.1f > %.1f",
				i, hotels[i].Rating, hotels[i-1].Rating)
		}
	}
}

func TestHotelGenerator_UnknownCity(t *testing.T) {
	gen := newHotelGen(1)
	hotels := gen.Generate(hotelRequest("Nowhereville"))
	if len(hotels) != 0 {
		t.Errorf("expected empty result for unknown city, got %d hotels", len(hotels))
	}
}

func TestHotelGenerator_CityTokenExtraction(t *testing.T) {
	gen := newHotelGen(1)

	// The leading comma-delimited token selects the catalog key, so the
	// state suffix must not matter.
	withSuffix := gen.Generate(hotelRequest("Chicago, IL"))
	bare := gen.Generate(hotelRequest("Chicago"))

	if len(withSuffix) == 0 || len(withSuffix) != len(bare) {
		t.Errorf("got %d hotels with suffix, %d without", len(withSuffix), len(bare))
	}
}

func TestHotelGenerator_PriceBands(t *testing.T) {
	gen := newHotelGen(8)
	for run := 0; run < 5; run++ {
		for _, h := range gen.Generate(hotelRequest("Miami, FL")) {
			floor := 100
			switch h.Stars {
			case 5:
				floor = 300
			case 4:
				floor = 150
			}
			if h.PricePerNight < floor || h.PricePerNight >= floor+200 {
				t.Errorf("%s (%d stars): price %d outside [%d,%d)",
					h.Name, h.Stars, h.PricePerNight, floor, floor+200)
			}
			if h.ReviewCount < 500 || h.ReviewCount >= 2500 {
				t.Errorf("%s: review count %d outside [500,2500)", h.Name, h.ReviewCount)
			}
		}
	}
}

func TestHotelGenerator_TotalStayPrice(t *testing.T) {
	gen := newHotelGen(3)

	// hotelRequest covers Mar 1 to Mar 5, a 4-night stay.
	for _, h := range gen.Generate(hotelRequest("Miami, FL")) {
		if h.TotalPrice != h.PricePerNight*4 {
			t.Errorf("%s: total %d, want %d for 4 nights at %d",
				h.Name, h.TotalPrice, h.PricePerNight*4, h.PricePerNight)
		}
		if h.TotalFormatted != currency.FormatUSD(h.TotalPrice) {
			t.Errorf("%s: total formatted %q does not match %d", h.Name, h.TotalFormatted, h.TotalPrice)
		}
	}

	// A stay under a full day still bills one night.
	short := hotelRequest("Miami, FL")
	short.CheckOut = short.CheckIn.Add(6 * time.Hour)
	for _, h := range gen.Generate(short) {
		if h.TotalPrice != h.PricePerNight {
			t.Errorf("%s: short stay total %d, want one night at %d",
				h.Name, h.TotalPrice, h.PricePerNight)
		}
	}
}

func TestHotelGenerator_IDsFollowCatalogOrder(t *testing.T) {
	cat := catalog.New()
	gen := NewHotelGenerator(cat, rand.New(rand.NewSource(2)))

	hotels := gen.Generate(hotelRequest("Boston, MA"))
	records := cat.Hotels("Boston")
	if len(hotels) != len(records) {
		t.Fatalf("got %d hotels, catalog has %d", len(hotels), len(records))
	}

	// IDs are 1-based catalog positions, so HotelByID must round-trip
	// every result back to its static record.
	for _, h := range hotels {
		record, ok := cat.HotelByID("Boston", h.ID)
		if !ok {
			t.Fatalf("HotelByID(Boston, %d) not found", h.ID)
		}
		if record.Name != h.Name {
			t.Errorf("id %d: name %q does not match catalog %q", h.ID, h.Name, record.Name)
		}
	}
}

func TestHotelGenerator_StaticFieldsCarriedOver(t *testing.T) {
	gen := newHotelGen(4)
	for _, h := range gen.Generate(hotelRequest("San Francisco, CA")) {
		if h.Address == "" || h.Image == "" || len(h.Images) == 0 || len(h.Amenities) == 0 {
			t.Errorf("%s: missing static fields", h.Name)
		}
		if h.Description == "" {
			t.Errorf("%s: missing description", h.Name)
		}
		if h.Stars < 3 || h.Stars > 5 {
			t.Errorf("%s: stars %d outside 3-5", h.Name, h.Stars)
		}
	}
}
