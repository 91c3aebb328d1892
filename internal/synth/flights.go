// Package synth generates mock flight, hotel and room offers from the
// static catalog plus an injected random source. Randomness always comes
// from the caller-supplied *rand.Rand so tests can fix the seed and
// assert exact output. A rand shared across generators or goroutines
// must come from NewRand; a bare rand.Rand is not safe for concurrent
// Generate calls.
package synth

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"

	"github.com/dharmasatrya/travelbook/internal/catalog"
	"github.com/dharmasatrya/travelbook/internal/models"
	"github.com/dharmasatrya/travelbook/pkg/currency"
)

// Fallback airport codes when the location string carries no (XXX) code.
const (
	defaultOriginCode      = "NYC"
	defaultDestinationCode = "LAX"
)

var airportCodeRe = regexp.MustCompile(`\(([A-Z]{3})\)`)

// FlightGenerator synthesizes flight offers for a search.
type FlightGenerator struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

func NewFlightGenerator(c *catalog.Catalog, rng *rand.Rand) *FlightGenerator {
	return &FlightGenerator{catalog: c, rng: rng}
}

// airportCode pulls a 3-letter parenthetical code out of a location
// string, e.g. "New York (JFK)" -> "JFK".
func airportCode(location, fallback string) string {
	if m := airportCodeRe.FindStringSubmatch(location); m != nil {
		return m[1]
	}
	return fallback
}

// Generate produces 5-8 offers for the request, sorted ascending by
// price. It never fails on a validated SearchData: a missing destination
// just falls back to the default arrival code.
func (g *FlightGenerator) Generate(req *models.SearchData) []models.Flight {
	airlines := g.catalog.Airlines()

	fromCode := airportCode(req.Location, defaultOriginCode)
	toCode := airportCode(req.Destination, defaultDestinationCode)

	numFlights := 5 + g.rng.Intn(4)
	results := make([]models.Flight, 0, numFlights)

	for i := 0; i < numFlights; i++ {
		airline := airlines[g.rng.Intn(len(airlines))]
		basePrice := 200 + g.rng.Intn(600)

		// Skewed stop distribution: most flights are nonstop.
		stops := 2
		if g.rng.Float64() > 0.6 {
			stops = 0
		} else if g.rng.Float64() > 0.5 {
			stops = 1
		}

		departureHour := 6 + g.rng.Intn(16)
		departureMin := g.rng.Intn(60)

		baseDuration := 120 + g.rng.Intn(300)
		layoverTime := stops * (60 + g.rng.Intn(60))
		totalDuration := baseDuration + layoverTime

		// Arrival clock wraps across midnight.
		arrivalTotalMins := departureHour*60 + departureMin + totalDuration
		arrivalHour := (arrivalTotalMins / 60) % 24
		arrivalMin := arrivalTotalMins % 60

		price := basePrice * req.Passengers.Total

		results = append(results, models.Flight{
			ID:           i + 1,
			Airline:      airline,
			FlightNumber: fmt.Sprintf("%s%d", strings.ToUpper(airline[:2]), 1000+g.rng.Intn(9000)),
			Departure: models.Endpoint{
				Airport: fromCode,
				Time:    fmt.Sprintf("%02d:%02d", departureHour, departureMin),
			},
			Arrival: models.Endpoint{
				Airport: toCode,
				Time:    fmt.Sprintf("%02d:%02d", arrivalHour, arrivalMin),
			},
			Duration:       fmt.Sprintf("%dh %dm", totalDuration/60, totalDuration%60),
			Price:          price,
			PriceFormatted: currency.FormatUSD(price),
			Stops:          stops,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})

	return results
}
