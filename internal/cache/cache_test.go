package cache

import (
	"context"
	"testing"
	"time"

	"github.com/dharmasatrya/travelbook/internal/models"
)

func sampleSearch() *models.SearchData {
	return &models.SearchData{
		SearchType:  models.SearchTypeFlights,
		Location:    "New York (JFK)",
		Destination: "Chicago (ORD)",
		CheckIn:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Passengers:  models.Passengers{Adults: 2, Total: 2},
	}
}

func TestGenerateKey_Stable(t *testing.T) {
	a := generateKey("flights", sampleSearch())
	b := generateKey("flights", sampleSearch())
	if a != b {
		t.Error("same search produced different keys")
	}
}

func TestGenerateKey_FlexibilityIgnored(t *testing.T) {
	base := sampleSearch()
	flexible := sampleSearch()
	flexible.CheckInFlexibility = "plus-minus-1"

	if generateKey("flights", base) != generateKey("flights", flexible) {
		t.Error("flexibility modifiers must not change the cache key")
	}
}

func TestGenerateKey_Distinct(t *testing.T) {
	base := sampleSearch()
	keys := map[string]string{
		"base": generateKey("flights", base),
	}

	other := sampleSearch()
	other.Destination = "Miami (MIA)"
	keys["destination"] = generateKey("flights", other)

	other = sampleSearch()
	other.CheckIn = other.CheckIn.AddDate(0, 0, 1)
	keys["date"] = generateKey("flights", other)

	keys["kind"] = generateKey("hotels", base)

	seen := map[string]string{}
	for name, key := range keys {
		if prev, dup := seen[key]; dup {
			t.Errorf("%s and %s share a key", name, prev)
		}
		seen[key] = name
	}
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()
	req := sampleSearch()

	if err := c.SetFlights(ctx, req, []models.Flight{{ID: 1}}); err != nil {
		t.Fatal(err)
	}
	if _, found := c.GetFlights(ctx, req); found {
		t.Error("noop cache must never hit")
	}
	if _, found := c.GetHotels(ctx, req); found {
		t.Error("noop cache must never hit")
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}
