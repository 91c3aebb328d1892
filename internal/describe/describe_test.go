package describe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerate_Tiers(t *testing.T) {
	luxury := Generate(HotelInfo{Name: "The Ritz-Carlton New York, Central Park", Location: "New York", Stars: 5})
	if !strings.HasPrefix(luxury, "Luxury") {
		t.Errorf("luxury brand got %q", luxury)
	}
	if !strings.Contains(luxury, "Manhattan") {
		t.Errorf("New York description missing area: %q", luxury)
	}

	fiveStar := Generate(HotelInfo{Name: "The Langham Chicago", Location: "Chicago", Stars: 5})
	if !strings.HasPrefix(fiveStar, "Five-star") {
		t.Errorf("five-star non-flagship got %q", fiveStar)
	}
	if !strings.Contains(fiveStar, "downtown Chicago") {
		t.Errorf("Chicago description missing area: %q", fiveStar)
	}

	standard := Generate(HotelInfo{Name: "Hotel Commonwealth", Location: "Boston", Stars: 4})
	if !strings.HasPrefix(standard, "Well-appointed") {
		t.Errorf("standard hotel got %q", standard)
	}
}

func TestGenerate_LuxurySignals(t *testing.T) {
	for _, name := range []string{
		"Four Seasons Hotel Miami",
		"The Peninsula Chicago",
		"Mandarin Oriental New York",
	} {
		got := Generate(HotelInfo{Name: name, Location: "Miami", Stars: 4})
		if !strings.HasPrefix(got, "Luxury") {
			t.Errorf("%s: expected luxury tier, got %q", name, got)
		}
	}
}

func TestGenerate_UnknownCityFallsBack(t *testing.T) {
	got := Generate(HotelInfo{Name: "Plain Inn", Location: "Springfield", Stars: 3})
	if !strings.Contains(got, "springfield") {
		t.Errorf("unknown city should lowercase the name: %q", got)
	}
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider()
	hotel := HotelInfo{Name: "The Plaza Hotel", Location: "New York", Stars: 5}

	got, err := p.Describe(context.Background(), hotel)
	if err != nil {
		t.Fatal(err)
	}
	if got != Generate(hotel) {
		t.Error("static provider must serve the generated text")
	}
}

func TestWikipediaProvider_UsesExtract(t *testing.T) {
	extract := strings.Repeat("The Plaza is a storied hotel on Fifth Avenue. ", 5)
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode(map[string]string{"extract": extract})
	}))
	defer srv.Close()

	p := NewWikipediaProvider(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	hotel := HotelInfo{Name: "The Plaza Hotel", Location: "New York", Stars: 5}

	got, err := p.Describe(context.Background(), hotel)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "storied hotel") {
		t.Errorf("expected wikipedia extract, got %q", got)
	}

	// Second lookup must come from the cache.
	if _, err := p.Describe(context.Background(), hotel); err != nil {
		t.Fatal(err)
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (cache miss only)", hits)
	}
}

func TestWikipediaProvider_ShortExtractFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"extract": "Too short."})
	}))
	defer srv.Close()

	p := NewWikipediaProvider(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	hotel := HotelInfo{Name: "Hotel Commonwealth", Location: "Boston", Stars: 4}

	got, err := p.Describe(context.Background(), hotel)
	if err != nil {
		t.Fatal(err)
	}
	if got != Generate(hotel) {
		t.Errorf("expected generated fallback, got %q", got)
	}
}

func TestWikipediaProvider_ErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewWikipediaProvider(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	hotel := HotelInfo{Name: "Plain Inn", Location: "Springfield", Stars: 3}

	got, err := p.Describe(context.Background(), hotel)
	if err != nil {
		t.Fatal(err)
	}
	if got != Generate(hotel) {
		t.Errorf("expected generated fallback, got %q", got)
	}
}

func TestClean(t *testing.T) {
	in := "A grand   hotel[1] on the park.[2] "
	want := "A grand hotel on the park."
	if got := clean(in); got != want {
		t.Errorf("clean(%q) = %q, want %q", in, got, want)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	if _, ok := c.Get("missing"); ok {
		t.Error("empty cache reported a hit")
	}
	c.Set("k", "v")
	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Errorf("Get(k) = %q, %v", v, ok)
	}
}
