package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelbook/internal/catalog"
	"github.com/dharmasatrya/travelbook/internal/describe"
)

func doDescription(t *testing.T, id, city string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewDescriptionHandler(catalog.New(), describe.NewStaticProvider())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?city="+url.QueryEscape(city), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/hotels/:id/description")
	c.SetParamNames("id")
	c.SetParamValues(id)

	if err := h.Description(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestDescription_Endpoint(t *testing.T) {
	rec := doDescription(t, "1", "New York")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["name"] != "The Plaza Hotel" {
		t.Errorf("name = %q", resp["name"])
	}
	if resp["description"] == "" {
		t.Error("empty description")
	}
}

func TestDescription_NotFound(t *testing.T) {
	if rec := doDescription(t, "999", "New York"); rec.Code != http.StatusNotFound {
		t.Errorf("out-of-range id: status %d, want 404", rec.Code)
	}
	if rec := doDescription(t, "1", "Nowhereville"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown city: status %d, want 404", rec.Code)
	}
	if rec := doDescription(t, "abc", "New York"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: status %d, want 400", rec.Code)
	}
}

func TestLocations_Endpoint(t *testing.T) {
	h := NewLocationsHandler(catalog.New())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Locations(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp struct {
		Locations []catalog.Location `json:"locations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Locations) != 6 {
		t.Errorf("got %d locations, want 6", len(resp.Locations))
	}
}
