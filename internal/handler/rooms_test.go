package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelbook/internal/models"
)

func doRooms(t *testing.T, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/hotels/:id/rooms")
	c.SetParamNames("id")
	c.SetParamValues(id)

	if err := Rooms(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestRooms_Endpoint(t *testing.T) {
	rec := doRooms(t, "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp models.RoomsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.HotelID != 7 {
		t.Errorf("hotelId = %d", resp.HotelID)
	}
	// 3 + 7 mod 4
	if len(resp.Rooms) != 6 {
		t.Errorf("got %d rooms, want 6", len(resp.Rooms))
	}

	// Same hotel, same inventory.
	second := doRooms(t, "7")
	var respAgain models.RoomsResponse
	if err := json.Unmarshal(second.Body.Bytes(), &respAgain); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(resp, respAgain) {
		t.Error("room inventory changed between calls")
	}
}

func TestRooms_BadID(t *testing.T) {
	for _, id := range []string{"0", "-3", "abc", ""} {
		rec := doRooms(t, id)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("id %q: status %d, want 400", id, rec.Code)
		}
	}
}
