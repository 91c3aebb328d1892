package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelbook/internal/models"
	"github.com/dharmasatrya/travelbook/internal/store"
)

func doJSON(t *testing.T, handlerFn echo.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handlerFn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestCreateBooking_Flight(t *testing.T) {
	h := NewBookingHandler(store.New())

	body := `{"type":"flight","flight":{"id":1,"airline":"Delta Air Lines","price":420}}`
	rec := doJSON(t, h.CreateBooking, http.MethodPost, "/api/v1/bookings", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var booked models.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &booked); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(booked.ID, "BK-") {
		t.Errorf("booking id %q missing prefix", booked.ID)
	}
	if booked.BookingDate.IsZero() {
		t.Error("booking date not stamped")
	}
}

func TestCreateBooking_Invalid(t *testing.T) {
	h := NewBookingHandler(store.New())

	tests := []struct {
		name string
		body string
	}{
		{"bad type", `{"type":"cruise"}`},
		{"flight without flight", `{"type":"flight"}`},
		{"hotel without hotel", `{"type":"hotel"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h.CreateBooking, http.MethodPost, "/api/v1/bookings", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status %d, want 400", rec.Code)
			}
		})
	}
}

func TestListBookings(t *testing.T) {
	s := store.New()
	s.RecordBooking(models.Booking{Type: models.BookingTypeFlight, Flight: &models.Flight{ID: 1}})
	h := NewBookingHandler(s)

	rec := doJSON(t, h.ListBookings, http.MethodGet, "/api/v1/bookings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Bookings) != 1 {
		t.Errorf("got %d bookings, want 1", len(resp.Bookings))
	}
}

func TestRedeemPoints_Endpoint(t *testing.T) {
	h := NewBookingHandler(store.New())

	rec := doJSON(t, h.RedeemPoints, http.MethodPost, "/api/v1/points/redeem", `{"amount":86060}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var resp redeemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Balance != 0 {
		t.Errorf("balance = %d, want 0", resp.Balance)
	}

	// A drained balance rejects further redemption explicitly.
	rec = doJSON(t, h.RedeemPoints, http.MethodPost, "/api/v1/points/redeem", `{"amount":1}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("status %d, want 409", rec.Code)
	}
}

func TestRedeemPoints_BadAmount(t *testing.T) {
	h := NewBookingHandler(store.New())

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{}`} {
		rec := doJSON(t, h.RedeemPoints, http.MethodPost, "/api/v1/points/redeem", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status %d, want 400", body, rec.Code)
		}
	}
}

func TestSession(t *testing.T) {
	s := store.New()
	h := NewBookingHandler(s)

	doJSON(t, h.SignIn, http.MethodPost, "/api/v1/session/signin", "")
	if !s.SignedIn() {
		t.Error("SignIn endpoint did not set the flag")
	}
	doJSON(t, h.SignOut, http.MethodPost, "/api/v1/session/signout", "")
	if s.SignedIn() {
		t.Error("SignOut endpoint did not clear the flag")
	}
}
