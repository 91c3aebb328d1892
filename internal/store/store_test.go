package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/dharmasatrya/travelbook/internal/models"
)

func TestRedeemPoints_Boundary(t *testing.T) {
	s := New()
	if s.PointsBalance() != StartingPointsBalance {
		t.Fatalf("starting balance = %d, want %d", s.PointsBalance(), StartingPointsBalance)
	}

	balance, err := s.RedeemPoints(StartingPointsBalance)
	if err != nil {
		t.Fatalf("redeeming exact balance failed: %v", err)
	}
	if balance != 0 {
		t.Errorf("balance after full redemption = %d, want 0", balance)
	}

	balance, err = s.RedeemPoints(1)
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
	if balance != 0 || s.PointsBalance() != 0 {
		t.Errorf("overdraft changed balance: %d", s.PointsBalance())
	}
}

func TestRedeemPoints_Partial(t *testing.T) {
	s := New()
	balance, err := s.RedeemPoints(10000)
	if err != nil {
		t.Fatal(err)
	}
	if want := StartingPointsBalance - 10000; balance != want {
		t.Errorf("balance = %d, want %d", balance, want)
	}
}

func TestSelectFlight(t *testing.T) {
	s := New()
	f := &models.Flight{ID: 1, Airline: "JetBlue Airways", Price: 420}

	s.SelectFlight(f)
	if got := s.SelectedFlight(); got != f {
		t.Errorf("SelectedFlight = %v", got)
	}

	s.ClearSelectedFlight()
	if s.SelectedFlight() != nil {
		t.Error("flight still selected after clear")
	}
}

func TestClearSearch(t *testing.T) {
	s := New()
	s.SetSearchData(&models.SearchData{SearchType: models.SearchTypeHotels, Location: "Boston"})
	s.SelectHotel(&models.Hotel{ID: 2, Name: "Test Hotel"})
	s.SelectRoom(&models.Room{ID: 201})
	s.RecordBooking(models.Booking{Type: models.BookingTypeHotel, Hotel: &models.Hotel{ID: 2}})

	s.ClearSearch()

	if s.SearchData() != nil || s.SelectedHotel() != nil || s.SelectedRoom() != nil {
		t.Error("ClearSearch left selection state behind")
	}
	if len(s.Bookings()) != 1 {
		t.Error("ClearSearch must not drop completed bookings")
	}
}

func TestRecordBooking(t *testing.T) {
	s := New()

	first := s.RecordBooking(models.Booking{
		Type:   models.BookingTypeFlight,
		Flight: &models.Flight{ID: 1},
	})
	second := s.RecordBooking(models.Booking{
		Type:  models.BookingTypeHotel,
		Hotel: &models.Hotel{ID: 3},
		Room:  &models.Room{ID: 301},
	})

	if !strings.HasPrefix(first.ID, "BK-") {
		t.Errorf("booking id %q missing BK- prefix", first.ID)
	}
	if first.ID == second.ID {
		t.Error("booking ids collide")
	}
	if first.BookingDate.IsZero() {
		t.Error("booking date not stamped")
	}

	bookings := s.Bookings()
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	if bookings[0].Type != models.BookingTypeFlight || bookings[1].Type != models.BookingTypeHotel {
		t.Error("bookings not in insertion order")
	}
}

func TestSignInOut(t *testing.T) {
	s := New()
	if s.SignedIn() {
		t.Error("fresh store should be signed out")
	}
	s.SignIn()
	if !s.SignedIn() {
		t.Error("SignIn did not set the flag")
	}
	s.SignOut()
	if s.SignedIn() {
		t.Error("SignOut did not clear the flag")
	}
}

func TestSubscribe(t *testing.T) {
	s := New()
	calls := 0
	s.Subscribe(func() { calls++ })

	s.SignIn()
	s.SelectFlight(&models.Flight{ID: 1})
	if _, err := s.RedeemPoints(100); err != nil {
		t.Fatal(err)
	}

	if calls != 3 {
		t.Errorf("listener called %d times, want 3", calls)
	}

	// A rejected redemption is not a mutation and must not notify.
	if _, err := s.RedeemPoints(StartingPointsBalance * 2); err == nil {
		t.Fatal("expected overdraft error")
	}
	if calls != 3 {
		t.Errorf("listener called on no-op, count %d", calls)
	}
}
