// Package store owns the session state that outlives a single request:
// the current selection, the points balance, the sign-in flag and the
// append-only booking list. It is a plain mutex-guarded object with an
// explicit observer list; no framework reactivity.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dharmasatrya/travelbook/internal/models"
)

// StartingPointsBalance is the rewards balance every fresh session opens
// with, matching the mock redemption flow on the checkout page.
const StartingPointsBalance = 86060

var ErrInsufficientPoints = errors.New("insufficient points balance")

// Listener is notified after every state mutation.
type Listener func()

type Store struct {
	mu sync.RWMutex

	searchData     *models.SearchData
	selectedFlight *models.Flight
	selectedHotel  *models.Hotel
	selectedRoom   *models.Room

	pointsBalance int
	signedIn      bool
	bookings      []models.Booking

	listeners []Listener
}

func New() *Store {
	return &Store{pointsBalance: StartingPointsBalance}
}

// Subscribe registers a change listener. Listeners run synchronously
// after the mutation, outside the store lock.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

func (s *Store) SetSearchData(data *models.SearchData) {
	s.mu.Lock()
	s.searchData = data
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SearchData() *models.SearchData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchData
}

func (s *Store) SelectFlight(f *models.Flight) {
	s.mu.Lock()
	s.selectedFlight = f
	s.mu.Unlock()
	s.notify()
}

func (s *Store) ClearSelectedFlight() {
	s.SelectFlight(nil)
}

func (s *Store) SelectedFlight() *models.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedFlight
}

func (s *Store) SelectHotel(h *models.Hotel) {
	s.mu.Lock()
	s.selectedHotel = h
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SelectedHotel() *models.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedHotel
}

func (s *Store) SelectRoom(r *models.Room) {
	s.mu.Lock()
	s.selectedRoom = r
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SelectedRoom() *models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedRoom
}

// ClearSearch drops the active search and any selection made from it.
// Completed bookings and the points balance are untouched.
func (s *Store) ClearSearch() {
	s.mu.Lock()
	s.searchData = nil
	s.selectedFlight = nil
	s.selectedHotel = nil
	s.selectedRoom = nil
	s.mu.Unlock()
	s.notify()
}

func (s *Store) PointsBalance() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pointsBalance
}

// RedeemPoints decrements the balance, or reports ErrInsufficientPoints
// without touching state when the balance cannot cover the amount.
func (s *Store) RedeemPoints(amount int) (int, error) {
	s.mu.Lock()
	if amount > s.pointsBalance {
		balance := s.pointsBalance
		s.mu.Unlock()
		return balance, fmt.Errorf("redeem %d points with balance %d: %w", amount, balance, ErrInsufficientPoints)
	}
	s.pointsBalance -= amount
	balance := s.pointsBalance
	s.mu.Unlock()

	s.notify()
	return balance, nil
}

func (s *Store) SignIn() {
	s.setSignedIn(true)
}

func (s *Store) SignOut() {
	s.setSignedIn(false)
}

func (s *Store) setSignedIn(v bool) {
	s.mu.Lock()
	s.signedIn = v
	s.mu.Unlock()
	s.notify()
}

func (s *Store) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signedIn
}

// newBookingID builds a time+random composite id, e.g.
// "BK-1767225600000-1a2b3c4d".
func newBookingID(now time.Time) string {
	return fmt.Sprintf("BK-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// RecordBooking stamps id and booking date onto a finalized selection
// and appends it. Bookings are never mutated or removed afterwards.
func (s *Store) RecordBooking(b models.Booking) models.Booking {
	b.ID = newBookingID(time.Now())
	b.BookingDate = time.Now().UTC()

	s.mu.Lock()
	s.bookings = append(s.bookings, b)
	s.mu.Unlock()

	s.notify()
	return b
}

// Bookings returns a copy of the booking list, oldest first.
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}
