package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelbook/internal/models"
	"github.com/dharmasatrya/travelbook/internal/store"
)

type BookingHandler struct {
	store *store.Store
}

func NewBookingHandler(s *store.Store) *BookingHandler {
	return &BookingHandler{store: s}
}

// CreateBooking serves POST /api/v1/bookings. The body is a partial
// booking; id and booking date are stamped by the store.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var b models.Booking
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse booking body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	switch b.Type {
	case models.BookingTypeFlight:
		if b.Flight == nil {
			return badBooking(c, "flight booking requires a flight")
		}
	case models.BookingTypeHotel:
		if b.Hotel == nil {
			return badBooking(c, "hotel booking requires a hotel")
		}
	default:
		return badBooking(c, "type must be \"flight\" or \"hotel\"")
	}

	booked := h.store.RecordBooking(b)
	return c.JSON(http.StatusCreated, booked)
}

func badBooking(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_booking",
		Message: msg,
		Code:    http.StatusBadRequest,
	})
}

// ListBookings serves GET /api/v1/bookings, oldest first.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"bookings": h.store.Bookings(),
	})
}

type redeemRequest struct {
	Amount int `json:"amount"`
}

type redeemResponse struct {
	Redeemed int `json:"redeemed"`
	Balance  int `json:"balance"`
}

// RedeemPoints serves POST /api/v1/points/redeem. Overdrafts are
// rejected explicitly; the balance never goes negative.
func (h *BookingHandler) RedeemPoints(c echo.Context) error {
	var req redeemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse redeem body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_amount",
			Message: "amount must be a positive integer",
			Code:    http.StatusBadRequest,
		})
	}

	balance, err := h.store.RedeemPoints(req.Amount)
	if err != nil {
		if errors.Is(err, store.ErrInsufficientPoints) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "insufficient_points",
				Message: err.Error(),
				Code:    http.StatusConflict,
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "redeem_error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, redeemResponse{
		Redeemed: req.Amount,
		Balance:  balance,
	})
}

// PointsBalance serves GET /api/v1/points.
func (h *BookingHandler) PointsBalance(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{
		"balance": h.store.PointsBalance(),
	})
}

// SignIn and SignOut toggle the session flag backing the checkout page.
func (h *BookingHandler) SignIn(c echo.Context) error {
	h.store.SignIn()
	return c.JSON(http.StatusOK, map[string]bool{"signedIn": true})
}

func (h *BookingHandler) SignOut(c echo.Context) error {
	h.store.SignOut()
	return c.JSON(http.StatusOK, map[string]bool{"signedIn": false})
}
