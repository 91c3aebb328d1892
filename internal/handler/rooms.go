package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelbook/internal/models"
	"github.com/dharmasatrya/travelbook/internal/synth"
)

// Rooms serves GET /api/v1/hotels/:id/rooms. Room inventory is a pure
// function of the hotel id, so this endpoint always returns the same
// rooms for the same hotel.
func Rooms(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_hotel_id",
			Message: "Hotel id must be a positive integer",
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, models.RoomsResponse{
		HotelID: id,
		Rooms:   synth.Rooms(id),
	})
}
