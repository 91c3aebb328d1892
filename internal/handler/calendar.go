package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelbook/internal/models"
	"github.com/dharmasatrya/travelbook/internal/pricing"
)

// Calendar limit: one response covers at most a year of dates.
const maxCalendarDays = 366

// Calendar serves GET /api/v1/calendar?start=YYYY-MM-DD&end=YYYY-MM-DD
// with a price category per date, for fare-calendar display.
func Calendar(c echo.Context) error {
	start, err := time.Parse("2006-01-02", c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_start",
			Message: "start must be a YYYY-MM-DD date",
			Code:    http.StatusBadRequest,
		})
	}

	end, err := time.Parse("2006-01-02", c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_end",
			Message: "end must be a YYYY-MM-DD date",
			Code:    http.StatusBadRequest,
		})
	}

	if end.Before(start) || end.Sub(start) > maxCalendarDays*24*time.Hour {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_range",
			Message: "end must be on or after start and within a year",
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"categories": pricing.ClassifyRange(start, end),
	})
}
