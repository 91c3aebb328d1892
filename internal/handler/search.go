package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelbook/internal/cache"
	"github.com/dharmasatrya/travelbook/internal/models"
	"github.com/dharmasatrya/travelbook/internal/synth"
)

type SearchHandler struct {
	flights *synth.FlightGenerator
	hotels  *synth.HotelGenerator
	cache   cache.Cache
}

func NewSearchHandler(flights *synth.FlightGenerator, hotels *synth.HotelGenerator, c cache.Cache) *SearchHandler {
	return &SearchHandler{
		flights: flights,
		hotels:  hotels,
		cache:   c,
	}
}

// Search serves GET /api/v1/search. The raw query bag is validated as a
// whole; any rule failure rejects the entire request with the full list
// of problems.
func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var q models.SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse query parameters: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	req, err := models.ParseSearchQuery(q)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if req.SearchType == models.SearchTypeHotels {
		return h.searchHotels(c, req, startTime)
	}

	cacheHit := false
	flights, found := h.cache.GetFlights(ctx, req)
	if found {
		cacheHit = true
	} else {
		flights = h.flights.Generate(req)
		_ = h.cache.SetFlights(ctx, req, flights)
	}

	return c.JSON(http.StatusOK, models.FlightSearchResponse{
		SearchData: *req,
		Metadata: models.SearchMetadata{
			TotalResults: len(flights),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
		Flights: flights,
	})
}

func (h *SearchHandler) searchHotels(c echo.Context, req *models.SearchData, startTime time.Time) error {
	ctx := c.Request().Context()

	cacheHit := false
	hotels, found := h.cache.GetHotels(ctx, req)
	if found {
		cacheHit = true
	} else {
		hotels = h.hotels.Generate(req)
		_ = h.cache.SetHotels(ctx, req, hotels)
	}

	return c.JSON(http.StatusOK, models.HotelSearchResponse{
		SearchData: *req,
		Metadata: models.SearchMetadata{
			TotalResults: len(hotels),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
		Hotels: hotels,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
