package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelbook/internal/catalog"
	"github.com/dharmasatrya/travelbook/internal/describe"
	"github.com/dharmasatrya/travelbook/internal/models"
)

// DescriptionHandler serves hotel prose through the configured
// description provider. The catalog already embeds generated
// descriptions; this endpoint exists for the richer, network-backed
// provider configured at startup.
type DescriptionHandler struct {
	catalog  *catalog.Catalog
	provider describe.Provider
}

func NewDescriptionHandler(c *catalog.Catalog, p describe.Provider) *DescriptionHandler {
	return &DescriptionHandler{catalog: c, provider: p}
}

// Description serves GET /api/v1/hotels/:id/description?city=<city>.
func (h *DescriptionHandler) Description(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_hotel_id",
			Message: "Hotel id must be a positive integer",
			Code:    http.StatusBadRequest,
		})
	}

	city := c.QueryParam("city")
	record, ok := h.catalog.HotelByID(city, id)
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "hotel_not_found",
			Message: "No hotel with that id in " + city,
			Code:    http.StatusNotFound,
		})
	}

	description, err := h.provider.Describe(c.Request().Context(), describe.HotelInfo{
		Name:     record.Name,
		Location: record.Location,
		Address:  record.Address,
		Stars:    record.Stars,
	})
	if err != nil {
		// Degrade to the embedded catalog text rather than failing.
		description = record.Description
	}

	return c.JSON(http.StatusOK, map[string]string{
		"name":        record.Name,
		"description": description,
	})
}
