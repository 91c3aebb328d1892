package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelbook/internal/catalog"
)

type LocationsHandler struct {
	catalog *catalog.Catalog
}

func NewLocationsHandler(c *catalog.Catalog) *LocationsHandler {
	return &LocationsHandler{catalog: c}
}

// Locations serves GET /api/v1/locations for the search form dropdowns.
func (h *LocationsHandler) Locations(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"locations": h.catalog.Locations(),
	})
}
