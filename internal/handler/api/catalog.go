package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dipakpardeshi85-blip/car-rental/internal/handler/httperr"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.catalogQueries.ListLocations(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (h *CatalogHandler) ListCars(c *gin.Context) {
	filter, err := parseCarFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	cars, err := h.catalogQueries.ListCars(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, cars)
}

func (h *CatalogHandler) GetCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car ID", nil)
		return
	}

	view, err := h.catalogQueries.GetCar(c.Request.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func parseCarFilter(c *gin.Context) (queries.CarFilter, error) {
	var filter queries.CarFilter

	if v := c.Query("location_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid location_id")
		}
		filter.LocationID = &id
	}
	if v := c.Query("car_type"); v != "" {
		filter.CarType = &v
	}
	if v := c.Query("min_price_cents"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return filter, errors.New("invalid min_price_cents")
		}
		filter.MinPriceCents = &n
	}
	if v := c.Query("max_price_cents"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return filter, errors.New("invalid max_price_cents")
		}
		filter.MaxPriceCents = &n
	}
	filter.AvailableOnly = c.DefaultQuery("available", "true") != "false"

	return filter, nil
}
