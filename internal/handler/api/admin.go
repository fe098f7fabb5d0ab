package api

import (
	"errors"
	"net/http"

	reqdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/request"
	resdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/response"
	"github.com/dipakpardeshi85-blip/car-rental/internal/handler/httperr"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/commands"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	carCommands    commands.CarCommands
	bookingQueries queries.BookingQueries
}

func NewAdminHandler(carCommands commands.CarCommands, bookingQueries queries.BookingQueries) *AdminHandler {
	return &AdminHandler{
		carCommands:    carCommands,
		bookingQueries: bookingQueries,
	}
}

func (h *AdminHandler) ListAllBookings(c *gin.Context) {
	items, err := h.bookingQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdminBookingListItems(items))
}

func (h *AdminHandler) AddCar(c *gin.Context) {
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	carID, err := h.carCommands.AddCar(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car data", nil)
		case errors.Is(err, commands.ErrLocationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateCarResponse{ID: carID})
}

func (h *AdminHandler) UpdateCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car ID", nil)
		return
	}

	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.carCommands.UpdateCar(c.Request.Context(), carID, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyUpdate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No fields to update", nil)
		case errors.Is(err, commands.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		case errors.Is(err, commands.ErrLocationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
