package api

import (
	"errors"
	"net/http"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"
	reqdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/request"
	resdto "github.com/dipakpardeshi85-blip/car-rental/internal/handler/dto/response"
	"github.com/dipakpardeshi85-blip/car-rental/internal/handler/httperr"
	"github.com/dipakpardeshi85-blip/car-rental/internal/handler/middleware"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/commands"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	bookingID, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		case errors.Is(err, commands.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		case errors.Is(err, commands.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Car is not available for the selected dates", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		ID:     bookingID,
		Status: booking.StatusConfirmed.String(),
	})
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	items, err := h.bookingQueries.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": booking.StatusCancelled.String()})
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	carID, err := uuid.Parse(c.Query("car_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car ID", nil)
		return
	}

	pickupDate := c.Query("pickup_date")
	returnDate := c.Query("return_date")

	available, err := h.bookingQueries.CarAvailable(c.Request.Context(), carID, pickupDate, returnDate)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		case errors.Is(err, booking.ErrMalformedDate),
			errors.Is(err, booking.ErrInvalidDateRange),
			errors.Is(err, booking.ErrPickupInPast):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		CarID:      carID,
		PickupDate: pickupDate,
		ReturnDate: returnDate,
		Available:  available,
	})
}
