package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

// BookingResponse is the body for a created booking.
type BookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

// BookingCountResponse is the body for GET /api/events/{slug}/bookings/count.
type BookingCountResponse struct {
	Count int64 `json:"count"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book an event
// @Description Reserve a spot for an email address. A confirmation email is sent on success.
// @Tags bookings
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param eventId formData string true "Event ID"
// @Param email formData string true "Attendee email"
// @Success 201 {object} controllers.BookingResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.MessageResponse "event does not exist"
// @Failure 409 {object} helpers.MessageResponse "email already booked"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	form, err := helpers.ParseForm(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}
	booking, err := c.Service.CreateBooking(r.Context(), helpers.CreateBookingInputFromForm(form))
	switch {
	case err == nil:
		helpers.WriteJSON(w, http.StatusCreated, BookingResponse{Message: "Booking created successfully", Booking: booking})
	case errors.Is(err, domain.ErrEventNotFound):
		helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, domain.ErrBookingExists):
		helpers.WriteMessage(w, http.StatusConflict, "Booking already exists for this email")
	case isClientValidation(err):
		helpers.WriteError(w, http.StatusBadRequest, "Booking validation failed", err)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Booking creation failed", err)
	}
}

// CountBookings godoc
// @Summary Count bookings for an event
// @Tags bookings
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.BookingCountResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug}/bookings/count [get]
func (c *BookingController) CountBookings(w http.ResponseWriter, r *http.Request) {
	n, err := c.Service.CountBookings(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to count bookings", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, BookingCountResponse{Count: n})
}

// isClientValidation reports whether err is a validation failure caused by the request itself.
// A failed event lookup is also wrapped as a validation error but carries a storage cause.
func isClientValidation(err error) bool {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	return verr.Err == nil || errors.Is(verr.Err, domain.ErrInvalidID)
}
