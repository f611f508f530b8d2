package domain

import (
	"context"
	"time"
)

// Booking represents a single email's reservation for an event.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId" validate:"required"`
	Email     string    `json:"email" validate:"required,booking_email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateBookingInput holds the caller-supplied fields of a new booking.
type CreateBookingInput struct {
	EventID string
	Email   string
}

// NewBooking returns a new Booking for the input. ID and timestamps are set on save.
func NewBooking(in CreateBookingInput) *Booking {
	return &Booking{
		EventID: in.EventID,
		Email:   in.Email,
	}
}

// BookingRepository defines the interface for booking storage.
// Create runs the booking save pipeline before writing.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*Booking, error)
	CountByEventID(ctx context.Context, eventID string) (int64, error)
}

// BookingService defines booking operations.
type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*Booking, error)
	CountBookings(ctx context.Context, eventSlug string) (int64, error)
}
