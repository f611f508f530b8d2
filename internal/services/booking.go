package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"devevents/internal/domain"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService returns a BookingService. emailService may be nil to skip confirmations.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateBooking reserves a spot for in.Email at the event in.EventID and sends a confirmation.
// A failed confirmation is logged; the booking still stands.
func (s *bookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, err := s.bookingRepo.GetByEventAndEmail(ctx, in.EventID, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrBookingExists
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	booking := domain.NewBooking(in)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	s.sendConfirmation(ctx, booking)
	return booking, nil
}

func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	if s.emailService == nil {
		return
	}
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "booking confirmation skipped", "booking_id", booking.ID, "err", err)
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:      booking.Email,
		EventTitle: event.Title,
		EventSlug:  event.Slug,
		Date:       event.Date,
		Time:       event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
		Mode:       event.Mode,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "booking confirmation failed", "booking_id", booking.ID, "err", err)
	}
}

// CountBookings returns how many bookings the event at eventSlug has.
func (s *bookingService) CountBookings(ctx context.Context, eventSlug string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		return 0, err
	}
	return s.bookingRepo.CountByEventID(ctx, event.ID)
}
