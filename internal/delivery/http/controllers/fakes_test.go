package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"devevents/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr  error
	lastCreate domain.CreateEventInput

	event    *domain.Event
	getErr   error
	events   []*domain.Event
	total    int
	listErr  error
	similar  []*domain.Event
	lastList domain.PaginationParams

	updateErr  error
	lastSlug   string
	lastUpdate domain.UpdateEventInput
}

func (f *fakeEventService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	f.lastCreate = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Event{ID: "65a1f0c2b3d4e5f6a7b8c9d0", Title: in.Title, Slug: "go-meetup", Agenda: in.Agenda, Tags: in.Tags}, nil
}

func (f *fakeEventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	f.lastSlug = slug
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.event, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastList = params
	return f.events, f.total, f.listErr
}

func (f *fakeEventService) ListSimilarEvents(ctx context.Context, slug string) ([]*domain.Event, error) {
	f.lastSlug = slug
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.similar, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, slug string, in domain.UpdateEventInput) (*domain.Event, error) {
	f.lastSlug, f.lastUpdate = slug, in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.event, nil
}

func (f *fakeEventService) FeaturedEvents() []domain.FeaturedEvent {
	return domain.FeaturedEvents()
}

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	createErr  error
	lastCreate domain.CreateBookingInput
	count      int64
	countErr   error
	lastSlug   string
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	f.lastCreate = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Booking{ID: "65a1f0c2b3d4e5f6a7b8c9d1", EventID: in.EventID, Email: in.Email}, nil
}

func (f *fakeBookingService) CountBookings(ctx context.Context, eventSlug string) (int64, error) {
	f.lastSlug = eventSlug
	return f.count, f.countErr
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
