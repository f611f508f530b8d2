package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"devevents/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const testTimeout = 5 * time.Second

// fakeEventRepo is an in-memory EventRepository for tests. It skips the save pipeline
// and derives slugs by lowercasing and hyphenating the title.
type fakeEventRepo struct {
	byID   map[string]*domain.Event
	nextID int
	err    error // if set, Create and Update return this error
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
	for _, e := range events {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	e.Slug = strings.ReplaceAll(strings.ToLower(e.Title), " ", "-")
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e, prev *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	if e.Title != prev.Title {
		e.Slug = strings.ReplaceAll(strings.ToLower(e.Title), " ", "-")
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	for _, e := range f.byID {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) sorted() []*domain.Event {
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeEventRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	all := f.sorted()
	start := min(params.Offset(), len(all))
	end := min(start+params.PageSize, len(all))
	return all[start:end], len(all), nil
}

func (f *fakeEventRepo) ListByTags(ctx context.Context, tags []string, excludeID string, limit int) ([]*domain.Event, error) {
	out := []*domain.Event{}
	for _, e := range f.sorted() {
		if e.ID == excludeID || len(out) == limit {
			continue
		}
		if sharesTag(e.Tags, tags) {
			out = append(out, e)
		}
	}
	return out, nil
}

func sharesTag(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// fakeBookingRepo is an in-memory BookingRepository for tests.
type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	lookupErr error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = fmt.Sprintf("bk-%d", len(f.bookings)+1)
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeBookingRepo) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, b := range f.bookings {
		if b.EventID == eventID && b.Email == email {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBookingRepo) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.EventID == eventID {
			n++
		}
	}
	return n, nil
}

// fakeEmailService records confirmation requests.
type fakeEmailService struct {
	sent []*domain.BookingConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

func sampleEvent(id, title string, tags ...string) *domain.Event {
	return &domain.Event{
		ID:          id,
		Title:       title,
		Slug:        strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		Description: "desc",
		Overview:    "overview",
		Image:       "/images/event.png",
		Venue:       "Hall A",
		Location:    "Berlin",
		Date:        "2026-03-05",
		Time:        "18:30",
		Mode:        domain.ModeOffline,
		Audience:    "Developers",
		Agenda:      []string{"Intro"},
		Organizer:   "Org",
		Tags:        tags,
	}
}
