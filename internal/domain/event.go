package domain

import (
	"context"
	"time"
)

// Event delivery modes.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// Event represents a listed developer event.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Slug        string    `json:"slug"`
	Description string    `json:"description" validate:"required"`
	Overview    string    `json:"overview" validate:"required"`
	Image       string    `json:"image" validate:"required"`
	Venue       string    `json:"venue" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Date        string    `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	Mode        string    `json:"mode" validate:"required,oneof=online offline hybrid"`
	Audience    string    `json:"audience" validate:"required"`
	Agenda      []string  `json:"agenda" validate:"required,min=1"`
	Organizer   string    `json:"organizer" validate:"required"`
	Tags        []string  `json:"tags" validate:"required,min=1"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateEventInput holds the caller-supplied fields of a new event.
// Slug, ID and timestamps are server-generated.
type CreateEventInput struct {
	Title       string
	Description string
	Overview    string
	Image       string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Agenda      []string
	Organizer   string
	Tags        []string
}

// NewEvent returns a new Event built from the input. ID and slug are set on save.
func NewEvent(in CreateEventInput) *Event {
	return &Event{
		Title:       in.Title,
		Description: in.Description,
		Overview:    in.Overview,
		Image:       in.Image,
		Venue:       in.Venue,
		Location:    in.Location,
		Date:        in.Date,
		Time:        in.Time,
		Mode:        in.Mode,
		Audience:    in.Audience,
		Agenda:      in.Agenda,
		Organizer:   in.Organizer,
		Tags:        in.Tags,
	}
}

// UpdateEventInput holds optional replacements for an event's fields. Nil fields are unchanged.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Agenda      []string
	Organizer   *string
	Tags        []string
}

// Apply returns a copy of e with the non-nil input fields replaced.
func (in UpdateEventInput) Apply(e *Event) *Event {
	out := e.Clone()
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&out.Title, in.Title)
	set(&out.Description, in.Description)
	set(&out.Overview, in.Overview)
	set(&out.Image, in.Image)
	set(&out.Venue, in.Venue)
	set(&out.Location, in.Location)
	set(&out.Date, in.Date)
	set(&out.Time, in.Time)
	set(&out.Mode, in.Mode)
	set(&out.Audience, in.Audience)
	set(&out.Organizer, in.Organizer)
	if in.Agenda != nil {
		out.Agenda = append([]string(nil), in.Agenda...)
	}
	if in.Tags != nil {
		out.Tags = append([]string(nil), in.Tags...)
	}
	return out
}

// Clone returns a deep copy of the event.
func (e *Event) Clone() *Event {
	c := *e
	if e.Agenda != nil {
		c.Agenda = append([]string(nil), e.Agenda...)
	}
	if e.Tags != nil {
		c.Tags = append([]string(nil), e.Tags...)
	}
	return &c
}

// EventRepository defines the interface for event storage.
// Create and Update run the event save pipeline before writing.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	// Update persists the event; prev is the stored version it replaces.
	Update(ctx context.Context, event, prev *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	// ListByTags returns up to limit events sharing any of tags, excluding excludeID.
	ListByTags(ctx context.Context, tags []string, excludeID string, limit int) ([]*Event, error)
}

// EventService defines the business logic for listing and managing events.
type EventService interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	ListSimilarEvents(ctx context.Context, slug string) ([]*Event, error)
	UpdateEvent(ctx context.Context, slug string, in UpdateEventInput) (*Event, error)
	FeaturedEvents() []FeaturedEvent
}
