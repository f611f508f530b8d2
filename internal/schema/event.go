package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"devevents/internal/domain"
)

// SlugLookup finds a stored event by slug, returning domain.ErrNotFound when there is none.
type SlugLookup interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
}

// EventPipeline validates and normalizes an event before it is written.
type EventPipeline struct {
	lookup SlugLookup
	now    func() time.Time
}

// NewEventPipeline returns a pipeline that checks slug collisions with lookup.
// now supplies the collision suffix; nil means time.Now.
func NewEventPipeline(lookup SlugLookup, now func() time.Time) *EventPipeline {
	if now == nil {
		now = time.Now
	}
	return &EventPipeline{lookup: lookup, now: now}
}

// BeforeSave normalizes e in place. prev is the stored version of e, or nil on insert;
// slug, date and time are only recomputed when their source field is new or changed.
func (p *EventPipeline) BeforeSave(ctx context.Context, e, prev *domain.Event) error {
	trimEvent(e)
	if err := validateStruct(e); err != nil {
		return err
	}

	if prev == nil || e.Title != prev.Title {
		if err := p.assignSlug(ctx, e); err != nil {
			return err
		}
	}

	if prev == nil || e.Date != prev.Date {
		date, err := NormalizeDate(e.Date)
		if err != nil {
			return err
		}
		e.Date = date
	}

	if prev == nil || e.Time != prev.Time {
		clock, err := NormalizeTime(e.Time)
		if err != nil {
			return err
		}
		e.Time = clock
	}
	return nil
}

func (p *EventPipeline) assignSlug(ctx context.Context, e *domain.Event) error {
	slug := Slugify(e.Title)
	if slug == "" {
		return domain.NewValidationError("title", "Title must contain at least one letter or digit")
	}

	// Best effort only; the unique slug index rejects races.
	existing, err := p.lookup.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		if existing.ID != e.ID {
			slug = fmt.Sprintf("%s-%d", slug, p.now().UnixMilli())
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return fmt.Errorf("check slug %q: %w", slug, err)
	}
	e.Slug = slug
	return nil
}

func trimEvent(e *domain.Event) {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Overview = strings.TrimSpace(e.Overview)
	e.Venue = strings.TrimSpace(e.Venue)
	e.Location = strings.TrimSpace(e.Location)
	e.Audience = strings.TrimSpace(e.Audience)
	e.Organizer = strings.TrimSpace(e.Organizer)
	e.Mode = strings.ToLower(strings.TrimSpace(e.Mode))
	e.Agenda = compact(e.Agenda)
	e.Tags = compact(e.Tags)
}

// compact trims items and drops empty ones. A nil slice stays nil.
func compact(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
