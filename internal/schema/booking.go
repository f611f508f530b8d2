package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"devevents/internal/domain"
)

// EventLookup finds a stored event by id, returning domain.ErrNotFound when there is none.
type EventLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}

// BookingPipeline validates a booking and its event reference before it is written.
type BookingPipeline struct {
	events EventLookup
}

func NewBookingPipeline(events EventLookup) *BookingPipeline {
	return &BookingPipeline{events: events}
}

// BeforeSave normalizes b in place. prev is the stored version of b, or nil on insert.
// The referenced event is looked up only when the reference is new or changed.
func (p *BookingPipeline) BeforeSave(ctx context.Context, b, prev *domain.Booking) error {
	b.EventID = strings.TrimSpace(b.EventID)
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))
	if err := validateStruct(b); err != nil {
		return err
	}
	if !objectIDRegex.MatchString(b.EventID) {
		return &domain.ValidationError{
			Fields: []domain.FieldError{{Field: "eventId", Message: "Event ID is invalid"}},
			Err:    domain.ErrInvalidID,
		}
	}
	if prev != nil && prev.EventID == b.EventID {
		return nil
	}

	if _, err := p.events.GetByID(ctx, b.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ValidationError{
				Fields: []domain.FieldError{{Field: "eventId", Message: fmt.Sprintf("Event with ID %s does not exist", b.EventID)}},
				Err:    domain.ErrEventNotFound,
			}
		}
		return &domain.ValidationError{
			Fields: []domain.FieldError{{Field: "eventId", Message: "Failed to validate event reference"}},
			Err:    err,
		}
	}
	return nil
}
