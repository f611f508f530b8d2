package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devevents/internal/domain"
)

type eventDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Slug        string        `bson:"slug"`
	Description string        `bson:"description"`
	Overview    string        `bson:"overview"`
	Image       string        `bson:"image"`
	Venue       string        `bson:"venue"`
	Location    string        `bson:"location"`
	Date        string        `bson:"date"`
	Time        string        `bson:"time"`
	Mode        string        `bson:"mode"`
	Audience    string        `bson:"audience"`
	Agenda      []string      `bson:"agenda"`
	Organizer   string        `bson:"organizer"`
	Tags        []string      `bson:"tags"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

func newEventDocument(e *domain.Event) (*eventDocument, error) {
	doc := &eventDocument{
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Overview:    e.Overview,
		Image:       e.Image,
		Venue:       e.Venue,
		Location:    e.Location,
		Date:        e.Date,
		Time:        e.Time,
		Mode:        e.Mode,
		Audience:    e.Audience,
		Agenda:      e.Agenda,
		Organizer:   e.Organizer,
		Tags:        e.Tags,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.ID != "" {
		id, err := bson.ObjectIDFromHex(e.ID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		doc.ID = id
	}
	return doc, nil
}

func (d *eventDocument) toDomain() *domain.Event {
	return &domain.Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Slug:        d.Slug,
		Description: d.Description,
		Overview:    d.Overview,
		Image:       d.Image,
		Venue:       d.Venue,
		Location:    d.Location,
		Date:        d.Date,
		Time:        d.Time,
		Mode:        d.Mode,
		Audience:    d.Audience,
		Agenda:      d.Agenda,
		Organizer:   d.Organizer,
		Tags:        d.Tags,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type bookingDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	EventID   bson.ObjectID `bson:"eventId"`
	Email     string        `bson:"email"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

func (d *bookingDocument) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:        d.ID.Hex(),
		EventID:   d.EventID.Hex(),
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
