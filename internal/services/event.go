package services

import (
	"context"
	"time"

	"devevents/internal/domain"
)

// similarEventsLimit caps how many related events are suggested for one event.
const similarEventsLimit = 3

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService returns an EventService backed by eventRepo. Each call is bounded by timeout.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := domain.NewEvent(in)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.GetBySlug(ctx, slug)
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.List(ctx, params)
}

// ListSimilarEvents returns events sharing at least one tag with the event at slug, newest first.
func (s *eventService) ListSimilarEvents(ctx context.Context, slug string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.ListByTags(ctx, event.Tags, event.ID, similarEventsLimit)
}

// UpdateEvent applies in to the event at slug. Only changed fields are re-normalized on save.
func (s *eventService) UpdateEvent(ctx context.Context, slug string, in domain.UpdateEventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	prev, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	updated := in.Apply(prev)
	if err := s.eventRepo.Update(ctx, updated, prev); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *eventService) FeaturedEvents() []domain.FeaturedEvent {
	return domain.FeaturedEvents()
}
