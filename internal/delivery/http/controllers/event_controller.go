package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

// EventResponse is the body returned with a single event.
type EventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// EventListResponse is the body for GET /api/events.
type EventListResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// EventsResponse is the body for unpaginated event lists.
type EventsResponse struct {
	Events []*domain.Event `json:"events"`
}

// FeaturedEventsResponse is the body for GET /api/events/featured.
type FeaturedEventsResponse struct {
	Events []domain.FeaturedEvent `json:"events"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Create an event from form fields. agenda and tags may be repeated; other repeated fields keep their last value. The slug, date and time are normalized on save.
// @Tags events
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param overview formData string true "Overview"
// @Param image formData string true "Image URL"
// @Param venue formData string true "Venue"
// @Param location formData string true "Location"
// @Param date formData string true "Date, any common format"
// @Param time formData string true "Time, HH:MM"
// @Param mode formData string true "online, offline or hybrid"
// @Param audience formData string true "Audience"
// @Param agenda formData []string true "Agenda items" collectionFormat(multi)
// @Param organizer formData string true "Organizer"
// @Param tags formData []string true "Tags" collectionFormat(multi)
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.MessageResponse "body is not form encoded"
// @Failure 500 {object} helpers.ErrorResponse "validation or storage failure"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	form, err := helpers.ParseForm(r)
	if err != nil {
		helpers.WriteMessage(w, http.StatusBadRequest, "Invalid Json data format")
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), helpers.CreateEventInputFromForm(form))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Event creation failed", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, EventResponse{Message: "Event Created Successfully", Event: event})
}

// ListEvents godoc
// @Summary List events
// @Description Events newest first.
// @Tags events
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.EventListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to list events", err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, EventListResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// FeaturedEvents godoc
// @Summary Featured events
// @Description The static list of sample events shown on the home page.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.FeaturedEventsResponse
// @Router /api/events/featured [get]
func (c *EventController) FeaturedEvents(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, FeaturedEventsResponse{Events: c.Service.FeaturedEvents()})
}

// GetEvent godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEventBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.writeLookupError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Message: "Event fetched successfully", Event: event})
}

// ListSimilarEvents godoc
// @Summary Similar events
// @Description Up to three other events sharing at least one tag.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventsResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug}/similar [get]
func (c *EventController) ListSimilarEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListSimilarEvents(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.writeLookupError(w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, EventsResponse{Events: events})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update from form fields. Only submitted fields change; the slug is re-derived when the title changes.
// @Tags events
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 409 {object} helpers.MessageResponse "slug already taken"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	form, err := helpers.ParseForm(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), r.PathValue("slug"), helpers.UpdateEventInputFromForm(form))
	switch {
	case err == nil:
		helpers.WriteJSON(w, http.StatusOK, EventResponse{Message: "Event updated successfully", Event: event})
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, domain.ErrValidation):
		helpers.WriteError(w, http.StatusBadRequest, "Event update failed", err)
	case errors.Is(err, domain.ErrDuplicateSlug):
		helpers.WriteMessage(w, http.StatusConflict, "An event with this slug already exists")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Event update failed", err)
	}
}

func (c *EventController) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch event", err)
}
