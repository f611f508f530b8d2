package helpers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"devevents/internal/domain"
)

// MaxFormMemory bounds the part of a multipart body kept in memory.
const MaxFormMemory = 10 << 20

// ErrUnsupportedContentType is returned by ParseForm for bodies that are not form encoded.
var ErrUnsupportedContentType = errors.New("content type must be application/x-www-form-urlencoded or multipart/form-data")

// listFields collect every submitted value; all other fields keep the last one.
var listFields = map[string]struct{}{
	"agenda": {},
	"tags":   {},
}

// ParseForm parses a url-encoded or multipart request body and returns its fields.
// Query string values are not included.
func ParseForm(r *http.Request) (url.Values, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, ErrUnsupportedContentType
	}
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxFormMemory); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
	default:
		return nil, ErrUnsupportedContentType
	}
	return r.PostForm, nil
}

// Flatten turns form values into a field mapping. Scalar fields take their last value;
// agenda and tags keep every value.
func Flatten(form url.Values) map[string]any {
	out := make(map[string]any, len(form))
	for key, values := range form {
		if len(values) == 0 {
			continue
		}
		if _, ok := listFields[key]; ok {
			out[key] = append([]string(nil), values...)
			continue
		}
		out[key] = values[len(values)-1]
	}
	return out
}

func scalar(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key].(string)
	return v, ok
}

func list(fields map[string]any, key string) ([]string, bool) {
	v, ok := fields[key].([]string)
	return v, ok
}

// CreateEventInputFromForm maps flattened form fields onto a CreateEventInput. Missing fields stay empty.
func CreateEventInputFromForm(form url.Values) domain.CreateEventInput {
	fields := Flatten(form)
	get := func(key string) string {
		v, _ := scalar(fields, key)
		return v
	}
	agenda, _ := list(fields, "agenda")
	tags, _ := list(fields, "tags")
	return domain.CreateEventInput{
		Title:       get("title"),
		Description: get("description"),
		Overview:    get("overview"),
		Image:       get("image"),
		Venue:       get("venue"),
		Location:    get("location"),
		Date:        get("date"),
		Time:        get("time"),
		Mode:        get("mode"),
		Audience:    get("audience"),
		Agenda:      agenda,
		Organizer:   get("organizer"),
		Tags:        tags,
	}
}

// UpdateEventInputFromForm maps flattened form fields onto an UpdateEventInput.
// Only submitted fields are set.
func UpdateEventInputFromForm(form url.Values) domain.UpdateEventInput {
	fields := Flatten(form)
	ptr := func(key string) *string {
		if v, ok := scalar(fields, key); ok {
			return &v
		}
		return nil
	}
	in := domain.UpdateEventInput{
		Title:       ptr("title"),
		Description: ptr("description"),
		Overview:    ptr("overview"),
		Image:       ptr("image"),
		Venue:       ptr("venue"),
		Location:    ptr("location"),
		Date:        ptr("date"),
		Time:        ptr("time"),
		Mode:        ptr("mode"),
		Audience:    ptr("audience"),
		Organizer:   ptr("organizer"),
	}
	if agenda, ok := list(fields, "agenda"); ok {
		in.Agenda = agenda
	}
	if tags, ok := list(fields, "tags"); ok {
		in.Tags = tags
	}
	return in
}

// CreateBookingInputFromForm reads eventId and email from the form.
func CreateBookingInputFromForm(form url.Values) domain.CreateBookingInput {
	return domain.CreateBookingInput{
		EventID: strings.TrimSpace(form.Get("eventId")),
		Email:   form.Get("email"),
	}
}
