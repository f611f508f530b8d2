package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devevents/internal/domain"
)

func TestTemplateRenderer_BookingConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.BookingConfirmationEmailData{
		Email:      "ada@example.com",
		EventTitle: "Go <Meetup> Berlin",
		EventSlug:  "go-meetup-berlin",
		Date:       "2026-03-05",
		Time:       "18:30",
		Venue:      "c-base",
		Location:   "Berlin, Germany",
		Mode:       "offline",
	}

	subject, html, text, err := r.Render("booking_confirmation", data)
	require.NoError(t, err)

	assert.Equal(t, "You're booked: Go <Meetup> Berlin", subject)
	assert.Contains(t, html, "Go &lt;Meetup&gt; Berlin")
	assert.Contains(t, html, `href="/events/go-meetup-berlin"`)
	assert.Contains(t, text, "2026-03-05 at 18:30")
	assert.Contains(t, text, "c-base, Berlin, Germany (offline)")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("does_not_exist", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render subject")
}
