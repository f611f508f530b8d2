package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devevents/internal/domain"
)

func TestBookingService_CreateBooking(t *testing.T) {
	tests := []struct {
		name      string
		existing  []*domain.Booking
		createErr error
		lookupErr error
		mailErr   error
		wantErr   error
		wantSent  int
	}{
		{name: "success sends confirmation", wantSent: 1},
		{
			name:     "already booked",
			existing: []*domain.Booking{{ID: "bk-0", EventID: "ev-1", Email: "ada@example.com"}},
			wantErr:  domain.ErrBookingExists,
		},
		{name: "unique index race", createErr: domain.ErrBookingExists, wantErr: domain.ErrBookingExists},
		{name: "lookup failure", lookupErr: errors.New("db down"), wantErr: errors.New("db down")},
		{name: "confirmation failure keeps booking", mailErr: errors.New("ses throttled")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := newFakeEventRepo(sampleEvent("ev-1", "Go Meetup", "go"))
			bookings := &fakeBookingRepo{bookings: tt.existing, createErr: tt.createErr, lookupErr: tt.lookupErr}
			mail := &fakeEmailService{err: tt.mailErr}
			svc := NewBookingService(bookings, events, mail, testLogger, testTimeout)

			got, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{EventID: "ev-1", Email: "ada@example.com"})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				if errors.Is(tt.wantErr, domain.ErrBookingExists) {
					assert.ErrorIs(t, err, domain.ErrBookingExists)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Empty(t, mail.sent)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			require.Len(t, mail.sent, tt.wantSent)
			if tt.wantSent > 0 {
				assert.Equal(t, "ada@example.com", mail.sent[0].Email)
				assert.Equal(t, "Go Meetup", mail.sent[0].EventTitle)
				assert.Equal(t, "go-meetup", mail.sent[0].EventSlug)
			}
		})
	}
}

func TestBookingService_CreateBookingWithoutEmailService(t *testing.T) {
	events := newFakeEventRepo(sampleEvent("ev-1", "Go Meetup"))
	svc := NewBookingService(&fakeBookingRepo{}, events, nil, testLogger, testTimeout)

	got, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{EventID: "ev-1", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "bk-1", got.ID)
}

func TestBookingService_CountBookings(t *testing.T) {
	events := newFakeEventRepo(sampleEvent("ev-1", "Go Meetup"), sampleEvent("ev-2", "Rust Meetup"))
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: "bk-1", EventID: "ev-1", Email: "a@example.com"},
		{ID: "bk-2", EventID: "ev-1", Email: "b@example.com"},
		{ID: "bk-3", EventID: "ev-2", Email: "a@example.com"},
	}}
	svc := NewBookingService(bookings, events, nil, testLogger, testTimeout)

	n, err := svc.CountBookings(context.Background(), "go-meetup")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = svc.CountBookings(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
