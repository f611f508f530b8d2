package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"devevents/internal/domain"
)

const (
	msgInvalidDate = "Date must be a valid date string"
	msgInvalidTime = "Time must be in HH:MM format (24-hour)"
)

var (
	// clockRegex matches H:MM or HH:MM in 24-hour form.
	clockRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
	// clockSearch finds the first digits:digits group anywhere in the input.
	clockSearch = regexp.MustCompile(`(\d+):(\d+)`)
)

// NormalizeDate parses a calendar date in any common layout and returns it as YYYY-MM-DD (UTC).
// Inputs without a zone are read as UTC. Inputs without a year are rejected.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.NewValidationError("date", msgInvalidDate)
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err == nil && t.Year() == 0 {
		err = fmt.Errorf("date %q has no year", s)
	}
	if err != nil {
		return "", &domain.ValidationError{
			Fields: []domain.FieldError{{Field: "date", Message: msgInvalidDate}},
			Err:    err,
		}
	}
	return t.UTC().Format(time.DateOnly), nil
}

// NormalizeTime returns the first clock time in s as zero-padded 24-hour HH:MM.
func NormalizeTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		m = clockSearch.FindStringSubmatch(s)
	}
	if m == nil {
		return "", domain.NewValidationError("time", msgInvalidTime)
	}
	hours, herr := strconv.Atoi(m[1])
	minutes, merr := strconv.Atoi(m[2])
	if herr != nil || merr != nil || hours > 23 || minutes > 59 {
		return "", domain.NewValidationError("time", msgInvalidTime)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}
