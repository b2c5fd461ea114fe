// Package parser turns natural-language date and time input into the
// optional date and time-of-day selections a reminder carries.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"recordar/internal/errors"
)

// Date parses a calendar date expression ("tomorrow", "friday",
// "2026-01-15"). Only the calendar fields of the result are meaningful;
// the returned value is normalized to start of day.
func Date(input string, now time.Time) (time.Time, error) {
	t, err := parse(input, now)
	if err != nil {
		return time.Time{}, errors.NewValidationErrorWithField("date", input,
			"could not understand date",
			"Try 'tomorrow', 'friday', or '2026-01-15'")
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
}

// TimeOfDay parses a clock expression ("5pm", "17:30", "noon"). Only the
// hour and minute of the result are meaningful.
func TimeOfDay(input string, now time.Time) (time.Time, error) {
	t, err := parse(input, now)
	if err != nil {
		return time.Time{}, errors.NewValidationErrorWithField("time", input,
			"could not understand time of day",
			"Try '5pm', '17:30', or 'noon'")
	}
	return t, nil
}

func parse(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return now, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, err
	}
	return result.Time, nil
}
