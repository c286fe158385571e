package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the dd-MM-yyyy layout used for every date-only field.
	DateLayout = "02-01-2006"
	// DateTimeLayout is the dd-MM-yyyy HH:mm:ss layout used for timestamps.
	DateTimeLayout = "02-01-2006 15:04:05"
)

var (
	ErrInvalidDate     = errors.New("invalid date, expected dd-MM-yyyy")
	ErrInvalidDateTime = errors.New("invalid date time, expected dd-MM-yyyy HH:mm:ss")
)

// ParseDate parses a dd-MM-yyyy string into a UTC midnight date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseDateTime parses a dd-MM-yyyy HH:mm:ss string in UTC.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// DateOf drops the clock part of t, keeping its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WallClock re-expresses the date and clock reading of t in UTC, so it compares
// directly with values from ParseDateTime.
func WallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}
