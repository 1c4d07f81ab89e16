// Package shape converts between the backend's wire representation and the
// in-memory form representation: dates travel as fixed-format strings on the
// wire but are time.Time while editing, and optional text fields are null on
// the wire but plain strings in a form.
package shape

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for date-only fields (fecha_nacimiento,
// fecha_inicio, fecha_fin).
const DateFormat = "2006-01-02"

// FormatDate renders a date-only wire value.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a date-only wire value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDateTime renders a timestamp wire value (fecha_hora).
func FormatDateTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseDateTime parses a timestamp wire value.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q: %w", s, err)
	}
	return t, nil
}

// NullIfEmpty maps an optional form string to its write value: empty strings
// become JSON null rather than "".
func NullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref maps a nullable wire string to its form value.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
