// Package validate holds the form-level field validation shared by every
// entity form. Validation failures stay inside the form layer; a payload that
// fails here never reaches the network.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Same patterns the backend's admin frontend enforces.
	nameRe  = regexp.MustCompile(`^[a-zA-ZÀ-ÿñÑ\s'-]+$`)
	phoneRe = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s./0-9]{6,15}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// FieldError is a validation failure attached to one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors aggregates all field failures for one form.
type Errors []*FieldError

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// ErrOrNil returns es as an error, or nil when there are no failures.
func (es Errors) ErrOrNil() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// Field returns the first failure recorded for the named field, or nil.
func (es Errors) Field(name string) *FieldError {
	for _, e := range es {
		if e.Field == name {
			return e
		}
	}
	return nil
}

// Add appends a failure for field.
func (es *Errors) Add(field, format string, args ...any) {
	*es = append(*es, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Length checks that value is between min and max runes. Required fields pass
// min >= 1; optional fields should skip the check when empty.
func (es *Errors) Length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min {
		es.Add(field, "must be at least %d characters", min)
		return
	}
	if n > max {
		es.Add(field, "must not exceed %d characters", max)
	}
}

// PersonName checks a name/surname field: 2-50 letters, spaces, apostrophes.
func (es *Errors) PersonName(field, value string) {
	es.Length(field, value, 2, 50)
	if value != "" && !nameRe.MatchString(value) {
		es.Add(field, "may only contain letters and spaces")
	}
}

// Phone checks the shared phone format.
func (es *Errors) Phone(field, value string) {
	es.Length(field, value, 7, 20)
	if value != "" && !phoneRe.MatchString(value) {
		es.Add(field, "is not a valid phone number")
	}
}

// Email checks the shared email format.
func (es *Errors) Email(field, value string) {
	if !emailRe.MatchString(value) {
		es.Add(field, "is not a valid email address")
	}
	if utf8.RuneCountInString(value) > 100 {
		es.Add(field, "must not exceed 100 characters")
	}
}

// PositiveID checks a foreign-key select: a record must have been chosen.
func (es *Errors) PositiveID(field string, id int) {
	if id <= 0 {
		es.Add(field, "a valid selection is required")
	}
}
