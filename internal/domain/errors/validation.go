package errors

import (
	"sort"
	"strings"
)

// ValidationError carries per-field validation messages. It is user
// correctable input, never a system fault, and is surfaced verbatim to the
// caller as a 400 with the field map attached.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add appends a message for a field and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// HasErrors reports whether any field message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed")
	for _, f := range fields {
		b.WriteString("; ")
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Fields[f], ", "))
	}
	return b.String()
}
