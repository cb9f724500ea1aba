package domain

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError signals a lookup against a nonexistent product id. Its
// message is the one surfaced to clients.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product not found with id: %d", e.ID)
}

// ValidationError aggregates every field rule violation of a submitted
// payload, one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// NumberFormatError signals a non-blank price that does not parse as a
// decimal number. It is a malformed-request failure, not a validation one.
type NumberFormatError struct {
	Raw string
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("invalid number format: %q", e.Raw)
}

// SortFieldError signals a sort key outside the sortable field set.
type SortFieldError struct {
	Field string
}

func (e *SortFieldError) Error() string {
	return fmt.Sprintf("invalid sort field: %q", e.Field)
}

// RequestBodyError signals an unreadable or undecodable request body.
type RequestBodyError struct {
	Detail string
}

func (e *RequestBodyError) Error() string {
	return "invalid request body: " + e.Detail
}

// ParamError signals a path or query parameter whose value does not match
// the expected type (a non-numeric id, a negative page number).
type ParamError struct {
	Name  string
	Value string
	Type  string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %q is not a valid %s", e.Name, e.Value, e.Type)
}
