package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 20
)

// SortDirection is the ordering applied to the sort key.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// sortColumns whitelists the sortable fields and maps them to their storage
// columns. Sorting is limited to this fixed set.
var sortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"description": "description",
	"price":       "price",
	"createdAt":   "created_at",
}

// SortColumn returns the storage column for a resolved sort key.
func SortColumn(key string) (string, bool) {
	col, ok := sortColumns[key]
	return col, ok
}

// PageRequest is a normalized, bounded pagination and sort specification.
// An empty SortKey means natural order.
type PageRequest struct {
	Page      int
	Size      int
	SortKey   string
	Direction SortDirection
}

// Offset is the number of records preceding the requested page.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// ResolvePageRequest normalizes the raw page, size and sort query values.
// page defaults to 0, size to DefaultPageSize. Negative pages, non-positive
// sizes and non-integer values are client errors reported as ParamError.
// sort has the form "field" or "field,direction"; the direction matches
// asc/desc case-insensitively and anything else falls back to ascending,
// while an unknown field fails with a SortFieldError naming it. Only a
// single sort key is supported.
func ResolvePageRequest(rawPage, rawSize, rawSort string) (PageRequest, error) {
	req := PageRequest{
		Size:      DefaultPageSize,
		Direction: SortAsc,
	}

	if rawPage != "" {
		page, err := strconv.Atoi(strings.TrimSpace(rawPage))
		if err != nil {
			return req, &ParamError{Name: "page", Value: rawPage, Type: "integer"}
		}
		if page < 0 {
			return req, &ParamError{Name: "page", Value: rawPage, Type: "page number"}
		}
		req.Page = page
	}

	if rawSize != "" {
		size, err := strconv.Atoi(strings.TrimSpace(rawSize))
		if err != nil {
			return req, &ParamError{Name: "size", Value: rawSize, Type: "integer"}
		}
		if size <= 0 {
			return req, &ParamError{Name: "size", Value: rawSize, Type: "page size"}
		}
		req.Size = size
	}

	if rawSort != "" {
		parts := strings.SplitN(rawSort, ",", 2)
		field := strings.TrimSpace(parts[0])
		if _, ok := sortColumns[field]; !ok {
			return req, &SortFieldError{Field: field}
		}
		req.SortKey = field
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			req.Direction = SortDesc
		}
	}

	return req, nil
}
