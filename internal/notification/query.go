package notification

import "strings"

// Pagination defaults and bounds
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Query is the canonical, validated form of a list request. Build it with
// NewQuery so pagination is always bounded.
type Query struct {
	Page     int
	PageSize int
	Read     *bool
	Type     string
}

// NewQuery normalizes raw pagination and filter values into a canonical query.
// Page values below 1 are clamped to 1; page sizes below 1 fall back to the
// default and are capped at MaxPageSize. A blank or whitespace-only type means
// no type filter. The transformation is pure: equal inputs yield equal queries.
func NewQuery(page, pageSize int, read *bool, ntype string) Query {
	return NewBoundedQuery(page, pageSize, read, ntype, MaxPageSize)
}

// NewBoundedQuery normalizes like NewQuery but caps the page size at the given
// bound. Bounds below 1 fall back to MaxPageSize.
func NewBoundedQuery(page, pageSize int, read *bool, ntype string, maxPageSize int) Query {
	if maxPageSize < 1 {
		maxPageSize = MaxPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return Query{
		Page:     page,
		PageSize: pageSize,
		Read:     read,
		Type:     strings.TrimSpace(ntype),
	}
}

// Offset returns the number of rows to skip for the requested page
func (q Query) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// FilterByType reports whether the query carries a type filter
func (q Query) FilterByType() bool {
	return q.Type != ""
}
