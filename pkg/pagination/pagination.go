package pagination

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
)

// MaxLimit caps the page size a caller may request.
const MaxLimit = 100

// Params holds page parameters sent as query strings.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// DefaultParams returns sensible pagination defaults.
func DefaultParams() Params {
	return Params{
		Page:  1,
		Limit: 20,
	}
}

// Normalize replaces out-of-range values with defaults.
func (p Params) Normalize() Params {
	d := DefaultParams()
	if p.Page < 1 {
		p.Page = d.Page
	}
	if p.Limit < 1 {
		p.Limit = d.Limit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset is the zero-based index of the first item on the page. Pages too
// far out to address saturate at math.MaxInt.
func (p Params) Offset() int {
	p = p.Normalize()
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Encode writes the params into q.
func (p Params) Encode(q url.Values) {
	p = p.Normalize()
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
}

// FromRequest extracts pagination parameters from an HTTP request.
func FromRequest(r *http.Request) Params {
	return FromValues(r.URL.Query())
}

// FromValues extracts pagination parameters from query values. Invalid or
// out-of-range values fall back to the defaults.
func FromValues(q url.Values) Params {
	p := DefaultParams()

	if page := q.Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 0 {
			p.Page = v
		}
	}

	if limit := q.Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil && v > 0 && v <= MaxLimit {
			p.Limit = v
		}
	}

	return p
}

// List is the list-response envelope returned by the backend. Total is the
// server-reported count and is passed through untouched.
type List[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewList creates a list envelope for one page.
func NewList[T any](items []T, total int, params Params) List[T] {
	params = params.Normalize()
	if items == nil {
		items = []T{}
	}
	return List[T]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}
}

// Slice pages an in-memory collection.
func Slice[T any](all []T, params Params) List[T] {
	params = params.Normalize()
	start := min(max(params.Offset(), 0), len(all))
	end := len(all)
	if params.Limit < end-start {
		end = start + params.Limit
	}
	page := make([]T, end-start)
	copy(page, all[start:end])
	return NewList(page, len(all), params)
}

// TotalPages is derived from Total and Limit.
func (l List[T]) TotalPages() int {
	if l.Limit <= 0 {
		return 0
	}
	pages := l.Total / l.Limit
	if l.Total%l.Limit > 0 {
		pages++
	}
	return pages
}

// HasNext reports whether a later page exists.
func (l List[T]) HasNext() bool {
	return l.Page < l.TotalPages()
}
