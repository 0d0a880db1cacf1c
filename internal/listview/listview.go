// Package listview filters and sorts the dashboard tables. Every table runs
// through the same Apply function; a Schema describes which fields of a row
// can be searched, filtered and sorted.
package listview

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// FilterAll disables a categorical filter, as does an empty value.
const FilterAll = "all"

type Sort struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Toggle returns the sort after the user clicks the header of field. The
// active column flips direction, any other column starts descending.
func (s Sort) Toggle(field string) Sort {
	if s.Key == field {
		if s.Direction == Asc {
			return Sort{Key: field, Direction: Desc}
		}
		return Sort{Key: field, Direction: Asc}
	}
	return Sort{Key: field, Direction: Desc}
}

type Query struct {
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters,omitempty"`
	Sort    Sort              `json:"sort"`
}

type fieldKind int

const (
	kindString fieldKind = iota
	kindTime
	kindNumber
)

// SortField is a sortable column. Build one with ByString, ByTime or ByNumber.
type SortField[T any] struct {
	kind fieldKind
	str  func(T) string
	tm   func(T) time.Time
	num  func(T) float64
}

// ByString sorts with English collation rules rather than byte order.
func ByString[T any](get func(T) string) SortField[T] {
	return SortField[T]{kind: kindString, str: get}
}

func ByTime[T any](get func(T) time.Time) SortField[T] {
	return SortField[T]{kind: kindTime, tm: get}
}

func ByNumber[T any](get func(T) float64) SortField[T] {
	return SortField[T]{kind: kindNumber, num: get}
}

type Schema[T any] struct {
	Search       []func(T) string
	Filters      map[string]func(T) string
	Sorts        map[string]SortField[T]
	DefaultSort  Sort
	EmptyMessage string
}

type Result[T any] struct {
	Items     []T    `json:"items"`
	Total     int    `json:"total"`
	Count     int    `json:"count"`
	NoResults bool   `json:"noResults"`
	Invalid   bool   `json:"invalid,omitempty"`
	Message   string `json:"message,omitempty"`
	Query     Query  `json:"query"`
}

// Apply returns the items matching q, ordered by q.Sort. The input slice is
// not modified. A query naming an unknown filter or sort field, or carrying
// an unknown direction, yields an empty result instead of an error.
func Apply[T any](items []T, schema Schema[T], q Query) Result[T] {
	if q.Sort.Key == "" {
		q.Sort = schema.DefaultSort
	}
	if q.Sort.Key != "" && q.Sort.Direction == "" {
		q.Sort.Direction = Desc
	}

	result := Result[T]{Items: []T{}, Total: len(items), Query: q}

	field, ok := validate(schema, q)
	if !ok {
		result.Invalid = true
		result.NoResults = true
		result.Message = schema.EmptyMessage
		return result
	}

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Search))

	for _, item := range items {
		if needle != "" && !matchesSearch(schema.Search, item, needle, fold) {
			continue
		}
		if !matchesFilters(schema.Filters, item, q.Filters) {
			continue
		}
		result.Items = append(result.Items, item)
	}

	if field != nil {
		compare := comparator(*field)
		if q.Sort.Direction == Desc {
			asc := compare
			compare = func(a, b T) int { return -asc(a, b) }
		}
		slices.SortStableFunc(result.Items, compare)
	}

	result.Count = len(result.Items)
	if result.Count == 0 {
		result.NoResults = true
		result.Message = schema.EmptyMessage
	}

	return result
}

// Map converts the rows of a result, keeping its counters and query.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := Result[U]{
		Items:     make([]U, len(r.Items)),
		Total:     r.Total,
		Count:     r.Count,
		NoResults: r.NoResults,
		Invalid:   r.Invalid,
		Message:   r.Message,
		Query:     r.Query,
	}
	for i, item := range r.Items {
		out.Items[i] = fn(item)
	}
	return out
}

func validate[T any](schema Schema[T], q Query) (*SortField[T], bool) {
	for key := range q.Filters {
		if _, ok := schema.Filters[key]; !ok {
			return nil, false
		}
	}

	if q.Sort.Key == "" {
		return nil, true
	}
	if q.Sort.Direction != Asc && q.Sort.Direction != Desc {
		return nil, false
	}

	field, ok := schema.Sorts[q.Sort.Key]
	if !ok {
		return nil, false
	}
	return &field, true
}

func matchesSearch[T any](fields []func(T) string, item T, needle string, fold cases.Caser) bool {
	for _, get := range fields {
		if strings.Contains(fold.String(get(item)), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](filters map[string]func(T) string, item T, values map[string]string) bool {
	for key, want := range values {
		if want == "" || want == FilterAll {
			continue
		}
		if filters[key](item) != want {
			return false
		}
	}
	return true
}

func comparator[T any](field SortField[T]) func(a, b T) int {
	switch field.kind {
	case kindTime:
		return func(a, b T) int { return field.tm(a).Compare(field.tm(b)) }
	case kindNumber:
		return func(a, b T) int { return cmp.Compare(field.num(a), field.num(b)) }
	default:
		collator := collate.New(language.English)
		return func(a, b T) int { return collator.CompareString(field.str(a), field.str(b)) }
	}
}

// Page returns the items of one page, counting from 1. A non-positive size
// returns every item.
func Page[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	return items[start:min(start+size, len(items))]
}
