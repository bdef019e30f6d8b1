// File: internal/directory/filter.go
package directory

import "strings"

// All is the facet sentinel meaning "no restriction".
const All = "all"

// Active reports whether a facet value restricts the result.
// Both the sentinel and the empty string are vacuously true.
func Active(value string) bool {
	return value != "" && value != All
}

// Facet is one filter-bar selection applied to records of type T.
type Facet[T any] struct {
	Name  string
	Value string
	Match func(record T, value string) bool
}

// Apply returns the records that satisfy every active facet, in their original order.
// The input slice is never modified; the result is always a fresh slice.
func Apply[T any](records []T, facets ...Facet[T]) []T {
	active := make([]Facet[T], 0, len(facets))
	for _, f := range facets {
		if Active(f.Value) && f.Match != nil {
			active = append(active, f)
		}
	}

	out := make([]T, 0, len(records))
	for _, record := range records {
		if matchesAll(record, active) {
			out = append(out, record)
		}
	}
	return out
}

func matchesAll[T any](record T, facets []Facet[T]) bool {
	for _, f := range facets {
		if !f.Match(record, f.Value) {
			return false
		}
	}
	return true
}

// Equal is exact string equality.
func Equal(field, value string) bool {
	return field == value
}

// Member reports whether value is an element of set.
func Member(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// ContainsFold is a case-insensitive substring match.
func ContainsFold(field, value string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(value))
}
