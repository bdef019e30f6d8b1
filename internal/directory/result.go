// File: internal/directory/result.go
package directory

// Result is what a directory screen renders: the visible subset plus the flags
// needed to tell "nothing matched" apart from "nothing could be loaded".
type Result[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`   // size of the base collection before filtering
	Matched    int  `json:"matched"` // size of Items
	LoadFailed bool `json:"load_failed"`
}

// NewResult filters base with the given facets and wraps the outcome.
// When loadErr is non-nil the engine still runs, over an empty collection.
func NewResult[T any](base []T, loadErr error, facets ...Facet[T]) Result[T] {
	if loadErr != nil {
		base = nil
	}
	items := Apply(base, facets...)
	return Result[T]{
		Items:      items,
		Total:      len(base),
		Matched:    len(items),
		LoadFailed: loadErr != nil,
	}
}

// Map converts the items of a result, keeping its counters and flags.
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	items := make([]R, len(r.Items))
	for i, item := range r.Items {
		items[i] = fn(item)
	}
	return Result[R]{Items: items, Total: r.Total, Matched: r.Matched, LoadFailed: r.LoadFailed}
}
