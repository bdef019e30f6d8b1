// File: internal/common/sort.go
package common

import (
	"fmt"
	"strings"
)

// SortKey is an entity-store sort parameter such as "-created_date" (descending) or "title".
type SortKey string

// OrderClause converts the key into a SQL ORDER BY fragment using the allowed field-to-column map.
// Unknown fields are rejected so raw input never reaches the query.
func (k SortKey) OrderClause(columns map[string]string) (string, error) {
	raw := strings.TrimSpace(string(k))
	if raw == "" {
		return "", nil
	}
	direction := "ASC"
	if strings.HasPrefix(raw, "-") {
		direction = "DESC"
		raw = strings.TrimPrefix(raw, "-")
	}
	column, ok := columns[raw]
	if !ok {
		return "", ErrBadRequest.WithDetails(fmt.Sprintf("Unsupported sort field %q.", raw))
	}
	return column + " " + direction, nil
}
