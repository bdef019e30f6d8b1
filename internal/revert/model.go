// File: internal/revert/model.go
package revert

import (
	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/user"
)

// Filter is the Meet Reverts filter bar.
type Filter struct {
	Location       string
	ConversionYear string
	Interest       string
	Sort           common.SortKey
}

// Facets returns the Meet Reverts facets.
func (f Filter) Facets() []directory.Facet[user.User] {
	return []directory.Facet[user.User]{
		{Name: "location", Value: f.Location, Match: func(u user.User, v string) bool { return directory.ContainsFold(u.Location, v) }},
		{Name: "conversionYear", Value: f.ConversionYear, Match: func(u user.User, v string) bool { return directory.Equal(u.ConversionYear(), v) }},
		{Name: "interests", Value: f.Interest, Match: func(u user.User, v string) bool { return directory.Member(u.Interests, v) }},
	}
}

// Result is the peer list plus whether the viewer must set a gender before seeing anyone.
type Result[T any] struct {
	directory.Result[T]
	GenderRequired bool `json:"gender_required"`
}

// ConnectRequest is the "connect" form on a peer card.
type ConnectRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

// ConnectResponse acknowledges a connection intent. Nothing is stored.
type ConnectResponse struct {
	ToUserID string `json:"to_user_id"`
	ToName   string `json:"to_name"`
	Status   string `json:"status"`
}
