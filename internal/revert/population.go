// File: internal/revert/population.go
package revert

import (
	"strings"

	"revert_connect_backend/internal/user"
)

// CanBrowse reports whether viewer can be matched to any peers at all.
// Peers are only ever shown within the viewer's own gender.
func CanBrowse(viewer *user.User) bool {
	return viewer != nil && viewer.Gender != ""
}

// Population restricts candidates to the viewer's peer pool: non-mentors of the
// viewer's gender, never the viewer. A viewer without a gender has no peers.
func Population(candidates []user.User, viewer *user.User) []user.User {
	peers := []user.User{}
	if !CanBrowse(viewer) {
		return peers
	}
	for _, u := range candidates {
		if u.IsMentor || u.Gender != viewer.Gender || isSelf(u, viewer) {
			continue
		}
		peers = append(peers, u)
	}
	return peers
}

func isSelf(u user.User, viewer *user.User) bool {
	if viewer.Email != "" && strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(viewer.Email)) {
		return true
	}
	return u.ID == viewer.ID
}
