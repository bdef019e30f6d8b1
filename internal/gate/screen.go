// File: internal/gate/screen.go
package gate

import (
	"fmt"
	"strings"
)

// Screen identifies a navigation target of the client application.
type Screen string

const (
	Community   Screen = "Community"
	MeetReverts Screen = "MeetReverts"
	Mentors     Screen = "Mentors"
	Resources   Screen = "Resources"
	Events      Screen = "Events"
	Profile     Screen = "Profile"
)

// Screens lists every known navigation target.
var Screens = []Screen{Community, MeetReverts, Mentors, Resources, Events, Profile}

// ParseScreen resolves a screen identifier case-insensitively.
func ParseScreen(s string) (Screen, error) {
	name := strings.TrimSpace(s)
	for _, screen := range Screens {
		if strings.EqualFold(name, string(screen)) {
			return screen, nil
		}
	}
	return "", fmt.Errorf("unknown screen %q", s)
}
