// File: internal/notification/model.go
package notification

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies what a member asked for.
type Kind string

const (
	PeerConnection Kind = "peer_connection"
	MentorRequest  Kind = "mentor_request"
)

// Party is one end of an intent.
type Party struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

// Intent is a member-to-member request handed to a Channel.
type Intent struct {
	Kind    Kind      `json:"kind"`
	From    Party     `json:"from"`
	To      Party     `json:"to"`
	Topic   string    `json:"topic,omitempty"` // area of help for mentor requests
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
