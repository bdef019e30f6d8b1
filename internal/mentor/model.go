// File: internal/mentor/model.go
package mentor

import (
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/user"

	"github.com/google/uuid"
)

// Request statuses.
const (
	StatusPending = "pending"
)

// Fallback names used when a party has neither display nor full name.
const (
	MenteeFallbackName = "Community Member"
	MentorFallbackName = "Mentor"
)

// MentorRequest is a mentee asking a mentor for guidance in one area.
type MentorRequest struct {
	common.BaseModel
	MenteeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"mentee_id"`
	MenteeName  string    `gorm:"type:varchar(200)" json:"mentee_name"`
	MenteeEmail string    `gorm:"type:varchar(255)" json:"-"`
	MentorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"mentor_id"`
	MentorName  string    `gorm:"type:varchar(200)" json:"mentor_name"`
	MentorEmail string    `gorm:"type:varchar(255)" json:"-"`
	AreaOfHelp  string    `gorm:"type:varchar(100);not null" json:"area_of_help"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

// TableName specifies the table name for the MentorRequest model.
func (MentorRequest) TableName() string {
	return "mentor_requests"
}

// Filter is the Mentors filter bar.
type Filter struct {
	Specialty string
	Location  string
	Sort      common.SortKey
}

// Facets returns the Mentors facets. Location is a case-insensitive substring match.
func (f Filter) Facets() []directory.Facet[user.User] {
	return []directory.Facet[user.User]{
		{Name: "specialty", Value: f.Specialty, Match: func(u user.User, v string) bool { return directory.Member(u.MentorSpecialties, v) }},
		{Name: "location", Value: f.Location, Match: func(u user.User, v string) bool { return directory.ContainsFold(u.Location, v) }},
	}
}

// CreateRequestRequest is the "request mentorship" form.
type CreateRequestRequest struct {
	AreaOfHelp string `json:"area_of_help" binding:"required,max=100"`
	Message    string `json:"message" binding:"required,max=2000"`
}

// RequestResponse is a mentor request as returned to the mentee.
type RequestResponse struct {
	ID         uuid.UUID `json:"id"`
	MentorID   uuid.UUID `json:"mentor_id"`
	MentorName string    `json:"mentor_name"`
	MenteeName string    `json:"mentee_name"`
	AreaOfHelp string    `json:"area_of_help"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_date"`
}

// ToRequestResponse converts a MentorRequest model to its response DTO.
func ToRequestResponse(r MentorRequest) RequestResponse {
	return RequestResponse{
		ID:         r.ID,
		MentorID:   r.MentorID,
		MentorName: r.MentorName,
		MenteeName: r.MenteeName,
		AreaOfHelp: r.AreaOfHelp,
		Message:    r.Message,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}
