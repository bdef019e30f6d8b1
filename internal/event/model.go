// File: internal/event/model.go
package event

import (
	"time"

	"revert_connect_backend/internal/catalog"
	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format events are stored and submitted in.
const DateLayout = "2006-01-02"

// CacheKeyPrefix groups every cached event collection.
const CacheKeyPrefix = "events:"

// DefaultSort lists events by date, latest first.
const DefaultSort common.SortKey = "-date"

// Event is an Events screen entry. Date is a calendar date without a zone.
type Event struct {
	common.BaseModel
	Title            string     `gorm:"type:varchar(200);not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	EventType        string     `gorm:"type:varchar(30);not null;index" json:"event_type"`
	Date             string     `gorm:"type:varchar(10);not null;index" json:"date"`
	Time             string     `gorm:"type:varchar(20)" json:"time"`
	Location         string     `gorm:"type:varchar(200)" json:"location"`
	MaxAttendees     *int       `json:"max_attendees,omitempty"`
	CurrentAttendees *int       `json:"current_attendees,omitempty"`
	OrganizerID      *uuid.UUID `gorm:"type:uuid;index" json:"organizer_id,omitempty"`
	OrganizerName    string     `gorm:"type:varchar(200)" json:"organizer_name"`
}

// TableName specifies the table name for the Event model.
func (Event) TableName() string {
	return "events"
}

// Day parses Date in loc. ok is false for malformed dates.
func (e Event) Day(loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation(DateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Filter is the Events filter bar. Type defaults to "all", Period to "upcoming".
type Filter struct {
	Type   string
	Period string
	Sort   common.SortKey
}

// Facets returns the Events facets. today must be local midnight of the current day.
func (f Filter) Facets(today time.Time) []directory.Facet[Event] {
	return []directory.Facet[Event]{
		{Name: "type", Value: f.Type, Match: func(e Event, v string) bool { return directory.Equal(e.EventType, v) }},
		{Name: "period", Value: f.Period, Match: periodMatcher(today)},
	}
}

// periodMatcher compares an event's calendar date with today. Values other than
// upcoming and past do not restrict; events with unreadable dates match neither.
func periodMatcher(today time.Time) func(Event, string) bool {
	return func(e Event, period string) bool {
		if period != catalog.PeriodUpcoming && period != catalog.PeriodPast {
			return true
		}
		day, ok := e.Day(today.Location())
		if !ok {
			return false
		}
		if period == catalog.PeriodUpcoming {
			return !day.Before(today)
		}
		return day.Before(today)
	}
}

// StartOfDay returns local midnight of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// CreateEventRequest is the "new event" form.
type CreateEventRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"omitempty,max=5000"`
	EventType    string `json:"event_type" binding:"required,oneof=study_circle iftar social_gathering workshop charity"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string `json:"time" binding:"omitempty,max=20"`
	Location     string `json:"location" binding:"required,max=200"`
	MaxAttendees *int   `json:"max_attendees" binding:"omitempty,gte=1"`
}
