package event

import (
	"testing"
	"time"

	"revert_connect_backend/internal/directory"

	"github.com/stretchr/testify/assert"
)

func TestPeriodFacet_PastAndUpcoming(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	newYear := []Event{{Title: "New Year gathering", Date: "2024-01-01"}}

	past := directory.Apply(newYear, Filter{Period: "past"}.Facets(today)...)
	assert.Len(t, past, 1)

	upcoming := directory.Apply(newYear, Filter{Period: "upcoming"}.Facets(today)...)
	assert.Empty(t, upcoming)
}

func TestPeriodFacet_TodayIsUpcoming(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{{Date: "2024-06-01"}, {Date: "2024-05-31"}, {Date: "not a date"}}

	assert.Equal(t, []Event{{Date: "2024-06-01"}}, directory.Apply(events, Filter{Period: "upcoming"}.Facets(today)...))
	assert.Equal(t, []Event{{Date: "2024-05-31"}}, directory.Apply(events, Filter{Period: "past"}.Facets(today)...))
	assert.Equal(t, events, directory.Apply(events, Filter{Period: "all", Type: "all"}.Facets(today)...))
}

func TestStartOfDay_UsesDirectoryTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("timezone database unavailable")
	}
	// 20:00 UTC on May 31 is already June 1 in Tokyo.
	now := time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)
	today := StartOfDay(now, tokyo)
	assert.Equal(t, "2024-06-01", today.Format(DateLayout))

	events := []Event{{Date: "2024-05-31"}}
	assert.Empty(t, directory.Apply(events, Filter{Period: "upcoming"}.Facets(today)...))
}

func TestTypeFacet(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{Title: "Iftar", EventType: "iftar", Date: "2024-06-10"},
		{Title: "Halaqa", EventType: "study_circle", Date: "2024-06-11"},
	}
	got := directory.Apply(events, Filter{Type: "iftar", Period: "upcoming"}.Facets(today)...)
	assert.Len(t, got, 1)
	assert.Equal(t, "Iftar", got[0].Title)
}
