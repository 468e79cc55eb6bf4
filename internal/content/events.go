package content

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Event is a scheduled church gathering.
type Event struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
	Category    string
}

// EventCategories lists the event filter chips in display order.
var EventCategories = []string{CategoryAll, "Worship", "Bible Study", "Youth", "Community", "Special"}

// Events returns the event calendar in chronological order.
func Events() []Event {
	return []Event{
		{
			ID:          "1",
			Title:       "Youth Night",
			Start:       at(2025, time.July, 30, 19, 0),
			End:         at(2025, time.July, 30, 21, 0),
			Location:    "Youth Hall",
			Description: "Join us for an evening of worship, games, and fellowship with other young believers.",
			Category:    "Youth",
		},
		{
			ID:          "2",
			Title:       "Sunday Worship Service",
			Start:       at(2025, time.August, 3, 10, 0),
			End:         at(2025, time.August, 3, 12, 0),
			Location:    "Main Sanctuary",
			Description: "Weekly worship service with inspiring messages and beautiful music.",
			Category:    "Worship",
		},
		{
			ID:          "3",
			Title:       "Bible Study Group",
			Start:       at(2025, time.August, 5, 19, 30),
			End:         at(2025, time.August, 5, 21, 0),
			Location:    "Conference Room A",
			Description: "Deep dive into God's word with guided discussion and prayer.",
			Category:    "Bible Study",
		},
		{
			ID:          "4",
			Title:       "Community Outreach",
			Start:       at(2025, time.August, 10, 9, 0),
			End:         at(2025, time.August, 10, 15, 0),
			Location:    "Downtown Park",
			Description: "Serving our community with love and practical support.",
			Category:    "Community",
		},
		{
			ID:          "5",
			Title:       "Baptism Service",
			Start:       at(2025, time.August, 17, 11, 0),
			End:         at(2025, time.August, 17, 12, 30),
			Location:    "Main Sanctuary",
			Description: "Celebrate new beginnings as members are baptized.",
			Category:    "Special",
		},
	}
}

// FilterEvents returns the events in category, preserving order. An empty
// category or CategoryAll returns every event.
func FilterEvents(events []Event, category string) []Event {
	result := make([]Event, 0, len(events))
	for _, e := range events {
		if category == "" || category == CategoryAll || e.Category == category {
			result = append(result, e)
		}
	}
	return result
}

// Upcoming returns at most n events, in catalog order.
func Upcoming(events []Event, n int) []Event {
	if n < 0 {
		n = 0
	}
	if len(events) < n {
		n = len(events)
	}
	return events[:n]
}

// Day returns the zero-padded day of month, e.g. "03".
func (e Event) Day() string {
	return e.Start.Format("02")
}

// Month returns the upper-case month abbreviation, e.g. "AUG".
func (e Event) Month() string {
	return strings.ToUpper(e.Start.Format("Jan"))
}

// DateLabel returns the long date, e.g. "August 3, 2025".
func (e Event) DateLabel() string {
	return e.Start.Format("January 2, 2006")
}

// TimeRange returns the start and end time, e.g. "7:00 PM - 9:00 PM".
func (e Event) TimeRange() string {
	return e.Start.Format("3:04 PM") + " - " + e.End.Format("3:04 PM")
}

// Relative describes the start time relative to now, e.g. "3 days from now".
func (e Event) Relative(now time.Time) string {
	return humanize.RelTime(e.Start, now, "ago", "from now")
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

var categoryColors = map[string]string{
	"Worship":     "#E74C3C",
	"Bible Study": "#3498DB",
	"Youth":       "#9B59B6",
	"Community":   "#27AE60",
	"Special":     "#F39C12",
}

// CategoryColor is the accent colour for an event category.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return "#95A5A6"
}
