// Package content holds the church's built-in catalog: sermons, events,
// menus and contact details, plus the filters the screens apply to them.
package content

import (
	"fmt"
	"strings"
	"time"
)

// CategoryAll matches every item in a category filter.
const CategoryAll = "All"

// Sermon is a recorded message.
type Sermon struct {
	ID          string
	Title       string
	Speaker     string
	Date        time.Time
	Duration    time.Duration
	Description string
	Category    string
}

// SermonCategories lists the sermon filter chips in display order.
var SermonCategories = []string{CategoryAll, "Sunday Service", "Bible Study", "Youth", "Special Events"}

// Sermons returns the sermon catalog, newest first.
func Sermons() []Sermon {
	return []Sermon{
		{
			ID:          "1",
			Title:       "Walking in Faith",
			Speaker:     "Pastor John Smith",
			Date:        date(2025, time.July, 27),
			Duration:    45 * time.Minute,
			Description: "A powerful message about trusting God in uncertain times.",
			Category:    "Sunday Service",
		},
		{
			ID:          "2",
			Title:       "The Power of Prayer",
			Speaker:     "Pastor Sarah Johnson",
			Date:        date(2025, time.July, 20),
			Duration:    38 * time.Minute,
			Description: "Understanding the importance of prayer in our daily lives.",
			Category:    "Bible Study",
		},
		{
			ID:          "3",
			Title:       "Living with Purpose",
			Speaker:     "Pastor Michael Brown",
			Date:        date(2025, time.July, 13),
			Duration:    42 * time.Minute,
			Description: "Discovering God's purpose for your life.",
			Category:    "Sunday Service",
		},
		{
			ID:          "4",
			Title:       "Youth and Faith",
			Speaker:     "Pastor David Wilson",
			Date:        date(2025, time.July, 6),
			Duration:    35 * time.Minute,
			Description: "A special message for young believers.",
			Category:    "Youth",
		},
	}
}

// LatestSermon returns the most recent sermon, or false if the catalog is empty.
func LatestSermon(sermons []Sermon) (Sermon, bool) {
	if len(sermons) == 0 {
		return Sermon{}, false
	}
	latest := sermons[0]
	for _, s := range sermons[1:] {
		if s.Date.After(latest.Date) {
			latest = s
		}
	}
	return latest, true
}

// SermonFilter selects sermons by free-text query and category.
type SermonFilter struct {
	Query    string
	Category string
}

// Match reports whether s passes the filter. The query, taken as typed,
// is a case-insensitive substring of the title or the speaker; an empty
// category or CategoryAll matches every category.
func (f SermonFilter) Match(s Sermon) bool {
	q := strings.ToLower(f.Query)
	matchesSearch := q == "" ||
		strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Speaker), q)
	matchesCategory := f.Category == "" || f.Category == CategoryAll || s.Category == f.Category
	return matchesSearch && matchesCategory
}

// FilterSermons returns the sermons passing f, preserving order.
func FilterSermons(sermons []Sermon, f SermonFilter) []Sermon {
	result := make([]Sermon, 0, len(sermons))
	for _, s := range sermons {
		if f.Match(s) {
			result = append(result, s)
		}
	}
	return result
}

// DateLabel returns the long date, e.g. "July 27, 2025".
func (s Sermon) DateLabel() string {
	return s.Date.Format("January 2, 2006")
}

// FormatDuration renders a duration as "45 min".
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%d min", int(d.Minutes()))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
