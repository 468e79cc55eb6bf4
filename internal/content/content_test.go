package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gccma/gccma/internal/config"
)

func sermonTitles(sermons []Sermon) []string {
	titles := make([]string, len(sermons))
	for i, s := range sermons {
		titles[i] = s.Title
	}
	return titles
}

func TestFilterSermons(t *testing.T) {
	tests := []struct {
		name   string
		filter SermonFilter
		want   []string
	}{
		{
			name:   "empty filter returns all",
			filter: SermonFilter{},
			want:   []string{"Walking in Faith", "The Power of Prayer", "Living with Purpose", "Youth and Faith"},
		},
		{
			name:   "query matches title case-insensitively",
			filter: SermonFilter{Query: "FAITH", Category: CategoryAll},
			want:   []string{"Walking in Faith", "Youth and Faith"},
		},
		{
			name:   "query matches speaker",
			filter: SermonFilter{Query: "sarah"},
			want:   []string{"The Power of Prayer"},
		},
		{
			name:   "category equality",
			filter: SermonFilter{Category: "Sunday Service"},
			want:   []string{"Walking in Faith", "Living with Purpose"},
		},
		{
			name:   "query and category combine",
			filter: SermonFilter{Query: "faith", Category: "Youth"},
			want:   []string{"Youth and Faith"},
		},
		{
			name:   "category with no sermons",
			filter: SermonFilter{Category: "Special Events"},
			want:   []string{},
		},
		{
			name:   "query with no match",
			filter: SermonFilter{Query: "revelation"},
			want:   []string{},
		},
		{
			name:   "query is matched as typed",
			filter: SermonFilter{Query: "faith "},
			want:   []string{},
		},
		{
			name:   "inner space matches",
			filter: SermonFilter{Query: "with purpose"},
			want:   []string{"Living with Purpose"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSermons(Sermons(), tt.filter)
			assert.Equal(t, tt.want, sermonTitles(got))
		})
	}
}

func TestLatestSermon(t *testing.T) {
	latest, ok := LatestSermon(Sermons())
	require.True(t, ok)
	assert.Equal(t, "Walking in Faith", latest.Title)

	_, ok = LatestSermon(nil)
	assert.False(t, ok)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 min", FormatDuration(45*time.Minute))
	assert.Equal(t, "0 min", FormatDuration(30*time.Second))
}

func TestFilterEvents(t *testing.T) {
	events := Events()

	assert.Len(t, FilterEvents(events, CategoryAll), 5)
	assert.Len(t, FilterEvents(events, ""), 5)

	worship := FilterEvents(events, "Worship")
	require.Len(t, worship, 1)
	assert.Equal(t, "Sunday Worship Service", worship[0].Title)

	assert.Empty(t, FilterEvents(events, "Retreat"))
}

func TestUpcoming(t *testing.T) {
	events := Events()
	assert.Len(t, Upcoming(events, 3), 3)
	assert.Len(t, Upcoming(events, 10), 5)
	assert.Empty(t, Upcoming(events, -1))
	assert.Equal(t, "Youth Night", Upcoming(events, 1)[0].Title)
}

func TestEventLabels(t *testing.T) {
	e := Events()[1]
	assert.Equal(t, "03", e.Day())
	assert.Equal(t, "AUG", e.Month())
	assert.Equal(t, "August 3, 2025", e.DateLabel())
	assert.Equal(t, "10:00 AM - 12:00 PM", e.TimeRange())
}

func TestEventRelative(t *testing.T) {
	e := Events()[1]
	now := e.Start.Add(-3 * 24 * time.Hour)
	assert.Equal(t, "3 days from now", e.Relative(now))

	after := e.Start.Add(2 * time.Hour)
	assert.Equal(t, "2 hours ago", e.Relative(after))
}

func TestMenuItemOpens(t *testing.T) {
	for _, item := range QuickActions() {
		assert.True(t, item.Opens(), item.Title)
	}

	opens := 0
	for _, item := range ConnectOptions() {
		if item.Opens() {
			opens++
		}
	}
	assert.Equal(t, 1, opens, "only Prayer Request opens a screen")
}

func TestContactInfo(t *testing.T) {
	cfg := config.Config{}
	links := ContactInfo(cfg.GetChurchConfig())
	require.Len(t, links, 4)

	assert.Equal(t, "tel:+15551234567", links[0].URL)
	assert.Equal(t, "mailto:info@gccma.org", links[1].URL)
	assert.Equal(t, "https://maps.google.com/?q=123+Church+Street%2C+Faith+City%2C+FC+12345", links[2].URL)
	assert.Equal(t, "https://www.gccma.org", links[3].URL)
}

func TestWebsiteURL(t *testing.T) {
	assert.Equal(t, "https://example.org", websiteURL("example.org"))
	assert.Equal(t, "http://example.org", websiteURL("http://example.org"))
	assert.Empty(t, websiteURL(""))
}

func TestSocialLinks(t *testing.T) {
	cfg := config.Config{}
	links := SocialLinks(cfg.GetChurchConfig())
	require.Len(t, links, 4)
	assert.Equal(t, "YouTube", links[2].Label)
	assert.Equal(t, "https://youtube.com/gccma", links[2].URL)
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "#E74C3C", CategoryColor("Worship"))
	assert.Equal(t, "#95A5A6", CategoryColor("Retreat"))
	for _, c := range EventCategories[1:] {
		assert.NotEqual(t, "#95A5A6", CategoryColor(c), c)
	}
}

func TestRouteIsTab(t *testing.T) {
	assert.True(t, RouteHome.IsTab())
	assert.True(t, RouteMore.IsTab())
	assert.False(t, RouteGiving.IsTab())
	assert.False(t, RouteLanding.IsTab())
}

func TestSermonDateLabel(t *testing.T) {
	s := Sermon{Date: date(2025, time.July, 27)}
	assert.Equal(t, "July 27, 2025", s.DateLabel())
}

func TestPastoralTeam(t *testing.T) {
	team := PastoralTeam()
	require.NotEmpty(t, team)
	assert.Equal(t, "Senior Pastor", team[0].Role)
}

func TestAboutMenuAndChurchAbout(t *testing.T) {
	menu := About()
	require.Len(t, menu, 4)
	assert.Equal(t, "About Our Church", menu[0].Title)
	assert.Equal(t, RouteConnect, menu[2].Route)
	assert.Contains(t, ChurchAbout, "community of believers")
}
