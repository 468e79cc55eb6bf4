package content

// Route names a destination a menu item opens.
type Route string

const (
	RouteNone          Route = ""
	RouteLanding       Route = "landing"
	RouteAuth          Route = "auth"
	RouteHome          Route = "home"
	RouteSermons       Route = "sermons"
	RouteEvents        Route = "events"
	RouteConnect       Route = "connect"
	RouteMore          Route = "more"
	RouteLiveStream    Route = "live-stream"
	RouteGiving        Route = "giving"
	RoutePrayerRequest Route = "prayer-request"
)

// Tabs are the main sections, in tab bar order.
var Tabs = []Route{RouteHome, RouteSermons, RouteEvents, RouteConnect, RouteMore}

// IsTab reports whether r is one of Tabs.
func (r Route) IsTab() bool {
	for _, t := range Tabs {
		if t == r {
			return true
		}
	}
	return false
}

// MenuItem is a tappable row or tile that navigates somewhere or, when the
// destination is not part of the app, shows an informational notice.
type MenuItem struct {
	Title    string
	Subtitle string
	Icon     string // icon key, see internal/icons
	Color    string // accent colour as hex
	Route    Route
}

// Opens reports whether the item navigates to a screen of the app.
func (m MenuItem) Opens() bool {
	return m.Route != RouteNone
}

// QuickActions are the home screen shortcuts.
func QuickActions() []MenuItem {
	return []MenuItem{
		{Title: "Live Stream", Icon: "live", Color: "#E74C3C", Route: RouteLiveStream},
		{Title: "Give Online", Icon: "give", Color: "#27AE60", Route: RouteGiving},
		{Title: "Prayer Request", Icon: "prayer", Color: "#3498DB", Route: RoutePrayerRequest},
		{Title: "Contact Us", Icon: "people", Color: "#9B59B6", Route: RouteConnect},
	}
}

// ConnectOptions are the "Get Connected" tiles.
func ConnectOptions() []MenuItem {
	return []MenuItem{
		{Title: "Prayer Request", Subtitle: "Share your prayer needs with us", Icon: "prayer", Color: "#3498DB", Route: RoutePrayerRequest},
		{Title: "Small Groups", Subtitle: "Join a small group in your area", Icon: "people", Color: "#27AE60"},
		{Title: "Volunteer", Subtitle: "Serve in church ministries", Icon: "church", Color: "#E74C3C"},
		{Title: "Counseling", Subtitle: "Schedule a pastoral counseling session", Icon: "prayer", Color: "#9B59B6"},
	}
}

// MainMenu is the first section of the More screen.
func MainMenu() []MenuItem {
	return []MenuItem{
		{Title: "Give Online", Subtitle: "Support the church financially", Icon: "give", Color: "#27AE60", Route: RouteGiving},
		{Title: "Live Stream", Subtitle: "Watch services live", Icon: "live", Color: "#E74C3C", Route: RouteLiveStream},
		{Title: "Prayer Wall", Subtitle: "Share and pray for others", Icon: "prayer", Color: "#3498DB"},
		{Title: "Bible Reading Plan", Subtitle: "Follow daily Bible readings", Icon: "book", Color: "#9B59B6"},
		{Title: "Devotionals", Subtitle: "Daily spiritual reflections", Icon: "book", Color: "#F39C12"},
		{Title: "Church Calendar", Subtitle: "View all upcoming events", Icon: "calendar", Color: "#E67E22", Route: RouteEvents},
	}
}

// Resources is the resources section of the More screen.
func Resources() []MenuItem {
	return []MenuItem{
		{Title: "Sermon Notes", Subtitle: "Download sermon guides", Icon: "book"},
		{Title: "Church Directory", Subtitle: "Connect with members", Icon: "people"},
		{Title: "Ministry Information", Subtitle: "Learn about our ministries", Icon: "church"},
		{Title: "New Member Guide", Subtitle: "Information for new members", Icon: "book"},
	}
}

// About is the about section of the More screen.
func About() []MenuItem {
	return []MenuItem{
		{Title: "About Our Church", Subtitle: "Learn about GCCMA", Icon: "church"},
		{Title: "Statement of Faith", Subtitle: "Our beliefs and values", Icon: "book"},
		{Title: "Contact Us", Subtitle: "Get in touch", Icon: "people", Route: RouteConnect},
		{Title: "Feedback", Subtitle: "Share your thoughts", Icon: "prayer"},
	}
}

// Verse is a scripture passage with its reference.
type Verse struct {
	Text      string
	Reference string
}

// VerseOfTheDay is shown on the home screen.
var VerseOfTheDay = Verse{
	Text:      `"For I know the plans I have for you," declares the Lord, "plans to prosper you and not to harm you, to give you hope and a future."`,
	Reference: "Jeremiah 29:11",
}

// GivingVerse heads the giving form.
var GivingVerse = Verse{
	Text:      `"Each of you should give what you have decided in your heart to give, not reluctantly or under compulsion, for God loves a cheerful giver."`,
	Reference: "2 Corinthians 9:7",
}

// PrayerVerse heads the prayer request form.
var PrayerVerse = Verse{
	Text:      `"Therefore confess your sins to each other and pray for each other so that you may be healed. The prayer of a righteous person is powerful and effective."`,
	Reference: "James 5:16",
}
