// Package livestream simulates the audience of the Sunday broadcast.
package livestream

import (
	"math/rand/v2"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

const (
	// InitialViewers is the count shown when the stream opens.
	InitialViewers = 142
	// MaxDrift bounds each change of the viewer count.
	MaxDrift = 2
	// TickInterval is how often the count changes.
	TickInterval = 10 * time.Second
)

// Title and speaker of the broadcast.
const (
	Title   = "Sunday Morning Worship"
	Speaker = "Pastor John Smith"
)

// Source yields random integers in [0, n).
type Source interface {
	IntN(n int) int
}

// Viewers is the simulated viewer count. It is safe for concurrent use.
type Viewers struct {
	mu    sync.Mutex
	count int
	rnd   Source
}

// NewViewers starts a count at InitialViewers using rnd, or a
// time-seeded generator when rnd is nil.
func NewViewers(rnd Source) *Viewers {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)) //nolint:gosec // not security sensitive
	}
	return &Viewers{count: InitialViewers, rnd: rnd}
}

// Count returns the current count.
func (v *Viewers) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.count
}

// Step changes the count by a random amount in [-MaxDrift, MaxDrift],
// never going below zero, and returns the new count.
func (v *Viewers) Step() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	delta := v.rnd.IntN(2*MaxDrift+1) - MaxDrift
	v.count = max(0, v.count+delta)
	return v.count
}

// Label renders the count, e.g. "1,204 watching".
func (v *Viewers) Label() string {
	return humanize.Comma(int64(v.Count())) + " watching"
}

// TickMsg asks the live stream screen to step its viewer count. Stream
// tells apart ticks of a screen that was closed and opened again.
type TickMsg struct {
	Stream int64
	At     time.Time
}

// Tick schedules the next TickMsg for stream.
func Tick(stream int64) tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Stream: stream, At: t}
	})
}

// Player tracks the play/pause state of the (simulated) stream.
type Player struct {
	playing bool
}

// Playing reports whether the stream is playing.
func (p Player) Playing() bool { return p.playing }

// Toggle flips play/pause.
func (p *Player) Toggle() { p.playing = !p.playing }

// Service is a slot in the weekly broadcast schedule.
type Service struct {
	Day      string
	Hour     string
	Title    string
	Location string
	Live     bool
}

// Schedule lists this week's streamed services.
func Schedule() []Service {
	return []Service{
		{Day: "SUN", Hour: "10:00", Title: "Morning Worship", Location: "Main Sanctuary", Live: true},
		{Day: "SUN", Hour: "18:00", Title: "Evening Service", Location: "Main Sanctuary"},
		{Day: "WED", Hour: "19:30", Title: "Bible Study", Location: "Conference Room A"},
	}
}

// Details of the current broadcast.
const (
	Broadcast   = "Sunday Morning Service"
	Airing      = "July 27, 2025 · 10:00 AM"
	ServiceTime = "10:00 AM - 12:00 PM EST"
	About       = "Join us for a time of worship, prayer, and God's word as we gather as a community of believers."
	Previous    = "Missed a service? Watch previous sermons and catch up on God's word."
)
