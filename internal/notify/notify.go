// Package notify shows desktop notifications through the freedesktop
// notification service on the session D-Bus.
package notify

// Urgency is the freedesktop urgency level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// DefaultTimeout lets the notification server pick how long to show it.
const DefaultTimeout int32 = -1

// Notification is one desktop notice.
type Notification struct {
	Title    string // summary line, required
	Body     string // may contain basic markup
	Category string // freedesktop category hint, e.g. "x-gccma.event"
	Timeout  int32  // ms; DefaultTimeout or 0 for never
	Urgency  Urgency
}

// Categories the app tags its notices with.
const (
	CategoryEvent  = "x-gccma.event"
	CategoryPrayer = "x-gccma.prayer"
)

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns the server's id for it, or 0 when
	// notices are unavailable.
	Notify(n Notification) (uint32, error)
	// Close withdraws a notice by id.
	Close(id uint32) error
}

// Discard is a Notifier that drops everything. It is used when no session
// bus is reachable.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(Notification) (uint32, error) { return 0, nil }

// Close implements Notifier.
func (Discard) Close(uint32) error { return nil }
