package state

import (
	"database/sql"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/prayer"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
	GetPreferences() (Preferences, error)
	SavePreferences(p Preferences) error
	AddPrayer(req prayer.Request) (prayer.Entry, error)
	ListPrayers() ([]prayer.Entry, error)
	AddToCalendar(ev content.Event) (CalendarEntry, error)
	ListCalendar() ([]CalendarEntry, error)
	IsOnCalendar(eventID string) (bool, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
