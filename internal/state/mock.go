package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gccma/gccma/internal/content"
	"github.com/gccma/gccma/internal/prayer"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	navState *NavigationState
	saved    []NavigationState
	prefs    Preferences
	prayers  []prayer.Entry
	calendar []CalendarEntry
	closed   bool

	// FailWrites makes every write return an error.
	FailWrites bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{prefs: DefaultPreferences()}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveNavigation(state NavigationState) {
	m.saved = append(m.saved, state)
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) GetPreferences() (Preferences, error) {
	return m.prefs, nil
}

func (m *Mock) SavePreferences(p Preferences) error {
	if m.FailWrites {
		return errMockWrite
	}
	m.prefs = p
	return nil
}

func (m *Mock) AddPrayer(req prayer.Request) (prayer.Entry, error) {
	if m.FailWrites {
		return prayer.Entry{}, errMockWrite
	}
	e := prayer.Entry{
		ID:          fmt.Sprintf("prayer-%d", len(m.prayers)+1),
		Request:     req.Normalized(),
		SubmittedAt: time.Now(),
	}
	m.prayers = append([]prayer.Entry{e}, m.prayers...)
	return e, nil
}

func (m *Mock) ListPrayers() ([]prayer.Entry, error) {
	return m.prayers, nil
}

func (m *Mock) AddToCalendar(ev content.Event) (CalendarEntry, error) {
	if m.FailWrites {
		return CalendarEntry{}, errMockWrite
	}
	for _, e := range m.calendar {
		if e.EventID == ev.ID {
			return e, ErrAlreadyOnCalendar
		}
	}
	e := CalendarEntry{
		ID:       fmt.Sprintf("cal-%d", len(m.calendar)+1),
		EventID:  ev.ID,
		Title:    ev.Title,
		Location: ev.Location,
		Start:    ev.Start,
		End:      ev.End,
		AddedAt:  time.Now(),
	}
	m.calendar = append(m.calendar, e)
	return e, nil
}

func (m *Mock) ListCalendar() ([]CalendarEntry, error) {
	return m.calendar, nil
}

func (m *Mock) IsOnCalendar(eventID string) (bool, error) {
	for _, e := range m.calendar {
		if e.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

var errMockWrite = errors.New("mock write failure")

func (m *Mock) SetNavigation(state *NavigationState) { m.navState = state }

func (m *Mock) SavedNavigation() []NavigationState { return m.saved }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
