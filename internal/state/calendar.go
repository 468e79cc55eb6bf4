package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gccma/gccma/internal/content"
	dbutil "github.com/gccma/gccma/internal/db"
)

// ErrAlreadyOnCalendar is returned when an event was added before.
var ErrAlreadyOnCalendar = errors.New("event is already on your calendar")

// CalendarEntry is an event the user added to their calendar.
type CalendarEntry struct {
	ID       string
	EventID  string
	Title    string
	Location string
	Start    time.Time
	End      time.Time
	AddedAt  time.Time
}

// AddToCalendar records ev. Adding the same event twice returns
// ErrAlreadyOnCalendar along with the existing entry.
func (m *Manager) AddToCalendar(ev content.Event) (CalendarEntry, error) {
	return addToCalendar(m.db, ev, m.now())
}

// ListCalendar returns the saved entries in start order.
func (m *Manager) ListCalendar() ([]CalendarEntry, error) {
	return listCalendar(m.db)
}

// IsOnCalendar reports whether the event with eventID was added.
func (m *Manager) IsOnCalendar(eventID string) (bool, error) {
	var n int
	err := m.db.QueryRow(`SELECT COUNT(*) FROM calendar_entries WHERE event_id = ?`, eventID).Scan(&n)
	return n > 0, err
}

func addToCalendar(db *sql.DB, ev content.Event, at time.Time) (CalendarEntry, error) {
	var entry CalendarEntry
	var existing bool

	err := dbutil.WithTx(db, func(tx *sql.Tx) error {
		row := tx.QueryRow(`
			SELECT id, event_id, title, location, starts_at, ends_at, added_at
			FROM calendar_entries WHERE event_id = ?
		`, ev.ID)
		e, err := scanCalendarEntry(row)
		if err == nil {
			entry, existing = e, true
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		entry = CalendarEntry{
			ID:       uuid.NewString(),
			EventID:  ev.ID,
			Title:    ev.Title,
			Location: ev.Location,
			Start:    ev.Start,
			End:      ev.End,
			AddedAt:  at,
		}
		_, err = tx.Exec(`
			INSERT INTO calendar_entries (id, event_id, title, location, starts_at, ends_at, added_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, entry.ID, entry.EventID, entry.Title, dbutil.NullString(entry.Location),
			entry.Start.Unix(), entry.End.Unix(), at.UnixMilli())
		return err
	})
	if err != nil {
		return CalendarEntry{}, err
	}
	if existing {
		return entry, ErrAlreadyOnCalendar
	}
	return entry, nil
}

func listCalendar(db *sql.DB) ([]CalendarEntry, error) {
	rows, err := db.Query(`
		SELECT id, event_id, title, location, starts_at, ends_at, added_at
		FROM calendar_entries
		ORDER BY starts_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []CalendarEntry
	for rows.Next() {
		e, err := scanCalendarEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCalendarEntry(s scanner) (CalendarEntry, error) {
	var e CalendarEntry
	var location sql.NullString
	var start, end, added int64
	if err := s.Scan(&e.ID, &e.EventID, &e.Title, &location, &start, &end, &added); err != nil {
		return CalendarEntry{}, err
	}
	e.Location = dbutil.NullStringValue(location)
	e.Start = time.Unix(start, 0)
	e.End = time.Unix(end, 0)
	e.AddedAt = time.UnixMilli(added)
	return e, nil
}
