package state

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	dbutil "github.com/gccma/gccma/internal/db"
	"github.com/gccma/gccma/internal/prayer"
)

// AddPrayer appends a normalized request to the prayer journal.
func (m *Manager) AddPrayer(req prayer.Request) (prayer.Entry, error) {
	return addPrayer(m.db, req, m.now())
}

// ListPrayers returns the journal, newest first.
func (m *Manager) ListPrayers() ([]prayer.Entry, error) {
	return listPrayers(m.db)
}

func addPrayer(db *sql.DB, req prayer.Request, at time.Time) (prayer.Entry, error) {
	entry := prayer.Entry{
		ID:          uuid.NewString(),
		Request:     req.Normalized(),
		SubmittedAt: at,
	}
	r := entry.Request
	_, err := db.Exec(`
		INSERT INTO prayer_journal (id, anonymous, name, email, category, request, urgent, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, r.Anonymous, dbutil.NullString(r.Name), dbutil.NullString(r.Email),
		r.Category, r.Text, r.Urgent, at.UnixMilli())
	if err != nil {
		return prayer.Entry{}, err
	}
	return entry, nil
}

func listPrayers(db *sql.DB) ([]prayer.Entry, error) {
	rows, err := db.Query(`
		SELECT id, anonymous, name, email, category, request, urgent, submitted_at
		FROM prayer_journal
		ORDER BY submitted_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []prayer.Entry
	for rows.Next() {
		var e prayer.Entry
		var name, email sql.NullString
		var submitted int64
		if err := rows.Scan(&e.ID, &e.Request.Anonymous, &name, &email,
			&e.Request.Category, &e.Request.Text, &e.Request.Urgent, &submitted); err != nil {
			return nil, err
		}
		e.Request.Name = dbutil.NullStringValue(name)
		e.Request.Email = dbutil.NullStringValue(email)
		e.SubmittedAt = time.UnixMilli(submitted)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
