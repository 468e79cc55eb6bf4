package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/gccma/gccma/internal/db"
)

// NavigationState is what the app restores on the next launch.
type NavigationState struct {
	Tab            string // content.Route of the active tab
	SermonCategory string
	EventCategory  string
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT tab, sermon_category, event_category
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var sermonCategory, eventCategory sql.NullString

	err := row.Scan(&state.Tab, &sermonCategory, &eventCategory)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SermonCategory = dbutil.NullStringValue(sermonCategory)
	state.EventCategory = dbutil.NullStringValue(eventCategory)

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, tab, sermon_category, event_category)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tab = excluded.tab,
			sermon_category = excluded.sermon_category,
			event_category = excluded.event_category
	`, state.Tab, dbutil.NullString(state.SermonCategory), dbutil.NullString(state.EventCategory))

	return err
}
