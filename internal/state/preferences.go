package state

import (
	"database/sql"
	"errors"
)

// Preferences are the toggles on the More screen.
type Preferences struct {
	Notifications bool
	DarkMode      bool
}

// DefaultPreferences is used until the user changes a setting.
func DefaultPreferences() Preferences {
	return Preferences{Notifications: true}
}

// GetPreferences returns the saved preferences, or the defaults.
func (m *Manager) GetPreferences() (Preferences, error) {
	return getPreferences(m.db)
}

// SavePreferences stores p.
func (m *Manager) SavePreferences(p Preferences) error {
	return savePreferences(m.db, p)
}

func getPreferences(db *sql.DB) (Preferences, error) {
	var p Preferences
	err := db.QueryRow(`SELECT notifications, dark_mode FROM preferences WHERE id = 1`).
		Scan(&p.Notifications, &p.DarkMode)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return Preferences{}, err
	}
	return p, nil
}

func savePreferences(db *sql.DB, p Preferences) error {
	_, err := db.Exec(`
		INSERT INTO preferences (id, notifications, dark_mode)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			notifications = excluded.notifications,
			dark_mode = excluded.dark_mode
	`, p.Notifications, p.DarkMode)
	return err
}
