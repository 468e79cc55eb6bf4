// Package errmsg turns failed operations into messages for the error popup.
package errmsg

import "fmt"

// Op names an operation that can fail, phrased to follow "Failed to".
type Op string

const (
	// Local storage
	OpStateOpen       Op = "open local data"
	OpNavigationLoad  Op = "restore last screen"
	OpPreferencesLoad Op = "load settings"
	OpPreferencesSave Op = "save settings"

	// Prayer journal
	OpPrayerSave Op = "submit prayer request"
	OpPrayerLoad Op = "load prayer journal"

	// Calendar
	OpCalendarAdd  Op = "add event to calendar"
	OpCalendarLoad Op = "load calendar"

	// Giving
	OpGiftSubmit Op = "submit gift"

	// Connect
	OpLinkCopy Op = "copy link"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith adds the subject of the operation, e.g. an event title.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
