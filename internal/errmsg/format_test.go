package errmsg

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{"nil error returns empty string", OpPrayerSave, nil, ""},
		{"prayer save", OpPrayerSave, errors.New("disk full"), "Failed to submit prayer request: disk full"},
		{"settings", OpPreferencesSave, errors.New("locked"), "Failed to save settings: locked"},
		{
			"wrapped error keeps chain text",
			OpStateOpen,
			fmt.Errorf("open database: %w", errors.New("permission denied")),
			"Failed to open local data: open database: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		err      error
		expected string
	}{
		{"nil error", "Youth Night", nil, ""},
		{"with subject", "Youth Night", errors.New("busy"), "Failed to add event to calendar 'Youth Night': busy"},
		{"empty subject falls back", "", errors.New("busy"), "Failed to add event to calendar: busy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(OpCalendarAdd, tt.subject, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
