// internal/app/messages.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/notify"
	"github.com/gccma/gccma/internal/ui/action"
)

// Notification represents a temporary notification message.
type Notification struct {
	ID      int64
	Message string
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// maxNotifications caps the stack; the oldest is dropped first.
const maxNotifications = 3

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}

// push sends a desktop notification in the background, unless the
// member turned notifications off.
func (m Model) push(a action.Push) tea.Cmd {
	desktop, st, log := m.deps.Desktop, m.deps.State, m.deps.Logger()
	if desktop == nil {
		return nil
	}
	return func() tea.Msg {
		if st != nil {
			prefs, err := st.GetPreferences()
			if err != nil {
				log.Warn("load preferences", "err", err)
				return nil
			}
			if !prefs.Notifications {
				return nil
			}
		}
		_, err := desktop.Notify(notify.Notification{
			Title:    a.Title,
			Body:     a.Body,
			Category: a.Category,
			Timeout:  notify.DefaultTimeout,
			Urgency:  notify.UrgencyNormal,
		})
		if err != nil {
			log.Warn("desktop notification", "title", a.Title, "err", err)
		}
		return nil
	}
}

// notify adds a notification and schedules its removal.
func (m *Model) notify(text string) tea.Cmd {
	m.nextNotificationID++
	id := m.nextNotificationID
	m.Notifications = append(m.Notifications, Notification{ID: id, Message: text})
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
	m.relayout()
	return NotificationClearCmd(id)
}

func (m *Model) clearNotification(id int64) {
	for i, n := range m.Notifications {
		if n.ID == id {
			m.Notifications = append(m.Notifications[:i:i], m.Notifications[i+1:]...)
			m.relayout()
			return
		}
	}
}
