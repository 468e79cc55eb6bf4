package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = "/org/freedesktop/Notifications"
	busMethod = busName + ".Notify"
	busClose  = busName + ".CloseNotification"

	appName      = "GCCMA"
	desktopEntry = "gccma"
)

// desktop talks to the notification server of the session bus.
type desktop struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one (a headless box, a
// non-Linux desktop) it returns Discard and no error: notices are
// optional.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Discard{}, nil //nolint:nilerr // notices are optional
	}
	return &desktop{obj: conn.Object(busName, busPath)}, nil
}

// hints builds the freedesktop hints of n.
func hints(n Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}
	if n.Category != "" {
		h["category"] = dbus.MakeVariant(n.Category)
	}
	return h
}

// Notify implements Notifier.
func (d *desktop) Notify(n Notification) (uint32, error) {
	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout)
	call := d.obj.Call(busMethod, 0,
		appName, uint32(0), "", n.Title, n.Body, []string{}, hints(n), n.Timeout)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close implements Notifier.
func (d *desktop) Close(id uint32) error {
	return d.obj.Call(busClose, 0, id).Err
}
