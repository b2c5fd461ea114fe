package model

import "time"

// NotificationTitle is the fixed title every reminder notification carries.
// The body is the reminder's own text.
const NotificationTitle = "Reminder"

// Notification is the payload handed to the delivery layer when a trigger
// fires.
type Notification struct {
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	At        time.Time         `json:"at"`
	Fields    map[string]string `json:"fields,omitempty"`
	Sound     string            `json:"sound,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// DefaultSound is the sound name attached to every notification.
const DefaultSound = "default"

// NewNotification builds the notification for a reminder firing at the
// given instant.
func NewNotification(r *Reminder, at time.Time) *Notification {
	n := &Notification{
		Title:     NotificationTitle,
		Body:      r.Text,
		At:        at,
		Sound:     DefaultSound,
		Timestamp: time.Now(),
	}
	if r.Tag != "" {
		n.WithField("Tag", r.Tag)
	}
	return n
}

// WithField adds a display field to the notification.
func (n *Notification) WithField(key, value string) *Notification {
	if n.Fields == nil {
		n.Fields = make(map[string]string)
	}
	n.Fields[key] = value
	return n
}
