// Package model defines the domain models for recordar.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a short note that may carry an optional calendar date and an
// optional time of day. Only when both are present does it produce a
// notification trigger.
type Reminder struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Tag       string     `json:"tag"`
	Date      *time.Time `json:"date,omitempty"`
	Time      *time.Time `json:"time,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
}

// NewReminder creates an active reminder with a fresh identity.
func NewReminder(text, tag string, date, timeOfDay *time.Time) *Reminder {
	return &Reminder{
		ID:   uuid.New().String(),
		Text: text,
		Tag:  tag,
		Date: date,
		Time: timeOfDay,
	}
}

// HasSchedule reports whether both the date and the time of day are set,
// which is the precondition for scheduling a notification.
func (r *Reminder) HasSchedule() bool {
	return r.Date != nil && r.Time != nil
}

// TriggerInstant combines the reminder's date and time of day into the
// single instant its notification should fire at. The second return value
// is false when the reminder has no complete schedule.
func (r *Reminder) TriggerInstant() (time.Time, bool) {
	if !r.HasSchedule() {
		return time.Time{}, false
	}
	return CombineDateTime(*r.Date, *r.Time), true
}

// ShortID returns the first 6 characters of the UUID for display.
func (r *Reminder) ShortID() string {
	if len(r.ID) > 6 {
		return r.ID[:6]
	}
	return r.ID
}

// Clone returns a deep copy. The store hands clones to callers so the
// collection is never aliased or mutated externally.
func (r *Reminder) Clone() *Reminder {
	c := *r
	c.Date = cloneTime(r.Date)
	c.Time = cloneTime(r.Time)
	c.DeletedAt = cloneTime(r.DeletedAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// CombineDateTime takes the calendar year/month/day from date and the
// hour/minute from timeOfDay and builds one instant in date's location.
// Seconds and below are dropped.
func CombineDateTime(date, timeOfDay time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		date.Location(),
	)
}
