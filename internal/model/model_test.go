package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminder(t *testing.T) {
	r := NewReminder("Buy milk", "errands", nil, nil)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Buy milk", r.Text)
	assert.Equal(t, "errands", r.Tag)
	assert.Nil(t, r.Date)
	assert.Nil(t, r.Time)
	assert.False(t, r.IsDeleted)
	assert.Nil(t, r.DeletedAt)
}

func TestNewReminderUniqueIDs(t *testing.T) {
	a := NewReminder("a", "", nil, nil)
	b := NewReminder("b", "", nil, nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestHasSchedule(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tod := time.Date(2000, 1, 1, 9, 30, 0, 0, time.UTC)

	assert.False(t, (&Reminder{}).HasSchedule())
	assert.False(t, (&Reminder{Date: &date}).HasSchedule())
	assert.False(t, (&Reminder{Time: &tod}).HasSchedule())
	assert.True(t, (&Reminder{Date: &date, Time: &tod}).HasSchedule())
}

func TestTriggerInstant(t *testing.T) {
	date := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
	tod := time.Date(2000, 1, 1, 9, 30, 45, 0, time.UTC)

	r := &Reminder{Date: &date, Time: &tod}
	instant, ok := r.TriggerInstant()
	require.True(t, ok)

	// Calendar fields come from the date, clock fields from the time of
	// day, seconds are dropped.
	assert.Equal(t, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), instant)

	_, ok = (&Reminder{Date: &date}).TriggerInstant()
	assert.False(t, ok)
}

func TestShortID(t *testing.T) {
	r := &Reminder{ID: "abcdef12-3456-7890-abcd-ef1234567890"}
	assert.Equal(t, "abcdef", r.ShortID())

	short := &Reminder{ID: "ab"}
	assert.Equal(t, "ab", short.ShortID())
}

func TestClone(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	r := NewReminder("original", "tag", &date, nil)

	c := r.Clone()
	c.Text = "changed"
	*c.Date = c.Date.AddDate(0, 0, 1)

	assert.Equal(t, "original", r.Text)
	assert.Equal(t, date, *r.Date)
}

func TestReminderJSONRoundTrip(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tod := time.Date(2000, 1, 1, 14, 45, 0, 0, time.UTC)
	deleted := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	original := []*Reminder{
		{ID: "1", Text: "plain"},
		{ID: "2", Text: "dated", Tag: "work", Date: &date},
		{ID: "3", Text: "full", Date: &date, Time: &tod},
		{ID: "4", Text: "gone", IsDeleted: true, DeletedAt: &deleted},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded []*Reminder
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestNewNotification(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	r := &Reminder{ID: "1", Text: "Call the dentist", Tag: "health"}

	n := NewNotification(r, at)
	assert.Equal(t, NotificationTitle, n.Title)
	assert.Equal(t, "Call the dentist", n.Body)
	assert.Equal(t, at, n.At)
	assert.Equal(t, DefaultSound, n.Sound)
	assert.Equal(t, "health", n.Fields["Tag"])

	plain := NewNotification(&Reminder{Text: "no tag"}, at)
	assert.Empty(t, plain.Fields)
}
