package sched

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordar/internal/errors"
	"recordar/internal/model"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// fakeService records submissions and cancellations, standing in for the
// OS notification service.
type fakeService struct {
	mu        sync.Mutex
	seq       int
	submitted map[string]*model.Notification // token -> notification
	cancelled []string
	submitErr error
	readyErr  error
}

func newFakeService() *fakeService {
	return &fakeService{submitted: make(map[string]*model.Notification)}
}

func (f *fakeService) Submit(n *model.Notification) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitErr != nil {
		return "", f.submitErr
	}
	f.seq++
	token := fmt.Sprintf("token-%d", f.seq)
	f.submitted[token] = n
	return token, nil
}

func (f *fakeService) Cancel(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.submitted, token)
	f.cancelled = append(f.cancelled, token)
	return nil
}

func (f *fakeService) Ready() error {
	return f.readyErr
}

func (f *fakeService) pendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submitted)
}

func scheduled(text string, date, tod time.Time) *model.Reminder {
	return model.NewReminder(text, "", &date, &tod)
}

func TestScheduleSubmitsOneTrigger(t *testing.T) {
	svc := newFakeService()
	sch := New(svc)

	r := scheduled("Water the plants", testNow.AddDate(0, 0, 1), testNow.Add(time.Hour))
	handle, err := sch.Schedule(r)
	require.NoError(t, err)

	assert.Equal(t, r.ID, handle.ReminderID)
	assert.NotEmpty(t, handle.Token)
	assert.Equal(t, 1, svc.pendingCount())

	trigger := svc.submitted[handle.Token]
	assert.Equal(t, model.NotificationTitle, trigger.Title)
	assert.Equal(t, "Water the plants", trigger.Body)
	assert.Equal(t, model.DefaultSound, trigger.Sound)

	// Date supplies the day, time supplies the clock.
	assert.Equal(t, time.Date(2025, 6, 16, 11, 0, 0, 0, time.UTC), trigger.At)

	assert.Equal(t, StatusPending, sch.Status(r.ID))
}

func TestScheduleCarriesTag(t *testing.T) {
	svc := newFakeService()
	sch := New(svc)

	date := testNow.AddDate(0, 0, 1)
	tod := testNow.Add(time.Hour)
	r := model.NewReminder("Take medication", "health", &date, &tod)

	handle, err := sch.Schedule(r)
	require.NoError(t, err)

	trigger := svc.submitted[handle.Token]
	assert.Equal(t, "health", trigger.Fields["Tag"])

	// An untagged reminder submits no display fields.
	plain, err := sch.Schedule(scheduled("no tag", date, tod))
	require.NoError(t, err)
	assert.Empty(t, svc.submitted[plain.Token].Fields)
}

func TestScheduleRequiresCompleteSchedule(t *testing.T) {
	sch := New(newFakeService())

	date := testNow.AddDate(0, 0, 1)
	for _, r := range []*model.Reminder{
		model.NewReminder("no schedule", "", nil, nil),
		model.NewReminder("date only", "", &date, nil),
		model.NewReminder("time only", "", nil, &date),
	} {
		_, err := sch.Schedule(r)
		assert.True(t, errors.IsValidation(err), "reminder %q", r.Text)
	}
}

func TestScheduleDoesNotRevalidateFuturity(t *testing.T) {
	svc := newFakeService()
	sch := New(svc)

	// A past instant is submitted without complaint; gating is the
	// validator's job, not the scheduler's.
	past := scheduled("too late", testNow.AddDate(0, 0, -1), testNow)
	_, err := sch.Schedule(past)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.pendingCount())
}

func TestScheduleThenCancelLeavesNothingPending(t *testing.T) {
	svc := newFakeService()
	sch := New(svc)

	r := scheduled("short lived", testNow.AddDate(0, 0, 1), testNow)
	_, err := sch.Schedule(r)
	require.NoError(t, err)

	require.NoError(t, sch.Cancel(r.ID))

	assert.Equal(t, 0, svc.pendingCount())
	assert.Empty(t, sch.Pending(r.ID))
	assert.Equal(t, StatusCancelled, sch.Status(r.ID))
}

func TestCancelIsIdempotent(t *testing.T) {
	sch := New(newFakeService())

	// Nothing pending: silent success, repeatedly.
	assert.NoError(t, sch.Cancel("unknown"))
	assert.NoError(t, sch.Cancel("unknown"))
	assert.Equal(t, StatusNone, sch.Status("unknown"))
}

func TestRescheduleReplacesTrigger(t *testing.T) {
	svc := newFakeService()
	sch := New(svc)

	r := scheduled("moving target", testNow.AddDate(0, 0, 1), testNow)
	first, err := sch.Schedule(r)
	require.NoError(t, err)

	date := testNow.AddDate(0, 0, 2)
	r.Date = &date
	second, err := sch.Reschedule(r)
	require.NoError(t, err)
	require.NotNil(t, second)

	// Exactly one trigger pending, never zero, never two.
	assert.Equal(t, 1, svc.pendingCount())
	assert.NotEqual(t, first.Token, second.Token)
	assert.Contains(t, svc.cancelled, first.Token)
	assert.Len(t, sch.Pending(r.ID), 1)
}

func TestRescheduleWithoutScheduleOnlyCancels(t *testing.T) {
	svc := newFakeService()
	sch := New(svc)

	r := scheduled("was scheduled", testNow.AddDate(0, 0, 1), testNow)
	_, err := sch.Schedule(r)
	require.NoError(t, err)

	// The edit removed the date/time; nothing to resubmit.
	r.Date = nil
	r.Time = nil
	handle, err := sch.Reschedule(r)
	require.NoError(t, err)
	assert.Nil(t, handle)
	assert.Equal(t, 0, svc.pendingCount())
}

func TestSubmitFailureDoesNotRegisterTrigger(t *testing.T) {
	svc := newFakeService()
	svc.submitErr = fmt.Errorf("permission revoked")
	sch := New(svc)

	r := scheduled("unlucky", testNow.AddDate(0, 0, 1), testNow)
	_, err := sch.Schedule(r)
	assert.True(t, errors.IsScheduling(err))
	assert.Empty(t, sch.Pending(r.ID))
	assert.Equal(t, StatusNone, sch.Status(r.ID))
}

func TestMarkFired(t *testing.T) {
	svc := newFakeService()
	sch := New(svc)

	r := scheduled("goes off", testNow.AddDate(0, 0, 1), testNow)
	handle, err := sch.Schedule(r)
	require.NoError(t, err)

	sch.MarkFired(handle.Token)

	assert.Empty(t, sch.Pending(r.ID))
	assert.Equal(t, StatusFired, sch.Status(r.ID))

	// Cancelling after the fact stays silent.
	assert.NoError(t, sch.Cancel(r.ID))
}
