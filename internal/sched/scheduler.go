// Package sched translates reminders into one-shot notification triggers
// and manages their lifecycle against an external notification service.
package sched

import (
	"sync"
	"time"

	"recordar/internal/errors"
	"recordar/internal/logging"
	"recordar/internal/model"
)

// Status is a reminder's notification state.
type Status string

const (
	// StatusNone means no trigger has been submitted.
	StatusNone Status = "none"
	// StatusPending means a trigger is armed and has not fired.
	StatusPending Status = "pending"
	// StatusFired means the service delivered the notification.
	StatusFired Status = "fired"
	// StatusCancelled means the trigger was revoked before firing.
	StatusCancelled Status = "cancelled"
)

// TriggerHandle associates a submitted trigger token with the reminder it
// belongs to. Tokens are fresh per submission, so the handle is what makes
// later cancellation by reminder id possible.
type TriggerHandle struct {
	Token      string
	ReminderID string
	At         time.Time
}

// Scheduler submits and revokes triggers. It does not re-validate
// futurity: callers are expected to have gated the reminder through the
// validator, and a past instant will be submitted without complaint.
type Scheduler struct {
	svc NotificationService

	mu      sync.Mutex
	pending map[string][]TriggerHandle // reminder id -> armed triggers
	status  map[string]Status
}

// New creates a scheduler over the given notification service.
func New(svc NotificationService) *Scheduler {
	return &Scheduler{
		svc:     svc,
		pending: make(map[string][]TriggerHandle),
		status:  make(map[string]Status),
	}
}

// Schedule submits a one-shot trigger for the reminder's combined
// date+time instant. Both fields must be present. The notification carries
// the fixed title, the reminder's text as body, its tag as a display
// field, and the default sound.
func (s *Scheduler) Schedule(r *model.Reminder) (*TriggerHandle, error) {
	at, ok := r.TriggerInstant()
	if !ok {
		return nil, errors.NewValidationError(
			"reminder has no complete schedule",
			"Set both a date and a time to schedule a notification")
	}

	token, err := s.svc.Submit(model.NewNotification(r, at))
	if err != nil {
		return nil, errors.NewSchedulingError("submit", err)
	}

	handle := TriggerHandle{Token: token, ReminderID: r.ID, At: at}

	s.mu.Lock()
	s.pending[r.ID] = append(s.pending[r.ID], handle)
	s.status[r.ID] = StatusPending
	s.mu.Unlock()

	logging.Debug("trigger armed", "reminder", r.ShortID(), "at", at)
	return &handle, nil
}

// Cancel revokes every pending trigger for the reminder id. Cancelling
// when nothing is pending succeeds silently; cancellation is idempotent.
func (s *Scheduler) Cancel(reminderID string) error {
	s.mu.Lock()
	handles := s.pending[reminderID]
	delete(s.pending, reminderID)
	if len(handles) > 0 {
		s.status[reminderID] = StatusCancelled
	}
	s.mu.Unlock()

	var firstErr error
	for _, h := range handles {
		if err := s.svc.Cancel(h.Token); err != nil {
			logging.Warn("failed to cancel trigger",
				"reminder", reminderID, "token", h.Token, "error", err)
			if firstErr == nil {
				firstErr = errors.NewSchedulingError("cancel", err)
			}
		}
	}
	return firstErr
}

// Reschedule cancels any pending trigger and, when the reminder still has
// a complete schedule, submits exactly one new one. The edit flow calls
// this so a reminder never carries two live triggers, or a stale one.
func (s *Scheduler) Reschedule(r *model.Reminder) (*TriggerHandle, error) {
	if err := s.Cancel(r.ID); err != nil {
		// Cancel failures are logged above; the reschedule proceeds so
		// the new trigger is not lost.
		logging.Warn("cancel before reschedule failed", "reminder", r.ID, "error", err)
	}
	if !r.HasSchedule() {
		return nil, nil
	}
	return s.Schedule(r)
}

// MarkFired records delivery of the trigger with the given token. The
// timer service calls this from its fire callback.
func (s *Scheduler) MarkFired(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, handles := range s.pending {
		for i, h := range handles {
			if h.Token != token {
				continue
			}
			remaining := append(handles[:i:i], handles[i+1:]...)
			if len(remaining) == 0 {
				delete(s.pending, id)
				s.status[id] = StatusFired
			} else {
				s.pending[id] = remaining
			}
			return
		}
	}
}

// Pending returns the armed triggers for a reminder id.
func (s *Scheduler) Pending(reminderID string) []TriggerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TriggerHandle(nil), s.pending[reminderID]...)
}

// Status returns the reminder's notification state.
func (s *Scheduler) Status(reminderID string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.status[reminderID]; ok {
		return st
	}
	return StatusNone
}
