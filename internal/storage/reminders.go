package storage

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"recordar/internal/clock"
	"recordar/internal/errors"
	"recordar/internal/logging"
	"recordar/internal/model"
	"recordar/internal/validate"
)

// BlobKey is the fixed key the whole reminder collection is stored under.
const BlobKey = "reminders"

// Canceller revokes pending notification triggers for a reminder. The
// scheduler satisfies this; the store calls it when a reminder is
// soft-deleted so no orphaned trigger fires later.
type Canceller interface {
	Cancel(reminderID string) error
}

// Store owns the in-memory reminder collection. All mutations go through
// it, and every mutation persists the whole collection as one JSON blob.
// A persistence failure keeps the in-memory mutation (the session stays
// consistent, durability is lost) and is reported alongside the result.
type Store struct {
	mu        sync.Mutex
	db        *DB
	clk       clock.Clock
	canceller Canceller
	reminders []*model.Reminder
}

// OpenStore loads the collection from the blob store. An absent or
// undecodable blob degrades to an empty collection; startup never fails
// on bad data.
func OpenStore(db *DB, clk clock.Clock) *Store {
	s := &Store{db: db, clk: clk}
	s.load()
	return s
}

// SetCanceller wires the notification scheduler in after construction.
func (s *Store) SetCanceller(c Canceller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canceller = c
}

func (s *Store) load() {
	data, err := s.db.GetBytes(BlobKey)
	if err != nil {
		if !IsErrKeyNotFound(err) {
			logging.Warn("failed to read reminder blob, starting empty", "error", err)
		}
		return
	}

	var reminders []*model.Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		logging.Warn("failed to decode reminder blob, starting empty", "error", err)
		return
	}
	s.reminders = reminders
}

// persist serializes the whole collection and writes it under BlobKey.
func (s *Store) persist() error {
	data, err := json.Marshal(s.reminders)
	if err != nil {
		return errors.NewPersistenceError("encode", err)
	}
	if err := s.db.SetBytes(BlobKey, data); err != nil {
		return errors.NewPersistenceError("save", err)
	}
	return nil
}

// Create validates the text, allocates a fresh identity, appends the
// reminder, and persists. On a persistence failure the reminder is still
// returned together with the error; the in-memory collection keeps it.
func (s *Store) Create(text, tag string, date, timeOfDay *time.Time) (*model.Reminder, error) {
	if err := validate.Text(text); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.NewReminder(text, tag, date, timeOfDay)
	s.reminders = append(s.reminders, r)

	if err := s.persist(); err != nil {
		return r.Clone(), err
	}
	return r.Clone(), nil
}

// Update mutates text, date, and time in place. The tag survives edits
// unchanged, matching the original edit flow. Returns ErrNotFound when no
// reminder carries the id.
func (s *Store) Update(id, text string, date, timeOfDay *time.Time) (*model.Reminder, error) {
	if err := validate.Text(text); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "update %s", id)
	}

	r.Text = text
	r.Date = date
	r.Time = timeOfDay

	if err := s.persist(); err != nil {
		return r.Clone(), err
	}
	return r.Clone(), nil
}

// SoftDelete marks the reminder deleted, stamps DeletedAt from the clock,
// cancels any pending notification, and persists. Deleting an absent or
// already deleted reminder returns ErrNotFound.
func (s *Store) SoftDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil || r.IsDeleted {
		return errors.Wrapf(errors.ErrNotFound, "soft delete %s", id)
	}

	now := s.clk.Now()
	r.IsDeleted = true
	r.DeletedAt = &now

	if s.canceller != nil {
		if err := s.canceller.Cancel(id); err != nil {
			// Scheduling failures never affect store state.
			logging.Warn("failed to cancel notification for deleted reminder",
				"id", id, "error", err)
		}
	}

	return s.persist()
}

// Restore clears the deleted state. Restoring an absent reminder returns
// ErrNotFound; restoring one that is not deleted returns ErrNotDeleted.
// No notification is rescheduled here; callers re-derive scheduling.
func (s *Store) Restore(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil {
		return errors.Wrapf(errors.ErrNotFound, "restore %s", id)
	}
	if !r.IsDeleted {
		return errors.Wrapf(errors.ErrNotDeleted, "restore %s", id)
	}

	r.IsDeleted = false
	r.DeletedAt = nil

	return s.persist()
}

// Purge permanently removes the reminder. Purging an absent id is a
// no-op, not an error.
func (s *Store) Purge(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reminders {
		if r.ID == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Get returns a copy of the reminder with the given id.
func (s *Store) Get(id string) (*model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "get %s", id)
	}
	return r.Clone(), nil
}

// Resolve finds a reminder by full id or unambiguous id prefix.
func (s *Store) Resolve(idOrPrefix string) (*model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var match *model.Reminder
	for _, r := range s.reminders {
		if r.ID == idOrPrefix {
			return r.Clone(), nil
		}
		if strings.HasPrefix(r.ID, idOrPrefix) {
			if match != nil {
				return nil, errors.NewValidationErrorWithField("id", idOrPrefix,
					"multiple reminders match the given id",
					"Use more characters of the id")
			}
			match = r
		}
	}
	if match == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "resolve %s", idOrPrefix)
	}
	return match.Clone(), nil
}

// List returns copies of the reminders in insertion order. When
// includeDeleted is false, soft-deleted entries are filtered out.
func (s *Store) List(includeDeleted bool) []*model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*model.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		if !includeDeleted && r.IsDeleted {
			continue
		}
		result = append(result, r.Clone())
	}
	return result
}

// ListDeleted returns only the soft-deleted reminders, in insertion order.
func (s *Store) ListDeleted() []*model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*model.Reminder
	for _, r := range s.reminders {
		if r.IsDeleted {
			result = append(result, r.Clone())
		}
	}
	return result
}

// Search returns active reminders whose text contains the query,
// case-insensitively. An empty query matches everything.
func (s *Store) Search(query string) []*model.Reminder {
	query = strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*model.Reminder
	for _, r := range s.reminders {
		if r.IsDeleted {
			continue
		}
		if query == "" || strings.Contains(strings.ToLower(r.Text), query) {
			result = append(result, r.Clone())
		}
	}
	return result
}

// Len reports the number of reminders, soft-deleted included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reminders)
}

func (s *Store) find(id string) *model.Reminder {
	for _, r := range s.reminders {
		if r.ID == id {
			return r
		}
	}
	return nil
}
