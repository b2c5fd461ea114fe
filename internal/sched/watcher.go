package sched

import (
	"time"

	"github.com/robfig/cron/v3"

	"recordar/internal/clock"
	"recordar/internal/errors"
	"recordar/internal/logging"
	"recordar/internal/model"
	"recordar/internal/storage"
)

// Watcher keeps triggers armed while the process runs. On start it arms a
// trigger for every active reminder with a future schedule, then rescans
// on a cron tick to re-arm reminders whose submission failed transiently
// and any armed through the running process since the last tick.
type Watcher struct {
	cron  *cron.Cron
	store *storage.Store
	sch   *Scheduler
	clk   clock.Clock
}

// NewWatcher creates a watcher over the store and scheduler.
func NewWatcher(store *storage.Store, sch *Scheduler, clk clock.Clock) *Watcher {
	return &Watcher{
		cron:  cron.New(cron.WithSeconds()),
		store: store,
		sch:   sch,
		clk:   clk,
	}
}

// Start arms current triggers and begins the rescan loop. spec is a cron
// expression with a seconds field.
func (w *Watcher) Start(spec string) error {
	w.Rescan()

	if _, err := w.cron.AddFunc(spec, w.Rescan); err != nil {
		return errors.Wrap(err, "failed to schedule rescan")
	}
	w.cron.Start()

	logging.Info("watch loop started", "spec", spec)
	return nil
}

// Stop halts the rescan loop. Armed timers are left to the service owner.
func (w *Watcher) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

// Rescan arms a trigger for every schedulable reminder that does not have
// one pending. Deleted reminders and past instants are skipped.
func (w *Watcher) Rescan() {
	now := w.clk.Now()

	for _, r := range w.store.List(false) {
		if !w.shouldArm(r, now) {
			continue
		}
		if _, err := w.sch.Schedule(r); err != nil {
			logging.Warn("failed to arm trigger", "reminder", r.ShortID(), "error", err)
		}
	}
}

func (w *Watcher) shouldArm(r *model.Reminder, now time.Time) bool {
	at, ok := r.TriggerInstant()
	if !ok || !at.After(now) {
		return false
	}
	return len(w.sch.Pending(r.ID)) == 0
}
