package sched

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"recordar/internal/clock"
	"recordar/internal/errors"
	"recordar/internal/logging"
	"recordar/internal/model"
)

// NotificationService is the external one-shot notification collaborator.
// Submit arms a trigger for the notification's instant and returns a
// fresh opaque token identifying it; Cancel revokes a trigger by token
// and succeeds silently for unknown tokens. Ready is the startup
// permission probe: a failure means delivery is unavailable and
// scheduling should degrade gracefully, never crash.
type NotificationService interface {
	Submit(n *model.Notification) (token string, err error)
	Cancel(token string) error
	Ready() error
}

// Deliverer hands a due notification to its transport. The webhook
// dispatcher in internal/notify implements this.
type Deliverer interface {
	Deliver(ctx context.Context, n *model.Notification) error
	Ready() error
}

// TimerService is an in-process NotificationService: each submission arms
// a timer that fires at the trigger instant and pushes the notification
// through a Deliverer. Triggers only survive as long as the process, which
// is why the watch loop re-arms them from the store at startup.
type TimerService struct {
	deliver Deliverer
	clk     clock.Clock

	mu     sync.Mutex
	timers map[string]*time.Timer
	onFire func(token string)
}

// NewTimerService creates a timer-backed notification service.
func NewTimerService(d Deliverer, clk clock.Clock) *TimerService {
	return &TimerService{
		deliver: d,
		clk:     clk,
		timers:  make(map[string]*time.Timer),
	}
}

// OnFire registers a callback invoked after a trigger fires, with the
// trigger's token. The scheduler uses it to keep its pending registry
// honest.
func (t *TimerService) OnFire(fn func(token string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onFire = fn
}

// Submit arms a one-shot timer for the notification's instant. A past
// instant fires immediately; futurity is the caller's concern.
func (t *TimerService) Submit(n *model.Notification) (string, error) {
	token := uuid.New().String()
	delay := n.At.Sub(t.clk.Now())
	if delay < 0 {
		delay = 0
	}

	t.mu.Lock()
	t.timers[token] = time.AfterFunc(delay, func() {
		t.fire(token, n)
	})
	t.mu.Unlock()

	return token, nil
}

func (t *TimerService) fire(token string, n *model.Notification) {
	t.mu.Lock()
	delete(t.timers, token)
	fn := t.onFire
	t.mu.Unlock()

	n.Timestamp = t.clk.Now()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := t.deliver.Deliver(ctx, n); err != nil {
		// Delivery failure loses one notification, never more.
		logging.Warn("notification delivery failed", "title", n.Title, "error", err)
	}

	if fn != nil {
		fn(token)
	}
}

// Cancel stops the timer for the token. Unknown tokens are a no-op.
func (t *TimerService) Cancel(token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[token]; ok {
		timer.Stop()
		delete(t.timers, token)
	}
	return nil
}

// Ready probes the delivery transport once at startup.
func (t *TimerService) Ready() error {
	if err := t.deliver.Ready(); err != nil {
		return errors.NewSchedulingError("ready", err)
	}
	return nil
}

// Stop cancels every armed timer. Called on shutdown.
func (t *TimerService) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for token, timer := range t.timers {
		timer.Stop()
		delete(t.timers, token)
	}
}

// PendingCount reports the number of armed timers.
func (t *TimerService) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.timers)
}
