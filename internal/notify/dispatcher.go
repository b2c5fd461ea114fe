package notify

import (
	"context"
	"fmt"
	"time"

	"recordar/internal/config"
	"recordar/internal/logging"
	"recordar/internal/model"
)

// Dispatcher sends notifications to the configured webhook target. It
// implements sched.Deliverer.
type Dispatcher struct {
	target config.NotifyConfig
	client *HTTPClient
}

// NewDispatcher creates a dispatcher for the configured target.
func NewDispatcher(target config.NotifyConfig, httpCfg config.HTTPConfig) *Dispatcher {
	return &Dispatcher{
		target: target,
		client: NewHTTPClient(httpCfg.Timeout, httpCfg.Retries),
	}
}

// Ready reports whether a delivery target is configured. Called once at
// startup; a failure degrades scheduling instead of crashing.
func (d *Dispatcher) Ready() error {
	if d.target.URL == "" {
		return fmt.Errorf("no webhook target configured, set RECORDAR_NOTIFY_URL")
	}
	return nil
}

// Deliver formats and posts the notification. Failures are returned for
// logging and otherwise ignored: an undelivered notification never
// affects the reminder itself.
func (d *Dispatcher) Deliver(ctx context.Context, n *model.Notification) error {
	if d.target.URL == "" {
		return fmt.Errorf("no webhook target configured")
	}

	formatter := FormatterFor(d.target.Type, d.target.Template)
	payload, err := formatter.Format(n)
	if err != nil {
		return fmt.Errorf("failed to format notification: %w", err)
	}

	start := time.Now()
	result := d.client.Send(ctx, d.target.URL, formatter.ContentType(), payload)
	if result.Error != nil {
		return fmt.Errorf("delivery failed after %d attempts: %w", result.Attempts, result.Error)
	}

	logging.Debug("notification delivered",
		"status", result.StatusCode,
		"attempts", result.Attempts,
		"duration", time.Since(start))
	return nil
}
