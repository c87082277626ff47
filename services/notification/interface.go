package notification

import (
	"context"
	"errors"
	"sync"

	"speakerhub/models"
)

// Notifier delivers a toast to a user.
type Notifier interface {
	Notify(ctx context.Context, userID string, toast models.Toast) error
}

// Collector records toasts so they can be returned with the HTTP response.
type Collector struct {
	mu     sync.Mutex
	toasts []models.Toast
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Notify(_ context.Context, _ string, toast models.Toast) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = append(c.toasts, toast)
	return nil
}

// Toasts returns a copy of the collected toasts in delivery order.
func (c *Collector) Toasts() []models.Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Fanout delivers to every notifier, nil entries skipped. All notifiers are
// attempted; their errors are joined.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, userID string, toast models.Toast) error {
	var errs []error
	for _, n := range f {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, userID, toast); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Success builds a default-variant toast.
func Success(title, description string) models.Toast {
	return models.Toast{Title: title, Description: description, Variant: models.ToastDefault}
}

// Failure builds a destructive-variant toast.
func Failure(title, description string) models.Toast {
	return models.Toast{Title: title, Description: description, Variant: models.ToastDestructive}
}
