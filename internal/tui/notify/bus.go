// Package notify implements the announcer surface: a synchronous in-process
// bus that persists announcements and dispatches them to display listeners.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/colonyops/taskline/internal/core/eventbus"
	"github.com/colonyops/taskline/internal/core/notify"
	"github.com/rs/zerolog/log"
)

// Subscriber is a callback invoked when an announcement is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous announcement bus. It dispatches announcements to
// subscribers inline and persists them to a Store. The Bus is safe for use
// from the Bubble Tea Update loop (single-threaded).
type Bus struct {
	store       notify.Store
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates an announcement bus backed by the given store.
// If store is nil, announcements are dispatched to subscribers but not persisted.
func NewBus(store notify.Store) *Bus {
	return &Bus{
		store: store,
	}
}

// AttachEventBus forwards routed announcements from the event bus onto this
// bus, so every successful mutation surfaces as an announcement without the
// mutation sites knowing about the display layer.
func (b *Bus) AttachEventBus(eb *eventbus.EventBus) {
	eb.SubscribeNotificationPublished(func(p eventbus.NotificationPublishedPayload) {
		b.Publish(notify.Notification{
			Level:   p.Level,
			Message: p.Message,
		})
	})
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches an announcement to all subscribers and persists it.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	// Persist first so the announcement has an ID for subscribers.
	if b.store != nil {
		id, err := b.store.Save(context.Background(), n)
		if err != nil {
			log.Error().Err(err).Str("message", n.Message).Msg("failed to persist announcement")
		} else {
			n.ID = id
		}
	}

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// Errorf publishes an error-level announcement.
func (b *Bus) Errorf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelError,
		Message: fmt.Sprintf(format, args...),
	})
}

// Warnf publishes a warning-level announcement.
func (b *Bus) Warnf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelWarning,
		Message: fmt.Sprintf(format, args...),
	})
}

// Infof publishes an info-level announcement.
func (b *Bus) Infof(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelInfo,
		Message: fmt.Sprintf(format, args...),
	})
}

// History returns all persisted announcements (newest first).
// Returns nil if no store is configured.
func (b *Bus) History() ([]notify.Notification, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(context.Background())
}

// Clear deletes all persisted announcements.
func (b *Bus) Clear() error {
	if b.store == nil {
		return nil
	}
	return b.store.Clear(context.Background())
}
