package eventbus

import (
	"fmt"

	"github.com/colonyops/taskline/internal/core/notify"
)

// NotificationRouter maps domain events to user-facing announcements.
// Every successful mutation produces exactly one short message.
type NotificationRouter struct {
	bus *EventBus
}

// NewNotificationRouter constructs a router for event-to-announcement mappings.
func NewNotificationRouter(bus *EventBus) *NotificationRouter {
	return &NotificationRouter{bus: bus}
}

// Register subscribes all supported event mappings.
func (r *NotificationRouter) Register() {
	if r == nil || r.bus == nil {
		return
	}

	r.bus.SubscribeTaskAdded(func(p TaskAddedPayload) {
		r.notifyf(notify.LevelInfo, "added %q", p.Task.Text)
	})

	r.bus.SubscribeTaskEdited(func(p TaskEditedPayload) {
		r.notifyf(notify.LevelInfo, "updated %q", p.Task.Text)
	})

	r.bus.SubscribeTaskRemoved(func(p TaskRemovedPayload) {
		r.notifyf(notify.LevelInfo, "deleted %q", p.Task.Text)
	})

	r.bus.SubscribeTaskToggled(func(p TaskToggledPayload) {
		if p.Task.Completed {
			r.notifyf(notify.LevelInfo, "completed %q", p.Task.Text)
		} else {
			r.notifyf(notify.LevelInfo, "reopened %q", p.Task.Text)
		}
	})

	r.bus.SubscribeTaskReordered(func(p TaskReorderedPayload) {
		r.notifyf(notify.LevelInfo, "moved %q", p.Task.Text)
	})

	r.bus.SubscribeTasksCleared(func(p TasksClearedPayload) {
		if p.Removed == 1 {
			r.notifyf(notify.LevelInfo, "cleared 1 completed task")
			return
		}
		r.notifyf(notify.LevelInfo, "cleared %d completed tasks", p.Removed)
	})

	r.bus.SubscribeFilterChanged(func(p FilterChangedPayload) {
		r.notifyf(notify.LevelInfo, "showing %s tasks", p.Filter)
	})

	r.bus.SubscribeThemeChanged(func(p ThemeChangedPayload) {
		r.notifyf(notify.LevelInfo, "theme set to %s", p.Theme)
	})
}

func (r *NotificationRouter) notifyf(level notify.Level, format string, args ...any) {
	r.bus.PublishNotificationPublished(NotificationPublishedPayload{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}
