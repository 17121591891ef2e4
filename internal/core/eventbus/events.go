// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication within taskline.
package eventbus

import (
	"github.com/colonyops/taskline/internal/core/notify"
	"github.com/colonyops/taskline/internal/core/task"
)

// Event identifies an event type on the bus.
type Event string

// All event types, sorted A-Z.
const (
	EventFilterChanged         Event = "filter.changed"
	EventNotificationPublished Event = "notification.published"
	EventTaskAdded             Event = "task.added"
	EventTaskEdited            Event = "task.edited"
	EventTaskRemoved           Event = "task.removed"
	EventTaskReordered         Event = "task.reordered"
	EventTasksCleared          Event = "tasks.cleared"
	EventTaskToggled           Event = "task.toggled"
	EventThemeChanged          Event = "theme.changed"
	EventTUIStarted            Event = "tui.started"
	EventTUIStopped            Event = "tui.stopped"
)

// TaskAddedPayload is emitted when a task is created.
type TaskAddedPayload struct {
	Task task.Task
}

// TaskEditedPayload is emitted when a task's text changes.
type TaskEditedPayload struct {
	Task task.Task
}

// TaskRemovedPayload is emitted when a task is deleted.
type TaskRemovedPayload struct {
	Task task.Task
}

// TaskToggledPayload is emitted when a task's completion flag flips.
type TaskToggledPayload struct {
	Task task.Task
}

// TaskReorderedPayload is emitted when a task is moved to a new slot.
type TaskReorderedPayload struct {
	Task task.Task
}

// TasksClearedPayload is emitted when completed tasks are bulk-removed.
type TasksClearedPayload struct {
	Removed int
}

// FilterChangedPayload is emitted when the visibility filter changes.
type FilterChangedPayload struct {
	Filter task.Filter
}

// ThemeChangedPayload is emitted when the theme preference changes.
type ThemeChangedPayload struct {
	Theme string
}

// TUIStartedPayload is emitted when the TUI starts.
type TUIStartedPayload struct{}

// TUIStoppedPayload is emitted when the TUI stops.
type TUIStoppedPayload struct{}

// NotificationPublishedPayload carries an announcement routed from a domain
// event, ready for the announcer surface.
type NotificationPublishedPayload struct {
	Level   notify.Level
	Message string
}
