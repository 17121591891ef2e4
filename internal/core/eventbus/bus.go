package eventbus

import (
	"context"
	"sync"
)

// envelope pairs an event type with its payload on the dispatch channel.
type envelope struct {
	event   Event
	payload any
}

// EventBus dispatches typed events to subscribers from a single background
// goroutine. Publishing never blocks: when the buffer is full the event is
// dropped and the OnDrop hooks fire.
type EventBus struct {
	ch    chan envelope
	hooks hooks

	mu          sync.RWMutex
	subscribers map[Event][]func(any)
}

// New creates an EventBus with the given channel buffer size.
func New(buffer int) *EventBus {
	return &EventBus{
		ch:          make(chan envelope, buffer),
		subscribers: make(map[Event][]func(any)),
	}
}

// Start runs the dispatch loop until ctx is canceled. Subscribers run on the
// dispatch goroutine; a panicking subscriber is recovered and reported via
// the OnPanic hooks without stopping the loop.
func (bus *EventBus) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-bus.ch:
			bus.dispatch(env)
		}
	}
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	subs := make([]func(any), len(bus.subscribers[env.event]))
	copy(subs, bus.subscribers[env.event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					bus.runOnPanic(env.event, env.payload, r)
				}
			}()
			fn(env.payload)
		}()
	}
}

func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subscribers[event] = append(bus.subscribers[event], fn)
	bus.mu.Unlock()
	bus.runOnSubscribe(event)
}

// Typed Publish/Subscribe pairs. Keep sorted A-Z by event.

func (bus *EventBus) PublishFilterChanged(p FilterChangedPayload) { bus.send(EventFilterChanged, p) }

func (bus *EventBus) SubscribeFilterChanged(fn func(FilterChangedPayload)) {
	bus.subscribe(EventFilterChanged, func(v any) { fn(v.(FilterChangedPayload)) })
}

func (bus *EventBus) PublishNotificationPublished(p NotificationPublishedPayload) {
	bus.send(EventNotificationPublished, p)
}

func (bus *EventBus) SubscribeNotificationPublished(fn func(NotificationPublishedPayload)) {
	bus.subscribe(EventNotificationPublished, func(v any) { fn(v.(NotificationPublishedPayload)) })
}

func (bus *EventBus) PublishTaskAdded(p TaskAddedPayload) { bus.send(EventTaskAdded, p) }

func (bus *EventBus) SubscribeTaskAdded(fn func(TaskAddedPayload)) {
	bus.subscribe(EventTaskAdded, func(v any) { fn(v.(TaskAddedPayload)) })
}

func (bus *EventBus) PublishTaskEdited(p TaskEditedPayload) { bus.send(EventTaskEdited, p) }

func (bus *EventBus) SubscribeTaskEdited(fn func(TaskEditedPayload)) {
	bus.subscribe(EventTaskEdited, func(v any) { fn(v.(TaskEditedPayload)) })
}

func (bus *EventBus) PublishTaskRemoved(p TaskRemovedPayload) { bus.send(EventTaskRemoved, p) }

func (bus *EventBus) SubscribeTaskRemoved(fn func(TaskRemovedPayload)) {
	bus.subscribe(EventTaskRemoved, func(v any) { fn(v.(TaskRemovedPayload)) })
}

func (bus *EventBus) PublishTaskReordered(p TaskReorderedPayload) { bus.send(EventTaskReordered, p) }

func (bus *EventBus) SubscribeTaskReordered(fn func(TaskReorderedPayload)) {
	bus.subscribe(EventTaskReordered, func(v any) { fn(v.(TaskReorderedPayload)) })
}

func (bus *EventBus) PublishTasksCleared(p TasksClearedPayload) { bus.send(EventTasksCleared, p) }

func (bus *EventBus) SubscribeTasksCleared(fn func(TasksClearedPayload)) {
	bus.subscribe(EventTasksCleared, func(v any) { fn(v.(TasksClearedPayload)) })
}

func (bus *EventBus) PublishTaskToggled(p TaskToggledPayload) { bus.send(EventTaskToggled, p) }

func (bus *EventBus) SubscribeTaskToggled(fn func(TaskToggledPayload)) {
	bus.subscribe(EventTaskToggled, func(v any) { fn(v.(TaskToggledPayload)) })
}

func (bus *EventBus) PublishThemeChanged(p ThemeChangedPayload) { bus.send(EventThemeChanged, p) }

func (bus *EventBus) SubscribeThemeChanged(fn func(ThemeChangedPayload)) {
	bus.subscribe(EventThemeChanged, func(v any) { fn(v.(ThemeChangedPayload)) })
}

func (bus *EventBus) PublishTUIStarted(p TUIStartedPayload) { bus.send(EventTUIStarted, p) }

func (bus *EventBus) SubscribeTUIStarted(fn func(TUIStartedPayload)) {
	bus.subscribe(EventTUIStarted, func(v any) { fn(v.(TUIStartedPayload)) })
}

func (bus *EventBus) PublishTUIStopped(p TUIStoppedPayload) { bus.send(EventTUIStopped, p) }

func (bus *EventBus) SubscribeTUIStopped(fn func(TUIStoppedPayload)) {
	bus.subscribe(EventTUIStopped, func(v any) { fn(v.(TUIStoppedPayload)) })
}
