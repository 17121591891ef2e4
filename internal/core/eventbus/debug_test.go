package eventbus_test

import (
	"sync/atomic"
	"testing"

	"github.com/colonyops/taskline/internal/core/eventbus"
	"github.com/colonyops/taskline/internal/core/eventbus/testbus"
	"github.com/colonyops/taskline/internal/core/task"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRegisterDebugLogger(t *testing.T) {
	tb := testbus.New(t)

	// Register with a nop logger — verifies no panic.
	eventbus.RegisterDebugLogger(tb.EventBus, zerolog.Nop())

	// Publish a few events to exercise all subscriber paths.
	tb.PublishTaskAdded(eventbus.TaskAddedPayload{Task: task.Task{ID: "t1", Text: "test"}})
	tb.PublishTUIStarted(eventbus.TUIStartedPayload{})
	tb.PublishFilterChanged(eventbus.FilterChangedPayload{Filter: task.FilterAll})

	// Wait for last event to confirm all dispatched without panic.
	tb.AssertPublished(t, eventbus.EventFilterChanged)
}

func TestEventBus_Hooks(t *testing.T) {
	tb := testbus.New(t)

	var subscribed, panicked atomic.Int64
	tb.OnSubscribe(func(eventbus.Event) { subscribed.Add(1) })
	tb.OnPanic(func(eventbus.Event, any, any) { panicked.Add(1) })

	tb.SubscribeTaskAdded(func(eventbus.TaskAddedPayload) {
		panic("boom")
	})
	assert.Equal(t, int64(1), subscribed.Load())

	// The panicking subscriber is recovered and the loop keeps dispatching.
	tb.PublishTaskAdded(eventbus.TaskAddedPayload{Task: task.Task{ID: "t1"}})
	tb.PublishTaskEdited(eventbus.TaskEditedPayload{Task: task.Task{ID: "t1"}})

	tb.AssertPublished(t, eventbus.EventTaskEdited)
	assert.Equal(t, int64(1), panicked.Load())
}
