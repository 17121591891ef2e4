package taskline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/colonyops/taskline/internal/core/eventbus"
	"github.com/colonyops/taskline/internal/core/kv"
	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/data/stores"
	"github.com/colonyops/taskline/pkg/randid"
	"github.com/rs/zerolog"
)

const (
	// kvNamespace scopes all taskline keys in the shared KV store.
	kvNamespace = "taskline"

	keyTasks  = "tasks"
	keyFilter = "filter"
	keyTheme  = "theme"

	taskIDLength = 8
)

// TaskService owns the task collection and its preferences. The in-memory
// state is authoritative: every mutation applies in memory first and is then
// written through to the KV store. A failed write leaves the in-memory state
// intact and surfaces the error to the caller.
//
// All methods are safe for concurrent use.
type TaskService struct {
	mu     sync.Mutex
	tasks  []task.Task
	filter task.Filter
	theme  string

	snapshots *kv.TypedKV[task.Snapshot]
	prefs     *kv.TypedKV[string]
	clock     *task.LogicalClock
	bus       *eventbus.EventBus
	log       zerolog.Logger

	// newID is swappable for deterministic tests.
	newID func() string
}

// NewTaskService creates a TaskService backed by store. Call Load before the
// first read or mutation.
func NewTaskService(store kv.KV, bus *eventbus.EventBus, log zerolog.Logger) *TaskService {
	return &TaskService{
		filter:    task.FilterAll,
		snapshots: kv.Scoped[task.Snapshot](store, kvNamespace),
		prefs:     kv.Scoped[string](store, kvNamespace),
		clock:     task.NewLogicalClock(0),
		bus:       bus,
		log:       log.With().Str("component", "task-service").Logger(),
		newID:     func() string { return randid.Generate(taskIDLength) },
	}
}

// Load hydrates the service from the KV store. Loading is fail-soft: a
// missing or unreadable key falls back to its default (empty collection,
// "all" filter, default theme) so a corrupt value never blocks startup.
func (s *TaskService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshots.Get(ctx, keyTasks)
	switch {
	case err == nil:
		s.tasks = snap.Tasks
		s.clock.Advance(task.MaxOrder(snap.Tasks))
	case stores.IsNotFoundError(err):
		s.tasks = nil
	default:
		s.log.Warn().Err(err).Msg("task snapshot unreadable, starting empty")
		s.tasks = nil
	}

	if f, err := s.prefs.Get(ctx, keyFilter); err == nil {
		if parsed, perr := task.ParseFilter(f); perr == nil {
			s.filter = parsed
		} else {
			s.log.Warn().Str("filter", f).Msg("stored filter invalid, using all")
		}
	} else if !stores.IsNotFoundError(err) {
		s.log.Warn().Err(err).Msg("filter preference unreadable, using all")
	}

	if t, err := s.prefs.Get(ctx, keyTheme); err == nil {
		s.theme = t
	} else if !stores.IsNotFoundError(err) {
		s.log.Warn().Err(err).Msg("theme preference unreadable, using default")
	}

	s.log.Debug().
		Int("tasks", len(s.tasks)).
		Str("filter", string(s.filter)).
		Msg("task state loaded")
}

// Add creates a new task from text and appends it to the end of the list.
// Text is trimmed; empty text after trimming is rejected with
// task.ErrEmptyText.
func (s *TaskService) Add(ctx context.Context, text string) (task.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return task.Task{}, task.ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := task.Task{
		ID:    s.newID(),
		Text:  text,
		Order: s.clock.Now(),
	}
	s.tasks = append(s.tasks, t)

	s.bus.PublishTaskAdded(eventbus.TaskAddedPayload{Task: t})

	if err := s.persistTasks(ctx); err != nil {
		return t, err
	}
	return t, nil
}

// Edit replaces the text of the task with the given id. Text is trimmed;
// empty text after trimming is rejected. A missing id is a silent no-op.
func (s *TaskService) Edit(ctx context.Context, id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return task.ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	if s.tasks[i].Text == text {
		return nil
	}
	s.tasks[i].Text = text

	s.bus.PublishTaskEdited(eventbus.TaskEditedPayload{Task: s.tasks[i]})

	return s.persistTasks(ctx)
}

// Remove deletes the task with the given id. A missing id is a silent no-op.
func (s *TaskService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	s.bus.PublishTaskRemoved(eventbus.TaskRemovedPayload{Task: removed})

	return s.persistTasks(ctx)
}

// Toggle flips the completion flag of the task with the given id. A missing
// id is a silent no-op.
func (s *TaskService) Toggle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed

	s.bus.PublishTaskToggled(eventbus.TaskToggledPayload{Task: s.tasks[i]})

	return s.persistTasks(ctx)
}

// ClearCompleted removes every completed task and returns how many were
// removed. When nothing is completed the collection is untouched: no write,
// no event.
func (s *TaskService) ClearCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	s.tasks = kept

	s.bus.PublishTasksCleared(eventbus.TasksClearedPayload{Removed: removed})

	return removed, s.persistTasks(ctx)
}

// Move reorders the task srcID into the slot occupied by dstID and reassigns
// fresh order keys to the whole collection. Unknown ids and src == dst are
// silent no-ops.
func (s *TaskService) Move(ctx context.Context, srcID, dstID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reordered, ok := task.Reorder(s.tasks, srcID, dstID)
	if !ok {
		return nil
	}
	task.Resequence(reordered, s.clock)
	s.tasks = reordered

	if i := s.indexOf(srcID); i >= 0 {
		s.bus.PublishTaskReordered(eventbus.TaskReorderedPayload{Task: s.tasks[i]})
	}

	return s.persistTasks(ctx)
}

// SetFilter changes the visibility filter and persists it. Setting the
// current filter again is a no-op.
func (s *TaskService) SetFilter(ctx context.Context, f task.Filter) error {
	if !f.IsValid() {
		return fmt.Errorf("invalid filter %q", f)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if f == s.filter {
		return nil
	}
	s.filter = f

	s.bus.PublishFilterChanged(eventbus.FilterChangedPayload{Filter: f})

	if err := s.prefs.Set(ctx, keyFilter, string(f)); err != nil {
		s.log.Error().Err(err).Msg("persist filter")
		return fmt.Errorf("persist filter: %w", err)
	}
	return nil
}

// CycleFilter advances the filter to the next value in cycle order
// (all, active, completed) and returns the new filter.
func (s *TaskService) CycleFilter(ctx context.Context) (task.Filter, error) {
	next := s.Filter().Next()
	return next, s.SetFilter(ctx, next)
}

// SetTheme persists the theme preference. The name must be a known theme.
func (s *TaskService) SetTheme(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == s.theme {
		return nil
	}
	s.theme = name

	s.bus.PublishThemeChanged(eventbus.ThemeChangedPayload{Theme: name})

	if err := s.prefs.Set(ctx, keyTheme, name); err != nil {
		s.log.Error().Err(err).Msg("persist theme")
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}

// Filter returns the current visibility filter.
func (s *TaskService) Filter() task.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Theme returns the persisted theme name, or "" when none is stored.
func (s *TaskService) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Tasks returns a copy of the full collection sorted by order key.
func (s *TaskService) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return task.SortByOrder(s.tasks)
}

// Projection returns the tasks visible under the current filter, sorted by
// order key.
func (s *TaskService) Projection() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return task.Project(s.tasks, s.filter)
}

// Counts returns the number of active and completed tasks.
func (s *TaskService) Counts() (active, completed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return active, completed
}

// Export returns the collection as a snapshot suitable for JSON output.
func (s *TaskService) Export() task.Snapshot {
	return task.Snapshot{Tasks: s.Tasks()}
}

// Import replaces the collection with the snapshot's tasks. Texts are
// trimmed, tasks with empty text are rejected, missing ids are generated,
// and order keys are reassigned in snapshot order.
func (s *TaskService) Import(ctx context.Context, snap task.Snapshot) error {
	incoming := task.SortByOrder(snap.Tasks)
	seen := make(map[string]struct{}, len(incoming))
	for i := range incoming {
		incoming[i].Text = strings.TrimSpace(incoming[i].Text)
		if incoming[i].Text == "" {
			return fmt.Errorf("task %d: %w", i, task.ErrEmptyText)
		}
		if incoming[i].ID == "" {
			incoming[i].ID = s.newID()
		}
		if _, dup := seen[incoming[i].ID]; dup {
			return fmt.Errorf("duplicate task id %q", incoming[i].ID)
		}
		seen[incoming[i].ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.Resequence(incoming, s.clock)
	s.tasks = incoming

	return s.persistTasks(ctx)
}

// indexOf must be called with s.mu held.
func (s *TaskService) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persistTasks must be called with s.mu held.
func (s *TaskService) persistTasks(ctx context.Context) error {
	snap := task.Snapshot{Tasks: task.SortByOrder(s.tasks)}
	if err := s.snapshots.Set(ctx, keyTasks, snap); err != nil {
		s.log.Error().Err(err).Int("tasks", len(snap.Tasks)).Msg("persist tasks")
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}
