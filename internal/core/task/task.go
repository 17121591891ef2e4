// Package task defines the task list domain model: tasks, filters,
// ordering, and the projection used for display.
package task

import "errors"

// ErrEmptyText is returned when a task's text is empty after trimming.
var ErrEmptyText = errors.New("task text is empty")

// Task is a single to-do item. ID is unique and immutable for the task's
// lifetime. Order is a timestamp-like key; values need not be contiguous but
// induce the user-intended total order. Text is stored trimmed.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Order     int64  `json:"order"`
}

// Snapshot is the persisted form of the full collection. It round-trips
// exactly through save/load.
type Snapshot struct {
	Tasks []Task `json:"tasks"`
}
