package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixed() []Task {
	return []Task{
		{ID: "a", Text: "one", Completed: false, Order: 1},
		{ID: "b", Text: "two", Completed: true, Order: 2},
		{ID: "c", Text: "three", Completed: false, Order: 3},
		{ID: "d", Text: "four", Completed: true, Order: 4},
	}
}

func TestProject_AllPreservesIDSet(t *testing.T) {
	tasks := mixed()

	out := Project(tasks, FilterAll)

	require.Len(t, out, len(tasks))
	assert.ElementsMatch(t, ids(tasks), ids(out))
}

func TestProject_ActiveCompletedPartition(t *testing.T) {
	tasks := mixed()

	active := Project(tasks, FilterActive)
	completed := Project(tasks, FilterCompleted)

	assert.Len(t, active, 2)
	assert.Len(t, completed, 2)
	for _, tk := range active {
		assert.False(t, tk.Completed)
	}
	for _, tk := range completed {
		assert.True(t, tk.Completed)
	}
	assert.ElementsMatch(t, ids(tasks), append(ids(active), ids(completed)...))
}

func TestProject_SortsByOrder(t *testing.T) {
	tasks := []Task{
		{ID: "late", Order: 99},
		{ID: "early", Order: 1},
	}

	out := Project(tasks, FilterAll)

	assert.Equal(t, []string{"early", "late"}, ids(out))
}

func TestProject_Idempotent(t *testing.T) {
	tasks := mixed()

	first := Project(tasks, FilterActive)
	second := Project(tasks, FilterActive)

	assert.Equal(t, first, second)
}
