package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock is a deterministic Clock for tests.
type stepClock struct {
	next int64
}

func (c *stepClock) Now() int64 {
	c.next++
	return c.next
}

func abc() []Task {
	return []Task{
		{ID: "a", Text: "A", Order: 1},
		{ID: "b", Text: "B", Order: 2},
		{ID: "c", Text: "C", Order: 3},
	}
}

func ids(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestSortByOrder(t *testing.T) {
	t.Run("sorts ascending by order key", func(t *testing.T) {
		tasks := []Task{
			{ID: "c", Order: 30},
			{ID: "a", Order: 10},
			{ID: "b", Order: 20},
		}

		sorted := SortByOrder(tasks)

		assert.Equal(t, []string{"a", "b", "c"}, ids(sorted))
		// Input untouched.
		assert.Equal(t, []string{"c", "a", "b"}, ids(tasks))
	})

	t.Run("equal keys keep insertion order", func(t *testing.T) {
		tasks := []Task{
			{ID: "x", Order: 5},
			{ID: "y", Order: 5},
			{ID: "z", Order: 5},
		}

		sorted := SortByOrder(tasks)

		assert.Equal(t, []string{"x", "y", "z"}, ids(sorted))
	})
}

func TestReorder(t *testing.T) {
	t.Run("forward move lands after target", func(t *testing.T) {
		out, ok := Reorder(abc(), "a", "c")

		require.True(t, ok)
		assert.Equal(t, []string{"b", "c", "a"}, ids(out))
	})

	t.Run("backward move lands before target", func(t *testing.T) {
		out, ok := Reorder(abc(), "c", "a")

		require.True(t, ok)
		assert.Equal(t, []string{"c", "a", "b"}, ids(out))
	})

	t.Run("adjacent swap down", func(t *testing.T) {
		out, ok := Reorder(abc(), "a", "b")

		require.True(t, ok)
		assert.Equal(t, []string{"b", "a", "c"}, ids(out))
	})

	t.Run("adjacent swap up", func(t *testing.T) {
		out, ok := Reorder(abc(), "b", "a")

		require.True(t, ok)
		assert.Equal(t, []string{"b", "a", "c"}, ids(out))
	})

	t.Run("operates on sorted order not slice order", func(t *testing.T) {
		tasks := []Task{
			{ID: "c", Order: 3},
			{ID: "a", Order: 1},
			{ID: "b", Order: 2},
		}

		out, ok := Reorder(tasks, "a", "c")

		require.True(t, ok)
		assert.Equal(t, []string{"b", "c", "a"}, ids(out))
	})

	noops := []struct {
		name string
		src  string
		dst  string
	}{
		{"missing payload", "", "c"},
		{"empty target", "a", ""},
		{"drop on self", "a", "a"},
		{"unresolved source", "ghost", "c"},
		{"unresolved target", "a", "ghost"},
	}
	for _, tt := range noops {
		t.Run("no-op: "+tt.name, func(t *testing.T) {
			tasks := abc()

			out, ok := Reorder(tasks, tt.src, tt.dst)

			assert.False(t, ok)
			assert.Equal(t, ids(tasks), ids(out))
		})
	}
}

func TestResequence(t *testing.T) {
	clock := &stepClock{next: 100}
	tasks := []Task{
		{ID: "b", Order: 7},
		{ID: "c", Order: 7},
		{ID: "a", Order: 2},
	}

	Resequence(tasks, clock)

	// Keys are fresh, strictly increasing, and follow slice order.
	assert.Equal(t, int64(101), tasks[0].Order)
	assert.Equal(t, int64(102), tasks[1].Order)
	assert.Equal(t, int64(103), tasks[2].Order)
	assert.Equal(t, []string{"b", "c", "a"}, ids(SortByOrder(tasks)))
}

func TestMaxOrder(t *testing.T) {
	assert.Equal(t, int64(0), MaxOrder(nil))
	assert.Equal(t, int64(9), MaxOrder([]Task{{Order: 3}, {Order: 9}, {Order: 1}}))
}
