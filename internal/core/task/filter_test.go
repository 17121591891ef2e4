package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"all", "active", "completed"} {
		t.Run(name, func(t *testing.T) {
			f, err := ParseFilter(name)
			require.NoError(t, err)
			assert.Equal(t, Filter(name), f)
		})
	}

	t.Run("rejects unknown name", func(t *testing.T) {
		_, err := ParseFilter("done")
		assert.Error(t, err)
	})
}

func TestFilter_Match(t *testing.T) {
	open := Task{ID: "o"}
	done := Task{ID: "d", Completed: true}

	assert.True(t, FilterAll.Match(open))
	assert.True(t, FilterAll.Match(done))
	assert.True(t, FilterActive.Match(open))
	assert.False(t, FilterActive.Match(done))
	assert.False(t, FilterCompleted.Match(open))
	assert.True(t, FilterCompleted.Match(done))
}

func TestFilter_Next(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
	// Unknown filters reset to all.
	assert.Equal(t, FilterAll, Filter("bogus").Next())
}
