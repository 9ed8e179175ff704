package corosort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatenate(t *testing.T) {
	sched, err := NewScheduler(3, Config{OutputPath: "out.txt"})
	require.NoError(t, err)
	defer sched.Cleanup()

	runs := [][]int32{
		{1, 5, 9},
		{},
		{2, 3, 4, 100},
	}
	pool := sched.CoroPool()
	for i, r := range runs {
		pool[i].Storage = r
	}

	// Concatenate only needs the pool populated, not an actual Run.
	result := Concatenate(sched)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 9, 100}, result)
}

func TestConcatenate_AllEmpty(t *testing.T) {
	sched, err := NewScheduler(2, Config{OutputPath: "out.txt"})
	require.NoError(t, err)
	defer sched.Cleanup()

	result := Concatenate(sched)
	assert.Empty(t, result)
}
