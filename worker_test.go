package corosort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty file has zero tokens", "", 0},
		{"single token has zero spaces, one token", "42", 1},
		{"space-separated tokens", "1 2 3", 3},
		{"trailing space still counts", "1 2 ", 3},
		{"tabs are not counted, undercounting on purpose", "1\t2\t3", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countTokens([]byte(tt.in)))
		})
	}
}

func TestParseTokens(t *testing.T) {
	storage := make([]int32, 3)
	noopHandle := &Handle{sched: &Scheduler{}, coro: newCoroutine(0)}

	err := parseTokens([]byte("10 -20 30"), storage, noopHandle)
	require.NoError(t, err)
	assert.Equal(t, []int32{10, -20, 30}, storage)
}

func TestParseTokens_TooFewTokens(t *testing.T) {
	storage := make([]int32, 3)
	noopHandle := &Handle{sched: &Scheduler{}, coro: newCoroutine(0)}

	err := parseTokens([]byte("10 20"), storage, noopHandle)
	assert.Error(t, err)
}

func TestParseTokens_InvalidToken(t *testing.T) {
	storage := make([]int32, 2)
	noopHandle := &Handle{sched: &Scheduler{}, coro: newCoroutine(0)}

	err := parseTokens([]byte("10 notanumber"), storage, noopHandle)
	assert.Error(t, err)
}

func TestParseTokens_ExtraTokensAreTruncated(t *testing.T) {
	// countTokens would only size storage for 2 elements here (one space),
	// even though the tab-delimited run really holds 3 tokens; parseTokens
	// must stop after filling what was allocated rather than overrunning it.
	storage := make([]int32, countTokens([]byte("1 2\t3")))
	noopHandle := &Handle{sched: &Scheduler{}, coro: newCoroutine(0)}

	err := parseTokens([]byte("1 2\t3"), storage, noopHandle)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, storage)
}
