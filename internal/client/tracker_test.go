package client

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerLatestWins(t *testing.T) {
	tracker := NewTracker()

	first := tracker.Begin()
	second := tracker.Begin()

	// The earlier submission is stale even if it settles first.
	assert.False(t, tracker.Accept(first))
	assert.True(t, tracker.Accept(second))
}

func TestTrackerSingleRequest(t *testing.T) {
	tracker := NewTracker()
	token := tracker.Begin()
	assert.True(t, tracker.Accept(token))
	// Accept is not consuming; the latest token stays valid until superseded.
	assert.True(t, tracker.Accept(token))
}

func TestTrackerTokensIncrease(t *testing.T) {
	tracker := NewTracker()
	prev := tracker.Begin()
	for i := 0; i < 10; i++ {
		next := tracker.Begin()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestTrackerConcurrentBegin(t *testing.T) {
	tracker := NewTracker()

	const n = 50
	tokens := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = tracker.Begin()
		}(i)
	}
	wg.Wait()

	// All tokens are distinct and exactly one of them is still accepted.
	seen := make(map[uint64]bool, n)
	accepted := 0
	for _, token := range tokens {
		assert.False(t, seen[token], "duplicate token %d", token)
		seen[token] = true
		if tracker.Accept(token) {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
}
