package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentKeepsNewestFirst(t *testing.T) {
	l := New("test")

	l.Info("first")
	l.Warn("second")
	l.Error("third")

	entries := l.Recent()
	assert.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "error", entries[0].Level)
	assert.Equal(t, "first", entries[2].Message)
}

func TestBufferIsBounded(t *testing.T) {
	l := New("test")

	for i := 0; i < MaxEntries+25; i++ {
		l.Info("entry %d", i)
	}

	entries := l.Recent()
	assert.Len(t, entries, MaxEntries)
	// Newest entry survives, oldest ones are dropped.
	assert.Equal(t, fmt.Sprintf("entry %d", MaxEntries+24), entries[0].Message)
	assert.Equal(t, fmt.Sprintf("entry %d", 25), entries[MaxEntries-1].Message)
}

func TestClear(t *testing.T) {
	l := New("test")
	l.Info("something")
	l.Clear()
	assert.Empty(t, l.Recent())
}
