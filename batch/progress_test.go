package batch

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Basic(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 0)

	tracker.Start()
	tracker.Increment(25)
	tracker.Increment(25)
	tracker.Increment(50)

	assert.Equal(t, 100, tracker.Current())
	assert.Greater(t, tracker.Elapsed(), time.Duration(0))

	output := buf.String()
	assert.Contains(t, output, "25/100")
	assert.Contains(t, output, "100/100")
	assert.Contains(t, output, "100.0%")
}

func TestProgressTracker_Interval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, time.Hour)

	tracker.Start()
	tracker.Increment(10)
	tracker.Increment(10)
	assert.Empty(t, buf.String(), "nothing reported before the interval elapses")

	tracker.Finish()
	assert.Contains(t, buf.String(), "20/100")
	assert.Contains(t, buf.String(), "\n")
}

func TestProgressTracker_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 0)

	tracker.Increment(5)
	tracker.Finish()

	assert.Empty(t, buf.String())
	assert.Zero(t, tracker.Current())
	assert.Zero(t, tracker.Elapsed())
}

func TestProgressTracker_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 0, 0)

	tracker.Start()
	tracker.Finish()

	assert.Contains(t, buf.String(), "0/0")
}

func TestProgressTracker_IncrementBeyondTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 0)

	tracker.Start()
	tracker.Increment(15)

	assert.Equal(t, 10, tracker.Current())
	assert.Contains(t, buf.String(), "10/10")
}

func TestProgressTracker_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, time.Millisecond)
	tracker.Start()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				tracker.Increment(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, tracker.Current())
}
