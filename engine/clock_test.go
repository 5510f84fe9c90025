package engine

import (
	"testing"
	"time"
)

// fakeNow is a manually advanced time source
type fakeNow struct{ t time.Time }

func (f *fakeNow) Now() time.Time          { return f.t }
func (f *fakeNow) Advance(d time.Duration) { f.t = f.t.Add(d) }

// TestClockExcludesPauses verifies elapsed time freezes while paused
func TestClockExcludesPauses(t *testing.T) {
	now := &fakeNow{t: time.Unix(1000, 0)}
	c := NewClock(now.Now)

	now.Advance(2 * time.Second)
	c.Pause()
	now.Advance(5 * time.Second)

	if got := c.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 2s elapsed while paused, got %v", got)
	}

	c.Resume()
	now.Advance(time.Second)

	if got := c.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed after resume, got %v", got)
	}
}

// TestClockRepeatedPause verifies double pause and resume are no-ops
func TestClockRepeatedPause(t *testing.T) {
	now := &fakeNow{t: time.Unix(0, 0)}
	c := NewClock(now.Now)

	now.Advance(time.Second)
	c.Pause()
	now.Advance(time.Second)
	c.Pause()
	now.Advance(time.Second)
	c.Resume()
	c.Resume()
	now.Advance(time.Second)

	if got := c.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 2s elapsed, got %v", got)
	}
}

// TestLoopElapsedFollowsPause verifies the loop clock stops with Pause and restarts with Resume
func TestLoopElapsedFollowsPause(t *testing.T) {
	now := &fakeNow{t: time.Unix(0, 0)}
	l := NewLoop(time.Millisecond, nil, nil, WithClock(NewClock(now.Now)))

	now.Advance(4 * time.Second)
	l.Toggle()
	now.Advance(10 * time.Second)
	if got := l.Elapsed(); got != 4*time.Second {
		t.Errorf("Expected 4s while paused, got %v", got)
	}

	l.Toggle()
	now.Advance(time.Second)
	if got := l.Elapsed(); got != 5*time.Second {
		t.Errorf("Expected 5s after resume, got %v", got)
	}
}
