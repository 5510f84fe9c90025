package firework

import (
	"github.com/lixenwraith/fireworks/vmath"
)

// Trail is a fixed-capacity FIFO of recent positions
// Pushing onto a full trail evicts the oldest entry
type Trail struct {
	buf  []vmath.Vec2
	head int // index of oldest entry
	n    int
}

// NewTrail creates a trail holding at most capacity positions
// A non-positive capacity yields a trail that stores nothing
func NewTrail(capacity int) Trail {
	if capacity < 0 {
		capacity = 0
	}
	return Trail{buf: make([]vmath.Vec2, capacity)}
}

// Push appends v, evicting the oldest entry when full
func (t *Trail) Push(v vmath.Vec2) {
	c := len(t.buf)
	if c == 0 {
		return
	}
	if t.n < c {
		t.buf[(t.head+t.n)%c] = v
		t.n++
		return
	}
	t.buf[t.head] = v
	t.head = (t.head + 1) % c
}

func (t *Trail) Len() int { return t.n }

func (t *Trail) Cap() int { return len(t.buf) }

// At returns the i-th entry, 0 is the oldest
func (t *Trail) At(i int) vmath.Vec2 {
	if i < 0 || i >= t.n {
		return vmath.Vec2{}
	}
	return t.buf[(t.head+i)%len(t.buf)]
}

// Points copies entries oldest first
func (t *Trail) Points() []vmath.Vec2 {
	out := make([]vmath.Vec2, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

func (t *Trail) Reset() {
	t.head, t.n = 0, 0
}
