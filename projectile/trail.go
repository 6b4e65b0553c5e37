package projectile

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
)

// TrailPoint is a position of a projectile recorded at a certain tick.
type TrailPoint struct {
	Position mgl32.Vec3
	Tick     int64
}

// Trail is a fixed-size circular buffer holding the most recent positions of a projectile.
type Trail struct {
	buffer   []TrailPoint
	capacity int
	head     int // next write position
	size     int
}

// NewTrail creates a new trail with the specified capacity. A non-positive capacity yields a trail that
// records nothing.
func NewTrail(capacity int) *Trail {
	if capacity < 0 {
		capacity = 0
	}
	return &Trail{
		buffer:   make([]TrailPoint, capacity),
		capacity: capacity,
	}
}

// Add inserts a new point, overwriting the oldest one when the trail is full.
func (t *Trail) Add(p TrailPoint) {
	if t.capacity == 0 {
		return
	}
	t.buffer[t.head] = p
	t.head = (t.head + 1) % t.capacity
	if t.size < t.capacity {
		t.size++
	}
}

// Points iterates the trail from the oldest point to the newest.
func (t *Trail) Points() iter.Seq[TrailPoint] {
	return func(yield func(TrailPoint) bool) {
		start := (t.head - t.size + t.capacity) % max(t.capacity, 1)
		for i := 0; i < t.size; i++ {
			if !yield(t.buffer[(start+i)%t.capacity]) {
				return
			}
		}
	}
}

// Latest returns the most recently added point.
func (t *Trail) Latest() (TrailPoint, bool) {
	if t.size == 0 {
		return TrailPoint{}, false
	}
	return t.buffer[(t.head-1+t.capacity)%t.capacity], true
}

// Len returns the current number of points in the trail.
func (t *Trail) Len() int {
	return t.size
}
