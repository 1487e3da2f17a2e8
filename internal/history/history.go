// Package history keeps a bounded FIFO of the most recent sensor readings.
package history

import "time"

// DefaultCapacity is how many readings the node remembers.
const DefaultCapacity = 10

// Reading is one timestamped sensing cycle. Readings are only created when
// both channels were available, so the fields are plain values. Immutable
// once recorded.
type Reading struct {
	Time  time.Time
	TempC int
	Light uint16
}

// Buffer is a fixed-capacity FIFO of readings, oldest first.
// Not safe for concurrent use; the control loop is single-threaded.
type Buffer struct {
	readings []Reading
	capacity int
}

// New creates a buffer with the given capacity. Capacity below one falls
// back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		readings: make([]Reading, 0, capacity),
		capacity: capacity,
	}
}

// Record appends a reading. When the buffer is full the oldest entry is
// evicted first, preserving insertion order.
func (b *Buffer) Record(r Reading) {
	if len(b.readings) >= b.capacity {
		copy(b.readings, b.readings[1:])
		b.readings[len(b.readings)-1] = r
		return
	}
	b.readings = append(b.readings, r)
}

// Snapshot returns a copy of the stored readings, oldest to newest.
func (b *Buffer) Snapshot() []Reading {
	out := make([]Reading, len(b.readings))
	copy(out, b.readings)
	return out
}

// Len returns the number of stored readings.
func (b *Buffer) Len() int {
	return len(b.readings)
}
