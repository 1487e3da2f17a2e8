package logic

import "time"

// Debouncer turns a noisy active-low button level into discrete press
// events. A press fires on the falling edge (line goes high to low) when
// at least the minimum gap has passed since the last accepted press.
// A rising edge (release) re-arms the debouncer unconditionally and never
// fires; the guard applies only to the press edge, so one bouncy press
// cannot produce several events while re-arming stays immediate.
type Debouncer struct {
	minGap     time.Duration
	lastStable bool // line level at the last state change; true = high
	lastPress  time.Time
}

// NewDebouncer creates a debouncer with the given minimum gap between
// accepted presses. The line is assumed idle (pulled high) at start.
func NewDebouncer(minGap time.Duration) *Debouncer {
	return &Debouncer{
		minGap:     minGap,
		lastStable: true,
	}
}

// Poll feeds one raw level sample (true = line high) and reports whether
// an accepted press event fired on this call.
func (d *Debouncer) Poll(rawHigh bool, now time.Time) bool {
	if !rawHigh && d.lastStable {
		if now.Sub(d.lastPress) > d.minGap {
			d.lastPress = now
			d.lastStable = false
			return true
		}
		// Falling edge inside the guard window: stay armed so the press
		// is accepted once the gap elapses, but fire nothing now.
		return false
	}
	if rawHigh {
		d.lastStable = true
	}
	return false
}
