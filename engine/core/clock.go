package core

// Time constants, in milliseconds. Every delta handed to a scene uses this unit.
const (
	MILLISECOND = 1.0
	SECOND      = 1000 * MILLISECOND
	MINUTE      = 60 * SECOND
)

// FrameTimer turns the absolute timestamps handed out by the host loop into
// per-frame deltas. The first timestamp yields a delta of zero.
type FrameTimer struct {
	last    float64
	started bool
}

func (t *FrameTimer) Tick(timestamp float64) float64 {
	if !t.started {
		t.started = true
		t.last = timestamp
		return 0
	}
	delta := timestamp - t.last
	t.last = timestamp
	if delta < 0 {
		return 0
	}
	return delta
}

func (t *FrameTimer) Reset() {
	t.started = false
	t.last = 0
}
