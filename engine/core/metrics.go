package core

import "github.com/spaghettifunk/glpong/engine/containers"

const AVG_COUNT = 30

// FrameMetrics keeps a rolling average of the last AVG_COUNT frame times and the
// frames counted during the last full second. Times are in milliseconds.
type FrameMetrics struct {
	msTimes            *containers.RingQueue[float64]
	msSum              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{
		msTimes: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

// Update records one frame and reports whether a full second has elapsed since
// the last FPS sample.
func (m *FrameMetrics) Update(frameMS float64) bool {
	if m.msTimes.IsFull() {
		oldest, _ := m.msTimes.Dequeue()
		m.msSum -= oldest
	}
	_ = m.msTimes.Enqueue(frameMS)
	m.msSum += frameMS

	// Count all frames.
	m.frames++

	m.accumulatedFrameMS += frameMS
	if m.accumulatedFrameMS >= SECOND {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= SECOND
		m.frames = 0
		return true
	}
	return false
}

func (m *FrameMetrics) FPS() float64 {
	return m.fps
}

// FrameTime returns the average of the recorded frame times.
func (m *FrameMetrics) FrameTime() float64 {
	if m.msTimes.IsEmpty() {
		return 0
	}
	return m.msSum / float64(m.msTimes.Len())
}
