package math

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is a seedable source of the float helpers scenes need. It is not safe for
// concurrent use; every scene owns its own.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a generator. A zero seed picks one from the wall clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a value in [0, 1).
func (r *Random) Float() float32 {
	return r.rng.Float32()
}

// Get returns a value in [0, max).
func (r *Random) Get(max float32) float32 {
	return r.Float() * max
}

// Between returns a value in [min, max).
func (r *Random) Between(min, max float32) float32 {
	return min + r.Get(max-min)
}

// Sign returns -1 or 1 with equal probability.
func (r *Random) Sign() float32 {
	if r.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

/**
 * @brief Converts a HSV colour to RGB.
 *
 * @param h The hue in degrees [0, 360).
 * @param s The saturation [0, 1].
 * @param v The value [0, 1].
 * @return An opaque RGBA colour.
 */
func HSVToRGB(h, s, v float32) Vec4 {
	f := func(n float32) float32 {
		k := n + h/60
		k = k - 6*float32(int(k/6))
		return v - v*s*Clamp(min(k, 4-k), 0, 1)
	}
	return Vec4{X: f(5), Y: f(3), Z: f(1), W: 1}
}
