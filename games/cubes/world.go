package cubes

import (
	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/math"
)

const (
	SPHERE_COUNT = 10
	// Rotation of the coloured cube, radians per millisecond.
	COLOUR_CUBE_SPEED = math.K_PI / core.SECOND
	// Rotation of the textured cube, radians per millisecond.
	TEXTURE_CUBE_SPEED = 2 * math.K_PI / core.MINUTE
	// Camera movement, units per millisecond.
	CAMERA_SPEED = 20 / core.SECOND
)

// Gravity, in units per millisecond squared.
var GRAVITY = math.NewVec3Down().Scale(10 / core.SECOND / core.SECOND)

/**
 * @brief A ball that falls under gravity and bounces back up off the ground
 * plane without losing energy. Size is both its radius and its resting height.
 */
type Sphere struct {
	Pos      math.Vec3
	Velocity math.Vec3
	Size     float32
	Colour   math.Vec4
}

// RandomSphere places a sphere of size up to 5 somewhere above the ground with a
// random fully saturated colour.
func RandomSphere(rng *math.Random) *Sphere {
	size := rng.Get(5)
	return &Sphere{
		Pos:    math.NewVec3(rng.Between(-80, 80), rng.Between(size, 50), rng.Between(-10, 50)),
		Size:   size,
		Colour: math.HSVToRGB(rng.Get(360), 1, 1),
	}
}

func (s *Sphere) Update(delta float64) {
	d := float32(delta)
	s.Pos = s.Pos.ScaleAndAdd(s.Velocity, d)
	if s.Pos.Y <= s.Size {
		s.Pos.Y = s.Size
		s.Velocity.Y = -s.Velocity.Y
	}
	s.Velocity = s.Velocity.ScaleAndAdd(GRAVITY, d)
}

// LightDirection points up, tilted 30 degrees about X and then about Z.
func LightDirection() math.Vec3 {
	return math.NewVec3Up().RotateX(math.DegToRad(-30)).RotateZ(math.DegToRad(-30)).Normalize()
}
