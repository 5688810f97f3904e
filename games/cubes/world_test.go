package cubes

import (
	"testing"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/math"
)

func approx(a, b float32) bool {
	return math.Abs(a-b) <= 1e-4
}

func TestRandomSphereBounds(t *testing.T) {
	rng := math.NewRandom(3)
	for i := 0; i < 200; i++ {
		s := RandomSphere(rng)
		if s.Size < 0 || s.Size >= 5 {
			t.Fatalf("size %v out of [0, 5)", s.Size)
		}
		if s.Pos.X < -80 || s.Pos.X >= 80 || s.Pos.Y < s.Size || s.Pos.Y >= 50 || s.Pos.Z < -10 || s.Pos.Z >= 50 {
			t.Fatalf("position %v out of bounds", s.Pos)
		}
		if s.Colour.W != 1 {
			t.Fatalf("colour %v not opaque", s.Colour)
		}
	}
}

func TestSphereFallsUnderGravity(t *testing.T) {
	s := &Sphere{Pos: math.NewVec3(0, 40, 0), Size: 2}

	s.Update(core.SECOND)
	// position moves with the old velocity, then gravity applies
	if !approx(s.Pos.Y, 40) {
		t.Errorf("pos.y = %v, want 40", s.Pos.Y)
	}
	if !approx(s.Velocity.Y, -0.01) {
		t.Errorf("velocity.y = %v, want -0.01", s.Velocity.Y)
	}

	s.Update(core.SECOND)
	if !approx(s.Pos.Y, 30) {
		t.Errorf("pos.y = %v, want 30", s.Pos.Y)
	}
}

func TestSphereBouncesOffGround(t *testing.T) {
	s := &Sphere{Pos: math.NewVec3(0, 3, 0), Velocity: math.NewVec3(0, -0.01, 0), Size: 2}

	s.Update(core.SECOND / 2)
	if s.Pos.Y != 2 {
		t.Errorf("pos.y = %v, want clamped to the size 2", s.Pos.Y)
	}
	if s.Velocity.Y <= 0 {
		t.Errorf("velocity.y = %v, want upwards", s.Velocity.Y)
	}

	// never sinks below its size
	for i := 0; i < 1000; i++ {
		s.Update(16)
		if s.Pos.Y < s.Size {
			t.Fatalf("sphere sank to %v", s.Pos.Y)
		}
	}
}

func TestLightDirection(t *testing.T) {
	l := LightDirection()
	if !approx(l.Length(), 1) {
		t.Errorf("light direction not normalized: %v", l)
	}
	if l.Y <= 0 {
		t.Errorf("light %v does not point upwards", l)
	}
}

func TestRotationSpeeds(t *testing.T) {
	if !approx(COLOUR_CUBE_SPEED*core.SECOND, math.K_PI) {
		t.Errorf("colour cube turns %v rad/s, want pi", COLOUR_CUBE_SPEED*core.SECOND)
	}
	if !approx(TEXTURE_CUBE_SPEED*core.MINUTE, 2*math.K_PI) {
		t.Errorf("textured cube turns %v rad/min, want 2pi", TEXTURE_CUBE_SPEED*core.MINUTE)
	}
}
