package pong

import (
	"testing"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/math"
)

func approx(a, b float32) bool {
	return math.Abs(a-b) <= 1e-4
}

func newTestBall() *Ball {
	return NewBall(10, 100/core.SECOND, math.NewVec2(400, 300), math.NewRandom(7))
}

func TestIdleBallDoesNotMove(t *testing.T) {
	b := newTestBall()
	b.Pos = math.NewVec2(12, -7)
	b.Direction = math.NewVec2(1, 0)

	for i := 0; i < 5; i++ {
		b.UpdatePosition(1000)
	}
	if b.Pos != math.NewVec2(12, -7) {
		t.Errorf("idle ball moved to %v", b.Pos)
	}
}

func TestBallMovesByDirectionSpeedDelta(t *testing.T) {
	b := newTestBall()
	b.Direction = math.NewVec2(1, 0)
	b.IsMoving = true

	b.UpdatePosition(500)
	if !approx(b.Pos.X, 50) || b.Pos.Y != 0 {
		t.Errorf("pos = %v, want (50, 0)", b.Pos)
	}
}

func TestBallClampsAtVerticalEdge(t *testing.T) {
	tests := []struct {
		name  string
		y     float32
		dirY  float32
		wantY float32
	}{
		{"top", 301, 1, 290},
		{"bottom", -301, -1, -290},
		{"large delta", 0, 1, 290},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall()
			b.Pos = math.NewVec2(0, tt.y)
			b.Direction = math.NewVec2(0, tt.dirY)
			b.IsMoving = true

			b.UpdatePosition(100000)
			if b.Pos.Y != tt.wantY {
				t.Errorf("pos.y = %v, want %v", b.Pos.Y, tt.wantY)
			}
			if b.Pos.Y > b.ScreenEdge.Y || b.Pos.Y < -b.ScreenEdge.Y {
				t.Errorf("ball left the field: %v", b.Pos.Y)
			}
			if b.Direction.Y*tt.dirY >= 0 {
				t.Errorf("direction.y = %v was not flipped", b.Direction.Y)
			}
		})
	}
}

func TestCollisionIsBoundaryInclusive(t *testing.T) {
	p := NewPaddle(0, math.NewVec2(20, 100), 1, math.NewVec2(400, 300))
	b := newTestBall()

	// radius + half width
	b.Pos = math.NewVec2(20, 0)
	if !b.IsCollisionPossible(p) {
		t.Errorf("ball touching the paddle edge does not collide")
	}
	b.Pos = math.NewVec2(21, 0)
	if b.IsCollisionPossible(p) {
		t.Errorf("ball one unit away collides")
	}
	b.Pos = math.NewVec2(0, 60)
	if !b.IsCollisionPossible(p) {
		t.Errorf("ball touching the paddle top does not collide")
	}
	b.Pos = math.NewVec2(0, 61)
	if b.IsCollisionPossible(p) {
		t.Errorf("ball one unit above collides")
	}
}

func TestBounceTurnsBallAndSpeedsUp(t *testing.T) {
	p := NewPaddle(360, math.NewVec2(20, 100), 1, math.NewVec2(400, 300))
	b := newTestBall()
	b.SpeedMultiplier = 1.5
	b.Pos = math.NewVec2(345, 0)
	b.Direction = math.NewVec2(1, 0)
	b.IsMoving = true

	if !b.HitPaddle(p) {
		t.Fatal("expected a hit")
	}
	if b.Direction.X >= 0 {
		t.Errorf("direction %v still points at the paddle", b.Direction)
	}
	if !approx(b.Direction.Length(), 1) {
		t.Errorf("direction not normalized: %v", b.Direction)
	}
	if !approx(b.Speed, 0.15) {
		t.Errorf("speed = %v, want 0.15", b.Speed)
	}

	// moving away, the same contact is not a second hit
	if b.HitPaddle(p) {
		t.Errorf("ball moving away bounced again")
	}
}

func TestBounceSpreadStaysBounded(t *testing.T) {
	p := NewPaddle(360, math.NewVec2(20, 100), 1, math.NewVec2(400, 300))
	b := newTestBall()
	b.Spread = math.DegToRad(10)

	for i := 0; i < 100; i++ {
		b.Pos = math.NewVec2(345, 0)
		b.Bounce(p)
		if b.Direction.X >= 0 {
			t.Fatalf("direction %v points back at the paddle", b.Direction)
		}
		// straight back plus at most 10 degrees
		if b.Direction.X > -0.98 {
			t.Fatalf("deviation too large: %v", b.Direction)
		}
	}
}

func TestBounceAtPaddleCentreIsFinite(t *testing.T) {
	p := NewPaddle(360, math.NewVec2(20, 100), 1, math.NewVec2(400, 300))
	b := newTestBall()
	b.Pos = p.Pos
	b.Direction = math.NewVec2(1, 0)
	b.IsMoving = true

	b.Bounce(p)
	if b.Direction != math.NewVec2(-1, 0) {
		t.Errorf("direction = %v, want (-1, 0)", b.Direction)
	}
}

func TestSpeedCap(t *testing.T) {
	p := NewPaddle(360, math.NewVec2(20, 100), 1, math.NewVec2(400, 300))

	capped := newTestBall()
	capped.SpeedMultiplier = 2
	capped.MaxSpeed = 0.5
	unbounded := newTestBall()
	unbounded.SpeedMultiplier = 2

	for i := 0; i < 10; i++ {
		capped.Pos = math.NewVec2(345, 0)
		capped.Bounce(p)
		unbounded.Pos = math.NewVec2(345, 0)
		unbounded.Bounce(p)
	}
	if capped.Speed != 0.5 {
		t.Errorf("capped speed = %v, want 0.5", capped.Speed)
	}
	if !approx(unbounded.Speed, 0.1*1024) {
		t.Errorf("unbounded speed = %v, want %v", unbounded.Speed, 0.1*1024)
	}
}

func TestIsOutAndReset(t *testing.T) {
	b := newTestBall()
	b.Pos = math.NewVec2(399, 0)
	if b.IsOut() {
		t.Errorf("ball inside the field is out")
	}
	b.Pos = math.NewVec2(-400, 0)
	if !b.IsOut() {
		t.Errorf("ball on the left edge is not out")
	}

	b.Speed = 5
	b.IsMoving = true
	b.Reset()
	if b.Pos != math.NewVec2Zero() || b.IsMoving || b.Speed != b.DefaultSpeed || b.Direction != math.NewVec2Zero() {
		t.Errorf("reset ball = %+v", b)
	}
}

func TestServeHeadsToSide(t *testing.T) {
	b := newTestBall()
	for _, side := range []float32{-1, 1} {
		b.Reset()
		b.Serve(side)
		if !b.IsMoving || b.Direction.X*side <= 0 {
			t.Errorf("serve to %v went %v", side, b.Direction)
		}
		if !approx(b.Direction.Length(), 1) {
			t.Errorf("serve direction not normalized: %v", b.Direction)
		}
	}
}
