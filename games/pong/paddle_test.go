package pong

import (
	"testing"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/math"
)

func newTestPaddle() *Paddle {
	return NewPaddle(360, math.NewVec2(20, 100), 200/core.SECOND, math.NewVec2(400, 300))
}

func TestPaddleReachesApproachingBall(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall()
	b.Pos = math.NewVec2(0, 120)
	b.Direction = math.NewVec2(1, 0)
	b.IsMoving = true

	p.MakeMove(b, 1000)
	if !approx(p.Pos.Y, 120) {
		t.Errorf("pos.y = %v, want 120", p.Pos.Y)
	}
}

func TestPaddleStepIsBounded(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall()
	b.Pos = math.NewVec2(0, 240)
	b.Direction = math.NewVec2(1, 0)
	b.IsMoving = true

	p.MakeMove(b, 500)
	if !approx(p.Pos.Y, 100) {
		t.Errorf("pos.y = %v, want 100 after one bounded step", p.Pos.Y)
	}
}

func TestPaddleDriftsToCentreWhenBallLeaves(t *testing.T) {
	p := newTestPaddle()
	p.Pos.Y = 150
	b := newTestBall()
	b.Pos = math.NewVec2(0, 200)
	b.Direction = math.NewVec2(-1, 0)
	b.IsMoving = true

	p.MakeMove(b, 500)
	if !approx(p.Pos.Y, 50) {
		t.Errorf("pos.y = %v, want 50", p.Pos.Y)
	}
	p.MakeMove(b, 500)
	if !approx(p.Pos.Y, 0) {
		t.Errorf("pos.y = %v, want 0", p.Pos.Y)
	}
}

func TestPaddleIgnoresIdleBall(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall()
	b.Pos = math.NewVec2(0, 120)
	b.Direction = math.NewVec2(1, 0)

	p.MakeMove(b, 1000)
	if p.Pos.Y != 0 {
		t.Errorf("paddle followed an idle ball to %v", p.Pos.Y)
	}
}

func TestPaddleStaysOnScreen(t *testing.T) {
	p := newTestPaddle()
	p.Move(1, 100000)
	if p.Pos.Y != 250 {
		t.Errorf("pos.y = %v, want 250", p.Pos.Y)
	}
	p.MoveTowards(-1000, 100000)
	if p.Pos.Y != -250 {
		t.Errorf("pos.y = %v, want -250", p.Pos.Y)
	}
}
