package pong

import (
	"github.com/spaghettifunk/glpong/engine/math"
)

type Paddle struct {
	Pos  math.Vec2
	Size math.Vec2
	/** @brief The fastest the paddle moves, in units per millisecond. */
	MoveSpeed  float32
	ScreenEdge math.Vec2
}

func NewPaddle(x float32, size math.Vec2, moveSpeed float32, edge math.Vec2) *Paddle {
	return &Paddle{
		Pos:        math.NewVec2(x, 0),
		Size:       size,
		MoveSpeed:  moveSpeed,
		ScreenEdge: edge,
	}
}

func (p *Paddle) HalfExtent() math.Vec2 {
	return p.Size.Scale(0.5)
}

/**
 * @brief The computer player: follows the ball's height while the ball comes
 * towards this paddle, otherwise drifts back to the centre.
 */
func (p *Paddle) MakeMove(ball *Ball, delta float64) {
	var target float32
	if ball.IsApproaching(p) {
		target = ball.Pos.Y
	}
	p.MoveTowards(target, delta)
}

// MoveTowards moves the paddle to y, by at most MoveSpeed·delta.
func (p *Paddle) MoveTowards(y float32, delta float64) {
	step := p.MoveSpeed * float32(delta)
	p.setY(p.Pos.Y + math.Clamp(y-p.Pos.Y, -step, step))
}

// Move moves the paddle at full speed; direction is 1 for up, -1 for down.
func (p *Paddle) Move(direction float32, delta float64) {
	p.setY(p.Pos.Y + direction*p.MoveSpeed*float32(delta))
}

func (p *Paddle) setY(y float32) {
	limit := p.ScreenEdge.Y - p.Size.Y/2
	if limit < 0 {
		limit = 0
	}
	p.Pos.Y = math.Clamp(y, -limit, limit)
}
