package pong

import (
	"github.com/spaghettifunk/glpong/engine/math"
)

/**
 * @brief The ball. Idle until served, then Moving until it leaves the field
 * horizontally. Speeds are in units per millisecond.
 */
type Ball struct {
	Pos       math.Vec2
	Direction math.Vec2
	Speed     float32
	Radius    float32
	IsMoving  bool

	/** @brief The speed a serve starts with. */
	DefaultSpeed float32
	/** @brief Applied to Speed on every bounce off a paddle. */
	SpeedMultiplier float32
	/** @brief Upper bound for Speed. Zero leaves it unbounded. */
	MaxSpeed float32
	/** @brief Largest random deviation of a bounce, in radians. */
	Spread float32
	/** @brief Half the field size. The field is centred on the origin. */
	ScreenEdge math.Vec2

	rng *math.Random
}

func NewBall(radius, speed float32, edge math.Vec2, rng *math.Random) *Ball {
	if rng == nil {
		rng = math.NewRandom(0)
	}
	return &Ball{
		Radius:          radius,
		Speed:           speed,
		DefaultSpeed:    speed,
		SpeedMultiplier: 1,
		ScreenEdge:      edge,
		rng:             rng,
	}
}

// UpdatePosition moves the ball by delta milliseconds and keeps it inside the top
// and bottom edges. Does nothing while idle.
func (b *Ball) UpdatePosition(delta float64) {
	if !b.IsMoving {
		return
	}
	b.Pos = b.Pos.ScaleAndAdd(b.Direction, b.Speed*float32(delta))

	limit := b.ScreenEdge.Y - b.Radius
	if b.Pos.Y > limit {
		b.Pos.Y = limit
		b.Direction.Y = -math.Abs(b.Direction.Y)
	} else if b.Pos.Y < -limit {
		b.Pos.Y = -limit
		b.Direction.Y = math.Abs(b.Direction.Y)
	}
}

/**
 * @brief Box test between the ball and a paddle, inclusive on the boundary.
 * It treats the ball as a square, so corners are slightly more lenient than
 * an exact circle test.
 */
func (b *Ball) IsCollisionPossible(p *Paddle) bool {
	half := p.HalfExtent()
	d := b.Pos.Sub(p.Pos)
	return math.Abs(d.X) <= b.Radius+half.X && math.Abs(d.Y) <= b.Radius+half.Y
}

// IsApproaching reports whether the ball moves horizontally towards the paddle.
func (b *Ball) IsApproaching(p *Paddle) bool {
	return b.IsMoving && (p.Pos.X-b.Pos.X)*b.Direction.X > 0
}

/**
 * @brief Sends the ball away from the paddle centre, jittered by up to Spread,
 * and speeds it up.
 */
func (b *Ball) Bounce(p *Paddle) {
	away := b.Pos.Sub(p.Pos)
	if away.LengthSquared() < math.K_FLOAT_EPSILON {
		// Dead centre: reflect horizontally.
		away = math.NewVec2(-b.Direction.X, 0)
		if away.X == 0 {
			away.X = -p.Pos.X
		}
		if away.X == 0 {
			away.X = 1
		}
	}
	direction := away.Normalize()
	if b.Spread > 0 {
		direction = direction.Rotate(b.rng.Between(-b.Spread, b.Spread))
	}
	b.Direction = direction

	b.Speed *= b.SpeedMultiplier
	if b.MaxSpeed > 0 && b.Speed > b.MaxSpeed {
		b.Speed = b.MaxSpeed
	}
}

// HitPaddle bounces the ball off p if it is approaching and touching it.
func (b *Ball) HitPaddle(p *Paddle) bool {
	if !b.IsApproaching(p) || !b.IsCollisionPossible(p) {
		return false
	}
	b.Bounce(p)
	return true
}

// IsOut reports the ball reaching the left or right edge.
func (b *Ball) IsOut() bool {
	return math.Abs(b.Pos.X) >= b.ScreenEdge.X
}

// Reset puts the ball back in the centre, idle, at the default speed.
func (b *Ball) Reset() {
	b.Pos = math.NewVec2Zero()
	b.Direction = math.NewVec2Zero()
	b.Speed = b.DefaultSpeed
	b.IsMoving = false
}

// Serve starts the ball towards the given side (-1 left, 1 right) at a random
// angle of up to 30 degrees.
func (b *Ball) Serve(side float32) {
	angle := b.rng.Between(-math.K_PI/6, math.K_PI/6)
	b.Direction = math.NewVec2(side, 0).Rotate(angle * side)
	b.IsMoving = true
}
