package pong

import (
	"github.com/spaghettifunk/glpong/engine"
	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/math"
)

type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// sign is the direction of the side along x.
func (s Side) sign() float32 {
	if s == SideLeft {
		return -1
	}
	return 1
}

func (s Side) opponent() Side {
	return 1 - s
}

type Controller int

const (
	ControllerAI Controller = iota
	// W/S, Up/Down or the pointer.
	ControllerHuman
	// W/S only, for the left player of a two human game.
	ControllerHumanWS
	// Up/Down only, for the right player of a two human game.
	ControllerHumanArrows
)

// Controllers returns the left and right controllers of a mode.
func Controllers(mode string) [2]Controller {
	switch mode {
	case engine.PONG_MODE_HUMAN_VS_AI:
		return [2]Controller{ControllerHuman, ControllerAI}
	case engine.PONG_MODE_HUMAN_VS_HUMAN:
		return [2]Controller{ControllerHumanWS, ControllerHumanArrows}
	default:
		return [2]Controller{ControllerAI, ControllerAI}
	}
}

// Distance between a paddle and its side of the field.
const PADDLE_MARGIN float32 = 40

/**
 * @brief The rules of a game of Pong, independent of drawing: one ball, two
 * paddles, the score and the serve. Step advances it by one frame.
 */
type Match struct {
	Ball        *Ball
	Paddles     [2]*Paddle
	Controllers [2]Controller
	Score       [2]int

	input        *core.InputState
	serveDelay   float64
	serveIn      float64
	serveWaiting bool
	serveRequest bool
	receiver     Side
	lastPointer  math.Vec2
	pointing     bool
}

/**
 * @brief Builds a match on a field of the given size, centred on the origin.
 * Config speeds are per second; the match works per millisecond.
 */
func NewMatch(config engine.PongConfig, width, height float32, input *core.InputState, rng *math.Random) *Match {
	if rng == nil {
		rng = math.NewRandom(0)
	}
	edge := math.NewVec2(width/2, height/2)
	paddleSize := math.NewVec2(config.PaddleWidth, config.PaddleHeight)
	paddleSpeed := config.PaddleSpeed / core.SECOND

	ball := NewBall(config.BallRadius, config.BallSpeed/core.SECOND, edge, rng)
	ball.SpeedMultiplier = config.SpeedMultiplier
	ball.MaxSpeed = config.MaxSpeed / core.SECOND
	ball.Spread = math.DegToRad(config.SpreadDegrees)

	m := &Match{
		Ball:        ball,
		Controllers: Controllers(config.Mode),
		input:       input,
		serveDelay:  config.ServeDelayMS,
	}
	if rng.Sign() > 0 {
		m.receiver = SideRight
	}
	m.Paddles[SideLeft] = NewPaddle(-edge.X+PADDLE_MARGIN, paddleSize, paddleSpeed, edge)
	m.Paddles[SideRight] = NewPaddle(edge.X-PADDLE_MARGIN, paddleSize, paddleSpeed, edge)
	m.scheduleServe()
	return m
}

func (m *Match) HasHuman() bool {
	return m.Controllers[SideLeft] != ControllerAI || m.Controllers[SideRight] != ControllerAI
}

// RequestServe serves on the next Step if the ball is idle. Bound to clicks and Space.
func (m *Match) RequestServe() {
	m.serveRequest = true
}

func (m *Match) scheduleServe() {
	m.serveWaiting = true
	m.serveIn = m.serveDelay
	m.serveRequest = false
}

/**
 * @brief Advances the match by delta milliseconds. Returns the side that scored
 * and true when the ball went out during this step.
 */
func (m *Match) Step(delta float64) (Side, bool) {
	m.updateServe(delta)

	for side, paddle := range m.Paddles {
		m.movePaddle(Side(side), paddle, delta)
	}
	if m.input != nil {
		m.lastPointer = m.input.Pos()
	}

	m.Ball.UpdatePosition(delta)
	for _, paddle := range m.Paddles {
		if m.Ball.HitPaddle(paddle) {
			break
		}
	}

	if !m.Ball.IsOut() {
		return 0, false
	}
	scorer := SideRight
	if m.Ball.Pos.X > 0 {
		scorer = SideLeft
	}
	m.Score[scorer]++
	// the side that conceded receives the next serve
	m.receiver = scorer.opponent()
	m.Ball.Reset()
	m.scheduleServe()
	core.LogDebug("%s scores: %d - %d", scorer, m.Score[SideLeft], m.Score[SideRight])
	return scorer, true
}

func (m *Match) updateServe(delta float64) {
	if !m.serveWaiting || m.Ball.IsMoving {
		return
	}
	if m.HasHuman() {
		if !m.serveRequest && !(m.input != nil && m.input.JustPressed(core.KEY_SPACE)) {
			return
		}
	} else {
		m.serveIn -= delta
		if m.serveIn > 0 {
			return
		}
	}
	m.serveWaiting = false
	m.serveRequest = false
	m.Ball.Serve(m.receiver.sign())
}

func (m *Match) movePaddle(side Side, p *Paddle, delta float64) {
	switch m.Controllers[side] {
	case ControllerAI:
		p.MakeMove(m.Ball, delta)
	case ControllerHumanWS:
		p.Move(m.keyAxis(core.KEY_W, core.KEY_S), delta)
	case ControllerHumanArrows:
		p.Move(m.keyAxis(core.KEY_UP, core.KEY_DOWN), delta)
	case ControllerHuman:
		axis := m.keyAxis(core.KEY_W, core.KEY_S) + m.keyAxis(core.KEY_UP, core.KEY_DOWN)
		if axis != 0 {
			m.pointing = false
			p.Move(math.Clamp(axis, -1, 1), delta)
			return
		}
		if m.input == nil {
			return
		}
		// the pointer takes over once it moves and keeps control until a key is used
		if m.input.Pos() != m.lastPointer {
			m.pointing = true
		}
		if m.pointing {
			p.MoveTowards(m.input.Pos().Y, delta)
		}
	}
}

func (m *Match) keyAxis(up, down core.KeyCode) float32 {
	if m.input == nil {
		return 0
	}
	var axis float32
	if m.input.IsPressed(up) {
		axis++
	}
	if m.input.IsPressed(down) {
		axis--
	}
	return axis
}
