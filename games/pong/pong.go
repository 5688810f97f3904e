package pong

import (
	"github.com/spaghettifunk/glpong/engine"
	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/geometry"
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/components"
)

// Pong draws a Match on a fixed field the size of the starting window,
// stretched to the viewport.
type Pong struct {
	*engine.Game

	match  *Match
	scene  *engine.Scene
	board  *scoreBoard
	ball   *components.RenderObject
	left   *components.RenderObject
	right  *components.RenderObject
	width  float32
	height float32
}

func New(config *engine.ApplicationConfig) *Pong {
	p := &Pong{
		Game: &engine.Game{
			ApplicationConfig: config,
		},
		width:  float32(config.StartWidth),
		height: float32(config.StartHeight),
	}

	p.FnInitialize = p.Initialize
	p.FnUpdate = p.Update
	p.FnShutdown = p.Shutdown

	return p
}

func (p *Pong) Initialize() error {
	config := p.ApplicationConfig.Pong
	sm := p.SystemManager

	p.match = NewMatch(config, p.width, p.height, p.Input, nil)
	p.scene = engine.NewScene(sm.RendererSystem, sm.ResourceManager)
	p.scene.SetOrthographic(p.width, p.height)
	p.Input.SetSceneSize(p.width, p.height)

	unlit := &components.RenderObjectOptions{Unlit: true}
	net, err := components.NewRenderObject(geometry.MakeDashedLine(p.height, 20, 15), unlit)
	if err != nil {
		return err
	}
	if p.ball, err = components.NewRenderObject(geometry.MakeCircle(config.BallRadius, 32), unlit); err != nil {
		return err
	}
	paddle := geometry.MakeRectangle(config.PaddleWidth, config.PaddleHeight)
	if p.left, err = components.NewRenderObject(paddle, unlit); err != nil {
		return err
	}
	if p.right, err = components.NewRenderObject(paddle, unlit); err != nil {
		return err
	}
	p.scene.AddObjects(net, p.left, p.right, p.ball)

	if config.Font != "" {
		board, err := newScoreBoard(sm.FontSystem, config.Font, p.match.Ball.ScreenEdge)
		if err != nil {
			core.LogWarn("score board disabled: %s", err)
		} else {
			p.board = board
			p.scene.AddObjects(board.Objects()...)
		}
	}

	p.scene.OnUpdate(p.step)
	p.sync()

	if p.match.HasHuman() {
		p.Events.Register(core.EVENT_CODE_BUTTON_PRESSED, p, p.onClick)
	}
	core.LogInfo("pong: %s", config.Mode)
	return nil
}

func (p *Pong) Update(timestamp float64) error {
	p.scene.Update(timestamp)
	return nil
}

func (p *Pong) Shutdown() error {
	p.Events.Unregister(core.EVENT_CODE_BUTTON_PRESSED, p)
	return nil
}

func (p *Pong) step(delta float64) {
	if scorer, scored := p.match.Step(delta); scored && p.board != nil {
		p.board.Set(scorer, p.match.Score[scorer])
	}
	p.sync()
}

// sync copies the match state into the render objects.
func (p *Pong) sync() {
	place := func(o *components.RenderObject, pos math.Vec2) {
		o.SetPosition(math.NewVec3(pos.X, pos.Y, 0))
	}
	place(p.ball, p.match.Ball.Pos)
	place(p.left, p.match.Paddles[SideLeft].Pos)
	place(p.right, p.match.Paddles[SideRight].Pos)
}

func (p *Pong) onClick(context core.EventContext) bool {
	p.match.RequestServe()
	return false
}
