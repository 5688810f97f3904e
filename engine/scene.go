package engine

import (
	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/components"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
	"github.com/spaghettifunk/glpong/engine/systems"
)

// SceneRenderer is the part of the renderer a scene drives every frame.
type SceneRenderer interface {
	AddRenderObjects(objects ...*components.RenderObject)
	Poll()
	Draw(scene systems.SceneUniformProvider)
}

// ResourceUpdater finishes asynchronous resource loads on the calling goroutine.
type ResourceUpdater interface {
	Update()
}

// WorldUpdate advances the game world by delta milliseconds.
type WorldUpdate func(delta float64)

/**
 * @brief A scene owns the objects it registered with the renderer, the
 * projection, an optional look-at camera and a directional light. Update runs
 * one frame: world hook, shader poll, texture uploads, then the draw.
 */
type Scene struct {
	/** @brief Optional. When set, Projection includes its view matrix. */
	Camera         *components.Camera
	LightDirection math.Vec3
	LightColour    math.Vec3

	renderer     SceneRenderer
	resources    ResourceUpdater
	objects      []*components.RenderObject
	projection   math.Mat4
	uniformNames []string
	uniforms     map[string]metadata.UniformValue
	timer        core.FrameTimer
	onUpdate     WorldUpdate
}

func NewScene(renderer SceneRenderer, resources ResourceUpdater) *Scene {
	return &Scene{
		LightDirection: math.NewVec3(0, 0, 1),
		LightColour:    math.NewVec3One(),
		renderer:       renderer,
		resources:      resources,
		projection:     math.NewMat4Identity(),
		uniforms:       make(map[string]metadata.UniformValue),
	}
}

func (s *Scene) SetProjection(projection math.Mat4) {
	s.projection = projection
}

func (s *Scene) SetPerspective(fovRadians, aspectRatio, nearClip, farClip float32) {
	s.projection = math.NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip)
}

// SetOrthographic maps a width x height area centred on the origin to the viewport.
func (s *Scene) SetOrthographic(width, height float32) {
	hw, hh := width/2, height/2
	s.projection = math.NewMat4Orthographic(-hw, hw, -hh, hh, -1, 1)
}

// Projection returns projection · view.
func (s *Scene) Projection() math.Mat4 {
	if s.Camera == nil {
		return s.projection
	}
	return s.projection.Mul(s.Camera.GetView())
}

// AddObjects attaches the scene as the projection source of each object and
// registers them with the renderer, in order.
func (s *Scene) AddObjects(objects ...*components.RenderObject) {
	for _, o := range objects {
		o.SetProjectionSource(s)
	}
	s.objects = append(s.objects, objects...)
	s.renderer.AddRenderObjects(objects...)
}

func (s *Scene) Objects() []*components.RenderObject {
	return s.objects
}

// SetUniform sets an extra scene-level uniform written before every draw pass.
func (s *Scene) SetUniform(name string, value metadata.UniformValue) {
	if _, ok := s.uniforms[name]; !ok {
		s.uniformNames = append(s.uniformNames, name)
	}
	s.uniforms[name] = value
}

func (s *Scene) OnUpdate(fn WorldUpdate) {
	s.onUpdate = fn
}

// Update runs one frame and returns the delta it used. The first frame has a
// delta of zero.
func (s *Scene) Update(timestamp float64) float64 {
	delta := s.timer.Tick(timestamp)
	if s.onUpdate != nil {
		s.onUpdate(delta)
	}
	s.renderer.Poll()
	if s.resources != nil {
		s.resources.Update()
	}
	s.renderer.Draw(s)
	return delta
}

func (s *Scene) UpdateSceneUniforms(u *metadata.UniformSet) {
	u.Set(metadata.UNIFORM_LIGHT_DIRECTION, metadata.Vec3Uniform(s.LightDirection))
	u.Set(metadata.UNIFORM_LIGHT_COLOUR, metadata.Vec3Uniform(s.LightColour))
	for _, name := range s.uniformNames {
		u.Set(name, s.uniforms[name])
	}
}
