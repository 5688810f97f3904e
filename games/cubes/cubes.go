package cubes

import (
	"github.com/spaghettifunk/glpong/engine"
	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/geometry"
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/components"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

const (
	CUBE_TEXTURE = "textures/checker.png"

	UNIFORM_IS_SHINY  = "uIsShiny"
	UNIFORM_SHININESS = "uShininess"
)

/**
 * @brief A lit 3D scene: a colour cube and a textured cube turning about Y and
 * a handful of spheres bouncing on the ground. Arrow keys or WASD move the
 * camera, Q and E lift and lower it.
 */
type Cubes struct {
	*engine.Game

	scene       *engine.Scene
	colourCube  *components.RenderObject
	textureCube *components.RenderObject
	spheres     []*Sphere
	sphereObjs  []*components.RenderObject
	rng         *math.Random
}

func New(config *engine.ApplicationConfig) *Cubes {
	// the cubes overlap on screen, so they need the depth buffer
	config.Renderer.DepthTest = true

	c := &Cubes{
		Game: &engine.Game{
			ApplicationConfig: config,
		},
		rng: math.NewRandom(0),
	}

	c.FnInitialize = c.Initialize
	c.FnUpdate = c.Update
	c.FnOnResize = c.OnResize

	return c
}

func (c *Cubes) Initialize() error {
	sm := c.SystemManager
	c.scene = engine.NewScene(sm.RendererSystem, sm.ResourceManager)
	c.scene.Camera = components.NewCamera()
	c.scene.Camera.SetPosition(math.NewVec3(0, 30, -20))
	c.scene.Camera.LookAt(math.NewVec3(0, 0, 30))
	c.scene.LightDirection = LightDirection()

	objects, err := c.build()
	if err != nil {
		return err
	}
	c.scene.AddObjects(objects...)
	c.scene.OnUpdate(c.updateWorld)
	return nil
}

func (c *Cubes) build() ([]*components.RenderObject, error) {
	cube := geometry.MakeCube()
	scale := math.NewVec3One().Scale(10)
	colourPos := math.NewVec3(0, 10, 50)
	var err error
	c.colourCube, err = components.NewRenderObject(cube, &components.RenderObjectOptions{
		Colour: &metadata.Attribute{
			Dimensions: 4,
			Data: geometry.CubeFaceColours(
				math.NewVec4(1, 0, 0, 1),
				math.NewVec4(0, 1, 0, 1),
				math.NewVec4(0, 0, 1, 1),
				math.NewVec4(1, 1, 0, 1),
				math.NewVec4(0, 1, 1, 1),
				math.NewVec4(1, 0, 1, 1),
			),
		},
		Position: &colourPos,
		Scale:    &scale,
	})
	if err != nil {
		return nil, err
	}

	texturePos := math.NewVec3(10, 10, 20)
	c.textureCube, err = components.NewRenderObject(cube, &components.RenderObjectOptions{
		Texture:  &components.TextureOptions{Source: CUBE_TEXTURE},
		Position: &texturePos,
		Scale:    &scale,
	})
	if err != nil {
		return nil, err
	}

	objects := []*components.RenderObject{c.colourCube, c.textureCube}
	sphere := geometry.MakeSphere(20, 20)
	for i := 0; i < SPHERE_COUNT; i++ {
		s := RandomSphere(c.rng)
		size := math.NewVec3One().Scale(s.Size)
		o, err := components.NewRenderObject(sphere, &components.RenderObjectOptions{
			Colour: &metadata.Attribute{
				Dimensions: 4,
				Data:       geometry.SolidColour(sphere.VertexCount(), s.Colour),
			},
			Position: &s.Pos,
			Scale:    &size,
			Uniforms: map[string]metadata.UniformValue{
				UNIFORM_IS_SHINY:  metadata.BoolUniform(true),
				UNIFORM_SHININESS: metadata.FloatUniform(16),
			},
		})
		if err != nil {
			return nil, err
		}
		c.spheres = append(c.spheres, s)
		c.sphereObjs = append(c.sphereObjs, o)
		objects = append(objects, o)
	}
	return objects, nil
}

func (c *Cubes) Update(timestamp float64) error {
	c.scene.Update(timestamp)
	return nil
}

func (c *Cubes) OnResize(width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}
	c.scene.SetPerspective(math.DegToRad(45), float32(width)/float32(height), 0.1, 1000)
	return nil
}

func (c *Cubes) updateWorld(delta float64) {
	d := float32(delta)
	c.colourCube.SetRotation(c.colourCube.Rotation().RotateY(-COLOUR_CUBE_SPEED * d))
	c.textureCube.SetRotation(c.textureCube.Rotation().RotateY(TEXTURE_CUBE_SPEED * d))
	for i, s := range c.spheres {
		s.Update(delta)
		c.sphereObjs[i].SetPosition(s.Pos)
	}
	c.moveCamera(d * CAMERA_SPEED)
}

func (c *Cubes) moveCamera(amount float32) {
	camera, input := c.scene.Camera, c.Input
	if input.IsPressed(core.KEY_UP) || input.IsPressed(core.KEY_W) {
		camera.MoveForward(amount)
	}
	if input.IsPressed(core.KEY_DOWN) || input.IsPressed(core.KEY_S) {
		camera.MoveBackward(amount)
	}
	if input.IsPressed(core.KEY_LEFT) || input.IsPressed(core.KEY_A) {
		camera.MoveLeft(amount)
	}
	if input.IsPressed(core.KEY_RIGHT) || input.IsPressed(core.KEY_D) {
		camera.MoveRight(amount)
	}
	if input.IsPressed(core.KEY_Q) {
		camera.MoveUp(amount)
	}
	if input.IsPressed(core.KEY_E) {
		camera.MoveDown(amount)
	}
}
