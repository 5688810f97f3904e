package components

import (
	"github.com/spaghettifunk/glpong/engine/math"
)

/**
 * @brief A look-at camera. Moving the camera moves its target along with it,
 * so the viewing direction only changes through LookAt.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec3
	/** @brief The point the camera looks at. */
	Target math.Vec3
	/** @brief The up direction used to orient the view. */
	Up math.Vec3
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset puts the camera at the origin looking down -Z.
func (c *Camera) Reset() {
	c.Position = math.NewVec3Zero()
	c.Target = math.NewVec3Back()
	c.Up = math.NewVec3Up()
	c.IsDirty = true
	c.ViewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Target = c.Target.Add(position.Sub(c.Position))
	c.Position = position
	c.IsDirty = true
}

// LookAt turns the camera towards target. A target equal to the position is ignored.
func (c *Camera) LookAt(target math.Vec3) {
	if target.Compare(c.Position, math.K_FLOAT_EPSILON) {
		return
	}
	c.Target = target
	c.IsDirty = true
}

func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		c.ViewMatrix = math.NewMat4LookAt(c.Position, c.Target, c.Up)
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

func (c *Camera) Backward() math.Vec3 {
	return c.Forward().Negate()
}

func (c *Camera) Right() math.Vec3 {
	return c.Forward().Cross(c.Up).Normalize()
}

func (c *Camera) Left() math.Vec3 {
	return c.Right().Negate()
}

func (c *Camera) move(direction math.Vec3, amount float32) {
	offset := direction.Scale(amount)
	c.Position = c.Position.Add(offset)
	c.Target = c.Target.Add(offset)
	c.IsDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(c.Up, amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(c.Up.Negate(), amount)
}
