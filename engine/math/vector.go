package math

import "github.com/go-gl/mathgl/mgl32"

// Every operation returns a fresh value; receivers are never modified.

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

func vec2From(v mgl32.Vec2) Vec2 {
	return Vec2{v[0], v[1]}
}

func (v Vec2) mgl() mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

// Array returns the components in uniform upload order.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return vec2From(v.mgl().Add(other.mgl()))
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return vec2From(v.mgl().Sub(other.mgl()))
}

// Mul multiplies component-wise.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) Scale(scalar float32) Vec2 {
	return vec2From(v.mgl().Mul(scalar))
}

// ScaleAndAdd returns v + other*scalar.
func (v Vec2) ScaleAndAdd(other Vec2, scalar float32) Vec2 {
	return vec2From(v.mgl().Add(other.mgl().Mul(scalar)))
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Inverse returns the component-wise reciprocal.
func (v Vec2) Inverse() Vec2 {
	return Vec2{1 / v.X, 1 / v.Y}
}

func (v Vec2) LengthSquared() float32 {
	return v.mgl().LenSqr()
}

func (v Vec2) Length() float32 {
	return v.mgl().Len()
}

/**
 * @brief Returns a normalized copy of the supplied vector. The result for a
 * zero-length vector is undefined; callers must guard.
 */
func (v Vec2) Normalize() Vec2 {
	return vec2From(v.mgl().Normalize())
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.mgl().Dot(other.mgl())
}

// Rotate rotates counter-clockwise about the origin by the angle in radians.
func (v Vec2) Rotate(radians float32) Vec2 {
	return vec2From(mgl32.Rotate2D(radians).Mul2x1(v.mgl()))
}

/**
 * @brief Compares all elements of vector_0 and vector_1 and ensures the difference
 * is less than tolerance.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance && kabs(v.Y-other.Y) <= tolerance
}

func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

// NewVec3Forward points towards the viewer, (0, 0, 1).
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

func vec3From(v mgl32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec3) mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return vec3From(v.mgl().Add(other.mgl()))
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return vec3From(v.mgl().Sub(other.mgl()))
}

// Mul multiplies component-wise.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3) Scale(scalar float32) Vec3 {
	return vec3From(v.mgl().Mul(scalar))
}

// ScaleAndAdd returns v + other*scalar.
func (v Vec3) ScaleAndAdd(other Vec3, scalar float32) Vec3 {
	return vec3From(v.mgl().Add(other.mgl().Mul(scalar)))
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Inverse returns the component-wise reciprocal.
func (v Vec3) Inverse() Vec3 {
	return Vec3{1 / v.X, 1 / v.Y, 1 / v.Z}
}

func (v Vec3) LengthSquared() float32 {
	return v.mgl().LenSqr()
}

func (v Vec3) Length() float32 {
	return v.mgl().Len()
}

/**
 * @brief Returns a normalized copy of the supplied vector. The result for a
 * zero-length vector is undefined; callers must guard.
 */
func (v Vec3) Normalize() Vec3 {
	return vec3From(v.mgl().Normalize())
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.mgl().Dot(other.mgl())
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return vec3From(v.mgl().Cross(other.mgl()))
}

// RotateX rotates about the X axis through the origin, right handed.
func (v Vec3) RotateX(radians float32) Vec3 {
	return vec3From(mgl32.Rotate3DX(radians).Mul3x1(v.mgl()))
}

// RotateY rotates about the Y axis through the origin, right handed.
func (v Vec3) RotateY(radians float32) Vec3 {
	return vec3From(mgl32.Rotate3DY(radians).Mul3x1(v.mgl()))
}

// RotateZ rotates about the Z axis through the origin, right handed.
func (v Vec3) RotateZ(radians float32) Vec3 {
	return vec3From(mgl32.Rotate3DZ(radians).Mul3x1(v.mgl()))
}

func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance &&
		kabs(v.Y-other.Y) <= tolerance &&
		kabs(v.Z-other.Z) <= tolerance
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	r := m.mgl().Mul4x1(v.mgl().Vec4(1))
	return Vec3{r[0], r[1], r[2]}
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

func NewVec4Zero() Vec4 {
	return Vec4{}
}

func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

func vec4From(v mgl32.Vec4) Vec4 {
	return Vec4{v[0], v[1], v[2], v[3]}
}

func (v Vec4) mgl() mgl32.Vec4 {
	return mgl32.Vec4{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return vec4From(v.mgl().Add(other.mgl()))
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return vec4From(v.mgl().Sub(other.mgl()))
}

func (v Vec4) Scale(scalar float32) Vec4 {
	return vec4From(v.mgl().Mul(scalar))
}

func (v Vec4) Length() float32 {
	return v.mgl().Len()
}

func (v Vec4) Normalize() Vec4 {
	return vec4From(v.mgl().Normalize())
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.mgl().Dot(other.mgl())
}

func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance &&
		kabs(v.Y-other.Y) <= tolerance &&
		kabs(v.Z-other.Z) <= tolerance &&
		kabs(v.W-other.W) <= tolerance
}
