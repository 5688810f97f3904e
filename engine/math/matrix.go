package math

import "github.com/go-gl/mathgl/mgl32"

// ------------------------------------------
// Matrix 3
// ------------------------------------------

func mat3From(m mgl32.Mat3) Mat3 {
	return Mat3{Data: [9]float32(m)}
}

func (mt Mat3) mgl() mgl32.Mat3 {
	return mgl32.Mat3(mt.Data)
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0},
 *   {0, 1, 0},
 *   {0, 0, 1}
 * }
 */
func NewMat3Identity() Mat3 {
	return mat3From(mgl32.Ident3())
}

// NewMat3Scaling creates a 2D homogeneous scaling matrix.
func NewMat3Scaling(scale Vec2) Mat3 {
	return mat3From(mgl32.Scale2D(scale.X, scale.Y))
}

// NewMat3Translation creates a 2D homogeneous translation matrix.
func NewMat3Translation(position Vec2) Mat3 {
	return mat3From(mgl32.Translate2D(position.X, position.Y))
}

/**
 * @brief Builds the normal matrix of a model matrix: the inverse-transpose of its
 * upper 3x3. A singular model matrix yields the zero matrix.
 */
func NewMat3Normal(model Mat4) Mat3 {
	return mat3From(model.mgl().Mat3().Inv().Transpose())
}

func (mt Mat3) Mul(other Mat3) Mat3 {
	return mat3From(mt.mgl().Mul3(other.mgl()))
}

func (mt Mat3) MulVec3(v Vec3) Vec3 {
	return vec3From(mt.mgl().Mul3x1(v.mgl()))
}

func (mt Mat3) Transpose() Mat3 {
	return mat3From(mt.mgl().Transpose())
}

func (mt Mat3) Inverse() Mat3 {
	return mat3From(mt.mgl().Inv())
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

func mat4From(m mgl32.Mat4) Mat4 {
	return Mat4{Data: [16]float32(m)}
}

func (mt Mat4) mgl() mgl32.Mat4 {
	return mgl32.Mat4(mt.Data)
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func NewMat4Identity() Mat4 {
	return mat4From(mgl32.Ident4())
}

func NewMat4Scaling(scale Vec3) Mat4 {
	return mat4From(mgl32.Scale3D(scale.X, scale.Y, scale.Z))
}

func NewMat4Translation(position Vec3) Mat4 {
	return mat4From(mgl32.Translate3D(position.X, position.Y, position.Z))
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	return mat4From(mgl32.LookAtV(position.mgl(), target.mgl(), up.mgl()))
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 */
func NewMat4Orthographic(left, right, bottom, top, nearClip, farClip float32) Mat4 {
	return mat4From(mgl32.Ortho(left, right, bottom, top, nearClip, farClip))
}

func NewMat4Frustum(left, right, bottom, top, nearClip, farClip float32) Mat4 {
	return mat4From(mgl32.Frustum(left, right, bottom, top, nearClip, farClip))
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fovRadians The vertical field of view in radians.
 * @param aspectRatio The aspect ratio.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 */
func NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip float32) Mat4 {
	return mat4From(mgl32.Perspective(fovRadians, aspectRatio, nearClip, farClip))
}

/**
 * @brief Composes translate · rotate · scale: a vertex is scaled, then rotated,
 * then translated.
 */
func NewMat4FromRotationTranslationScale(rotation Quaternion, translation, scale Vec3) Mat4 {
	t := mgl32.Translate3D(translation.X, translation.Y, translation.Z)
	r := rotation.Normalize().mgl().Mat4()
	s := mgl32.Scale3D(scale.X, scale.Y, scale.Z)
	return mat4From(t.Mul4(r).Mul4(s))
}

// Mul returns mt · other.
func (mt Mat4) Mul(other Mat4) Mat4 {
	return mat4From(mt.mgl().Mul4(other.mgl()))
}

func (mt Mat4) MulVec4(v Vec4) Vec4 {
	return vec4From(mt.mgl().Mul4x1(v.mgl()))
}

func (mt Mat4) Transpose() Mat4 {
	return mat4From(mt.mgl().Transpose())
}

/**
 * @brief Creates and returns an inverse of the provided matrix. A singular matrix
 * yields the zero matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	return mat4From(mt.mgl().Inv())
}

// Mat3 returns the upper-left 3x3.
func (mt Mat4) Mat3() Mat3 {
	return mat3From(mt.mgl().Mat3())
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

func (mt Mat3) Compare(other Mat3, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
