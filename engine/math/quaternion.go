package math

import "github.com/go-gl/mathgl/mgl32"

func quatFrom(q mgl32.Quat) Quaternion {
	return Quaternion{q.V[0], q.V[1], q.V[2], q.W}
}

func (q Quaternion) mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

/**
 * @brief Creates an identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Creates a quaternion from the given axis and angle. The axis does not
 * need to be normalized.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	return quatFrom(mgl32.QuatRotate(angle, axis.mgl().Normalize()))
}

/**
 * @brief Returns the length of the provided quaternion. Unit quaternions
 * have a length of 1.
 */
func (q Quaternion) Length() float32 {
	return q.mgl().Len()
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	return quatFrom(q.mgl().Normalize())
}

func (q Quaternion) Conjugate() Quaternion {
	return quatFrom(q.mgl().Conjugate())
}

func (q Quaternion) Inverse() Quaternion {
	return quatFrom(q.mgl().Inverse())
}

// Mul returns the Hamilton product q · other.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return quatFrom(q.mgl().Mul(other.mgl()))
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return q.mgl().Dot(other.mgl())
}

/**
 * @brief Rotates in the local frame: the increment is multiplied on the right,
 * so q.RotateX(a).RotateY(b) turns about X first and then about the already
 * rotated Y axis. The result is renormalized so repeated composition does not drift.
 */
func (q Quaternion) RotateX(radians float32) Quaternion {
	return q.rotate(radians, mgl32.Vec3{1, 0, 0})
}

func (q Quaternion) RotateY(radians float32) Quaternion {
	return q.rotate(radians, mgl32.Vec3{0, 1, 0})
}

func (q Quaternion) RotateZ(radians float32) Quaternion {
	return q.rotate(radians, mgl32.Vec3{0, 0, 1})
}

func (q Quaternion) rotate(radians float32, axis mgl32.Vec3) Quaternion {
	return quatFrom(q.mgl().Mul(mgl32.QuatRotate(radians, axis)).Normalize())
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	return vec3From(q.mgl().Rotate(v.mgl()))
}

/**
 * @brief Creates a rotation matrix from the given quaternion.
 */
func (q Quaternion) ToMat4() Mat4 {
	return mat4From(q.Normalize().mgl().Mat4())
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	return quatFrom(mgl32.QuatSlerp(q.Normalize().mgl(), other.Normalize().mgl(), percentage))
}

func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}
