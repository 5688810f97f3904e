package metadata

import (
	"github.com/spaghettifunk/glpong/engine/math"
	"golang.org/x/exp/slices"
)

// Uniform names the shader program is expected to declare.
const (
	UNIFORM_IS_LIT          string = "uIsLit"
	UNIFORM_LIGHT_DIRECTION string = "uLightDirection"
	UNIFORM_LIGHT_COLOUR    string = "uLightColor"
	UNIFORM_HAS_TEXTURE     string = "uHasTexture"
	UNIFORM_SAMPLER         string = "uSampler"
	UNIFORM_PROJECTION      string = "uProjection"
	UNIFORM_MODEL           string = "uModel"
	UNIFORM_NORMALS         string = "uNormals"
)

// DefaultUniformNames lists the uniforms every program is queried for.
var DefaultUniformNames = []string{
	UNIFORM_IS_LIT,
	UNIFORM_LIGHT_DIRECTION,
	UNIFORM_LIGHT_COLOUR,
	UNIFORM_HAS_TEXTURE,
	UNIFORM_SAMPLER,
	UNIFORM_PROJECTION,
	UNIFORM_MODEL,
	UNIFORM_NORMALS,
}

// DefaultAttributeNames lists the attributes every program is queried for.
var DefaultAttributeNames = []string{
	ATTRIBUTE_VERTICES,
	ATTRIBUTE_NORMALS,
	ATTRIBUTE_TEXTURE_COORD,
	ATTRIBUTE_COLOUR,
}

/** @brief The shape of a uniform value. Chosen when the value is produced. */
type UniformKind int

const (
	UNIFORM_KIND_FLOAT UniformKind = iota
	UNIFORM_KIND_INT
	UNIFORM_KIND_BOOL
	UNIFORM_KIND_VEC2
	UNIFORM_KIND_VEC3
	UNIFORM_KIND_VEC4
	UNIFORM_KIND_MAT3
	UNIFORM_KIND_MAT4
)

func (k UniformKind) String() string {
	switch k {
	case UNIFORM_KIND_FLOAT:
		return "float"
	case UNIFORM_KIND_INT:
		return "int"
	case UNIFORM_KIND_BOOL:
		return "bool"
	case UNIFORM_KIND_VEC2:
		return "vec2"
	case UNIFORM_KIND_VEC3:
		return "vec3"
	case UNIFORM_KIND_VEC4:
		return "vec4"
	case UNIFORM_KIND_MAT3:
		return "mat3"
	case UNIFORM_KIND_MAT4:
		return "mat4"
	}
	return "unknown"
}

/**
 * @brief A tagged uniform value. Only the field matching Kind is meaningful.
 * Use the constructors below rather than filling it by hand.
 */
type UniformValue struct {
	Kind  UniformKind
	Float float32
	Int   int32
	Bool  bool
	Vec2  math.Vec2
	Vec3  math.Vec3
	Vec4  math.Vec4
	Mat3  math.Mat3
	Mat4  math.Mat4
}

func FloatUniform(v float32) UniformValue {
	return UniformValue{Kind: UNIFORM_KIND_FLOAT, Float: v}
}

func IntUniform(v int32) UniformValue {
	return UniformValue{Kind: UNIFORM_KIND_INT, Int: v}
}

func BoolUniform(v bool) UniformValue {
	return UniformValue{Kind: UNIFORM_KIND_BOOL, Bool: v}
}

func Vec2Uniform(v math.Vec2) UniformValue {
	return UniformValue{Kind: UNIFORM_KIND_VEC2, Vec2: v}
}

func Vec3Uniform(v math.Vec3) UniformValue {
	return UniformValue{Kind: UNIFORM_KIND_VEC3, Vec3: v}
}

func Vec4Uniform(v math.Vec4) UniformValue {
	return UniformValue{Kind: UNIFORM_KIND_VEC4, Vec4: v}
}

func Mat3Uniform(v math.Mat3) UniformValue {
	return UniformValue{Kind: UNIFORM_KIND_MAT3, Mat3: v}
}

func Mat4Uniform(v math.Mat4) UniformValue {
	return UniformValue{Kind: UNIFORM_KIND_MAT4, Mat4: v}
}

// Zero returns the zero value of the same kind.
func (v UniformValue) Zero() UniformValue {
	return UniformValue{Kind: v.Kind}
}

/**
 * @brief The mutable set of uniform values shared by every draw of a frame.
 * Values persist until overwritten; iteration order is the order in which
 * names were first set.
 */
type UniformSet struct {
	names  []string
	values map[string]UniformValue
}

func NewUniformSet() *UniformSet {
	return &UniformSet{values: make(map[string]UniformValue)}
}

func (u *UniformSet) Set(name string, value UniformValue) {
	if _, ok := u.values[name]; !ok {
		u.names = append(u.names, name)
	}
	u.values[name] = value
}

func (u *UniformSet) Get(name string) (UniformValue, bool) {
	v, ok := u.values[name]
	return v, ok
}

// Delete removes name. Deleting a missing name is a no-op.
func (u *UniformSet) Delete(name string) {
	if _, ok := u.values[name]; !ok {
		return
	}
	delete(u.values, name)
	u.names = slices.DeleteFunc(u.names, func(n string) bool { return n == name })
}

func (u *UniformSet) Len() int {
	return len(u.names)
}

// Each visits every entry in insertion order.
func (u *UniformSet) Each(fn func(name string, value UniformValue)) {
	for _, name := range u.names {
		fn(name, u.values[name])
	}
}

// Names returns the names sorted, for location lookups that must be deterministic.
func (u *UniformSet) Names() []string {
	out := make([]string, len(u.names))
	copy(out, u.names)
	slices.Sort(out)
	return out
}
