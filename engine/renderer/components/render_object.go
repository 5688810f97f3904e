package components

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/geometry"
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
	"golang.org/x/exp/slices"
)

// ProjectionSource supplies the projection (including the view, if any) an object
// is drawn with. Usually the owning scene.
type ProjectionSource interface {
	Projection() math.Mat4
}

type TextureOptions struct {
	/** @brief The texture source identifier, resolved through the resource manager. */
	Source string
	/** @brief Texture coordinates, 2 per vertex. Defaults to the geometry's. */
	Coords []float32
}

/**
 * @brief Optional settings for a render object. Every nil or zero field falls
 * back to the geometry or to the defaults documented on each field.
 */
type RenderObjectOptions struct {
	/** @brief Overrides the geometry's index list. */
	Indices []uint32
	/** @brief Overrides the geometry's normals, 3 per vertex. Default: (0,0,1) per vertex. */
	Normals []float32
	/** @brief Per-vertex colour. Default: opaque white, 4 components. */
	Colour *metadata.Attribute
	/** @brief Makes the object textured. */
	Texture *TextureOptions
	/** @brief Default: the origin. */
	Position *math.Vec3
	/** @brief Default: one on every axis. */
	Scale *math.Vec3
	/** @brief Default: identity. */
	Rotation *math.Quaternion
	/** @brief Skips lighting in the shader. */
	Unlit bool
	/** @brief Overrides the geometry's draw mode. */
	DrawMode *metadata.DrawMode
	/** @brief Extra per-vertex attributes, bound by name. */
	Attributes map[string]metadata.Attribute
	/** @brief Extra per-object uniforms, written every frame before the draw. */
	Uniforms map[string]metadata.UniformValue
	/** @brief Where uProjection comes from. Without one it is left untouched. */
	Projection ProjectionSource
}

/**
 * @brief An entity the renderer draws: immutable vertex attributes, an optional
 * index list and texture, and a mutable transform.
 */
type RenderObject struct {
	ID        uuid.UUID
	Transform *math.Transform
	DrawMode  metadata.DrawMode
	IsLit     bool
	/** @brief Hidden objects keep their buffers but are skipped by the draw loop. */
	Hidden bool

	/** @brief GPU buffers, one per attribute name. Allocated once by the renderer. */
	Buffers map[string]*metadata.RenderBuffer
	/** @brief The index buffer, if the object has indices. */
	IndexBuffer *metadata.RenderBuffer

	attributes     map[string]metadata.Attribute
	attributeNames []string
	indices        []uint32
	textureSource  string
	uniformNames   []string
	uniforms       map[string]metadata.UniformValue
	projection     ProjectionSource
}

var builtinAttributes = []string{
	metadata.ATTRIBUTE_VERTICES,
	metadata.ATTRIBUTE_NORMALS,
	metadata.ATTRIBUTE_COLOUR,
	metadata.ATTRIBUTE_TEXTURE_COORD,
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("render object: %s: %w", fmt.Sprintf(format, args...), core.ErrMalformedGeometry)
}

/**
 * @brief Creates a render object from a geometry descriptor. Malformed geometry is
 * rejected with core.ErrMalformedGeometry.
 */
func NewRenderObject(g geometry.GeometryDescriptor, opts *RenderObjectOptions) (*RenderObject, error) {
	if opts == nil {
		opts = &RenderObjectOptions{}
	}

	vertices := metadata.Attribute{Dimensions: g.Dimensions, Data: g.Vertices}
	if g.Dimensions < 1 {
		return nil, malformed("dimensions must be positive, got %d", g.Dimensions)
	}
	if !vertices.IsWellFormed() {
		return nil, malformed("%d vertex floats is not a positive multiple of %d", len(g.Vertices), g.Dimensions)
	}
	count := vertices.Count()

	attributes := map[string]metadata.Attribute{
		metadata.ATTRIBUTE_VERTICES: vertices,
	}

	normals := g.Normals
	if opts.Normals != nil {
		normals = opts.Normals
	}
	if len(normals) == 0 {
		normals = make([]float32, 0, count*3)
		for i := 0; i < count; i++ {
			normals = append(normals, 0, 0, 1)
		}
	}
	if len(normals) != count*3 {
		return nil, malformed("%d normal floats for %d vertices", len(normals), count)
	}
	attributes[metadata.ATTRIBUTE_NORMALS] = metadata.Attribute{Dimensions: 3, Data: normals}

	colour := metadata.Attribute{Dimensions: 4, Data: geometry.SolidColour(count, math.NewVec4One())}
	if opts.Colour != nil {
		colour = *opts.Colour
	}
	if !colour.IsWellFormed() || colour.Count() != count {
		return nil, malformed("colour has %d floats of %d components for %d vertices", len(colour.Data), colour.Dimensions, count)
	}
	attributes[metadata.ATTRIBUTE_COLOUR] = colour

	textureSource := ""
	if opts.Texture != nil {
		if opts.Texture.Source == "" {
			return nil, malformed("texture without a source")
		}
		coords := opts.Texture.Coords
		if coords == nil {
			coords = g.TextureCoords
		}
		if len(coords) != count*2 {
			return nil, malformed("%d texture coordinate floats for %d vertices", len(coords), count)
		}
		textureSource = opts.Texture.Source
		attributes[metadata.ATTRIBUTE_TEXTURE_COORD] = metadata.Attribute{Dimensions: 2, Data: coords}
	}

	extraNames := sortedKeys(opts.Attributes)
	for _, name := range extraNames {
		if slices.Contains(builtinAttributes, name) {
			return nil, malformed("extra attribute %q shadows a built-in attribute", name)
		}
		a := opts.Attributes[name]
		if !a.IsWellFormed() || a.Count() != count {
			return nil, malformed("attribute %q has %d floats of %d components for %d vertices", name, len(a.Data), a.Dimensions, count)
		}
		attributes[name] = a
	}

	indices := g.Indices
	if opts.Indices != nil {
		indices = opts.Indices
	}
	for i, idx := range indices {
		if int(idx) >= count {
			return nil, malformed("index %d refers to vertex %d of %d", i, idx, count)
		}
	}

	names := make([]string, 0, len(attributes))
	for _, name := range builtinAttributes {
		if _, ok := attributes[name]; ok {
			names = append(names, name)
		}
	}
	names = append(names, extraNames...)

	position := math.NewVec3Zero()
	if opts.Position != nil {
		position = *opts.Position
	}
	scale := math.NewVec3One()
	if opts.Scale != nil {
		scale = *opts.Scale
	}
	rotation := math.NewQuatIdentity()
	if opts.Rotation != nil {
		rotation = opts.Rotation.Normalize()
	}
	drawMode := g.DrawMode
	if opts.DrawMode != nil {
		drawMode = *opts.DrawMode
	}

	o := &RenderObject{
		ID:             uuid.New(),
		Transform:      math.TransformFromPositionRotationScale(position, rotation, scale),
		DrawMode:       drawMode,
		IsLit:          !opts.Unlit,
		attributes:     attributes,
		attributeNames: names,
		indices:        indices,
		textureSource:  textureSource,
		uniforms:       make(map[string]metadata.UniformValue),
		projection:     opts.Projection,
	}

	uniformNames := sortedKeys(opts.Uniforms)
	for _, name := range uniformNames {
		o.SetUniform(name, opts.Uniforms[name])
	}
	return o, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// AttributeNames returns the attribute binding order: built-ins first, extras sorted.
func (o *RenderObject) AttributeNames() []string {
	return o.attributeNames
}

func (o *RenderObject) Attribute(name string) (metadata.Attribute, bool) {
	a, ok := o.attributes[name]
	return a, ok
}

func (o *RenderObject) Vertices() metadata.Attribute {
	return o.attributes[metadata.ATTRIBUTE_VERTICES]
}

// VertexCount is the number of vertices a non-indexed draw covers.
func (o *RenderObject) VertexCount() int {
	return o.Vertices().Count()
}

func (o *RenderObject) Indices() []uint32 {
	return o.indices
}

func (o *RenderObject) HasIndices() bool {
	return len(o.indices) > 0
}

// TextureSource returns the texture identifier, or "" when untextured.
func (o *RenderObject) TextureSource() string {
	return o.textureSource
}

func (o *RenderObject) IsTextured() bool {
	return o.textureSource != ""
}

func (o *RenderObject) Position() math.Vec3 {
	return o.Transform.Position
}

func (o *RenderObject) SetPosition(p math.Vec3) {
	o.Transform.SetPosition(p)
}

func (o *RenderObject) Rotation() math.Quaternion {
	return o.Transform.Rotation
}

func (o *RenderObject) SetRotation(q math.Quaternion) {
	o.Transform.SetRotation(q.Normalize())
}

func (o *RenderObject) Scale() math.Vec3 {
	return o.Transform.Scale
}

func (o *RenderObject) SetScale(s math.Vec3) {
	o.Transform.SetScale(s)
}

func (o *RenderObject) SetProjectionSource(p ProjectionSource) {
	o.projection = p
}

// SetUniform sets a per-object uniform written on every UpdateUniforms.
func (o *RenderObject) SetUniform(name string, value metadata.UniformValue) {
	if _, ok := o.uniforms[name]; !ok {
		o.uniformNames = append(o.uniformNames, name)
	}
	o.uniforms[name] = value
}

// UniformNames returns the per-object uniform names in the order they were set.
func (o *RenderObject) UniformNames() []string {
	return o.uniformNames
}

// ModelMatrix returns translate · rotate · scale.
func (o *RenderObject) ModelMatrix() math.Mat4 {
	return o.Transform.GetLocal()
}

/**
 * @brief Writes this object's uniforms into the shared set: the model matrix, the
 * normal matrix, the lit flag, the projection when a source is attached, and
 * every per-object uniform. Called right before the object's draw.
 */
func (o *RenderObject) UpdateUniforms(u *metadata.UniformSet) {
	model := o.ModelMatrix()
	u.Set(metadata.UNIFORM_MODEL, metadata.Mat4Uniform(model))
	u.Set(metadata.UNIFORM_NORMALS, metadata.Mat3Uniform(math.NewMat3Normal(model)))
	u.Set(metadata.UNIFORM_IS_LIT, metadata.BoolUniform(o.IsLit))
	if o.projection != nil {
		u.Set(metadata.UNIFORM_PROJECTION, metadata.Mat4Uniform(o.projection.Projection()))
	}
	for _, name := range o.uniformNames {
		u.Set(name, o.uniforms[name])
	}
}
