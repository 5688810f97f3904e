package systems

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer"
	"github.com/spaghettifunk/glpong/engine/renderer/components"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

// ShaderSourceProvider delivers linked-program sources to the render thread.
type ShaderSourceProvider interface {
	Poll() (*metadata.ShaderSource, bool)
}

// TextureProvider resolves texture sources to GPU textures.
type TextureProvider interface {
	GetTexture(source string) metadata.TextureHandle
}

// SceneUniformProvider writes scene-level uniforms (light, projection extras)
// before any object of the frame is drawn.
type SceneUniformProvider interface {
	UpdateSceneUniforms(u *metadata.UniformSet)
}

/**
 * @brief The renderer. Owns the program, the location cache and the render
 * object list, and runs the per-frame draw protocol. Not safe for concurrent
 * use: every method runs on the thread that owns the GPU context.
 */
type RendererSystem struct {
	backend  renderer.RendererBackend
	shaders  ShaderSourceProvider
	textures TextureProvider
	config   *metadata.RendererBackendConfig

	stage      metadata.RendererStage
	program    metadata.ProgramHandle
	generation uint32
	locations  *metadata.ShaderLocations

	objects    []*components.RenderObject
	registered map[uuid.UUID]struct{}

	uniforms *metadata.UniformSet
	// attribute locations enabled by the previous object
	enabled map[metadata.Location]struct{}
	bound   map[metadata.Location]struct{}
	// per-object uniform names written by the previous object
	extras []string
}

func NewRendererSystem(backend renderer.RendererBackend, shaders ShaderSourceProvider, textures TextureProvider, config *metadata.RendererBackendConfig) (*RendererSystem, error) {
	if backend == nil || shaders == nil || textures == nil {
		return nil, fmt.Errorf("renderer needs a backend, a shader source and a texture provider")
	}
	if config == nil {
		config = &metadata.RendererBackendConfig{ClearColour: math.NewVec4(0, 0, 0, 1)}
	}
	return &RendererSystem{
		backend:    backend,
		shaders:    shaders,
		textures:   textures,
		config:     config,
		stage:      metadata.RENDERER_STAGE_NOT_READY,
		registered: make(map[uuid.UUID]struct{}),
		uniforms:   metadata.NewUniformSet(),
		enabled:    make(map[metadata.Location]struct{}),
		bound:      make(map[metadata.Location]struct{}),
	}, nil
}

func (r *RendererSystem) Initialize() error {
	if err := r.backend.Initialize(r.config); err != nil {
		return err
	}
	core.LogInfo("renderer initialized for %s", r.config.ApplicationName)
	return nil
}

func (r *RendererSystem) Shutdown() error {
	if r.program != 0 {
		r.backend.DestroyProgram(r.program)
		r.program = 0
	}
	r.stage = metadata.RENDERER_STAGE_NOT_READY
	return r.backend.Shutdown()
}

func (r *RendererSystem) Stage() metadata.RendererStage {
	return r.stage
}

// Generation is the generation of the sources the current program was linked from.
func (r *RendererSystem) Generation() uint32 {
	return r.generation
}

func (r *RendererSystem) Objects() []*components.RenderObject {
	return r.objects
}

func (r *RendererSystem) OnResize(width, height uint32) {
	r.backend.Resized(width, height)
}

/**
 * @brief Registers render objects in draw order and allocates their buffers: one
 * vertex buffer per attribute and one index buffer when the object has indices.
 * Objects already registered are skipped.
 */
func (r *RendererSystem) AddRenderObjects(objects ...*components.RenderObject) {
	for _, o := range objects {
		if o == nil {
			continue
		}
		if _, ok := r.registered[o.ID]; ok {
			continue
		}
		r.registered[o.ID] = struct{}{}

		o.Buffers = make(map[string]*metadata.RenderBuffer, len(o.AttributeNames()))
		for _, name := range o.AttributeNames() {
			attr, _ := o.Attribute(name)
			o.Buffers[name] = &metadata.RenderBuffer{
				RenderBufferType: metadata.RENDERBUFFER_TYPE_VERTEX,
				Handle:           r.backend.CreateVertexBuffer(attr.Data),
				Dimensions:       attr.Dimensions,
				ElementCount:     len(attr.Data),
			}
		}
		if o.HasIndices() {
			o.IndexBuffer = &metadata.RenderBuffer{
				RenderBufferType: metadata.RENDERBUFFER_TYPE_INDEX,
				Handle:           r.backend.CreateIndexBuffer(o.Indices()),
				ElementCount:     len(o.Indices()),
			}
		}
		r.objects = append(r.objects, o)

		if r.stage == metadata.RENDERER_STAGE_READY {
			r.resolveObject(o)
		}
	}
}

/**
 * @brief Picks up shader sources delivered since the last call and links them.
 * Called once per frame before Draw. A failed link keeps the current stage and
 * program.
 */
func (r *RendererSystem) Poll() {
	src, ok := r.shaders.Poll()
	if !ok || src == nil {
		return
	}
	r.link(src)
}

func (r *RendererSystem) link(src *metadata.ShaderSource) {
	program, err := r.backend.CreateProgram(src)
	if err != nil {
		core.LogError("shader generation %d: %s", src.Generation, err)
		return
	}
	if r.program != 0 {
		r.backend.DestroyProgram(r.program)
	}
	r.program = program
	r.generation = src.Generation
	r.backend.UseProgram(program)

	r.locations = &metadata.ShaderLocations{
		Attributes: make(map[string]metadata.Location),
		Uniforms:   make(map[string]metadata.Location),
	}
	for _, name := range metadata.DefaultAttributeNames {
		r.attributeLocation(name)
	}
	for _, name := range metadata.DefaultUniformNames {
		r.uniformLocation(name)
	}
	for _, o := range r.objects {
		r.resolveObject(o)
	}
	for _, name := range r.uniforms.Names() {
		r.uniformLocation(name)
	}
	r.enabled = make(map[metadata.Location]struct{})

	r.stage = metadata.RENDERER_STAGE_READY
	core.LogInfo("shader program linked (generation %d), renderer %s", src.Generation, r.stage)
}

func (r *RendererSystem) resolveObject(o *components.RenderObject) {
	for _, name := range o.AttributeNames() {
		r.attributeLocation(name)
	}
	for _, name := range o.UniformNames() {
		r.uniformLocation(name)
	}
}

// attributeLocation returns the cached location of name, resolving it once.
func (r *RendererSystem) attributeLocation(name string) metadata.Location {
	if l, ok := r.locations.Attributes[name]; ok {
		return l
	}
	l := r.backend.AttributeLocation(r.program, name)
	r.locations.Attributes[name] = l
	return l
}

func (r *RendererSystem) uniformLocation(name string) metadata.Location {
	if l, ok := r.locations.Uniforms[name]; ok {
		return l
	}
	l := r.backend.UniformLocation(r.program, name)
	r.locations.Uniforms[name] = l
	return l
}

// Location lookups for diagnostics. Both report INVALID_LOCATION before the first link.
func (r *RendererSystem) AttributeLocation(name string) metadata.Location {
	if r.locations == nil {
		return metadata.INVALID_LOCATION
	}
	return r.locations.Attribute(name)
}

func (r *RendererSystem) UniformLocation(name string) metadata.Location {
	if r.locations == nil {
		return metadata.INVALID_LOCATION
	}
	return r.locations.Uniform(name)
}

/**
 * @brief Draws one frame. Does nothing until the program is linked. Never fails:
 * unknown locations are skipped.
 */
func (r *RendererSystem) Draw(scene SceneUniformProvider) {
	if r.stage != metadata.RENDERER_STAGE_READY {
		return
	}

	flags := metadata.RENDERPASS_CLEAR_COLOUR_BUFFER_FLAG
	if r.config.DepthTest {
		flags |= metadata.RENDERPASS_CLEAR_DEPTH_BUFFER_FLAG
	}
	r.backend.Clear(flags)

	if scene != nil {
		scene.UpdateSceneUniforms(r.uniforms)
	}

	for _, o := range r.objects {
		if o.Hidden {
			continue
		}
		r.drawObject(o)
	}
}

func (r *RendererSystem) drawObject(o *components.RenderObject) {
	r.bindAttributes(o)

	if o.IsTextured() {
		r.backend.BindTexture(0, r.textures.GetTexture(o.TextureSource()))
		r.uniforms.Set(metadata.UNIFORM_HAS_TEXTURE, metadata.BoolUniform(true))
		r.uniforms.Set(metadata.UNIFORM_SAMPLER, metadata.IntUniform(0))
	} else {
		r.uniforms.Set(metadata.UNIFORM_HAS_TEXTURE, metadata.BoolUniform(false))
	}

	stale := r.staleExtras(o)
	for _, name := range stale {
		v, _ := r.uniforms.Get(name)
		r.uniforms.Set(name, v.Zero())
	}

	o.UpdateUniforms(r.uniforms)
	r.uniforms.Each(r.pushUniform)

	for _, name := range stale {
		r.uniforms.Delete(name)
	}
	r.extras = append(r.extras[:0], o.UniformNames()...)

	if o.IndexBuffer != nil {
		r.backend.DrawElements(o.DrawMode, o.IndexBuffer.ElementCount)
		return
	}
	r.backend.DrawArrays(o.DrawMode, 0, o.VertexCount())
}

// staleExtras returns the per-object uniforms the previous object set and o does
// not. They are pushed once as zero so o never sees the previous values.
func (r *RendererSystem) staleExtras(o *components.RenderObject) []string {
	var stale []string
	own := o.UniformNames()
	for _, name := range r.extras {
		if !slices.Contains(own, name) {
			stale = append(stale, name)
		}
	}
	return stale
}

func (r *RendererSystem) bindAttributes(o *components.RenderObject) {
	for l := range r.bound {
		delete(r.bound, l)
	}
	for _, name := range o.AttributeNames() {
		loc := r.attributeLocation(name)
		buf, ok := o.Buffers[name]
		if !loc.Valid() || !ok {
			continue
		}
		r.backend.BindAttribute(loc, buf.Handle, buf.Dimensions)
		r.bound[loc] = struct{}{}
	}
	for loc := range r.enabled {
		if _, ok := r.bound[loc]; !ok {
			r.backend.DisableAttribute(loc)
		}
	}
	r.enabled, r.bound = r.bound, r.enabled

	if o.IndexBuffer != nil {
		r.backend.BindIndexBuffer(o.IndexBuffer.Handle)
	}
}

func (r *RendererSystem) pushUniform(name string, v metadata.UniformValue) {
	loc := r.uniformLocation(name)
	if !loc.Valid() {
		return
	}
	switch v.Kind {
	case metadata.UNIFORM_KIND_FLOAT:
		r.backend.Uniform1f(loc, v.Float)
	case metadata.UNIFORM_KIND_INT:
		r.backend.Uniform1i(loc, v.Int)
	case metadata.UNIFORM_KIND_BOOL:
		var b int32
		if v.Bool {
			b = 1
		}
		r.backend.Uniform1i(loc, b)
	case metadata.UNIFORM_KIND_VEC2:
		r.backend.Uniform2f(loc, v.Vec2)
	case metadata.UNIFORM_KIND_VEC3:
		r.backend.Uniform3f(loc, v.Vec3)
	case metadata.UNIFORM_KIND_VEC4:
		r.backend.Uniform4f(loc, v.Vec4)
	case metadata.UNIFORM_KIND_MAT3:
		r.backend.UniformMatrix3(loc, v.Mat3)
	case metadata.UNIFORM_KIND_MAT4:
		r.backend.UniformMatrix4(loc, v.Mat4)
	}
}
