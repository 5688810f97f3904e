package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

var _ renderer.RendererBackend = (*OpenGLRenderer)(nil)

/**
 * @brief RendererBackend on an OpenGL 4.1 core context. The context must be
 * current on the calling thread for every method.
 */
type OpenGLRenderer struct {
	vao uint32

	buffers  []uint32
	textures []uint32

	FramebufferWidth  uint32
	FramebufferHeight uint32
}

func New(width, height uint32) *OpenGLRenderer {
	return &OpenGLRenderer{
		FramebufferWidth:  width,
		FramebufferHeight: height,
	}
}

func (r *OpenGLRenderer) Initialize(config *metadata.RendererBackendConfig) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing gl: %w", err)
	}
	core.LogInfo("OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	// Core profiles refuse to draw without a bound vertex array object.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	c := config.ClearColour
	gl.ClearColor(c.X, c.Y, c.Z, c.W)
	if config.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LEQUAL)
	}
	// glyph atlases carry coverage in alpha
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(r.FramebufferWidth), int32(r.FramebufferHeight))
	return nil
}

func (r *OpenGLRenderer) Shutdown() error {
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
	if len(r.buffers) > 0 {
		gl.DeleteBuffers(int32(len(r.buffers)), &r.buffers[0])
		r.buffers = nil
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	return nil
}

func (r *OpenGLRenderer) Resized(width, height uint32) {
	r.FramebufferWidth = width
	r.FramebufferHeight = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *OpenGLRenderer) CreateProgram(source *metadata.ShaderSource) (metadata.ProgramHandle, error) {
	program, err := newProgram(source.Vertex, source.Fragment)
	if err != nil {
		return 0, fmt.Errorf("generation %d: %w", source.Generation, err)
	}
	return metadata.ProgramHandle(program), nil
}

func (r *OpenGLRenderer) DestroyProgram(program metadata.ProgramHandle) {
	gl.DeleteProgram(uint32(program))
}

func (r *OpenGLRenderer) UseProgram(program metadata.ProgramHandle) {
	gl.UseProgram(uint32(program))
}

func (r *OpenGLRenderer) AttributeLocation(program metadata.ProgramHandle, name string) metadata.Location {
	return metadata.Location(gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00")))
}

func (r *OpenGLRenderer) UniformLocation(program metadata.ProgramHandle, name string) metadata.Location {
	return metadata.Location(gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00")))
}

func (r *OpenGLRenderer) CreateVertexBuffer(data []float32) metadata.BufferHandle {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(unsafe.Sizeof(data[0])), gl.Ptr(data), gl.STATIC_DRAW)
	}
	r.buffers = append(r.buffers, buffer)
	return metadata.BufferHandle(buffer)
}

func (r *OpenGLRenderer) CreateIndexBuffer(indices []uint32) metadata.BufferHandle {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffer)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(indices[0])), gl.Ptr(indices), gl.STATIC_DRAW)
	}
	r.buffers = append(r.buffers, buffer)
	return metadata.BufferHandle(buffer)
}

func (r *OpenGLRenderer) BindAttribute(location metadata.Location, buffer metadata.BufferHandle, dimensions int) {
	if !location.Valid() {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
	gl.VertexAttribPointer(uint32(location), int32(dimensions), gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(uint32(location))
}

func (r *OpenGLRenderer) DisableAttribute(location metadata.Location) {
	if !location.Valid() {
		return
	}
	gl.DisableVertexAttribArray(uint32(location))
}

func (r *OpenGLRenderer) BindIndexBuffer(buffer metadata.BufferHandle) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(buffer))
}

func (r *OpenGLRenderer) Uniform1f(location metadata.Location, v float32) {
	if location.Valid() {
		gl.Uniform1f(int32(location), v)
	}
}

func (r *OpenGLRenderer) Uniform1i(location metadata.Location, v int32) {
	if location.Valid() {
		gl.Uniform1i(int32(location), v)
	}
}

func (r *OpenGLRenderer) Uniform2f(location metadata.Location, v math.Vec2) {
	if location.Valid() {
		gl.Uniform2f(int32(location), v.X, v.Y)
	}
}

func (r *OpenGLRenderer) Uniform3f(location metadata.Location, v math.Vec3) {
	if location.Valid() {
		gl.Uniform3f(int32(location), v.X, v.Y, v.Z)
	}
}

func (r *OpenGLRenderer) Uniform4f(location metadata.Location, v math.Vec4) {
	if location.Valid() {
		gl.Uniform4f(int32(location), v.X, v.Y, v.Z, v.W)
	}
}

func (r *OpenGLRenderer) UniformMatrix3(location metadata.Location, m math.Mat3) {
	if location.Valid() {
		gl.UniformMatrix3fv(int32(location), 1, false, &m.Data[0])
	}
}

func (r *OpenGLRenderer) UniformMatrix4(location metadata.Location, m math.Mat4) {
	if location.Valid() {
		gl.UniformMatrix4fv(int32(location), 1, false, &m.Data[0])
	}
}

func (r *OpenGLRenderer) Clear(flags metadata.RenderpassClearFlag) {
	var mask uint32
	if flags&metadata.RENDERPASS_CLEAR_COLOUR_BUFFER_FLAG != 0 {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if flags&metadata.RENDERPASS_CLEAR_DEPTH_BUFFER_FLAG != 0 {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

func (r *OpenGLRenderer) DrawArrays(mode metadata.DrawMode, first, count int) {
	gl.DrawArrays(drawMode(mode), int32(first), int32(count))
}

func (r *OpenGLRenderer) DrawElements(mode metadata.DrawMode, count int) {
	gl.DrawElements(drawMode(mode), int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
}
