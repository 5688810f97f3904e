package renderer

import (
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

type RendererType uint8

const (
	OpenGL RendererType = iota
)

/**
 * @brief The GPU context contract. Every method must be called from the thread
 * that owns the context. Methods taking a location ignore INVALID_LOCATION.
 */
type RendererBackend interface {
	Initialize(config *metadata.RendererBackendConfig) error
	Shutdown() error
	Resized(width, height uint32)

	// Programs and locations.
	CreateProgram(source *metadata.ShaderSource) (metadata.ProgramHandle, error)
	DestroyProgram(program metadata.ProgramHandle)
	UseProgram(program metadata.ProgramHandle)
	AttributeLocation(program metadata.ProgramHandle, name string) metadata.Location
	UniformLocation(program metadata.ProgramHandle, name string) metadata.Location

	// Buffers. Contents are uploaded once, at creation.
	CreateVertexBuffer(data []float32) metadata.BufferHandle
	CreateIndexBuffer(indices []uint32) metadata.BufferHandle
	BindAttribute(location metadata.Location, buffer metadata.BufferHandle, dimensions int)
	DisableAttribute(location metadata.Location)
	BindIndexBuffer(buffer metadata.BufferHandle)

	// Textures.
	CreateTexture() metadata.TextureHandle
	UploadTexture(texture metadata.TextureHandle, image *metadata.ImageResourceData, params metadata.TextureUploadParams)
	BindTexture(unit uint32, texture metadata.TextureHandle)

	// Uniform uploads, one per uniform kind.
	Uniform1f(location metadata.Location, v float32)
	Uniform1i(location metadata.Location, v int32)
	Uniform2f(location metadata.Location, v math.Vec2)
	Uniform3f(location metadata.Location, v math.Vec3)
	Uniform4f(location metadata.Location, v math.Vec4)
	UniformMatrix3(location metadata.Location, m math.Mat3)
	UniformMatrix4(location metadata.Location, m math.Mat4)

	// Frame.
	Clear(flags metadata.RenderpassClearFlag)
	DrawArrays(mode metadata.DrawMode, first, count int)
	DrawElements(mode metadata.DrawMode, count int)
}
