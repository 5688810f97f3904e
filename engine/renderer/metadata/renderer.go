package metadata

import "github.com/spaghettifunk/glpong/engine/math"

type RendererBackendConfig struct {
	/** @brief The name of the application */
	ApplicationName string
	/** @brief The colour the framebuffer is cleared to every frame. */
	ClearColour math.Vec4
	/** @brief Enables depth testing; the depth buffer is then cleared every frame too. */
	DepthTest bool
}

/**
 * @brief The readiness of the renderer. Frames requested while not ready are
 * dropped.
 */
type RendererStage int

const (
	/** @brief Shaders have not been compiled and linked yet. Draw is a no-op. */
	RENDERER_STAGE_NOT_READY RendererStage = iota
	/** @brief The program is linked and every location has been resolved. */
	RENDERER_STAGE_READY
)

func (s RendererStage) String() string {
	switch s {
	case RENDERER_STAGE_READY:
		return "ready"
	default:
		return "not ready"
	}
}

/**
 * @brief The clear flags. Can be combined together for multiple clearing functions.
 */
type RenderpassClearFlag uint32

const (
	/** @brief No clearing should be done. */
	RENDERPASS_CLEAR_NONE_FLAG RenderpassClearFlag = 0x0
	/** @brief Clear the colour buffer. */
	RENDERPASS_CLEAR_COLOUR_BUFFER_FLAG RenderpassClearFlag = 0x1
	/** @brief Clear the depth buffer. */
	RENDERPASS_CLEAR_DEPTH_BUFFER_FLAG RenderpassClearFlag = 0x2
)

type RenderBufferType int

const (
	/** @brief Buffer is use is unknown. Default, but usually invalid. */
	RENDERBUFFER_TYPE_UNKNOWN RenderBufferType = iota
	/** @brief Buffer is used for vertex attribute data. */
	RENDERBUFFER_TYPE_VERTEX
	/** @brief Buffer is used for index data. */
	RENDERBUFFER_TYPE_INDEX
)

/** @brief A GPU-side buffer name. Zero is never a valid buffer. */
type BufferHandle uint32

/**
 * @brief A buffer allocated for one attribute (or the index list) of a render
 * object. Its contents never change after creation.
 */
type RenderBuffer struct {
	/** @brief The type of buffer, which typically determines its use. */
	RenderBufferType RenderBufferType
	/** @brief The backend buffer name. */
	Handle BufferHandle
	/** @brief Components per vertex. Zero for index buffers. */
	Dimensions int
	/** @brief The number of floats (vertex) or indices (index) uploaded. */
	ElementCount int
}
