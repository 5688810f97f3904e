package metadata

/** @brief A GPU-side texture name. Zero is never a valid texture. */
type TextureHandle uint32

const INVALID_TEXTURE TextureHandle = 0

/**
 * @brief Tracks how far a texture source has come. A handle exists from the first
 * request on; its contents are undefined until the state is Ready.
 */
type TextureState int

const (
	/** @brief The image is being decoded or waits for upload. */
	TEXTURE_STATE_PENDING TextureState = iota
	/** @brief Pixels, parameters and mipmaps are uploaded. */
	TEXTURE_STATE_READY
	/** @brief Decoding failed. The texture stays blank for the rest of the session. */
	TEXTURE_STATE_FAILED
)

func (s TextureState) String() string {
	switch s {
	case TEXTURE_STATE_PENDING:
		return "pending"
	case TEXTURE_STATE_READY:
		return "ready"
	case TEXTURE_STATE_FAILED:
		return "failed"
	}
	return "unknown"
}

/**
 * @brief Represents a texture.
 */
type Texture struct {
	/** @brief The backend texture name. */
	Handle TextureHandle
	/** @brief The source identifier the texture was requested with. */
	Source string
	/** @brief Where the texture is in its load. */
	State TextureState
	/** @brief The texture Width, known once decoded. */
	Width uint32
	/** @brief The texture Height, known once decoded. */
	Height uint32
	/** @brief Incremented every time the data is uploaded. */
	Generation uint32
}

/** @brief Texture sampling filters. */
type TextureFilter int

const (
	TEXTURE_FILTER_NEAREST TextureFilter = iota
	TEXTURE_FILTER_LINEAR
	TEXTURE_FILTER_LINEAR_MIPMAP_NEAREST
)

/**
 * @brief How a decoded image is uploaded.
 */
type TextureUploadParams struct {
	MagFilter       TextureFilter
	MinFilter       TextureFilter
	GenerateMipmaps bool
}

// DefaultTextureUploadParams samples linearly when magnified and from the nearest
// mipmap when minified.
func DefaultTextureUploadParams() TextureUploadParams {
	return TextureUploadParams{
		MagFilter:       TEXTURE_FILTER_LINEAR,
		MinFilter:       TEXTURE_FILTER_LINEAR_MIPMAP_NEAREST,
		GenerateMipmaps: true,
	}
}
