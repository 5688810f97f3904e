package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

// CreateTexture allocates a texture name. It samples as incomplete (black)
// until UploadTexture fills it.
func (r *OpenGLRenderer) CreateTexture() metadata.TextureHandle {
	var texture uint32
	gl.GenTextures(1, &texture)
	r.textures = append(r.textures, texture)
	return metadata.TextureHandle(texture)
}

func (r *OpenGLRenderer) UploadTexture(texture metadata.TextureHandle, image *metadata.ImageResourceData, params metadata.TextureUploadParams) {
	if image == nil || len(image.Pixels) == 0 {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, uint32(texture))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(image.Pixels))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, textureFilter(params.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, textureFilter(params.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	if params.GenerateMipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
}

func (r *OpenGLRenderer) BindTexture(unit uint32, texture metadata.TextureHandle) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, uint32(texture))
}
