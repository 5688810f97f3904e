package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

func drawMode(mode metadata.DrawMode) uint32 {
	switch mode {
	case metadata.DRAW_MODE_TRIANGLE_STRIP:
		return gl.TRIANGLE_STRIP
	case metadata.DRAW_MODE_TRIANGLE_FAN:
		return gl.TRIANGLE_FAN
	case metadata.DRAW_MODE_LINES:
		return gl.LINES
	case metadata.DRAW_MODE_LINE_STRIP:
		return gl.LINE_STRIP
	case metadata.DRAW_MODE_LINE_LOOP:
		return gl.LINE_LOOP
	case metadata.DRAW_MODE_POINTS:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

func textureFilter(filter metadata.TextureFilter) int32 {
	switch filter {
	case metadata.TEXTURE_FILTER_NEAREST:
		return gl.NEAREST
	case metadata.TEXTURE_FILTER_LINEAR_MIPMAP_NEAREST:
		return gl.LINEAR_MIPMAP_NEAREST
	default:
		return gl.LINEAR
	}
}
