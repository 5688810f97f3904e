package geometry

import (
	m "math"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

/**
 * @brief Creates a 2D rectangle centred on the origin as a triangle fan of 4
 * vertices, counter-clockwise from the bottom-left corner.
 */
func MakeRectangle(width, height float32) GeometryDescriptor {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	hw, hh := width*0.5, height*0.5
	return GeometryDescriptor{
		Dimensions: 2,
		Vertices: []float32{
			-hw, -hh,
			hw, -hh,
			hw, hh,
			-hw, hh,
		},
		TextureCoords: []float32{0, 0, 1, 0, 1, 1, 0, 1},
		DrawMode:      metadata.DRAW_MODE_TRIANGLE_FAN,
	}
}

/**
 * @brief Creates a 2D disc as a triangle fan: the centre followed by segments+1
 * rim vertices, the last one closing the fan on the first.
 */
func MakeCircle(radius float32, segments int) GeometryDescriptor {
	if segments < 3 {
		core.LogWarn("segments must be at least three. Defaulting to three.")
		segments = 3
	}
	vertices := make([]float32, 0, (segments+2)*2)
	vertices = append(vertices, 0, 0)
	for i := 0; i <= segments; i++ {
		angle := 2 * m.Pi * float64(i) / float64(segments)
		s, c := m.Sincos(angle)
		vertices = append(vertices, radius*float32(c), radius*float32(s))
	}
	return GeometryDescriptor{
		Dimensions: 2,
		Vertices:   vertices,
		DrawMode:   metadata.DRAW_MODE_TRIANGLE_FAN,
	}
}

/**
 * @brief Creates a vertical dashed line centred on the origin as a line list.
 * dash is the length of each drawn segment, gap the space between two.
 */
func MakeDashedLine(length, dash, gap float32) GeometryDescriptor {
	if dash <= 0 {
		core.LogWarn("dash must be positive. Defaulting to one.")
		dash = 1.0
	}
	if gap < 0 {
		gap = 0
	}
	top := length * 0.5
	bottom := -top
	vertices := make([]float32, 0)
	for y := top; y > bottom; y -= dash + gap {
		end := y - dash
		if end < bottom {
			end = bottom
		}
		vertices = append(vertices, 0, y, 0, end)
	}
	return GeometryDescriptor{
		Dimensions: 2,
		Vertices:   vertices,
		DrawMode:   metadata.DRAW_MODE_LINES,
	}
}
