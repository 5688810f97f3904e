package metadata

/**
 * @brief How the vertex (or index) stream of an object is assembled into
 * primitives.
 */
type DrawMode int

const (
	DRAW_MODE_TRIANGLES DrawMode = iota
	DRAW_MODE_TRIANGLE_STRIP
	DRAW_MODE_TRIANGLE_FAN
	DRAW_MODE_LINES
	DRAW_MODE_LINE_STRIP
	DRAW_MODE_LINE_LOOP
	DRAW_MODE_POINTS
)

func (m DrawMode) String() string {
	switch m {
	case DRAW_MODE_TRIANGLES:
		return "triangles"
	case DRAW_MODE_TRIANGLE_STRIP:
		return "triangle_strip"
	case DRAW_MODE_TRIANGLE_FAN:
		return "triangle_fan"
	case DRAW_MODE_LINES:
		return "lines"
	case DRAW_MODE_LINE_STRIP:
		return "line_strip"
	case DRAW_MODE_LINE_LOOP:
		return "line_loop"
	case DRAW_MODE_POINTS:
		return "points"
	}
	return "unknown"
}

// Attribute names the shader program is expected to declare.
const (
	ATTRIBUTE_VERTICES      string = "vertices"
	ATTRIBUTE_NORMALS       string = "normals"
	ATTRIBUTE_COLOUR        string = "color"
	ATTRIBUTE_TEXTURE_COORD string = "textureCoord"
)

/**
 * @brief A vertex attribute: a flat float buffer holding Dimensions components
 * per vertex.
 */
type Attribute struct {
	Dimensions int
	Data       []float32
}

// Count returns the number of vertices the attribute describes.
func (a Attribute) Count() int {
	if a.Dimensions <= 0 {
		return 0
	}
	return len(a.Data) / a.Dimensions
}

// IsWellFormed reports whether the data length is a positive multiple of the dimensions.
func (a Attribute) IsWellFormed() bool {
	return a.Dimensions > 0 && len(a.Data) > 0 && len(a.Data)%a.Dimensions == 0
}
