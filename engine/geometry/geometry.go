package geometry

import (
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

/**
 * @brief Shape data for a render object. Factories in this package return fresh
 * slices every call, so a descriptor can be modified freely by its owner.
 */
type GeometryDescriptor struct {
	/** @brief Components per vertex in Vertices (2 or 3). */
	Dimensions int
	/** @brief Flat vertex positions. */
	Vertices []float32
	/** @brief Optional index list. Empty means the vertices are drawn in order. */
	Indices []uint32
	/** @brief Optional normals, 3 per vertex. */
	Normals []float32
	/** @brief Optional texture coordinates, 2 per vertex. */
	TextureCoords []float32
	DrawMode      metadata.DrawMode
}

// VertexCount returns the number of vertices, or zero for malformed data.
func (g GeometryDescriptor) VertexCount() int {
	if g.Dimensions <= 0 {
		return 0
	}
	return len(g.Vertices) / g.Dimensions
}

// SolidColour returns one RGBA colour per vertex.
func SolidColour(vertexCount int, c math.Vec4) []float32 {
	out := make([]float32, 0, vertexCount*4)
	for i := 0; i < vertexCount; i++ {
		out = append(out, c.X, c.Y, c.Z, c.W)
	}
	return out
}
