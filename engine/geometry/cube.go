package geometry

import (
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

// Face order shared by every cube table: front, back, top, bottom, right, left.
var cubeVertices = [...]float32{
	// Front
	-1.0, -1.0, 1.0,
	1.0, -1.0, 1.0,
	1.0, 1.0, 1.0,
	-1.0, 1.0, 1.0,

	// Back
	-1.0, -1.0, -1.0,
	-1.0, 1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, -1.0, -1.0,

	// Top
	-1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, 1.0, -1.0,

	// Bottom
	-1.0, -1.0, -1.0,
	1.0, -1.0, -1.0,
	1.0, -1.0, 1.0,
	-1.0, -1.0, 1.0,

	// Right
	1.0, -1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, 1.0, 1.0,
	1.0, -1.0, 1.0,

	// Left
	-1.0, -1.0, -1.0,
	-1.0, -1.0, 1.0,
	-1.0, 1.0, 1.0,
	-1.0, 1.0, -1.0,
}

var cubeIndices = [...]uint32{
	0, 1, 2, 0, 2, 3, // Front
	4, 5, 6, 4, 6, 7, // Back
	8, 9, 10, 8, 10, 11, // Top
	12, 13, 14, 12, 14, 15, // Bottom
	16, 17, 18, 16, 18, 19, // Right
	20, 21, 22, 20, 22, 23, // Left
}

var cubeTextureCoords = [...]float32{
	// Front
	0, 0, 1, 0, 1, 1, 0, 1,
	// Back
	1, 0, 1, 1, 0, 1, 0, 0,
	// Top
	0, 0, 1, 0, 1, 1, 0, 1,
	// Bottom
	0, 0, 1, 0, 1, 1, 0, 1,
	// Right
	1, 0, 1, 1, 0, 1, 0, 0,
	// Left
	0, 0, 1, 0, 1, 1, 0, 1,
}

var cubeFaceNormals = [6][3]float32{
	{0, 0, 1},  // Front
	{0, 0, -1}, // Back
	{0, 1, 0},  // Top
	{0, -1, 0}, // Bottom
	{1, 0, 0},  // Right
	{-1, 0, 0}, // Left
}

/**
 * @brief Creates a cube spanning [-1, 1] on every axis: 24 vertices (4 per face so
 * each face has its own normal and texture coordinates) and 36 indices.
 */
func MakeCube() GeometryDescriptor {
	normals := make([]float32, 0, 24*3)
	for _, n := range cubeFaceNormals {
		for i := 0; i < 4; i++ {
			normals = append(normals, n[0], n[1], n[2])
		}
	}
	return GeometryDescriptor{
		Dimensions:    3,
		Vertices:      append([]float32(nil), cubeVertices[:]...),
		Indices:       append([]uint32(nil), cubeIndices[:]...),
		Normals:       normals,
		TextureCoords: append([]float32(nil), cubeTextureCoords[:]...),
		DrawMode:      metadata.DRAW_MODE_TRIANGLES,
	}
}

// CubeFaceColours replicates one colour per face to its 4 vertices.
func CubeFaceColours(front, back, top, bottom, right, left math.Vec4) []float32 {
	out := make([]float32, 0, 24*4)
	for _, c := range [6]math.Vec4{front, back, top, bottom, right, left} {
		out = append(out, SolidColour(4, c)...)
	}
	return out
}
