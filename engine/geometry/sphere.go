package geometry

import (
	m "math"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

/**
 * @brief Creates a UV sphere of radius 1 centred on the origin. Normals equal the
 * positions. Produces (latBands+1)*(lonBands+1) vertices and 6*latBands*lonBands
 * indices.
 */
func MakeSphere(latBands, lonBands int) GeometryDescriptor {
	if latBands < 2 {
		core.LogWarn("latBands must be at least two. Defaulting to two.")
		latBands = 2
	}
	if lonBands < 3 {
		core.LogWarn("lonBands must be at least three. Defaulting to three.")
		lonBands = 3
	}

	vertexCount := (latBands + 1) * (lonBands + 1)
	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	texCoords := make([]float32, 0, vertexCount*2)

	for lat := 0; lat <= latBands; lat++ {
		theta := float64(lat) * m.Pi / float64(latBands)
		sinTheta, cosTheta := m.Sincos(theta)

		for lon := 0; lon <= lonBands; lon++ {
			phi := float64(lon) * 2 * m.Pi / float64(lonBands)
			sinPhi, cosPhi := m.Sincos(phi)

			x := float32(cosPhi * sinTheta)
			y := float32(cosTheta)
			z := float32(sinPhi * sinTheta)

			vertices = append(vertices, x, y, z)
			normals = append(normals, x, y, z)
			texCoords = append(texCoords,
				1-float32(lon)/float32(lonBands),
				1-float32(lat)/float32(latBands))
		}
	}

	indices := make([]uint32, 0, 6*latBands*lonBands)
	for lat := 0; lat < latBands; lat++ {
		for lon := 0; lon < lonBands; lon++ {
			first := uint32(lat*(lonBands+1) + lon)
			second := first + uint32(lonBands) + 1
			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1)
		}
	}

	return GeometryDescriptor{
		Dimensions:    3,
		Vertices:      vertices,
		Indices:       indices,
		Normals:       normals,
		TextureCoords: texCoords,
		DrawMode:      metadata.DRAW_MODE_TRIANGLES,
	}
}
