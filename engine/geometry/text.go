package geometry

import "github.com/spaghettifunk/glpong/engine/renderer/metadata"

/**
 * @brief Lays out text with a bitmap font atlas: one textured quad (4 vertices,
 * 6 indices) per glyph, in atlas pixel units with the origin at the top-left of
 * the first line and y growing upwards. Runes missing from the atlas are skipped
 * and kerning pairs are applied. Returns the descriptor and the laid out width.
 */
func MakeText(font *metadata.FontData, text string) (GeometryDescriptor, float32) {
	g := GeometryDescriptor{
		Dimensions: 2,
		DrawMode:   metadata.DRAW_MODE_TRIANGLES,
	}
	if font == nil || font.AtlasSizeX <= 0 || font.AtlasSizeY <= 0 {
		return g, 0
	}

	atlasW := float32(font.AtlasSizeX)
	atlasH := float32(font.AtlasSizeY)

	var x, y, width float32
	var prev rune
	for _, r := range text {
		if r == '\n' {
			x = 0
			y -= float32(font.LineHeight)
			prev = 0
			continue
		}
		glyph, ok := font.Glyphs[r]
		if !ok {
			continue
		}
		if prev != 0 {
			x += float32(font.Kerning(prev, r))
		}

		minX := x + float32(glyph.XOffset)
		maxY := y - float32(glyph.YOffset)
		maxX := minX + float32(glyph.Width)
		minY := maxY - float32(glyph.Height)

		// Textures are uploaded flipped, so v runs bottom to top.
		tMinX := float32(glyph.X) / atlasW
		tMaxX := float32(glyph.X+glyph.Width) / atlasW
		tMaxY := 1 - float32(glyph.Y)/atlasH
		tMinY := 1 - float32(glyph.Y+glyph.Height)/atlasH

		base := uint32(len(g.Vertices) / 2)
		g.Vertices = append(g.Vertices,
			minX, minY,
			maxX, minY,
			maxX, maxY,
			minX, maxY)
		g.TextureCoords = append(g.TextureCoords,
			tMinX, tMinY,
			tMaxX, tMinY,
			tMaxX, tMaxY,
			tMinX, tMaxY)
		g.Indices = append(g.Indices,
			base, base+1, base+2,
			base, base+2, base+3)

		x += float32(glyph.XAdvance)
		if x > width {
			width = x
		}
		prev = r
	}
	return g, width
}
