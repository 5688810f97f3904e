package metadata

type FontGlyph struct {
	Codepoint rune
	X         uint16
	Y         uint16
	Width     uint16
	Height    uint16
	XOffset   int16
	YOffset   int16
	XAdvance  int16
	PageID    uint8
}

type FontKerning struct {
	Codepoint0 rune
	Codepoint1 rune
	Amount     int16
}

/**
 * @brief A bitmap font atlas: glyph rectangles inside one texture page plus
 * kerning pairs. Coordinates are in atlas pixels.
 */
type FontData struct {
	Face       string
	Size       uint32
	LineHeight int32
	Baseline   int32
	AtlasSizeX int32
	AtlasSizeY int32
	/** @brief The texture source of page 0. */
	AtlasSource string
	Glyphs      map[rune]FontGlyph
	Kernings    map[[2]rune]FontKerning
}

// Kerning returns the advance adjustment between two runes.
func (f *FontData) Kerning(first, second rune) int16 {
	if k, ok := f.Kernings[[2]rune{first, second}]; ok {
		return k.Amount
	}
	return 0
}
