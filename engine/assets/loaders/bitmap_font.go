package loaders

import (
	"fmt"

	"github.com/fzipp/bmfont"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

// BitmapFontLoader reads AngelCode .fnt descriptors. Only page 0 is used as the atlas;
// its image is loaded separately, as a texture.
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	desc, err := bmfont.LoadDescriptor(path)
	if err != nil {
		return nil, fmt.Errorf("loading bitmap font %s: %w", path, err)
	}

	data, err := ImportFNT(desc)
	if err != nil {
		return nil, fmt.Errorf("importing bitmap font %s: %w", path, err)
	}

	return &metadata.Resource{
		Name:     data.Face,
		FullPath: path,
		DataSize: uint64(len(data.Glyphs)),
		Data:     data,
	}, nil
}

func (fl *BitmapFontLoader) Unload(resource *metadata.Resource) error {
	if data, ok := resource.Data.(*metadata.FontData); ok && data != nil {
		data.Glyphs = nil
		data.Kernings = nil
	}
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

// ImportFNT converts a parsed descriptor. AtlasSource is the page 0 file name as
// written in the descriptor.
func ImportFNT(desc *bmfont.Descriptor) (*metadata.FontData, error) {
	page, ok := desc.Pages[0]
	if !ok {
		return nil, fmt.Errorf("font %q has no page 0", desc.Info.Face)
	}

	out := &metadata.FontData{
		Face:        desc.Info.Face,
		Size:        uint32(desc.Info.Size),
		LineHeight:  int32(desc.Common.LineHeight),
		Baseline:    int32(desc.Common.Base),
		AtlasSizeX:  int32(desc.Common.ScaleW),
		AtlasSizeY:  int32(desc.Common.ScaleH),
		AtlasSource: page.File,
		Glyphs:      make(map[rune]metadata.FontGlyph, len(desc.Chars)),
		Kernings:    make(map[[2]rune]metadata.FontKerning, len(desc.Kerning)),
	}

	for r, g := range desc.Chars {
		if g.Page != 0 {
			continue
		}
		out.Glyphs[r] = metadata.FontGlyph{
			Codepoint: r,
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
			PageID:    uint8(g.Page),
		}
	}

	for p, k := range desc.Kerning {
		out.Kernings[[2]rune{p.First, p.Second}] = metadata.FontKerning{
			Codepoint0: p.First,
			Codepoint1: p.Second,
			Amount:     int16(k.Amount),
		}
	}

	return out, nil
}
