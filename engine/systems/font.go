package systems

import (
	"fmt"
	"path"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/geometry"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

type BitmapFontConfig struct {
	Name         string
	ResourceName string
}

/**
 * @brief Keeps the bitmap fonts loaded through the asset manager, by name. The
 * atlas of every font is requested from the resource manager at load time so
 * its decode starts early.
 */
type FontSystem struct {
	loader   AssetLoader
	textures *ResourceManager
	fonts    map[string]*metadata.FontData
}

func NewFontSystem(loader AssetLoader, textures *ResourceManager) *FontSystem {
	return &FontSystem{
		loader:   loader,
		textures: textures,
		fonts:    make(map[string]*metadata.FontData),
	}
}

func (fs *FontSystem) LoadBitmapFont(config BitmapFontConfig) (*metadata.FontData, error) {
	if font, ok := fs.fonts[config.Name]; ok {
		return font, nil
	}

	res, err := fs.loader.LoadAsset(config.ResourceName, metadata.ResourceTypeBitmapFont, nil)
	if err != nil {
		return nil, err
	}
	font, ok := res.Data.(*metadata.FontData)
	if !ok || font == nil {
		return nil, fmt.Errorf("font %s: unexpected resource data %T: %w", config.Name, res.Data, core.ErrUnknownResource)
	}
	// Page files are named relative to the descriptor.
	font.AtlasSource = path.Join(path.Dir(res.Name), font.AtlasSource)

	if fs.textures != nil {
		fs.textures.Preload(font.AtlasSource)
	}
	fs.fonts[config.Name] = font
	core.LogDebug("bitmap font %s loaded (%s, %d glyphs)", config.Name, font.Face, len(font.Glyphs))
	return font, nil
}

func (fs *FontSystem) Acquire(name string) (*metadata.FontData, bool) {
	font, ok := fs.fonts[name]
	return font, ok
}

// Text builds glyph quads for text in the named font and returns them with the
// line width.
func (fs *FontSystem) Text(name, text string) (geometry.GeometryDescriptor, float32, error) {
	font, ok := fs.fonts[name]
	if !ok {
		return geometry.GeometryDescriptor{}, 0, fmt.Errorf("font %s: %w", name, core.ErrAssetNotFound)
	}
	g, width := geometry.MakeText(font, text)
	return g, width, nil
}
