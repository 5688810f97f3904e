package systems

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

func TestFontSystemLoadsAndPreloadsAtlas(t *testing.T) {
	rm, backend, loader, js := newResourceFixture(t)
	loader.fonts["fonts/score.fnt"] = &metadata.FontData{
		Face:        "Score",
		LineHeight:  32,
		AtlasSizeX:  64,
		AtlasSizeY:  64,
		AtlasSource: "score_0.png",
		Glyphs: map[rune]metadata.FontGlyph{
			'1': {Codepoint: '1', Width: 10, Height: 20, XAdvance: 12},
		},
	}
	fs := NewFontSystem(loader, rm)

	font, err := fs.LoadBitmapFont(BitmapFontConfig{Name: "score", ResourceName: "fonts/score.fnt"})
	if err != nil {
		t.Fatalf("LoadBitmapFont: %v", err)
	}
	if font.AtlasSource != "fonts/score_0.png" {
		t.Fatalf("atlas source = %q", font.AtlasSource)
	}
	if _, ok := rm.State("fonts/score_0.png"); !ok || backend.count("CreateTexture") != 1 {
		t.Fatalf("atlas not requested")
	}

	again, err := fs.LoadBitmapFont(BitmapFontConfig{Name: "score", ResourceName: "fonts/score.fnt"})
	if err != nil || again != font || loader.loadCount("fonts/score.fnt") != 1 {
		t.Fatalf("second load hit the loader again")
	}

	g, width, err := fs.Text("score", "11")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if g.VertexCount() != 8 || width != 24 {
		t.Fatalf("text: %d vertices, width %v", g.VertexCount(), width)
	}
	js.Shutdown()
}

func TestFontSystemUnknownFont(t *testing.T) {
	fs := NewFontSystem(newMemoryLoader(), nil)
	if _, err := fs.LoadBitmapFont(BitmapFontConfig{Name: "x", ResourceName: "fonts/x.fnt"}); err == nil {
		t.Fatalf("missing font loaded")
	}
	if _, _, err := fs.Text("x", "1"); !errors.Is(err, core.ErrAssetNotFound) {
		t.Fatalf("err = %v, want ErrAssetNotFound", err)
	}
}
