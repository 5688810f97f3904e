package pong

import (
	"strconv"

	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/components"
	"github.com/spaghettifunk/glpong/engine/systems"
)

const (
	SCORE_FONT   = "score"
	SCORE_DIGITS = 2
	// Distance from the centre line to the nearest digit.
	SCORE_GAP float32 = 30
)

/**
 * @brief Two digit score per side, drawn with a bitmap font. Every digit of
 * every slot is its own render object; Set shows the right one and hides the
 * others, so no geometry is rebuilt during play.
 */
type scoreBoard struct {
	// [side][slot][digit], slot 0 is the tens
	digits [2][SCORE_DIGITS][10]*components.RenderObject
}

func newScoreBoard(fonts *systems.FontSystem, resource string, edge math.Vec2) (*scoreBoard, error) {
	font, err := fonts.LoadBitmapFont(systems.BitmapFontConfig{Name: SCORE_FONT, ResourceName: resource})
	if err != nil {
		return nil, err
	}

	var advance float32
	for d := 0; d < 10; d++ {
		_, width, err := fonts.Text(SCORE_FONT, strconv.Itoa(d))
		if err != nil {
			return nil, err
		}
		advance = max(advance, width)
	}

	top := edge.Y - 20
	b := &scoreBoard{}
	for side := SideLeft; side <= SideRight; side++ {
		for slot := 0; slot < SCORE_DIGITS; slot++ {
			x := SCORE_GAP + float32(slot)*advance
			if side == SideLeft {
				x = -SCORE_GAP - float32(SCORE_DIGITS-slot)*advance
			}
			position := math.NewVec3(x, top, 0)
			for d := 0; d < 10; d++ {
				g, _, err := fonts.Text(SCORE_FONT, strconv.Itoa(d))
				if err != nil {
					return nil, err
				}
				o, err := components.NewRenderObject(g, &components.RenderObjectOptions{
					Texture:  &components.TextureOptions{Source: font.AtlasSource},
					Position: &position,
					Unlit:    true,
				})
				if err != nil {
					return nil, err
				}
				b.digits[side][slot][d] = o
			}
		}
	}
	b.Set(SideLeft, 0)
	b.Set(SideRight, 0)
	return b, nil
}

func (b *scoreBoard) Objects() []*components.RenderObject {
	objects := make([]*components.RenderObject, 0, 2*SCORE_DIGITS*10)
	for side := range b.digits {
		for slot := range b.digits[side] {
			objects = append(objects, b.digits[side][slot][:]...)
		}
	}
	return objects
}

// Set shows score for a side, modulo 100. The tens digit is hidden below ten.
func (b *scoreBoard) Set(side Side, score int) {
	score %= 100
	shown := [SCORE_DIGITS]int{score / 10, score % 10}
	for slot, digits := range b.digits[side] {
		for d, o := range digits {
			o.Hidden = d != shown[slot] || (slot == 0 && score < 10)
		}
	}
}
