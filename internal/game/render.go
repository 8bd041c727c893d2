package game

import (
	"math"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Decoration constants, in logical units.
const (
	bubbleCount   = 16
	bubbleStride  = 97  // Horizontal spacing between bubble columns
	bubbleRise    = 30  // Rise speed per second
	bubbleOverrun = 40  // Distance above the top before a bubble wraps
	textureOffset = 8   // Texture line inside each pipe
	seabedHeight  = 100 // Sand band at the bottom of the field
	wobbleRate    = 6   // Mouth bubble oscillation, radians per second
)

// Glyphs used by the renderer.
const (
	glyphCoral   = '█'
	glyphTexture = '▒'
	glyphSand    = '░'
	glyphBubble  = '°'
	glyphMouth   = '∘'
	glyphBody    = '◉'
	glyphTail    = '<'
	glyphBack    = '▄' // Row above the body
	glyphBelly   = '▀' // Row below the body
	glyphFlank   = '█'
)

// Render draws the world onto dst. Logical coordinates are mapped to cells by
// vp; t is wall-clock seconds and only drives cosmetic motion.
// The world is not modified.
func Render(dst *core.Screen, w World, p Params, vp core.Viewport, t float64) {
	drawWater(dst, w.Field, vp)
	drawBubbles(dst, w.Field, vp, t)
	for _, o := range w.Obstacles {
		drawPipe(dst, o, w.Field, p, vp)
	}
	drawFish(dst, w.Fish, vp, t)
}

// waterColor returns the background band for a logical y coordinate.
func waterColor(y, fieldH float64) core.Color {
	switch {
	case fieldH <= 0 || y < fieldH/3:
		return core.ColorWaterTop
	case y < fieldH*2/3:
		return core.ColorWaterMid
	default:
		return core.ColorWaterDeep
	}
}

// drawWater paints the gradient background and the seabed.
func drawWater(dst *core.Screen, field Field, vp core.Viewport) {
	for row := 0; row < dst.Height(); row++ {
		for col := 0; col < dst.Width(); col++ {
			_, y := vp.CellCenter(col, row)
			cell := core.Cell{Rune: ' ', Bg: waterColor(y, field.H)}
			if y >= field.H-seabedHeight {
				cell.Rune = glyphSand
				cell.Fg = core.ColorSeabed
			}
			dst.SetCell(col, row, cell)
		}
	}
}

// drawBubbles paints rising bubbles that wrap around the field.
func drawBubbles(dst *core.Screen, field Field, vp core.Viewport, t float64) {
	if !field.Valid() {
		return
	}
	for i := 0; i < bubbleCount; i++ {
		x := math.Mod(float64(i*bubbleStride), field.W)
		y := field.H - math.Mod(t*bubbleRise+float64(i*bubbleRise), field.H+bubbleOverrun)
		dst.Paint(vp.Col(x), vp.Row(y), glyphBubble, core.ColorBubble)
	}
}

// drawPipe paints the coral above and below the gap of one obstacle.
func drawPipe(dst *core.Screen, o Obstacle, field Field, p Params, vp core.Viewport) {
	gap := o.Gap(p.GapHeight)
	left := vp.Col(o.X)
	right := vp.Col(o.Right(p.ObstacleWidth))
	texture := vp.Col(o.X + textureOffset)

	for row := 0; row < dst.Height(); row++ {
		_, y := vp.CellCenter(0, row)
		if y >= gap.Lo && y <= gap.Hi {
			continue
		}
		for col := left; col < right; col++ {
			if col == texture {
				dst.Paint(col, row, glyphTexture, core.ColorCoralShade)
				continue
			}
			dst.Paint(col, row, glyphCoral, core.ColorCoral)
		}
	}
}

// noseGlyph picks the nose rune for the fish's banking angle.
func noseGlyph(rotation float64) rune {
	switch {
	case rotation < -0.35:
		return '/'
	case rotation > 0.35:
		return '\\'
	default:
		return '>'
	}
}

// drawFish paints the fish and its wobbling mouth bubble.
// The body fills every row the collision circle reaches.
func drawFish(dst *core.Screen, e Entity, vp core.Viewport, t float64) {
	col, row := vp.Col(e.X), vp.Row(e.Y)

	span := e.VSpan()
	top, bottom := vp.Row(span.Lo), vp.Row(math.Nextafter(span.Hi, span.Lo))
	for r := top; r <= bottom; r++ {
		switch {
		case r == row:
		case r == row-1:
			dst.Paint(col, r, glyphBack, core.ColorFish)
		case r == row+1:
			dst.Paint(col, r, glyphBelly, core.ColorFish)
		default:
			dst.Paint(col, r, glyphFlank, core.ColorFish)
		}
	}

	dst.Paint(col-1, row, glyphTail, core.ColorFishTail)
	dst.Paint(col, row, glyphBody, core.ColorFish)
	dst.Paint(col+1, row, noseGlyph(e.Rotation), core.ColorFish)

	by := e.Y - vp.UnitsPerRow*(1+math.Sin(t*wobbleRate)/2)
	dst.Paint(col+2, vp.Row(by), glyphMouth, core.ColorBubble)
}
