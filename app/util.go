package app

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawText draws str with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, str string, font text.Face, x, y float64, color color.Color) {
	ops := text.DrawOptions{}
	ops.GeoM.Translate(x, y)
	ops.ColorScale.ScaleWithColor(color)
	text.Draw(screen, str, font, &ops)
}

// DrawTextUp draws str rotated a quarter turn counter-clockwise, reading
// bottom to top, with its baseline box starting at (x, y).
func DrawTextUp(screen *ebiten.Image, str string, font text.Face, x, y float64, color color.Color) {
	ops := text.DrawOptions{}
	ops.GeoM.Rotate(-math.Pi / 2)
	ops.GeoM.Translate(x, y)
	ops.ColorScale.ScaleWithColor(color)
	text.Draw(screen, str, font, &ops)
}

// DrawDashedLine draws a dashed line from (x0,y0) to (x1,y1).
func DrawDashedLine(
	dst *ebiten.Image,
	x0, y0, x1, y1 float32,
	thickness float32,
	dashLen, gapLen float32,
	clr color.Color,
	additive bool,
) {
	total := math.Hypot(float64(x1-x0), float64(y1-y0))
	if total == 0 {
		return
	}
	dirX := float64(x1-x0) / total
	dirY := float64(y1-y0) / total

	for pos := 0.0; pos < total; pos += float64(dashLen + gapLen) {
		end := min(pos+float64(dashLen), total)
		vector.StrokeLine(
			dst,
			x0+float32(dirX*pos), y0+float32(dirY*pos),
			x0+float32(dirX*end), y0+float32(dirY*end),
			thickness,
			clr,
			additive,
		)
	}
}

// Fade scales a premultiplied color by alpha.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = max(0, min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
