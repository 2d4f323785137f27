package termcolor

import (
	"github.com/phyten/lumaramp/internal/colorutil"
)

// basic8 approximates the xterm defaults for SGR 30-37/40-47.
var basic8 = [8]colorutil.RGB{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 0, B: 0},
	{R: 0, G: 205, B: 0},
	{R: 205, G: 205, B: 0},
	{R: 0, G: 0, B: 238},
	{R: 205, G: 0, B: 205},
	{R: 0, G: 205, B: 205},
	{R: 229, G: 229, B: 229},
}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// swatchMinContrast is the ratio the scheme's own text color must reach on a
// swatch before it is kept (WCAG AA for normal text).
const swatchMinContrast = 4.5

// Swatch paints bg as the background. The text keeps the scheme's foreground
// while it stays readable on bg and switches to black or white otherwise.
// The color is reduced to what profile can show.
func Swatch(bg colorutil.RGB, profile Profile, scheme Scheme) Style {
	switch profile {
	case ProfileTrueColor:
		fg := swatchText(bg, scheme)
		bgRGB := [3]uint8{bg.R, bg.G, bg.B}
		fgRGB := [3]uint8{fg.R, fg.G, fg.B}
		return Style{BGTrue: &bgRGB, FGTrue: &fgRGB}
	case ProfileANSI256:
		idx := rgbToANSI256(bg.R, bg.G, bg.B)
		fg := 16
		if swatchText(bg, scheme) != (colorutil.RGB{}) {
			fg = 231
		}
		return Style{BG256: &idx, FG256: &fg}
	default:
		idx := nearestBasic(bg)
		fg := 0
		if swatchText(basic8[idx], scheme) != (colorutil.RGB{}) {
			fg = 7
		}
		return Style{BGBasic: &idx, FGBasic: &fg}
	}
}

func swatchText(bg colorutil.RGB, scheme Scheme) colorutil.RGB {
	return colorutil.EnsureContrast(scheme.Foreground(), bg, swatchMinContrast)
}

func nearestBasic(c colorutil.RGB) int {
	best, bestDist := 0, -1.0
	for i, candidate := range basic8 {
		d := c.DeltaE(candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
