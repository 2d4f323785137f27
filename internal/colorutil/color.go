package colorutil

import (
	"errors"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColorFormat is returned for input that is neither a hex color nor
// a CSS keyword.
var ErrInvalidColorFormat = errors.New("invalid color format")

type RGB struct {
	R uint8
	G uint8
	B uint8
}

// HSL holds hue in [0,360], saturation and lightness in [0,100].
type HSL struct {
	H float64
	S float64
	L float64
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// ParseHex decodes #rrggbb, #rgb or the same forms without the leading '#'.
func ParseHex(s string) (RGB, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	raw = strings.TrimPrefix(raw, "#")
	if len(raw) != 3 && len(raw) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	for _, r := range raw {
		if !isHexDigit(r) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
	}
	c, err := colorful.Hex("#" + raw)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// ParseColor resolves a CSS keyword first and falls back to hex.
func ParseColor(s string) (RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	return ParseHex(s)
}

// NormalizeHex returns the lower-case #rrggbb form of a hex color or keyword.
func NormalizeHex(s string) (string, error) {
	rgb, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Channels returns the channels in R, G, B order.
func (c RGB) Channels() [3]Channel {
	return [3]Channel{Channel(c.R), Channel(c.G), Channel(c.B)}
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// HSL converts to hue/saturation/lightness rounded to whole units, which is
// the representation the lightness search perturbs.
func (c RGB) HSL() HSL {
	h, s, l := c.toColorful().Hsl()
	return HSL{H: math.Round(h), S: math.Round(s * 100), L: math.Round(l * 100)}
}

// DeltaE returns the CIEDE2000 distance between two colors on the usual
// 0-100 lightness scale (go-colorful reports it on 0-1).
func (c RGB) DeltaE(other RGB) float64 {
	return c.toColorful().DistanceCIEDE2000(other.toColorful()) * 100
}

// RGB converts back to 8-bit channels, rounding each channel.
func (h HSL) RGB() RGB {
	r, g, b := colorful.Hsl(h.H, h.S/100, h.L/100).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func (h HSL) Hex() string {
	return h.RGB().Hex()
}

// WithLightness returns a copy with only the lightness replaced.
func (h HSL) WithLightness(l float64) HSL {
	h.L = l
	return h
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
