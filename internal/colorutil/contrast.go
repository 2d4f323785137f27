package colorutil

import "math"

const (
	// linearThreshold is the sRGB fraction below which the transfer curve is linear.
	linearThreshold = 0.03928
	// unweightedThreshold is the linearized value at linearThreshold, so the
	// inverse switches branches exactly where the forward curve does.
	unweightedThreshold = linearThreshold / 12.92
)

var channelLuminanceWeights = [3]float64{0.2126, 0.7152, 0.0722}

// UnweightedChannelLuminance linearizes one channel with the sRGB transfer curve.
func UnweightedChannelLuminance(c Channel) float64 {
	p := c.Percent()
	if p <= linearThreshold {
		return p / 12.92
	}
	return math.Pow((p+0.055)/1.055, 2.4)
}

// ChannelValueFromUnweightedChannelLuminance inverts UnweightedChannelLuminance
// up to rounding of the channel value.
func ChannelValueFromUnweightedChannelLuminance(v float64) Channel {
	var p float64
	if v <= unweightedThreshold {
		p = v * 12.92
	} else {
		p = math.Pow(v, 1/2.4)*1.055 - 0.055
	}
	return ChannelFromPercent(p)
}

func LuminanceRGB(rgb RGB) float64 {
	var l float64
	for i, c := range rgb.Channels() {
		l += UnweightedChannelLuminance(c) * channelLuminanceWeights[i]
	}
	return l
}

// Luminance returns the relative luminance of a hex color or keyword.
func Luminance(color string) (float64, error) {
	rgb, err := ParseColor(color)
	if err != nil {
		return 0, err
	}
	return LuminanceRGB(rgb), nil
}

// ContrastRatioLuminance compares two precomputed luminances. Argument order
// does not matter.
func ContrastRatioLuminance(a, b float64) float64 {
	darker, lighter := a, b
	if darker > lighter {
		darker, lighter = lighter, darker
	}
	return (lighter + 0.05) / (darker + 0.05)
}

func ContrastRatioRGB(a, b RGB) float64 {
	return ContrastRatioLuminance(LuminanceRGB(a), LuminanceRGB(b))
}

// ContrastRatio parses both colors and returns their contrast ratio in [1,21].
func ContrastRatio(a, b string) (float64, error) {
	ca, err := ParseColor(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseColor(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatioRGB(ca, cb), nil
}

// NextLuminanceByContrastRatio returns the brighter luminance that has the
// given contrast ratio against a darker anchor.
func NextLuminanceByContrastRatio(luminance, ratio float64) float64 {
	return luminance*ratio + ratio/20 - 1.0/20
}

// PrevLuminanceByContrastRatio returns the darker luminance that has the
// given contrast ratio against a brighter anchor.
func PrevLuminanceByContrastRatio(luminance, ratio float64) float64 {
	return (luminance+1.0/20)/ratio - 1.0/20
}

func AutoTextColor(bg RGB) RGB {
	crBlack := ContrastRatioRGB(black, bg)
	crWhite := ContrastRatioRGB(white, bg)
	if crBlack >= 4.5 || crBlack >= crWhite {
		return black
	}
	return white
}

func EnsureContrast(fg, bg RGB, minRatio float64) RGB {
	if minRatio <= 0 {
		minRatio = 4.5
	}
	if ContrastRatioRGB(fg, bg) >= minRatio {
		return fg
	}
	return AutoTextColor(bg)
}
