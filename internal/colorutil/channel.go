package colorutil

import "math"

// Channel is one 8-bit color channel. The fractional form is value/255.
type Channel uint8

// ChannelFromPercent builds a channel from a fraction in [0,1], rounding to
// the nearest integer value. Out-of-range fractions are clamped.
func ChannelFromPercent(p float64) Channel {
	if math.IsNaN(p) || p <= 0 {
		return 0
	}
	if p >= 1 {
		return 255
	}
	return Channel(math.Round(p * 255))
}

func (c Channel) Value() int {
	return int(c)
}

func (c Channel) Percent() float64 {
	return float64(c) / 255
}
