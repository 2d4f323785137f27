package solver

import (
	"github.com/phyten/lumaramp/internal/colorutil"
)

// Report describes a solve result for display and export.
type Report struct {
	Input      string   `json:"input" yaml:"input" toml:"input"`
	Base       string   `json:"base,omitempty" yaml:"base,omitempty" toml:"base,omitempty"`
	Target     float64  `json:"target" yaml:"target" toml:"target"`
	Result     string   `json:"result" yaml:"result" toml:"result"`
	Luminance  float64  `json:"luminance" yaml:"luminance" toml:"luminance"`
	Contrast   *float64 `json:"contrast,omitempty" yaml:"contrast,omitempty" toml:"contrast,omitempty"`
	DeltaE     float64  `json:"delta_e" yaml:"delta_e" toml:"delta_e"`
	Hue        float64  `json:"hue" yaml:"hue" toml:"hue"`
	Saturation float64  `json:"saturation" yaml:"saturation" toml:"saturation"`
}

// NewReport measures result against input. When base is non-empty the
// contrast against it is included.
func NewReport(input, result, base string, target float64) (Report, error) {
	in, err := colorutil.ParseColor(input)
	if err != nil {
		return Report{}, err
	}
	out, err := colorutil.ParseColor(result)
	if err != nil {
		return Report{}, err
	}
	hsl := out.HSL()
	r := Report{
		Input:      in.Hex(),
		Target:     target,
		Result:     out.Hex(),
		Luminance:  colorutil.LuminanceRGB(out),
		DeltaE:     in.DeltaE(out),
		Hue:        hsl.H,
		Saturation: hsl.S,
	}
	if base != "" {
		b, err := colorutil.ParseColor(base)
		if err != nil {
			return Report{}, err
		}
		cr := colorutil.ContrastRatioRGB(out, b)
		r.Base = b.Hex()
		r.Contrast = &cr
	}
	return r, nil
}
