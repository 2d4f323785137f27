package config

import (
	"github.com/phyten/lumaramp/internal/opts"
	"github.com/phyten/lumaramp/internal/ramp"
)

type SolverConfig struct {
	MaxAttempts      *int     `yaml:"max_attempts" toml:"max_attempts" json:"max_attempts"`
	ContrastAttempts *int     `yaml:"contrast_attempts" toml:"contrast_attempts" json:"contrast_attempts"`
	Direction        *string  `yaml:"direction" toml:"direction" json:"direction"`
	Ratio            *float64 `yaml:"ratio" toml:"ratio" json:"ratio"`
	Jobs             *int     `yaml:"jobs" toml:"jobs" json:"jobs"`
}

type UIConfig struct {
	Output   *string `yaml:"output" toml:"output" json:"output"`
	Color    *string `yaml:"color" toml:"color" json:"color"`
	Base     *string `yaml:"base" toml:"base" json:"base"`
	Swatches *bool   `yaml:"swatches" toml:"swatches" json:"swatches"`
}

type Config struct {
	Solver SolverConfig `yaml:"solver" toml:"solver" json:"solver"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
	Ramps  *[]ramp.Spec `yaml:"ramps" toml:"ramps" json:"ramps"`
}

type SolverSettings struct {
	MaxAttempts      int
	ContrastAttempts int
	Direction        string
	Ratio            float64
	Jobs             int
}

type UISettings struct {
	Output string
	Color  string
	// Base is the contrast base used when --base is omitted. Empty means the
	// terminal scheme decides.
	Base     string
	Swatches bool
}

func SolverSettingsFromOptions(o opts.Options) SolverSettings {
	return SolverSettings{
		MaxAttempts:      o.MaxAttempts,
		ContrastAttempts: o.ContrastAttempts,
		Direction:        o.Direction,
		Ratio:            o.Ratio,
		Jobs:             o.Jobs,
	}
}

func (s SolverSettings) ApplyToOptions(o *opts.Options) {
	if o == nil {
		return
	}
	o.MaxAttempts = s.MaxAttempts
	o.ContrastAttempts = s.ContrastAttempts
	o.Direction = s.Direction
	o.Ratio = s.Ratio
	o.Jobs = s.Jobs
}

func DefaultUISettings() UISettings {
	return UISettings{
		Output:   "table",
		Color:    "auto",
		Base:     "",
		Swatches: true,
	}
}

func cloneSpecs(in []ramp.Spec) []ramp.Spec {
	if len(in) == 0 {
		return nil
	}
	out := make([]ramp.Spec, len(in))
	copy(out, in)
	return out
}
