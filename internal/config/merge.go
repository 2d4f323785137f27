package config

import (
	"strings"

	"github.com/phyten/lumaramp/internal/ramp"
)

func boolPtr(v bool) *bool {
	b := v
	return &b
}

func MergeSolver(base SolverSettings, layers ...SolverConfig) SolverSettings {
	out := base
	for _, layer := range layers {
		out.MaxAttempts = Resolve(out.MaxAttempts, layer.MaxAttempts)
		out.ContrastAttempts = Resolve(out.ContrastAttempts, layer.ContrastAttempts)
		out.Direction = ResolveAndTrim(out.Direction, layer.Direction)
		out.Ratio = Resolve(out.Ratio, layer.Ratio)
		out.Jobs = Resolve(out.Jobs, layer.Jobs)
	}
	if strings.TrimSpace(out.Direction) == "" {
		out.Direction = "auto"
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Base = ResolveAndTrim(out.Base, layer.Base)
		out.Swatches = Resolve(out.Swatches, layer.Swatches)
	}
	if out.Output == "" {
		out.Output = "table"
	}
	if out.Color == "" {
		out.Color = "auto"
	}
	return out
}

// MergeRamps keeps the last layer that defines ramps; lists are not combined.
func MergeRamps(base []ramp.Spec, layers ...Config) []ramp.Spec {
	out := cloneSpecs(base)
	for _, layer := range layers {
		if layer.Ramps != nil {
			out = cloneSpecs(*layer.Ramps)
		}
	}
	return out
}
