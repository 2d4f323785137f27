package config

import (
	"fmt"
	"strings"

	"github.com/phyten/lumaramp/internal/colorutil"
	"github.com/phyten/lumaramp/internal/opts"
	"github.com/phyten/lumaramp/internal/ramp"
)

func CanonicalizeColorMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color: %s", raw)
	}
}

// CanonicalizeBase normalizes the default contrast base. Empty stays empty.
func CanonicalizeBase(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	hex, err := colorutil.NormalizeHex(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base: %w", err)
	}
	return hex, nil
}

func NormalizeUI(values UISettings) (UISettings, error) {
	var err error
	values.Output, err = opts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	values.Color, err = CanonicalizeColorMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Base, err = CanonicalizeBase(values.Base)
	if err != nil {
		return values, err
	}
	return values, nil
}

// NormalizeRamps trims names, normalizes base colors and rejects duplicates.
func NormalizeRamps(specs []ramp.Spec) ([]ramp.Spec, error) {
	out := make([]ramp.Spec, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))
	for i, spec := range specs {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return nil, fmt.Errorf("ramps[%d]: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("ramps: duplicate name %q", name)
		}
		seen[name] = struct{}{}
		hex, err := colorutil.NormalizeHex(spec.Base)
		if err != nil {
			return nil, fmt.Errorf("ramps.%s: %w", name, err)
		}
		out = append(out, ramp.Spec{Name: name, Base: hex})
	}
	return out, nil
}
