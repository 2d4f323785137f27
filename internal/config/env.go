package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/phyten/lumaramp/internal/opts"
	"github.com/phyten/lumaramp/internal/ramp"
)

// ExplicitPathEnv names the variable that points at a config file.
const ExplicitPathEnv = "LUMARAMP_CONFIG"

func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setFloat := func(target **float64, key string, min, max float64) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseFloatInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setInt(&cfg.Solver.MaxAttempts, "LUMARAMP_MAX_ATTEMPTS", 1, math.MaxInt)
	setInt(&cfg.Solver.ContrastAttempts, "LUMARAMP_CONTRAST_ATTEMPTS", 1, math.MaxInt)
	setString(&cfg.Solver.Direction, "LUMARAMP_DIRECTION")
	setFloat(&cfg.Solver.Ratio, "LUMARAMP_RATIO", 1, 21)
	// Allow large values here and rely on NormalizeAndValidate to enforce the
	// canonical upper bound so every input path shares the same error message.
	setInt(&cfg.Solver.Jobs, "LUMARAMP_JOBS", 0, math.MaxInt)

	setString(&cfg.UI.Output, "LUMARAMP_OUTPUT")
	setString(&cfg.UI.Color, "LUMARAMP_COLOR")
	setString(&cfg.UI.Base, "LUMARAMP_BASE")
	setBool(&cfg.UI.Swatches, "LUMARAMP_SWATCHES")

	if raw := strings.TrimSpace(getenv("LUMARAMP_RAMPS")); raw != "" {
		specs, err := parseRampList(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("LUMARAMP_RAMPS: %w", err))
		} else {
			cfg.Ramps = &specs
		}
	}

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}

// parseRampList reads "name=color,name=color".
func parseRampList(raw string) ([]ramp.Spec, error) {
	var out []ramp.Spec
	for _, part := range opts.SplitMulti([]string{raw}) {
		name, base, ok := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		base = strings.TrimSpace(base)
		if !ok || name == "" || base == "" {
			return nil, fmt.Errorf("expected name=color, got %q", part)
		}
		out = append(out, ramp.Spec{Name: name, Base: base})
	}
	return out, nil
}
