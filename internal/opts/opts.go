package opts

import (
	"fmt"
	"math"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/phyten/lumaramp/internal/colorutil"
	"github.com/phyten/lumaramp/internal/ramp"
	"github.com/phyten/lumaramp/internal/solver"
)

const (
	maxJobs     = 64
	maxAttempts = 1000

	// DefaultRatio is the WCAG AA threshold for body text.
	DefaultRatio = 4.5
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Options carries one request worth of solver input, shared by CLI and Web.
type Options struct {
	Colors           []string
	Base             string
	Name             string
	Luminance        *float64
	Ratio            float64
	Direction        string
	Dir              solver.Direction `json:"-"`
	MaxAttempts      int
	ContrastAttempts int
	Jobs             int
	Output           string
}

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults() Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return Options{
		Ratio:            DefaultRatio,
		Direction:        "auto",
		MaxAttempts:      solver.DefaultMaxAttempts,
		ContrastAttempts: solver.DefaultContrastAttempts,
		Jobs:             jobs,
		Output:           "table",
	}
}

// ApplyWebQuery copies recognised values from the query string into the
// provided options. Validation happens separately via NormalizeAndValidate.
func ApplyWebQuery(def Options, q url.Values) (Options, error) {
	out := def

	if raw := q["color"]; len(raw) > 0 {
		out.Colors = SplitMulti(raw)
	}
	if raw, ok := lastLiteralValue(q["base"]); ok {
		out.Base = raw
	}
	if raw, ok := lastRawValue(q["name"]); ok {
		out.Name = raw
	}
	if raw, ok := lastLiteralValue(q["luminance"]); ok {
		v, err := ParseFloatInRange(raw, "luminance", 0, 1)
		if err != nil {
			return out, err
		}
		out.Luminance = &v
	}
	if raw, ok := lastLiteralValue(q["ratio"]); ok {
		v, err := ParseFloatInRange(raw, "ratio", solver.MinRatio, solver.MaxRatio)
		if err != nil {
			return out, err
		}
		out.Ratio = v
	}
	if raw, ok := lastLiteralValue(q["direction"]); ok {
		out.Direction = raw
	}
	if raw, ok := lastLiteralValue(q["max_attempts"]); ok {
		n, err := ParseIntInRange(raw, "max_attempts", 1, maxAttempts)
		if err != nil {
			return out, err
		}
		out.MaxAttempts = n
	}
	if raw, ok := lastLiteralValue(q["contrast_attempts"]); ok {
		n, err := ParseIntInRange(raw, "contrast_attempts", 1, maxAttempts)
		if err != nil {
			return out, err
		}
		out.ContrastAttempts = n
	}
	if raw, ok := lastLiteralValue(q["jobs"]); ok {
		n, err := ParseIntInRange(raw, "jobs", 1, maxJobs)
		if err != nil {
			return out, err
		}
		out.Jobs = n
	}
	if raw, ok := lastLiteralValue(q["output"]); ok {
		out.Output = raw
	}

	return out, nil
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *Options) error {
	dir, err := solver.ParseDirection(o.Direction)
	if err != nil {
		return fmt.Errorf("invalid --direction: %w", err)
	}
	o.Dir = dir
	o.Direction = dir.String()

	if o.MaxAttempts < 1 || o.MaxAttempts > maxAttempts {
		return invalid("max_attempts must be between 1 and %d", maxAttempts)
	}
	if o.ContrastAttempts < 1 || o.ContrastAttempts > maxAttempts {
		return invalid("contrast_attempts must be between 1 and %d", maxAttempts)
	}
	if o.Jobs < 1 || o.Jobs > maxJobs {
		return invalid("jobs must be between 1 and %d", maxJobs)
	}
	if math.IsNaN(o.Ratio) || o.Ratio < solver.MinRatio || o.Ratio > solver.MaxRatio {
		return invalid("ratio must be between %v and %v", solver.MinRatio, solver.MaxRatio)
	}
	if o.Luminance != nil && (math.IsNaN(*o.Luminance) || *o.Luminance < 0 || *o.Luminance > 1) {
		return invalid("luminance must be between 0 and 1")
	}

	colors := trimSlice(o.Colors)
	for i, c := range colors {
		hex, err := colorutil.NormalizeHex(c)
		if err != nil {
			return err
		}
		colors[i] = hex
	}
	o.Colors = colors

	if strings.TrimSpace(o.Base) != "" {
		hex, err := colorutil.NormalizeHex(o.Base)
		if err != nil {
			return fmt.Errorf("invalid --base: %w", err)
		}
		o.Base = hex
	}
	o.Name = strings.TrimSpace(o.Name)

	if o.Output != "" {
		out, err := NormalizeOutput(o.Output)
		if err != nil {
			return err
		}
		o.Output = out
	}
	return nil
}

// SolverOptions returns the lightness search options.
func (o Options) SolverOptions() solver.Options {
	return solver.Options{MaxAttempts: o.MaxAttempts}
}

// ContrastOptions returns the contrast driver options.
func (o Options) ContrastOptions() solver.ContrastOptions {
	return solver.ContrastOptions{Direction: o.Dir, MaxAttempts: o.ContrastAttempts}
}

// RampOptions returns the ramp generator options.
func (o Options) RampOptions() ramp.Options {
	return ramp.Options{Name: o.Name, Jobs: o.Jobs, MaxAttempts: o.MaxAttempts}
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, invalid("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, invalid("%s must be between %d and %d", key, min, max)
		}
		return 0, invalid("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, invalid("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// ParseFloatInRange parses a decimal and ensures it falls within [min, max].
func ParseFloatInRange(raw, key string, min, max float64) (float64, error) {
	v := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid("invalid number for %s: %q", key, raw)
	}
	if f < min || f > max {
		return 0, invalid("%s must be between %v and %v", key, min, max)
	}
	return f, nil
}

// NormalizeOutput validates and lower-cases the CLI/Web output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "table", "json", "ndjson", "csv", "markdown", "yaml", "toml":
		return v, nil
	case "md":
		return "markdown", nil
	case "yml":
		return "yaml", nil
	}
	return "", invalid("invalid --output: %s", value)
}

// SplitMulti turns repeated query parameters (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{solver.ErrInvalidArgument}, args...)...)
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, invalid("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}

func lastRawValue(vals []string) (string, bool) {
	for i := len(vals) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(vals[i])
		if trimmed == "" {
			continue
		}
		return trimmed, true
	}
	return "", false
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := values[:0]
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
