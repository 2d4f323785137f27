package solver

import (
	"fmt"
	"math"
	"strings"

	"github.com/phyten/lumaramp/internal/colorutil"
)

type Direction int

const (
	// Auto goes darker on light bases and brighter on dark ones.
	Auto Direction = iota
	Asc
	Desc
)

const (
	// LightBaseThreshold is the base luminance above which Auto searches darker.
	LightBaseThreshold = 0.5
	// RatioStep is added to the requested ratio after each miss.
	RatioStep = 0.05
	// DefaultContrastAttempts bounds both the driver retries and each inner search.
	DefaultContrastAttempts = 10

	MinRatio = 1.0
	MaxRatio = 21.0
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Auto, fmt.Errorf("%w: direction must be auto, asc or desc: %q", ErrInvalidArgument, s)
}

func (d Direction) String() string {
	switch d {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	default:
		return "auto"
	}
}

type ContrastOptions struct {
	Direction Direction
	// MaxAttempts caps the driver retries and is also passed to every inner
	// search. Zero selects DefaultContrastAttempts.
	MaxAttempts int
	Trace       func(Step)
}

// targetLuminance returns the luminance that has ratio against baseLuminance
// in the requested direction, clamped into [0,1].
func (d Direction) targetLuminance(baseLuminance, ratio float64) float64 {
	var t float64
	switch d {
	case Asc:
		t = colorutil.NextLuminanceByContrastRatio(baseLuminance, ratio)
	case Desc:
		t = colorutil.PrevLuminanceByContrastRatio(baseLuminance, ratio)
	default:
		if baseLuminance > LightBaseThreshold {
			t = colorutil.PrevLuminanceByContrastRatio(baseLuminance, ratio)
		} else {
			t = colorutil.NextLuminanceByContrastRatio(baseLuminance, ratio)
		}
	}
	return clamp(t, 0, 1)
}

// SolveContrast adjusts the lightness of color until its contrast against
// base reaches ratio. Each miss raises the working ratio by RatioStep and
// searches again from the original color. When the budget runs out the last
// candidate is returned even if it falls short.
func SolveContrast(color, base string, ratio float64, opts ContrastOptions) (string, error) {
	if math.IsNaN(ratio) || ratio < MinRatio || ratio > MaxRatio {
		return "", fmt.Errorf("%w: contrast ratio %v outside [%v,%v]", ErrInvalidArgument, ratio, MinRatio, MaxRatio)
	}
	limit, err := resolveAttempts(opts.MaxAttempts, DefaultContrastAttempts)
	if err != nil {
		return "", err
	}
	start, err := colorutil.ParseColor(color)
	if err != nil {
		return "", err
	}
	baseRGB, err := colorutil.ParseColor(base)
	if err != nil {
		return "", err
	}

	basis := NewBasis(start)
	baseLuminance := colorutil.LuminanceRGB(baseRGB)
	working := ratio
	for attempt := 0; ; attempt++ {
		target := opts.Direction.targetLuminance(baseLuminance, working)
		candidate := search(basis, start, target, limit, attempt, opts.Trace)
		achieved := colorutil.ContrastRatioLuminance(colorutil.LuminanceRGB(candidate), baseLuminance)
		if achieved >= ratio || attempt > limit {
			return candidate.Hex(), nil
		}
		working += RatioStep
	}
}
