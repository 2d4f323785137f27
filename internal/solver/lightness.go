package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/phyten/lumaramp/internal/colorutil"
)

// ErrInvalidArgument reports a target, ratio or attempt budget outside its
// accepted range.
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultMaxAttempts bounds the lightness search when Options.MaxAttempts is zero.
const DefaultMaxAttempts = 20

// Step is one iteration of the lightness search.
type Step struct {
	Round     int // contrast driver retry, 0 for a plain luminance solve
	Attempt   int
	Candidate string
	Luminance float64
	Target    float64
	Jump      float64
	Next      string
}

type Options struct {
	// MaxAttempts caps the iterations. Zero selects DefaultMaxAttempts.
	MaxAttempts int
	// Trace, when set, is called once per iteration.
	Trace func(Step)
}

// Basis is the hue and saturation captured from the starting color. Every
// candidate of one search is built from the same basis so rounding in the
// intermediate colors never drifts the hue.
type Basis struct {
	start colorutil.HSL
}

func NewBasis(rgb colorutil.RGB) Basis {
	return Basis{start: rgb.HSL()}
}

// At returns the basis color at lightness l.
func (b Basis) At(l float64) colorutil.HSL {
	return b.start.WithLightness(l)
}

// SolveLuminance searches the lightness axis of color for a color whose
// relative luminance equals target, returning the closest candidate found
// within the attempt budget as lower-case #rrggbb.
//
// The result is best effort. Lightness is read back rounded to whole units,
// so once the step falls below one unit (around attempt 18) the search can
// settle on a fixed point a few hundredths of luminance away from target,
// e.g. #b83220 at 0.825 ends on #fbebe9 (0.858). Callers needing a hard
// tolerance must check the returned color's luminance.
func SolveLuminance(color string, target float64, opts Options) (string, error) {
	if err := checkLuminance(target); err != nil {
		return "", err
	}
	limit, err := resolveAttempts(opts.MaxAttempts, DefaultMaxAttempts)
	if err != nil {
		return "", err
	}
	start, err := colorutil.ParseColor(color)
	if err != nil {
		return "", err
	}
	out := search(NewBasis(start), start, target, limit, 0, opts.Trace)
	return out.Hex(), nil
}

func search(basis Basis, start colorutil.RGB, target float64, limit, round int, trace func(Step)) colorutil.RGB {
	current := start
	for attempt := 0; ; attempt++ {
		luminance := colorutil.LuminanceRGB(current)
		if luminance == target || attempt >= limit {
			return current
		}
		jump := 100.0
		if luminance > target {
			jump = -100.0
		}
		jump /= math.Pow(2, float64(attempt)/2+1)
		l := clamp(current.HSL().L+jump, 0, 100)
		next := basis.At(l).RGB()
		if trace != nil {
			trace(Step{
				Round:     round,
				Attempt:   attempt,
				Candidate: current.Hex(),
				Luminance: luminance,
				Target:    target,
				Jump:      jump,
				Next:      next.Hex(),
			})
		}
		if next == current {
			return current
		}
		current = next
	}
}

func checkLuminance(target float64) error {
	if math.IsNaN(target) || target < 0 || target > 1 {
		return fmt.Errorf("%w: luminance %v outside [0,1]", ErrInvalidArgument, target)
	}
	return nil
}

func resolveAttempts(n, def int) (int, error) {
	switch {
	case n == 0:
		return def, nil
	case n < 0:
		return 0, fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidArgument, n)
	}
	return n, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
