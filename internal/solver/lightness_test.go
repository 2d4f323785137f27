package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/phyten/lumaramp/internal/colorutil"
)

func TestSolveLuminanceKnownResults(t *testing.T) {
	cases := []struct {
		color  string
		target float64
		want   string
	}{
		{"#ffffff", 0, "#000000"},
		{"#ffffff", 1, "#ffffff"},
		{"#ffffff", 0.5395, "#c2c2c2"},
		{"#ff00ff", 0.5061, "#ff97ff"},
		{"#0000ff", 0.8, "#e5e5ff"},
		{"#123456", 0.6, "#afcfee"},
		{"#FF00FF", 0.2, "#db00db"},
		{"#00ffff", 0.1, "#006464"},
	}
	for _, tc := range cases {
		got, err := SolveLuminance(tc.color, tc.target, Options{})
		if err != nil {
			t.Fatalf("SolveLuminance(%s, %v) unexpected error: %v", tc.color, tc.target, err)
		}
		if got != tc.want {
			t.Fatalf("SolveLuminance(%s, %v)=%s want %s", tc.color, tc.target, got, tc.want)
		}
	}
}

func TestSolveLuminanceIsIdempotent(t *testing.T) {
	cases := []struct {
		color  string
		target float64
	}{
		{"#ffffff", 0.5395},
		{"#ff00ff", 0.5061},
		{"#0000ff", 0.8},
		{"#123456", 0.6},
	}
	for _, tc := range cases {
		first, err := SolveLuminance(tc.color, tc.target, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := SolveLuminance(first, tc.target, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Fatalf("solving %s again moved it to %s", first, second)
		}
	}
}

func TestSolveLuminancePreservesHueAndSaturation(t *testing.T) {
	cases := []struct {
		color string
		want  string
	}{
		{"#ff00ff", "#ff70ff"},
		{"#123456", "#79aee3"},
		{"#397f3e", "#65ba6b"},
		{"#0000ff", "#a1a1ff"},
	}
	for _, tc := range cases {
		got, err := SolveLuminance(tc.color, 0.4, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tc.want {
			t.Fatalf("SolveLuminance(%s, 0.4)=%s want %s", tc.color, got, tc.want)
		}
		in, _ := colorutil.ParseHex(tc.color)
		out, _ := colorutil.ParseHex(got)
		if in.HSL().H != out.HSL().H || in.HSL().S != out.HSL().S {
			t.Fatalf("%s -> %s changed hue or saturation: %+v vs %+v", tc.color, got, in.HSL(), out.HSL())
		}
		l, _ := colorutil.Luminance(got)
		if math.Abs(l-0.4) > 0.03 {
			t.Fatalf("%s luminance %.4f not near 0.4", got, l)
		}
	}
}

func TestSolveLuminanceRespectsAttemptBudget(t *testing.T) {
	got, err := SolveLuminance("#6688aa", 0.3, Options{MaxAttempts: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#ffffff" {
		t.Fatalf("one attempt should stop after the first jump, got %s", got)
	}
	steps := 0
	_, err = SolveLuminance("#6688aa", 0.3, Options{MaxAttempts: 3, Trace: func(Step) { steps++ }})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steps > 3 {
		t.Fatalf("trace saw %d steps, budget was 3", steps)
	}
}

func TestSolveLuminanceTraceHalvesJumpEveryTwoAttempts(t *testing.T) {
	var steps []Step
	_, err := SolveLuminance("#ffffff", 0.5395, Options{Trace: func(s Step) { steps = append(steps, s) }})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) < 3 {
		t.Fatalf("expected several steps, got %d", len(steps))
	}
	for _, s := range steps {
		want := 100 / math.Pow(2, float64(s.Attempt)/2+1)
		if math.Abs(math.Abs(s.Jump)-want) > 1e-9 {
			t.Fatalf("attempt %d jump %v want magnitude %v", s.Attempt, s.Jump, want)
		}
		if (s.Luminance > s.Target) != (s.Jump < 0) {
			t.Fatalf("attempt %d moved the wrong way: luminance %v target %v jump %v", s.Attempt, s.Luminance, s.Target, s.Jump)
		}
	}
	if steps[0].Jump != -50 {
		t.Fatalf("first jump from white should be -50, got %v", steps[0].Jump)
	}
}

func TestSolveLuminanceValidation(t *testing.T) {
	cases := []struct {
		name   string
		color  string
		target float64
		opts   Options
		want   error
	}{
		{"negativeTarget", "#ffffff", -0.1, Options{}, ErrInvalidArgument},
		{"targetAboveOne", "#ffffff", 1.2, Options{}, ErrInvalidArgument},
		{"nanTarget", "#ffffff", math.NaN(), Options{}, ErrInvalidArgument},
		{"negativeAttempts", "#ffffff", 0.5, Options{MaxAttempts: -1}, ErrInvalidArgument},
		{"badColor", "#xyz", 0.5, Options{}, colorutil.ErrInvalidColorFormat},
	}
	for _, tc := range cases {
		_, err := SolveLuminance(tc.color, tc.target, tc.opts)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: error=%v want %v", tc.name, err, tc.want)
		}
	}
}

func TestSolveLuminanceSettlesOnRoundedFixedPoint(t *testing.T) {
	got, err := SolveLuminance("#b83220", 0.825, Options{})
	if err != nil {
		t.Fatalf("SolveLuminance: %v", err)
	}
	if got != "#fbebe9" {
		t.Fatalf("SolveLuminance(#b83220, 0.825) = %s, want #fbebe9", got)
	}
	l, err := colorutil.Luminance(got)
	if err != nil {
		t.Fatalf("Luminance: %v", err)
	}
	if math.Abs(l-0.825) < 0.03 || math.Abs(l-0.858) > 0.001 {
		t.Fatalf("luminance = %.4f, want the 0.858 fixed point", l)
	}
}

func TestBasisAtOnlyMovesLightness(t *testing.T) {
	b := NewBasis(colorutil.RGB{R: 0x12, G: 0x34, B: 0x56})
	start := colorutil.RGB{R: 0x12, G: 0x34, B: 0x56}.HSL()
	got := b.At(80)
	if got.H != start.H || got.S != start.S || got.L != 80 {
		t.Fatalf("At(80) = %+v, basis %+v", got, start)
	}
}
