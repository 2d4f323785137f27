package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/phyten/lumaramp/internal/colorutil"
)

func TestSolveContrastKnownResults(t *testing.T) {
	cases := []struct {
		color, base string
		ratio       float64
		dir         Direction
		want        string
	}{
		{"#ffffff", "#ffffff", 21, Auto, "#000000"},
		{"#0000ff", "#ffffff", 7, Auto, "#2f2fff"},
		{"#6688aa", "#ffffff", 7, Auto, "#405a74"},
		{"#6688aa", "#000000", 7, Auto, "#7e9bb8"},
		{"#6688aa", "#ffffff", 7, Desc, "#405a74"},
		{"#6688aa", "#000000", 7, Asc, "#7e9bb8"},
	}
	for _, tc := range cases {
		got, err := SolveContrast(tc.color, tc.base, tc.ratio, ContrastOptions{Direction: tc.dir})
		if err != nil {
			t.Fatalf("SolveContrast(%s, %s, %v) unexpected error: %v", tc.color, tc.base, tc.ratio, err)
		}
		if got != tc.want {
			t.Fatalf("SolveContrast(%s, %s, %v, %s)=%s want %s", tc.color, tc.base, tc.ratio, tc.dir, got, tc.want)
		}
	}
}

func TestSolveContrastMeetsRatioAgainstLightAndDark(t *testing.T) {
	onWhite, err := SolveContrast("#6688aa", "#ffffff", 7, ContrastOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	onBlack, err := SolveContrast("#6688aa", "#000000", 7, ContrastOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if onWhite == onBlack {
		t.Fatalf("light and dark bases should give different colors, both %s", onWhite)
	}
	for _, pair := range [][2]string{{onWhite, "#ffffff"}, {onBlack, "#000000"}} {
		ratio, err := colorutil.ContrastRatio(pair[0], pair[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ratio < 7 || ratio >= 7.3 {
			t.Fatalf("%s on %s has contrast %.3f, want [7, 7.3)", pair[0], pair[1], ratio)
		}
	}
}

func TestSolveContrastReturnsBestEffortWhenUnreachable(t *testing.T) {
	got, err := SolveContrast("#777777", "#777777", 4.5, ContrastOptions{})
	if err != nil {
		t.Fatalf("non-convergence should not be an error: %v", err)
	}
	if got != "#ffffff" {
		t.Fatalf("got %s want #ffffff", got)
	}
	ratio, _ := colorutil.ContrastRatio(got, "#777777")
	if ratio >= 4.5 {
		t.Fatalf("expected a short contrast, got %.3f", ratio)
	}

	got, err = SolveContrast("#6688aa", "#ffffff", 7, ContrastOptions{Direction: Asc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#ffffff" {
		t.Fatalf("brightening against white should saturate at #ffffff, got %s", got)
	}
}

func TestSolveContrastRetriesWithHigherRatio(t *testing.T) {
	rounds := map[int]bool{}
	_, err := SolveContrast("#777777", "#777777", 4.5, ContrastOptions{
		MaxAttempts: 2,
		Trace:       func(s Step) { rounds[s.Round] = true },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for r := 0; r <= 3; r++ {
		if !rounds[r] {
			t.Fatalf("expected round %d to run, saw %v", r, rounds)
		}
	}
	if rounds[4] {
		t.Fatalf("driver ran past its budget: %v", rounds)
	}
}

func TestSolveContrastValidation(t *testing.T) {
	cases := []struct {
		name        string
		color, base string
		ratio       float64
		opts        ContrastOptions
		want        error
	}{
		{"ratioBelowOne", "#ffffff", "#000000", 0.5, ContrastOptions{}, ErrInvalidArgument},
		{"ratioAbove21", "#ffffff", "#000000", 22, ContrastOptions{}, ErrInvalidArgument},
		{"nanRatio", "#ffffff", "#000000", math.NaN(), ContrastOptions{}, ErrInvalidArgument},
		{"negativeAttempts", "#ffffff", "#000000", 4.5, ContrastOptions{MaxAttempts: -3}, ErrInvalidArgument},
		{"badColor", "nope", "#000000", 4.5, ContrastOptions{}, colorutil.ErrInvalidColorFormat},
		{"badBase", "#ffffff", "#12", 4.5, ContrastOptions{}, colorutil.ErrInvalidColorFormat},
	}
	for _, tc := range cases {
		_, err := SolveContrast(tc.color, tc.base, tc.ratio, tc.opts)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: error=%v want %v", tc.name, err, tc.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	cases := []struct {
		in   string
		want Direction
	}{
		{"", Auto},
		{"auto", Auto},
		{"ASC", Asc},
		{" desc ", Desc},
	}
	for _, tc := range cases {
		got, err := ParseDirection(tc.in)
		if err != nil {
			t.Fatalf("ParseDirection(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDirection(%q)=%v want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestTargetLuminanceIsClamped(t *testing.T) {
	if got := Asc.targetLuminance(1, 21); got != 1 {
		t.Fatalf("Asc target above white should clamp to 1, got %v", got)
	}
	if got := Desc.targetLuminance(0, 21); got != 0 {
		t.Fatalf("Desc target below black should clamp to 0, got %v", got)
	}
	if got := Auto.targetLuminance(0.6, 2); got >= 0.6 {
		t.Fatalf("Auto on a light base should go darker, got %v", got)
	}
	if got := Auto.targetLuminance(0.4, 2); got <= 0.4 {
		t.Fatalf("Auto on a dark base should go brighter, got %v", got)
	}
}

func TestNewReport(t *testing.T) {
	r, err := NewReport("#6688AA", "#405a74", "white", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Input != "#6688aa" || r.Result != "#405a74" || r.Base != "#ffffff" {
		t.Fatalf("unexpected report colors: %+v", r)
	}
	if r.Contrast == nil || *r.Contrast < 7 {
		t.Fatalf("expected contrast >= 7, got %v", r.Contrast)
	}
	if r.Hue != 210 || r.DeltaE <= 0 {
		t.Fatalf("unexpected hue/delta: %+v", r)
	}

	plain, err := NewReport("#ffffff", "#c2c2c2", "", 0.5395)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plain.Contrast != nil || plain.Base != "" {
		t.Fatalf("report without base should omit contrast: %+v", plain)
	}
}
