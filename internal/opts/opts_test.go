package opts

import (
	"errors"
	"math"
	"net/url"
	"testing"

	"github.com/phyten/lumaramp/internal/colorutil"
	"github.com/phyten/lumaramp/internal/solver"
)

func TestParseBoolVariants(t *testing.T) {
	trueVals := []string{"1", "true", "TRUE", "yes", "On"}
	falseVals := []string{"0", "false", "FALSE", "no", "OFF"}

	for _, tc := range trueVals {
		t.Run("true/"+tc, func(t *testing.T) {
			got, err := ParseBool(tc, "flag")
			if err != nil {
				t.Fatalf("ParseBool(%q) error: %v", tc, err)
			}
			if !got {
				t.Fatalf("ParseBool(%q) = false, want true", tc)
			}
		})
	}

	for _, tc := range falseVals {
		t.Run("false/"+tc, func(t *testing.T) {
			got, err := ParseBool(tc, "flag")
			if err != nil {
				t.Fatalf("ParseBool(%q) error: %v", tc, err)
			}
			if got {
				t.Fatalf("ParseBool(%q) = true, want false", tc)
			}
		})
	}

	if _, err := ParseBool("maybe", "flag"); err == nil {
		t.Fatal("ParseBool should reject unknown values")
	}
}

func TestParseIntInRange(t *testing.T) {
	got, err := ParseIntInRange("42", "jobs", 1, 64)
	if err != nil {
		t.Fatalf("ParseIntInRange error: %v", err)
	}
	if got != 42 {
		t.Fatalf("ParseIntInRange = %d, want 42", got)
	}

	if _, err := ParseIntInRange("-1", "max_attempts", 0, math.MinInt); err == nil {
		t.Fatal("ParseIntInRange should reject negative values when min=0")
	}

	if _, err := ParseIntInRange("65", "jobs", 1, 64); err == nil {
		t.Fatal("ParseIntInRange should reject values above max")
	}
}

func TestParseFloatInRange(t *testing.T) {
	got, err := ParseFloatInRange(" 0.25 ", "luminance", 0, 1)
	if err != nil {
		t.Fatalf("ParseFloatInRange error: %v", err)
	}
	if got != 0.25 {
		t.Fatalf("ParseFloatInRange = %v, want 0.25", got)
	}
	for _, raw := range []string{"", "abc", "NaN", "Inf", "1.01", "-0.1"} {
		if _, err := ParseFloatInRange(raw, "luminance", 0, 1); !errors.Is(err, solver.ErrInvalidArgument) {
			t.Fatalf("ParseFloatInRange(%q) error=%v want ErrInvalidArgument", raw, err)
		}
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	o := Defaults()
	o.Colors = []string{" #ABC ", "", "white"}
	o.Base = "Black"
	o.Direction = "DESC"
	o.Output = "MD"
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatalf("NormalizeAndValidate error: %v", err)
	}
	if len(o.Colors) != 2 || o.Colors[0] != "#aabbcc" || o.Colors[1] != "#ffffff" {
		t.Fatalf("Colors normalized incorrectly: %q", o.Colors)
	}
	if o.Base != "#000000" {
		t.Fatalf("Base normalized incorrectly: %q", o.Base)
	}
	if o.Dir != solver.Desc || o.Direction != "desc" {
		t.Fatalf("Direction normalized incorrectly: %q %v", o.Direction, o.Dir)
	}
	if o.Output != "markdown" {
		t.Fatalf("Output normalized incorrectly: %q", o.Output)
	}

	bad := Defaults()
	bad.Direction = "sideways"
	if err := NormalizeAndValidate(&bad); err == nil {
		t.Fatal("NormalizeAndValidate should fail for invalid direction")
	}

	jobs := Defaults()
	jobs.Jobs = 1024
	if err := NormalizeAndValidate(&jobs); !errors.Is(err, solver.ErrInvalidArgument) {
		t.Fatalf("NormalizeAndValidate should fail for invalid jobs, got %v", err)
	}

	zero := Defaults()
	zero.MaxAttempts = 0
	if err := NormalizeAndValidate(&zero); !errors.Is(err, solver.ErrInvalidArgument) {
		t.Fatalf("NormalizeAndValidate should reject max_attempts=0, got %v", err)
	}

	color := Defaults()
	color.Colors = []string{"#12"}
	if err := NormalizeAndValidate(&color); !errors.Is(err, colorutil.ErrInvalidColorFormat) {
		t.Fatalf("NormalizeAndValidate should report bad colors, got %v", err)
	}
}

func TestApplyWebQuery(t *testing.T) {
	def := Defaults()
	q := url.Values{}
	q.Add("color", "ff0000,00ff00")
	q.Add("color", "blue")
	q.Set("base", "ffffff")
	q.Set("luminance", "0.3")
	q.Set("ratio", "7")
	q.Set("direction", "ASC")
	q.Set("jobs", "4")
	q.Set("max_attempts", "30")
	q.Set("name", " brand ")

	got, err := ApplyWebQuery(def, q)
	if err != nil {
		t.Fatalf("ApplyWebQuery error: %v", err)
	}
	if len(got.Colors) != 3 {
		t.Fatalf("Colors mismatch: %q", got.Colors)
	}
	if got.Luminance == nil || *got.Luminance != 0.3 {
		t.Fatalf("Luminance mismatch: %v", got.Luminance)
	}
	if got.Ratio != 7 || got.Jobs != 4 || got.MaxAttempts != 30 {
		t.Fatalf("numeric mismatch: %+v", got)
	}
	if got.Name != "brand" {
		t.Fatalf("Name mismatch: %q", got.Name)
	}
	if err := NormalizeAndValidate(&got); err != nil {
		t.Fatalf("NormalizeAndValidate error: %v", err)
	}
	if got.Dir != solver.Asc || got.Base != "#ffffff" || got.Colors[0] != "#ff0000" {
		t.Fatalf("normalized mismatch: %+v", got)
	}
	if co := got.ContrastOptions(); co.Direction != solver.Asc || co.MaxAttempts != solver.DefaultContrastAttempts {
		t.Fatalf("ContrastOptions mismatch: %+v", co)
	}
	if ro := got.RampOptions(); ro.Name != "brand" || ro.Jobs != 4 || ro.MaxAttempts != 30 {
		t.Fatalf("RampOptions mismatch: %+v", ro)
	}

	for key, raw := range map[string]string{"ratio": "30", "luminance": "2", "jobs": "0", "max_attempts": "x"} {
		bad := url.Values{}
		bad.Set(key, raw)
		if _, err := ApplyWebQuery(def, bad); !errors.Is(err, solver.ErrInvalidArgument) {
			t.Fatalf("%s=%s should be rejected, got %v", key, raw, err)
		}
	}
}

func TestNormalizeOutput(t *testing.T) {
	for _, v := range []string{"table", "JSON", "ndjson", "csv", "markdown", "yml", "toml"} {
		if _, err := NormalizeOutput(v); err != nil {
			t.Fatalf("NormalizeOutput(%q) error: %v", v, err)
		}
	}
	if _, err := NormalizeOutput("tsv"); err == nil {
		t.Fatal("NormalizeOutput should reject tsv")
	}
}

func TestSplitMulti(t *testing.T) {
	vals := []string{"a,b", " c ", "", ",d"}
	got := SplitMulti(vals)
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("SplitMulti length mismatch: got=%d want=%d", len(got), len(want))
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("SplitMulti mismatch at %d: got=%q want=%q", i, got[i], v)
		}
	}
}
