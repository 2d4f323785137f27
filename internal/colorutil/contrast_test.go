package colorutil

import (
	"errors"
	"math"
	"testing"
)

func TestLuminanceReferenceValues(t *testing.T) {
	cases := []struct {
		hex  string
		want float64
	}{
		{"#ff0000", 0.2126},
		{"#00ff00", 0.7152},
		{"#0000ff", 0.0722},
		{"#00ffff", 0.7874},
		{"#ff00ff", 0.2848},
		{"#ffff00", 0.9278},
		{"#000000", 0},
		{"#ffffff", 1},
	}
	for _, tc := range cases {
		got, err := Luminance(tc.hex)
		if err != nil {
			t.Fatalf("Luminance(%s) unexpected error: %v", tc.hex, err)
		}
		if math.Abs(got-tc.want) > 0.00005 {
			t.Fatalf("Luminance(%s)=%.6f want %.4f", tc.hex, got, tc.want)
		}
	}
}

func TestLuminanceExtremesAreExact(t *testing.T) {
	if got, _ := Luminance("#000000"); got != 0 {
		t.Fatalf("black luminance should be exactly 0, got %v", got)
	}
	if got, _ := Luminance("#FFFFFF"); got != 1 {
		t.Fatalf("white luminance should be exactly 1, got %v", got)
	}
}

func TestLuminanceStaysInUnitRange(t *testing.T) {
	for v := 0; v <= 255; v += 5 {
		for _, rgb := range []RGB{{uint8(v), 0, 0}, {0, uint8(v), 0}, {0, 0, uint8(v)}, {uint8(v), uint8(v), uint8(v)}} {
			l := LuminanceRGB(rgb)
			if l < 0 || l > 1 {
				t.Fatalf("luminance of %v out of range: %v", rgb, l)
			}
		}
	}
}

func TestLuminanceIsMonotonicPerChannel(t *testing.T) {
	prev := -1.0
	for v := 0; v <= 255; v++ {
		l := LuminanceRGB(RGB{R: 40, G: uint8(v), B: 200})
		if l < prev {
			t.Fatalf("luminance decreased at g=%d: %v < %v", v, l, prev)
		}
		prev = l
	}
}

func TestChannelValueInvertsUnweightedLuminance(t *testing.T) {
	for v := 0; v <= 255; v++ {
		got := ChannelValueFromUnweightedChannelLuminance(UnweightedChannelLuminance(Channel(v)))
		if diff := got.Value() - v; diff < -1 || diff > 1 {
			t.Fatalf("inverse of channel %d returned %d", v, got.Value())
		}
	}
}

func TestContrastRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"ffffff", "000000", 21},
		{"ffffff", "f0f0f0", 1.13},
		{"0000ff", "000000", 2.44},
		{"white", "black", 21},
	}
	for _, tc := range cases {
		ratio, err := ContrastRatio(tc.a, tc.b)
		if err != nil {
			t.Fatalf("ContrastRatio(%s,%s) unexpected error: %v", tc.a, tc.b, err)
		}
		reversed, err := ContrastRatio(tc.b, tc.a)
		if err != nil {
			t.Fatalf("ContrastRatio(%s,%s) unexpected error: %v", tc.b, tc.a, err)
		}
		if math.Abs(ratio-tc.want) > 0.02 {
			t.Fatalf("contrast between %s and %s = %.3f want %.2f", tc.a, tc.b, ratio, tc.want)
		}
		if ratio != reversed {
			t.Fatalf("contrast not symmetric: %v vs %v", ratio, reversed)
		}
	}
}

func TestContrastRatioLuminanceAcceptsZero(t *testing.T) {
	if got := ContrastRatioLuminance(0, 1); got != 21 {
		t.Fatalf("ContrastRatioLuminance(0,1)=%v want 21", got)
	}
	if got := ContrastRatioLuminance(0, 0); got != 1 {
		t.Fatalf("ContrastRatioLuminance(0,0)=%v want 1", got)
	}
}

func TestLuminanceByContrastRatioInvertsContrast(t *testing.T) {
	cases := []struct {
		luminance, ratio float64
	}{
		{0, 4.5},
		{0.05, 7},
		{0.2, 3},
	}
	for _, tc := range cases {
		next := NextLuminanceByContrastRatio(tc.luminance, tc.ratio)
		if got := ContrastRatioLuminance(tc.luminance, next); math.Abs(got-tc.ratio) > 1e-9 {
			t.Fatalf("next luminance %.4f gives ratio %.6f want %.2f", next, got, tc.ratio)
		}
	}
	for _, tc := range []struct{ luminance, ratio float64 }{{1, 4.5}, {0.8, 7}, {0.5, 2}} {
		prev := PrevLuminanceByContrastRatio(tc.luminance, tc.ratio)
		if got := ContrastRatioLuminance(tc.luminance, prev); math.Abs(got-tc.ratio) > 1e-9 {
			t.Fatalf("prev luminance %.4f gives ratio %.6f want %.2f", prev, got, tc.ratio)
		}
	}
}

func TestLuminanceRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gggggg", "#1234567", "not-a-color"} {
		if _, err := Luminance(in); !errors.Is(err, ErrInvalidColorFormat) {
			t.Fatalf("Luminance(%q) error=%v want ErrInvalidColorFormat", in, err)
		}
	}
}

func TestAutoTextColor(t *testing.T) {
	cases := []struct {
		name string
		bg   RGB
		want RGB
	}{
		{"lightBackground", RGB{255, 247, 237}, black},
		{"darkBackground", RGB{15, 23, 42}, white},
		{"medium", RGB{120, 113, 108}, white},
	}
	for _, tc := range cases {
		got := AutoTextColor(tc.bg)
		if got != tc.want {
			t.Fatalf("%s AutoTextColor=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestEnsureContrastPrefersAutoWhenNeeded(t *testing.T) {
	bg := RGB{255, 255, 255}
	fg := RGB{255, 0, 0}
	ensured := EnsureContrast(fg, bg, 4.5)
	if ContrastRatioRGB(ensured, bg) < 4.5 {
		t.Fatalf("expected EnsureContrast to meet ratio, got %.2f", ContrastRatioRGB(ensured, bg))
	}
}

func TestAutoTextColorAABoundary(t *testing.T) {
	cases := []struct {
		bg   RGB
		want RGB
	}{
		// black reaches 4.56 although white would give 4.61
		{RGB{117, 117, 117}, black},
		// black 4.49 misses AA and white 4.67 wins
		{RGB{116, 116, 116}, white},
		{RGB{255, 0, 0}, black},
		{RGB{0, 0, 128}, white},
	}
	for _, tc := range cases {
		if got := AutoTextColor(tc.bg); got != tc.want {
			t.Fatalf("AutoTextColor(%s) = %s, want %s", tc.bg.Hex(), got.Hex(), tc.want.Hex())
		}
	}
}

func TestEnsureContrastKeepsReadableForeground(t *testing.T) {
	bg := RGB{117, 117, 117}
	if got := EnsureContrast(white, bg, 4.5); got != white {
		t.Fatalf("white at 4.61 should be kept, got %s", got.Hex())
	}
	if got := EnsureContrast(white, RGB{119, 119, 119}, 4.5); got != black {
		t.Fatalf("white at 4.48 should fall back to black, got %s", got.Hex())
	}
	if got := EnsureContrast(RGB{255, 0, 0}, white, 0); got == (RGB{255, 0, 0}) {
		t.Fatal("a zero ratio should default to AA")
	}
}
