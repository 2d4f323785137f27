package termcolor

import (
	"fmt"
	"strings"
)

// Style is one SGR attribute set. For each of the foreground and background
// only the richest non-nil color is emitted.
type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FGBasic   *int
	FG256     *int
	FGTrue    *[3]uint8
	BGBasic   *int
	BG256     *int
	BGTrue    *[3]uint8
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 8)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	codes = appendColor(codes, "38", "3", s.FGTrue, s.FG256, s.FGBasic)
	codes = appendColor(codes, "48", "4", s.BGTrue, s.BG256, s.BGBasic)
	return codes
}

func appendColor(codes []string, extended, basic string, rgb *[3]uint8, idx256, idxBasic *int) []string {
	switch {
	case rgb != nil:
		return append(codes, fmt.Sprintf("%s;2;%d;%d;%d", extended, rgb[0], rgb[1], rgb[2]))
	case idx256 != nil:
		return append(codes, fmt.Sprintf("%s;5;%d", extended, *idx256))
	case idxBasic != nil:
		return append(codes, fmt.Sprintf("%s%d", basic, *idxBasic))
	}
	return codes
}
