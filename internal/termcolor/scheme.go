package termcolor

import (
	"strconv"
	"strings"

	"github.com/phyten/lumaramp/internal/colorutil"
)

type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

func (s Scheme) String() string {
	switch s {
	case SchemeDark:
		return "dark"
	case SchemeLight:
		return "light"
	default:
		return "unknown"
	}
}

// DetectScheme guesses the terminal background from COLORFGBG, then TERM.
func DetectScheme(env map[string]string) Scheme {
	if env == nil {
		return SchemeDark
	}
	if raw := strings.TrimSpace(env["COLORFGBG"]); raw != "" {
		parts := strings.Split(raw, ";")
		bgRaw := strings.TrimSpace(parts[len(parts)-1])
		if bgRaw == "" && len(parts) >= 2 {
			bgRaw = strings.TrimSpace(parts[len(parts)-2])
		}
		if bg, err := strconv.Atoi(bgRaw); err == nil && bg >= 0 {
			if bg >= 7 {
				return SchemeLight
			}
			return SchemeDark
		}
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}

// Foreground is the terminal's default text color for the scheme.
func (s Scheme) Foreground() colorutil.RGB {
	if s == SchemeLight {
		return colorutil.RGB{}
	}
	return colorutil.RGB{R: 255, G: 255, B: 255}
}

// Background is the color text is fitted against when no base is given.
func (s Scheme) Background() colorutil.RGB {
	if s == SchemeLight {
		return colorutil.RGB{R: 255, G: 255, B: 255}
	}
	return colorutil.RGB{}
}
