package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode is the --color setting.
type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	}
	return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
}

// Profile is how many colors a swatch may use.
type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

func (p Profile) String() string {
	switch p {
	case ProfileTrueColor:
		return "truecolor"
	case ProfileANSI256:
		return "256"
	default:
		return "basic"
	}
}

// Settings is what a command needs to paint swatches.
type Settings struct {
	Enabled bool
	Profile Profile
	Scheme  Scheme
}

// Resolve turns a --color value into Settings for stdout. env is typically
// EnvMap(os.Environ()). Profile and Scheme are detected even when color is
// off: the scheme still picks the default contrast base.
func Resolve(flag string, stdout *os.File, env map[string]string) (Settings, error) {
	mode, err := ParseMode(flag)
	if err != nil {
		return Settings{}, err
	}
	if mode == ModeAuto {
		mode = DetectMode(stdout, env)
	}
	return Settings{
		Enabled: mode == ModeAlways,
		Profile: DetectProfile(env),
		Scheme:  DetectScheme(env),
	}, nil
}

func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// modeRules are checked in order; the first rule that decides wins.
// Disabling rules come before forcing ones so NO_COLOR beats FORCE_COLOR.
var modeRules = []func(env map[string]string) (ColorMode, bool){
	func(env map[string]string) (ColorMode, bool) {
		return ModeNever, strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb")
	},
	func(env map[string]string) (ColorMode, bool) {
		return ModeNever, strings.TrimSpace(env["NO_COLOR"]) != ""
	},
	func(env map[string]string) (ColorMode, bool) {
		return ModeNever, strings.TrimSpace(env["CLICOLOR"]) == "0"
	},
	func(env map[string]string) (ColorMode, bool) {
		return ModeAlways, truthy(env["CLICOLOR_FORCE"]) || truthy(env["FORCE_COLOR"])
	},
}

// DetectMode settles --color=auto: environment conventions first, then
// whether stdout is a terminal. A nil stdout never gets color.
func DetectMode(stdout *os.File, env map[string]string) ColorMode {
	if stdout == nil {
		return ModeNever
	}
	for _, rule := range modeRules {
		if mode, ok := rule(env); ok {
			return mode
		}
	}
	if term.IsTerminal(int(stdout.Fd())) {
		return ModeAlways
	}
	return ModeNever
}

var trueColorPrograms = map[string]bool{
	"iTerm.app": true,
	"WezTerm":   true,
	"vscode":    true,
	"ghostty":   true,
}

// DetectProfile picks the richest palette the terminal advertises.
func DetectProfile(env map[string]string) Profile {
	colorterm := strings.ToLower(strings.TrimSpace(env["COLORTERM"]))
	switch {
	case strings.Contains(colorterm, "truecolor"),
		strings.Contains(colorterm, "24bit"),
		strings.Contains(colorterm, "24-bit"),
		trueColorPrograms[strings.TrimSpace(env["TERM_PROGRAM"])]:
		return ProfileTrueColor
	case strings.Contains(strings.ToLower(env["TERM"]), "256color"):
		return ProfileANSI256
	}
	return ProfileBasic8
}

func truthy(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
