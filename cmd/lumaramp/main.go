package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/phyten/lumaramp/internal/termcolor"
)

// runtimeEnv is everything a command reads from the process.
type runtimeEnv struct {
	stdout io.Writer
	stderr io.Writer
	// tty is checked for color support; nil means "not a terminal".
	tty *os.File
	env map[string]string
	cwd string
}

func (rt runtimeEnv) getenv(key string) string {
	return rt.env[key]
}

type command struct {
	name    string
	usage   string
	summary string
	run     func(rt runtimeEnv, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"luminance", "COLOR...", "print the relative luminance of colors", luminanceCmd},
		{"contrast", "A B...", "contrast ratio of A against each B with WCAG verdicts", contrastCmd},
		{"solve", "--luminance L COLOR...", "find the color of the same hue with luminance L", solveCmd},
		{"fit", "[--ratio R] [--base B] COLOR...", "adjust lightness until the contrast against B reaches R", fitCmd},
		{"ramp", "[--name N] COLOR...", "build a luminance ramp per color", rampCmd},
		{"palette", "", "build the ramps listed in the config file", paletteCmd},
		{"serve", "[-p PORT] [--open]", "serve the JSON API and the web UI", serveCmd},
	}
}

func main() {
	log.SetFlags(0)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: .env: %v", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	rt := runtimeEnv{
		stdout: os.Stdout,
		stderr: os.Stderr,
		tty:    os.Stdout,
		env:    termcolor.EnvMap(os.Environ()),
		cwd:    cwd,
	}
	if err := run(rt, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(rt runtimeEnv, args []string) error {
	if len(args) == 0 {
		printUsage(rt.stderr)
		return errors.New("missing command")
	}
	name := args[0]
	switch name {
	case "-h", "--help", "help":
		printUsage(rt.stdout)
		return nil
	}
	for _, c := range commands {
		if c.name == name {
			err := c.run(rt, args[1:])
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
	}
	printUsage(rt.stderr)
	return fmt.Errorf("unknown command: %s", name)
}

func printUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString("lumaramp: WCAG luminance ramps and contrast fitting\n\n")
	b.WriteString("Usage:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "  lumaramp %-10s %s\n", c.name, c.usage)
		fmt.Fprintf(&b, "      %s\n", c.summary)
	}
	b.WriteString("\nGlobal flags: --config PATH, -o/--output FORMAT, --color auto|always|never, --debug\n")
	b.WriteString("Formats: table, json, ndjson, csv, markdown, yaml, toml\n")
	_, _ = io.WriteString(w, b.String())
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
