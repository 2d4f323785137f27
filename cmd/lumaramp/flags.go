package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phyten/lumaramp/internal/config"
	"github.com/phyten/lumaramp/internal/opts"
	"github.com/phyten/lumaramp/internal/output"
	"github.com/phyten/lumaramp/internal/ramp"
	"github.com/phyten/lumaramp/internal/solver"
	"github.com/phyten/lumaramp/internal/termcolor"
	"github.com/phyten/lumaramp/internal/util"
)

type globalFlags struct {
	config     string
	output     string
	color      string
	debug      bool
	progress   bool
	noProgress bool
}

func bindGlobal(fs *flag.FlagSet) *globalFlags {
	g := &globalFlags{}
	fs.StringVar(&g.config, "config", "", "config file (default: search .lumaramp.* upwards, then XDG/home)")
	fs.StringVar(&g.output, "output", "", "table|json|ndjson|csv|markdown|yaml|toml")
	fs.StringVar(&g.output, "o", "", "alias of --output")
	fs.StringVar(&g.color, "color", "", "auto|always|never")
	fs.BoolVar(&g.debug, "debug", false, "debug logging, including every solver step")
	fs.BoolVar(&g.progress, "progress", false, "force progress even when piped")
	fs.BoolVar(&g.noProgress, "no-progress", false, "disable progress")
	return g
}

// solverFlags hold per-command overrides. Only flags given on the command
// line win over the config file and the environment.
type solverFlags struct {
	maxAttempts      int
	contrastAttempts int
	jobs             int
	ratio            float64
	direction        string
	base             string
	name             string
	luminance        string
}

func bindSolver(fs *flag.FlagSet, names ...string) *solverFlags {
	def := opts.Defaults()
	f := &solverFlags{}
	for _, name := range names {
		switch name {
		case "max-attempts":
			fs.IntVar(&f.maxAttempts, name, def.MaxAttempts, "lightness search iterations")
		case "contrast-attempts":
			fs.IntVar(&f.contrastAttempts, name, def.ContrastAttempts, "contrast driver retries")
		case "jobs":
			fs.IntVar(&f.jobs, name, def.Jobs, "max parallel workers")
		case "ratio":
			fs.Float64Var(&f.ratio, name, def.Ratio, "target contrast ratio (1-21)")
		case "direction":
			fs.StringVar(&f.direction, name, def.Direction, "auto|asc|desc")
		case "base":
			fs.StringVar(&f.base, name, "", "contrast base color (default: config, then terminal background)")
		case "name":
			fs.StringVar(&f.name, name, "", "ramp name")
		case "luminance":
			fs.StringVar(&f.luminance, name, "", "target relative luminance (0-1)")
		default:
			panic("unknown solver flag " + name)
		}
	}
	return f
}

// parseInterleaved lets flags follow positional arguments.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

type settings struct {
	path   string
	solver config.SolverSettings
	ui     config.UISettings
	ramps  []ramp.Spec
}

// loadSettings layers defaults < config file < LUMARAMP_* env < global flags.
func loadSettings(rt runtimeEnv, g *globalFlags) (settings, error) {
	var s settings
	explicit := g.config
	if explicit == "" {
		explicit = rt.getenv(config.ExplicitPathEnv)
	}
	path, _, err := config.Find(rt.cwd, explicit, rt.getenv("XDG_CONFIG_HOME"), rt.getenv("HOME"))
	if err != nil {
		return s, fmt.Errorf("config: %w", err)
	}
	s.path = path
	file, err := config.Load(path)
	if err != nil {
		return s, fmt.Errorf("config: %w", err)
	}
	env, err := config.FromEnv(rt.getenv)
	if err != nil {
		return s, fmt.Errorf("environment: %w", err)
	}

	s.solver = config.MergeSolver(config.SolverSettingsFromOptions(opts.Defaults()), file.Solver, env.Solver)

	ui := config.MergeUI(config.DefaultUISettings(), file.UI, env.UI)
	ui.Output = config.ResolveAndTrim(ui.Output, nonEmpty(g.output))
	ui.Color = config.ResolveAndTrim(ui.Color, nonEmpty(g.color))
	if s.ui, err = config.NormalizeUI(ui); err != nil {
		return s, err
	}
	if s.ramps, err = config.NormalizeRamps(config.MergeRamps(nil, file, env)); err != nil {
		return s, err
	}
	return s, nil
}

func nonEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// invocation is a parsed command ready to run.
type invocation struct {
	rt       runtimeEnv
	logger   *slog.Logger
	settings settings
	opts     opts.Options
	term     termcolor.Settings
	args     []string
	progress bool
}

func prepare(rt runtimeEnv, fs *flag.FlagSet, args []string, g *globalFlags, sf *solverFlags) (*invocation, error) {
	fs.SetOutput(rt.stderr)
	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return nil, err
	}
	logger := newLogger(rt.stderr, g.debug)
	s, err := loadSettings(rt, g)
	if err != nil {
		return nil, err
	}
	if s.path != "" {
		logger.Debug("config loaded", "path", s.path)
	}

	o := opts.Defaults()
	s.solver.ApplyToOptions(&o)
	o.Output = s.ui.Output
	o.Colors = append([]string(nil), positional...)
	if err := applySolverFlags(fs, sf, &o); err != nil {
		return nil, err
	}
	if err := opts.NormalizeAndValidate(&o); err != nil {
		return nil, err
	}

	term, err := termcolor.Resolve(s.ui.Color, rt.tty, rt.env)
	if err != nil {
		return nil, err
	}
	return &invocation{
		rt:       rt,
		logger:   logger,
		settings: s,
		opts:     o,
		term:     term,
		args:     positional,
		progress: util.ShouldShowProgress(g.progress, g.noProgress),
	}, nil
}

func applySolverFlags(fs *flag.FlagSet, f *solverFlags, o *opts.Options) error {
	if f == nil {
		return nil
	}
	var err error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "max-attempts":
			o.MaxAttempts = f.maxAttempts
		case "contrast-attempts":
			o.ContrastAttempts = f.contrastAttempts
		case "jobs":
			o.Jobs = f.jobs
		case "ratio":
			o.Ratio = f.ratio
		case "direction":
			o.Direction = f.direction
		case "base":
			o.Base = f.base
		case "name":
			o.Name = f.name
		case "luminance":
			v, perr := strconv.ParseFloat(strings.TrimSpace(f.luminance), 64)
			if perr != nil {
				err = fmt.Errorf("%w: invalid --luminance %q", solver.ErrInvalidArgument, f.luminance)
				return
			}
			o.Luminance = &v
		}
	})
	return err
}

func (inv *invocation) write(p output.Payload) error {
	style := output.TableStyle{
		Color:   inv.term.Enabled && inv.settings.ui.Swatches,
		Profile: inv.term.Profile,
		Scheme:  inv.term.Scheme,
	}
	return output.Write(inv.rt.stdout, inv.opts.Output, p, style)
}

// contrastBase picks --base, then the configured base, then the terminal background.
func (inv *invocation) contrastBase() string {
	if inv.opts.Base != "" {
		return inv.opts.Base
	}
	if inv.settings.ui.Base != "" {
		return inv.settings.ui.Base
	}
	return inv.term.Scheme.Background().Hex()
}

func (inv *invocation) trace(color string) func(solver.Step) {
	if !inv.logger.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	return func(s solver.Step) {
		inv.logger.Debug("solver step",
			"color", color,
			"round", s.Round,
			"attempt", s.Attempt,
			"candidate", s.Candidate,
			"luminance", s.Luminance,
			"target", s.Target,
			"jump", s.Jump,
			"next", s.Next,
		)
	}
}

func (inv *invocation) rampTrace(color string) func(ramp.Level, solver.Step) {
	if !inv.logger.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	return func(level ramp.Level, s solver.Step) {
		inv.logger.Debug("solver step",
			"color", color,
			"level", level.Key,
			"attempt", s.Attempt,
			"candidate", s.Candidate,
			"luminance", s.Luminance,
			"target", s.Target,
		)
	}
}
