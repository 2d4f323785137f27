package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/phyten/lumaramp/internal/output"
	"github.com/phyten/lumaramp/internal/ramp"
	"github.com/phyten/lumaramp/internal/solver"
	"github.com/phyten/lumaramp/internal/util"
)

func requireArgs(inv *invocation, min int, what string) error {
	if len(inv.args) < min {
		return fmt.Errorf("%w: expected %s", solver.ErrInvalidArgument, what)
	}
	return nil
}

func luminanceCmd(rt runtimeEnv, args []string) error {
	fs := flag.NewFlagSet("luminance", flag.ContinueOnError)
	g := bindGlobal(fs)
	inv, err := prepare(rt, fs, args, g, nil)
	if err != nil {
		return err
	}
	if err := requireArgs(inv, 1, "at least one color"); err != nil {
		return err
	}
	rows := make([]output.LuminanceRow, 0, len(inv.args))
	for _, c := range inv.args {
		row, err := output.NewLuminanceRow(c)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return inv.write(output.LuminancePayload(rows))
}

func contrastCmd(rt runtimeEnv, args []string) error {
	fs := flag.NewFlagSet("contrast", flag.ContinueOnError)
	g := bindGlobal(fs)
	inv, err := prepare(rt, fs, args, g, nil)
	if err != nil {
		return err
	}
	if err := requireArgs(inv, 2, "two or more colors"); err != nil {
		return err
	}
	rows := make([]output.ContrastRow, 0, len(inv.args)-1)
	for _, b := range inv.args[1:] {
		row, err := output.NewContrastRow(inv.args[0], b)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return inv.write(output.ContrastPayload(rows))
}

func solveCmd(rt runtimeEnv, args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	g := bindGlobal(fs)
	sf := bindSolver(fs, "luminance", "max-attempts")
	inv, err := prepare(rt, fs, args, g, sf)
	if err != nil {
		return err
	}
	if inv.opts.Luminance == nil {
		return fmt.Errorf("%w: --luminance is required", solver.ErrInvalidArgument)
	}
	if err := requireArgs(inv, 1, "at least one color"); err != nil {
		return err
	}
	target := *inv.opts.Luminance
	reports := make([]solver.Report, 0, len(inv.args))
	for _, c := range inv.args {
		so := inv.opts.SolverOptions()
		so.Trace = inv.trace(c)
		result, err := solver.SolveLuminance(c, target, so)
		if err != nil {
			return err
		}
		report, err := solver.NewReport(c, result, "", target)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}
	return inv.write(output.ReportPayload(reports))
}

func fitCmd(rt runtimeEnv, args []string) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	g := bindGlobal(fs)
	sf := bindSolver(fs, "ratio", "base", "direction", "contrast-attempts")
	inv, err := prepare(rt, fs, args, g, sf)
	if err != nil {
		return err
	}
	if err := requireArgs(inv, 1, "at least one color"); err != nil {
		return err
	}
	base := inv.contrastBase()
	inv.logger.Debug("fitting", "base", base, "ratio", inv.opts.Ratio, "direction", inv.opts.Direction)
	reports := make([]solver.Report, 0, len(inv.args))
	for _, c := range inv.args {
		co := inv.opts.ContrastOptions()
		co.Trace = inv.trace(c)
		result, err := solver.SolveContrast(c, base, inv.opts.Ratio, co)
		if err != nil {
			return err
		}
		report, err := solver.NewReport(c, result, base, inv.opts.Ratio)
		if err != nil {
			return err
		}
		if report.Contrast != nil && *report.Contrast < inv.opts.Ratio {
			inv.logger.Warn("contrast not reached", "color", c, "want", inv.opts.Ratio, "got", *report.Contrast)
		}
		reports = append(reports, report)
	}
	return inv.write(output.ReportPayload(reports))
}

func rampCmd(rt runtimeEnv, args []string) error {
	fs := flag.NewFlagSet("ramp", flag.ContinueOnError)
	g := bindGlobal(fs)
	sf := bindSolver(fs, "name", "jobs", "max-attempts")
	inv, err := prepare(rt, fs, args, g, sf)
	if err != nil {
		return err
	}
	if err := requireArgs(inv, 1, "at least one color"); err != nil {
		return err
	}
	if inv.opts.Name != "" && len(inv.args) > 1 {
		return fmt.Errorf("%w: --name needs exactly one color", solver.ErrInvalidArgument)
	}
	specs := make([]ramp.Spec, 0, len(inv.args))
	for _, c := range inv.opts.Colors {
		specs = append(specs, ramp.Spec{Name: inv.opts.Name, Base: c})
	}
	ramps, err := inv.buildRamps(specs)
	if err != nil {
		return err
	}
	return inv.write(output.RampPayload(ramps))
}

func paletteCmd(rt runtimeEnv, args []string) error {
	fs := flag.NewFlagSet("palette", flag.ContinueOnError)
	g := bindGlobal(fs)
	sf := bindSolver(fs, "jobs", "max-attempts")
	inv, err := prepare(rt, fs, args, g, sf)
	if err != nil {
		return err
	}
	if len(inv.args) > 0 {
		return fmt.Errorf("%w: palette takes no arguments", solver.ErrInvalidArgument)
	}
	if len(inv.settings.ramps) == 0 {
		return errors.New("no ramps configured: add a ramps table to the config file or set LUMARAMP_RAMPS")
	}
	ramps, err := inv.buildRamps(inv.settings.ramps)
	if err != nil {
		return err
	}
	return inv.write(output.RampPayload(ramps))
}

// buildRamps runs one ramp on the level pool, several on the palette pool.
func (inv *invocation) buildRamps(specs []ramp.Spec) ([]*ramp.Ramp, error) {
	progress := util.NewProgress(inv.rt.stderr, len(specs)*len(ramp.ActiveLevels()), inv.progress)
	defer progress.Done()

	ro := inv.opts.RampOptions()
	ro.Advance = progress.Advance
	if len(specs) == 1 {
		ro.Name = specs[0].Name
		ro.Trace = inv.rampTrace(specs[0].Base)
		r, err := ramp.Build(specs[0].Base, ro)
		if err != nil {
			return nil, err
		}
		return []*ramp.Ramp{r}, nil
	}
	return ramp.BuildPalette(specs, ro)
}
