package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"

	"github.com/phyten/lumaramp/internal/colorutil"
	"github.com/phyten/lumaramp/internal/opts"
	"github.com/phyten/lumaramp/internal/output"
	"github.com/phyten/lumaramp/internal/ramp"
	"github.com/phyten/lumaramp/internal/solver"
	"github.com/phyten/lumaramp/internal/web"
)

const (
	requestIDHeader = "X-Request-ID"
	maxColors       = 32
	serverBase      = "#ffffff"
)

func serveCmd(rt runtimeEnv, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	g := bindGlobal(fs)
	port := fs.Int("p", 8080, "port")
	host := fs.String("host", "127.0.0.1", "listen address")
	open := fs.Bool("open", false, "open the UI in the default browser")
	inv, err := prepare(rt, fs, args, g, nil)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(*host, fmt.Sprint(*port)))
	if err != nil {
		return err
	}
	url := "http://" + ln.Addr().String()
	srv := &http.Server{
		Handler:           newServer(inv.opts, inv.settings.ui.Base, inv.logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	inv.logger.Info("lumaramp serve listening", "url", url)
	if *open {
		if err := browser.OpenURL(url); err != nil {
			inv.logger.Warn("could not open browser", "err", err)
		}
	}
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type api struct {
	def    opts.Options
	base   string
	logger *slog.Logger
}

// newServer wires the JSON API and the UI. def supplies the solver defaults
// a query string may override; base is the fit base when none is given.
func newServer(def opts.Options, base string, logger *slog.Logger) http.Handler {
	if base == "" {
		base = serverBase
	}
	a := &api{def: def, base: base, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/luminance", a.luminance)
	mux.HandleFunc("GET /api/contrast", a.contrast)
	mux.HandleFunc("GET /api/solve", a.solve)
	mux.HandleFunc("GET /api/fit", a.fit)
	mux.HandleFunc("GET /api/ramp", a.ramp)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	web.Register(mux, web.Defaults{
		Base:        base,
		Ratio:       def.Ratio,
		Direction:   def.Direction,
		MaxAttempts: def.ContrastAttempts,
	})
	return withRequestID(logger, mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withRequestID tags every request with an X-Request-ID, reusing a valid
// incoming UUID, and logs it once the response is written.
func withRequestID(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = output.WriteJSON(w, v)
}

func (a *api) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, colorutil.ErrInvalidColorFormat) || errors.Is(err, solver.ErrInvalidArgument) {
		status = http.StatusBadRequest
	}
	a.logger.Debug("request failed", "id", w.Header().Get(requestIDHeader), "path", r.URL.Path, "err", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// options decodes and validates the query; at least one color is required.
func (a *api) options(r *http.Request) (opts.Options, error) {
	o, err := opts.ApplyWebQuery(a.def, r.URL.Query())
	if err != nil {
		return o, err
	}
	if err := opts.NormalizeAndValidate(&o); err != nil {
		return o, err
	}
	switch {
	case len(o.Colors) == 0:
		return o, fmt.Errorf("%w: color is required", solver.ErrInvalidArgument)
	case len(o.Colors) > maxColors:
		return o, fmt.Errorf("%w: at most %d colors per request", solver.ErrInvalidArgument, maxColors)
	}
	return o, nil
}

func (a *api) luminance(w http.ResponseWriter, r *http.Request) {
	o, err := a.options(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	rows := make([]output.LuminanceRow, 0, len(o.Colors))
	for _, c := range o.Colors {
		row, err := output.NewLuminanceRow(c)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		rows = append(rows, row)
	}
	writeJSON(w, http.StatusOK, itemsResponse[output.LuminanceRow]{Items: rows})
}

func (a *api) contrast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	colorA := strings.TrimSpace(q.Get("a"))
	bs := opts.SplitMulti(q["b"])
	if colorA == "" || len(bs) == 0 {
		a.fail(w, r, fmt.Errorf("%w: a and b are required", solver.ErrInvalidArgument))
		return
	}
	if len(bs) > maxColors {
		a.fail(w, r, fmt.Errorf("%w: at most %d colors per request", solver.ErrInvalidArgument, maxColors))
		return
	}
	rows := make([]output.ContrastRow, 0, len(bs))
	for _, b := range bs {
		row, err := output.NewContrastRow(colorA, b)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		rows = append(rows, row)
	}
	writeJSON(w, http.StatusOK, itemsResponse[output.ContrastRow]{Items: rows})
}

func (a *api) solve(w http.ResponseWriter, r *http.Request) {
	o, err := a.options(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if o.Luminance == nil {
		a.fail(w, r, fmt.Errorf("%w: luminance is required", solver.ErrInvalidArgument))
		return
	}
	reports := make([]solver.Report, 0, len(o.Colors))
	for _, c := range o.Colors {
		result, err := solver.SolveLuminance(c, *o.Luminance, o.SolverOptions())
		if err != nil {
			a.fail(w, r, err)
			return
		}
		report, err := solver.NewReport(c, result, "", *o.Luminance)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		reports = append(reports, report)
	}
	writeJSON(w, http.StatusOK, itemsResponse[solver.Report]{Items: reports})
}

func (a *api) fit(w http.ResponseWriter, r *http.Request) {
	o, err := a.options(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	base := o.Base
	if base == "" {
		base = a.base
	}
	reports := make([]solver.Report, 0, len(o.Colors))
	for _, c := range o.Colors {
		result, err := solver.SolveContrast(c, base, o.Ratio, o.ContrastOptions())
		if err != nil {
			a.fail(w, r, err)
			return
		}
		report, err := solver.NewReport(c, result, base, o.Ratio)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		reports = append(reports, report)
	}
	writeJSON(w, http.StatusOK, itemsResponse[solver.Report]{Items: reports})
}

func (a *api) ramp(w http.ResponseWriter, r *http.Request) {
	o, err := a.options(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	specs := make([]ramp.Spec, 0, len(o.Colors))
	for _, c := range o.Colors {
		specs = append(specs, ramp.Spec{Name: o.Name, Base: c})
	}
	ramps, err := ramp.BuildPalette(specs, o.RampOptions())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse[*ramp.Ramp]{Items: ramps})
}
