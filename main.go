package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/glowfield/config"
	"github.com/pthm-cable/glowfield/field"
	"github.com/pthm-cable/glowfield/noise"
	"github.com/pthm-cable/glowfield/platform"
	"github.com/pthm-cable/glowfield/renderer"
	"github.com/pthm-cable/glowfield/telemetry"
	"github.com/pthm-cable/glowfield/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	theme := flag.String("theme", "", "Theme: dark or light (empty = use config)")
	noiseKind := flag.String("noise", "", "Noise generator: simplex or perlin (empty = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config, then time-based)")
	headless := flag.Bool("headless", false, "Run without graphics")
	hud := flag.Bool("hud", false, "Show the stats overlay")
	logStats := flag.Bool("log-stats", false, "Output perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for perf.csv and config snapshot")
	maxTicks := flag.Uint64("max-ticks", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *theme != "" {
		t, err := field.ParseTheme(*theme)
		if err != nil {
			slog.Error("invalid theme flag", "error", err)
			os.Exit(1)
		}
		cfg.Field.Theme = t
	}
	if *noiseKind != "" {
		cfg.Field.Noise = *noiseKind
	}
	if *seed != 0 {
		cfg.Field.Seed = *seed
	}

	factory, err := noise.ByName(cfg.Field.Noise)
	if err != nil {
		slog.Error("invalid noise generator", "error", err)
		os.Exit(1)
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	r := &runner{
		cfg:      cfg,
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:   output,
		logStats: *logStats,
		maxTicks: *maxTicks,
	}
	env := field.Env{
		Noise:  factory,
		Seed:   cfg.Field.Seed,
		Logger: logger,
		Tracer: r.perf,
	}

	if *headless {
		err = r.runHeadless(env)
	} else {
		err = r.runWindow(env, *hud)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runner drives one ParticleField and reports on it.
type runner struct {
	cfg      *config.Config
	perf     *telemetry.PerfCollector
	output   *telemetry.OutputManager
	logStats bool
	maxTicks uint64
}

// afterFrame logs and records perf once per window. It reports whether the
// tick limit was reached.
func (r *runner) afterFrame(f *field.ParticleField) bool {
	tick := f.Tick()
	if r.logStats && r.cfg.Telemetry.LogInterval > 0 && tick%uint64(r.cfg.Telemetry.LogInterval) == 0 {
		r.perf.Stats().LogStats(slog.Default(), tick)
	}
	if tick%uint64(r.cfg.Telemetry.PerfWindow) == 0 {
		if err := r.output.WritePerf(r.perf.Stats(), tick, f.Stats()); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
	if r.maxTicks > 0 && tick >= r.maxTicks {
		slog.Info("max ticks reached", "tick", tick)
		return true
	}
	return false
}

func (r *runner) runHeadless(env field.Env) error {
	h := platform.NewHeadless(r.cfg.Screen.Width, r.cfg.Screen.Height)
	env.Platform = h

	f, err := field.New(env, platform.NewNullCanvas(r.cfg.Screen.Width, r.cfg.Screen.Height), r.cfg.Field.Theme)
	if err != nil {
		return err
	}
	defer f.Destroy()

	slog.Info("starting headless run",
		"theme", r.cfg.Field.Theme.String(),
		"noise", r.cfg.Field.Noise,
		"max_ticks", r.maxTicks,
	)

	for {
		h.Step()
		if r.afterFrame(f) {
			return nil
		}
	}
}

func (r *runner) runWindow(env field.Env, showHUD bool) error {
	win, err := renderer.OpenWindow(renderer.WindowOptions{
		Width:     r.cfg.Screen.Width,
		Height:    r.cfg.Screen.Height,
		TargetFPS: r.cfg.Screen.TargetFPS,
		Title:     r.cfg.Screen.Title,
		Resizable: r.cfg.Screen.Resizable,
		Hidden:    r.cfg.Screen.Hidden,
	})
	if err != nil {
		return err
	}
	defer win.Close()
	env.Platform = win

	surface, err := win.Surface()
	if err != nil {
		return err
	}

	f, err := field.New(env, surface, r.cfg.Field.Theme)
	if err != nil {
		return err
	}
	defer f.Destroy()

	if showHUD {
		h := ui.NewHUD()
		win.SetOverlay(func() {
			w, hh := f.Size()
			h.Draw(ui.HUDData{
				Title:  r.cfg.Screen.Title,
				Tick:   f.Tick(),
				Theme:  f.Theme(),
				Width:  w,
				Height: hh,
				Perf:   r.perf.Stats(),
				Frame:  f.Stats(),
			})
		})
	}

	for !win.ShouldClose() {
		win.Pump()
		r.perf.RecordFrame()
		if r.afterFrame(f) {
			break
		}
	}
	return nil
}
