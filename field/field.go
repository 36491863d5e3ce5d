// Package field animates a particle flow-field: a fixed pool of tracers
// steered by 3-D noise, stroked into an offscreen canvas and composited
// onto a visible canvas as two blurred glow passes plus a crisp pass.
package field

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/glowfield/noise"
)

var (
	// ErrNoSurface is returned by New when the visible canvas is nil.
	ErrNoSurface = errors.New("no surface")
	// ErrNoPlatform is returned by New when Env has no Platform.
	ErrNoPlatform = errors.New("no platform")
)

// Vec2 is a point in surface pixel space.
type Vec2 struct {
	X, Y float32
}

// Env carries the collaborators a ParticleField runs against.
type Env struct {
	Platform Platform
	Noise    NoiseFactory // nil = noise.Simplex
	Seed     int64        // 0 = time-based
	Logger   *slog.Logger
	Tracer   Tracer
}

// FrameStats counts what the last frame did.
type FrameStats struct {
	Strokes     int
	Respawns    int
	OutOfBounds int
	Expired     int
}

// ParticleField is one running flow-field effect.
type ParticleField struct {
	platform  Platform
	visible   Canvas
	offscreen Canvas
	theme     Theme
	style     ThemeStyle
	logger    *slog.Logger
	tracer    Tracer

	noise3D func(x, y, z float64) float64
	rng     *rand.Rand

	pool          Pool
	center        Vec2
	width, height int
	tick          uint64
	stats         FrameStats

	active       bool
	frameFn      func()
	removeResize func()
}

// New builds the offscreen canvas, sizes both canvases to the viewport,
// spawns the pool, subscribes to resizes and draws the first frame, which
// schedules every following one. surface stays owned by the caller.
func New(env Env, surface Canvas, theme Theme) (*ParticleField, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if env.Platform == nil {
		return nil, ErrNoPlatform
	}
	if !theme.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTheme, uint8(theme))
	}

	factory := env.Noise
	if factory == nil {
		factory = noise.Simplex
	}
	seed := env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := env.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var tracer Tracer = nopTracer{}
	if env.Tracer != nil {
		tracer = env.Tracer
	}

	w, h := surface.Size()
	offscreen, err := env.Platform.NewCanvas(w, h)
	if err != nil {
		return nil, fmt.Errorf("creating offscreen canvas: %w", err)
	}

	f := &ParticleField{
		platform:  env.Platform,
		visible:   surface,
		offscreen: offscreen,
		theme:     theme,
		style:     theme.Style(),
		logger:    logger,
		tracer:    tracer,
		noise3D:   factory(seed),
		rng:       rand.New(rand.NewSource(seed)),
		active:    true,
	}
	f.frameFn = f.frame

	f.resize()
	f.initParticles()
	f.removeResize = env.Platform.ListenResize(f.resize)

	logger.Info("particle field created",
		"theme", theme.String(),
		"width", f.width,
		"height", f.height,
		"particles", ParticleCount,
		"seed", seed,
	)

	f.frame()
	return f, nil
}

// Destroy stops the animation loop, drops the resize subscription and
// releases the offscreen canvas. A frame already queued with the platform
// returns without drawing or rescheduling.
func (f *ParticleField) Destroy() {
	if !f.active {
		return
	}
	f.active = false
	if f.removeResize != nil {
		f.removeResize()
		f.removeResize = nil
	}
	f.offscreen.Unload()
	f.logger.Info("particle field destroyed", "tick", f.tick)
}

// resize matches both canvases to the viewport. Resizing a canvas clears it,
// so the visible contents are parked in the offscreen canvas and drawn back.
func (f *ParticleField) resize() {
	if !f.active {
		return
	}
	w, h := f.platform.Viewport()

	f.offscreen.Resize(w, h)
	f.offscreen.Composite(f.visible, CompositeOp{Blend: BlendSourceOver})

	f.visible.Resize(w, h)
	f.visible.Composite(f.offscreen, CompositeOp{Blend: BlendSourceOver})

	f.width, f.height = w, h
	f.center = Vec2{X: 0.5 * float32(w), Y: 0.5 * float32(h)}

	f.logger.Debug("particle field resized", "width", w, "height", h)
}

// Tick returns the number of frames drawn.
func (f *ParticleField) Tick() uint64 { return f.tick }

// Center returns the respawn reference point.
func (f *ParticleField) Center() Vec2 { return f.center }

// Size returns the current surface dimensions.
func (f *ParticleField) Size() (w, h int) { return f.width, f.height }

// Theme returns the theme the field was created with.
func (f *ParticleField) Theme() Theme { return f.theme }

// Active reports whether the animation loop is still running.
func (f *ParticleField) Active() bool { return f.active }

// Stats returns counters for the last frame.
func (f *ParticleField) Stats() FrameStats { return f.stats }

// Particles returns a copy of the pool.
func (f *ParticleField) Particles() Pool { return f.pool }
