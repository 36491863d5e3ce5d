package renderer

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/field"
	"github.com/pthm-cable/glowfield/platform"
)

var errWindowInit = errors.New("raylib window failed to initialize")

// WindowOptions configures the raylib window.
type WindowOptions struct {
	Width, Height int
	TargetFPS     int
	Title         string
	Resizable     bool
	Hidden        bool
}

// Window is a field.Platform on top of a raylib window. Frames requested by
// the field run on the next Pump.
type Window struct {
	platform.Scheduler
	platform.ResizeBus

	glow    *glowShader
	surface *RenderCanvas
	overlay func()
}

// OpenWindow creates the window and the GL resources shared by its canvases.
func OpenWindow(opts WindowOptions) (*Window, error) {
	var flags uint32
	if opts.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if opts.Hidden {
		flags |= rl.FlagWindowHidden
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, errWindowInit
	}
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}

	glow, err := loadGlowShader()
	if err != nil {
		rl.CloseWindow()
		return nil, err
	}
	return &Window{glow: glow}, nil
}

func (w *Window) Viewport() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (w *Window) NewCanvas(width, height int) (field.Canvas, error) {
	c, err := newRenderCanvas(width, height, w.glow)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Surface returns the canvas presented to the screen, creating it at the
// viewport size on first use. It stays owned by the window.
func (w *Window) Surface() (*RenderCanvas, error) {
	if w.surface != nil {
		return w.surface, nil
	}
	vw, vh := w.Viewport()
	c, err := newRenderCanvas(vw, vh, w.glow)
	if err != nil {
		return nil, fmt.Errorf("creating window surface: %w", err)
	}
	w.surface = c
	return c, nil
}

// SetOverlay installs fn to draw on top of the presented surface.
func (w *Window) SetOverlay(fn func()) {
	w.overlay = fn
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Pump delivers a pending resize, runs the scheduled frame and presents the
// surface. It returns the number of frame callbacks that ran.
func (w *Window) Pump() int {
	if rl.IsWindowResized() {
		w.Notify()
	}
	ran := w.RunFrame()

	Flush()
	useBlend(blendDefault)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	if w.surface != nil && w.surface.target.ID != 0 {
		tex := w.surface.target.Texture
		src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: -float32(tex.Height)}
		rl.DrawTextureRec(tex, src, rl.Vector2{}, rl.White)
	}
	if w.overlay != nil {
		w.overlay()
	}
	rl.EndDrawing()

	return ran
}

// Close releases the surface and shader and closes the window.
func (w *Window) Close() {
	Flush()
	if w.surface != nil {
		w.surface.Unload()
	}
	w.glow.unload()
	rl.CloseWindow()
}
