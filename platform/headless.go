package platform

import (
	"fmt"
	"image/color"

	"github.com/pthm-cable/glowfield/field"
)

// Headless runs the field without a window. Canvases keep no pixels.
type Headless struct {
	Scheduler
	ResizeBus

	width, height int
}

// NewHeadless creates a headless platform with a fixed viewport.
func NewHeadless(width, height int) *Headless {
	return &Headless{width: width, height: height}
}

func (h *Headless) Viewport() (int, int) {
	return h.width, h.height
}

// SetViewport changes the viewport and notifies resize listeners.
func (h *Headless) SetViewport(width, height int) {
	h.width, h.height = width, height
	h.Notify()
}

func (h *Headless) NewCanvas(w, hgt int) (field.Canvas, error) {
	if w < 0 || hgt < 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", w, hgt)
	}
	return &NullCanvas{w: w, h: hgt}, nil
}

// Step runs one frame.
func (h *Headless) Step() int {
	return h.RunFrame()
}

// CanvasCounts tallies the operations a NullCanvas received.
type CanvasCounts struct {
	Resizes    int
	Clears     int
	Fills      int
	Strokes    int
	Composites int
}

// NullCanvas is a field.Canvas that only counts what is drawn on it.
type NullCanvas struct {
	w, h     int
	counts   CanvasCounts
	last     color.RGBA
	unloaded bool
}

// NewNullCanvas creates a NullCanvas of the given size.
func NewNullCanvas(w, h int) *NullCanvas {
	return &NullCanvas{w: w, h: h}
}

func (c *NullCanvas) Size() (int, int) { return c.w, c.h }

func (c *NullCanvas) Resize(w, h int) {
	c.w, c.h = w, h
	c.counts.Resizes++
}

func (c *NullCanvas) Clear() { c.counts.Clears++ }

func (c *NullCanvas) Fill(col color.RGBA) {
	c.last = col
	c.counts.Fills++
}

func (c *NullCanvas) StrokeLine(x1, y1, x2, y2, width float32, col color.NRGBA) {
	c.counts.Strokes++
}

func (c *NullCanvas) Composite(src field.Canvas, op field.CompositeOp) {
	c.counts.Composites++
}

func (c *NullCanvas) Unload() { c.unloaded = true }

// Counts returns the operation tallies so far.
func (c *NullCanvas) Counts() CanvasCounts { return c.counts }

// LastFill returns the most recent fill colour.
func (c *NullCanvas) LastFill() color.RGBA { return c.last }

// Unloaded reports whether Unload was called.
func (c *NullCanvas) Unloaded() bool { return c.unloaded }
