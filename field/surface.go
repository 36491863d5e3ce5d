package field

import "image/color"

// BlendMode is how a composited source combines with the destination.
type BlendMode uint8

const (
	// BlendSourceOver is plain alpha compositing.
	BlendSourceOver BlendMode = iota
	// BlendLighten keeps the per-channel maximum.
	BlendLighten
	// BlendDarken keeps the per-channel minimum.
	BlendDarken
)

func (b BlendMode) String() string {
	switch b {
	case BlendSourceOver:
		return "source-over"
	case BlendLighten:
		return "lighten"
	case BlendDarken:
		return "darken"
	}
	return "unknown"
}

// CompositeOp describes one draw of a whole canvas onto another.
type CompositeOp struct {
	Blur       float32 // blur radius in pixels, 0 = none
	Brightness float32 // 0 is treated as 1
	Blend      BlendMode
}

// Canvas is a 2-D drawing target.
type Canvas interface {
	Size() (w, h int)
	// Resize changes the pixel dimensions and discards the contents.
	Resize(w, h int)
	// Clear makes every pixel fully transparent.
	Clear()
	Fill(c color.RGBA)
	// StrokeLine draws a round-capped segment.
	StrokeLine(x1, y1, x2, y2, width float32, c color.NRGBA)
	// Composite draws src at the origin through op.
	Composite(src Canvas, op CompositeOp)
	Unload()
}

// Platform provides the windowing services the field runs on.
type Platform interface {
	Viewport() (w, h int)
	// ListenResize registers fn for viewport changes. Calling remove
	// unregisters exactly that registration.
	ListenResize(fn func()) (remove func())
	// RequestFrame schedules fn to run once before the next repaint.
	RequestFrame(fn func())
	NewCanvas(w, h int) (Canvas, error)
}

// NoiseFactory builds a seeded 3-D noise function returning values in [-1, 1].
type NoiseFactory func(seed int64) func(x, y, z float64) float64

// Tracer receives per-frame phase timings.
type Tracer interface {
	StartTick()
	StartPhase(name string)
	EndTick()
}

type nopTracer struct{}

func (nopTracer) StartTick()        {}
func (nopTracer) StartPhase(string) {}
func (nopTracer) EndTick()          {}
