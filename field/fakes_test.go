package field

import (
	"image/color"
	"io"
	"log/slog"
	"sort"
	"testing"
)

type canvasOp struct {
	kind string
	src  *fakeCanvas
	op   CompositeOp
	fill color.RGBA
	w, h int
}

type stroke struct {
	x1, y1, x2, y2, width float32
	c                     color.NRGBA
}

// fakeCanvas records every call instead of drawing.
type fakeCanvas struct {
	name     string
	w, h     int
	ops      []canvasOp
	strokes  []stroke
	unloaded bool
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) Resize(w, h int) {
	c.w, c.h = w, h
	c.ops = append(c.ops, canvasOp{kind: "resize", w: w, h: h})
}

func (c *fakeCanvas) Clear() {
	c.strokes = c.strokes[:0]
	c.ops = append(c.ops, canvasOp{kind: "clear"})
}

func (c *fakeCanvas) Fill(col color.RGBA) {
	c.ops = append(c.ops, canvasOp{kind: "fill", fill: col})
}

func (c *fakeCanvas) StrokeLine(x1, y1, x2, y2, width float32, col color.NRGBA) {
	c.strokes = append(c.strokes, stroke{x1, y1, x2, y2, width, col})
}

func (c *fakeCanvas) Composite(src Canvas, op CompositeOp) {
	c.ops = append(c.ops, canvasOp{kind: "composite", src: src.(*fakeCanvas), op: op})
}

func (c *fakeCanvas) Unload() { c.unloaded = true }

func (c *fakeCanvas) resetOps() { c.ops = nil }

// fakePlatform queues frames and resize listeners for the test to drive.
type fakePlatform struct {
	w, h      int
	listeners map[int]func()
	nextID    int
	frames    []func()
	requested int
	canvasErr error
	canvases  []*fakeCanvas
}

func newFakePlatform(w, h int) *fakePlatform {
	return &fakePlatform{w: w, h: h, listeners: make(map[int]func())}
}

func (p *fakePlatform) Viewport() (int, int) { return p.w, p.h }

func (p *fakePlatform) ListenResize(fn func()) func() {
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() { delete(p.listeners, id) }
}

func (p *fakePlatform) RequestFrame(fn func()) {
	p.requested++
	p.frames = append(p.frames, fn)
}

func (p *fakePlatform) NewCanvas(w, h int) (Canvas, error) {
	if p.canvasErr != nil {
		return nil, p.canvasErr
	}
	c := &fakeCanvas{name: "offscreen", w: w, h: h}
	p.canvases = append(p.canvases, c)
	return c, nil
}

func (p *fakePlatform) runFrame() {
	frames := p.frames
	p.frames = nil
	for _, fn := range frames {
		fn()
	}
}

func (p *fakePlatform) resizeTo(w, h int) {
	p.w, p.h = w, h
	ids := make([]int, 0, len(p.listeners))
	for id := range p.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		p.listeners[id]()
	}
}

// constNoise samples the same value everywhere.
func constNoise(v float64) NoiseFactory {
	return func(int64) func(x, y, z float64) float64 {
		return func(x, y, z float64) float64 { return v }
	}
}

type recordingTracer struct {
	ticks  int
	phases []string
}

func (r *recordingTracer) StartTick()            { r.ticks++ }
func (r *recordingTracer) StartPhase(name string) { r.phases = append(r.phases, name) }
func (r *recordingTracer) EndTick()              {}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testRig struct {
	field     *ParticleField
	platform  *fakePlatform
	visible   *fakeCanvas
	offscreen *fakeCanvas
}

func newTestRig(t *testing.T, w, h int, theme Theme, noiseValue float64) testRig {
	t.Helper()
	platform := newFakePlatform(w, h)
	visible := &fakeCanvas{name: "visible", w: w, h: h}
	f, err := New(Env{
		Platform: platform,
		Noise:    constNoise(noiseValue),
		Seed:     12345,
		Logger:   quietLogger(),
	}, visible, theme)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return testRig{
		field:     f,
		platform:  platform,
		visible:   visible,
		offscreen: platform.canvases[0],
	}
}
