// Package renderer draws the particle field with raylib render textures.
package renderer

import (
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/field"
)

// bound is the render texture currently in texture mode, if any.
var bound *RenderCanvas

// Flush ends texture mode so the next draws go to the screen.
func Flush() {
	if bound != nil {
		rl.EndTextureMode()
		bound = nil
	}
}

// RenderCanvas is a field.Canvas backed by a render texture. Must be created
// after the raylib window.
type RenderCanvas struct {
	target rl.RenderTexture2D
	w, h   int
	glow   *glowShader
}

func newRenderCanvas(w, h int, glow *glowShader) (*RenderCanvas, error) {
	c := &RenderCanvas{glow: glow}
	if err := c.load(w, h); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *RenderCanvas) load(w, h int) error {
	// A zero-sized texture is invalid; a minimised window reports 0x0.
	tw, th := max(w, 1), max(h, 1)
	c.target = rl.LoadRenderTexture(int32(tw), int32(th))
	if c.target.ID == 0 {
		return fmt.Errorf("loading %dx%d render texture failed", tw, th)
	}
	rl.SetTextureFilter(c.target.Texture, rl.FilterBilinear)
	c.w, c.h = w, h
	c.Clear()
	return nil
}

// bind makes c the texture-mode target. It reports false once the texture
// has been released.
func (c *RenderCanvas) bind() bool {
	if c.target.ID == 0 {
		return false
	}
	if bound == c {
		return true
	}
	if bound != nil {
		rl.EndTextureMode()
	}
	rl.BeginTextureMode(c.target)
	bound = c
	return true
}

func (c *RenderCanvas) Size() (int, int) { return c.w, c.h }

// Texture exposes the colour attachment for presenting.
func (c *RenderCanvas) Texture() rl.Texture2D { return c.target.Texture }

func (c *RenderCanvas) Resize(w, h int) {
	if w == c.w && h == c.h {
		// Resizing clears even when the size is unchanged.
		c.Clear()
		return
	}
	c.Unload()
	if err := c.load(w, h); err != nil {
		slog.Warn("render canvas resize failed", "width", w, "height", h, "error", err)
	}
}

func (c *RenderCanvas) Clear() {
	if c.bind() {
		rl.ClearBackground(rl.Blank)
	}
}

func (c *RenderCanvas) Fill(col color.RGBA) {
	if c.bind() {
		rl.ClearBackground(col)
	}
}

func (c *RenderCanvas) StrokeLine(x1, y1, x2, y2, width float32, col color.NRGBA) {
	if col.A == 0 || !c.bind() {
		return
	}
	useBlend(blendStroke)

	rc := rl.Color{R: col.R, G: col.G, B: col.B, A: col.A}
	a := rl.Vector2{X: x1, Y: y1}
	b := rl.Vector2{X: x2, Y: y2}
	rl.DrawLineEx(a, b, width, rc)
	// Round caps.
	rl.DrawCircleV(a, width/2, rc)
	rl.DrawCircleV(b, width/2, rc)
}

func (c *RenderCanvas) Composite(src field.Canvas, op field.CompositeOp) {
	s, ok := src.(*RenderCanvas)
	if !ok || s == c || s.target.ID == 0 || !c.bind() {
		return
	}

	kind, backdrop := compositeBlend(op.Blend)
	useBlend(kind)

	// Render textures are stored upside down.
	srcRect := rl.Rectangle{X: 0, Y: 0, Width: float32(s.target.Texture.Width), Height: -float32(s.target.Texture.Height)}
	dst := rl.Vector2{}

	if op.Blend == field.BlendSourceOver && op.Blur == 0 && op.Brightness == 0 {
		rl.DrawTextureRec(s.target.Texture, srcRect, dst, rl.White)
		return
	}

	brightness := op.Brightness
	if brightness == 0 {
		brightness = 1
	}
	c.glow.set(int(s.target.Texture.Width), int(s.target.Texture.Height), op.Blur, brightness, backdrop)
	rl.BeginShaderMode(c.glow.shader)
	rl.DrawTextureRec(s.target.Texture, srcRect, dst, rl.White)
	rl.EndShaderMode()
}

func (c *RenderCanvas) Unload() {
	if bound == c {
		Flush()
	}
	if c.target.ID != 0 {
		rl.UnloadRenderTexture(c.target)
		c.target = rl.RenderTexture2D{}
	}
}
