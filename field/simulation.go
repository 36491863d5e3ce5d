package field

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Flow sampling frequencies.
const (
	noiseSteps = 5
	xOff       = 0.00125
	yOff       = 0.00125
	zOff       = 0.0005
)

// angle samples the flow direction at (x, y) for the current tick. The
// noise range [-1, 1] is spread over several full turns.
func (f *ParticleField) angle(x, y float32) float32 {
	n := f.noise3D(float64(x)*xOff, float64(y)*yOff, float64(f.tick)*zOff)
	return float32(n * noiseSteps * tau)
}

// updateParticles advances every slot one step in slot order.
func (f *ParticleField) updateParticles() {
	for i := range f.pool {
		f.updateParticle(i)
	}
}

func (f *ParticleField) updateParticle(i int) {
	p := &f.pool[i]
	x, y := p.X, p.Y

	n := f.angle(x, y)
	sin, cos := math.Sincos(float64(n))
	vx := Lerp(p.VX, float32(cos), 0.5)
	vy := Lerp(p.VY, float32(sin), 0.5)
	x2 := x + vx*p.Speed
	y2 := y + vy*p.Speed

	f.drawParticle(x, y, x2, y2, p.Life, p.TTL, p.Radius, p.Hue)

	p.X, p.Y = x2, y2
	p.VX, p.VY = vx, vy
	p.Life++

	// Bounds are checked at the position the step started from.
	out := f.outOfBounds(x, y)
	expired := p.Life > p.TTL
	if out || expired {
		if out {
			f.stats.OutOfBounds++
		} else {
			f.stats.Expired++
		}
		f.stats.Respawns++
		f.initParticle(i)
	}
}

func (f *ParticleField) drawParticle(x, y, x2, y2, life, ttl, radius, hue float32) {
	f.offscreen.StrokeLine(x, y, x2, y2, radius, strokeColor(hue, FadeInOut(life, ttl)))
	f.stats.Strokes++
}

func (f *ParticleField) outOfBounds(x, y float32) bool {
	return x > float32(f.width) || x < 0 || y > float32(f.height) || y < 0
}

// strokeColor is hsla(hue, 100%, 60%, alpha).
func strokeColor(hue, alpha float32) color.NRGBA {
	r, g, b := colorful.Hsl(float64(hue), 1, 0.6).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: unitToByte(alpha)}
}

func unitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
