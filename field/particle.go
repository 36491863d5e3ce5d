package field

// Pool sizing and spawn distribution.
const (
	ParticleCount = 1000

	// ParticleFields is the number of scalars carried by one Particle.
	ParticleFields = 9

	rangeY      = 512
	baseTTL     = 256
	rangeTTL    = 256
	baseSpeed   = 0.1
	rangeSpeed  = 5
	baseRadius  = 2
	rangeRadius = 2
	baseHue     = 60
	rangeHue    = 5
)

// Particle is one flow-field tracer. Slots in a Pool are reinitialized in
// place on respawn; a Particle is never allocated on its own.
type Particle struct {
	X, Y   float32
	VX, VY float32
	Life   float32 // frames since (re)spawn
	TTL    float32 // frames before forced respawn
	Speed  float32
	Radius float32
	Hue    float32
}

// Pool is the fixed-capacity particle store.
type Pool [ParticleCount]Particle

// rand returns a uniform value in [0, n).
func (f *ParticleField) rand(n float32) float32 {
	return n * f.rng.Float32()
}

// randRange returns a uniform value in (-n, n].
func (f *ParticleField) randRange(n float32) float32 {
	return n - f.rand(2*n)
}

// initParticle resets slot i to a fresh spawn state around the vertical center.
func (f *ParticleField) initParticle(i int) {
	f.pool[i] = Particle{
		X:      f.rand(float32(f.width)),
		Y:      f.center.Y + f.randRange(rangeY),
		Life:   0,
		TTL:    baseTTL + f.rand(rangeTTL),
		Speed:  baseSpeed + f.rand(rangeSpeed),
		Radius: baseRadius + f.rand(rangeRadius),
		Hue:    baseHue + f.rand(rangeHue),
	}
}

func (f *ParticleField) initParticles() {
	for i := range f.pool {
		f.initParticle(i)
	}
}
