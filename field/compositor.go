package field

// Frame phases reported to the Tracer.
const (
	PhaseClear    = "clear"
	PhaseSimulate = "simulate"
	PhaseGlow     = "glow"
	PhaseCrisp    = "crisp"
)

// Glow blur radii in pixels, wide halo first.
var glowBlur = [...]float32{8, 4}

// frame draws one frame and schedules the next. It is the only callback
// handed to RequestFrame, so the loop ends once the field is destroyed.
func (f *ParticleField) frame() {
	if !f.active {
		return
	}
	f.tracer.StartTick()
	f.tick++

	f.tracer.StartPhase(PhaseClear)
	f.offscreen.Clear()
	f.visible.Fill(f.style.Background)

	f.tracer.StartPhase(PhaseSimulate)
	f.stats = FrameStats{}
	f.updateParticles()

	f.tracer.StartPhase(PhaseGlow)
	f.renderGlow()

	f.tracer.StartPhase(PhaseCrisp)
	f.renderToScreen()
	f.tracer.EndTick()

	f.platform.RequestFrame(f.frameFn)
}

func (f *ParticleField) renderGlow() {
	for _, blur := range glowBlur {
		f.visible.Composite(f.offscreen, CompositeOp{
			Blur:       blur,
			Brightness: f.style.Brightness,
			Blend:      f.style.Blend,
		})
	}
}

func (f *ParticleField) renderToScreen() {
	f.visible.Composite(f.offscreen, CompositeOp{Blend: f.style.Blend})
}
