package field

import (
	"image/color"
	"testing"
)

func TestFramePassOrder(t *testing.T) {
	tests := []struct {
		theme      Theme
		background color.RGBA
		brightness float32
		blend      BlendMode
	}{
		{ThemeDark, color.RGBA{0, 0, 0, 255}, 2, BlendLighten},
		{ThemeLight, color.RGBA{255, 255, 255, 255}, 1, BlendDarken},
	}
	for _, tc := range tests {
		t.Run(tc.theme.String(), func(t *testing.T) {
			rig := newTestRig(t, 100, 100, tc.theme, 0)
			rig.visible.resetOps()
			rig.offscreen.resetOps()

			rig.platform.runFrame()

			off := rig.offscreen.ops
			if len(off) != 1 || off[0].kind != "clear" {
				t.Fatalf("expected offscreen to be cleared once, got %+v", off)
			}
			if len(rig.offscreen.strokes) != ParticleCount {
				t.Errorf("expected %d strokes, got %d", ParticleCount, len(rig.offscreen.strokes))
			}

			vis := rig.visible.ops
			if len(vis) != 4 {
				t.Fatalf("expected fill + 3 composites, got %+v", vis)
			}
			if vis[0].kind != "fill" || vis[0].fill != tc.background {
				t.Errorf("expected background fill %v, got %+v", tc.background, vis[0])
			}
			wantOps := []CompositeOp{
				{Blur: 8, Brightness: tc.brightness, Blend: tc.blend},
				{Blur: 4, Brightness: tc.brightness, Blend: tc.blend},
				{Blend: tc.blend},
			}
			for i, want := range wantOps {
				got := vis[i+1]
				if got.kind != "composite" || got.src != rig.offscreen || got.op != want {
					t.Errorf("pass %d: expected %+v from offscreen, got %+v", i, want, got)
				}
			}
		})
	}
}

func TestFrameSchedulesItself(t *testing.T) {
	rig := newTestRig(t, 100, 100, ThemeDark, 0)
	for i := 0; i < 5; i++ {
		rig.platform.runFrame()
	}
	if rig.field.Tick() != 6 {
		t.Errorf("expected tick 6, got %d", rig.field.Tick())
	}
	if rig.platform.requested != 6 {
		t.Errorf("expected 6 frame requests, got %d", rig.platform.requested)
	}
}

func TestFrameReportsPhasesAndStats(t *testing.T) {
	platform := newFakePlatform(100, 100)
	visible := &fakeCanvas{name: "visible", w: 100, h: 100}
	tracer := &recordingTracer{}
	f, err := New(Env{Platform: platform, Noise: constNoise(0), Seed: 5, Logger: quietLogger(), Tracer: tracer}, visible, ThemeDark)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{PhaseClear, PhaseSimulate, PhaseGlow, PhaseCrisp}
	if tracer.ticks != 1 || len(tracer.phases) != len(want) {
		t.Fatalf("expected one traced tick with %d phases, got %d ticks %v", len(want), tracer.ticks, tracer.phases)
	}
	for i, name := range want {
		if tracer.phases[i] != name {
			t.Errorf("phase %d: expected %s, got %s", i, name, tracer.phases[i])
		}
	}

	stats := f.Stats()
	if stats.Strokes != ParticleCount {
		t.Errorf("expected %d strokes, got %d", ParticleCount, stats.Strokes)
	}
	if stats.Respawns != stats.OutOfBounds+stats.Expired {
		t.Errorf("respawn counters disagree: %+v", stats)
	}
	// Most spawns land outside a 100px tall surface (rangeY is 512).
	if stats.OutOfBounds == 0 {
		t.Errorf("expected out-of-bounds respawns on a small surface, got %+v", stats)
	}
}
