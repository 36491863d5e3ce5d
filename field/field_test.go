package field

import (
	"errors"
	"testing"
)

func checkPoolInvariants(t *testing.T, f *ParticleField) {
	t.Helper()
	for i, p := range f.pool {
		if p.Life < 0 {
			t.Fatalf("slot %d: negative life %v", i, p.Life)
		}
		if p.TTL <= 0 {
			t.Fatalf("slot %d: non-positive ttl %v", i, p.TTL)
		}
		if p.Speed <= 0 {
			t.Fatalf("slot %d: non-positive speed %v", i, p.Speed)
		}
	}
}

func TestNewInitialState(t *testing.T) {
	rig := newTestRig(t, 100, 100, ThemeDark, 0)
	f := rig.field

	if f.Tick() != 1 {
		t.Errorf("expected construction to draw one frame, tick = %d", f.Tick())
	}
	if c := f.Center(); c.X != 50 || c.Y != 50 {
		t.Errorf("expected center (50, 50), got %+v", c)
	}
	if rig.platform.requested != 1 || len(rig.platform.frames) != 1 {
		t.Errorf("expected exactly one scheduled frame, got %d", rig.platform.requested)
	}
	if len(rig.platform.listeners) != 1 {
		t.Errorf("expected one resize listener, got %d", len(rig.platform.listeners))
	}
	if f.Theme() != ThemeDark {
		t.Errorf("expected dark theme, got %v", f.Theme())
	}
	if !f.Active() {
		t.Error("expected field to be active")
	}
	checkPoolInvariants(t, f)
}

func TestRunsManyFramesKeepingInvariants(t *testing.T) {
	platform := newFakePlatform(320, 240)
	visible := &fakeCanvas{name: "visible", w: 320, h: 240}
	var calls int
	wobble := func(int64) func(x, y, z float64) float64 {
		return func(x, y, z float64) float64 {
			calls++
			return float64(calls%7)/3.5 - 1
		}
	}
	f, err := New(Env{Platform: platform, Noise: wobble, Seed: 9, Logger: quietLogger()}, visible, ThemeLight)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 600; i++ {
		platform.runFrame()
		checkPoolInvariants(t, f)
	}
	if f.Tick() != 601 {
		t.Errorf("expected tick 601, got %d", f.Tick())
	}
	if len(platform.frames) != 1 {
		t.Errorf("expected one pending frame, got %d", len(platform.frames))
	}
}

func TestResizeUpdatesCenterAndSurfaces(t *testing.T) {
	rig := newTestRig(t, 100, 100, ThemeDark, 0)
	rig.visible.resetOps()
	rig.offscreen.resetOps()

	rig.platform.resizeTo(300, 200)

	f := rig.field
	if c := f.Center(); c.X != 150 || c.Y != 100 {
		t.Errorf("expected center (150, 100), got %+v", c)
	}
	if w, h := f.Size(); w != 300 || h != 200 {
		t.Errorf("expected size 300x200, got %dx%d", w, h)
	}
	for _, c := range []*fakeCanvas{rig.visible, rig.offscreen} {
		if c.w != 300 || c.h != 200 {
			t.Errorf("%s: expected 300x200, got %dx%d", c.name, c.w, c.h)
		}
	}

	// The visible picture is parked in the offscreen canvas across the resize.
	off := rig.offscreen.ops
	if len(off) != 2 || off[0].kind != "resize" || off[1].kind != "composite" || off[1].src != rig.visible {
		t.Fatalf("unexpected offscreen ops %+v", off)
	}
	vis := rig.visible.ops
	if len(vis) != 2 || vis[0].kind != "resize" || vis[1].kind != "composite" || vis[1].src != rig.offscreen {
		t.Fatalf("unexpected visible ops %+v", vis)
	}
	if vis[1].op.Blend != BlendSourceOver || vis[1].op.Blur != 0 {
		t.Errorf("expected a plain copy, got %+v", vis[1].op)
	}
}

func TestRespawnUsesNewBounds(t *testing.T) {
	rig := newTestRig(t, 100, 100, ThemeDark, 0)
	rig.platform.resizeTo(400, 50)
	f := rig.field

	for i := range f.pool {
		f.initParticle(i)
	}
	for i, p := range f.pool {
		if p.X < 0 || p.X >= 400 {
			t.Fatalf("slot %d: x %v outside [0, 400)", i, p.X)
		}
		if p.Y < 25-rangeY || p.Y > 25+rangeY {
			t.Fatalf("slot %d: y %v outside 25 ± %d", i, p.Y, rangeY)
		}
	}
}

func TestDestroyStopsLoopAndIgnoresResize(t *testing.T) {
	rig := newTestRig(t, 100, 100, ThemeDark, 0)
	f := rig.field

	f.Destroy()

	if f.Active() {
		t.Error("expected field to be inactive after Destroy")
	}
	if len(rig.platform.listeners) != 0 {
		t.Errorf("expected resize listener removed, %d remain", len(rig.platform.listeners))
	}
	if !rig.offscreen.unloaded {
		t.Error("expected offscreen canvas to be released")
	}

	rig.visible.resetOps()
	rig.platform.resizeTo(640, 480)
	if c := f.Center(); c.X != 50 || c.Y != 50 {
		t.Errorf("expected center unchanged after destroy, got %+v", c)
	}
	if rig.visible.w != 100 || len(rig.visible.ops) != 0 {
		t.Errorf("expected visible surface untouched, got %dx%d with %d ops", rig.visible.w, rig.visible.h, len(rig.visible.ops))
	}

	// The frame queued before Destroy runs as a no-op and does not reschedule.
	requested := rig.platform.requested
	rig.platform.runFrame()
	if f.Tick() != 1 {
		t.Errorf("expected no frame after destroy, tick = %d", f.Tick())
	}
	if rig.platform.requested != requested || len(rig.platform.frames) != 0 {
		t.Errorf("expected no further frames scheduled, requested %d -> %d", requested, rig.platform.requested)
	}
	if len(rig.visible.ops) != 0 {
		t.Errorf("expected no drawing after destroy, got %d ops", len(rig.visible.ops))
	}

	// Second Destroy is a no-op.
	f.Destroy()
}

func TestNewErrors(t *testing.T) {
	errCanvas := errors.New("no gl context")

	tests := []struct {
		name     string
		surface  Canvas
		platform *fakePlatform
		theme    Theme
		want     error
	}{
		{"nil surface", nil, newFakePlatform(10, 10), ThemeDark, ErrNoSurface},
		{"nil platform", &fakeCanvas{w: 10, h: 10}, nil, ThemeDark, ErrNoPlatform},
		{"bad theme", &fakeCanvas{w: 10, h: 10}, newFakePlatform(10, 10), Theme(7), ErrUnknownTheme},
		{"offscreen failure", &fakeCanvas{w: 10, h: 10}, &fakePlatform{w: 10, h: 10, listeners: map[int]func(){}, canvasErr: errCanvas}, ThemeDark, errCanvas},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := Env{Noise: constNoise(0), Seed: 1, Logger: quietLogger()}
			if tc.platform != nil {
				env.Platform = tc.platform
			}
			f, err := New(env, tc.surface, tc.theme)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if f != nil {
				t.Error("expected nil field on error")
			}
			if tc.platform != nil {
				if len(tc.platform.listeners) != 0 || tc.platform.requested != 0 {
					t.Errorf("failed construction left %d listeners and %d frames", len(tc.platform.listeners), tc.platform.requested)
				}
			}
		})
	}
}
