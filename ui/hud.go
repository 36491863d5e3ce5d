// Package ui draws the read-only stats overlay.
package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/field"
	"github.com/pthm-cable/glowfield/telemetry"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Title         string
	Tick          uint64
	Theme         field.Theme
	Width, Height int
	Perf          telemetry.PerfStats
	Frame         field.FrameStats
}

// HUD renders a small raygui panel in the top-left corner.
type HUD struct {
	x, y       float32
	width      float32
	lineHeight float32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{x: 10, y: 10, width: 260, lineHeight: 18}
}

// Lines formats the HUD rows.
func (h *HUD) Lines(data HUDData) []string {
	return []string{
		fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, int(data.Perf.FPS)),
		fmt.Sprintf("Frame: %s avg, %s p95",
			data.Perf.AvgTickDuration.Round(time.Microsecond),
			data.Perf.P95TickDuration.Round(time.Microsecond)),
		fmt.Sprintf("Strokes: %d | Respawns: %d", data.Frame.Strokes, data.Frame.Respawns),
		fmt.Sprintf("Theme: %s | %dx%d", data.Theme, data.Width, data.Height),
	}
}

// Draw renders the HUD. Must be called between BeginDrawing and EndDrawing.
func (h *HUD) Draw(data HUDData) {
	lines := h.Lines(data)
	header := float32(24)
	height := header + float32(len(lines))*h.lineHeight + 8

	gui.Panel(rl.Rectangle{X: h.x, Y: h.y, Width: h.width, Height: height}, data.Title)

	y := h.y + header + 4
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: h.x + 8, Y: y, Width: h.width - 16, Height: h.lineHeight}, line)
		y += h.lineHeight
	}
}
