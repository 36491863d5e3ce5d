package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SavePNG writes the canvas contents to path.
func SavePNG(c *RenderCanvas, path string) error {
	if c.target.ID == 0 {
		return fmt.Errorf("saving %s: canvas has been unloaded", path)
	}
	Flush()

	img := rl.LoadImageFromTexture(c.target.Texture)
	defer rl.UnloadImage(img)

	// Render textures are stored upside down.
	rl.ImageFlipVertical(img)

	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("exporting %s failed", path)
	}
	return nil
}
