package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glowfield/field"
)

// OpenGL enums for custom blending.
const (
	glOne              = 1
	glSrcAlpha         = 0x0302
	glOneMinusSrcAlpha = 0x0303
	glFuncAdd          = 0x8006
	glMin              = 0x8007
	glMax              = 0x8008
)

type blendKind uint8

const (
	blendDefault blendKind = iota
	// blendStroke writes premultiplied colour with correct coverage into a
	// transparent target.
	blendStroke
	blendPremultiplied
	blendLighten
	blendDarken
)

var currentBlend = blendDefault

// useBlend switches the raylib blend state if it differs from the last one set.
func useBlend(k blendKind) {
	if k == currentBlend {
		return
	}
	switch k {
	case blendStroke:
		rl.SetBlendFactorsSeparate(glSrcAlpha, glOneMinusSrcAlpha, glOne, glOneMinusSrcAlpha, glFuncAdd, glFuncAdd)
		rl.BeginBlendMode(rl.BlendCustomSeparate)
	case blendPremultiplied:
		rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	case blendLighten:
		rl.SetBlendFactors(glOne, glOne, glMax)
		rl.BeginBlendMode(rl.BlendCustom)
	case blendDarken:
		rl.SetBlendFactors(glOne, glOne, glMin)
		rl.BeginBlendMode(rl.BlendCustom)
	default:
		rl.EndBlendMode()
	}
	currentBlend = k
}

// compositeBlend maps a field blend mode to the raylib state and the backdrop
// the glow shader flattens transparent pixels against.
func compositeBlend(mode field.BlendMode) (blendKind, float32) {
	switch mode {
	case field.BlendLighten:
		return blendLighten, 0
	case field.BlendDarken:
		return blendDarken, 1
	}
	return blendPremultiplied, 0
}
