package renderer

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// glowFS blurs a premultiplied texture, scales its colour and flattens the
// result against a backdrop so MIN/MAX blending sees opaque colour.
const glowFS = `#version 330

in vec2 fragTexCoord;
in vec4 fragColor;

uniform sampler2D texture0;
uniform vec2 texel;
uniform float radius;
uniform float brightness;
uniform float backdrop;

out vec4 finalColor;

void main() {
    vec4 acc = vec4(0.0);
    if (radius < 0.5) {
        acc = texture(texture0, fragTexCoord);
    } else {
        // 9x9 taps spanning two standard deviations each way.
        float spacing = radius * 0.5;
        float total = 0.0;
        for (int i = -4; i <= 4; i++) {
            for (int j = -4; j <= 4; j++) {
                float d2 = float(i * i + j * j) * 0.25;
                float w = exp(-0.5 * d2);
                vec2 off = vec2(float(i), float(j)) * spacing * texel;
                acc += texture(texture0, fragTexCoord + off) * w;
                total += w;
            }
        }
        acc /= total;
    }
    vec3 rgb = min(acc.rgb * brightness, vec3(1.0));
    finalColor = vec4(vec3(backdrop) * (1.0 - acc.a) + rgb, 1.0);
}
`

var errShaderLoad = errors.New("glow shader failed to compile")

// glowShader is the filter used by the glow and crisp passes.
type glowShader struct {
	shader        rl.Shader
	texelLoc      int32
	radiusLoc     int32
	brightnessLoc int32
	backdropLoc   int32
}

func loadGlowShader() (*glowShader, error) {
	shader := rl.LoadShaderFromMemory("", glowFS)
	if shader.ID == 0 {
		return nil, errShaderLoad
	}
	return &glowShader{
		shader:        shader,
		texelLoc:      rl.GetShaderLocation(shader, "texel"),
		radiusLoc:     rl.GetShaderLocation(shader, "radius"),
		brightnessLoc: rl.GetShaderLocation(shader, "brightness"),
		backdropLoc:   rl.GetShaderLocation(shader, "backdrop"),
	}, nil
}

// set uploads the uniforms for one pass over a w x h source.
func (g *glowShader) set(w, h int, radius, brightness, backdrop float32) {
	rl.SetShaderValue(g.shader, g.texelLoc, []float32{1 / float32(w), 1 / float32(h)}, rl.ShaderUniformVec2)
	rl.SetShaderValue(g.shader, g.radiusLoc, []float32{radius}, rl.ShaderUniformFloat)
	rl.SetShaderValue(g.shader, g.brightnessLoc, []float32{brightness}, rl.ShaderUniformFloat)
	rl.SetShaderValue(g.shader, g.backdropLoc, []float32{backdrop}, rl.ShaderUniformFloat)
}

func (g *glowShader) unload() {
	rl.UnloadShader(g.shader)
}
