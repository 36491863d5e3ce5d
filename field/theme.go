package field

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownTheme is returned for a theme name or value outside the enum.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme selects the background, glow brightness and blend mode.
type Theme uint8

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ThemeStyle holds the constants derived from a Theme.
type ThemeStyle struct {
	Background color.RGBA
	Brightness float32 // glow pass multiplier, 1 = unchanged
	Blend      BlendMode
}

var themeStyles = [...]ThemeStyle{
	ThemeDark: {
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Brightness: 2,
		Blend:      BlendLighten,
	},
	ThemeLight: {
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Brightness: 1,
		Blend:      BlendDarken,
	},
}

var themeNames = [...]string{
	ThemeDark:  "dark",
	ThemeLight: "light",
}

// ParseTheme converts "dark" or "light" (any case) to a Theme.
func ParseTheme(s string) (Theme, error) {
	for i, name := range themeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Theme(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Valid reports whether t is one of the declared themes.
func (t Theme) Valid() bool {
	return int(t) < len(themeStyles)
}

// Style returns the lookup-table entry for t. It panics on an invalid theme;
// New rejects those before any style is read.
func (t Theme) Style() ThemeStyle {
	return themeStyles[t]
}

func (t Theme) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Theme(%d)", uint8(t))
	}
	return themeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTheme, uint8(t))
	}
	return []byte(themeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
