package rendering

import (
	"fmt"
	"strconv"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha channel (0-255).
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Red returns the red channel (0-255).
func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

// Green returns the green channel (0-255).
func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

// Blue returns the blue channel (0-255).
func (c Color) Blue() uint8 {
	return uint8(c)
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
// The RGB channels are unchanged.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Lerp linearly interpolates between c and other by t in [0, 1],
// interpolating each channel independently.
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	lerp8 := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGBA(
		lerp8(c.Red(), other.Red()),
		lerp8(c.Green(), other.Green()),
		lerp8(c.Blue(), other.Blue()),
		lerp8(c.Alpha(), other.Alpha()),
	)
}

// ParseColor parses a hex color string in "RRGGBB" or "AARRGGBB" form,
// with an optional leading '#'. Six-digit colors are opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return Color(uint32(v) | 0xFF000000), nil
	case 8:
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want 6 or 8 hex digits, got %d", s, len(hex))
	}
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
