package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Components returns the red, green, blue and alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Alpha8 returns the alpha byte.
func (c Color) Alpha8() uint8 {
	return uint8(c >> 24)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// RGBA implements image/color.Color with alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.Components()
	a = uint32(a8)
	a |= a << 8
	r = uint32(r8)
	r |= r << 8
	r = r * a / 0xFFFF
	g = uint32(g8)
	g |= g << 8
	g = g * a / 0xFFFF
	b = uint32(b8)
	b |= b << 8
	b = b * a / 0xFFFF
	return r, g, b, a
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	r, g, b, a := c.Components()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// MarshalText encodes the color as #rrggbbaa.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	switch len(s) {
	case 6:
		s += "ff"
	case 8:
	default:
		return fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", string(text))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", string(text), err)
	}
	*c = RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
	return nil
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
