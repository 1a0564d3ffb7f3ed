package recolor

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" string. Hex digits are case-insensitive.
// Anything else, including the short "#RGB" form and a missing "#", wraps
// ErrColorParse.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w %q: want #RRGGBB", ErrColorParse, s)
	}

	var ch [3]uint8
	for i := range ch {
		digits := s[1+2*i : 3+2*i]
		v, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: bad hex byte %q", ErrColorParse, s, digits)
		}
		ch[i] = uint8(v)
	}

	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is ParseHex for constants; it panics on malformed input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the color as lowercase "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA returns c with the given alpha as a non-premultiplied color.
func (c Color) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// DistanceLab returns the CIE76 distance between two colors in Lab space.
// It plays no part in matching; it is reported so callers can judge how
// visible a replacement will be.
func (c Color) DistanceLab(other Color) float64 {
	return c.colorful().DistanceLab(other.colorful())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}
