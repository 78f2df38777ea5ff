package grove

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrLengthMismatch is returned when a sequence of the wrong length is
	// used to build a Vector, Rect or Color.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrComponentNotFound is returned when a game object has no component
	// of the requested type.
	ErrComponentNotFound = errors.New("component not found")

	// ErrObjectNotFound is returned by World lookups that match nothing.
	ErrObjectNotFound = errors.New("game object not found")

	// ErrUnsupported is returned when an operation is not supported by the
	// concrete type it was called on (e.g. SetImage on a renderer without a
	// settable source image).
	ErrUnsupported = errors.New("unsupported operation")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default background.
var ColorWhite = Color{1, 1, 1, 1}

// ColorMagenta marks missing images.
var ColorMagenta = Color{1, 0, 1, 1}

// NewColor returns an opaque color.
func NewColor(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// Gray returns an opaque gray with all three channels set to v.
func Gray(v float64) Color {
	return Color{v, v, v, 1}
}

// ColorOf builds an opaque color from one value (gray) or three values
// (r, g, b). Four values set alpha as well.
func ColorOf(vs ...float64) (Color, error) {
	switch len(vs) {
	case 1:
		return Gray(vs[0]), nil
	case 3:
		return NewColor(vs[0], vs[1], vs[2]), nil
	case 4:
		return Color{vs[0], vs[1], vs[2], vs[3]}, nil
	default:
		return Color{}, fmt.Errorf("grove: color from %d values: %w", len(vs), ErrLengthMismatch)
	}
}

// RGB255 returns the red, green and blue channels as 0–255 integers.
// Values are truncated, not rounded.
func (c Color) RGB255() [3]uint8 {
	return [3]uint8{
		uint8(clamp01(c.R) * 255),
		uint8(clamp01(c.G) * 255),
		uint8(clamp01(c.B) * 255),
	}
}

// toRGBA converts a Color to a premultiplied colorRGBA for image fills.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max]. A nil rng uses the
// package-level source.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	if rng == nil {
		return r.Min + rand.Float64()*(r.Max-r.Min)
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
