package grove

import (
	"image"
	"math"
)

// Image is an opaque pixel surface owned by a Graphics backend.
type Image interface {
	// Size returns the width and height in pixels.
	Size() (w, h int)
	// Fill replaces every pixel with c.
	Fill(c Color)
	// DrawAt blits src with its top-left corner at (x, y).
	DrawAt(src Image, x, y int)
	// DrawScaled blits src stretched to w×h with its top-left corner at
	// (x, y). No intermediate image is allocated.
	DrawScaled(src Image, x, y, w, h int)
}

// Graphics creates and transforms images. Every transform returns a new
// image; sources are never modified.
type Graphics interface {
	NewImage(w, h int) Image
	FromImage(img image.Image) Image
	// Scale returns src resized to w×h.
	Scale(src Image, w, h int) Image
	// Rotate returns src rotated counter-clockwise by degrees. The result
	// is sized to the rotated bounding box.
	Rotate(src Image, degrees float64) Image
}

// Painter is implemented by images that can draw debug primitives.
type Painter interface {
	FillCircle(cx, cy, r float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// rotatedSize returns the bounding box of a w×h image rotated by degrees.
// Multiples of 90° are exact.
func rotatedSize(w, h int, degrees float64) (int, int) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	// Snap float noise so that 90° turns swap w and h exactly.
	const eps = 1e-9
	if sin < eps {
		sin = 0
	}
	if cos < eps {
		cos = 0
	}
	fw, fh := float64(w), float64(h)
	nw := math.Ceil(fw*cos + fh*sin - eps)
	nh := math.Ceil(fw*sin + fh*cos - eps)
	return int(nw), int(nh)
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
