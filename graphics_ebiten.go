package grove

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenImage adapts an *ebiten.Image to Image and Painter.
type EbitenImage struct {
	img *ebiten.Image
}

// WrapEbiten wraps img. Draw calls go straight to img.
func WrapEbiten(img *ebiten.Image) *EbitenImage {
	return &EbitenImage{img: img}
}

// Ebiten returns the underlying *ebiten.Image.
func (e *EbitenImage) Ebiten() *ebiten.Image {
	return e.img
}

func (e *EbitenImage) Size() (int, int) {
	b := e.img.Bounds()
	return b.Dx(), b.Dy()
}

func (e *EbitenImage) Fill(c Color) {
	e.img.Fill(c.toRGBA())
}

// DrawAt blits src at (x, y). src must be an *EbitenImage.
func (e *EbitenImage) DrawAt(src Image, x, y int) {
	s, ok := src.(*EbitenImage)
	if !ok {
		panic("grove: EbitenImage.DrawAt: source is not an *EbitenImage")
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	e.img.DrawImage(s.img, &op)
}

// DrawScaled blits src stretched to w×h at (x, y) with linear filtering.
// src must be an *EbitenImage.
func (e *EbitenImage) DrawScaled(src Image, x, y, w, h int) {
	s := mustEbiten(src)
	sw, sh := s.Size()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	e.img.DrawImage(s.img, &op)
}

func (e *EbitenImage) FillCircle(cx, cy, r float64, c Color) {
	vector.DrawFilledCircle(e.img, float32(cx), float32(cy), float32(r), c.toRGBA(), true)
}

func (e *EbitenImage) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	vector.StrokeLine(e.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.toRGBA(), true)
}

// EbitenGraphics is the Graphics backend for Ebitengine.
type EbitenGraphics struct {
	// Filter is used for Scale and Rotate. Defaults to FilterLinear.
	Filter ebiten.Filter
}

// NewEbitenGraphics returns an EbitenGraphics using linear filtering.
func NewEbitenGraphics() *EbitenGraphics {
	return &EbitenGraphics{Filter: ebiten.FilterLinear}
}

func (g *EbitenGraphics) NewImage(w, h int) Image {
	return WrapEbiten(ebiten.NewImage(w, h))
}

func (g *EbitenGraphics) FromImage(img image.Image) Image {
	return WrapEbiten(ebiten.NewImageFromImage(img))
}

func (g *EbitenGraphics) Scale(src Image, w, h int) Image {
	s := mustEbiten(src)
	sw, sh := s.Size()
	dst := ebiten.NewImage(w, h)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	op.Filter = g.Filter
	dst.DrawImage(s.img, &op)
	return WrapEbiten(dst)
}

// Rotate turns src counter-clockwise on screen. Ebitengine's positive
// rotation is clockwise with Y down, so the angle is negated.
func (g *EbitenGraphics) Rotate(src Image, degrees float64) Image {
	s := mustEbiten(src)
	sw, sh := s.Size()
	nw, nh := rotatedSize(sw, sh, degrees)
	dst := ebiten.NewImage(nw, nh)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
	op.GeoM.Rotate(-degToRad(degrees))
	op.GeoM.Translate(float64(nw)/2, float64(nh)/2)
	op.Filter = g.Filter
	dst.DrawImage(s.img, &op)
	return WrapEbiten(dst)
}

func mustEbiten(img Image) *EbitenImage {
	e, ok := img.(*EbitenImage)
	if !ok {
		panic("grove: EbitenGraphics: image is not an *EbitenImage")
	}
	return e
}
