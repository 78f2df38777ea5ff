package grove

import "image"

// stubImage is an in-memory Image that records fills and blits.
type stubImage struct {
	w, h   int
	fill   Color
	fills  int
	blits  []stubBlit
	origin string
}

type stubBlit struct {
	src    *stubImage
	x, y   int
	w, h   int
	scaled bool
}

func newStubImage(w, h int) *stubImage {
	return &stubImage{w: w, h: h, origin: "new"}
}

func (i *stubImage) Size() (int, int) { return i.w, i.h }

func (i *stubImage) Fill(c Color) {
	i.fill = c
	i.fills++
}

func (i *stubImage) DrawAt(src Image, x, y int) {
	s := src.(*stubImage)
	i.blits = append(i.blits, stubBlit{src: s, x: x, y: y, w: s.w, h: s.h})
}

func (i *stubImage) DrawScaled(src Image, x, y, w, h int) {
	i.blits = append(i.blits, stubBlit{src: src.(*stubImage), x: x, y: y, w: w, h: h, scaled: true})
}

// stubScreen is a stubImage that also records debug primitives.
type stubScreen struct {
	stubImage
	circles [][3]float64
	lines   [][4]float64
}

func (s *stubScreen) FillCircle(cx, cy, r float64, c Color) {
	s.circles = append(s.circles, [3]float64{cx, cy, r})
}

func (s *stubScreen) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	s.lines = append(s.lines, [4]float64{x0, y0, x1, y1})
}

// stubGraphics counts transform calls so tests can observe caching.
type stubGraphics struct {
	scales  int
	rotates int
}

func (g *stubGraphics) NewImage(w, h int) Image {
	return newStubImage(w, h)
}

func (g *stubGraphics) FromImage(img image.Image) Image {
	b := img.Bounds()
	return &stubImage{w: b.Dx(), h: b.Dy(), origin: "decoded"}
}

func (g *stubGraphics) Scale(src Image, w, h int) Image {
	g.scales++
	return &stubImage{w: w, h: h, fill: src.(*stubImage).fill, origin: "scaled"}
}

func (g *stubGraphics) Rotate(src Image, degrees float64) Image {
	g.rotates++
	sw, sh := src.Size()
	w, h := rotatedSize(sw, sh, degrees)
	return &stubImage{w: w, h: h, fill: src.(*stubImage).fill, origin: "rotated"}
}
