package grove

import "math"

// cacheKeyPlaces is the number of decimals transform state is rounded to
// before it is used as a cache key.
const cacheKeyPlaces = 2

// RenderKey is the rounded transform snapshot TransformedImageRenderer
// caches on. Keys are always finite: NaN never compares equal and would
// never hit.
type RenderKey struct {
	Pos      Vector
	Scale    Vector
	Rotation float64
}

// TransformedImageRenderer draws a source image scaled by the owner's
// Transform.Scale and rotated by Transform.Rotation, centered on
// Transform.Pos plus an object-local offset.
//
// World size is the scale factor itself: a scale of (1, 1) covers one world
// unit regardless of the source resolution. Rotation grows the placement
// rect to the rotated bounding box.
type TransformedImageRenderer struct {
	ComponentBase
	CachedRenderer[RenderKey]

	gfx    Graphics
	source Image
	offset Vector
}

// NewTransformedImageRenderer returns a renderer for src. src may be nil,
// in which case nothing is drawn until SetImage is called.
func NewTransformedImageRenderer(gfx Graphics, src Image) *TransformedImageRenderer {
	r := &TransformedImageRenderer{gfx: gfx, source: src}
	r.Init(r)
	return r
}

// Source returns the untransformed source image.
func (r *TransformedImageRenderer) Source() Image {
	return r.source
}

// SetSourceImage replaces the source image and clears the cache.
func (r *TransformedImageRenderer) SetSourceImage(img Image) {
	r.source = img
	r.ClearCache()
}

// Offset returns the object-local offset from Transform.Pos.
func (r *TransformedImageRenderer) Offset() Vector {
	return r.offset
}

// SetOffset sets the object-local offset. The offset is not part of the
// cache key, so changing it clears the cache.
func (r *TransformedImageRenderer) SetOffset(v Vector) {
	if v == r.offset {
		return
	}
	r.offset = v
	r.ClearCache()
}

// CacheKey rounds the owner's transform to two decimals. A transform with
// a NaN or infinite component has nothing to render.
func (r *TransformedImageRenderer) CacheKey() (RenderKey, bool) {
	if r.source == nil {
		return RenderKey{}, false
	}
	t := r.transformOf()
	if t == nil {
		return RenderKey{}, false
	}
	key := RenderKey{
		Pos:      t.Pos.Round(cacheKeyPlaces),
		Scale:    t.Scale.Round(cacheKeyPlaces),
		Rotation: roundTo(t.Rotation, cacheKeyPlaces),
	}
	for _, v := range [...]float64{key.Pos.X, key.Pos.Y, key.Scale.X, key.Scale.Y, key.Rotation} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return RenderKey{}, false
		}
	}
	return key, true
}

// scaledSize is the pixel size of the source after scaling, before
// rotation. Fractions are truncated.
func (r *TransformedImageRenderer) scaledSize(key RenderKey) (int, int) {
	sw, sh := r.source.Size()
	return int(math.Abs(key.Scale.X * float64(sw))), int(math.Abs(key.Scale.Y * float64(sh)))
}

// Render scales the source, then rotates it by key.Rotation degrees.
func (r *TransformedImageRenderer) Render(key RenderKey) Image {
	w, h := r.scaledSize(key)
	if w <= 0 || h <= 0 {
		return nil
	}
	img := r.gfx.Scale(r.source, w, h)
	if key.Rotation != 0 {
		img = r.gfx.Rotate(img, key.Rotation)
	}
	return img
}

// RenderRect centers img on key.Pos plus the offset rotated into world
// space. The rect size is the scale, grown by however much rotation grew
// the image.
func (r *TransformedImageRenderer) RenderRect(key RenderKey, img Image) Rect {
	w, h := r.scaledSize(key)
	iw, ih := img.Size()
	wh := Vector{
		math.Abs(key.Scale.X) * float64(iw) / float64(w),
		math.Abs(key.Scale.Y) * float64(ih) / float64(h),
	}
	pos := key.Pos.Sub(wh.Div(2)).Add(r.offset.ChangeRotation(degToRad(key.Rotation)))
	return RectFromXYWH(pos, wh)
}

// SolidColorRenderer is a TransformedImageRenderer whose source is a
// uniformly filled image.
type SolidColorRenderer struct {
	TransformedImageRenderer
	color Color
}

// NewSolidColorRenderer returns a renderer with a w×h source filled with c.
func NewSolidColorRenderer(gfx Graphics, c Color, w, h int) *SolidColorRenderer {
	s := &SolidColorRenderer{}
	s.gfx = gfx
	s.source = gfx.NewImage(w, h)
	s.Init(&s.TransformedImageRenderer)
	s.SetColor(c)
	return s
}

func (s *SolidColorRenderer) Color() Color {
	return s.color
}

// SetColor fills the source with c, quantized to 8 bits per channel, and
// clears the cache.
func (s *SolidColorRenderer) SetColor(c Color) {
	s.color = c
	q := c.RGB255()
	s.source.Fill(Color{float64(q[0]) / 255, float64(q[1]) / 255, float64(q[2]) / 255, 1})
	s.ClearCache()
}

// Resolution returns the source size in pixels.
func (s *SolidColorRenderer) Resolution() (int, int) {
	return s.source.Size()
}

// SetResolution rescales the source and clears the cache.
func (s *SolidColorRenderer) SetResolution(w, h int) {
	s.source = s.gfx.Scale(s.source, w, h)
	s.ClearCache()
}
