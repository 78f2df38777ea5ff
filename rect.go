package grove

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle stored as two corners. The coordinate
// system has its origin at the top-left, with Y increasing downward, so
// Pos1 is the top-left corner and Pos2 the bottom-right.
//
// Pos1 <= Pos2 holds on both axes after construction and after every
// setter; setters re-sort the corners when a write would cross them.
type Rect struct {
	pos1, pos2 Vector
}

// NewRect returns the rectangle spanned by two arbitrary corners.
func NewRect(a, b Vector) Rect {
	r := Rect{a, b}
	r.normalize()
	return r
}

// RectFromXYWH returns the rectangle with top-left xy and size wh.
func RectFromXYWH(xy, wh Vector) Rect {
	return NewRect(xy, xy.Add(wh))
}

// RectOf builds a rectangle from two corner sequences of length 2.
func RectOf(a, b []float64) (Rect, error) {
	p1, err := VectorOf(a...)
	if err != nil {
		return Rect{}, fmt.Errorf("grove: rect corner 1: %w", err)
	}
	p2, err := VectorOf(b...)
	if err != nil {
		return Rect{}, fmt.Errorf("grove: rect corner 2: %w", err)
	}
	return NewRect(p1, p2), nil
}

func (r *Rect) normalize() {
	if r.pos1.X > r.pos2.X {
		r.pos1.X, r.pos2.X = r.pos2.X, r.pos1.X
	}
	if r.pos1.Y > r.pos2.Y {
		r.pos1.Y, r.pos2.Y = r.pos2.Y, r.pos1.Y
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect((%g, %g), (%g, %g))", r.pos1.X, r.pos1.Y, r.pos2.X, r.pos2.Y)
}

func (r Rect) Pos1() Vector { return r.pos1 }
func (r Rect) Pos2() Vector { return r.pos2 }

func (r Rect) Width() float64  { return math.Abs(r.pos2.X - r.pos1.X) }
func (r Rect) Height() float64 { return math.Abs(r.pos2.Y - r.pos1.Y) }

// Size returns (Width, Height).
func (r Rect) Size() Vector { return Vector{r.Width(), r.Height()} }

// XYWH returns left, top, width and height.
func (r Rect) XYWH() (x, y, w, h float64) {
	return r.pos1.X, r.pos1.Y, r.Width(), r.Height()
}

func (r Rect) Center() Vector {
	return Vector{r.pos1.X + r.Width()/2, r.pos1.Y + r.Height()/2}
}

// SetCenter moves the rectangle so its center is c, keeping its size.
func (r *Rect) SetCenter(c Vector) {
	r.Move(c.Sub(r.Center()))
}

// Move translates both corners by delta.
func (r *Rect) Move(delta Vector) {
	r.pos1.AddAssign(delta)
	r.pos2.AddAssign(delta)
}

func (r Rect) Left() float64   { return r.pos1.X }
func (r Rect) Right() float64  { return r.pos2.X }
func (r Rect) Top() float64    { return r.pos1.Y }
func (r Rect) Bottom() float64 { return r.pos2.Y }

func (r *Rect) SetLeft(v float64) {
	r.pos1.X = v
	r.normalize()
}

func (r *Rect) SetRight(v float64) {
	r.pos2.X = v
	r.normalize()
}

func (r *Rect) SetTop(v float64) {
	r.pos1.Y = v
	r.normalize()
}

func (r *Rect) SetBottom(v float64) {
	r.pos2.Y = v
	r.normalize()
}

func (r Rect) TopLeft() Vector     { return r.pos1 }
func (r Rect) BottomRight() Vector { return r.pos2 }
func (r Rect) TopRight() Vector    { return Vector{r.pos2.X, r.pos1.Y} }
func (r Rect) BottomLeft() Vector  { return Vector{r.pos1.X, r.pos2.Y} }

func (r *Rect) SetTopLeft(p Vector) {
	r.pos1 = p
	r.normalize()
}

func (r *Rect) SetBottomRight(p Vector) {
	r.pos2 = p
	r.normalize()
}

func (r *Rect) SetTopRight(p Vector) {
	r.pos2.X, r.pos1.Y = p.X, p.Y
	r.normalize()
}

func (r *Rect) SetBottomLeft(p Vector) {
	r.pos1.X, r.pos2.Y = p.X, p.Y
	r.normalize()
}

// corners returns the four corners in top-left, top-right, bottom-left,
// bottom-right order.
func (r Rect) corners() [4]Vector {
	return [4]Vector{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()}
}

// ScaleWH returns the rectangle with both corners scaled component-wise by s.
func (r Rect) ScaleWH(s Vector) Rect {
	return NewRect(r.pos1.MulElem(s), r.pos2.MulElem(s))
}

// CollidePoint reports whether p lies inside r. Edges count as inside.
func (r Rect) CollidePoint(p Vector) bool {
	return r.pos1.X <= p.X && p.X <= r.pos2.X &&
		r.pos1.Y <= p.Y && p.Y <= r.pos2.Y
}

// CollideRect reports whether any corner of either rectangle lies inside the
// other. This is not an exact overlap test: two rectangles crossing like a
// plus sign, with no corner enclosed, do not collide.
func (r Rect) CollideRect(other Rect) bool {
	for _, p := range other.corners() {
		if r.CollidePoint(p) {
			return true
		}
	}
	for _, p := range r.corners() {
		if other.CollidePoint(p) {
			return true
		}
	}
	return false
}

// RelativeRect maps r into parent's normalized coordinate space, where
// parent itself spans (0, 0)–(1, 1). A parent with zero width or height
// yields infinite or NaN coordinates.
func (r Rect) RelativeRect(parent Rect) Rect {
	return NewRect(parent.RelativePoint(r.pos1), parent.RelativePoint(r.pos2))
}

// RelativePoint maps p into r's normalized coordinate space.
func (r Rect) RelativePoint(p Vector) Vector {
	return p.Sub(r.pos1).DivElem(r.Size())
}

// unitRect is the normalized screen area used for culling.
var unitRect = NewRect(Vector{0, 0}, Vector{1, 1})
