package grove

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Vector is a 2D vector used for positions, offsets, sizes and directions.
//
// Rotation follows the screen convention used throughout grove: an angle of
// 0 points along +Y and Rotation is computed as atan2(X, Y).
//
// Arithmetic methods have value receivers and return a new Vector. The
// *Assign methods and the Set* methods mutate the receiver.
type Vector struct {
	X, Y float64
}

// Vec returns Vector{x, y}.
func Vec(x, y float64) Vector {
	return Vector{x, y}
}

// VectorOf builds a Vector from exactly two values.
func VectorOf(xs ...float64) (Vector, error) {
	if len(xs) != 2 {
		return Vector{}, fmt.Errorf("grove: vector from %d values: %w", len(xs), ErrLengthMismatch)
	}
	return Vector{xs[0], xs[1]}, nil
}

// FromPolar returns the vector with the given rotation (radians, see
// Vector.Rotation) and magnitude.
func FromPolar(angle, magnitude float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{sin * magnitude, cos * magnitude}
}

// RandomVector returns a vector drawn uniformly from xr × yr. A nil rng uses
// the package-level source.
func RandomVector(rng *rand.Rand, xr, yr Range) Vector {
	return Vector{xr.Random(rng), yr.Random(rng)}
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g)", v.X, v.Y)
}

// Len always returns 2.
func (v Vector) Len() int { return 2 }

// At returns X for i == 0 and Y for i == 1. Any other index panics.
func (v Vector) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("grove: vector index %d out of range [0:2]", i))
}

// Slice returns []float64{X, Y}.
func (v Vector) Slice() []float64 {
	return []float64{v.X, v.Y}
}

func (v Vector) Add(w Vector) Vector  { return Vector{v.X + w.X, v.Y + w.Y} }
func (v Vector) Sub(w Vector) Vector  { return Vector{v.X - w.X, v.Y - w.Y} }
func (v Vector) Mul(f float64) Vector { return Vector{v.X * f, v.Y * f} }
func (v Vector) Div(f float64) Vector { return Vector{v.X / f, v.Y / f} }
func (v Vector) Neg() Vector          { return Vector{-v.X, -v.Y} }

// MulElem multiplies component-wise.
func (v Vector) MulElem(w Vector) Vector { return Vector{v.X * w.X, v.Y * w.Y} }

// DivElem divides component-wise.
func (v Vector) DivElem(w Vector) Vector { return Vector{v.X / w.X, v.Y / w.Y} }

func (v *Vector) AddAssign(w Vector) {
	v.X += w.X
	v.Y += w.Y
}

func (v *Vector) SubAssign(w Vector) {
	v.X -= w.X
	v.Y -= w.Y
}

func (v *Vector) MulAssign(f float64) {
	v.X *= f
	v.Y *= f
}

// Round returns v with each component rounded half away from zero to the
// given number of decimal places. Round(0) rounds to integers.
func (v Vector) Round(places int) Vector {
	return Vector{roundTo(v.X, places), roundTo(v.Y, places)}
}

// Rounded returns the components rounded to the nearest integers, for use
// as pixel coordinates.
func (v Vector) Rounded() (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

func roundTo(f float64, places int) float64 {
	if places == 0 {
		return math.Round(f)
	}
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotation returns atan2(X, Y): 0 along +Y, π/2 along +X.
func (v Vector) Rotation() float64 {
	return math.Atan2(v.X, v.Y)
}

// SetMagnitude rescales v to length m, keeping its direction. The zero
// vector has no direction and stays zero.
func (v *Vector) SetMagnitude(m float64) {
	cur := v.Magnitude()
	if cur == 0 {
		return
	}
	f := m / cur
	v.X *= f
	v.Y *= f
}

// SetRotation points v at angle a (radians), keeping its magnitude.
func (v *Vector) SetRotation(a float64) {
	m := v.Magnitude()
	sin, cos := math.Sincos(a)
	v.X = sin * m
	v.Y = cos * m
}

// ChangeRotation returns v rotated by delta radians.
func (v Vector) ChangeRotation(delta float64) Vector {
	v.SetRotation(v.Rotation() + delta)
	return v
}

// WithRotation returns v pointed at angle a, keeping its magnitude.
func (v Vector) WithRotation(a float64) Vector {
	v.SetRotation(a)
	return v
}

// ChangeMagnitude returns v with its length changed by delta.
func (v Vector) ChangeMagnitude(delta float64) Vector {
	v.SetMagnitude(v.Magnitude() + delta)
	return v
}

// WithMagnitude returns v rescaled to length m.
func (v Vector) WithMagnitude(m float64) Vector {
	v.SetMagnitude(m)
	return v
}

// Normalized returns the unit vector in the direction of v, or the zero
// vector for zero input.
func (v Vector) Normalized() Vector {
	return v.WithMagnitude(1)
}

// Near reports whether each component of v is within eps of w.
func (v Vector) Near(w Vector, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}
