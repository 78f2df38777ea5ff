package grove

// Component is a unit of data or behavior attached to exactly one
// GameObject. Custom components embed ComponentBase.
type Component interface {
	// Object returns the owning object, or nil when detached or destroyed.
	Object() *GameObject
	base() *ComponentBase
}

// ComponentBase holds the handle back to the owning object.
type ComponentBase struct {
	ref ObjectRef
}

func (c *ComponentBase) Object() *GameObject {
	return c.ref.Object()
}

// ObjectRef returns the handle to the owning object.
func (c *ComponentBase) ObjectRef() ObjectRef {
	return c.ref
}

// orphaned reports whether c was attached to an object that has since been
// destroyed.
func (c *ComponentBase) orphaned() bool {
	return c.ref.world != nil && c.ref.Object() == nil
}

func (c *ComponentBase) base() *ComponentBase {
	return c
}

// transformOf returns the Transform of c's owner, or nil.
func (c *ComponentBase) transformOf() *Transform {
	obj := c.Object()
	if obj == nil {
		return nil
	}
	return obj.Transform()
}

// Transform holds an object's placement. Rotation is in degrees,
// counter-clockwise on screen.
type Transform struct {
	ComponentBase
	Pos      Vector
	Scale    Vector
	Rotation float64
}

// NewTransform returns a Transform at the origin with unit scale.
func NewTransform() *Transform {
	return &Transform{Scale: Vector{1, 1}}
}

// Heading returns the unit vector along the object's local +X axis in
// world space.
func (t *Transform) Heading() Vector {
	return Vector{1, 0}.ChangeRotation(degToRad(t.Rotation))
}

// Collider is implemented by components that take part in collision tests.
type Collider interface {
	Component
	CollideWith(other Collider) bool
}

// Bounded is implemented by colliders that expose an axis-aligned box.
type Bounded interface {
	Bounds() (Rect, bool)
}

// RectCollider collides by axis-aligned box using Rect.CollideRect.
type RectCollider struct {
	ComponentBase
	rect    Rect
	hasRect bool
	// FollowRenderer makes Bounds track the owner's first renderer rect
	// instead of the rect set with SetRect.
	FollowRenderer bool
}

// NewRectCollider returns a collider with no box. It collides with nothing
// until SetRect is called or FollowRenderer is set.
func NewRectCollider() *RectCollider {
	return &RectCollider{}
}

// SetRect sets the world-space box.
func (c *RectCollider) SetRect(r Rect) {
	c.rect = r
	c.hasRect = true
}

// ClearRect removes the box.
func (c *RectCollider) ClearRect() {
	c.rect = Rect{}
	c.hasRect = false
}

// Bounds returns the current box, if any.
func (c *RectCollider) Bounds() (Rect, bool) {
	if c.FollowRenderer {
		obj := c.Object()
		if obj == nil {
			return Rect{}, false
		}
		r, err := obj.Renderer()
		if err != nil {
			return Rect{}, false
		}
		return r.Rect()
	}
	return c.rect, c.hasRect
}

// CollideWith tests c against any collider exposing Bounds. Colliders
// without a box never collide.
func (c *RectCollider) CollideWith(other Collider) bool {
	r, ok := c.Bounds()
	if !ok {
		return false
	}
	b, ok := other.(Bounded)
	if !ok {
		return false
	}
	or, ok := b.Bounds()
	if !ok {
		return false
	}
	return r.CollideRect(or)
}
