package grove

import (
	"fmt"
	"reflect"
	"strconv"
)

// ObjectID identifies a GameObject within its World. IDs are never reused.
type ObjectID uint32

// World is the object table. It owns its game objects; components refer
// back to their object through an ObjectRef handle into this table.
type World struct {
	byID    map[ObjectID]*GameObject
	order   []*GameObject
	nextID  ObjectID
	created int
}

// NewWorld returns an empty World.
func NewWorld() *World {
	return &World{byID: make(map[ObjectID]*GameObject)}
}

// NewObject creates a game object with no components. An empty name
// defaults to "GameObject<N>" where N counts objects created so far.
func (w *World) NewObject(name string) *GameObject {
	if name == "" {
		name = "GameObject" + strconv.Itoa(w.created)
	}
	w.created++
	w.nextID++
	obj := &GameObject{ID: w.nextID, Name: name, world: w}
	w.byID[obj.ID] = obj
	w.order = append(w.order, obj)
	return obj
}

// Objects returns the live objects in creation order. The returned slice
// MUST NOT be mutated.
func (w *World) Objects() []*GameObject {
	return w.order
}

// Len returns the number of live objects.
func (w *World) Len() int {
	return len(w.order)
}

// Get returns the object with the given ID, or nil if it was destroyed or
// never existed.
func (w *World) Get(id ObjectID) *GameObject {
	return w.byID[id]
}

// Destroy removes the object and drops its components. Handles held by the
// components resolve to nil afterwards.
func (w *World) Destroy(id ObjectID) bool {
	obj, ok := w.byID[id]
	if !ok {
		return false
	}
	delete(w.byID, id)
	for i, o := range w.order {
		if o == obj {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	obj.components = nil
	return true
}

// FindByName returns the first object with the given name.
func (w *World) FindByName(name string) (*GameObject, error) {
	for _, o := range w.order {
		if o.Name == name {
			return o, nil
		}
	}
	return nil, fmt.Errorf("grove: no game object named %q: %w", name, ErrObjectNotFound)
}

// FindByTag returns the first object with the given tag.
func (w *World) FindByTag(tag string) (*GameObject, error) {
	for _, o := range w.order {
		if o.Tag == tag {
			return o, nil
		}
	}
	return nil, fmt.Errorf("grove: no game object tagged %q: %w", tag, ErrObjectNotFound)
}

// ObjectRef is a non-owning handle to a GameObject.
type ObjectRef struct {
	world *World
	id    ObjectID
}

// Object resolves the handle. It returns nil for the zero ObjectRef and for
// destroyed objects.
func (r ObjectRef) Object() *GameObject {
	if r.world == nil {
		return nil
	}
	return r.world.Get(r.id)
}

// ID returns the referenced object's ID.
func (r ObjectRef) ID() ObjectID {
	return r.id
}

// GameObject is an entity owning an ordered list of components.
type GameObject struct {
	ID   ObjectID
	Name string
	Tag  string

	components []Component
	world      *World
}

func (o *GameObject) String() string {
	return fmt.Sprintf("GameObject(%q #%d)", o.Name, o.ID)
}

// Ref returns a handle to o.
func (o *GameObject) Ref() ObjectRef {
	return ObjectRef{world: o.world, id: o.ID}
}

// Components returns all components in insertion order. The returned slice
// MUST NOT be mutated.
func (o *GameObject) Components() []Component {
	return o.components
}

// AddComponent attaches c to obj and returns it. A component belongs to
// exactly one live object; attaching it twice, or to a destroyed object,
// panics. Components of a destroyed object count as detached.
func AddComponent[T Component](obj *GameObject, c T) T {
	if obj.world != nil && obj.world.Get(obj.ID) != obj {
		panic(fmt.Sprintf("grove: AddComponent on destroyed object %q (ID was %d)", obj.Name, obj.ID))
	}
	b := c.base()
	if b.ref.Object() != nil {
		panic(fmt.Sprintf("grove: %T is already attached to object #%d", c, b.ref.id))
	}
	b.ref = obj.Ref()
	obj.components = append(obj.components, c)
	return c
}

// RemoveComponent detaches c from o. It reports whether c was attached.
func (o *GameObject) RemoveComponent(c Component) bool {
	for i, cur := range o.components {
		if cur == c {
			o.components = append(o.components[:i], o.components[i+1:]...)
			c.base().ref = ObjectRef{}
			return true
		}
	}
	return false
}

// GetComponents returns every component of obj assignable to T, in order.
func GetComponents[T any](obj *GameObject) []T {
	var out []T
	for _, c := range obj.components {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// GetComponent returns the first component of obj assignable to T.
func GetComponent[T any](obj *GameObject) (T, error) {
	for _, c := range obj.components {
		if t, ok := c.(T); ok {
			return t, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("grove: %s has no %s: %w", obj, typeName[T](), ErrComponentNotFound)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Transform returns the object's first Transform, or nil.
func (o *GameObject) Transform() *Transform {
	t, err := GetComponent[*Transform](o)
	if err != nil {
		return nil
	}
	return t
}

// Renderers returns the object's renderers in order.
func (o *GameObject) Renderers() []Renderer {
	return GetComponents[Renderer](o)
}

// Renderer returns the object's first renderer.
func (o *GameObject) Renderer() (Renderer, error) {
	return GetComponent[Renderer](o)
}

// Colliders returns the object's colliders in order.
func (o *GameObject) Colliders() []Collider {
	return GetComponents[Collider](o)
}
