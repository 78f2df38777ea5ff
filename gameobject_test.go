package grove

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWorldNewObjectNames(t *testing.T) {
	w := NewWorld()
	a := w.NewObject("")
	b := w.NewObject("player")
	c := w.NewObject("")

	if a.Name != "GameObject0" {
		t.Errorf("a.Name = %q, want GameObject0", a.Name)
	}
	if b.Name != "player" {
		t.Errorf("b.Name = %q, want player", b.Name)
	}
	if c.Name != "GameObject2" {
		t.Errorf("c.Name = %q, want GameObject2", c.Name)
	}
	if a.ID == b.ID || b.ID == c.ID {
		t.Errorf("IDs not unique: %d %d %d", a.ID, b.ID, c.ID)
	}
	if w.Len() != 3 {
		t.Errorf("Len = %d, want 3", w.Len())
	}
}

func TestWorldDestroy(t *testing.T) {
	w := NewWorld()
	a := w.NewObject("a")
	b := w.NewObject("b")
	tr := AddComponent(a, NewTransform())

	if !w.Destroy(a.ID) {
		t.Fatal("Destroy(a) = false")
	}
	if w.Destroy(a.ID) {
		t.Error("second Destroy(a) = true")
	}
	if w.Get(a.ID) != nil {
		t.Error("Get(a) after destroy != nil")
	}
	if tr.Object() != nil {
		t.Error("component still resolves its destroyed owner")
	}
	if !tr.orphaned() {
		t.Error("orphaned() = false after destroy")
	}
	if objs := w.Objects(); len(objs) != 1 || objs[0] != b {
		t.Errorf("Objects = %v, want [b]", objs)
	}

	// IDs are not reused.
	c := w.NewObject("c")
	if c.ID == a.ID {
		t.Errorf("new object reused destroyed ID %d", a.ID)
	}
}

func TestWorldFind(t *testing.T) {
	w := NewWorld()
	w.NewObject("a").Tag = "enemy"
	b := w.NewObject("b")
	b.Tag = "player"

	got, err := w.FindByName("b")
	if err != nil || got != b {
		t.Errorf("FindByName(b) = %v, %v", got, err)
	}
	got, err = w.FindByTag("player")
	if err != nil || got != b {
		t.Errorf("FindByTag(player) = %v, %v", got, err)
	}
	if _, err := w.FindByName("zzz"); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("FindByName(zzz) err = %v, want ErrObjectNotFound", err)
	}
	if _, err := w.FindByTag("zzz"); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("FindByTag(zzz) err = %v, want ErrObjectNotFound", err)
	}
}

func TestAddComponentSetsOwner(t *testing.T) {
	w := NewWorld()
	obj := w.NewObject("o")
	tr := NewTransform()
	if tr.Object() != nil {
		t.Fatal("detached component has an owner")
	}
	AddComponent(obj, tr)
	if tr.Object() != obj {
		t.Errorf("Object() = %v, want %v", tr.Object(), obj)
	}
	if tr.ObjectRef().ID() != obj.ID {
		t.Errorf("ObjectRef().ID() = %d, want %d", tr.ObjectRef().ID(), obj.ID)
	}
	if tr.orphaned() {
		t.Error("attached component reports orphaned")
	}

	defer func() {
		if recover() == nil {
			t.Error("attaching a component twice should panic")
		}
	}()
	AddComponent(w.NewObject("other"), tr)
}

func TestGetComponent(t *testing.T) {
	gfx := &stubGraphics{}
	obj := NewWorld().NewObject("o")

	if obj.Transform() != nil {
		t.Error("Transform() on bare object != nil")
	}
	if _, err := obj.Renderer(); !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("Renderer() err = %v, want ErrComponentNotFound", err)
	}
	if _, err := GetComponent[*RectCollider](obj); !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("GetComponent[*RectCollider] err = %v, want ErrComponentNotFound", err)
	}

	tr := AddComponent(obj, NewTransform())
	r1 := AddComponent(obj, NewSolidColorRenderer(gfx, ColorWhite, 1, 1))
	r2 := AddComponent(obj, NewTransformedImageRenderer(gfx, nil))
	col := AddComponent(obj, NewRectCollider())

	if obj.Transform() != tr {
		t.Error("Transform() is not the attached transform")
	}
	if r, err := obj.Renderer(); err != nil || r != Renderer(r1) {
		t.Errorf("Renderer() = %v, %v, want the first renderer", r, err)
	}
	rs := obj.Renderers()
	if len(rs) != 2 || rs[0] != Renderer(r1) || rs[1] != Renderer(r2) {
		t.Errorf("Renderers() = %v, want [r1 r2]", rs)
	}
	if cs := obj.Colliders(); len(cs) != 1 || cs[0] != Collider(col) {
		t.Errorf("Colliders() = %v, want [col]", cs)
	}
	if n := len(obj.Components()); n != 4 {
		t.Errorf("len(Components) = %d, want 4", n)
	}
}

func TestRemoveComponent(t *testing.T) {
	obj := NewWorld().NewObject("o")
	tr := AddComponent(obj, NewTransform())

	if !obj.RemoveComponent(tr) {
		t.Fatal("RemoveComponent = false")
	}
	if obj.RemoveComponent(tr) {
		t.Error("second RemoveComponent = true")
	}
	if tr.Object() != nil {
		t.Error("removed component still has an owner")
	}
	if tr.orphaned() {
		t.Error("removed component reports orphaned")
	}
	// A removed component can be attached again.
	other := NewWorld().NewObject("other")
	AddComponent(other, tr)
	if tr.Object() != other {
		t.Error("re-attached component has the wrong owner")
	}
}

func TestTransformHeading(t *testing.T) {
	tests := []struct {
		rot  float64
		want Vector
	}{
		{0, Vec(1, 0)},
		{90, Vec(0, -1)},
		{180, Vec(-1, 0)},
		{-90, Vec(0, 1)},
	}
	for _, tt := range tests {
		tr := NewTransform()
		tr.Rotation = tt.rot
		assertVec(t, "Heading", tr.Heading(), tt.want)
	}
	if s := NewTransform().Scale; s != Vec(1, 1) {
		t.Errorf("default scale = %v, want (1, 1)", s)
	}
}

func TestRectCollider(t *testing.T) {
	gfx := &stubGraphics{}
	w := NewWorld()

	a := NewRectCollider()
	b := NewRectCollider()
	if a.CollideWith(b) {
		t.Error("colliders without boxes collided")
	}

	a.SetRect(NewRect(Vec(0, 0), Vec(2, 2)))
	b.SetRect(NewRect(Vec(1, 1), Vec(3, 3)))
	if !a.CollideWith(b) || !b.CollideWith(a) {
		t.Error("overlapping boxes did not collide")
	}
	b.SetRect(NewRect(Vec(5, 5), Vec(6, 6)))
	if a.CollideWith(b) {
		t.Error("disjoint boxes collided")
	}
	b.ClearRect()
	if _, ok := b.Bounds(); ok {
		t.Error("Bounds ok after ClearRect")
	}

	obj, _, _ := newSolidObject(w, gfx, Vec(5.5, 5.5), 1, 1)
	follow := AddComponent(obj, NewRectCollider())
	follow.FollowRenderer = true
	r, ok := follow.Bounds()
	if !ok {
		t.Fatal("FollowRenderer Bounds ok = false")
	}
	assertRect(t, "followed bounds", r, Vec(5, 5), Vec(6, 6))

	c := NewRectCollider()
	c.SetRect(NewRect(Vec(5.5, 5.5), Vec(7, 7)))
	if !follow.CollideWith(c) {
		t.Error("renderer-following collider missed an overlapping box")
	}
}

func TestAddComponentToDestroyedObjectPanics(t *testing.T) {
	w := NewWorld()
	obj := w.NewObject("gone")
	w.Destroy(obj.ID)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "destroyed") {
			t.Errorf("panic message should mention 'destroyed', got: %s", msg)
		}
	}()
	AddComponent(obj, NewTransform())
}

func TestComponentOfDestroyedObjectCanBeReattached(t *testing.T) {
	w := NewWorld()
	old := w.NewObject("old")
	tr := AddComponent(old, NewTransform())
	w.Destroy(old.ID)

	live := w.NewObject("live")
	AddComponent(live, tr)

	if tr.Object() != live {
		t.Errorf("Object() = %v, want %v", tr.Object(), live)
	}
	if tr.orphaned() {
		t.Error("re-attached component reports orphaned")
	}
	if live.Transform() != tr {
		t.Error("live object does not see the re-attached transform")
	}
}
