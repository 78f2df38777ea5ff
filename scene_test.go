package grove

import (
	"errors"
	"testing"

	"github.com/tanema/gween/ease"
)

func newStubScreen(w, h int) *stubScreen {
	return &stubScreen{stubImage: stubImage{w: w, h: h, origin: "screen"}}
}

func TestNewScene(t *testing.T) {
	gfx := &stubGraphics{}
	s := NewScene("Test", gfx, ColorWhite)
	if s.World() == nil || s.World().Len() != 0 {
		t.Fatal("new scene should have an empty world")
	}
	if s.Graphics() != Graphics(gfx) {
		t.Error("Graphics() is not the backend passed in")
	}
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", s.ScreenshotDir)
	}
	obj := s.NewObject("o")
	if s.World().Get(obj.ID) != obj {
		t.Error("NewObject did not add to the world")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene("", &stubGraphics{}, ColorWhite)
	s.SetDebugMode(true)
	if !s.DebugMode() {
		t.Error("DebugMode() should be true")
	}
	s.SetDebugMode(false)
	if s.DebugMode() {
		t.Error("DebugMode() should be false")
	}
}

func TestSceneDrawPlacesRenderer(t *testing.T) {
	gfx := &stubGraphics{}
	s := NewScene("Test", gfx, ColorWhite)
	_, _, r := newSolidObject(s.World(), gfx, Vec(4, 4), 1, 1)
	r.SetOffset(Vec(1, 0))

	screen := newStubScreen(100, 100)
	s.Draw(screen, NewRect(Vec(0, 0), Vec(10, 10)))

	if screen.fills != 1 || screen.fill != ColorWhite {
		t.Errorf("background fills = %d (%v), want 1 white fill", screen.fills, screen.fill)
	}
	if len(screen.blits) != 1 {
		t.Fatalf("blits = %d, want 1", len(screen.blits))
	}
	b := screen.blits[0]
	if b.x != 45 || b.y != 35 {
		t.Errorf("blit at (%d, %d), want (45, 35)", b.x, b.y)
	}
	if b.w != 10 || b.h != 10 || !b.scaled {
		t.Errorf("blit = %dx%d (scaled %v), want a scaled 10x10 blit", b.w, b.h, b.scaled)
	}
	// The 1×1 source is rendered once; fitting to screen pixels happens
	// in the blit.
	if gfx.scales != 1 {
		t.Errorf("scales = %d, want 1", gfx.scales)
	}
	if st := s.LastFrameStats(); st.Drawn != 1 {
		t.Errorf("Drawn = %d, want 1", st.Drawn)
	}
	// Debug primitives are off by default.
	if len(screen.circles) != 0 || len(screen.lines) != 0 {
		t.Error("debug marker drawn outside debug mode")
	}
}

func TestSceneDrawNoResizeWhenSizesMatch(t *testing.T) {
	gfx := &stubGraphics{}
	s := NewScene("", gfx, ColorWhite)
	_, _, _ = newSolidObject(s.World(), gfx, Vec(5, 5), 10, 10)

	screen := newStubScreen(100, 100)
	s.Draw(screen, NewRect(Vec(0, 0), Vec(10, 10)))
	if gfx.scales != 1 {
		t.Errorf("scales = %d, want 1", gfx.scales)
	}
	if len(screen.blits) != 1 || screen.blits[0].x != 45 || screen.blits[0].y != 45 {
		t.Errorf("blits = %+v, want one at (45, 45)", screen.blits)
	}
	if screen.blits[0].scaled {
		t.Error("matching sizes used a scaled blit")
	}
}

func TestSceneDrawStaticObjectDoesNotRescale(t *testing.T) {
	gfx := &stubGraphics{}
	s := NewScene("", gfx, ColorWhite)
	_, _, r := newSolidObject(s.World(), gfx, Vec(4, 4), 32, 32)

	screen := newStubScreen(640, 640)
	screenRect := NewRect(Vec(0, 0), Vec(10, 10))
	for i := 0; i < 10; i++ {
		s.Draw(screen, screenRect)
	}

	if gfx.scales != 1 {
		t.Errorf("scales after 10 frames = %d, want 1", gfx.scales)
	}
	if st := r.Stats(); st.Misses != 1 {
		t.Errorf("renderer misses = %d, want 1", st.Misses)
	}
	if len(screen.blits) != 10 {
		t.Fatalf("blits = %d, want 10", len(screen.blits))
	}
	for _, b := range screen.blits {
		if b.w != 64 || b.h != 64 || b.x != 224 || b.y != 224 {
			t.Fatalf("blit = %+v, want 64x64 at (224, 224)", b)
		}
	}
}

func TestSceneDrawCullsAndSkips(t *testing.T) {
	gfx := &stubGraphics{}
	s := NewScene("", gfx, ColorWhite)
	w := s.World()

	newSolidObject(w, gfx, Vec(50, 50), 1, 1)   // off screen
	newSolidObject(w, gfx, Vec(-0.25, 5), 1, 1) // straddles the left edge
	_, tr, _ := newSolidObject(w, gfx, Vec(5, 5), 1, 1)
	tr.Scale = Vec(0, 0) // renders nothing
	w.NewObject("empty")

	screen := newStubScreen(100, 100)
	s.Draw(screen, NewRect(Vec(0, 0), Vec(10, 10)))

	st := s.LastFrameStats()
	if st.Drawn != 1 || st.Culled != 1 || st.Skipped != 1 {
		t.Errorf("stats = %+v, want 1 drawn, 1 culled, 1 skipped", st)
	}
	if len(screen.blits) != 1 {
		t.Errorf("blits = %d, want 1", len(screen.blits))
	}
}

func TestSceneDrawEmptyScreenRect(t *testing.T) {
	gfx := &stubGraphics{}
	s := NewScene("", gfx, Gray(0.5))
	newSolidObject(s.World(), gfx, Vec(0, 0), 1, 1)

	screen := newStubScreen(10, 10)
	s.Draw(screen, NewRect(Vec(1, 1), Vec(1, 5)))
	if screen.fill != Gray(0.5) {
		t.Errorf("background = %v, want gray", screen.fill)
	}
	if len(screen.blits) != 0 {
		t.Errorf("blits = %d, want 0", len(screen.blits))
	}
}

func TestSceneUpdateFunc(t *testing.T) {
	s := NewScene("", &stubGraphics{}, ColorWhite)
	var total float64
	s.SetUpdateFunc(func(dt float64) error {
		total += dt
		return nil
	})
	for i := 0; i < 4; i++ {
		if err := s.Update(0.25); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	assertNear(t, "elapsed", total, 1)

	boom := errors.New("boom")
	s.SetUpdateFunc(func(float64) error { return boom })
	if err := s.Update(0.1); !errors.Is(err, boom) {
		t.Errorf("Update err = %v, want boom", err)
	}
}

func TestSceneUpdateTweens(t *testing.T) {
	s := NewScene("", &stubGraphics{}, ColorWhite)
	obj := s.NewObject("o")
	tr := AddComponent(obj, NewTransform())

	s.AddTween(TweenPosition(tr, Vec(10, 0), 1, ease.Linear))
	s.AddTween(TweenRotation(tr, 90, 2, ease.Linear))

	s.Update(0.5)
	if len(s.Tweens()) != 2 {
		t.Fatalf("Tweens = %d, want 2", len(s.Tweens()))
	}
	s.Update(0.5)
	if len(s.Tweens()) != 1 {
		t.Errorf("Tweens after position finished = %d, want 1", len(s.Tweens()))
	}
	if !tr.Pos.Near(Vec(10, 0), 0.01) {
		t.Errorf("Pos = %v, want ~(10, 0)", tr.Pos)
	}

	s.World().Destroy(obj.ID)
	s.Update(0.1)
	if len(s.Tweens()) != 0 {
		t.Errorf("Tweens after destroy = %d, want 0", len(s.Tweens()))
	}
}

type recordingSink struct {
	events []CollisionEvent
}

func (r *recordingSink) EmitCollision(ev CollisionEvent) {
	r.events = append(r.events, ev)
}

func TestSceneUpdateCollisions(t *testing.T) {
	s := NewScene("", &stubGraphics{}, ColorWhite)
	sink := &recordingSink{}
	s.SetEventSink(sink)

	add := func(name string, r Rect) *GameObject {
		obj := s.NewObject(name)
		c := AddComponent(obj, NewRectCollider())
		c.SetRect(r)
		return obj
	}
	a := add("a", NewRect(Vec(0, 0), Vec(2, 2)))
	b := add("b", NewRect(Vec(1, 1), Vec(3, 3)))
	add("c", NewRect(Vec(10, 10), Vec(11, 11)))
	s.NewObject("no collider")

	if err := s.Update(1.0 / 60); err != nil {
		t.Fatal(err)
	}
	got := s.Collisions()
	want := CollisionEvent{A: a.ID, B: b.ID, AName: "a", BName: "b"}
	if len(got) != 1 || got[0] != want {
		t.Errorf("Collisions = %+v, want [%+v]", got, want)
	}
	if len(sink.events) != 1 || sink.events[0] != want {
		t.Errorf("sink events = %+v, want [%+v]", sink.events, want)
	}

	// Collisions are recomputed each Update.
	s.World().Destroy(b.ID)
	s.Update(1.0 / 60)
	if len(s.Collisions()) != 0 {
		t.Errorf("Collisions after destroy = %+v, want none", s.Collisions())
	}
}
