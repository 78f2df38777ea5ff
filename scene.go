package grove

import (
	"time"
)

// EventSink is the interface for optional ECS integration. When set on a
// Scene, collisions found during Update are forwarded to it.
type EventSink interface {
	EmitCollision(event CollisionEvent)
}

// CollisionEvent reports that colliders on two objects touched during an
// Update. A always precedes B in world order.
type CollisionEvent struct {
	A, B         ObjectID
	AName, BName string
}

// Scene owns a World of game objects and composites their renderers onto a
// screen once per frame.
type Scene struct {
	Name       string
	Background Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	world *World
	gfx   Graphics
	debug bool
	sink  EventSink

	updateFunc func(dt float64) error
	tweens     []*TweenGroup
	collisions []CollisionEvent

	screenshotQueue []string
	stats           FrameStats
}

// NewScene creates a scene with an empty World.
func NewScene(name string, gfx Graphics, background Color) *Scene {
	return &Scene{
		Name:          name,
		Background:    background,
		ScreenshotDir: "screenshots",
		world:         NewWorld(),
		gfx:           gfx,
	}
}

// World returns the scene's object table.
func (s *Scene) World() *World {
	return s.world
}

// Graphics returns the backend the scene draws with.
func (s *Scene) Graphics() Graphics {
	return s.gfx
}

// NewObject is shorthand for s.World().NewObject(name).
func (s *Scene) NewObject(name string) *GameObject {
	return s.world.NewObject(name)
}

// SetDebugMode enables or disables debug mode. When enabled, Draw marks
// each object's position and heading, reports skipped renderers and logs
// per-frame stats at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// SetEventSink sets the optional ECS bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetUpdateFunc sets a callback run at the start of every Update with the
// elapsed time in seconds. A non-nil error aborts the Update and is
// returned to the frame driver.
func (s *Scene) SetUpdateFunc(fn func(dt float64) error) {
	s.updateFunc = fn
}

// AddTween registers a tween to be advanced by Update. Finished tweens are
// dropped automatically.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// Tweens returns the active tweens. The returned slice MUST NOT be mutated.
func (s *Scene) Tweens() []*TweenGroup {
	return s.tweens
}

// Update runs the update callback, advances tweens and tests colliders.
func (s *Scene) Update(dt float64) error {
	if s.updateFunc != nil {
		if err := s.updateFunc(dt); err != nil {
			return err
		}
	}

	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(float32(dt))
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(s.tweens[len(live):])
	s.tweens = live

	s.checkCollisions()
	return nil
}

// Collisions returns the collisions found by the last Update. The returned
// slice MUST NOT be mutated.
func (s *Scene) Collisions() []CollisionEvent {
	return s.collisions
}

func (s *Scene) checkCollisions() {
	s.collisions = s.collisions[:0]
	objs := s.world.Objects()
	for i, a := range objs {
		ac := a.Colliders()
		if len(ac) == 0 {
			continue
		}
		for _, b := range objs[i+1:] {
			if collidersTouch(ac, b.Colliders()) {
				ev := CollisionEvent{A: a.ID, B: b.ID, AName: a.Name, BName: b.Name}
				s.collisions = append(s.collisions, ev)
				if s.sink != nil {
					s.sink.EmitCollision(ev)
				}
			}
		}
	}
}

func collidersTouch(as, bs []Collider) bool {
	for _, a := range as {
		for _, b := range bs {
			if a.CollideWith(b) {
				return true
			}
		}
	}
	return false
}

// Draw fills screen with the background and blits every on-screen
// renderer. screenRect is the world-space area mapped onto the whole screen.
func (s *Scene) Draw(screen Image, screenRect Rect) {
	var stats FrameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.Background)
	if screenRect.Width() == 0 || screenRect.Height() == 0 {
		Logger().Warn("grove: empty screen rect, nothing drawn", "scene", s.Name, "rect", screenRect.String())
		return
	}
	sw, sh := screen.Size()
	screenSize := Vector{float64(sw), float64(sh)}

	for _, obj := range s.world.Objects() {
		renderers := obj.Renderers()
		if s.debug && len(renderers) == 0 {
			s.debugSkip(obj, nil, "no renderer")
		}
		for _, r := range renderers {
			s.drawRenderer(screen, screenRect, screenSize, obj, r, &stats)
		}
		if s.debug {
			s.debugMarker(screen, screenRect, screenSize, obj)
		}
	}

	if s.debug {
		stats.Duration = time.Since(t0)
		s.debugLog(stats)
	}
	s.stats = stats
}

func (s *Scene) drawRenderer(screen Image, screenRect Rect, screenSize Vector, obj *GameObject, r Renderer, stats *FrameStats) {
	if cs, ok := r.(interface{ Stats() CacheStats }); ok && s.debug {
		before := cs.Stats()
		defer func() {
			after := cs.Stats()
			stats.CacheHits += int(after.Hits - before.Hits)
			stats.CacheMisses += int(after.Misses - before.Misses)
		}()
	}

	img := r.Image()
	rect, ok := r.Rect()
	if img == nil || !ok {
		stats.Skipped++
		if s.debug {
			s.debugSkip(obj, r, "no image or rect")
		}
		return
	}
	if s.debug {
		debugCheckRect(obj, r, rect)
	}

	rel := rect.RelativeRect(screenRect)
	if !rel.CollideRect(unitRect) {
		stats.Culled++
		if s.debug {
			s.debugSkip(obj, r, "not on screen")
		}
		return
	}

	onScreen := rel.ScaleWH(screenSize)
	w, h := onScreen.Size().Rounded()
	if w <= 0 || h <= 0 {
		stats.Skipped++
		if s.debug {
			s.debugSkip(obj, r, "smaller than a pixel")
		}
		return
	}
	x, y := onScreen.TopLeft().Rounded()
	if iw, ih := img.Size(); iw != w || ih != h {
		screen.DrawScaled(img, x, y, w, h)
	} else {
		screen.DrawAt(img, x, y)
	}
	stats.Drawn++
}

// LastFrameStats returns the stats of the most recent Draw. Cache counts
// and Duration are only filled in debug mode.
func (s *Scene) LastFrameStats() FrameStats {
	return s.stats
}
