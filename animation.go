package grove

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a Transform simultaneously.
// Create one via TweenPosition, TweenScale or TweenRotation and either call
// Update(dt) each frame or hand it to Scene.AddTween. If the transform's
// object is destroyed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Transform
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.orphaned() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates t.Pos to `to` over duration seconds.
func TweenPosition(t *Transform, to Vector, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: t}
	g.tweens[0] = gween.New(float32(t.Pos.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(t.Pos.Y), float32(to.Y), duration, fn)
	g.fields[0] = &t.Pos.X
	g.fields[1] = &t.Pos.Y
	return g
}

// TweenScale animates t.Scale to `to` over duration seconds.
func TweenScale(t *Transform, to Vector, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: t}
	g.tweens[0] = gween.New(float32(t.Scale.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(t.Scale.Y), float32(to.Y), duration, fn)
	g.fields[0] = &t.Scale.X
	g.fields[1] = &t.Scale.Y
	return g
}

// TweenRotation animates t.Rotation to `to` degrees over duration seconds.
func TweenRotation(t *Transform, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: t}
	g.tweens[0] = gween.New(float32(t.Rotation), float32(to), duration, fn)
	g.fields[0] = &t.Rotation
	return g
}
