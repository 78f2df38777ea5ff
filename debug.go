package grove

import (
	"fmt"
	"math"
	"time"
)

// FrameStats holds per-frame draw metrics.
type FrameStats struct {
	Drawn       int
	Culled      int
	Skipped     int
	CacheHits   int
	CacheMisses int
	Duration    time.Duration
}

var (
	debugMarkerColor  = Color{1, 0, 0, 1}
	debugHeadingColor = Color{0, 1, 0, 1}
)

const (
	debugMarkerRadius = 5
	debugHeadingWidth = 3
)

// debugLog reports frame stats at debug level.
func (s *Scene) debugLog(stats FrameStats) {
	Logger().Debug("grove: frame",
		"scene", s.Name,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"skipped", stats.Skipped,
		"cache_hits", stats.CacheHits,
		"cache_misses", stats.CacheMisses,
		"time", stats.Duration,
	)
}

// debugSkip reports a renderer or object that drew nothing. Skips are
// expected and never errors.
func (s *Scene) debugSkip(obj *GameObject, r Renderer, reason string) {
	if r == nil {
		Logger().Debug("grove: object not rendered", "object", obj.Name, "reason", reason)
		return
	}
	Logger().Debug("grove: renderer not rendered",
		"object", obj.Name, "renderer", fmt.Sprintf("%T", r), "reason", reason)
}

// debugMarker draws a dot at the object's position and a line one world
// unit long along its heading. Screens that do not implement Painter only
// get the log line for objects without a Transform.
func (s *Scene) debugMarker(screen Image, screenRect Rect, screenSize Vector, obj *GameObject) {
	t := obj.Transform()
	if t == nil {
		Logger().Debug("grove: object not debugged", "object", obj.Name, "reason", "no transform")
		return
	}
	p, ok := screen.(Painter)
	if !ok {
		return
	}
	x1, y1 := screenRect.RelativePoint(t.Pos).MulElem(screenSize).Rounded()
	x2, y2 := screenRect.RelativePoint(t.Pos.Add(t.Heading())).MulElem(screenSize).Rounded()
	p.FillCircle(float64(x1), float64(y1), debugMarkerRadius, debugMarkerColor)
	p.StrokeLine(float64(x1), float64(y1), float64(x2), float64(y2), debugHeadingWidth, debugHeadingColor)
}

// debugCheckRect panics when a renderer produces a placement that can't be
// mapped to the screen.
func debugCheckRect(obj *GameObject, r Renderer, rect Rect) {
	for _, v := range []float64{rect.pos1.X, rect.pos1.Y, rect.pos2.X, rect.pos2.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("grove debug: %T on %q produced non-finite rect %v", r, obj.Name, rect))
		}
	}
}
