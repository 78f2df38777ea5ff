package grove

import "fmt"

// Renderer is a component that produces an image and its world-space
// placement each frame. A renderer with nothing to draw returns a nil image
// and ok == false from Rect; the compositor skips it.
type Renderer interface {
	Component
	Image() Image
	Rect() (Rect, bool)
}

// RenderSource is the capability set behind a CachedRenderer.
type RenderSource[K comparable] interface {
	// CacheKey snapshots the state the output depends on. ok is false when
	// there is nothing to render (e.g. the owner has no Transform).
	CacheKey() (key K, ok bool)
	// Render produces the image for key. It may return nil.
	Render(key K) Image
	// RenderRect places img, as produced by Render(key), in world space.
	RenderRect(key K, img Image) Rect
}

// ImageSetter is implemented by render sources whose source image can be
// replaced.
type ImageSetter interface {
	SetSourceImage(img Image)
}

// CacheStats counts cache lookups since the renderer was created.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

type renderEntry struct {
	img  Image
	rect Rect
}

// CachedRenderer memoizes a RenderSource's image and rect per cache key.
// Image and Rect share one lookup: a miss renders both and stores them
// together. Entries are never evicted; only SetImage and ClearCache drop
// them.
//
// A CachedRenderer is not safe for concurrent use.
type CachedRenderer[K comparable] struct {
	src   RenderSource[K]
	cache map[K]renderEntry
	stats CacheStats
}

// Init binds the cache to src. Renderers embedding CachedRenderer call it
// from their constructor, passing themselves.
func (c *CachedRenderer[K]) Init(src RenderSource[K]) {
	c.src = src
	c.cache = make(map[K]renderEntry)
}

func (c *CachedRenderer[K]) lookup() (renderEntry, bool) {
	if c.src == nil {
		return renderEntry{}, false
	}
	key, ok := c.src.CacheKey()
	if !ok {
		return renderEntry{}, false
	}
	if e, ok := c.cache[key]; ok {
		c.stats.Hits++
		return e, true
	}
	c.stats.Misses++
	var e renderEntry
	if img := c.src.Render(key); img != nil {
		e = renderEntry{img: img, rect: c.src.RenderRect(key, img)}
	}
	c.cache[key] = e
	return e, true
}

// Image returns the rendered image for the current state, or nil.
func (c *CachedRenderer[K]) Image() Image {
	e, _ := c.lookup()
	return e.img
}

// Rect returns the world-space placement for the current state.
func (c *CachedRenderer[K]) Rect() (Rect, bool) {
	e, ok := c.lookup()
	if !ok || e.img == nil {
		return Rect{}, false
	}
	return e.rect, true
}

// SetImage replaces the source image and clears the cache. It fails with
// ErrUnsupported if the render source does not implement ImageSetter.
func (c *CachedRenderer[K]) SetImage(img Image) error {
	setter, ok := c.src.(ImageSetter)
	if !ok {
		return fmt.Errorf("grove: can't set image of %T: %w", c.src, ErrUnsupported)
	}
	setter.SetSourceImage(img)
	c.ClearCache()
	return nil
}

// ClearCache drops every cached entry.
func (c *CachedRenderer[K]) ClearCache() {
	clear(c.cache)
}

// CacheLen returns the number of cached entries.
func (c *CachedRenderer[K]) CacheLen() int {
	return len(c.cache)
}

// Stats returns hit and miss counts.
func (c *CachedRenderer[K]) Stats() CacheStats {
	return c.stats
}
