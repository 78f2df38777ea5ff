package grove

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultSolidResolution is the source size of solid-color renderers whose
// config omits a resolution.
const DefaultSolidResolution = 64

// SceneConfig describes a scene in YAML:
//
//	name: Test
//	background: [1, 1, 1]
//	screen: [[0, 0], [10, 10]]
//	objects:
//	  - name: TestObj
//	    transform: {pos: [4, 4], scale: [1, 1], rotation: 0}
//	    renderers:
//	      - {type: solid, color: [1, 1, 0], offset: [1, 0]}
//	    collider: {follow_renderer: true}
type SceneConfig struct {
	Name       string         `yaml:"name"`
	Background []float64      `yaml:"background"`
	Screen     [][]float64    `yaml:"screen"`
	Objects    []ObjectConfig `yaml:"objects"`
}

type ObjectConfig struct {
	Name      string           `yaml:"name"`
	Tag       string           `yaml:"tag"`
	Transform *TransformConfig `yaml:"transform"`
	Renderers []RendererConfig `yaml:"renderers"`
	Collider  *ColliderConfig  `yaml:"collider"`
}

type TransformConfig struct {
	Pos      []float64 `yaml:"pos"`
	Scale    []float64 `yaml:"scale"`
	Rotation float64   `yaml:"rotation"`
}

type RendererConfig struct {
	// Type is "solid" or "image".
	Type       string    `yaml:"type"`
	Color      []float64 `yaml:"color"`
	Resolution []int     `yaml:"resolution"`
	Image      string    `yaml:"image"`
	Offset     []float64 `yaml:"offset"`
}

type ColliderConfig struct {
	Rect           [][]float64 `yaml:"rect"`
	FollowRenderer bool        `yaml:"follow_renderer"`
}

// LoadSceneConfig decodes a YAML scene description.
func LoadSceneConfig(r io.Reader) (*SceneConfig, error) {
	var c SceneConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("grove: parse scene config: %w", err)
	}
	return &c, nil
}

// ScreenRect returns the configured world-space screen area, or
// DefaultScreenRect when none is set.
func (c *SceneConfig) ScreenRect() (Rect, error) {
	if len(c.Screen) == 0 {
		return DefaultScreenRect, nil
	}
	if len(c.Screen) != 2 {
		return Rect{}, fmt.Errorf("grove: screen rect has %d corners: %w", len(c.Screen), ErrLengthMismatch)
	}
	return RectOf(c.Screen[0], c.Screen[1])
}

// Build creates a Scene with every configured object. loader may be nil if
// no renderer has type "image".
func (c *SceneConfig) Build(gfx Graphics, loader *Loader) (*Scene, error) {
	bg := ColorWhite
	if len(c.Background) > 0 {
		var err error
		if bg, err = ColorOf(c.Background...); err != nil {
			return nil, fmt.Errorf("grove: scene %q background: %w", c.Name, err)
		}
	}
	s := NewScene(c.Name, gfx, bg)
	for i := range c.Objects {
		if err := c.Objects[i].build(s, loader); err != nil {
			return nil, fmt.Errorf("grove: scene %q object %d: %w", c.Name, i, err)
		}
	}
	return s, nil
}

func optVector(xs []float64, def Vector) (Vector, error) {
	if xs == nil {
		return def, nil
	}
	return VectorOf(xs...)
}

func (oc *ObjectConfig) build(s *Scene, loader *Loader) error {
	obj := s.NewObject(oc.Name)
	obj.Tag = oc.Tag

	if tc := oc.Transform; tc != nil {
		t := NewTransform()
		var err error
		if t.Pos, err = optVector(tc.Pos, t.Pos); err != nil {
			return fmt.Errorf("transform pos: %w", err)
		}
		if t.Scale, err = optVector(tc.Scale, t.Scale); err != nil {
			return fmt.Errorf("transform scale: %w", err)
		}
		t.Rotation = tc.Rotation
		AddComponent(obj, t)
	}

	for i := range oc.Renderers {
		if err := oc.Renderers[i].build(obj, s.gfx, loader); err != nil {
			return fmt.Errorf("renderer %d: %w", i, err)
		}
	}

	if cc := oc.Collider; cc != nil {
		col := NewRectCollider()
		col.FollowRenderer = cc.FollowRenderer
		if len(cc.Rect) > 0 {
			if len(cc.Rect) != 2 {
				return fmt.Errorf("collider rect has %d corners: %w", len(cc.Rect), ErrLengthMismatch)
			}
			r, err := RectOf(cc.Rect[0], cc.Rect[1])
			if err != nil {
				return fmt.Errorf("collider: %w", err)
			}
			col.SetRect(r)
		}
		AddComponent(obj, col)
	}
	return nil
}

func (rc *RendererConfig) build(obj *GameObject, gfx Graphics, loader *Loader) error {
	offset, err := optVector(rc.Offset, Vector{})
	if err != nil {
		return fmt.Errorf("offset: %w", err)
	}

	var r *TransformedImageRenderer
	switch rc.Type {
	case "solid":
		c := ColorWhite
		if len(rc.Color) > 0 {
			if c, err = ColorOf(rc.Color...); err != nil {
				return fmt.Errorf("color: %w", err)
			}
		}
		w, h := DefaultSolidResolution, DefaultSolidResolution
		if rc.Resolution != nil {
			if len(rc.Resolution) != 2 {
				return fmt.Errorf("resolution has %d values: %w", len(rc.Resolution), ErrLengthMismatch)
			}
			w, h = rc.Resolution[0], rc.Resolution[1]
		}
		if w <= 0 || h <= 0 {
			return fmt.Errorf("resolution %dx%d must be positive", w, h)
		}
		sr := AddComponent(obj, NewSolidColorRenderer(gfx, c, w, h))
		r = &sr.TransformedImageRenderer
	case "image":
		if loader == nil {
			return fmt.Errorf("image %q: no loader: %w", rc.Image, ErrUnsupported)
		}
		img, err := loader.Load(rc.Image)
		if err != nil {
			return err
		}
		r = AddComponent(obj, NewTransformedImageRenderer(gfx, img))
	default:
		return fmt.Errorf("renderer type %q: %w", rc.Type, ErrUnsupported)
	}
	r.SetOffset(offset)
	return nil
}
