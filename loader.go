package grove

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG decoder
	"io/fs"
	"path"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// DefaultImageName is loaded when a requested image can't be found.
const DefaultImageName = "missing.png"

// Default minimum resolution for loaded images. Smaller images are upscaled
// so that scaling them to screen size later does not look blocky.
const (
	DefaultMinWidth  = 1000
	DefaultMinHeight = 1000
)

// Loader resolves image names against a file system, decodes each resolved
// file once, and hands out upscaled copies.
type Loader struct {
	// MinWidth and MinHeight are the resolution floor. Images narrower or
	// shorter are upscaled preserving aspect ratio.
	MinWidth, MinHeight int
	// Suffixes are tried in order when a name doesn't exist as given.
	Suffixes []string
	// Default is loaded when nothing else resolves.
	Default string

	fsys    fs.FS
	gfx     Graphics
	decoded map[string]image.Image
}

// NewLoader returns a Loader reading from fsys.
func NewLoader(fsys fs.FS, gfx Graphics) *Loader {
	return &Loader{
		MinWidth:  DefaultMinWidth,
		MinHeight: DefaultMinHeight,
		Suffixes:  []string{".png"},
		Default:   DefaultImageName,
		fsys:      fsys,
		gfx:       gfx,
		decoded:   make(map[string]image.Image),
	}
}

func (l *Loader) exists(name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	st, err := fs.Stat(l.fsys, name)
	return err == nil && !st.IsDir()
}

// Resolve maps name to the path that Load would read: name itself if it
// exists, else name with each suffix in turn replacing its extension, else
// Default.
func (l *Loader) Resolve(name string) string {
	if name == "" {
		return l.Default
	}
	if l.exists(name) {
		return name
	}
	base := strings.TrimSuffix(name, path.Ext(name))
	for _, s := range l.Suffixes {
		if p := base + s; l.exists(p) {
			return p
		}
	}
	return l.Default
}

// decode returns the decoded image at p, reading it at most once.
func (l *Loader) decode(p string) (image.Image, error) {
	if img, ok := l.decoded[p]; ok {
		return img, nil
	}
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("grove: decode %s: %w", p, err)
	}
	l.decoded[p] = img
	return img, nil
}

// Load returns a new Image for name, upscaled to the resolution floor. If
// neither name nor Default exists, a magenta placeholder is returned.
func (l *Loader) Load(name string) (Image, error) {
	p := l.Resolve(name)
	img, err := l.decode(p)
	if err != nil {
		if p != l.Default || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("grove: load image %q: %w", name, err)
		}
		img = placeholderImage()
	}
	return l.gfx.FromImage(upscale(img, l.MinWidth, l.MinHeight)), nil
}

// Cached reports how many decoded files are held.
func (l *Loader) Cached() int {
	return len(l.decoded)
}

func placeholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 0, B: 255, A: 255})
	return img
}

// upscaledSize grows w×h to at least minW×minH, widening first and then
// heightening, each step preserving aspect ratio.
func upscaledSize(w, h, minW, minH int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	if w < minW {
		f := float64(minW) / float64(w)
		w, h = minW, int(float64(h)*f)
	}
	if h < minH {
		f := float64(minH) / float64(h)
		w, h = int(float64(w)*f), minH
	}
	return w, h
}

func upscale(src image.Image, minW, minH int) image.Image {
	b := src.Bounds()
	w, h := upscaledSize(b.Dx(), b.Dy(), minW, minH)
	if w == b.Dx() && h == b.Dy() {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
