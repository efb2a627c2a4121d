// Package assets loads icon images and renders them as terminal half blocks.
package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// Loader decodes images under a root directory and caches them by name.
type Loader struct {
	root string

	mu    sync.Mutex
	cache map[string]*Image
}

// NewLoader returns a loader reading from root.
func NewLoader(root string) *Loader {
	return &Loader{root: root, cache: make(map[string]*Image)}
}

// Root returns the asset directory.
func (l *Loader) Root() string {
	return l.root
}

// Load returns the named image. A missing file yields a glyph stand-in and no
// error; a file that exists but cannot be decoded is an error.
func (l *Loader) Load(name string) (*Image, error) {
	name = strings.TrimSpace(name)

	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.cache[name]; ok {
		return img, nil
	}

	img, err := l.decode(name)
	if err != nil {
		return nil, err
	}
	l.cache[name] = img
	return img, nil
}

// Preload loads every name and stops at the first decode failure.
func (l *Loader) Preload(names ...string) error {
	for _, name := range names {
		if _, err := l.Load(name); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) decode(name string) (*Image, error) {
	if name == "" || l.root == "" {
		return newGlyph(name), nil
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, name)
	}

	src, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newGlyph(name), nil
		}
		return nil, fmt.Errorf("decode asset %s: %w", name, err)
	}
	return newBitmap(name, src), nil
}

// Image is a decoded icon or, when the file was missing, a short text glyph.
type Image struct {
	Name  string
	Glyph string

	src image.Image

	mu       sync.Mutex
	rendered map[RenderOptions]string
}

func newBitmap(name string, src image.Image) *Image {
	return &Image{Name: name, src: src, rendered: make(map[RenderOptions]string)}
}

func newGlyph(name string) *Image {
	return &Image{Name: name, Glyph: glyphFor(name), rendered: make(map[RenderOptions]string)}
}

// Glyph returns the text stand-in for name.
func Glyph(name string) *Image {
	return newGlyph(name)
}

// NewBitmap wraps an already decoded image.
func NewBitmap(name string, src image.Image) *Image {
	return newBitmap(name, src)
}

// IsGlyph reports whether the image is a text stand-in.
func (i *Image) IsGlyph() bool {
	return i.src == nil
}

// Bounds returns the source pixel size; zero for glyphs.
func (i *Image) Bounds() image.Rectangle {
	if i.src == nil {
		return image.Rectangle{}
	}
	return i.src.Bounds()
}
