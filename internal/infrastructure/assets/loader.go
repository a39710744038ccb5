// Package assets loads images, music and fonts from a filesystem. Every
// loader fails fast with ErrResourceNotFound when a path is missing, so
// missing files surface at setup instead of mid-frame.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// ErrResourceNotFound is returned for a path that does not exist
var ErrResourceNotFound = errors.New("resource not found")

// Loader reads assets from an fs.FS
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader rooted at dir
func NewLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir)}
}

// NewFSLoader creates a loader over fsys
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Check verifies that every path exists
func (l *Loader) Check(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if _, err := fs.Stat(l.fsys, clean(p)); err != nil {
			errs = append(errs, wrapNotFound(p, err))
		}
	}
	return errors.Join(errs...)
}

// ReadFile returns the raw bytes of p
func (l *Loader) ReadFile(p string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, clean(p))
	if err != nil {
		return nil, wrapNotFound(p, err)
	}
	return data, nil
}

// DecodeImage loads and decodes p
func (l *Loader) DecodeImage(p string) (image.Image, error) {
	f, err := l.fsys.Open(clean(p))
	if err != nil {
		return nil, wrapNotFound(p, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}
	return img, nil
}

// LoadImage loads p as an ebiten image
func (l *Loader) LoadImage(p string) (*ebiten.Image, error) {
	img, err := l.DecodeImage(p)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadScaledImage loads p and rescales it to w x h
func (l *Loader) LoadScaledImage(p string, w, h int) (*ebiten.Image, error) {
	img, err := l.DecodeImage(p)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(Scale(img, w, h)), nil
}

// LoadImages loads every path in order
func (l *Loader) LoadImages(paths []string) ([]*ebiten.Image, error) {
	out := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := l.LoadImage(p)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

// LoadFrames loads every path and rescales each to the same w x h box
func (l *Loader) LoadFrames(paths []string, w, h int) ([]*ebiten.Image, error) {
	out := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := l.LoadScaledImage(p, w, h)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

// Scale resizes src to w x h with Catmull-Rom resampling
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func clean(p string) string {
	return path.Clean(p)
}

func wrapNotFound(p string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrResourceNotFound, p)
	}
	return fmt.Errorf("failed to open %s: %w", p, err)
}
