package assets

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ParseFace builds a font face of the given point size from TrueType data
func ParseFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// LoadFace reads a TrueType file and builds a face from it
func (l *Loader) LoadFace(p string, size float64) (font.Face, error) {
	data, err := l.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return ParseFace(data, size)
}

// DefaultFace returns Go Regular at the given size
func DefaultFace(size float64) (font.Face, error) {
	return ParseFace(goregular.TTF, size)
}
