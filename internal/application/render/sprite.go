// Package render draws the menu's sprites, the layered sprite groups and the
// statistics overlay.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
)

// Drawable is anything drawn once per frame
type Drawable interface {
	Draw(screen *ebiten.Image)
}

// Sprite is an image placed at the position of its resolv rectangle.
// The rectangle doubles as the sprite's collision box.
type Sprite struct {
	Image *ebiten.Image
	obj   *resolv.Object
}

// NewSprite creates a sprite at (x, y) sized to img
func NewSprite(img *ebiten.Image, x, y float64) *Sprite {
	b := img.Bounds()
	return NewSpriteRect(img, x, y, float64(b.Dx()), float64(b.Dy()))
}

// NewSpriteRect creates a sprite with an explicit collision box. img may be
// nil for invisible trigger areas.
func NewSpriteRect(img *ebiten.Image, x, y, w, h float64) *Sprite {
	return &Sprite{
		Image: img,
		obj:   resolv.NewObject(x, y, w, h),
	}
}

// Object implements collision.Collider
func (s *Sprite) Object() *resolv.Object {
	return s.obj
}

// Position returns the top-left corner
func (s *Sprite) Position() (float64, float64) {
	return s.obj.X, s.obj.Y
}

// SetPosition moves the sprite and its collision box
func (s *Sprite) SetPosition(x, y float64) {
	s.obj.X = x
	s.obj.Y = y
}

// Move offsets the sprite by (dx, dy)
func (s *Sprite) Move(dx, dy float64) {
	s.obj.X += dx
	s.obj.Y += dy
}

// Draw implements Drawable
func (s *Sprite) Draw(screen *ebiten.Image) {
	if s.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.obj.X, s.obj.Y)
	screen.DrawImage(s.Image, op)
}
