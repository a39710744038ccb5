package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based drawing
	"golang.org/x/image/font"
)

// Statistics overlay placement
const (
	StatisticsX = 10
	StatisticsY = 10
)

// StatisticsText formats the overlay line
func StatisticsText(version string, fps float64) string {
	return fmt.Sprintf("Version: %s FPS: %d", version, int(fps))
}

// Overlay draws the version and frame rate in the top-left corner
type Overlay struct {
	face    font.Face
	color   color.Color
	version string
	fps     func() float64
}

// NewOverlay creates an overlay. fps reports the current frame rate,
// normally ebiten.ActualFPS.
func NewOverlay(face font.Face, clr color.Color, version string, fps func() float64) *Overlay {
	return &Overlay{face: face, color: clr, version: version, fps: fps}
}

// Text returns the line the next Draw renders
func (o *Overlay) Text() string {
	return StatisticsText(o.version, o.fps())
}

// Draw implements Drawable. text.Draw positions by baseline, so the ascent
// is added to put the top of the line at StatisticsY.
func (o *Overlay) Draw(screen *ebiten.Image) {
	y := StatisticsY + o.face.Metrics().Ascent.Ceil()
	text.Draw(screen, o.Text(), o.face, StatisticsX, y, o.color)
}
