package bounce

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayW x overlayH fits the five lines of overlayText in the debug font.
const (
	overlayW = 220
	overlayH = 80
)

// drawOverlay prints the motion state in the top-left corner of screen.
// The backing image is created on first use and reused every frame.
func (s *Session) drawOverlay(screen *ebiten.Image) {
	if s.overlay == nil {
		s.overlay = ebiten.NewImage(overlayW, overlayH)
	}
	s.overlay.Clear()
	// Semi-transparent background for readability
	s.overlay.Fill(color.RGBA{A: 128})
	ebitenutil.DebugPrint(s.overlay, overlayText(s, ebiten.ActualFPS(), ebiten.ActualTPS()))
	screen.DrawImage(s.overlay, nil)
}

// overlayText formats the lines shown by the debug overlay.
func overlayText(s *Session, fps, tps float64) string {
	ll, ur := s.quad.LowerLeft(), s.quad.UpperRight()
	return fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nheading: %.2f\nLL: (%.3f, %.3f)\nUR: (%.3f, %.3f)\nbounces: %d  view: %s",
		fps, tps,
		s.motion.Heading,
		ll.X(), ll.Y(),
		ur.X(), ur.Y(),
		s.bounces, s.viewport,
	)
}
