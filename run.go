package bounce

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run loads the logo, opens a resizable window, and drives the screensaver
// until the window is closed. Any setup failure is returned with the resource
// that failed; nothing is drawn with a half-initialized state.
func Run(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	log := cfg.logger()

	logo, err := LoadLogo(cfg.ImagePath)
	if err != nil {
		return err
	}
	shader, err := compileLogoShader()
	if err != nil {
		return err
	}

	s := newSession(cfg, logo, shader)
	log.Info("logo loaded",
		"path", cfg.ImagePath,
		"width", logo.Width,
		"height", logo.Height,
		"channels", logo.Channels,
		"heading", s.Heading())

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	// One Update per presented frame; vsync is the only limiter.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(s); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	log.Info("window closed", "frames", s.Frames(), "bounces", s.Bounces())
	return nil
}
