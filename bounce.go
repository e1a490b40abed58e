package bounce

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"

	"golang.org/x/image/colornames"
)

// Defaults reproduce the classic screensaver: an 800x800 window, a logo half
// the viewport tall, moving 0.008 NDC units per frame.
const (
	DefaultTitle        = "DvD"
	DefaultWindowSize   = 800
	DefaultImagePath    = "dvdlogo.png"
	DefaultSpeed        = 0.008
	DefaultMargin       = 0.0
	DefaultUniformScale = 0.5
	DefaultTintFrames   = 30
)

var (
	// ErrInvalidWindowSize is returned when a configured window dimension is not positive.
	ErrInvalidWindowSize = errors.New("window size must be positive")
	// ErrInvalidScale is returned when the logo's uniform scale is not positive.
	ErrInvalidScale = errors.New("uniform scale must be positive")
	// ErrInvalidImageSize is returned when the logo image has no pixels.
	ErrInvalidImageSize = errors.New("image has zero width or height")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default clear color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorOf converts any color.Color (for example a colornames entry) to a Color.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}.RGBA()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DefaultPalette is the sequence of tints the logo cycles through when
// Config.BounceTint is set.
var DefaultPalette = []Color{
	ColorOf(colornames.Deepskyblue),
	ColorOf(colornames.Gold),
	ColorOf(colornames.Orangered),
	ColorOf(colornames.Limegreen),
	ColorOf(colornames.Mediumorchid),
	ColorOf(colornames.Hotpink),
}

// Config holds everything Run needs to set up the window and the logo.
// Values are fixed for the lifetime of the process.
type Config struct {
	Title         string
	Width, Height int
	ImagePath     string

	Speed        float32
	Margin       float32
	UniformScale float32

	ClearColor Color

	// BounceTint eases the logo toward the next DefaultPalette color on every
	// bounce, over TintFrames frames.
	BounceTint bool
	TintFrames int

	// ShowDebug draws heading, corners, and frame rates over the logo.
	ShowDebug bool

	// Logger receives startup, resize, and bounce events. Nil uses slog.Default().
	Logger *slog.Logger

	// Rand picks the initial heading. Nil uses the global source.
	Rand *rand.Rand
}

// DefaultConfig returns the stock screensaver configuration.
func DefaultConfig() Config {
	return Config{
		Title:        DefaultTitle,
		Width:        DefaultWindowSize,
		Height:       DefaultWindowSize,
		ImagePath:    DefaultImagePath,
		Speed:        DefaultSpeed,
		Margin:       DefaultMargin,
		UniformScale: DefaultUniformScale,
		ClearColor:   ColorOf(colornames.White),
		TintFrames:   DefaultTintFrames,
	}
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: %dx%d: %w", c.Width, c.Height, ErrInvalidWindowSize)
	}
	if c.UniformScale <= 0 {
		return fmt.Errorf("config: %v: %w", c.UniformScale, ErrInvalidScale)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// RandomHeading returns a whole-degree heading in [0, 360).
func RandomHeading(r *rand.Rand) float32 {
	if r == nil {
		return float32(rand.IntN(360))
	}
	return float32(r.IntN(360))
}
