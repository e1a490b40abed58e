package bounce

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"testing"

	"golang.org/x/image/colornames"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Width != 800 || c.Height != 800 {
		t.Errorf("window = %dx%d, want 800x800", c.Width, c.Height)
	}
	if c.ImagePath != "dvdlogo.png" {
		t.Errorf("ImagePath = %q, want %q", c.ImagePath, "dvdlogo.png")
	}
	if c.Speed != 0.008 || c.Margin != 0 || c.UniformScale != 0.5 {
		t.Errorf("motion = speed %v margin %v scale %v, want 0.008 0 0.5", c.Speed, c.Margin, c.UniformScale)
	}
	if c.ClearColor != ColorWhite {
		t.Errorf("ClearColor = %v, want white", c.ClearColor)
	}
	if c.BounceTint || c.ShowDebug {
		t.Error("tint and debug overlay should be off by default")
	}
	if err := c.validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidWindowSize},
		{"negative height", func(c *Config) { c.Height = -5 }, ErrInvalidWindowSize},
		{"zero scale", func(c *Config) { c.UniformScale = 0 }, ErrInvalidScale},
		{"zero speed is fine", func(c *Config) { c.Speed = 0 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	c := DefaultConfig()
	c.Width = 0
	if err := Run(c); !errors.Is(err, ErrInvalidWindowSize) {
		t.Errorf("Run = %v, want ErrInvalidWindowSize", err)
	}
}

func TestRunFailsOnMissingLogo(t *testing.T) {
	c := DefaultConfig()
	c.ImagePath = t.TempDir() + "/nope.png"
	if err := Run(c); err == nil {
		t.Error("Run with a missing logo should fail before opening a window")
	}
}

func TestColorOf(t *testing.T) {
	if got := ColorOf(colornames.White); got != ColorWhite {
		t.Errorf("ColorOf(white) = %v, want %v", got, ColorWhite)
	}
	got := ColorOf(color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	if !approxEqual(got.R, 1, epsilon) || got.G != 0 || !approxEqual(got.B, 0.2, epsilon) || got.A != 1 {
		t.Errorf("ColorOf = %v, want {1 0 0.2 1}", got)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0, B: 2, A: 1}.RGBA()
	if r != 0xffff || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("RGBA = (%x, %x, %x, %x), want clamped opaque magenta", r, g, b, a)
	}
}

func TestDefaultPaletteOpaque(t *testing.T) {
	if len(DefaultPalette) < 2 {
		t.Fatalf("palette has %d colors, want at least 2", len(DefaultPalette))
	}
	for i, c := range DefaultPalette {
		if c.A != 1 {
			t.Errorf("palette[%d] alpha = %v, want 1", i, c.A)
		}
	}
}

func TestRandomHeading(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 1000; i++ {
		h := RandomHeading(r)
		if h < 0 || h >= 360 || h != float32(int(h)) {
			t.Fatalf("RandomHeading = %v, want whole degrees in [0, 360)", h)
		}
	}
	if h := RandomHeading(nil); h < 0 || h >= 360 {
		t.Errorf("RandomHeading(nil) = %v, out of range", h)
	}
}
