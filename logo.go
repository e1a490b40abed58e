package bounce

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Logo is the decoded texture plus the dimensions the quad is sized from.
type Logo struct {
	Image    *ebiten.Image
	Width    int
	Height   int
	Channels int
}

// LoadLogo decodes the image at path and uploads it as a texture.
func LoadLogo(path string) (Logo, error) {
	img, src, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return Logo{}, fmt.Errorf("load logo %q: %w", path, err)
	}
	logo, err := logoFromImage(src)
	if err != nil {
		img.Deallocate()
		return Logo{}, fmt.Errorf("load logo %q: %w", path, err)
	}
	logo.Image = img
	return logo, nil
}

// logoFromImage extracts the size information from a decoded image.
func logoFromImage(src image.Image) (Logo, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Logo{}, ErrInvalidImageSize
	}
	return Logo{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channelCount(src.ColorModel()),
	}, nil
}

// Aspect returns width / height.
func (l Logo) Aspect() float32 {
	return float32(l.Width) / float32(l.Height)
}

// channelCount reports how many components a pixel of the model carries.
func channelCount(m color.Model) int {
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	switch m {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	case color.YCbCrModel:
		return 3
	}
	return 4
}
