package bounce

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tint eases the logo color through a palette, one step per bounce.
// Time is measured in frames: Update(1) advances one frame.
//
// There is no global animation manager; the session calls Update each frame.
type Tint struct {
	Color Color

	palette []Color
	next    int
	frames  float32
	tweens  [3]*gween.Tween
	Done    bool
}

// NewTint returns a tint resting on the first palette color. Each Bounce
// starts a transition of the given length toward the following color.
func NewTint(palette []Color, frames int) *Tint {
	if len(palette) == 0 {
		palette = []Color{ColorWhite}
	}
	if frames < 1 {
		frames = 1
	}
	t := &Tint{
		palette: palette,
		frames:  float32(frames),
		Done:    true,
	}
	t.Color = palette[0]
	t.Color.A = 1
	t.next = 1 % len(palette)
	return t
}

// Target returns the color the current (or next) transition ends on.
func (t *Tint) Target() Color {
	return t.palette[t.next]
}

// Bounce retargets the tint to the next palette color, starting from wherever
// the current transition has reached.
func (t *Tint) Bounce() {
	to := t.palette[t.next]
	t.next = (t.next + 1) % len(t.palette)

	t.tweens[0] = gween.New(float32(t.Color.R), float32(to.R), t.frames, ease.InOutSine)
	t.tweens[1] = gween.New(float32(t.Color.G), float32(to.G), t.frames, ease.InOutSine)
	t.tweens[2] = gween.New(float32(t.Color.B), float32(to.B), t.frames, ease.InOutSine)
	t.Done = false
}

// Update advances the active transition by dt frames.
func (t *Tint) Update(dt float32) {
	if t.Done {
		return
	}
	fields := [3]*float64{&t.Color.R, &t.Color.G, &t.Color.B}
	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}
