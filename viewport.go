package bounce

import "fmt"

// Viewport is the last framebuffer size the quad was laid out for. It only
// exists to compute the rescale ratio on the next resize.
type Viewport struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Resize rescales q from the previous viewport size to width x height and
// records the new size. Positions are multiplied by old/new on each axis so
// the logo keeps its on-screen pixel size and relative position instead of
// stretching with the NDC space. Texcoords are untouched.
//
// It returns false, leaving q and v unchanged, when the size is the same or
// when either dimension is not positive (a minimized window reports 0x0).
// A zero Viewport adopts the new size without touching q.
func (v *Viewport) Resize(q *Quad, width, height int) bool {
	next := Viewport{Width: width, Height: height}
	if !next.Valid() || next == *v {
		return false
	}
	if !v.Valid() {
		// Nothing to rescale from yet.
		*v = next
		return true
	}
	sx := float32(v.Width) / float32(width)
	sy := float32(v.Height) / float32(height)
	q.Scale(sx, sy)
	*v = next
	return true
}

// String formats the size as WxH.
func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}
