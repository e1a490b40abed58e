package bounce

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Collision is a bitmask of the viewport axes the quad touched during an Advance.
type Collision uint8

const (
	CollideX Collision = 1 << iota // left or right edge
	CollideY                       // bottom or top edge

	CollideNone Collision = 0
)

// Has reports whether c includes every axis in axis.
func (c Collision) Has(axis Collision) bool {
	return c&axis == axis && axis != 0
}

// String returns a short label for logging.
func (c Collision) String() string {
	switch c {
	case CollideNone:
		return "none"
	case CollideX:
		return "x"
	case CollideY:
		return "y"
	case CollideX | CollideY:
		return "corner"
	default:
		return "invalid"
	}
}

// Motion holds the logo's heading and the constants that drive it across the
// viewport. Heading is in degrees, measured counter-clockwise from +x.
type Motion struct {
	Heading float32
	Speed   float32
	Margin  float32
}

// Direction returns the unit travel vector for the current heading.
func (m *Motion) Direction() mgl32.Vec2 {
	rad := float64(mgl32.DegToRad(m.Heading))
	return mgl32.Vec2{float32(math.Cos(rad)), float32(math.Sin(rad))}.Normalize()
}

// Advance moves q one frame along the heading, then tests the translated quad
// against the viewport bounds and reflects the heading on each axis it touched.
// The quad is never pulled back inside the bounds; an overshooting quad keeps
// its position and only the heading changes for the next frame.
//
// With Speed == 0 Advance does nothing.
func (m *Motion) Advance(q *Quad) Collision {
	if m.Speed == 0 {
		return CollideNone
	}
	d := m.Direction().Mul(m.Speed)
	q.Translate(d.X(), d.Y())

	c := m.Check(q)
	m.Reflect(c)
	return c
}

// Check reports which axes the quad has reached, using its lower-left and
// upper-right corners against [-1+Margin, 1-Margin].
func (m *Motion) Check(q *Quad) Collision {
	lo, hi := -1+m.Margin, 1-m.Margin
	ll, ur := q.LowerLeft(), q.UpperRight()

	var c Collision
	if ll.X() <= lo || ur.X() >= hi {
		c |= CollideX
	}
	if ll.Y() <= lo || ur.Y() >= hi {
		c |= CollideY
	}
	return c
}

// Reflect applies the heading reflection for c. On a corner hit the
// horizontal rule runs first and the vertical rule reflects its result.
func (m *Motion) Reflect(c Collision) {
	if c.Has(CollideX) {
		m.Heading = reflectHorizontal(m.Heading)
	}
	if c.Has(CollideY) {
		m.Heading = reflectVertical(m.Heading)
	}
}

// reflectHorizontal mirrors the heading about the vertical axis and folds a
// negative result back into [0, 360).
func reflectHorizontal(heading float32) float32 {
	heading = 180 - heading
	if heading < 0 {
		heading += 360
	}
	return heading
}

// reflectVertical mirrors the heading about the horizontal axis. The result is
// not renormalized; cos/sin are periodic so out-of-range values are harmless.
func reflectVertical(heading float32) float32 {
	return 360 - heading
}
