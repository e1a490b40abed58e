package bounce

import "github.com/go-gl/mathgl/mgl32"

// Vertex layout inside a Quad. Each vertex is four float32s:
// position x, position y, texcoord x, texcoord y.
const (
	vertexStride = 4
	quadFloats   = 4 * vertexStride

	topRight    = 0
	bottomRight = 4
	bottomLeft  = 8
	topLeft     = 12
)

// quadIndices draws the quad as two triangles sharing the top-right/bottom-left diagonal.
var quadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// Quad is the logo rectangle in normalized device coordinates, stored as the
// flat 16-float buffer that is uploaded to the GPU every frame.
//
// Vertex order is top-right, bottom-right, bottom-left, top-left. Texture
// coordinates use a y-up convention (the image is flipped on load), so the
// top-right vertex samples (1, 1).
type Quad [quadFloats]float32

// NewQuad returns a quad centered on the origin with the given half extents.
func NewQuad(halfWidth, halfHeight float32) Quad {
	return Quad{
		// position, texcoord
		halfWidth, halfHeight, 1, 1,   // top right
		halfWidth, -halfHeight, 1, 0,  // bottom right
		-halfWidth, -halfHeight, 0, 0, // bottom left
		-halfWidth, halfHeight, 0, 1,  // top left
	}
}

// HalfExtents returns the initial half width and half height of a logo whose
// image is width x height pixels, drawn at the given uniform scale. The height
// always spans uniformScale in NDC; the width follows the image aspect ratio.
func HalfExtents(width, height int, uniformScale float32) (halfWidth, halfHeight float32) {
	aspect := float32(width) / float32(height)
	return 0.5 * aspect * uniformScale, 0.5 * uniformScale
}

// QuadForImage returns a centered quad sized for an image of the given pixel
// dimensions.
func QuadForImage(width, height int, uniformScale float32) Quad {
	return NewQuad(HalfExtents(width, height, uniformScale))
}

// Vertices returns the buffer as a slice. The slice aliases the quad.
func (q *Quad) Vertices() []float32 {
	return q[:]
}

// Translate moves all four positions by (dx, dy). Texcoords are untouched.
func (q *Quad) Translate(dx, dy float32) {
	for i := 0; i < quadFloats; i += vertexStride {
		q[i] += dx
		q[i+1] += dy
	}
}

// Scale multiplies every position component by (sx, sy) around the NDC origin.
func (q *Quad) Scale(sx, sy float32) {
	for i := 0; i < quadFloats; i += vertexStride {
		q[i] *= sx
		q[i+1] *= sy
	}
}

// Position returns the position of the vertex starting at offset i.
func (q *Quad) Position(i int) mgl32.Vec2 {
	return mgl32.Vec2{q[i], q[i+1]}
}

// TexCoord returns the texture coordinate of the vertex starting at offset i.
func (q *Quad) TexCoord(i int) mgl32.Vec2 {
	return mgl32.Vec2{q[i+2], q[i+3]}
}

// LowerLeft returns the bottom-left corner, used for the minimum-side collision test.
func (q *Quad) LowerLeft() mgl32.Vec2 {
	return q.Position(bottomLeft)
}

// UpperRight returns the top-right corner, used for the maximum-side collision test.
func (q *Quad) UpperRight() mgl32.Vec2 {
	return q.Position(topRight)
}

// Size returns the width and height of the rectangle in NDC.
func (q *Quad) Size() (w, h float32) {
	ur, ll := q.UpperRight(), q.LowerLeft()
	return ur.X() - ll.X(), ur.Y() - ll.Y()
}

// Center returns the midpoint of the rectangle.
func (q *Quad) Center() mgl32.Vec2 {
	return q.UpperRight().Add(q.LowerLeft()).Mul(0.5)
}
