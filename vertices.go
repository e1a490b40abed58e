package bounce

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// ndcToPixel maps a normalized device coordinate onto a width x height target
// whose origin is the top-left corner with Y increasing downward.
func ndcToPixel(p mgl32.Vec2, width, height int) (x, y float32) {
	x = (p.X() + 1) * 0.5 * float32(width)
	y = (1 - p.Y()) * 0.5 * float32(height)
	return x, y
}

// texToPixel maps a y-up texture coordinate onto the source image's pixel
// space, which is y-down. This is the vertical flip applied on load.
func texToPixel(t mgl32.Vec2, texW, texH int) (x, y float32) {
	x = t.X() * float32(texW)
	y = (1 - t.Y()) * float32(texH)
	return x, y
}

// quadVertices writes the four vertices of q into dst for a target of
// width x height pixels, sampling a texW x texH texture and carrying tint as
// the vertex color. dst is grown if needed and the resliced buffer returned.
func quadVertices(dst []ebiten.Vertex, q *Quad, width, height, texW, texH int, tint Color) []ebiten.Vertex {
	if cap(dst) < 4 {
		dst = make([]ebiten.Vertex, 4)
	}
	dst = dst[:4]

	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for v := 0; v < 4; v++ {
		off := v * vertexStride
		dx, dy := ndcToPixel(q.Position(off), width, height)
		sx, sy := texToPixel(q.TexCoord(off), texW, texH)
		dst[v] = ebiten.Vertex{
			DstX:   dx,
			DstY:   dy,
			SrcX:   sx,
			SrcY:   sy,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
	return dst
}
