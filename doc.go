// Package bounce is a bouncing-logo screensaver for [Ebitengine].
//
// A single textured quad travels across the window in normalized device
// coordinates and reflects off the edges, in the manner of the classic DVD
// player idle screen.
//
// # Quick start
//
//	if err := bounce.Run(bounce.DefaultConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// Run loads dvdlogo.png from the working directory, sizes the quad from the
// image's aspect ratio, and opens a resizable 800x800 window.
//
// # Frame
//
// [Session] implements [ebiten.Game]. Each frame runs, in order: drain queued
// events, [Motion.Advance], upload the vertex buffer, clear and draw two
// indexed triangles, present. Collisions are tested after the quad moves and
// only change the heading; the quad is never clamped back inside the window.
//
// # Reflection
//
// Heading is in degrees. Touching the left or right edge sets it to
// 180 - heading (folded into [0, 360) when negative); touching the bottom or
// top edge sets it to 360 - heading. On a corner hit the horizontal rule is
// applied first.
//
// # Resizing
//
// Layout queues an [EventResize]. The next Update multiplies every vertex
// position by old/new size per axis ([Viewport.Resize]) so the logo keeps its
// pixel size and relative position, then requests a redraw.
//
// [Ebitengine]: https://ebitengine.org
package bounce
