package bounce

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// Session owns every piece of mutable render state: the quad, its motion, the
// last viewport size, the GPU resources, and the pending event queue. It
// implements ebiten.Game; one call of Update followed by Draw is one frame.
type Session struct {
	cfg Config
	log *slog.Logger

	quad     Quad
	motion   Motion
	viewport Viewport
	tint     *Tint

	logo    Logo
	shader  *ebiten.Shader
	overlay *ebiten.Image

	events   eventQueue
	reported Viewport // last size seen by Layout
	redraw   bool

	verts  []ebiten.Vertex
	synced Viewport // target size verts were built for

	frames  uint64
	bounces uint64
}

// newSession builds the session around an already loaded logo and compiled
// shader. The quad starts centered, sized from the logo's aspect ratio.
func newSession(cfg Config, logo Logo, shader *ebiten.Shader) *Session {
	s := &Session{
		cfg:      cfg,
		log:      cfg.logger(),
		quad:     QuadForImage(logo.Width, logo.Height, cfg.UniformScale),
		motion:   Motion{Heading: RandomHeading(cfg.Rand), Speed: cfg.Speed, Margin: cfg.Margin},
		viewport: Viewport{Width: cfg.Width, Height: cfg.Height},
		reported: Viewport{Width: cfg.Width, Height: cfg.Height},
		logo:     logo,
		shader:   shader,
		verts:    make([]ebiten.Vertex, 0, 4),
	}
	if cfg.BounceTint {
		s.tint = NewTint(DefaultPalette, cfg.TintFrames)
	}
	s.upload()
	return s
}

// Quad returns a copy of the current geometry.
func (s *Session) Quad() Quad { return s.quad }

// Heading returns the current travel direction in degrees.
func (s *Session) Heading() float32 { return s.motion.Heading }

// Viewport returns the size the geometry is currently laid out for.
func (s *Session) Viewport() Viewport { return s.viewport }

// Frames returns the number of completed Update calls.
func (s *Session) Frames() uint64 { return s.frames }

// Bounces returns how many frames ended with at least one edge collision.
func (s *Session) Bounces() uint64 { return s.bounces }

// Post queues an event for the next Update.
func (s *Session) Post(e Event) {
	s.events.push(e)
}

// Update runs the simulation half of a frame: drain queued events, advance
// the logo, and upload the moved geometry. Draw and the buffer swap follow.
func (s *Session) Update() error {
	s.pollEvents()

	c := s.motion.Advance(&s.quad)
	if c != CollideNone {
		s.bounces++
		s.log.Debug("bounce",
			"axis", c.String(),
			"heading", s.motion.Heading,
			"frame", s.frames)
		if s.tint != nil {
			s.tint.Bounce()
		}
	}
	if s.tint != nil {
		s.tint.Update(1)
	}

	s.upload()
	s.frames++
	return nil
}

// Draw clears the target and draws the quad as two indexed triangles.
func (s *Session) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if s.redraw || b.Dx() != s.synced.Width || b.Dy() != s.synced.Height {
		s.syncVertices(b.Dx(), b.Dy())
		s.redraw = false
	}

	screen.Fill(s.cfg.ClearColor)

	var op ebiten.DrawTrianglesShaderOptions
	op.Images[0] = s.logo.Image
	screen.DrawTrianglesShader32(s.verts, quadIndices, s.shader, &op)

	if s.cfg.ShowDebug {
		s.drawOverlay(screen)
	}
}

// Layout reports the framebuffer size. The screen always matches the window
// in pixels; that is the viewport transform. A size change is only queued
// here and applied by the next Update.
func (s *Session) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := Viewport{Width: outsideWidth, Height: outsideHeight}
	if !size.Valid() {
		// Minimized. Keep the last real size so Ebitengine has a valid screen.
		return s.reported.Width, s.reported.Height
	}
	if size != s.reported {
		s.reported = size
		s.Post(Event{Type: EventResize, Width: outsideWidth, Height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}

// pollEvents applies every queued event in arrival order.
func (s *Session) pollEvents() {
	s.events.drain(func(e Event) {
		switch e.Type {
		case EventResize:
			s.resize(e.Width, e.Height)
		case EventRedraw:
			s.redraw = true
		}
	})
}

// resize rescales the quad for the new framebuffer size, re-uploads it, and
// requests a redraw so the frame being built reflects the new scale.
func (s *Session) resize(width, height int) {
	old := s.viewport
	if !s.viewport.Resize(&s.quad, width, height) {
		return
	}
	s.upload()
	s.redraw = true
	s.log.Info("viewport resized",
		"from", old,
		"to", s.viewport)
}

// upload syncs the full vertex buffer against the current viewport.
func (s *Session) upload() {
	s.syncVertices(s.viewport.Width, s.viewport.Height)
}

func (s *Session) syncVertices(width, height int) {
	tint := Color{R: 1, G: 1, B: 1, A: 0}
	if s.tint != nil {
		tint = s.tint.Color
	}
	s.verts = quadVertices(s.verts, &s.quad, width, height, s.logo.Width, s.logo.Height, tint)
	s.synced = Viewport{Width: width, Height: height}
}
