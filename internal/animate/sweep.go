package animate

import (
	"chardraw/internal/canvas"
	"chardraw/internal/logging"
	"chardraw/internal/terminal"
)

// Sweep fills a pie slice that grows around the circle, one step per frame,
// cycling through the generated palette.
type Sweep struct {
	canvas  *canvas.Canvas
	x, y, r float64
	step    float64
	frame   int
}

// NewSweep creates a sweep centred on the canvas, as large as fits.
// step is the growth per frame in degrees.
func NewSweep(c *canvas.Canvas, step float64) *Sweep {
	if step <= 0 || step > 360 {
		step = 15
	}
	w, h := c.Dimensions()
	r := min(float64(w)/2/c.Aspect(), float64(h)/2) - 1
	return &Sweep{
		canvas: c,
		x:      float64(w) / 2,
		y:      float64(h) / 2,
		r:      max(r, 0),
		step:   step,
	}
}

// Start draws the first frame.
func (s *Sweep) Start() {
	s.Render()
}

// Stop leaves the last frame on screen.
func (s *Sweep) Stop() {
	s.refresh()
}

// Render draws the slice for the current frame and advances.
func (s *Sweep) Render() {
	n := s.FrameCount()
	i := s.frame % n
	s.canvas.Clear()
	s.canvas.Circle(s.x, s.y, s.r, terminal.White, false)
	s.canvas.Arc(s.x, s.y, s.r, -90, -90+float64(i+1)*s.step, terminal.Ramp(s.frame), true)
	s.refresh()
	s.frame++
}

// FrameCount returns the number of steps in a full turn.
func (s *Sweep) FrameCount() int {
	n := int(360 / s.step)
	if float64(n)*s.step < 360 {
		n++
	}
	return n
}

func (s *Sweep) refresh() {
	if err := s.canvas.Refresh(); err != nil {
		logging.Logger().Debug("refresh failed", "error", err)
	}
}
