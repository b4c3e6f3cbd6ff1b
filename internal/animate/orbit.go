package animate

import (
	"math"

	"chardraw/internal/canvas"
	"chardraw/internal/logging"
	"chardraw/internal/terminal"
)

// trailLength is the number of dots in the trail, head included.
const trailLength = 4

// Orbit moves a trail of dots around a circle. The head is drawn in a
// colour that cycles through the generated palette.
type Orbit struct {
	canvas    *canvas.Canvas
	positions [][2]float64
	frameIdx  int
	color     int
}

// NewOrbit creates an orbit of n positions centred on the canvas.
func NewOrbit(c *canvas.Canvas, n int) *Orbit {
	n = max(n, trailLength)
	w, h := c.Dimensions()
	cx, cy := float64(w)/2, float64(h)/2
	r := max(min(float64(w)/2/c.Aspect(), float64(h)/2)-2, 1)

	o := &Orbit{canvas: c, positions: make([][2]float64, n)}
	for i := range o.positions {
		a := 2 * math.Pi * float64(i) / float64(n)
		o.positions[i] = [2]float64{cx + r*math.Cos(a)*c.Aspect(), cy + r*math.Sin(a)}
	}
	return o
}

// Start draws the first frame.
func (o *Orbit) Start() {
	o.Render()
}

// Stop clears the orbit.
func (o *Orbit) Stop() {
	o.canvas.Clear()
	if err := o.canvas.Refresh(); err != nil {
		logging.Logger().Debug("refresh failed", "error", err)
	}
}

// Render draws the trail at the current position and advances.
func (o *Orbit) Render() {
	o.canvas.Clear()
	n := len(o.positions)
	for i := range trailLength {
		// i=0 is the head
		p := o.positions[(o.frameIdx-i+n)%n]
		col := terminal.White
		if i == 0 {
			col = terminal.Ramp(o.color)
		}
		o.canvas.Circle(p[0], p[1], 1, col, i == 0)
	}
	if err := o.canvas.Refresh(); err != nil {
		logging.Logger().Debug("refresh failed", "error", err)
	}

	o.frameIdx = (o.frameIdx + 1) % n
	o.color++
}

// FrameCount returns the number of positions on the orbit.
func (o *Orbit) FrameCount() int {
	return len(o.positions)
}

// Head returns the position of the trail head in the next frame.
func (o *Orbit) Head() (x, y float64) {
	p := o.positions[o.frameIdx]
	return p[0], p[1]
}
