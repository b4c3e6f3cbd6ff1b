// Package canvas provides the drawing surface used by everything above the
// rasterizer: pixels, lines, circles, arcs, rectangles, polygons and text on
// a character-cell screen at twice the cell resolution on each axis.
package canvas

import (
	"math"

	"chardraw/internal/logging"
	"chardraw/internal/raster"
	"chardraw/internal/surface"
	"chardraw/internal/terminal"
)

// Canvas draws onto one screen through the PixelSurface it owns. A Canvas
// is not safe for concurrent use.
type Canvas struct {
	surface *surface.Surface
	aspect  float64
	erase   raster.Collector
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithAspect sets the horizontal stretch for circles and arcs. Values that
// are not positive select raster.DefaultAspect.
func WithAspect(aspect float64) Option {
	return func(c *Canvas) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// New creates a canvas covering screen.
func New(screen terminal.Screen, opts ...Option) *Canvas {
	c := &Canvas{
		surface: surface.New(screen),
		aspect:  raster.DefaultAspect,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach points the canvas at screen, typically after a resize. The pixel
// grid is reallocated and starts blank.
func (c *Canvas) Attach(screen terminal.Screen) {
	c.surface.Attach(screen)
}

// Surface returns the underlying pixel surface.
func (c *Canvas) Surface() *surface.Surface {
	return c.surface
}

// Aspect returns the circle stretch in use.
func (c *Canvas) Aspect() float64 {
	return c.aspect
}

// Dimensions returns the drawable extent in pixels.
func (c *Canvas) Dimensions() (width, height int) {
	return c.surface.Dimensions()
}

// SetMode selects whether shapes light their pixels (surface.Set) or toggle
// them (surface.Erase). Drawing a shape twice in erase mode restores the
// pixels underneath.
func (c *Canvas) SetMode(m surface.Mode) {
	c.surface.SetMode(m)
}

// Mode returns the current drawing mode.
func (c *Canvas) Mode() surface.Mode {
	return c.surface.Mode()
}

// draw runs a rasterizer against the surface. In erase mode the pixels are
// gathered first so that each one is toggled exactly once, however often
// the rasterizer emitted it.
func (c *Canvas) draw(col terminal.Color, fn func(raster.PixelSink)) {
	if c.surface.Mode() == surface.Set {
		fn(c.surface)
		return
	}
	c.erase.Reset()
	fn(&c.erase)
	for _, p := range c.erase.Unique() {
		c.surface.SetQuadrant(p.X, p.Y, col, false)
	}
}

// PutPixel lights (on) or toggles (!on) one pixel. Pixels outside the
// canvas are ignored.
func (c *Canvas) PutPixel(x, y int, col terminal.Color, on bool) {
	c.surface.SetQuadrant(x, y, col, on)
}

// Line draws a line between two points, rounded to pixels.
func (c *Canvas) Line(x0, y0, x1, y1 float64, col terminal.Color) {
	c.draw(col, func(sink raster.PixelSink) {
		raster.Line(sink, raster.Round(x0), raster.Round(y0), raster.Round(x1), raster.Round(y1), col)
	})
}

// Rect draws the rectangle spanned by two corners.
func (c *Canvas) Rect(x0, y0, x1, y1 float64, col terminal.Color, fill bool) {
	c.draw(col, func(sink raster.PixelSink) {
		raster.Rect(sink, raster.Round(x0), raster.Round(y0), raster.Round(x1), raster.Round(y1), col, fill)
	})
}

// Circle draws a circle of radius r around x, y.
func (c *Canvas) Circle(x, y, r float64, col terminal.Color, fill bool) {
	cx, cy, cr := raster.Round(x), raster.Round(y), raster.Round(r)
	c.draw(col, func(sink raster.PixelSink) {
		if fill {
			raster.FillCircle(sink, cx, cy, cr, c.aspect, col)
			return
		}
		raster.Circle(sink, cx, cy, cr, c.aspect, col)
	})
}

// Arc draws the slice of the circle around x, y from angle a0 to a1, in
// degrees growing from +x towards +y.
func (c *Canvas) Arc(x, y, r, a0, a1 float64, col terminal.Color, fill bool) {
	cx, cy, cr := raster.Round(x), raster.Round(y), raster.Round(r)
	c.draw(col, func(sink raster.PixelSink) {
		if fill {
			raster.FillArc(sink, cx, cy, cr, a0, a1, c.aspect, col)
			return
		}
		raster.Arc(sink, cx, cy, cr, a0, a1, c.aspect, col)
	})
}

// Polygon draws the closed polygon through points.
func (c *Canvas) Polygon(points []raster.Point, col terminal.Color, fill bool) {
	c.draw(col, func(sink raster.PixelSink) {
		raster.Polygon(sink, points, col, fill)
	})
}

// Polyline draws the open path through points.
func (c *Canvas) Polyline(points []raster.Point, col terminal.Color) {
	c.draw(col, func(sink raster.PixelSink) {
		raster.Polyline(sink, points, col)
	})
}

// TextAt writes s starting at pixel x, y. The position is first moved to
// a cell boundary with RoundTextPosition. Text does not wrap: it is cut at
// the right edge, and nothing is drawn when the start lies outside the
// canvas. Cells covered by text lose their quadrant masks.
func (c *Canvas) TextAt(x, y float64, col terminal.Color, s string) {
	x, y = c.RoundTextPosition(x, y)
	w, h := c.Dimensions()
	if x < 0 || x >= float64(w) || y < 0 || y >= float64(h) {
		return
	}
	row, column := c.ToCell(x, y)
	_, cols := c.surface.Cells()
	s = terminal.Truncate(s, cols-column)

	screen := c.surface.Screen()
	for _, r := range s {
		rw := terminal.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if err := screen.SetCell(row, column, r, col); err != nil {
			logging.Logger().Debug("text cell dropped", "row", row, "col", column, "error", err)
		}
		for i := 0; i < rw; i++ {
			c.surface.ClearCell(row, column+i)
		}
		column += rw
	}
}

// ToCell returns the cell holding pixel x, y.
func (c *Canvas) ToCell(x, y float64) (row, col int) {
	return surface.CellOf(int(math.Floor(x)), int(math.Floor(y)))
}

// FromCell returns the top-left pixel of a cell.
func (c *Canvas) FromCell(row, col int) (x, y int) {
	return surface.PixelOf(row, col)
}

// RoundTextPosition moves a position that falls inside a cell down and to
// the right by half a cell, so text lands on the next cell boundary.
func (c *Canvas) RoundTextPosition(x, y float64) (float64, float64) {
	return c.RoundTextX(x), c.RoundTextY(y)
}

// RoundTextX is the horizontal half of RoundTextPosition.
func (c *Canvas) RoundTextX(x float64) float64 {
	_, col := c.ToCell(x, 0)
	if cx, _ := c.FromCell(0, col); float64(cx) < x {
		return x + 1
	}
	return x
}

// RoundTextY is the vertical half of RoundTextPosition.
func (c *Canvas) RoundTextY(y float64) float64 {
	row, _ := c.ToCell(0, y)
	if _, cy := c.FromCell(row, 0); float64(cy) < y {
		return y + 1
	}
	return y
}

// Clear blanks the canvas and its screen cells.
func (c *Canvas) Clear() {
	c.surface.Clear()
}

// Refresh pushes everything drawn so far to the display.
func (c *Canvas) Refresh() error {
	if n := c.surface.TakeDropped(); n > 0 {
		logging.Logger().Debug("screen writes dropped", "count", n)
	}
	return c.surface.Screen().Refresh()
}
