// Package scene reads drawing documents written in YAML and draws them onto
// a canvas.
//
// A document lists shapes in drawing order:
//
//	title: house
//	width: 40          # pixels; 0 sizes the scene to its shapes
//	height: 24
//	shapes:
//	  - kind: polygon
//	    color: red
//	    fill: true
//	    points: [[4, 12], [20, 2], [36, 12]]
//	  - kind: text
//	    x: 6
//	    y: 20
//	    text: home
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"chardraw/internal/canvas"
	"chardraw/internal/logging"
	"chardraw/internal/raster"
	"chardraw/internal/surface"
	"chardraw/internal/terminal"
)

// Shape kinds.
const (
	KindPixel    = "pixel"
	KindLine     = "line"
	KindRect     = "rect"
	KindCircle   = "circle"
	KindArc      = "arc"
	KindPolygon  = "polygon"
	KindPolyline = "polyline"
	KindText     = "text"
)

var (
	// ErrUnknownShape is returned for a shape kind the scene cannot draw.
	ErrUnknownShape = errors.New("unknown shape kind")
	// ErrInvalidShape is returned for a shape missing required fields.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrTooLarge is returned for a scene or coordinate beyond the drawing limits.
	ErrTooLarge = errors.New("scene too large")
)

const (
	// MaxSize is the largest scene width or height, in pixels.
	MaxSize = 8192
	// MaxCoordinate bounds every shape coordinate and radius.
	MaxCoordinate = 1 << 20
)

// Scene is a drawing document.
type Scene struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Shapes []Shape `yaml:"shapes"`
}

// Shape is one drawing instruction. Which fields apply depends on Kind.
type Shape struct {
	ID     string       `yaml:"id"`
	Kind   string       `yaml:"kind"`
	Color  string       `yaml:"color"`
	Fill   bool         `yaml:"fill"`
	Erase  bool         `yaml:"erase"`
	Points [][2]float64 `yaml:"points"`
	X      float64      `yaml:"x"`
	Y      float64      `yaml:"y"`
	R      float64      `yaml:"r"`
	A0     float64      `yaml:"a0"`
	A1     float64      `yaml:"a1"`
	Text   string       `yaml:"text"`
}

// Parse decodes and validates a scene. Shapes without an ID get a random one.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	for i := range s.Shapes {
		if s.Shapes[i].ID == "" {
			s.Shapes[i].ID = uuid.NewString()
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return Parse(data)
}

// Validate reports the first shape that cannot be drawn.
func (s *Scene) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("scene size %dx%d must not be negative", s.Width, s.Height)
	}
	if s.Width > MaxSize || s.Height > MaxSize {
		return fmt.Errorf("%w: size %dx%d exceeds %d", ErrTooLarge, s.Width, s.Height, MaxSize)
	}
	for i := range s.Shapes {
		if err := s.Shapes[i].validate(); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, s.Shapes[i].ID, err)
		}
	}
	return nil
}

func (sh *Shape) validate() error {
	if _, err := terminal.ParseColor(sh.Color); err != nil {
		return err
	}
	switch sh.Kind {
	case KindPixel, KindCircle, KindArc:
	case KindText:
		if sh.Text == "" {
			return fmt.Errorf("%w: text needs text", ErrInvalidShape)
		}
	case KindLine, KindRect:
		if len(sh.Points) != 2 {
			return fmt.Errorf("%w: %s needs 2 points, got %d", ErrInvalidShape, sh.Kind, len(sh.Points))
		}
	case KindPolygon, KindPolyline:
		if len(sh.Points) == 0 {
			return fmt.Errorf("%w: %s needs points", ErrInvalidShape, sh.Kind)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, sh.Kind)
	}
	if sh.R < 0 {
		return fmt.Errorf("%w: negative radius", ErrInvalidShape)
	}
	for _, v := range []float64{sh.X, sh.Y, sh.R} {
		if err := checkCoordinate(v); err != nil {
			return err
		}
	}
	for _, p := range sh.Points {
		if err := checkCoordinate(p[0]); err != nil {
			return err
		}
		if err := checkCoordinate(p[1]); err != nil {
			return err
		}
	}
	if math.IsNaN(sh.A0) || math.IsInf(sh.A0, 0) || math.IsNaN(sh.A1) || math.IsInf(sh.A1, 0) {
		return fmt.Errorf("%w: arc angles must be finite", ErrInvalidShape)
	}
	return nil
}

func checkCoordinate(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("%w: coordinate is not a number", ErrInvalidShape)
	}
	if math.Abs(v) > MaxCoordinate {
		return fmt.Errorf("%w: coordinate %g exceeds %d", ErrTooLarge, v, MaxCoordinate)
	}
	return nil
}

func (sh *Shape) points() []raster.Point {
	ps := make([]raster.Point, len(sh.Points))
	for i, p := range sh.Points {
		ps[i] = raster.Pt(p[0], p[1])
	}
	return ps
}

// Bounds returns the pixel box the shape covers when circles are stretched
// by aspect.
func (sh *Shape) Bounds(aspect float64) raster.Bbox {
	switch sh.Kind {
	case KindCircle, KindArc:
		rx := sh.R * aspect
		return raster.NewBbox(sh.X-rx, sh.Y-sh.R, sh.X+rx, sh.Y+sh.R)
	case KindText:
		w := float64(2 * terminal.StringWidth(sh.Text))
		return raster.NewBbox(sh.X, sh.Y, sh.X+w, sh.Y+2)
	case KindPixel:
		return raster.NewBbox(sh.X, sh.Y, sh.X, sh.Y)
	}
	return raster.Bounds(sh.points())
}

// Bounds returns the union of all shape bounds.
func (s *Scene) Bounds(aspect float64) raster.Bbox {
	if len(s.Shapes) == 0 {
		return raster.Bbox{}
	}
	b := s.Shapes[0].Bounds(aspect)
	for i := range s.Shapes[1:] {
		b = b.Union(s.Shapes[i+1].Bounds(aspect))
	}
	return b
}

// CellSize returns the screen size the scene needs. A zero width or height
// is taken from the shapes' bounds. Sizes beyond MaxSize pixels fail with
// ErrTooLarge.
func (s *Scene) CellSize(aspect float64) (rows, cols int, err error) {
	w, h := float64(s.Width), float64(s.Height)
	if w == 0 || h == 0 {
		b := s.Bounds(aspect)
		if w == 0 {
			w = math.Ceil(b.MaxX) + 1
		}
		if h == 0 {
			h = math.Ceil(b.MaxY) + 1
		}
	}
	// NaN fails both comparisons.
	if !(w <= MaxSize && h <= MaxSize) {
		return 0, 0, fmt.Errorf("%w: %gx%g pixels exceeds %d", ErrTooLarge, w, h, MaxSize)
	}
	return (max(int(h), 0) + 1) / 2, (max(int(w), 0) + 1) / 2, nil
}

// Draw draws every shape onto c in order. The canvas mode is restored
// afterwards.
func (s *Scene) Draw(c *canvas.Canvas) error {
	mode := c.Mode()
	defer c.SetMode(mode)

	for i := range s.Shapes {
		sh := &s.Shapes[i]
		col, err := terminal.ParseColor(sh.Color)
		if err != nil {
			return fmt.Errorf("shape %s: %w", sh.ID, err)
		}
		c.SetMode(surface.Set)
		if sh.Erase {
			c.SetMode(surface.Erase)
		}

		switch sh.Kind {
		case KindPixel:
			c.PutPixel(raster.Round(sh.X), raster.Round(sh.Y), col, !sh.Erase)
		case KindLine:
			c.Line(sh.Points[0][0], sh.Points[0][1], sh.Points[1][0], sh.Points[1][1], col)
		case KindRect:
			c.Rect(sh.Points[0][0], sh.Points[0][1], sh.Points[1][0], sh.Points[1][1], col, sh.Fill)
		case KindCircle:
			c.Circle(sh.X, sh.Y, sh.R, col, sh.Fill)
		case KindArc:
			c.Arc(sh.X, sh.Y, sh.R, sh.A0, sh.A1, col, sh.Fill)
		case KindPolygon:
			c.Polygon(sh.points(), col, sh.Fill)
		case KindPolyline:
			c.Polyline(sh.points(), col)
		case KindText:
			c.TextAt(sh.X, sh.Y, col, sh.Text)
		default:
			return fmt.Errorf("shape %s: %w: %q", sh.ID, ErrUnknownShape, sh.Kind)
		}
		logging.Logger().Debug("shape drawn", "id", sh.ID, "kind", sh.Kind)
	}
	return nil
}

// Render draws the scene onto a fresh buffer sized by CellSize.
func (s *Scene) Render(opts ...canvas.Option) (*terminal.Buffer, error) {
	buf := terminal.NewBuffer(0, 0)
	c := canvas.New(buf, opts...)
	rows, cols, err := s.CellSize(c.Aspect())
	if err != nil {
		return nil, err
	}
	buf.Resize(rows, cols)
	c.Attach(buf)
	if err := s.Draw(c); err != nil {
		return nil, err
	}
	return buf, nil
}
