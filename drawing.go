package turtle

import "math"

// This file defines the serialization-facing side of the engine:
// the recorded geometry, its bounds, and the Drawer interface
// implemented by the output backends.

// Path is one polyline, destined for a single stroke primitive in
// the output. A path of exactly one point is a pen-up relocation
// marker and carries no visible stroke.
type Path []Position

// Drawing is an immutable snapshot of the paths accumulated by a
// turtle, in draw order.
type Drawing []Path

// Drawer receives the stroke commands of a drawing.
// It needs no knowledge of the turtle machinery.
type Drawer interface {
	// Start begins a new stroke at the given point.
	Start(a Position)

	// Line extends the current stroke to `b`.
	Line(b Position)

	// Stop finishes the current stroke.
	Stop()
}

// Draw replays the drawing into the driver `dr`, one stroke per
// path. Single-point paths are skipped: they mark pen-up
// relocations and have nothing to stroke.
func (d Drawing) Draw(dr Drawer) {
	for _, p := range d {
		if len(p) < 2 {
			continue
		}
		dr.Start(p[0])
		for _, pos := range p[1:] {
			dr.Line(pos)
		}
		dr.Stop()
	}
}

// Bounds is the minimal axis-aligned rectangle containing a set of
// positions.
type Bounds struct {
	Min, Max Position
}

// Grow extends the bounds to contain `p`.
func (b *Bounds) Grow(p Position) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Bounds returns the extent of every recorded point, including
// pen-up relocation markers. ok is false for a drawing with no
// points at all, in which case the zero Bounds is returned.
func (d Drawing) Bounds() (bounds Bounds, ok bool) {
	bounds = Bounds{
		Min: Position{math.Inf(1), math.Inf(1)},
		Max: Position{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range d {
		for _, pos := range p {
			bounds.Grow(pos)
			ok = true
		}
	}
	if !ok {
		bounds = Bounds{}
	}
	return bounds, ok
}

const (
	// minExtent is the minimum canvas width and height, so that even
	// an empty or single-point drawing gets a sane viewport.
	minExtent = 100

	// viewportScale is the total padding factor: 10% border on all
	// four sides.
	viewportScale = 1.2
)

// Viewport is the padded view rectangle derived from a drawing
// extent, shared by all backends.
type Viewport struct {
	X, Y, W, H float64
}

// StrokeWidth returns a resolution-independent hairline width
// proportional to the viewport extent.
func (v Viewport) StrokeWidth() float64 {
	return math.Max(v.W, v.H) / 1000
}

// FitViewport pads the given bounds with a 10% border on each side,
// enforcing the minimum canvas extent. Backends call it after
// applying their own axis conventions to the bounds.
func FitViewport(b Bounds) Viewport {
	w := math.Max(b.Width(), minExtent)
	h := math.Max(b.Height(), minExtent)
	return Viewport{
		X: b.Min.X - w/10,
		Y: b.Min.Y - h/10,
		W: w * viewportScale,
		H: h * viewportScale,
	}
}
