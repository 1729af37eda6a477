// Implements a raster backend for turtle drawings,
// by wrapping rasterx.
package turtleraster

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/mneumann/turtle"
)

var _ turtle.Drawer = (*Renderer)(nil) // assert interface conformance

// Renderer feeds turtle strokes into a rasterx dasher, mapping the
// y-up turtle plane onto the y-down pixel grid.
type Renderer struct {
	dasher *rasterx.Dasher

	scale  float64
	dx, dy float64
}

// NewRenderer returns a renderer stroking into `dasher`, scaling
// coordinates by `scale` after shifting the point (dx, dy) of the
// flipped plane onto the pixel origin.
func NewRenderer(dasher *rasterx.Dasher, scale, dx, dy float64) *Renderer {
	return &Renderer{dasher: dasher, scale: scale, dx: dx, dy: dy}
}

func (r *Renderer) device(p turtle.Position) fixed.Point26_6 {
	return fToFixed((p.X-r.dx)*r.scale, (-p.Y-r.dy)*r.scale)
}

func (r *Renderer) Start(a turtle.Position) {
	r.dasher.Start(r.device(a))
}

func (r *Renderer) Line(b turtle.Position) {
	r.dasher.Line(r.device(b))
}

func (r *Renderer) Stop() {
	r.dasher.Stop(false)
}

// Raster renders the drawing into a new RGBA image, `scale` pixels
// per turtle unit, with the shared 10% viewport padding. The
// strokes are antialiased black on a transparent background.
func Raster(d turtle.Drawing, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	bounds, _ := d.Bounds()
	vp := turtle.FitViewport(flip(bounds))

	w := int(math.Ceil(vp.W * scale))
	h := int(math.Ceil(vp.H * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	scanner.SetColor(color.RGBA{A: 0xff})
	dasher := rasterx.NewDasher(w, h, scanner)

	// Keep the hairline at least one device pixel wide.
	width := math.Max(vp.StrokeWidth()*scale, 1)
	dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round,
		nil, 0)

	d.Draw(NewRenderer(dasher, scale, vp.X, vp.Y))
	dasher.Draw()
	return img
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// flip mirrors turtle bounds (y up) into raster bounds (y down).
func flip(b turtle.Bounds) turtle.Bounds {
	return turtle.Bounds{
		Min: turtle.Position{X: b.Min.X, Y: -b.Max.Y},
		Max: turtle.Position{X: b.Max.X, Y: -b.Min.Y},
	}
}
