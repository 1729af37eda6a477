// Implements an SVG text backend for turtle drawings:
// every polyline becomes one <path> element.
package turtlesvg

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mneumann/turtle"
)

var _ turtle.Drawer = (*pather)(nil) // assert interface conformance

// Encode writes the drawing to `w` as a complete, self-contained
// SVG document. The turtle plane has its y axis pointing up while
// SVG's points down, so y coordinates are negated on output.
// No partial-document recovery is attempted on a write failure: the
// first error is returned and the sink holds whatever was flushed.
func Encode(w io.Writer, d turtle.Drawing) error {
	bounds, _ := d.Bounds()
	vp := turtle.FitViewport(flip(bounds))

	pr := &printer{w: w}
	pr.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	pr.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" baseProfile=\"full\" viewBox=\"%s %s %s %s\">\n",
		ftoa(vp.X), ftoa(vp.Y), ftoa(vp.W), ftoa(vp.H))
	pr.printf("<g stroke=\"black\" stroke-width=\"%s\" fill=\"none\">\n",
		ftoa(vp.StrokeWidth()))
	d.Draw(&pather{pr: pr})
	pr.printf("</g>\n")
	pr.printf("</svg>\n")
	return pr.err
}

// flip mirrors turtle bounds (y up) into SVG bounds (y down).
func flip(b turtle.Bounds) turtle.Bounds {
	return turtle.Bounds{
		Min: turtle.Position{X: b.Min.X, Y: flipY(b.Max.Y)},
		Max: turtle.Position{X: b.Max.X, Y: flipY(b.Min.Y)},
	}
}

// flipY negates y, avoiding the "-0" rendering of a negated zero.
func flipY(y float64) float64 {
	if y == 0 {
		return 0
	}
	return -y
}

// Coordinates are rounded to three decimal places, plenty for
// visual fidelity at any reasonable viewport size.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}

// printer wraps a writer with a sticky error, so the emitters can
// chain writes and report the first failure once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

// pather emits one <path> element per stroke.
type pather struct {
	pr *printer
}

func (pa *pather) Start(a turtle.Position) {
	pa.pr.printf("<path d=\"M %s %s", ftoa(a.X), ftoa(flipY(a.Y)))
}

func (pa *pather) Line(b turtle.Position) {
	pa.pr.printf(" L %s %s", ftoa(b.X), ftoa(flipY(b.Y)))
}

func (pa *pather) Stop() {
	pa.pr.printf("\" />\n")
}
