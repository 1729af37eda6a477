// Implements an Encapsulated PostScript backend for turtle
// drawings: every polyline becomes one newpath/moveto/lineto/stroke
// sequence.
package turtleeps

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/mneumann/turtle"
)

var _ turtle.Drawer = (*pather)(nil) // assert interface conformance

// Encode writes the drawing to `w` as a complete EPS document.
// PostScript shares the turtle plane's bottom-up y axis, so
// coordinates are emitted unchanged.
// No partial-document recovery is attempted on a write failure: the
// first error is returned and the sink holds whatever was flushed.
func Encode(w io.Writer, d turtle.Drawing) error {
	bounds, _ := d.Bounds()
	vp := turtle.FitViewport(bounds)

	pr := &printer{w: w}
	pr.printf("%%!PS-Adobe-3.0 EPSF-3.0\n")
	// The DSC wants integer corners.
	pr.printf("%%%%BoundingBox: %d %d %d %d\n",
		int(math.Floor(vp.X)), int(math.Floor(vp.Y)),
		int(math.Ceil(vp.X+vp.W)), int(math.Ceil(vp.Y+vp.H)))
	pr.printf("%%%%LanguageLevel: 2\n")
	pr.printf("%%%%Pages: 1\n")
	pr.printf("%%%%EndComments\n")
	pr.printf("%s setlinewidth\n", ftoa(vp.StrokeWidth()))
	d.Draw(&pather{pr: pr})
	pr.printf("%%%%EOF\n")
	return pr.err
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

// pather emits one stroked PostScript path per stroke.
type pather struct {
	pr *printer
}

func (pa *pather) Start(a turtle.Position) {
	pa.pr.printf("newpath\n")
	pa.pr.printf("%s %s moveto\n", ftoa(a.X), ftoa(a.Y))
}

func (pa *pather) Line(b turtle.Position) {
	pa.pr.printf("%s %s lineto\n", ftoa(b.X), ftoa(b.Y))
}

func (pa *pather) Stop() {
	pa.pr.printf("stroke\n")
}
