// Implements a PDF backend for turtle drawings,
// by wrapping github.com/jung-kurt/gofpdf.
package turtlepdf

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/mneumann/turtle"
)

var _ turtle.Drawer = Renderer{} // assert interface conformance

// Renderer strokes turtle drawings into a gofpdf document. The
// turtle plane has its y axis pointing up while gofpdf's points
// down, so y coordinates are negated; any further placement is left
// to the page transform of the target document.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer returns a renderer which will write to the given
// `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

func (r Renderer) Start(a turtle.Position) {
	r.pdf.MoveTo(a.X, -a.Y)
}

func (r Renderer) Line(b turtle.Position) {
	r.pdf.LineTo(b.X, -b.Y)
}

func (r Renderer) Stop() {
	r.pdf.DrawPath("D")
}

// Encode writes the drawing to `w` as a single-page PDF document
// sized to the padded extent of the drawing, stroked in black with
// the shared hairline width.
func Encode(w io.Writer, d turtle.Drawing) error {
	bounds, _ := d.Bounds()
	vp := turtle.FitViewport(flip(bounds))

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: vp.W, Ht: vp.H},
	})
	pdf.AddPage()
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(vp.StrokeWidth())

	// Shift the padded viewport corner onto the page origin.
	pdf.TransformBegin()
	pdf.TransformTranslate(-vp.X, -vp.Y)
	d.Draw(NewRenderer(pdf))
	pdf.TransformEnd()

	return pdf.Output(w)
}

// flip mirrors turtle bounds (y up) into page bounds (y down).
func flip(b turtle.Bounds) turtle.Bounds {
	return turtle.Bounds{
		Min: turtle.Position{X: b.Min.X, Y: -b.Max.Y},
		Max: turtle.Position{X: b.Max.X, Y: -b.Min.Y},
	}
}
