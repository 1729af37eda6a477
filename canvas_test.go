package turtle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// pathLength sums the euclidean length of every stroked segment.
func pathLength(d Drawing) float64 {
	var total float64
	for _, p := range d {
		for i := 1; i < len(p); i++ {
			total += math.Hypot(p[i].X-p[i-1].X, p[i].Y-p[i-1].Y)
		}
	}
	return total
}

func TestNewCanvasStartState(t *testing.T) {
	c := NewCanvas()
	if c.Position() != Origin() {
		t.Errorf("start position = %v", c.Position())
	}
	if c.Heading() != 0 {
		t.Errorf("start heading = %v", c.Heading())
	}
	if !c.IsPenDown() || c.IsPenUp() {
		t.Error("pen should start down")
	}
}

func TestForwardConvention(t *testing.T) {
	// Heading 0° walks along +x, 90° (a left turn) along +y.
	c := NewCanvas()
	c.Forward(10)
	if got := c.Position(); !near(got.X, 10) || !near(got.Y, 0) {
		t.Errorf("after forward at 0°: %v", got)
	}

	c = NewCanvas()
	c.Left(90)
	c.Forward(10)
	if got := c.Position(); !near(got.X, 0) || !near(got.Y, 10) {
		t.Errorf("after forward at 90°: %v", got)
	}
}

func TestDrawnLengthMatchesDistances(t *testing.T) {
	c := NewCanvas()
	distances := []Distance{10, 25.5, -5, 3, -0.75, 100}
	var want float64
	for _, d := range distances {
		c.Rotate(33.3)
		c.Forward(d)
		want += math.Abs(float64(d))
	}
	if got := pathLength(c.Drawing()); !near(got, want) {
		t.Errorf("drawn length = %v, want %v", got, want)
	}
}

func TestBackwardIsNegatedForward(t *testing.T) {
	c := NewCanvas()
	c.Rotate(123)
	c.Backward(40)

	want := NewCanvas()
	want.Rotate(123)
	want.Forward(-40)

	if c.Position() != want.Position() {
		t.Errorf("backward(40) at %v, forward(-40) at %v", c.Position(), want.Position())
	}
}

func TestLeftThenRightRestoresHeading(t *testing.T) {
	for _, a := range []Degree{0, 15, 90, 123.456, 1e6} {
		c := NewCanvas()
		c.Rotate(42)
		before := c.Heading()
		c.Left(a)
		c.Right(a)
		if c.Heading() != before {
			t.Errorf("left(%v) then right(%v): heading %v, want %v", a, a, c.Heading(), before)
		}
	}
}

func TestHeadingIsNotNormalized(t *testing.T) {
	c := NewCanvas()
	for i := 0; i < 10; i++ {
		c.Rotate(360)
	}
	if c.Heading() != 3600 {
		t.Errorf("heading = %v, want 3600", c.Heading())
	}
}

func TestMoveForwardNeverDraws(t *testing.T) {
	c := NewCanvas()
	if c.IsPenUp() {
		t.Fatal("pen should be down")
	}
	c.MoveForward(50)
	want := Drawing{{{50, 0}}}
	if diff := cmp.Diff(want, c.Drawing()); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestGotoNeverDraws(t *testing.T) {
	c := NewCanvas()
	c.Forward(10)
	c.Goto(Position{30, 40})
	want := Drawing{
		{{0, 0}, {10, 0}},
		{{30, 40}},
	}
	if diff := cmp.Diff(want, c.Drawing()); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestPenUpRelocationOverwritesAnchor(t *testing.T) {
	c := NewCanvas()
	c.PenUp()
	c.Goto(Position{1, 2})
	c.Goto(Position{3, 4})

	d := c.Drawing()
	last := d[len(d)-1]
	if len(last) != 1 || last[0] != (Position{3, 4}) {
		t.Errorf("anchor path = %v, want single point (3, 4)", last)
	}
	if len(d) != 1 {
		t.Errorf("got %d paths, want 1", len(d))
	}
}

func TestDrawnPathIsSealed(t *testing.T) {
	c := NewCanvas()
	c.PenDown()
	c.Forward(10)
	c.PenUp()
	c.Goto(Position{5, 5})

	want := Drawing{
		{{0, 0}, {10, 0}},
		{{5, 5}},
	}
	if diff := cmp.Diff(want, c.Drawing()); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestPenDownReanchors(t *testing.T) {
	// Pen-up moves shift the anchor; PenDown must open the next
	// stroke exactly at the current position.
	c := NewCanvas()
	c.Forward(10)
	c.PenUp()
	c.Forward(10)
	c.PenDown()
	c.Forward(10)

	want := Drawing{
		{{0, 0}, {10, 0}},
		{{20, 0}, {30, 0}},
	}
	if diff := cmp.Diff(want, c.Drawing()); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestHome(t *testing.T) {
	c := NewCanvas()
	c.Rotate(45)
	c.Forward(10)
	c.Home()
	if c.Position() != Origin() {
		t.Errorf("position after home = %v", c.Position())
	}
	if c.Heading() != 45 {
		t.Errorf("home must not touch the heading, got %v", c.Heading())
	}
}

func TestPushPopRestoresState(t *testing.T) {
	c := NewCanvas()
	c.Rotate(30)
	c.Forward(12)
	c.PenUp()
	before := *c.state()

	c.Push()
	c.PenDown()
	c.Rotate(90)
	c.Forward(100)
	if err := c.Pop(); err != nil {
		t.Fatalf("pop: %v", err)
	}

	if diff := cmp.Diff(before, *c.state()); diff != "" {
		t.Errorf("state not restored (-want +got):\n%s", diff)
	}
}

func TestPopReanchors(t *testing.T) {
	c := NewCanvas()
	c.Forward(10)
	c.Push()
	c.Rotate(90)
	c.Forward(10)
	if err := c.Pop(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	c.Forward(10)

	// The stroke drawn inside push/pop is sealed; drawing resumes
	// in a fresh path at the restored position.
	want := Drawing{
		{{0, 0}, {10, 0}, {10, 10}},
		{{10, 0}, {20, 0}},
	}
	got := c.Drawing()
	if diff := cmp.Diff(want, got, cmp.Comparer(nearPosition)); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func nearPosition(a, b Position) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestPopUnderflow(t *testing.T) {
	c := NewCanvas()
	if err := c.Pop(); err != ErrStackUnderflow {
		t.Fatalf("pop on base state: %v, want ErrStackUnderflow", err)
	}

	c.Push()
	if err := c.Pop(); err != nil {
		t.Fatalf("pop after push: %v", err)
	}
	if err := c.Pop(); err != ErrStackUnderflow {
		t.Fatalf("second pop: %v, want ErrStackUnderflow", err)
	}
	// The base state must have survived intact.
	if c.Position() != Origin() || c.Heading() != 0 {
		t.Errorf("base state corrupted: %v at %v", c.Position(), c.Heading())
	}
}

func TestDrawingIsASnapshot(t *testing.T) {
	c := NewCanvas()
	c.Forward(10)
	snap := c.Drawing()
	c.Forward(10)
	c.PenUp()
	c.Goto(Position{-1, -1})

	want := Drawing{{{0, 0}, {10, 0}}}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Errorf("snapshot changed (-want +got):\n%s", diff)
	}
}

func TestNaNPropagates(t *testing.T) {
	// Invalid input is not validated: it flows into the geometry
	// without panicking.
	c := NewCanvas()
	c.Forward(Distance(math.NaN()))
	if !math.IsNaN(c.Position().X) {
		t.Errorf("position = %v, want NaN", c.Position())
	}
}
