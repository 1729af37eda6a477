package turtle

import "math"

// Recorder is a simpler conforming Turtle: instead of growing
// polylines it records each pen-down move as an independent line
// segment. Useful when the segmentation policy of Canvas is not
// wanted, at the cost of one stroke primitive per segment in the
// output.
type Recorder struct {
	states []State
	lines  [][2]Position
}

var _ Turtle = (*Recorder)(nil) // assert interface conformance

// NewRecorder returns a recorder with the turtle at the origin,
// heading along the positive x axis, pen down.
func NewRecorder() *Recorder {
	return &Recorder{states: []State{startState()}}
}

func (r *Recorder) state() *State {
	return &r.states[len(r.states)-1]
}

func (r *Recorder) displacement(distance Distance) (dx, dy float64) {
	sin, cos := math.Sincos(float64(r.state().Heading.Radians()))
	return cos * float64(distance), sin * float64(distance)
}

// Forward moves the turtle by `distance` along its heading,
// recording a line segment if the pen is down.
func (r *Recorder) Forward(distance Distance) {
	dx, dy := r.displacement(distance)
	src := r.state().Pos
	dst := src.Add(Position{dx, dy})
	if r.state().PenDown {
		r.lines = append(r.lines, [2]Position{src, dst})
	}
	r.state().Pos = dst
}

// Backward moves the turtle backward by `distance`.
func (r *Recorder) Backward(distance Distance) {
	r.Forward(-distance)
}

// MoveForward moves the turtle by `distance` without recording a
// segment, regardless of the pen state.
func (r *Recorder) MoveForward(distance Distance) {
	dx, dy := r.displacement(distance)
	r.state().Pos = r.state().Pos.Add(Position{dx, dy})
}

// Rotate turns the turtle by `angle`; positive is a left turn.
func (r *Recorder) Rotate(angle Degree) {
	r.state().Heading += angle
}

// Left turns the turtle left by `angle`.
func (r *Recorder) Left(angle Degree) {
	r.Rotate(angle)
}

// Right turns the turtle right by `angle`.
func (r *Recorder) Right(angle Degree) {
	r.Rotate(-angle)
}

// PenDown puts the pen down.
func (r *Recorder) PenDown() {
	r.state().PenDown = true
}

// PenUp lifts the pen.
func (r *Recorder) PenUp() {
	r.state().PenDown = false
}

// Position returns the current turtle position.
func (r *Recorder) Position() Position { return r.state().Pos }

// Heading returns the current turtle heading.
func (r *Recorder) Heading() Degree { return r.state().Heading }

// IsPenDown reports whether the pen is down.
func (r *Recorder) IsPenDown() bool { return r.state().PenDown }

// IsPenUp reports whether the pen is up.
func (r *Recorder) IsPenUp() bool { return !r.state().PenDown }

// Goto teleports the turtle to `position` without recording.
func (r *Recorder) Goto(position Position) {
	r.state().Pos = position
}

// Home teleports the turtle back to the origin.
func (r *Recorder) Home() {
	r.Goto(Origin())
}

// Push saves a copy of the current state on the stack.
func (r *Recorder) Push() {
	r.states = append(r.states, *r.state())
}

// Pop discards the current state, restoring the previously pushed
// one. The base state is never popped: ErrStackUnderflow is
// returned instead.
func (r *Recorder) Pop() error {
	if len(r.states) == 1 {
		return ErrStackUnderflow
	}
	r.states = r.states[:len(r.states)-1]
	return nil
}

// Drawing returns the recorded segments as two-point paths, in draw
// order.
func (r *Recorder) Drawing() Drawing {
	d := make(Drawing, len(r.lines))
	for i, l := range r.lines {
		d[i] = Path{l[0], l[1]}
	}
	return d
}
