// Provides a classic 2D turtle-graphics engine: a drawing cursor
// driven by relative motion commands, accumulating polyline paths
// which can then be consumed by serialization backends.
// See for example turtle/turtlesvg or turtle/turtleeps .
package turtle

import "errors"

// ErrStackUnderflow is returned by Pop when only the base state
// remains on the stack.
var ErrStackUnderflow = errors.New("turtle: state stack underflow")

// Turtle is the command surface shared by the conforming
// implementations (the path-accumulating Canvas and the simpler
// line-segment Recorder). Callers should depend on it rather than
// on a concrete type.
//
// All motion commands accept any finite (or non-finite) float input
// and cannot fail; NaN simply propagates into the recorded geometry.
type Turtle interface {
	// Forward moves the turtle forward by `distance`,
	// drawing a line if the pen is down.
	Forward(distance Distance)

	// Backward moves the turtle backward by `distance`.
	Backward(distance Distance)

	// MoveForward moves the turtle forward by `distance`
	// without drawing, regardless of the pen state.
	MoveForward(distance Distance)

	// Rotate turns the turtle in place by `angle`.
	// A positive angle is a left turn.
	Rotate(angle Degree)

	// Left turns the turtle left by `angle`.
	Left(angle Degree)

	// Right turns the turtle right by `angle`.
	Right(angle Degree)

	// PenDown puts the pen down: subsequent motion draws.
	PenDown()

	// PenUp lifts the pen: subsequent motion only relocates.
	PenUp()

	// IsPenDown reports whether the pen is down.
	IsPenDown() bool

	// IsPenUp reports whether the pen is up.
	IsPenUp() bool

	// Goto teleports the turtle to the absolute `position`,
	// never drawing a line.
	Goto(position Position)

	// Home teleports the turtle back to the origin.
	Home()

	// Push saves the current turtle state on the stack.
	Push()

	// Pop restores the previously saved turtle state. It returns
	// ErrStackUnderflow if no state was pushed.
	Pop() error

	// Drawing returns a snapshot of everything drawn so far.
	Drawing() Drawing
}

// State is the full cursor state: where the turtle is, where it
// points, and whether it draws. A copy is saved by Push and restored
// by Pop.
type State struct {
	Pos     Position
	Heading Degree
	PenDown bool
}

// startState is the fixed initial pose: origin, heading 0° (along
// the positive x axis), pen down.
func startState() State {
	return State{Pos: Origin(), Heading: 0, PenDown: true}
}
