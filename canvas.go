package turtle

import "math"

// Canvas is the path-accumulating turtle engine. It keeps the stack
// of saved states and grows one polyline per continuous pen-down
// stroke. A Canvas is not safe for concurrent use; callers needing
// concurrency must synchronize externally or use one Canvas per
// worker.
type Canvas struct {
	states []State
	paths  []Path
}

var _ Turtle = (*Canvas)(nil) // assert interface conformance

// NewCanvas returns a canvas with the turtle at the origin, heading
// along the positive x axis, pen down.
func NewCanvas() *Canvas {
	c := &Canvas{states: []State{startState()}}
	// Seed the first anchor so a draw always has a current path.
	c.moveTo(Origin())
	return c
}

func (c *Canvas) state() *State {
	return &c.states[len(c.states)-1]
}

// displacement converts a travel distance along the current heading
// into cartesian deltas (heading 0° is +x, 90° is +y).
func (c *Canvas) displacement(distance Distance) (dx, dy float64) {
	sin, cos := math.Sincos(float64(c.state().Heading.Radians()))
	return cos * float64(distance), sin * float64(distance)
}

// lineTo extends the current path with a drawn segment ending at dst.
// A current path always exists: NewCanvas seeds one and moveTo never
// removes the last.
func (c *Canvas) lineTo(dst Position) {
	last := len(c.paths) - 1
	c.paths[last] = append(c.paths[last], dst)
}

// moveTo relocates the drawing anchor to dst without drawing.
// If the last path has already been extended past its anchor it is
// sealed and a fresh one-point path is started; otherwise the still
// uncommitted anchor is overwritten in place.
func (c *Canvas) moveTo(dst Position) {
	if len(c.paths) == 0 {
		c.paths = append(c.paths, Path{dst})
		return
	}
	last := c.paths[len(c.paths)-1]
	if len(last) > 1 {
		c.paths = append(c.paths, Path{dst})
	} else {
		last[0] = dst
	}
}

// Forward moves the turtle by `distance` along its heading, drawing
// a segment if the pen is down and relocating the anchor otherwise.
func (c *Canvas) Forward(distance Distance) {
	dx, dy := c.displacement(distance)
	dst := c.state().Pos.Add(Position{dx, dy})
	if c.state().PenDown {
		c.lineTo(dst)
	} else {
		c.moveTo(dst)
	}
	c.state().Pos = dst
}

// Backward moves the turtle backward by `distance`.
func (c *Canvas) Backward(distance Distance) {
	c.Forward(-distance)
}

// MoveForward moves the turtle by `distance` along its heading
// without drawing, regardless of the pen state.
func (c *Canvas) MoveForward(distance Distance) {
	dx, dy := c.displacement(distance)
	dst := c.state().Pos.Add(Position{dx, dy})
	c.moveTo(dst)
	c.state().Pos = dst
}

// Rotate turns the turtle by `angle`; positive is a left turn.
func (c *Canvas) Rotate(angle Degree) {
	c.state().Heading += angle
}

// Left turns the turtle left by `angle`.
func (c *Canvas) Left(angle Degree) {
	c.Rotate(angle)
}

// Right turns the turtle right by `angle`.
func (c *Canvas) Right(angle Degree) {
	c.Rotate(-angle)
}

// PenDown puts the pen down and re-anchors the current path at the
// turtle position, so the next drawn segment starts exactly here
// even after pen-up moves.
func (c *Canvas) PenDown() {
	c.moveTo(c.state().Pos)
	c.state().PenDown = true
}

// PenUp lifts the pen.
func (c *Canvas) PenUp() {
	c.state().PenDown = false
}

// Position returns the current turtle position.
func (c *Canvas) Position() Position { return c.state().Pos }

// Heading returns the current turtle heading.
func (c *Canvas) Heading() Degree { return c.state().Heading }

// IsPenDown reports whether the pen is down.
func (c *Canvas) IsPenDown() bool { return c.state().PenDown }

// IsPenUp reports whether the pen is up.
func (c *Canvas) IsPenUp() bool { return !c.state().PenDown }

// Goto teleports the turtle to `position`. It never draws, whatever
// the pen state: the anchor is relocated instead.
func (c *Canvas) Goto(position Position) {
	c.state().Pos = position
	c.moveTo(position)
}

// Home teleports the turtle back to the origin.
func (c *Canvas) Home() {
	c.Goto(Origin())
}

// Push saves a copy of the current state on the stack.
func (c *Canvas) Push() {
	c.states = append(c.states, *c.state())
}

// Pop discards the current state, restoring the previously pushed
// one, and relocates the anchor to the restored position so that
// subsequent drawing does not stroke through the jump. The base
// state is never popped: ErrStackUnderflow is returned instead.
func (c *Canvas) Pop() error {
	if len(c.states) == 1 {
		return ErrStackUnderflow
	}
	c.states = c.states[:len(c.states)-1]
	c.moveTo(c.state().Pos)
	return nil
}

// Drawing returns a deep copy of the accumulated paths, in draw
// order. Later commands do not affect the returned snapshot.
func (c *Canvas) Drawing() Drawing {
	d := make(Drawing, len(c.paths))
	for i, p := range c.paths {
		d[i] = append(Path(nil), p...)
	}
	return d
}
