package turtle

import "math"

// This file defines the basic geometric value types shared by the
// engine and the serialization backends.

// Position is a point in the turtle plane (y axis pointing up).
// It is a plain value, copied freely.
type Position struct {
	X, Y float64
}

// Origin returns the position (0, 0), the start pose of every turtle.
func Origin() Position { return Position{} }

// Add returns the componentwise sum of p and q.
func (p Position) Add(q Position) Position {
	return Position{p.X + q.X, p.Y + q.Y}
}

// Min returns the componentwise minimum of p and q.
func (p Position) Min(q Position) Position {
	return Position{math.Min(p.X, q.X), math.Min(p.Y, q.Y)}
}

// Max returns the componentwise maximum of p and q.
func (p Position) Max(q Position) Position {
	return Position{math.Max(p.X, q.X), math.Max(p.Y, q.Y)}
}

// Degree is an angle expressed in degrees. Headings are held in
// degrees and are purely additive: no normalization to [0, 360) is
// performed, so a heading may grow unbounded across many rotations.
type Degree float64

// Radian is an angle expressed in radians, used for trigonometry.
type Radian float64

// Radians converts the angle to radians.
func (d Degree) Radians() Radian {
	return Radian(float64(d) * math.Pi / 180)
}

// Degrees converts the angle to degrees.
func (r Radian) Degrees() Degree {
	return Degree(float64(r) * 180 / math.Pi)
}

// Distance is a signed length: a negative distance walks backward.
type Distance float64
