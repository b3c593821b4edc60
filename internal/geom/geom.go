package geom

import "math"

// #region point

// Point is a 2-D position in normalized image coordinates
// (origin top-left, y grows downward).
type Point struct {
	X float64
	Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2.0, Y: (a.Y + b.Y) / 2.0}
}

// #endregion point

// #region angle

// AngleAtVertex returns the angle at b formed by a-b-c, in degrees.
// The result is always in [0, 180] and symmetric in swapping a and c.
// A zero-length leg resolves to 0.0 by convention, never an error.
func AngleAtVertex(a, b, c Point) float64 {
	v1 := a.Sub(b)
	v2 := c.Sub(b)
	denom := norm(v1) * norm(v2)
	if denom == 0 {
		return 0.0
	}
	cos := clamp(dot(v1, v2)/denom, -1.0, 1.0)
	return degrees(math.Acos(cos))
}

// #endregion angle

// #region tilt

// TiltFromVertical returns the angle in degrees between v and the upward
// unit vector (0, -1). Same clamp and degenerate policy as AngleAtVertex.
func TiltFromVertical(v Point) float64 {
	denom := norm(v)
	if denom == 0 {
		return 0.0
	}
	// dot(v, (0,-1)) = -v.Y
	cos := clamp(-v.Y/denom, -1.0, 1.0)
	return degrees(math.Acos(cos))
}

// #endregion tilt

// #region helpers

func dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

func norm(p Point) float64 {
	return math.Hypot(p.X, p.Y)
}

func degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
