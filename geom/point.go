package geom

import "strconv"

// Point is a pixel position or a vector between two pixel positions.
type Point struct {
	X, Y int16
}

// Pt is a convenience function to create a Point.
func Pt(x, y int16) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the 2D cross product p.X*q.Y - p.Y*q.X.
// The result is widened to int32 so screen-sized vectors never wrap.
func (p Point) Cross(q Point) int32 {
	return int32(p.X)*int32(q.Y) - int32(p.Y)*int32(q.X)
}

// MirrorX returns the point with its X component negated.
func (p Point) MirrorX() Point {
	return Point{X: -p.X, Y: p.Y}
}

func (p Point) String() string {
	return "(" + strconv.Itoa(int(p.X)) + "," + strconv.Itoa(int(p.Y)) + ")"
}

// Size is the extent of a rectangle or of a measured string.
type Size struct {
	W, H int16
}
