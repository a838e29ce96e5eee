// Package geom provides the integer screen geometry shared by the watch faces.
//
// # Overview
//
// All coordinates are int16 pixel positions on a small display (the
// reference screen is 144×168). Nothing here allocates or uses floating
// point at call time: trigonometry comes from a fixed-point lookup table and
// every intersection test is exact integer arithmetic.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles are integers in [0, TrigMaxAngle), 0 points to 12 o'clock,
//     increasing clockwise
//
// # Intersection Tests
//
// Segments are closed: touching endpoints count as an intersection.
// Rectangles are tested by their four edges only, so a segment lying wholly
// inside a rectangle does not cross it.
package geom
