package geom

// Rect is an axis-aligned rectangle given by two opposite corners.
// The corners may be handed in any order.
type Rect struct {
	Corner0, Corner1 Point
}

// RectXYWH returns the rectangle with top-left (x, y) and size (w, h).
func RectXYWH(x, y, w, h int16) Rect {
	return Rect{Corner0: Pt(x, y), Corner1: Pt(x+w, y+h)}
}

// Canon returns r with Corner0 at the top-left and Corner1 at the
// bottom-right.
func (r Rect) Canon() Rect {
	c := r
	if c.Corner0.X > c.Corner1.X {
		c.Corner0.X, c.Corner1.X = c.Corner1.X, c.Corner0.X
	}
	if c.Corner0.Y > c.Corner1.Y {
		c.Corner0.Y, c.Corner1.Y = c.Corner1.Y, c.Corner0.Y
	}
	return c
}

func (r Rect) String() string {
	return r.Corner0.String() + "-" + r.Corner1.String()
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return r.Canon().Corner0
}

// Size returns the width and height of r.
func (r Rect) Size() Size {
	c := r.Canon()
	return Size{W: c.Corner1.X - c.Corner0.X, H: c.Corner1.Y - c.Corner0.Y}
}

// Add returns r translated by p.
func (r Rect) Add(p Point) Rect {
	return Rect{Corner0: r.Corner0.Add(p), Corner1: r.Corner1.Add(p)}
}

// Inset returns r shrunk by d on every side. A negative d grows it.
func (r Rect) Inset(d int16) Rect {
	c := r.Canon()
	return Rect{
		Corner0: Pt(c.Corner0.X+d, c.Corner0.Y+d),
		Corner1: Pt(c.Corner1.X-d, c.Corner1.Y-d),
	}
}

// Center returns the middle of r, rounded toward the top-left.
func (r Rect) Center() Point {
	c := r.Canon()
	return Pt(c.Corner0.X+(c.Corner1.X-c.Corner0.X)/2, c.Corner0.Y+(c.Corner1.Y-c.Corner0.Y)/2)
}

// Edges returns the four boundary segments of r. The two remaining corners
// are derived by mixing the X of one given corner with the Y of the other,
// which yields the same boundary for either corner ordering.
func (r Rect) Edges() [4]Segment {
	c0, c1 := r.Corner0, r.Corner1
	tr := Pt(c1.X, c0.Y)
	bl := Pt(c0.X, c1.Y)
	return [4]Segment{
		{c0, tr},
		{c0, bl},
		{c1, tr},
		{c1, bl},
	}
}

// CrossedBy reports whether s intersects any edge of r.
func (r Rect) CrossedBy(s Segment) bool {
	return SegmentCrossesRect(s.P0, s.P1, r.Corner0, r.Corner1)
}

// SegmentCrossesRect reports whether the segment s0->s1 intersects any of
// the four edges of the rectangle with opposite corners r0 and r1.
func SegmentCrossesRect(s0, s1, r0, r1 Point) bool {
	return SegmentsIntersect(s0, s1, r0, Pt(r1.X, r0.Y)) ||
		SegmentsIntersect(s0, s1, r0, Pt(r0.X, r1.Y)) ||
		SegmentsIntersect(s0, s1, r1, Pt(r1.X, r0.Y)) ||
		SegmentsIntersect(s0, s1, r1, Pt(r0.X, r1.Y))
}

// EitherSegmentCrossesRect reports whether a0->a1 or b0->b1 crosses the
// rectangle with opposite corners r0 and r1.
func EitherSegmentCrossesRect(a0, a1, b0, b1, r0, r1 Point) bool {
	return SegmentCrossesRect(a0, a1, r0, r1) || SegmentCrossesRect(b0, b1, r0, r1)
}
