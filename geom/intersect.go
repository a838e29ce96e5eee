package geom

// Segment is a closed line segment from P0 to P1.
type Segment struct {
	P0, P1 Point
}

// Seg is a convenience function to create a Segment.
func Seg(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1}
}

// Intersects reports whether s and o share at least one point.
func (s Segment) Intersects(o Segment) bool {
	return SegmentsIntersect(s.P0, s.P1, o.P0, o.P1)
}

// SegmentsIntersect reports whether the closed segments a0->a1 and b0->b1
// intersect. Touching endpoints count as an intersection.
//
// Parallel segments intersect only when they lie on the same line and the
// x projection of one start point falls within the x extent of the other
// segment, measured in that segment's direction. This is enough for hands
// meeting rectangle edges; arbitrary collinear pairs (vertical lines, or
// both segments pointing toward -x) can be misreported.
func SegmentsIntersect(a0, a1, b0, b1 Point) bool {
	va := a1.Sub(a0)
	vb := b1.Sub(b0)

	det := vb.Cross(va)
	if det == 0 {
		ba := b0.Sub(a0)
		if ba.Cross(va) != 0 {
			// parallel, distinct lines
			return false
		}
		// same line
		dx := int32(b0.X) - int32(a0.X)
		return (0 <= dx && dx <= int32(va.X)) || (0 <= -dx && -dx <= int32(vb.X))
	}

	ab := a0.Sub(b0)
	s := ab.Cross(va)
	t := ab.Cross(vb)

	if det < 0 {
		det = -det
		s = -s
		t = -t
	}
	return 0 <= s && s <= det && 0 <= t && t <= det
}
