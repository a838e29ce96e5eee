package placement

import (
	"errors"

	"github.com/gogpu/watchface/geom"
)

// Errors returned by Layout.Validate.
var (
	// ErrNoOffsets is returned when a layout has no candidate offsets.
	ErrNoOffsets = errors.New("placement: layout has no candidate offsets")

	// ErrBadLabelHeight is returned when the label height is not positive.
	ErrBadLabelHeight = errors.New("placement: label height must be positive")

	// ErrBadScreenWidth is returned when the screen width is not positive.
	ErrBadScreenWidth = errors.New("placement: screen width must be positive")
)

// Layout holds the fixed geometry of the weekday/date label pair.
type Layout struct {
	// ScreenWidth is the width of the label frames. Labels are centered on
	// ScreenWidth/2 plus the anchor X offset.
	ScreenWidth int16

	// BaseRow is the top of the weekday label for a zero anchor.
	BaseRow int16

	// DateGap is the vertical distance from the weekday label to the date label.
	DateGap int16

	// LabelHeight is the height of both label boxes.
	LabelHeight int16

	// Offsets are the candidate anchors in priority order. Offsets[0] is the
	// fallback position and is tried only once.
	Offsets []geom.Point
}

// DefaultLayout returns the layout of the 144×168 reference screen.
func DefaultLayout() Layout {
	return Layout{
		ScreenWidth: 144,
		BaseRow:     100,
		DateGap:     15,
		LabelHeight: 21,
		Offsets: []geom.Point{
			{X: 0, Y: 0},
			{X: 10, Y: -3},
			{X: 17, Y: -7},
			{X: 26, Y: -13},
			{X: 29, Y: -19},
			{X: 33, Y: -25},
			{X: 33, Y: -32},
			{X: 33, Y: -39},
		},
	}
}

// LayoutFor returns DefaultLayout adapted to a width×height screen. The
// labels keep their position relative to the reference screen's center;
// offsets, gap and label height are unchanged.
func LayoutFor(width, height int) Layout {
	l := DefaultLayout()
	l.ScreenWidth = int16(width)
	l.BaseRow = int16(height/2) + l.BaseRow - 84
	return l
}

// Validate reports whether l can be searched.
func (l Layout) Validate() error {
	switch {
	case len(l.Offsets) == 0:
		return ErrNoOffsets
	case l.LabelHeight <= 0:
		return ErrBadLabelHeight
	case l.ScreenWidth <= 0:
		return ErrBadScreenWidth
	}
	return nil
}

// Candidates returns the 1+(N-1)*2 anchors in search order.
func (l Layout) Candidates() []geom.Point {
	if len(l.Offsets) == 0 {
		return []geom.Point{{}}
	}
	n := 1 + (len(l.Offsets)-1)*2
	out := make([]geom.Point, n)
	for i := range n {
		out[i] = l.candidate(i)
	}
	return out
}

// candidate returns the i-th anchor in search order. Even indices mirror
// their base offset, which leaves index 0 unchanged for a zero X.
func (l Layout) candidate(i int) geom.Point {
	p := l.Offsets[(i+1)/2]
	if i%2 == 0 {
		p = p.MirrorX()
	}
	return p
}

// fallback returns the anchor used when the search is exhausted.
func (l Layout) fallback() geom.Point {
	if len(l.Offsets) == 0 {
		return geom.Point{}
	}
	return l.Offsets[0]
}

// DayFrame returns the frame the weekday text is drawn into for anchor.
func (l Layout) DayFrame(anchor geom.Point) geom.Rect {
	return geom.RectXYWH(anchor.X, l.BaseRow+anchor.Y, l.ScreenWidth, l.LabelHeight)
}

// DateFrame returns the frame the date text is drawn into for anchor.
func (l Layout) DateFrame(anchor geom.Point) geom.Rect {
	return geom.RectXYWH(anchor.X, l.BaseRow+anchor.Y+l.DateGap, l.ScreenWidth, l.LabelHeight)
}

// DayBounds returns the collision box of a weekday label of the given width.
func (l Layout) DayBounds(anchor geom.Point, width int16) geom.Rect {
	return l.bounds(anchor, width, l.BaseRow+anchor.Y)
}

// DateBounds returns the collision box of a date label of the given width.
func (l Layout) DateBounds(anchor geom.Point, width int16) geom.Rect {
	return l.bounds(anchor, width, l.BaseRow+anchor.Y+l.DateGap)
}

func (l Layout) bounds(anchor geom.Point, width, top int16) geom.Rect {
	mid := l.ScreenWidth/2 + anchor.X
	return geom.Rect{
		Corner0: geom.Pt(mid-width/2, top),
		Corner1: geom.Pt(mid+width/2, top+l.LabelHeight),
	}
}
