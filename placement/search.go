package placement

import "github.com/gogpu/watchface/geom"

// Result is the outcome of a label placement search.
type Result struct {
	// Index is the position of Anchor in Layout.Candidates.
	Index int

	// Anchor is the chosen offset.
	Anchor geom.Point

	// Found is false when every candidate was obstructed and the labels
	// fell back to Offsets[0].
	Found bool

	// DayFrame and DateFrame are the frames to draw the labels into.
	DayFrame, DateFrame geom.Rect

	// DayBounds and DateBounds are the boxes tested against the hands.
	DayBounds, DateBounds geom.Rect
}

// Place searches the candidates of l in order and returns the first anchor
// whose weekday and date boxes are crossed by neither hand. Both hands are
// expected to start at the dial center. dayWidth and dateWidth are the
// measured widths of the two strings.
func (l Layout) Place(hour, minute geom.Segment, dayWidth, dateWidth int16) Result {
	if len(l.Offsets) > 0 {
		n := 1 + (len(l.Offsets)-1)*2
		for i := range n {
			anchor := l.candidate(i)
			if l.Obstructed(hour, minute, anchor, dayWidth, dateWidth) {
				continue
			}
			return l.result(i, anchor, dayWidth, dateWidth, true)
		}
	}
	return l.result(0, l.fallback(), dayWidth, dateWidth, false)
}

// Obstructed reports whether either hand crosses either label box at anchor.
func (l Layout) Obstructed(hour, minute geom.Segment, anchor geom.Point, dayWidth, dateWidth int16) bool {
	day := l.DayBounds(anchor, dayWidth)
	date := l.DateBounds(anchor, dateWidth)
	return geom.EitherSegmentCrossesRect(hour.P0, hour.P1, minute.P0, minute.P1, day.Corner0, day.Corner1) ||
		geom.EitherSegmentCrossesRect(hour.P0, hour.P1, minute.P0, minute.P1, date.Corner0, date.Corner1)
}

func (l Layout) result(i int, anchor geom.Point, dayWidth, dateWidth int16, found bool) Result {
	return Result{
		Index:      i,
		Anchor:     anchor,
		Found:      found,
		DayFrame:   l.DayFrame(anchor),
		DateFrame:  l.DateFrame(anchor),
		DayBounds:  l.DayBounds(anchor, dayWidth),
		DateBounds: l.DateBounds(anchor, dateWidth),
	}
}
