// Package placement finds where to draw the weekday and date labels of an
// analog face so that neither clock hand runs through them.
//
// A Layout lists candidate anchor offsets in priority order. Every offset
// after the first is tried twice, once as given and once mirrored on the X
// axis, so the search order is
//
//	Offsets[0], +Offsets[1], -Offsets[1], +Offsets[2], -Offsets[2], ...
//
// The first anchor whose two label boxes are crossed by neither hand wins.
// When every anchor is obstructed the labels go back to Offsets[0] and
// Result.Found is false; the caller draws them there anyway.
package placement
