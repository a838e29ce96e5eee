// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/watchface/geom"
)

// Surface is the rendering target of a watch face.
//
// Colors and stroke width are state: they apply to every following draw call
// until changed. Surfaces are NOT thread-safe.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// SetFillColor sets the color used by FillCircle and FillRect.
	SetFillColor(c color.Color)

	// SetStrokeColor sets the color used by DrawLine, DrawCircle and DrawRect.
	SetStrokeColor(c color.Color)

	// SetStrokeWidth sets the line width in pixels used by DrawLine and DrawCircle.
	SetStrokeWidth(w int)

	// SetTextColor sets the color used by DrawText.
	SetTextColor(c color.Color)

	// DrawLine strokes the segment p0-p1.
	DrawLine(p0, p1 geom.Point)

	// DrawCircle strokes a circle outline.
	DrawCircle(center geom.Point, radius int16)

	// FillCircle fills a disc.
	FillCircle(center geom.Point, radius int16)

	// DrawRect strokes a one pixel outline just inside r.
	DrawRect(r geom.Rect)

	// FillRect fills r, rounding the selected corners by cornerRadius.
	FillRect(r geom.Rect, cornerRadius int16, corners Corners)

	// DrawText draws a single line of text at the top of frame, aligned
	// horizontally within it.
	DrawText(text string, font Font, frame geom.Rect, align Alignment)

	// MeasureText returns the size text occupies when drawn into frame.
	// The width never exceeds the frame width.
	MeasureText(text string, font Font, frame geom.Rect, align Alignment) geom.Size

	// Flush completes pending drawing and reports the first error any
	// earlier draw call hit.
	Flush() error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Snapshotter is an optional interface for surfaces that hold pixels.
type Snapshotter interface {
	Surface

	// Snapshot returns a copy of the current surface contents.
	Snapshot() *image.RGBA
}
