// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Font identifies one of the fonts available to faces.
type Font uint8

const (
	// FontGothic18 is the regular 18 px system font.
	FontGothic18 Font = iota

	// FontGothic18Bold is the bold 18 px system font used for date labels.
	FontGothic18Bold

	// FontOpenSans12 is the small 12 px font used for numerals and battery text.
	FontOpenSans12

	fontCount
)

var fontNames = [...]string{
	FontGothic18:     "Gothic18",
	FontGothic18Bold: "Gothic18Bold",
	FontOpenSans12:   "OpenSans12",
}

func (f Font) String() string {
	if int(f) < len(fontNames) {
		return fontNames[f]
	}
	return "Unknown"
}

// Size returns the nominal pixel size of the font.
func (f Font) Size() float64 {
	switch f {
	case FontOpenSans12:
		return 12
	default:
		return 18
	}
}

// Alignment specifies horizontal text alignment within a frame.
type Alignment uint8

const (
	// AlignLeft aligns text to the left edge of the frame.
	AlignLeft Alignment = iota

	// AlignCenter centers text within the frame.
	AlignCenter

	// AlignRight aligns text to the right edge of the frame.
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Offset returns the x offset of a line of the given width inside a frame
// of frameWidth.
func (a Alignment) Offset(frameWidth, width float64) float64 {
	switch a {
	case AlignCenter:
		return (frameWidth - width) / 2
	case AlignRight:
		return frameWidth - width
	default:
		return 0
	}
}

// Corners selects which corners of a filled rectangle are rounded.
type Corners uint8

const (
	// CornerNone leaves all corners square.
	CornerNone Corners = iota

	// CornersAll rounds all four corners.
	CornersAll
)

func (c Corners) String() string {
	if c == CornersAll {
		return "All"
	}
	return "None"
}
