// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image/color"

// Palette colors of the 64-color watch display used by the faces.
// Each channel takes one of the values 0x00, 0x55, 0xAA, 0xFF.
var (
	ColorBlack             = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	ColorWhite             = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	ColorDarkGray          = color.RGBA{0x55, 0x55, 0x55, 0xFF}
	ColorLightGray         = color.RGBA{0xAA, 0xAA, 0xAA, 0xFF}
	ColorRed               = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	ColorOrange            = color.RGBA{0xFF, 0x55, 0x00, 0xFF}
	ColorYellow            = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	ColorJaegerGreen       = color.RGBA{0x00, 0xAA, 0x55, 0xFF}
	ColorDarkCandyAppleRed = color.RGBA{0xAA, 0x00, 0x00, 0xFF}
	ColorSunsetOrange      = color.RGBA{0xFF, 0x55, 0x55, 0xFF}
)
