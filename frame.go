package watchface

import (
	"time"

	"github.com/gogpu/watchface/geom"
)

// BatteryState is the charge state reported by the device.
type BatteryState struct {
	// ChargePercent is the charge level, 0 to 100.
	ChargePercent uint8

	// Charging is true while the battery is being charged.
	Charging bool

	// Plugged is true while external power is connected.
	Plugged bool
}

// Frame is the render context handed to every layer update. It carries
// everything a face needs to draw one frame; layers read it and never keep
// it.
type Frame struct {
	// Bounds covers the whole window, origin at (0, 0).
	Bounds geom.Rect

	// Center is the middle of Bounds.
	Center geom.Point

	// Radius is half the window width, the radius of the dial.
	Radius int16

	// Time is the local time to display.
	Time time.Time

	Battery   BatteryState
	Connected bool
}

// NewFrame returns the frame for a width×height window.
func NewFrame(width, height int, t time.Time, battery BatteryState, connected bool) Frame {
	bounds := geom.RectXYWH(0, 0, int16(width), int16(height))
	return Frame{
		Bounds:    bounds,
		Center:    bounds.Center(),
		Radius:    int16(width / 2),
		Time:      t,
		Battery:   battery,
		Connected: connected,
	}
}

// Hands returns the hand segments for the frame's time.
func (f Frame) Hands() Hands {
	return NewHands(f.Center, f.Radius, f.Time)
}
