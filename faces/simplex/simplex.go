// Package simplex implements the Simplex watch face. It is drawn in four
// layers, bottom to top: background, battery, text and time.
package simplex

import (
	"image/color"
	"time"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/geom"
	"github.com/gogpu/watchface/internal/dial"
	"github.com/gogpu/watchface/surface"
)

// Name is the face identifier.
const Name = "simplex"

// Layer names, bottom first.
const (
	LayerBackground = "background"
	LayerBattery    = "battery"
	LayerText       = "text"
	LayerTime       = "time"
)

var (
	// WarningBackground surrounds the dial while Bluetooth is disconnected.
	WarningBackground = surface.ColorDarkCandyAppleRed

	// WarningGlyph is the color of the Bluetooth glyph.
	WarningGlyph = surface.ColorSunsetOrange

	// BatteryColor is the color of the charge line.
	BatteryColor = surface.ColorDarkGray
)

// BluetoothVibe is played on every connection change.
var BluetoothVibe = watchface.NewVibePattern(
	200*time.Millisecond, 200*time.Millisecond,
	200*time.Millisecond, 200*time.Millisecond,
	500*time.Millisecond,
)

// Options selects the face variant.
type Options struct {
	// OnlyRelevantMinuteTicks draws only the five minute ticks of the
	// current five-minute block.
	OnlyRelevantMinuteTicks bool
}

var numerals = dial.Numerals{
	{X: -9, Y: -66},  // 12
	{X: 23, Y: -58},  // 1
	{X: 45, Y: -41},  // 2
	{X: 53, Y: -12},  // 3
	{X: 45, Y: 15},   // 4
	{X: 23, Y: 34},   // 5
	{X: -4, Y: 44},   // 6
	{X: -29, Y: 34},  // 7
	{X: -51, Y: 15},  // 8
	{X: -59, Y: -12}, // 9
	{X: -57, Y: -41}, // 10
	{X: -35, Y: -58}, // 11
}

// Label boxes, relative to the dial center.
var (
	weekdayBox = geom.RectXYWH(-25, 6, 50, 21)
	dateBox    = geom.RectXYWH(-25, 24, 50, 21)
)

// Face is the Simplex watch face.
type Face struct {
	opts Options

	background, battery, text, clock *watchface.Layer
}

var _ watchface.Face = (*Face)(nil)

// New creates the face.
func New(opts Options) *Face {
	return &Face{opts: opts}
}

// Name implements watchface.Face.
func (f *Face) Name() string { return Name }

// TickUnit implements watchface.Face.
func (f *Face) TickUnit() watchface.TimeUnit { return watchface.MinuteUnit }

// Load implements watchface.Face.
func (f *Face) Load(w *watchface.Window) error {
	f.background = watchface.NewLayer(LayerBackground, f.drawBackground)
	f.battery = watchface.NewLayer(LayerBattery, drawBattery)
	f.text = watchface.NewLayer(LayerText, drawText)
	f.clock = watchface.NewLayer(LayerTime, drawTime)

	w.AddLayer(f.background)
	w.AddLayer(f.battery)
	w.AddLayer(f.text)
	w.AddLayer(f.clock)
	return nil
}

// Unload implements watchface.Face.
func (f *Face) Unload(w *watchface.Window) {
	w.RemoveLayers()
	f.background, f.battery, f.text, f.clock = nil, nil, nil, nil
}

// OnTick implements watchface.Face.
func (f *Face) OnTick(_ *watchface.Window, _ time.Time) {
	f.clock.MarkDirty()
	f.text.MarkDirty()
}

// OnBattery implements watchface.Face.
func (f *Face) OnBattery(_ *watchface.Window, _ watchface.BatteryState) {
	f.battery.MarkDirty()
}

// OnBluetooth implements watchface.Face.
func (f *Face) OnBluetooth(w *watchface.Window, _ bool) {
	f.background.MarkDirty()
	w.Vibrate(BluetoothVibe)
}

func (f *Face) drawBackground(s surface.Surface, fr watchface.Frame) {
	outer := dial.Outer
	if !fr.Connected {
		outer = WarningBackground
	}
	dial.Disc(s, fr, outer)
	numerals.Draw(s, fr, surface.FontGothic18, dial.Normal, -1)
	dial.HourTicks(s, fr, dial.TickStyle{})
	dial.MinuteTicks(s, fr, f.opts.OnlyRelevantMinuteTicks)

	if !fr.Connected {
		dial.BluetoothLogo(s, dial.LogoOrigin(fr), WarningGlyph)
	}
}

// drawBattery draws a line along the bottom edge, as long as the charge.
func drawBattery(s surface.Surface, fr watchface.Frame) {
	sz := fr.Bounds.Size()
	length := int16(int32(sz.W) * int32(fr.Battery.ChargePercent) / 100)
	s.SetStrokeWidth(1)
	s.SetStrokeColor(BatteryColor)
	s.DrawLine(geom.Pt(0, sz.H-1), geom.Pt(length, sz.H-1))
}

// drawText draws the weekday and the date in boxes under the center.
func drawText(s surface.Surface, fr watchface.Frame) {
	label(s, watchface.Weekday(fr.Time), weekdayBox.Add(fr.Center), dial.Normal)
	label(s, watchface.MonthDay(fr.Time), dateBox.Add(fr.Center), dial.Accent)
}

func label(s surface.Surface, text string, box geom.Rect, c color.Color) {
	s.SetFillColor(dial.Background)
	s.FillRect(box, 0, surface.CornerNone)
	s.SetTextColor(c)
	s.DrawText(text, surface.FontGothic18Bold, box, surface.AlignCenter)
}

func drawTime(s surface.Surface, fr watchface.Frame) {
	dial.Hands(s, fr, dial.Accent)
}
