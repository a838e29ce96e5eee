// Package obsidian implements the Obsidian watch face: a single layer with a
// white dial, hour and minute ticks, a battery gauge in the corner and the
// weekday/date labels placed where neither hand crosses them.
//
// The outer background warns about a low battery: yellow at 30 % and
// below, orange at 20 % and below, red at 10 % and below.
package obsidian

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/geom"
	"github.com/gogpu/watchface/internal/dial"
	"github.com/gogpu/watchface/placement"
	"github.com/gogpu/watchface/surface"
)

// Name is the face identifier.
const Name = "obsidian"

// Options selects the face variant.
type Options struct {
	// ShowNumbers draws all twelve hour numerals.
	ShowNumbers bool

	// OnlyRelevantNumber draws only the numeral of the current hour.
	OnlyRelevantNumber bool

	// LongTicks makes the 12, 3, 6 and 9 o'clock ticks longer.
	LongTicks bool

	// FatTicks makes the long ticks wider.
	FatTicks bool

	// OnlyRelevantMinuteTicks draws only the five minute ticks of the
	// current five-minute block.
	OnlyRelevantMinuteTicks bool

	// BatteryAsText shows the charge as a number instead of a gauge.
	BatteryAsText bool

	// Layout is the label placement geometry, in screen pixels.
	Layout placement.Layout
}

// DefaultOptions returns the standard variant: long fat ticks, all minute
// ticks, no numerals and a battery gauge.
func DefaultOptions() Options {
	return Options{
		LongTicks: true,
		FatTicks:  true,
		Layout:    placement.DefaultLayout(),
	}
}

// numerals are the top-left corners of the hour numerals relative to the
// dial center.
var numerals = dial.Numerals{
	{X: -9, Y: -58},  // 12
	{X: 23, Y: -56},  // 1
	{X: 45, Y: -37},  // 2
	{X: 49, Y: -7},   // 3
	{X: 45, Y: 18},   // 4
	{X: 24, Y: 40},   // 5
	{X: -4, Y: 44},   // 6
	{X: -29, Y: 40},  // 7
	{X: -49, Y: 19},  // 8
	{X: -57, Y: -7},  // 9
	{X: -55, Y: -36}, // 10
	{X: -35, Y: -56}, // 11
}

// Face is the Obsidian watch face.
type Face struct {
	opts       Options
	background *watchface.Layer
	last       placement.Result
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
	if err := f.opts.Layout.Validate(); err != nil {
		return fmt.Errorf("obsidian: %w", err)
	}
	f.background = watchface.NewLayer("background", f.draw)
	w.AddLayer(f.background)
	return nil
}

// Unload implements watchface.Face.
func (f *Face) Unload(w *watchface.Window) {
	w.RemoveLayers()
	f.background = nil
}

// OnTick implements watchface.Face.
func (f *Face) OnTick(_ *watchface.Window, _ time.Time) {
	f.background.MarkDirty()
}

// OnBattery implements watchface.Face.
func (f *Face) OnBattery(_ *watchface.Window, _ watchface.BatteryState) {
	f.background.MarkDirty()
}

// OnBluetooth implements watchface.Face. A connection change redraws the
// logo, vibrates twice and lights the display.
func (f *Face) OnBluetooth(w *watchface.Window, connected bool) {
	f.background.MarkDirty()
	w.Vibrate(watchface.VibeDoublePulse)
	w.LightInteraction()
}

// LastPlacement returns the label placement of the most recent frame.
func (f *Face) LastPlacement() placement.Result {
	return f.last
}

// OuterColor returns the color around the dial for a battery charge.
func OuterColor(percent uint8) color.RGBA {
	switch {
	case percent <= 10:
		return surface.ColorRed
	case percent <= 20:
		return surface.ColorOrange
	case percent <= 30:
		return surface.ColorYellow
	default:
		return dial.Outer
	}
}

func (f *Face) draw(s surface.Surface, fr watchface.Frame) {
	dial.Disc(s, fr, OuterColor(fr.Battery.ChargePercent))

	switch {
	case f.opts.OnlyRelevantNumber:
		numerals.Draw(s, fr, surface.FontOpenSans12, surface.ColorDarkGray, fr.Time.Hour()%12)
	case f.opts.ShowNumbers:
		numerals.Draw(s, fr, surface.FontOpenSans12, surface.ColorDarkGray, -1)
	}

	dial.HourTicks(s, fr, dial.TickStyle{Long: f.opts.LongTicks, Fat: f.opts.FatTicks})
	dial.MinuteTicks(s, fr, f.opts.OnlyRelevantMinuteTicks)

	f.drawDate(s, fr)
	dial.Hands(s, fr, dial.Accent)

	if !fr.Connected {
		drawBluetooth(s, dial.LogoOrigin(fr))
	}
	if f.opts.BatteryAsText {
		drawBatteryText(s, fr)
	} else {
		drawBatteryGauge(s, fr)
	}
}

// drawDate places the weekday and date labels off both hands and draws them.
func (f *Face) drawDate(s surface.Surface, fr watchface.Frame) {
	layout := f.opts.Layout
	hands := fr.Hands()
	day, date := watchface.Weekday(fr.Time), watchface.MonthDay(fr.Time)

	origin := geom.Point{}
	dayWidth := s.MeasureText(day, surface.FontGothic18Bold, layout.DayFrame(origin), surface.AlignCenter).W
	dateWidth := s.MeasureText(date, surface.FontGothic18Bold, layout.DateFrame(origin), surface.AlignCenter).W

	res := layout.Place(hands.Hour, hands.Minute, dayWidth, dateWidth)
	f.last = res
	if !res.Found {
		watchface.Logger().Warn("obsidian: no free label position, using fallback",
			"time", fr.Time.Format("15:04"), "day", day, "date", date)
	} else {
		watchface.Logger().Debug("obsidian: label placed", "index", res.Index, "anchor", res.Anchor.String())
	}

	s.SetTextColor(dial.Normal)
	s.DrawText(day, surface.FontGothic18Bold, res.DayFrame, surface.AlignCenter)
	s.SetTextColor(dial.Accent)
	s.DrawText(date, surface.FontGothic18Bold, res.DateFrame, surface.AlignCenter)
}

// drawBluetooth draws the glyph in white on an accent badge.
func drawBluetooth(s surface.Surface, origin geom.Point) {
	s.SetFillColor(dial.Accent)
	s.FillRect(geom.RectXYWH(origin.X-2, origin.Y-2, dial.LogoSize.W+5, dial.LogoSize.H+5), 2, surface.CornersAll)
	dial.BluetoothLogo(s, origin, surface.ColorWhite)
}

// drawBatteryGauge draws a 14×8 battery outline in the top-right corner,
// filled one pixel per ten percent.
func drawBatteryGauge(s surface.Surface, fr watchface.Frame) {
	w := fr.Bounds.Size().W
	b := geom.RectXYWH(w-19, 3, 14, 8)
	o, sz := b.Origin(), b.Size()

	s.SetStrokeColor(dial.Normal)
	s.SetFillColor(dial.Normal)
	s.DrawRect(b)
	s.FillRect(geom.RectXYWH(o.X+2, o.Y+2, int16(fr.Battery.ChargePercent/10), 4), 0, surface.CornerNone)
	s.SetStrokeWidth(1)
	s.DrawLine(geom.Pt(o.X+sz.W, o.Y+2), geom.Pt(o.X+sz.W, o.Y+5))
}

// drawBatteryText draws the charge percentage inside a 22×11 battery outline.
func drawBatteryText(s surface.Surface, fr watchface.Frame) {
	w := fr.Bounds.Size().W
	b := geom.RectXYWH(w-26, 2, 22, 11)
	o, sz := b.Origin(), b.Size()

	s.SetTextColor(dial.Normal)
	s.DrawText(strconv.Itoa(int(fr.Battery.ChargePercent)), surface.FontOpenSans12,
		geom.RectXYWH(o.X, o.Y-1, sz.W, sz.H), surface.AlignCenter)
	s.SetStrokeColor(dial.Normal)
	s.DrawRect(b)
	s.SetStrokeWidth(2)
	s.DrawLine(geom.Pt(o.X+sz.W, o.Y+3), geom.Pt(o.X+sz.W, o.Y+sz.H-3))
}
