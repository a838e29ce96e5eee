// Package dial draws the parts shared by the analog faces: the dial disc,
// tick marks, numerals, hands and the Bluetooth glyph.
package dial

import (
	"image/color"
	"strconv"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/geom"
	"github.com/gogpu/watchface/surface"
)

// Shared face colors.
var (
	Background = surface.ColorWhite
	Outer      = surface.ColorDarkGray
	Normal     = surface.ColorBlack
	Accent     = surface.ColorJaegerGreen
	Highlight  = surface.ColorLightGray
)

// Disc fills the frame with outer, then draws the white dial disc and its
// 4 px ring.
func Disc(s surface.Surface, f watchface.Frame, outer color.Color) {
	s.SetFillColor(outer)
	s.FillRect(f.Bounds, 0, surface.CornerNone)
	s.SetFillColor(Background)
	s.FillCircle(f.Center, f.Radius)
	s.SetStrokeColor(Normal)
	s.SetStrokeWidth(4)
	s.DrawCircle(f.Center, f.Radius+3)
}

// TickStyle selects how the twelve hour ticks are drawn.
type TickStyle struct {
	// Long makes the quarter ticks 10 px instead of 6 px.
	Long bool

	// Fat draws long quarter ticks 4 px wide. It only applies with Long.
	Fat bool
}

// HourTicks draws the twelve hour ticks inward from the dial edge.
func HourTicks(s surface.Surface, f watchface.Frame, style TickStyle) {
	s.SetStrokeColor(Normal)
	s.SetStrokeWidth(2)
	for i := int32(0); i < 12; i++ {
		angle := geom.TickAngle(i, 12)
		length := int16(6)
		if style.Long {
			if i%3 == 0 {
				length = 10
				if style.Fat {
					s.SetStrokeWidth(4)
				}
			} else if style.Fat {
				s.SetStrokeWidth(2)
			}
		}
		s.DrawLine(geom.RadialPoint(f.Center, f.Radius, angle), geom.RadialPoint(f.Center, f.Radius-length, angle))
	}
}

// MinuteTicks draws 3 px minute ticks. With onlyRelevant, only the five
// ticks of the current five-minute block are drawn.
func MinuteTicks(s surface.Surface, f watchface.Frame, onlyRelevant bool) {
	start, end := int32(0), int32(60)
	if onlyRelevant {
		start = int32(f.Time.Minute()/5) * 5
		end = start + 5
	}
	s.SetStrokeWidth(1)
	for i := start; i < end; i++ {
		angle := geom.TickAngle(i, 60)
		s.DrawLine(geom.RadialPoint(f.Center, f.Radius, angle), geom.RadialPoint(f.Center, f.Radius-3, angle))
	}
}

// Numerals holds the top-left corner of each hour numeral, 12 first, as an
// offset from the frame center.
type Numerals [12]geom.Point

// Draw draws the numerals in font and c. A negative only draws all twelve;
// otherwise only the numeral for hour only%12 is drawn.
func (n *Numerals) Draw(s surface.Surface, f watchface.Frame, font surface.Font, c color.Color, only int) {
	s.SetTextColor(c)
	for i, p := range n {
		if only >= 0 && i != only%12 {
			continue
		}
		label := "12"
		if i > 0 {
			label = strconv.Itoa(i)
		}
		w := int16(9)
		if len(label) > 1 {
			w = 18
		}
		o := f.Center.Add(p)
		s.DrawText(label, font, geom.RectXYWH(o.X, o.Y, w, 22), surface.AlignCenter)
	}
}

// Hands draws the minute hand, the hour hand in accent and the center dot.
// Each hand is a 5 px background outline, a 4 px body and a 1 px highlight.
func Hands(s surface.Surface, f watchface.Frame, accent color.Color) watchface.Hands {
	h := f.Hands()
	minuteInner := geom.RadialPoint(f.Center, watchface.MinuteHandLength(f.Radius)-2, h.MinuteAngle)
	hourInner := geom.RadialPoint(f.Center, watchface.HourHandLength(f.Radius)-2, h.HourAngle)

	hand(s, h.Minute.P1, minuteInner, f.Center, Normal)
	hand(s, h.Hour.P1, hourInner, f.Center, accent)

	s.SetFillColor(Normal)
	s.FillCircle(f.Center, 5)
	s.SetFillColor(Background)
	s.FillCircle(f.Center, 2)
	return h
}

func hand(s surface.Surface, tip, inner, center geom.Point, body color.Color) {
	s.SetStrokeWidth(5)
	s.SetStrokeColor(Background)
	s.DrawLine(tip, center)
	s.SetStrokeWidth(4)
	s.SetStrokeColor(body)
	s.DrawLine(tip, center)
	s.SetStrokeWidth(1)
	s.SetStrokeColor(Highlight)
	s.DrawLine(inner, center)
}

// logoStep is the grid unit of the Bluetooth glyph, which is 2 steps wide
// and 4 steps tall.
const logoStep = 3

// LogoSize is the size of the Bluetooth glyph.
var LogoSize = geom.Size{W: 2 * logoStep, H: 4 * logoStep}

// BluetoothLogo strokes the Bluetooth rune with its top-left at origin.
func BluetoothLogo(s surface.Surface, origin geom.Point, c color.Color) {
	pt := func(x, y int16) geom.Point { return origin.Add(geom.Pt(x*logoStep, y*logoStep)) }

	s.SetStrokeColor(c)
	s.SetStrokeWidth(1)
	s.DrawLine(pt(1, 0), pt(1, 4))
	s.DrawLine(pt(0, 1), pt(2, 3))
	s.DrawLine(pt(0, 3), pt(2, 1))
	s.DrawLine(pt(1, 0), pt(2, 1))
	s.DrawLine(pt(1, 4), pt(2, 3))
}

// LogoOrigin returns where the faces put the Bluetooth glyph: centered
// horizontally, 40 px from the top.
func LogoOrigin(f watchface.Frame) geom.Point {
	return geom.Pt(f.Center.X-logoStep, 40)
}
