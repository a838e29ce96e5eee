package watchface

import (
	"time"

	"github.com/gogpu/watchface/geom"
)

// HourTicks is the number of hour-hand positions per revolution: the hour
// hand advances every ten minutes.
const HourTicks = 12 * 6

// MinuteAngle returns the angle of the minute hand at t.
func MinuteAngle(t time.Time) int32 {
	return geom.TickAngle(int32(t.Minute()), 60)
}

// HourAngle returns the angle of the hour hand at t.
func HourAngle(t time.Time) int32 {
	tick := int32(t.Hour()%12)*6 + int32(t.Minute()/10)
	return geom.TickAngle(tick, HourTicks)
}

// MinuteHandLength returns the minute hand length for a dial radius.
func MinuteHandLength(radius int16) int16 {
	return radius - 10
}

// HourHandLength returns the hour hand length for a dial radius.
func HourHandLength(radius int16) int16 {
	return int16(int32(radius) * 55 / 100)
}

// Hands are the hour and minute hand segments, both running from the
// center to the tip.
type Hands struct {
	Minute geom.Segment
	Hour   geom.Segment

	MinuteAngle int32
	HourAngle   int32
}

// NewHands computes the hands for t on a dial of the given center and radius.
func NewHands(center geom.Point, radius int16, t time.Time) Hands {
	ma, ha := MinuteAngle(t), HourAngle(t)
	return Hands{
		Minute:      geom.Seg(center, geom.RadialPoint(center, MinuteHandLength(radius), ma)),
		Hour:        geom.Seg(center, geom.RadialPoint(center, HourHandLength(radius), ha)),
		MinuteAngle: ma,
		HourAngle:   ha,
	}
}
