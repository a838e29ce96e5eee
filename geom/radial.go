package geom

// RadialPoint returns the point at distance from center in the direction of
// angle, measured clockwise from 12 o'clock.
//
// Each component is truncated toward zero before the center offset is added,
// so hand tips land on the same pixels on every platform.
func RadialPoint(center Point, distance int16, angle int32) Point {
	d := int32(distance)
	return Point{
		X: int16(SinLookup(angle)*d/TrigMaxRatio) + center.X,
		Y: int16(-CosLookup(angle)*d/TrigMaxRatio) + center.Y,
	}
}

// TickAngle converts tick out of maxTick equal divisions of the dial into an
// angle. maxTick must be positive.
func TickAngle(tick, maxTick int32) int32 {
	return TrigMaxAngle * tick / maxTick
}

// RadialPointTicks is RadialPoint with the angle given as tick/maxTick of a
// full turn.
func RadialPointTicks(center Point, distance int16, tick, maxTick int32) Point {
	return RadialPoint(center, distance, TickAngle(tick, maxTick))
}
