package geom

import "math"

const (
	// TrigMaxAngle is one full turn.
	TrigMaxAngle int32 = 0x10000

	// TrigMaxRatio is the fixed-point scale of SinLookup and CosLookup.
	TrigMaxRatio int32 = 0xffff

	quarterTurn = TrigMaxAngle / 4
)

// sinTable holds sin over the first quadrant, inclusive of both ends.
var sinTable [quarterTurn + 1]int32

func init() {
	for i := range sinTable {
		s := math.Sin(float64(i) * 2 * math.Pi / float64(TrigMaxAngle))
		sinTable[i] = int32(math.Round(s * float64(TrigMaxRatio)))
	}
}

// SinLookup returns sin(angle) scaled by TrigMaxRatio.
// The angle wraps modulo TrigMaxAngle; negative angles are allowed.
func SinLookup(angle int32) int32 {
	a := angle & (TrigMaxAngle - 1)
	i := a & (quarterTurn - 1)
	switch a / quarterTurn {
	case 0:
		return sinTable[i]
	case 1:
		return sinTable[quarterTurn-i]
	case 2:
		return -sinTable[i]
	default:
		return -sinTable[quarterTurn-i]
	}
}

// CosLookup returns cos(angle) scaled by TrigMaxRatio.
func CosLookup(angle int32) int32 {
	return SinLookup(angle + quarterTurn)
}
