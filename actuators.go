package watchface

import (
	"strings"
	"time"
)

// VibePattern is a vibration sequence of alternating on and off segments,
// starting with on.
type VibePattern struct {
	Durations []time.Duration
}

// NewVibePattern returns a pattern from on/off segment durations.
func NewVibePattern(durations ...time.Duration) VibePattern {
	return VibePattern{Durations: append([]time.Duration(nil), durations...)}
}

// VibeDoublePulse is two short pulses.
var VibeDoublePulse = NewVibePattern(100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)

// Total returns the length of the whole pattern.
func (p VibePattern) Total() time.Duration {
	var d time.Duration
	for _, s := range p.Durations {
		d += s
	}
	return d
}

// On returns the time the motor is running.
func (p VibePattern) On() time.Duration {
	var d time.Duration
	for i := 0; i < len(p.Durations); i += 2 {
		d += p.Durations[i]
	}
	return d
}

func (p VibePattern) String() string {
	var b strings.Builder
	for i, d := range p.Durations {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i%2 == 0 {
			b.WriteString("on:")
		} else {
			b.WriteString("off:")
		}
		b.WriteString(d.String())
	}
	return b.String()
}

// Actuators are the fire-and-forget device outputs a face may trigger.
type Actuators interface {
	// Vibrate queues a vibration pattern.
	Vibrate(p VibePattern)

	// LightInteraction turns the backlight on as if the user pressed a button.
	LightInteraction()
}

// NopActuators ignores all requests.
type NopActuators struct{}

func (NopActuators) Vibrate(VibePattern) {}
func (NopActuators) LightInteraction()   {}

// LogActuators reports requests to Logger at info level.
type LogActuators struct{}

func (LogActuators) Vibrate(p VibePattern) {
	Logger().Info("vibrate", "pattern", p.String(), "total", p.Total())
}

func (LogActuators) LightInteraction() {
	Logger().Info("backlight")
}
