package watchface

import "time"

// TimeUnit is the granularity of tick events a face asks for.
type TimeUnit uint8

const (
	// MinuteUnit ticks at the start of every minute.
	MinuteUnit TimeUnit = iota

	// SecondUnit ticks at the start of every second.
	SecondUnit
)

func (u TimeUnit) String() string {
	switch u {
	case MinuteUnit:
		return "minute"
	case SecondUnit:
		return "second"
	default:
		return "unknown"
	}
}

// Duration returns the tick period.
func (u TimeUnit) Duration() time.Duration {
	if u == SecondUnit {
		return time.Second
	}
	return time.Minute
}

// Face is a watch face. The App calls Load once, then the On* handlers as
// events arrive, then Unload. Handlers only mark layers dirty or fire
// actuators; drawing happens in layer updates during the following redraw.
type Face interface {
	// Name returns a short identifier such as "obsidian".
	Name() string

	// TickUnit returns the tick granularity the face needs.
	TickUnit() TimeUnit

	// Load adds the face layers to w.
	Load(w *Window) error

	// Unload releases what Load created.
	Unload(w *Window)

	OnTick(w *Window, t time.Time)
	OnBattery(w *Window, b BatteryState)
	OnBluetooth(w *Window, connected bool)
}
