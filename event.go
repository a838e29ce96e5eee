package watchface

import "time"

// EventKind identifies the type of an Event.
type EventKind uint8

const (
	// EventTick carries a new local time.
	EventTick EventKind = iota

	// EventBattery carries a new battery state.
	EventBattery

	// EventBluetooth carries a new connection state.
	EventBluetooth
)

var eventKindNames = [...]string{
	EventTick:      "tick",
	EventBattery:   "battery",
	EventBluetooth: "bluetooth",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is a host notification. Only the fields of its Kind are meaningful.
type Event struct {
	Kind      EventKind
	Time      time.Time
	Battery   BatteryState
	Connected bool
}

// TickEvent returns a tick event for t.
func TickEvent(t time.Time) Event {
	return Event{Kind: EventTick, Time: t}
}

// BatteryEvent returns a battery event.
func BatteryEvent(b BatteryState) Event {
	return Event{Kind: EventBattery, Battery: b}
}

// BluetoothEvent returns a connection event.
func BluetoothEvent(connected bool) Event {
	return Event{Kind: EventBluetooth, Connected: connected}
}
