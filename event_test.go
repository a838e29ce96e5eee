package watchface

import (
	"context"
	"testing"
	"time"
)

func TestEventKind_String(t *testing.T) {
	tests := []struct {
		k    EventKind
		want string
	}{
		{EventTick, "tick"},
		{EventBattery, "battery"},
		{EventBluetooth, "bluetooth"},
		{EventKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestTimeUnit(t *testing.T) {
	if MinuteUnit.Duration() != time.Minute || SecondUnit.Duration() != time.Second {
		t.Error("unexpected TimeUnit durations")
	}
	if MinuteUnit.String() != "minute" || SecondUnit.String() != "second" || TimeUnit(9).String() != "unknown" {
		t.Error("unexpected TimeUnit names")
	}
}

func TestUnknownEventError(t *testing.T) {
	err := &UnknownEventError{Kind: 7}
	if got, want := err.Error(), "watchface: unknown event kind 7"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTicks(t *testing.T) {
	boundary := time.Date(2026, time.March, 2, 10, 10, 0, 0, time.UTC)
	clock := func() time.Time { return boundary.Add(-time.Millisecond) }

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ticks := Ticks(ctx, MinuteUnit, clock)
	for i := range 3 {
		select {
		case ev := <-ticks:
			if ev.Kind != EventTick {
				t.Fatalf("tick %d kind = %v, want tick", i, ev.Kind)
			}
			if !ev.Time.Equal(boundary) {
				t.Errorf("tick %d time = %v, want %v", i, ev.Time, boundary)
			}
		case <-ctx.Done():
			t.Fatalf("timed out waiting for tick %d", i)
		}
	}
}

func TestTicksClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticks := Ticks(ctx, MinuteUnit, nil)
	cancel()

	select {
	case _, ok := <-ticks:
		if ok {
			// A tick may race with cancellation; the next receive must see the close.
			if _, ok := <-ticks; ok {
				t.Error("channel still open after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
