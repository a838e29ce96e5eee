package obsidian

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/geom"
	"github.com/gogpu/watchface/placement"
	"github.com/gogpu/watchface/recording"
	"github.com/gogpu/watchface/surface"
)

// monday is Mon Mar 2: "Mon" measures 27 px and "Mar 2" 45 px with the
// recorder's fixed measurer.
func monday(h, m int) time.Time {
	return time.Date(2026, time.March, 2, h, m, 0, 0, time.UTC)
}

type actuators struct {
	patterns []watchface.VibePattern
	lights   int
}

func (a *actuators) Vibrate(p watchface.VibePattern) { a.patterns = append(a.patterns, p) }
func (a *actuators) LightInteraction()               { a.lights++ }

type setup struct {
	opts      Options
	t         time.Time
	battery   uint8
	connected bool
}

func start(t *testing.T, s setup) (*watchface.App, *Face, *recording.Recorder, *actuators) {
	t.Helper()
	face := New(s.opts)
	rec := recording.NewRecorder(144, 168)
	act := &actuators{}
	app, err := watchface.NewApp(face, rec,
		watchface.WithClock(func() time.Time { return s.t }),
		watchface.WithBattery(watchface.BatteryState{ChargePercent: s.battery}),
		watchface.WithBluetooth(s.connected),
		watchface.WithActuators(act),
	)
	if err != nil {
		t.Fatalf("NewApp() = %v", err)
	}
	if err := app.Start(); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	t.Cleanup(app.Stop)
	return app, face, rec, act
}

func render(t *testing.T, s setup) (*Face, *recording.Recorder) {
	t.Helper()
	_, face, rec, _ := start(t, s)
	return face, rec
}

func texts(rec *recording.Recorder) []recording.DrawTextCommand {
	var out []recording.DrawTextCommand
	for _, c := range rec.Filter(recording.CmdDrawText) {
		out = append(out, c.(recording.DrawTextCommand))
	}
	return out
}

func TestOuterColor(t *testing.T) {
	tests := []struct {
		percent uint8
		want    any
	}{
		{0, surface.ColorRed},
		{10, surface.ColorRed},
		{11, surface.ColorOrange},
		{20, surface.ColorOrange},
		{21, surface.ColorYellow},
		{30, surface.ColorYellow},
		{31, surface.ColorDarkGray},
		{100, surface.ColorDarkGray},
	}
	for _, tt := range tests {
		if got := OuterColor(tt.percent); got != tt.want {
			t.Errorf("OuterColor(%d) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestOuterColorDrawnFirst(t *testing.T) {
	_, rec := render(t, setup{opts: DefaultOptions(), t: monday(10, 10), battery: 15, connected: true})

	cmds := rec.Commands()
	want := []recording.Command{
		recording.SetFillColorCommand{Color: surface.ColorOrange},
		recording.FillRectCommand{Rect: geom.RectXYWH(0, 0, 144, 168)},
		recording.SetFillColorCommand{Color: surface.ColorWhite},
		recording.FillCircleCommand{Center: geom.Pt(72, 84), Radius: 72},
		recording.SetStrokeColorCommand{Color: surface.ColorBlack},
		recording.SetStrokeWidthCommand{Width: 4},
		recording.DrawCircleCommand{Center: geom.Pt(72, 84), Radius: 75},
	}
	if diff := cmp.Diff(want, cmds[:len(want)]); diff != "" {
		t.Errorf("dial commands mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	w := watchface.NewWindow(nil)
	f := New(DefaultOptions())
	if err := f.Load(w); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if n := len(w.Layers()); n != 1 {
		t.Errorf("Load added %d layers, want 1", n)
	}
	if f.Name() != "obsidian" || f.TickUnit() != watchface.MinuteUnit {
		t.Errorf("Name/TickUnit = %s/%v", f.Name(), f.TickUnit())
	}
	f.Unload(w)
	if len(w.Layers()) != 0 {
		t.Error("Unload should remove the layer")
	}

	bad := DefaultOptions()
	bad.Layout.Offsets = nil
	if err := New(bad).Load(watchface.NewWindow(nil)); !errors.Is(err, placement.ErrNoOffsets) {
		t.Errorf("Load(no offsets) = %v, want ErrNoOffsets", err)
	}
}

func TestDateLabelsCenteredAtTenTen(t *testing.T) {
	face, rec := render(t, setup{opts: DefaultOptions(), t: monday(10, 10), battery: 80, connected: true})

	res := face.LastPlacement()
	if !res.Found || res.Index != 0 || res.Anchor != (geom.Point{}) {
		t.Fatalf("placement = %+v, want centered", res)
	}

	want := []recording.DrawTextCommand{
		{Text: "Mon", Font: surface.FontGothic18Bold, Frame: geom.RectXYWH(0, 100, 144, 21), Align: surface.AlignCenter},
		{Text: "Mar 2", Font: surface.FontGothic18Bold, Frame: geom.RectXYWH(0, 115, 144, 21), Align: surface.AlignCenter},
	}
	if diff := cmp.Diff(want, texts(rec)); diff != "" {
		t.Errorf("text commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDateLabelsAvoidMinuteHandAtSix(t *testing.T) {
	face, rec := render(t, setup{opts: DefaultOptions(), t: monday(6, 0), battery: 80, connected: true})

	res := face.LastPlacement()
	if !res.Found || res.Index != 5 || res.Anchor != geom.Pt(26, -13) {
		t.Fatalf("placement = index %d anchor %v found %v, want index 5 anchor (26,-13)", res.Index, res.Anchor, res.Found)
	}

	got := texts(rec)
	if len(got) != 2 {
		t.Fatalf("got %d text commands, want 2", len(got))
	}
	if got[0].Frame != geom.RectXYWH(26, 87, 144, 21) || got[1].Frame != geom.RectXYWH(26, 102, 144, 21) {
		t.Errorf("label frames = %v, %v", got[0].Frame, got[1].Frame)
	}

	h := watchface.NewHands(geom.Pt(72, 84), 72, monday(6, 0))
	for _, r := range []geom.Rect{res.DayBounds, res.DateBounds} {
		if r.CrossedBy(h.Hour) || r.CrossedBy(h.Minute) {
			t.Errorf("label box %v is crossed by a hand", r)
		}
	}
}

func TestDateLabelFallbackLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	orig := watchface.Logger()
	watchface.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { watchface.SetLogger(orig) })

	opts := DefaultOptions()
	opts.Layout.Offsets = []geom.Point{{X: 0, Y: 0}}
	face, rec := render(t, setup{opts: opts, t: monday(6, 0), battery: 80, connected: true})

	if res := face.LastPlacement(); res.Found || res.Index != 0 {
		t.Errorf("placement = %+v, want fallback", res)
	}
	if got := texts(rec); len(got) != 2 || got[0].Frame != geom.RectXYWH(0, 100, 144, 21) {
		t.Errorf("fallback labels = %v", got)
	}
	if !strings.Contains(buf.String(), "no free label position") {
		t.Errorf("log output = %q, want fallback warning", buf.String())
	}
}

func TestHourTicks(t *testing.T) {
	tests := []struct {
		name      string
		long, fat bool
		twelve    geom.Point // inner end of the 12 o'clock tick
		widths    []int
	}{
		{"long fat", true, true, geom.Pt(72, 22), []int{2, 4, 2, 2, 4, 2, 2, 4, 2, 2, 4, 2, 2, 1}},
		{"long", true, false, geom.Pt(72, 22), []int{2, 1}},
		{"short", false, false, geom.Pt(72, 18), []int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.LongTicks, opts.FatTicks = tt.long, tt.fat
			_, rec := render(t, setup{opts: opts, t: monday(10, 10), battery: 80, connected: true})

			lines := rec.Filter(recording.CmdDrawLine)
			first := lines[0].(recording.DrawLineCommand)
			if first.P0 != geom.Pt(72, 12) || first.P1 != tt.twelve {
				t.Errorf("12 o'clock tick = %v, want (72,12)-%v", first, tt.twelve)
			}

			// Stroke widths set between the dial ring and the first minute tick.
			var widths []int
			for _, c := range rec.Commands()[7:] {
				if w, ok := c.(recording.SetStrokeWidthCommand); ok {
					widths = append(widths, w.Width)
					if w.Width == 1 {
						break
					}
				}
			}
			if diff := cmp.Diff(tt.widths, widths); diff != "" {
				t.Errorf("tick widths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMinuteTicks(t *testing.T) {
	// 12 hour ticks, minute ticks, 6 hand lines, 1 battery nub.
	tests := []struct {
		onlyRelevant bool
		wantLines    int
	}{
		{false, 12 + 60 + 6 + 1},
		{true, 12 + 5 + 6 + 1},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.OnlyRelevantMinuteTicks = tt.onlyRelevant
		_, rec := render(t, setup{opts: opts, t: monday(10, 17), battery: 80, connected: true})

		if n := len(rec.Filter(recording.CmdDrawLine)); n != tt.wantLines {
			t.Errorf("OnlyRelevantMinuteTicks=%v: %d lines, want %d", tt.onlyRelevant, n, tt.wantLines)
		}
	}

	opts := DefaultOptions()
	opts.OnlyRelevantMinuteTicks = true
	_, rec := render(t, setup{opts: opts, t: monday(10, 17), battery: 80, connected: true})
	// The 15 minute tick is the first minute tick after the hour ticks.
	tick := rec.Filter(recording.CmdDrawLine)[12].(recording.DrawLineCommand)
	if tick.P0 != geom.Pt(144, 84) || tick.P1 != geom.Pt(141, 84) {
		t.Errorf("first relevant minute tick = %v, want (144,84)-(141,84)", tick)
	}
}

func TestNumerals(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowNumbers = true
	_, rec := render(t, setup{opts: opts, t: monday(10, 10), battery: 80, connected: true})

	got := texts(rec)
	if len(got) != 14 {
		t.Fatalf("got %d texts, want 12 numerals and 2 labels", len(got))
	}
	if got[0].Text != "12" || got[0].Frame != geom.RectXYWH(63, 26, 18, 22) || got[0].Font != surface.FontOpenSans12 {
		t.Errorf("first numeral = %+v", got[0])
	}
	if got[3].Text != "3" || got[3].Frame != geom.RectXYWH(121, 77, 9, 22) {
		t.Errorf("numeral 3 = %+v", got[3])
	}

	opts = DefaultOptions()
	opts.OnlyRelevantNumber = true
	_, rec = render(t, setup{opts: opts, t: monday(22, 10), battery: 80, connected: true})
	got = texts(rec)
	if len(got) != 3 || got[0].Text != "10" || got[0].Frame != geom.RectXYWH(17, 48, 18, 22) {
		t.Errorf("relevant numeral = %+v", got)
	}
}

func TestBluetooth(t *testing.T) {
	badge := recording.FillRectCommand{Rect: geom.RectXYWH(67, 38, 11, 17), CornerRadius: 2, Corners: surface.CornersAll}
	hasBadge := func(rec *recording.Recorder) bool {
		for _, c := range rec.Filter(recording.CmdFillRect) {
			if c == badge {
				return true
			}
		}
		return false
	}

	app, _, rec, act := start(t, setup{opts: DefaultOptions(), t: monday(10, 10), battery: 80, connected: true})
	if hasBadge(rec) {
		t.Error("Bluetooth badge drawn while connected")
	}

	rec.Reset()
	if err := app.Dispatch(watchface.BluetoothEvent(false)); err != nil {
		t.Fatalf("Dispatch() = %v", err)
	}
	if !hasBadge(rec) {
		t.Error("Bluetooth badge missing while disconnected")
	}
	if diff := cmp.Diff([]watchface.VibePattern{watchface.VibeDoublePulse}, act.patterns); diff != "" {
		t.Errorf("vibe patterns mismatch (-want +got):\n%s", diff)
	}
	if act.lights != 1 {
		t.Errorf("backlight requests = %d, want 1", act.lights)
	}

	glyph := recording.DrawLineCommand{P0: geom.Pt(72, 40), P1: geom.Pt(72, 52)}
	found := false
	for _, c := range rec.Filter(recording.CmdDrawLine) {
		if c == glyph {
			found = true
		}
	}
	if !found {
		t.Errorf("glyph stem %v not drawn", glyph)
	}
}

func TestBatteryGauge(t *testing.T) {
	app, _, rec, _ := start(t, setup{opts: DefaultOptions(), t: monday(10, 10), battery: 55, connected: true})

	cmds := rec.Commands()
	want := []recording.Command{
		recording.SetStrokeColorCommand{Color: surface.ColorBlack},
		recording.SetFillColorCommand{Color: surface.ColorBlack},
		recording.DrawRectCommand{Rect: geom.RectXYWH(125, 3, 14, 8)},
		recording.FillRectCommand{Rect: geom.RectXYWH(127, 5, 5, 4)},
		recording.SetStrokeWidthCommand{Width: 1},
		recording.DrawLineCommand{P0: geom.Pt(139, 5), P1: geom.Pt(139, 8)},
	}
	if diff := cmp.Diff(want, cmds[len(cmds)-len(want):]); diff != "" {
		t.Errorf("battery commands mismatch (-want +got):\n%s", diff)
	}

	rec.Reset()
	if err := app.Dispatch(watchface.BatteryEvent(watchface.BatteryState{ChargePercent: 5})); err != nil {
		t.Fatal(err)
	}
	cmds = rec.Commands()
	if got := cmds[0]; got != (recording.SetFillColorCommand{Color: surface.ColorRed}) {
		t.Errorf("first command after battery drop = %v, want red fill", got)
	}
	if got := cmds[len(cmds)-3]; got != (recording.FillRectCommand{Rect: geom.RectXYWH(127, 5, 0, 4)}) {
		t.Errorf("gauge fill = %v, want empty", got)
	}
}

func TestBatteryText(t *testing.T) {
	opts := DefaultOptions()
	opts.BatteryAsText = true
	_, rec := render(t, setup{opts: opts, t: monday(10, 10), battery: 55, connected: true})

	got := texts(rec)
	last := got[len(got)-1]
	want := recording.DrawTextCommand{Text: "55", Font: surface.FontOpenSans12, Frame: geom.RectXYWH(118, 1, 22, 11), Align: surface.AlignCenter}
	if last != want {
		t.Errorf("battery text = %+v, want %+v", last, want)
	}

	cmds := rec.Commands()
	nub := recording.DrawLineCommand{P0: geom.Pt(140, 5), P1: geom.Pt(140, 10)}
	if cmds[len(cmds)-1] != nub {
		t.Errorf("last command = %v, want %v", cmds[len(cmds)-1], nub)
	}
}

func TestTickRedraws(t *testing.T) {
	app, face, _, _ := start(t, setup{opts: DefaultOptions(), t: monday(10, 10), battery: 80, connected: true})
	if err := app.Dispatch(watchface.TickEvent(monday(6, 0))); err != nil {
		t.Fatal(err)
	}
	if app.State().Redraws != 2 {
		t.Errorf("Redraws = %d, want 2", app.State().Redraws)
	}
	if face.LastPlacement().Index != 5 {
		t.Errorf("placement after tick = %d, want 5", face.LastPlacement().Index)
	}
}

func TestRenderToImage(t *testing.T) {
	img, err := surface.NewImageSurface(144, 168)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	app, err := watchface.NewApp(New(DefaultOptions()), img,
		watchface.WithClock(func() time.Time { return monday(10, 10) }),
		watchface.WithBluetooth(false),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := app.Start(); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	defer app.Stop()

	px := img.Snapshot()
	if c := px.RGBAAt(76, 84); c.R > 64 || c.G > 64 || c.B > 64 {
		t.Errorf("center dot pixel = %v, want black", c)
	}
	if c := px.RGBAAt(1, 1); c != surface.ColorDarkGray {
		t.Errorf("outer pixel = %v, want dark gray", c)
	}
}
