package recording

import (
	"fmt"
	"image/color"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/gogpu/watchface/geom"
	"github.com/gogpu/watchface/surface"
)

// Measurer returns the size text occupies when drawn in font.
type Measurer func(text string, font surface.Font) geom.Size

// Recorder captures surface calls as commands.
// It implements surface.Surface; nothing is rasterized.
//
// Example:
//
//	rec := recording.NewRecorder(144, 168)
//	face.Render(rec)
//	lines := rec.Filter(recording.CmdDrawLine)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width    int
	height   int
	commands []Command
	measure  Measurer
	closed   bool
}

var _ surface.Surface = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*Recorder)

// WithMeasurer replaces the text measurement function.
func WithMeasurer(m Measurer) Option {
	return func(r *Recorder) {
		if m != nil {
			r.measure = m
		}
	}
}

// NewRecorder creates a new Recorder for the given dimensions.
// Sizes below 1 are clamped to 1.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	r := &Recorder{
		width:   max(width, 1),
		height:  max(height, 1),
		measure: FixedMeasure,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FixedMeasure measures text with a fixed advance per rune: 9 px for
// FontGothic18Bold, 8 px for FontGothic18 and 6 px for FontOpenSans12. The
// line height is the font size plus 3.
func FixedMeasure(text string, font surface.Font) geom.Size {
	if text == "" {
		return geom.Size{}
	}
	var advance int
	switch font {
	case surface.FontGothic18Bold:
		advance = 9
	case surface.FontOpenSans12:
		advance = 6
	default:
		advance = 8
	}
	return geom.Size{
		W: int16(advance * utf8.RuneCountInString(text)),
		H: int16(font.Size()) + 3,
	}
}

func (r *Recorder) record(c Command) {
	if r.closed {
		return
	}
	r.commands = append(r.commands, c)
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Clear records a ClearCommand.
func (r *Recorder) Clear(c color.Color) {
	r.record(ClearCommand{Color: rgba(c)})
}

// SetFillColor records a SetFillColorCommand.
func (r *Recorder) SetFillColor(c color.Color) {
	r.record(SetFillColorCommand{Color: rgba(c)})
}

// SetStrokeColor records a SetStrokeColorCommand.
func (r *Recorder) SetStrokeColor(c color.Color) {
	r.record(SetStrokeColorCommand{Color: rgba(c)})
}

// SetStrokeWidth records a SetStrokeWidthCommand.
func (r *Recorder) SetStrokeWidth(w int) {
	r.record(SetStrokeWidthCommand{Width: w})
}

// SetTextColor records a SetTextColorCommand.
func (r *Recorder) SetTextColor(c color.Color) {
	r.record(SetTextColorCommand{Color: rgba(c)})
}

// DrawLine records a DrawLineCommand.
func (r *Recorder) DrawLine(p0, p1 geom.Point) {
	r.record(DrawLineCommand{P0: p0, P1: p1})
}

// DrawCircle records a DrawCircleCommand.
func (r *Recorder) DrawCircle(center geom.Point, radius int16) {
	r.record(DrawCircleCommand{Center: center, Radius: radius})
}

// FillCircle records a FillCircleCommand.
func (r *Recorder) FillCircle(center geom.Point, radius int16) {
	r.record(FillCircleCommand{Center: center, Radius: radius})
}

// DrawRect records a DrawRectCommand.
func (r *Recorder) DrawRect(rect geom.Rect) {
	r.record(DrawRectCommand{Rect: rect})
}

// FillRect records a FillRectCommand.
func (r *Recorder) FillRect(rect geom.Rect, cornerRadius int16, corners surface.Corners) {
	r.record(FillRectCommand{Rect: rect, CornerRadius: cornerRadius, Corners: corners})
}

// DrawText records a DrawTextCommand.
func (r *Recorder) DrawText(text string, font surface.Font, frame geom.Rect, align surface.Alignment) {
	r.record(DrawTextCommand{Text: text, Font: font, Frame: frame, Align: align})
}

// MeasureText measures text with the configured Measurer. The width is
// clamped to the frame width.
func (r *Recorder) MeasureText(text string, font surface.Font, frame geom.Rect, _ surface.Alignment) geom.Size {
	size := r.measure(text, font)
	if fw := frame.Size().W; fw > 0 && size.W > fw {
		size.W = fw
	}
	return size
}

// Flush is a no-op; recording cannot fail.
func (r *Recorder) Flush() error {
	return nil
}

// Close stops recording. Commands recorded so far stay available.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	return slices.Clone(r.commands)
}

// Filter returns the recorded commands of the given types, in order.
func (r *Recorder) Filter(types ...CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if slices.Contains(types, c.Type()) {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Dump writes one numbered line per recorded command to w.
func (r *Recorder) Dump(w io.Writer) error {
	for i, c := range r.commands {
		if _, err := fmt.Fprintf(w, "%4d %v\n", i, c); err != nil {
			return err
		}
	}
	return nil
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder can keep recording afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: slices.Clone(r.commands),
	}
}

// Recording is an immutable container for recorded commands.
// It can be replayed onto any surface.Surface.
type Recording struct {
	width    int
	height   int
	commands []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording onto s and flushes it.
func (r *Recording) Playback(s surface.Surface) error {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			s.Clear(c.Color)
		case SetFillColorCommand:
			s.SetFillColor(c.Color)
		case SetStrokeColorCommand:
			s.SetStrokeColor(c.Color)
		case SetStrokeWidthCommand:
			s.SetStrokeWidth(c.Width)
		case SetTextColorCommand:
			s.SetTextColor(c.Color)
		case DrawLineCommand:
			s.DrawLine(c.P0, c.P1)
		case DrawCircleCommand:
			s.DrawCircle(c.Center, c.Radius)
		case FillCircleCommand:
			s.FillCircle(c.Center, c.Radius)
		case DrawRectCommand:
			s.DrawRect(c.Rect)
		case FillRectCommand:
			s.FillRect(c.Rect, c.CornerRadius, c.Corners)
		case DrawTextCommand:
			s.DrawText(c.Text, c.Font, c.Frame, c.Align)
		default:
			return fmt.Errorf("recording: unknown command type %v", cmd.Type())
		}
	}
	return s.Flush()
}
