package recording

import (
	"fmt"
	"image/color"

	"github.com/gogpu/watchface/geom"
	"github.com/gogpu/watchface/surface"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one surface.Surface call.
type CommandType uint8

const (
	// State commands
	CmdClear          CommandType = iota // Clear the whole surface
	CmdSetFillColor                      // Set fill color
	CmdSetStrokeColor                    // Set stroke color
	CmdSetStrokeWidth                    // Set stroke width
	CmdSetTextColor                      // Set text color

	// Drawing commands
	CmdDrawLine   // Stroke a line
	CmdDrawCircle // Stroke a circle
	CmdFillCircle // Fill a disc
	CmdDrawRect   // Stroke a rectangle outline
	CmdFillRect   // Fill a rectangle
	CmdDrawText   // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:          "Clear",
	CmdSetFillColor:   "SetFillColor",
	CmdSetStrokeColor: "SetStrokeColor",
	CmdSetStrokeWidth: "SetStrokeWidth",
	CmdSetTextColor:   "SetTextColor",
	CmdDrawLine:       "DrawLine",
	CmdDrawCircle:     "DrawCircle",
	CmdFillCircle:     "FillCircle",
	CmdDrawRect:       "DrawRect",
	CmdFillRect:       "FillRect",
	CmdDrawText:       "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// rgba normalizes any color to color.RGBA so that commands compare by value.
func rgba(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// ClearCommand fills the whole surface with a color.
type ClearCommand struct {
	Color color.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

func (c ClearCommand) String() string { return "Clear " + hex(c.Color) }

// SetFillColorCommand sets the fill color.
type SetFillColorCommand struct {
	Color color.RGBA
}

// Type implements Command.
func (SetFillColorCommand) Type() CommandType { return CmdSetFillColor }

func (c SetFillColorCommand) String() string { return "SetFillColor " + hex(c.Color) }

// SetStrokeColorCommand sets the stroke color.
type SetStrokeColorCommand struct {
	Color color.RGBA
}

// Type implements Command.
func (SetStrokeColorCommand) Type() CommandType { return CmdSetStrokeColor }

func (c SetStrokeColorCommand) String() string { return "SetStrokeColor " + hex(c.Color) }

// SetStrokeWidthCommand sets the stroke width in pixels.
type SetStrokeWidthCommand struct {
	Width int
}

// Type implements Command.
func (SetStrokeWidthCommand) Type() CommandType { return CmdSetStrokeWidth }

func (c SetStrokeWidthCommand) String() string { return fmt.Sprintf("SetStrokeWidth %d", c.Width) }

// SetTextColorCommand sets the text color.
type SetTextColorCommand struct {
	Color color.RGBA
}

// Type implements Command.
func (SetTextColorCommand) Type() CommandType { return CmdSetTextColor }

func (c SetTextColorCommand) String() string { return "SetTextColor " + hex(c.Color) }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// DrawLineCommand strokes the segment P0-P1.
type DrawLineCommand struct {
	P0, P1 geom.Point
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

func (c DrawLineCommand) String() string { return fmt.Sprintf("DrawLine %v %v", c.P0, c.P1) }

// Segment returns the stroked segment.
func (c DrawLineCommand) Segment() geom.Segment { return geom.Seg(c.P0, c.P1) }

// DrawCircleCommand strokes a circle outline.
type DrawCircleCommand struct {
	Center geom.Point
	Radius int16
}

// Type implements Command.
func (DrawCircleCommand) Type() CommandType { return CmdDrawCircle }

func (c DrawCircleCommand) String() string {
	return fmt.Sprintf("DrawCircle %v r=%d", c.Center, c.Radius)
}

// FillCircleCommand fills a disc.
type FillCircleCommand struct {
	Center geom.Point
	Radius int16
}

// Type implements Command.
func (FillCircleCommand) Type() CommandType { return CmdFillCircle }

func (c FillCircleCommand) String() string {
	return fmt.Sprintf("FillCircle %v r=%d", c.Center, c.Radius)
}

// DrawRectCommand strokes a rectangle outline.
type DrawRectCommand struct {
	Rect geom.Rect
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

func (c DrawRectCommand) String() string { return fmt.Sprintf("DrawRect %v", c.Rect) }

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect         geom.Rect
	CornerRadius int16
	Corners      surface.Corners
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

func (c FillRectCommand) String() string {
	return fmt.Sprintf("FillRect %v r=%d corners=%v", c.Rect, c.CornerRadius, c.Corners)
}

// DrawTextCommand draws one line of text into a frame.
type DrawTextCommand struct {
	Text  string
	Font  surface.Font
	Frame geom.Rect
	Align surface.Alignment
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

func (c DrawTextCommand) String() string {
	return fmt.Sprintf("DrawText %q %v %v %v", c.Text, c.Font, c.Frame, c.Align)
}
