// Package recording provides a command-recording rendering surface.
//
// A Recorder implements surface.Surface but rasterizes nothing. Every state
// change and draw call is captured as a typed command, which makes the output
// of a watch face inspectable, diffable and replayable.
//
// # Architecture
//
// The system follows a Command Pattern with two main components:
//
//   - Recorder: Captures surface calls as commands
//   - Recording: An immutable snapshot of commands that can be played back
//
// Text measurement is deterministic: the default Measurer assigns every rune
// a fixed advance per font, so placement decisions made by a face do not
// depend on installed fonts.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(144, 168)
//
//	rec.SetFillColor(surface.ColorWhite)
//	rec.FillCircle(geom.Pt(72, 84), 72)
//
//	for _, cmd := range rec.Filter(recording.CmdFillCircle) {
//	    fmt.Println(cmd)
//	}
//
// # Playback
//
// A finished Recording can be replayed onto any other surface, for example
// to rasterize a recorded frame to PNG:
//
//	r := rec.FinishRecording()
//	img, _ := surface.NewImageSurface(r.Width(), r.Height())
//	_ = r.Playback(img)
//	_ = img.SavePNG("face.png")
package recording
