package recording

import "github.com/gogpu/watchface/surface"

func init() {
	surface.Register("recording", surface.PriorityRecording, func(opts surface.Options) (surface.Surface, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	}, nil)
}
