// Package watchface hosts analog watch faces on a rendering surface.
//
// # Overview
//
// A Face builds a Window of Layers. The App owns the device state (time,
// battery, Bluetooth), dispatches host events to the face one at a time and
// repaints the window onto a surface.Surface whenever a layer is dirty.
// Every layer update receives an explicit Frame; faces keep no global state.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/watchface"
//	    "github.com/gogpu/watchface/faces/obsidian"
//	    "github.com/gogpu/watchface/surface"
//	)
//
//	s, _ := surface.NewImageSurface(144, 168)
//	defer s.Close()
//
//	app, _ := watchface.NewApp(obsidian.New(obsidian.DefaultOptions()), s)
//	_ = app.Start()
//	_ = app.Dispatch(watchface.BluetoothEvent(false))
//	_ = s.SavePNG("face.png")
//
// # Architecture
//
// The module is organized into:
//   - geom: integer points, segments, rectangles and fixed-point trig
//   - placement: the date label placement search
//   - surface: the drawing capability, a gg-backed raster surface and a
//     backend registry
//   - recording: a surface that records draw commands
//   - faces/obsidian, faces/simplex: the faces
//
// # Coordinate System
//
// Uses display coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in units of geom.TrigMaxAngle per turn, 0 is 12 o'clock,
//     increasing clockwise
//
// # Concurrency
//
// Events run to completion on the caller's goroutine. Ticks is the only
// helper that starts a goroutine; it feeds a channel that Run consumes.
package watchface

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
