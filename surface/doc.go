// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing target the watch faces render onto.
//
// Surface mirrors the small set of primitives a watch display offers: lines,
// circles, rectangles and single-line text, all in integer pixel
// coordinates, with stroke/fill/text colors held as state between calls.
// Faces never talk to a concrete backend, so the same face code runs against:
//
//   - ImageSurface: software raster rendering through github.com/gogpu/gg
//   - recording.Recorder: an inspectable command list, used by tests
//   - third-party backends via the registry
//
// # Registry
//
// Backends register a factory under a name and priority:
//
//	surface.Register("image", 10, factory, nil)
//
//	// Later:
//	s, err := surface.NewSurfaceByName("image", 144, 168)
//
// # Usage
//
//	s, err := surface.NewImageSurface(144, 168)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.SetFillColor(surface.ColorWhite)
//	s.FillCircle(geom.Pt(72, 84), 72)
//	s.SetStrokeColor(surface.ColorBlack)
//	s.SetStrokeWidth(4)
//	s.DrawLine(geom.Pt(72, 84), geom.Pt(72, 22))
//	err = s.SavePNG("face.png")
//
// Draw calls do not return errors. Backends that can fail keep the first
// error and report it from Flush.
package surface
