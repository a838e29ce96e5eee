// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/watchface/geom"
)

// ErrClosed is returned when drawing output is requested from a closed surface.
var ErrClosed = errors.New("surface: closed")

// ImageSurface is a CPU-based surface that rasterizes through gg.
//
// Odd stroke widths are drawn on pixel centers so one pixel lines stay
// sharp. Text is drawn on a single line; strings wider than their frame are
// not wrapped.
//
// Example:
//
//	s, err := surface.NewImageSurface(144, 168)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.SetFillColor(surface.ColorWhite)
//	s.FillCircle(geom.Pt(72, 84), 72)
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	dc     *gg.Context

	fill        color.Color
	stroke      color.Color
	textColor   color.Color
	strokeWidth int

	sources []*text.FontSource
	faces   [fontCount]text.Face

	// err is the first drawing error, reported by Flush
	err error

	closed bool
}

// ImageOption configures an ImageSurface during creation.
type ImageOption func(*imageOptions)

type fontSpec struct {
	data []byte
	path string
	size float64
}

type imageOptions struct {
	fonts [fontCount]fontSpec
}

func defaultImageOptions() imageOptions {
	var o imageOptions
	o.fonts[FontGothic18] = fontSpec{data: goregular.TTF, size: FontGothic18.Size()}
	o.fonts[FontGothic18Bold] = fontSpec{data: gobold.TTF, size: FontGothic18Bold.Size()}
	o.fonts[FontOpenSans12] = fontSpec{data: goregular.TTF, size: FontOpenSans12.Size()}
	return o
}

// WithFontData replaces the font data (TTF/OTF bytes) and pixel size used
// for f.
func WithFontData(f Font, data []byte, size float64) ImageOption {
	return func(o *imageOptions) {
		if f < fontCount {
			o.fonts[f] = fontSpec{data: data, size: size}
		}
	}
}

// WithFontFile loads the font used for f from a file.
func WithFontFile(f Font, path string, size float64) ImageOption {
	return func(o *imageOptions) {
		if f < fontCount {
			o.fonts[f] = fontSpec{path: path, size: size}
		}
	}
}

// NewImageSurface creates a raster surface with the given dimensions.
// Sizes below 1 are clamped to 1. The default fonts are Go Regular and Go
// Bold; an error is returned when a configured font cannot be parsed.
func NewImageSurface(width, height int, opts ...ImageOption) (*ImageSurface, error) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	options := defaultImageOptions()
	for _, opt := range opts {
		opt(&options)
	}

	s := &ImageSurface{
		width:       width,
		height:      height,
		dc:          gg.NewContext(width, height),
		fill:        ColorBlack,
		stroke:      ColorBlack,
		textColor:   ColorBlack,
		strokeWidth: 1,
	}
	s.dc.SetLineCap(gg.LineCapRound)

	for f, spec := range options.fonts {
		face, err := s.loadFace(spec)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("surface: font %s: %w", Font(f), err)
		}
		s.faces[f] = face
	}
	return s, nil
}

func (s *ImageSurface) loadFace(spec fontSpec) (text.Face, error) {
	var (
		src *text.FontSource
		err error
	)
	if spec.path != "" {
		src, err = text.NewFontSourceFromFile(spec.path)
	} else {
		src, err = text.NewFontSource(spec.data)
	}
	if err != nil {
		return nil, err
	}
	s.sources = append(s.sources, src)
	return src.Face(spec.size), nil
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	s.dc.ClearWithColor(gg.FromColor(c))
}

// SetFillColor sets the fill color.
func (s *ImageSurface) SetFillColor(c color.Color) {
	s.fill = c
}

// SetStrokeColor sets the stroke color.
func (s *ImageSurface) SetStrokeColor(c color.Color) {
	s.stroke = c
}

// SetStrokeWidth sets the stroke width. Widths below 1 are clamped to 1.
func (s *ImageSurface) SetStrokeWidth(w int) {
	s.strokeWidth = max(w, 1)
}

// SetTextColor sets the text color.
func (s *ImageSurface) SetTextColor(c color.Color) {
	s.textColor = c
}

// pixelOffset returns the offset that puts a stroke of width w on pixel centers.
func pixelOffset(w int) float64 {
	if w%2 == 1 {
		return 0.5
	}
	return 0
}

// DrawLine strokes the segment p0-p1 with round caps.
func (s *ImageSurface) DrawLine(p0, p1 geom.Point) {
	if s.closed {
		return
	}
	o := pixelOffset(s.strokeWidth)
	s.dc.SetColor(s.stroke)
	s.dc.SetLineWidth(float64(s.strokeWidth))
	s.dc.DrawLine(float64(p0.X)+o, float64(p0.Y)+o, float64(p1.X)+o, float64(p1.Y)+o)
	s.keep(s.dc.Stroke())
}

// DrawCircle strokes a circle outline.
func (s *ImageSurface) DrawCircle(center geom.Point, radius int16) {
	if s.closed {
		return
	}
	o := pixelOffset(s.strokeWidth)
	s.dc.SetColor(s.stroke)
	s.dc.SetLineWidth(float64(s.strokeWidth))
	s.dc.DrawCircle(float64(center.X)+o, float64(center.Y)+o, float64(radius))
	s.keep(s.dc.Stroke())
}

// FillCircle fills a disc.
func (s *ImageSurface) FillCircle(center geom.Point, radius int16) {
	if s.closed {
		return
	}
	s.dc.SetColor(s.fill)
	s.dc.DrawCircle(float64(center.X)+0.5, float64(center.Y)+0.5, float64(radius)+0.5)
	s.keep(s.dc.Fill())
}

// DrawRect strokes a one pixel outline just inside r.
func (s *ImageSurface) DrawRect(r geom.Rect) {
	if s.closed {
		return
	}
	o, sz := r.Origin(), r.Size()
	s.dc.SetColor(s.stroke)
	s.dc.SetLineWidth(1)
	s.dc.DrawRectangle(float64(o.X)+0.5, float64(o.Y)+0.5, float64(sz.W)-1, float64(sz.H)-1)
	s.keep(s.dc.Stroke())
}

// FillRect fills r, rounding the corners when corners is CornersAll.
func (s *ImageSurface) FillRect(r geom.Rect, cornerRadius int16, corners Corners) {
	if s.closed {
		return
	}
	o, sz := r.Origin(), r.Size()
	s.dc.SetColor(s.fill)
	if corners == CornersAll && cornerRadius > 0 {
		s.dc.DrawRoundedRectangle(float64(o.X), float64(o.Y), float64(sz.W), float64(sz.H), float64(cornerRadius))
	} else {
		s.dc.DrawRectangle(float64(o.X), float64(o.Y), float64(sz.W), float64(sz.H))
	}
	s.keep(s.dc.Fill())
}

// DrawText draws text at the top of frame. The baseline sits one ascent
// below the frame top.
func (s *ImageSurface) DrawText(str string, font Font, frame geom.Rect, align Alignment) {
	face := s.face(font)
	if s.closed || face == nil || str == "" {
		return
	}
	o, sz := frame.Origin(), frame.Size()
	s.dc.SetFont(face)
	w, _ := s.dc.MeasureString(str)
	x := float64(o.X) + align.Offset(float64(sz.W), w)
	y := float64(o.Y) + face.Metrics().Ascent
	s.dc.SetColor(s.textColor)
	s.dc.DrawString(str, x, y)
}

// MeasureText returns the rounded-up advance width and line height of text.
func (s *ImageSurface) MeasureText(str string, font Font, frame geom.Rect, _ Alignment) geom.Size {
	face := s.face(font)
	if s.closed || face == nil || str == "" {
		return geom.Size{}
	}
	s.dc.SetFont(face)
	w, h := s.dc.MeasureString(str)
	fw := frame.Size().W
	size := geom.Size{W: int16(math.Ceil(w)), H: int16(math.Ceil(h))}
	if fw > 0 && size.W > fw {
		size.W = fw
	}
	return size
}

func (s *ImageSurface) face(f Font) text.Face {
	if f >= fontCount {
		return nil
	}
	return s.faces[f]
}

func (s *ImageSurface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Flush returns the first error hit by a draw call and clears it.
func (s *ImageSurface) Flush() error {
	err := s.err
	s.err = nil
	return err
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	src := s.dc.Image()
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// EncodePNG writes the surface contents to w as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	if s.closed {
		return ErrClosed
	}
	return s.dc.SavePNG(path)
}

// Close releases the drawing context and font sources.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for _, src := range s.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.sources = nil
	s.faces = [fontCount]text.Face{}
	if err := s.dc.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
