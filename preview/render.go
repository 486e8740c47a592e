// seehuhn.de/go/contour - convert contour plots to GeoJSON
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// zeroLengthThreshold is the device space length below which a segment is
// skipped when stroking.
const zeroLengthThreshold = 1e-9

// strokeSegment is a line segment in device coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// Renderer paints rings and polylines onto an image.
//
// Shapes are accumulated with the nonzero winding rule, so that clockwise
// holes inside counter-clockwise outer rings stay empty.
type Renderer struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip is the device space rectangle which receives paint.
	// The rasterizer covers [0, URx] × [0, URy].
	Clip rect.Rect

	// Width is the line width in device space units.
	Width float64

	ras  *vector.Rasterizer
	segs []strokeSegment
}

// NewRenderer returns a Renderer for the given clip rectangle, with the
// identity CTM and a line width of 1.
func NewRenderer(clip rect.Rect) *Renderer {
	r := &Renderer{
		CTM:   matrix.Identity,
		Clip:  clip,
		Width: 1,
	}
	w, h := r.size()
	r.ras = vector.NewRasterizer(w, h)
	return r
}

func (r *Renderer) size() (int, int) {
	return int(math.Ceil(r.Clip.URx)), int(math.Ceil(r.Clip.URy))
}

// toDevice applies the CTM to a point.
func (r *Renderer) toDevice(p vec.Vec2) vec.Vec2 {
	return apply(r.CTM, p)
}

func (r *Renderer) reset() {
	w, h := r.size()
	r.ras.Reset(w, h)
	r.ras.DrawOp = draw.Over
}

func (r *Renderer) moveTo(p vec.Vec2) {
	r.ras.MoveTo(float32(p.X), float32(p.Y))
}

func (r *Renderer) lineTo(p vec.Vec2) {
	r.ras.LineTo(float32(p.X), float32(p.Y))
}

// Fill paints the area enclosed by the given rings.  The rings are filled
// together, so holes must have the opposite orientation of their outer ring.
func (r *Renderer) Fill(dst draw.Image, rings [][]vec.Vec2, c color.Color) {
	r.reset()
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		r.moveTo(r.toDevice(ring[0]))
		for _, p := range ring[1:] {
			r.lineTo(r.toDevice(p))
		}
		r.ras.ClosePath()
	}
	r.paint(dst, c)
}

// Stroke paints a polyline of width r.Width.  Every segment becomes a
// rectangle, extended by half the line width at both ends to cover the
// corners.
func (r *Renderer) Stroke(dst draw.Image, line []vec.Vec2, c color.Color) {
	r.segs = r.segs[:0]
	for i := 1; i < len(line); i++ {
		r.addStrokeSegment(r.toDevice(line[i-1]), r.toDevice(line[i]))
	}
	if len(r.segs) == 0 {
		return
	}

	r.reset()
	d := r.Width / 2
	for _, seg := range r.segs {
		a := seg.A.Sub(seg.T.Mul(d))
		b := seg.B.Add(seg.T.Mul(d))
		n := seg.N.Mul(d)
		r.moveTo(a.Add(n))
		r.lineTo(b.Add(n))
		r.lineTo(b.Sub(n))
		r.lineTo(a.Sub(n))
		r.ras.ClosePath()
	}
	r.paint(dst, c)
}

// addStrokeSegment adds a device space segment to the stroke buffer.
func (r *Renderer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

func (r *Renderer) paint(dst draw.Image, c color.Color) {
	w, h := r.size()
	r.ras.Draw(dst, image.Rect(0, 0, w, h), image.NewUniform(c), image.Point{})
}
