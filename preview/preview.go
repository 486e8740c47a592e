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

// Package preview draws GeoJSON contour features for visual inspection.
//
// Features are painted in collection order using their simplestyle
// properties ("stroke", "stroke-width", "stroke-opacity", "fill",
// "fill-opacity").  [Image] and [WritePNG] produce raster images,
// [WritePDF] produces a single page PDF file.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Options controls the size and framing of a preview.
type Options struct {
	// Width and Height give the size of the output in pixels (PNG) or
	// PDF points.  The default is 512 × 512.
	Width, Height int

	// Margin is the space left free around the features.  Default: 8.
	Margin float64

	// Bound is the region shown.  If nil, the bounding box of all features
	// is used.
	Bound *orb.Bound

	// Background is the page color.  Default: white.
	Background color.Color
}

func (o *Options) withDefaults() Options {
	var res Options
	if o != nil {
		res = *o
	}
	if res.Width <= 0 {
		res.Width = 512
	}
	if res.Height <= 0 {
		res.Height = 512
	}
	if res.Margin == 0 {
		res.Margin = 8
	}
	if res.Background == nil {
		res.Background = color.White
	}
	return res
}

func (o *Options) clip() rect.Rect {
	return rect.Rect{URx: float64(o.Width), URy: float64(o.Height)}
}

// bound returns the region to show.
func (o *Options) bound(fc *geojson.FeatureCollection) orb.Bound {
	if o.Bound != nil {
		return *o.Bound
	}
	var b orb.Bound
	for i, f := range fc.Features {
		if i == 0 {
			b = f.Geometry.Bound()
		} else {
			b = b.Union(f.Geometry.Bound())
		}
	}
	return b
}

// fit returns the matrix which maps b into clip, keeping the aspect ratio
// and centering the result.  If flipY is set, the y axis points down in
// device space.
func fit(b orb.Bound, clip rect.Rect, margin float64, flipY bool) matrix.Matrix {
	w := clip.URx - clip.LLx - 2*margin
	h := clip.URy - clip.LLy - 2*margin
	dx := b.Max[0] - b.Min[0]
	dy := b.Max[1] - b.Min[1]

	s := 1.0
	switch {
	case dx > 0 && dy > 0:
		s = min(w/dx, h/dy)
	case dx > 0:
		s = w / dx
	case dy > 0:
		s = h / dy
	}

	ox := clip.LLx + margin + (w-dx*s)/2
	oy := clip.LLy + margin + (h-dy*s)/2
	if flipY {
		return matrix.Matrix{s, 0, 0, -s, ox - s*b.Min[0], clip.LLy + clip.URy - oy + s*b.Min[1]}
	}
	return matrix.Matrix{s, 0, 0, s, ox - s*b.Min[0], oy - s*b.Min[1]}
}

// style holds the paint settings of one feature.
type style struct {
	stroke      color.NRGBA
	strokeWidth float64
	fill        color.NRGBA
	hasFill     bool
}

func styleOf(props geojson.Properties) style {
	s := style{
		stroke:      parseColor(stringProp(props, "stroke", "#000000"), numberProp(props, "stroke-opacity", 1)),
		strokeWidth: numberProp(props, "stroke-width", 1),
	}
	if fill, ok := props["fill"].(string); ok {
		s.fill = parseColor(fill, numberProp(props, "fill-opacity", 0.9))
		s.hasFill = true
	}
	return s
}

// numberProp returns a numeric property, or def if the property is missing
// or not a number.
func numberProp(props geojson.Properties, key string, def float64) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func stringProp(props geojson.Properties, key, def string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return def
}

// parseColor converts a hex color and an opacity to a color.NRGBA.
// Unparsable colors are drawn black.
func parseColor(hex string, opacity float64) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{}
	}
	r, g, b := c.Clamped().RGB255()
	a := uint8(max(0, min(1, opacity))*255 + 0.5)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func vecRing(pts []orb.Point) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return out
}

// polygonRings returns the rings of a Polygon or MultiPolygon geometry.
func polygonRings(g orb.Geometry) [][]vec.Vec2 {
	var rings [][]vec.Vec2
	switch g := g.(type) {
	case orb.Polygon:
		for _, r := range g {
			rings = append(rings, vecRing(r))
		}
	case orb.MultiPolygon:
		for _, p := range g {
			for _, r := range p {
				rings = append(rings, vecRing(r))
			}
		}
	}
	return rings
}

// Image renders the features of fc.
func Image(fc *geojson.FeatureCollection, opt *Options) *image.NRGBA {
	o := opt.withDefaults()
	img := image.NewNRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	r := NewRenderer(o.clip())
	r.CTM = fit(o.bound(fc), r.Clip, o.Margin, true)
	for _, f := range fc.Features {
		s := styleOf(f.Properties)
		r.Width = s.strokeWidth
		switch g := f.Geometry.(type) {
		case orb.LineString:
			r.Stroke(img, vecRing(g), s.stroke)
		case orb.Polygon, orb.MultiPolygon:
			rings := polygonRings(g)
			if s.hasFill {
				r.Fill(img, rings, s.fill)
			}
			if s.strokeWidth > 0 {
				for _, ring := range rings {
					r.Stroke(img, ring, s.stroke)
				}
			}
		}
	}
	return img
}

// WritePNG renders the features of fc and writes a PNG image to w.
func WritePNG(w io.Writer, fc *geojson.FeatureCollection, opt *Options) error {
	return png.Encode(w, Image(fc, opt))
}

// WritePNGFile renders the features of fc into the named PNG file.
func WritePNGFile(name string, fc *geojson.FeatureCollection, opt *Options) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("png preview: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WritePNG(f, fc, opt)
}
