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
	"fmt"
	imgcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF draws the features of fc onto a single page PDF file.
//
// The page is painted in shades of gray.  Opacities are applied by
// blending with a white background, so overlapping features hide each
// other.
func WritePDF(name string, fc *geojson.FeatureCollection, opt *Options) error {
	o := opt.withDefaults()
	paper := &pdf.Rectangle{
		URx: float64(o.Width),
		URy: float64(o.Height),
	}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("pdf preview: %w", err)
	}

	page.SetFillColor(color.DeviceGray(gray(o.Background, 1)))
	page.Rectangle(0, 0, float64(o.Width), float64(o.Height))
	page.Fill()

	// PDF user space already has y pointing up.
	ctm := fit(o.bound(fc), o.clip(), o.Margin, false)
	toPage := func(p orb.Point) vec.Vec2 {
		return apply(ctm, vec.Vec2{X: p[0], Y: p[1]})
	}
	addRings := func(rings [][]vec.Vec2) {
		for _, ring := range rings {
			if len(ring) == 0 {
				continue
			}
			p := apply(ctm, ring[0])
			page.MoveTo(p.X, p.Y)
			for _, q := range ring[1:] {
				p = apply(ctm, q)
				page.LineTo(p.X, p.Y)
			}
			page.ClosePath()
		}
	}

	for _, f := range fc.Features {
		s := styleOf(f.Properties)
		switch g := f.Geometry.(type) {
		case orb.LineString:
			if s.strokeWidth <= 0 || len(g) < 2 {
				continue
			}
			page.SetStrokeColor(color.DeviceGray(gray(s.stroke, float64(s.stroke.A)/255)))
			page.SetLineWidth(s.strokeWidth)
			p := toPage(g[0])
			page.MoveTo(p.X, p.Y)
			for _, q := range g[1:] {
				p = toPage(q)
				page.LineTo(p.X, p.Y)
			}
			page.Stroke()
		case orb.Polygon, orb.MultiPolygon:
			rings := polygonRings(g)
			if len(rings) == 0 {
				continue
			}
			if s.hasFill {
				page.SetFillColor(color.DeviceGray(gray(s.fill, float64(s.fill.A)/255)))
				addRings(rings)
				page.Fill()
			}
			if s.strokeWidth > 0 {
				page.SetStrokeColor(color.DeviceGray(gray(s.stroke, float64(s.stroke.A)/255)))
				page.SetLineWidth(s.strokeWidth)
				addRings(rings)
				page.Stroke()
			}
		}
	}

	return page.Close()
}

// apply maps p through the affine transformation m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// gray converts c, blended onto white with the given opacity, to a PDF gray
// level.
func gray(c imgcolor.Color, opacity float64) float64 {
	col, _ := colorful.MakeColor(opaque(c))
	col = colorful.Color{R: 1, G: 1, B: 1}.BlendRgb(col, max(0, min(1, opacity)))
	return 0.299*col.R + 0.587*col.G + 0.114*col.B
}

// opaque drops the alpha channel of c.
func opaque(c imgcolor.Color) imgcolor.Color {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	n.A = 255
	return n
}
