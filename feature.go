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

package contour

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"seehuhn.de/go/geom/vec"
)

// Round rounds x to ndigits decimal places.  Ties are rounded to even.
func Round(x float64, ndigits int) float64 {
	scale := math.Pow(10, float64(ndigits))
	r := math.RoundToEven(x*scale) / scale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return x
	}
	return r
}

func roundPoints(pts []vec.Vec2, ndigits int) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[i] = vec.Vec2{X: Round(p.X, ndigits), Y: Round(p.Y, ndigits)}
	}
	return out
}

func orbPoints(pts []vec.Vec2) []orb.Point {
	out := make([]orb.Point, len(pts))
	for i, p := range pts {
		out[i] = orb.Point{p.X, p.Y}
	}
	return out
}

func vecPoints(pts []orb.Point) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return out
}

// multiPolygon converts assembled polygons to GeoJSON coordinates.
func multiPolygon(polygons []Polygon) orb.MultiPolygon {
	mp := make(orb.MultiPolygon, 0, len(polygons))
	for _, poly := range polygons {
		p := make(orb.Polygon, 0, 1+len(poly.Holes))
		p = append(p, orb.Ring(orbPoints(poly.Outer)))
		for _, hole := range poly.Holes {
			p = append(p, orb.Ring(orbPoints(hole)))
		}
		mp = append(mp, p)
	}
	return mp
}

// opacity generates the fill opacity of consecutive filled features.
type opacity struct {
	value float64
	step  float64
}

func newOpacity(cfg *Config, numLevels int) *opacity {
	if r := cfg.FillOpacityRange; r != nil {
		o := &opacity{value: r[0]}
		if numLevels > 0 {
			o.step = (r[1] - r[0]) / float64(numLevels)
		}
		return o
	}
	if cfg.FillOpacity != nil {
		return &opacity{value: *cfg.FillOpacity}
	}
	return &opacity{value: DefaultFillOpacity}
}

func (o *opacity) next() {
	o.value += o.step
}

// lineProperties returns the properties of an isoline feature.
func lineProperties(cfg *Config, color string, level float64, index int) geojson.Properties {
	props := geojson.Properties{
		"stroke":         color,
		"stroke-width":   cfg.StrokeWidth,
		"stroke-opacity": 1.0,
		"title":          LineTitle(level, cfg.Unit),
		"level-value":    levelValue(level),
		"level-index":    index,
	}
	return mergeProperties(props, cfg.Properties)
}

// fillProperties returns the properties of a filled contour feature.
func fillProperties(cfg *Config, color string, fillOpacity float64, label string) geojson.Properties {
	props := geojson.Properties{
		"stroke":         color,
		"stroke-width":   cfg.StrokeWidth,
		"stroke-opacity": 1.0,
		"fill":           color,
		"fill-opacity":   fillOpacity,
		"title":          label + " " + cfg.Unit,
	}
	return mergeProperties(props, cfg.Properties)
}

func mergeProperties(props geojson.Properties, extra map[string]any) geojson.Properties {
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func newFeature(g orb.Geometry, props geojson.Properties) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.Properties = props
	return f
}

// setBBox stores the bounding box of all features in fc.
func setBBox(fc *geojson.FeatureCollection) {
	if len(fc.Features) == 0 {
		return
	}
	b := fc.Features[0].Geometry.Bound()
	for _, f := range fc.Features[1:] {
		b = b.Union(f.Geometry.Bound())
	}
	fc.BBox = geojson.NewBBox(b)
}
