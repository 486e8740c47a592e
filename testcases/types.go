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

// Package testcases contains synthetic contour plots used for golden file
// tests and previews.
package testcases

import (
	"math"

	"github.com/paulmach/orb/geojson"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// TestCase defines a single conversion test.
// Exactly one of Lines and Bands is set.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Lines  *contour.Isolines
	Bands  *contour.Bands
	Config contour.Config
}

// Convert runs the conversion described by tc.
func (tc TestCase) Convert() (*geojson.FeatureCollection, error) {
	if tc.Bands != nil {
		return contour.ContourfToGeoJSON(*tc.Bands, tc.Config)
	}
	return contour.ContourToGeoJSON(*tc.Lines, tc.Config)
}

// config returns the default configuration, modified by the given
// functions.
func config(modify ...func(*contour.Config)) contour.Config {
	cfg := contour.DefaultConfig()
	for _, m := range modify {
		m(&cfg)
	}
	return cfg
}

func ptr[T any](x T) *T {
	return &x
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{pt(x, y)})
}

func lineTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{pt(x, y)})
}

func closePath(yield func(path.Command, []vec.Vec2) bool) bool {
	return yield(path.CmdClose, nil)
}

// buffer converts paths into a single vertex buffer.
func buffer(paths ...path.Path) contour.VertexBuffer {
	var buf contour.VertexBuffer
	for _, p := range paths {
		b := contour.PathBuffer(p)
		buf.Points = append(buf.Points, b.Points...)
		buf.Codes = append(buf.Codes, b.Codes...)
	}
	return buf
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, p := range pts {
			if i == 0 {
				if !moveTo(yield, p.X, p.Y) {
					return
				}
			} else if !lineTo(yield, p.X, p.Y) {
				return
			}
		}
	}
}

// rectangle builds a counter-clockwise rectangle.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = moveTo(yield, x1, y1) &&
			lineTo(yield, x2, y1) &&
			lineTo(yield, x2, y2) &&
			lineTo(yield, x1, y2) &&
			closePath(yield)
	}
}

// rectangleCW builds a clockwise rectangle.
func rectangleCW(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = moveTo(yield, x1, y1) &&
			lineTo(yield, x1, y2) &&
			lineTo(yield, x2, y2) &&
			lineTo(yield, x2, y1) &&
			closePath(yield)
	}
}

// circle builds a closed polygon with n vertices approximating a circle.
// The direction is counter-clockwise unless cw is set.
func circle(cx, cy, r float64, n int, cw bool) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range n {
			angle := float64(i) * 2 * math.Pi / float64(n)
			if cw {
				angle = -angle
			}
			x := cx + r*math.Cos(angle)
			y := cy + r*math.Sin(angle)
			if i == 0 {
				if !moveTo(yield, x, y) {
					return
				}
			} else if !lineTo(yield, x, y) {
				return
			}
		}
		closePath(yield)
	}
}

// blob builds a closed, irregular polygon with n vertices around (cx, cy).
// The distance from the center varies between about 0.77r and 1.23r.
func blob(cx, cy, r float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range n {
			angle := float64(i) * 2 * math.Pi / float64(n)
			rho := r * (1 + 0.15*math.Cos(angle-0.3) + 0.08*math.Sin(2*angle+1.1))
			x := cx + rho*math.Cos(angle)
			y := cy + rho*math.Sin(angle)
			if i == 0 {
				if !moveTo(yield, x, y) {
					return
				}
			} else if !lineTo(yield, x, y) {
				return
			}
		}
		closePath(yield)
	}
}

// spiral builds an open spiral with 32 segments per turn.
func spiral(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8)
		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !moveTo(yield, cx+rMin, cy) {
			return
		}
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * totalAngle
			r := rMin + rGrowth*angle
			if !lineTo(yield, cx+r*math.Cos(angle), cy+r*math.Sin(angle)) {
				return
			}
		}
	}
}

// staircase builds an open path of n unit steps, starting at (x, y).
func staircase(x, y float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x, y) {
			return
		}
		for i := range n {
			sx := x + float64(i)
			sy := y + float64(i)
			if !lineTo(yield, sx+1, sy) || !lineTo(yield, sx+1, sy+1) {
				return
			}
		}
	}
}
