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

package testcases

import (
	"seehuhn.de/go/contour"
	"seehuhn.de/go/geom/vec"
)

var lines = []TestCase{
	{
		Name: "single_line",
		Lines: &contour.Isolines{
			Levels: []float64{0.5},
			Groups: []contour.Group{
				{Level: 0, Color: "#1f77b4", Paths: []contour.VertexBuffer{
					buffer(polyline(pt(0, 0), pt(1, 0.5), pt(2, 0.75), pt(3, 2))),
				}},
			},
		},
		Config: config(),
	},
	{
		Name: "closed_isoline",
		Lines: &contour.Isolines{
			Levels: []float64{1},
			Groups: []contour.Group{
				{Level: 0, Color: "#ff7f0e", Paths: []contour.VertexBuffer{
					buffer(circle(5, 5, 3, 24, false)),
				}},
			},
		},
		Config: config(),
	},
	{
		// two points, a repeated point and a proper line
		Name: "degenerate_skipped",
		Lines: &contour.Isolines{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#2ca02c", Paths: []contour.VertexBuffer{
					buffer(polyline(pt(0, 0), pt(1, 1))),
					{Points: []vec.Vec2{pt(2, 2), pt(2, 2), pt(2, 2)}},
				}},
				{Level: 1, Color: "#d62728", Paths: []contour.VertexBuffer{
					buffer(polyline(pt(0, 3), pt(1, 3), pt(2, 4))),
				}},
			},
		},
		Config: config(),
	},
	{
		Name: "multi_level",
		Lines: &contour.Isolines{
			Levels: []float64{-1.5, 0, 1.5, 3},
			Groups: []contour.Group{
				{Level: 0, Color: "#440154", Paths: []contour.VertexBuffer{
					buffer(circle(0, 0, 4, 16, false)),
				}},
				{Level: 1, Color: "#31688e", Paths: []contour.VertexBuffer{
					buffer(circle(0, 0, 3, 16, false)),
				}},
				{Level: 2, Color: "#35b779", Paths: []contour.VertexBuffer{
					buffer(circle(0, 0, 2, 16, false), circle(6, 0, 1, 12, false)),
				}},
				{Level: 3, Color: "#fde725", Paths: []contour.VertexBuffer{
					buffer(circle(0, 0, 1, 12, false)),
				}},
			},
		},
		Config: config(func(c *contour.Config) { c.Unit = "m" }),
	},
	{
		// control codes as written by a contour engine, without a
		// path.Path in between
		Name: "raw_codes",
		Lines: &contour.Isolines{
			Levels: []float64{2},
			Groups: []contour.Group{
				{Level: 0, Color: "#9467bd", Paths: []contour.VertexBuffer{
					{
						Points: []vec.Vec2{
							pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 0),
							pt(3, 0), pt(4, 1), pt(5, 0),
						},
						Codes: []contour.Code{
							contour.MoveTo, contour.LineTo, contour.LineTo, contour.ClosePoly,
							contour.MoveTo, contour.LineTo, contour.LineTo,
						},
					},
				}},
			},
		},
		Config: config(),
	},
}
