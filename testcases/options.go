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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/contour"
)

var simplification = []TestCase{
	{
		Name: "angle_staircase",
		Lines: &contour.Isolines{
			Levels: []float64{1},
			Groups: []contour.Group{
				{Level: 0, Color: "#000000", Paths: []contour.VertexBuffer{
					buffer(staircase(0, 0, 6)),
				}},
			},
		},
		Config: config(func(c *contour.Config) { c.MinAngleDeg = ptr(100.0) }),
	},
	{
		// a finely sampled outline, reduced by angle and distance
		Name: "dp_blob",
		Bands: &contour.Bands{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#7f7f7f", Paths: []contour.VertexBuffer{
					buffer(blob(0, 0, 10, 360)),
				}},
			},
		},
		Config: config(func(c *contour.Config) {
			c.MinAngleDeg = ptr(0.8)
			c.Tolerance = ptr(0.05)
		}),
	},
	{
		Name: "rounded",
		Lines: &contour.Isolines{
			Levels: []float64{0.25},
			Groups: []contour.Group{
				{Level: 0, Color: "#17becf", Paths: []contour.VertexBuffer{
					buffer(spiral(0, 0, 0.5, 4.1, 2)),
				}},
			},
		},
		Config: config(func(c *contour.Config) { c.NDigits = ptr(2) }),
	},
	{
		Name: "unrounded",
		Lines: &contour.Isolines{
			Levels: []float64{1.0 / 3},
			Groups: []contour.Group{
				{Level: 0, Color: "#bcbd22", Paths: []contour.VertexBuffer{
					buffer(polyline(pt(0, 0), pt(1.0/3, 2.0/3), pt(1, 1.0/7))),
				}},
			},
		},
		Config: config(func(c *contour.Config) { c.NDigits = nil }),
	},
}

var policy = []TestCase{
	{
		Name: "overlap_annulus",
		Bands: &contour.Bands{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#8c564b", Paths: []contour.VertexBuffer{
					buffer(circle(0, 0, 5, 24, false), circle(0, 0, 2, 24, true)),
				}},
			},
		},
		Config: config(func(c *contour.Config) { c.Policy = contour.PolicyOverlap }),
	},
	{
		// two groups of the same band and color end up in one feature
		Name: "grouped_colors",
		Bands: &contour.Bands{
			Levels: []float64{0, 1, 2},
			Groups: []contour.Group{
				{Level: 0, Color: "#e377c2", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 1, 1)),
				}},
				{Level: 1, Color: "#7f7f7f", Paths: []contour.VertexBuffer{
					buffer(rectangle(2, 0, 3, 1)),
				}},
				{Level: 0, Color: "#e377c2", Paths: []contour.VertexBuffer{
					buffer(rectangle(4, 0, 5, 1)),
				}},
			},
		},
		Config: config(),
	},
}

var transform = []TestCase{
	{
		// grid indices to longitude and latitude
		Name: "scaled",
		Bands: &contour.Bands{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#2ca02c", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 20, 10), rectangleCW(5, 2, 15, 8)),
				}},
			},
		},
		Config: config(func(c *contour.Config) {
			c.Transform = matrix.Matrix{0.25, 0, 0, 0.25, 5.5, 47}
		}),
	},
	{
		Name: "bbox",
		Lines: &contour.Isolines{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#1f77b4", Paths: []contour.VertexBuffer{
					buffer(polyline(pt(-3, 1), pt(0, 2), pt(4, 1))),
				}},
				{Level: 1, Color: "#ff7f0e", Paths: []contour.VertexBuffer{
					buffer(circle(0, -2, 1.5, 16, false)),
				}},
			},
		},
		Config: config(func(c *contour.Config) { c.BBox = true }),
	},
}

var properties = []TestCase{
	{
		Name: "extra_properties",
		Lines: &contour.Isolines{
			Levels: []float64{100},
			Groups: []contour.Group{
				{Level: 0, Color: "#000000", Paths: []contour.VertexBuffer{
					buffer(polyline(pt(0, 0), pt(5, 1), pt(10, 0))),
				}},
			},
		},
		Config: config(func(c *contour.Config) {
			c.StrokeWidth = 2.5
			c.Properties = map[string]any{
				"source":       "synthetic",
				"stroke-width": 0.5,
			}
		}),
	},
	{
		Name: "opacity_range",
		Bands: &contour.Bands{
			Levels: []float64{0, 1, 2, 3},
			Groups: []contour.Group{
				{Level: 0, Color: "#fee8c8", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 1, 3)),
				}},
				{Level: 1, Color: "#fdbb84", Paths: []contour.VertexBuffer{
					buffer(rectangle(1, 0, 2, 3)),
				}},
				{Level: 2, Color: "#e34a33", Paths: []contour.VertexBuffer{
					buffer(rectangle(2, 0, 3, 3)),
				}},
			},
		},
		Config: config(func(c *contour.Config) {
			c.FillOpacityRange = &[2]float64{0.3, 0.9}
		}),
	},
	{
		Name: "fixed_opacity",
		Bands: &contour.Bands{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#31a354", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 2, 1)),
				}},
			},
		},
		Config: config(func(c *contour.Config) {
			c.FillOpacity = ptr(0.4)
			c.StrokeWidth = 0
		}),
	},
	{
		Name: "unit",
		Bands: &contour.Bands{
			Levels: []float64{1013.25, 1020},
			Extend: contour.ExtendMax,
			Groups: []contour.Group{
				{Level: 0, Color: "#6baed6", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 4, 2)),
				}},
				{Level: 1, Color: "#08519c", Paths: []contour.VertexBuffer{
					buffer(rectangle(4, 0, 8, 2)),
				}},
			},
		},
		Config: config(func(c *contour.Config) { c.Unit = "hPa" }),
	},
}
