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
)

var bands = []TestCase{
	{
		Name: "single_square",
		Bands: &contour.Bands{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#1f77b4", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 10, 10)),
				}},
			},
		},
		Config: config(),
	},
	{
		Name: "square_with_hole",
		Bands: &contour.Bands{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#ff7f0e", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 10, 10), rectangleCW(3, 3, 7, 7)),
				}},
			},
		},
		Config: config(),
	},
	{
		// two islands, the second one with two holes
		Name: "two_islands",
		Bands: &contour.Bands{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#2ca02c", Paths: []contour.VertexBuffer{
					buffer(
						rectangle(0, 0, 4, 4),
						rectangle(6, 0, 16, 4),
						rectangleCW(7, 1, 9, 3),
						rectangleCW(11, 1, 13, 3),
					),
				}},
			},
		},
		Config: config(),
	},
	{
		// outer rings given clockwise, holes counter-clockwise
		Name: "cw_outer",
		Bands: &contour.Bands{
			Levels: []float64{0, 1},
			Groups: []contour.Group{
				{Level: 0, Color: "#d62728", Paths: []contour.VertexBuffer{
					buffer(rectangleCW(0, 0, 10, 10), rectangle(2, 2, 4, 4)),
				}},
			},
		},
		Config: config(),
	},
	{
		Name: "concentric_bands",
		Bands: &contour.Bands{
			Levels: []float64{0, 1, 2, 3},
			Groups: []contour.Group{
				{Level: 0, Color: "#440154", Paths: []contour.VertexBuffer{
					buffer(circle(0, 0, 9, 32, false), circle(0, 0, 6, 32, true)),
				}},
				{Level: 1, Color: "#21918c", Paths: []contour.VertexBuffer{
					buffer(circle(0, 0, 6, 32, false), circle(0, 0, 3, 32, true)),
				}},
				{Level: 2, Color: "#fde725", Paths: []contour.VertexBuffer{
					buffer(circle(0, 0, 3, 32, false)),
				}},
			},
		},
		Config: config(),
	},
	{
		// the middle band has no paths at all, the last one only a
		// degenerate ring
		Name: "empty_band",
		Bands: &contour.Bands{
			Levels: []float64{0, 1, 2, 3},
			Groups: []contour.Group{
				{Level: 0, Color: "#440154", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 2, 2)),
				}},
				{Level: 1, Color: "#21918c"},
				{Level: 2, Color: "#fde725", Paths: []contour.VertexBuffer{
					buffer(polyline(pt(5, 5), pt(6, 6))),
				}},
			},
		},
		Config: config(),
	},
}

var extend = []TestCase{
	{
		Name: "extend_min",
		Bands: &contour.Bands{
			Levels: []float64{0, 10},
			Extend: contour.ExtendMin,
			Groups: []contour.Group{
				{Level: 0, Color: "#0000ff", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 1, 1)),
				}},
				{Level: 1, Color: "#00ff00", Paths: []contour.VertexBuffer{
					buffer(rectangle(1, 0, 2, 1)),
				}},
			},
		},
		Config: config(),
	},
	{
		Name: "extend_both",
		Bands: &contour.Bands{
			Levels: []float64{-5, 0, 5},
			Extend: contour.ExtendBoth,
			Groups: []contour.Group{
				{Level: 0, Color: "#3b4cc0", Paths: []contour.VertexBuffer{
					buffer(rectangle(0, 0, 1, 4)),
				}},
				{Level: 1, Color: "#8db0fe", Paths: []contour.VertexBuffer{
					buffer(rectangle(1, 0, 2, 4)),
				}},
				{Level: 2, Color: "#f49a7b", Paths: []contour.VertexBuffer{
					buffer(rectangle(2, 0, 3, 4)),
				}},
				{Level: 3, Color: "#b40426", Paths: []contour.VertexBuffer{
					buffer(rectangle(3, 0, 4, 4)),
				}},
			},
		},
		Config: config(func(c *contour.Config) { c.Unit = "°C" }),
	},
}
