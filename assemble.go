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
	"github.com/dhconnelly/rtreego"
	"seehuhn.de/go/geom/vec"
)

// Polygon is an outer ring together with its holes.
type Polygon struct {
	Outer []vec.Vec2
	Holes [][]vec.Vec2
}

// AssembleRings groups the rings of one filled contour band into polygons.
//
// The orientation of the first ring is taken as the orientation of outer
// rings.  Every ring with this orientation starts a new polygon, every ring
// with the opposite orientation becomes a hole of the most recently started
// polygon.  The rings must therefore be given in the order contour engines
// emit them: each outer ring immediately followed by its holes.  Containment
// is not verified; see Config.CheckHoles for a diagnostic.
//
// Outer rings of the result are counter-clockwise, holes are clockwise.
func AssembleRings(rings [][]vec.Vec2) []Polygon {
	var polygons []Polygon
	var outer Orientation
	for i, ring := range rings {
		o := RingOrientation(ring)
		if i == 0 {
			outer = o
		}

		if o == outer {
			if o != CCW {
				ring = Reverse(ring)
			}
			polygons = append(polygons, Polygon{Outer: ring})
		} else {
			if o != CW {
				ring = Reverse(ring)
			}
			last := &polygons[len(polygons)-1]
			last.Holes = append(last.Holes, ring)
		}
	}
	return polygons
}

// groupKey identifies the rings which end up in the same MultiPolygon.
type groupKey struct {
	level int
	color string
}

type ringGroup struct {
	key      groupKey
	polygons []Polygon
}

// ringGroups collects polygons per (level, color), remembering the order in
// which the keys were first seen.
type ringGroups struct {
	index  map[groupKey]int
	groups []*ringGroup
}

func newRingGroups() *ringGroups {
	return &ringGroups{index: make(map[groupKey]int)}
}

// add appends polygons to the group for key.  Empty polygon lists do not
// create a group.
func (g *ringGroups) add(key groupKey, polygons []Polygon) {
	if len(polygons) == 0 {
		return
	}
	if i, ok := g.index[key]; ok {
		g.groups[i].polygons = append(g.groups[i].polygons, polygons...)
		return
	}
	g.index[key] = len(g.groups)
	g.groups = append(g.groups, &ringGroup{key: key, polygons: polygons})
}

// bbox is an axis-aligned bounding box.
type bbox struct {
	minX, minY, maxX, maxY float64
}

func ringBBox(ring []vec.Vec2) bbox {
	b := bbox{minX: ring[0].X, minY: ring[0].Y, maxX: ring[0].X, maxY: ring[0].Y}
	for _, p := range ring[1:] {
		b.minX = min(b.minX, p.X)
		b.minY = min(b.minY, p.Y)
		b.maxX = max(b.maxX, p.X)
		b.maxY = max(b.maxY, p.Y)
	}
	return b
}

func (b bbox) contains(c bbox) bool {
	return b.minX <= c.minX && b.minY <= c.minY && b.maxX >= c.maxX && b.maxY >= c.maxY
}

// rtreeMinLength keeps rtreego rectangles non-degenerate for horizontal or
// vertical rings.
const rtreeMinLength = 1e-9

func (b bbox) rect() rtreego.Rect {
	point := rtreego.Point{b.minX, b.minY}
	lengths := []float64{
		max(b.maxX-b.minX, rtreeMinLength),
		max(b.maxY-b.minY, rtreeMinLength),
	}
	r, _ := rtreego.NewRect(point, lengths)
	return r
}

// indexedOuter is an outer ring stored in the hole-check index.
type indexedOuter struct {
	polygon int
	box     bbox
}

// Bounds implements rtreego.Spatial.
func (o *indexedOuter) Bounds() rtreego.Rect {
	return o.box.rect()
}

// holeProblem describes a hole whose bounding box is not inside the bounding
// box of the outer ring it was attached to.
type holeProblem struct {
	polygon    int // polygon the hole was attached to
	hole       int // index of the hole within the polygon
	candidates int // number of other outer rings whose box contains the hole
}

// checkHoles compares hole placement by emission order against bounding box
// containment.  The polygons are not modified.
func checkHoles(polygons []Polygon) []holeProblem {
	tree := rtreego.NewTree(2, 25, 50)
	outers := make([]*indexedOuter, len(polygons))
	for i, poly := range polygons {
		outers[i] = &indexedOuter{polygon: i, box: ringBBox(poly.Outer)}
		tree.Insert(outers[i])
	}

	var problems []holeProblem
	for i, poly := range polygons {
		for j, hole := range poly.Holes {
			hb := ringBBox(hole)
			if outers[i].box.contains(hb) {
				continue
			}
			candidates := 0
			for _, s := range tree.SearchIntersect(hb.rect()) {
				o := s.(*indexedOuter)
				if o.polygon != i && o.box.contains(hb) {
					candidates++
				}
			}
			problems = append(problems, holeProblem{polygon: i, hole: j, candidates: candidates})
		}
	}
	return problems
}
