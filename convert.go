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
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Group holds the paths the contour engine produced for one level.
type Group struct {
	// Level is the index of the level label this group belongs to.
	Level int

	// Color is the display color in "#rrggbb" form.
	Color string

	// Paths are the raw paths of the group.  For filled contours, every
	// path is one set of rings: outer rings, each followed by its holes.
	Paths []VertexBuffer
}

// Isolines is the output of a line contour plot.
type Isolines struct {
	Levels []float64
	Groups []Group
}

// Bands is the output of a filled contour plot.
type Bands struct {
	Levels []float64
	Extend Extend
	Groups []Group
}

// Labels returns the band labels for b.
func (b *Bands) Labels() []string {
	return BandLabels(b.Levels, b.Extend)
}

// converter holds the per-call state of a conversion.
type converter struct {
	cfg       Config
	ctm       matrix.Matrix
	transform bool
	dp        *simplify.DouglasPeuckerSimplifier
	log       *slog.Logger
}

func newConverter(cfg Config) (*converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &converter{cfg: cfg, log: Logger()}
	c.ctm, c.transform = cfg.transform()
	if cfg.Tolerance != nil {
		c.dp = simplify.DouglasPeucker(*cfg.Tolerance)
	}
	return c, nil
}

// subPaths decodes one path.  Sub-paths decoded before a malformed command
// are kept, unless StrictPaths is set.
func (c *converter) subPaths(buf VertexBuffer, group, index int) ([]SubPath, error) {
	var out []SubPath
	for sp, err := range Decompose(buf) {
		if err != nil {
			if c.cfg.StrictPaths {
				return nil, fmt.Errorf("group %d, path %d: %w", group, index, err)
			}
			c.log.Warn("skipping malformed path",
				"group", group, "path", index, "err", err)
			break
		}
		out = append(out, sp)
	}
	return out, nil
}

// prepare maps points to output coordinates, simplifies and rounds them.
func (c *converter) prepare(pts []vec.Vec2) []vec.Vec2 {
	if c.transform {
		m := c.ctm
		out := make([]vec.Vec2, len(pts))
		for i, p := range pts {
			out[i] = vec.Vec2{
				X: m[0]*p.X + m[2]*p.Y + m[4],
				Y: m[1]*p.X + m[3]*p.Y + m[5],
			}
		}
		pts = out
	}
	if c.cfg.MinAngleDeg != nil && len(pts) >= 3 {
		pts = SimplifyAngle(pts, *c.cfg.MinAngleDeg)
	}
	if c.dp != nil && len(pts) >= 3 {
		ls := orb.LineString(orbPoints(pts))
		if reduced, ok := c.dp.Simplify(ls).(orb.LineString); ok {
			pts = vecPoints(reduced)
		}
	}
	if c.cfg.NDigits != nil {
		pts = roundPoints(pts, *c.cfg.NDigits)
	}
	return pts
}

// ring prepares a closed ring.  The second return value is false for rings
// too small to enclose an area.
func (c *converter) ring(sp SubPath) ([]vec.Vec2, bool) {
	pts := sp.Points
	if len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	if len(pts) >= 3 {
		pts = c.prepare(pts)
	}
	if len(pts) < 4 {
		return nil, false
	}
	return pts, true
}

// ContourToGeoJSON converts isolines to a collection of LineString features,
// one feature per sub-path.
func ContourToGeoJSON(lines Isolines, cfg Config) (*geojson.FeatureCollection, error) {
	c, err := newConverter(cfg)
	if err != nil {
		return nil, err
	}
	if err := checkGroups(lines.Groups, len(lines.Levels)); err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for gi, group := range lines.Groups {
		level := lines.Levels[group.Level]
		for pi, buf := range group.Paths {
			subPaths, err := c.subPaths(buf, gi, pi)
			if err != nil {
				return nil, err
			}
			for _, sp := range subPaths {
				if len(sp.Points) < 3 || allEqual(sp.Points) {
					c.log.Debug("skipping degenerate line",
						"group", gi, "path", pi, "points", len(sp.Points))
					continue
				}
				pts := c.prepare(sp.Points)
				props := lineProperties(&c.cfg, group.Color, level, group.Level)
				fc.Append(newFeature(orb.LineString(orbPoints(pts)), props))
			}
		}
	}

	if c.cfg.BBox {
		setBBox(fc)
	}
	return fc, nil
}

// ContourfToGeoJSON converts filled contour bands to a collection of
// polygon features.
//
// With PolicyMultiRing, the rings of all groups with the same level and color
// are combined into one MultiPolygon feature.  With PolicyOverlap, every ring
// becomes a Polygon feature of its own.  Groups without usable rings produce
// no features.
func ContourfToGeoJSON(bands Bands, cfg Config) (*geojson.FeatureCollection, error) {
	c, err := newConverter(cfg)
	if err != nil {
		return nil, err
	}
	labels := bands.Labels()
	if err := checkGroups(bands.Groups, len(labels)); err != nil {
		return nil, err
	}

	var fc *geojson.FeatureCollection
	switch c.cfg.Policy {
	case PolicyOverlap:
		fc, err = c.overlap(bands, labels)
	default:
		fc, err = c.multiRing(bands, labels)
	}
	if err != nil {
		return nil, err
	}

	if c.cfg.BBox {
		setBBox(fc)
	}
	return fc, nil
}

// groupRings decodes all rings of one path of a filled contour group.
func (c *converter) groupRings(buf VertexBuffer, group, index int) ([][]vec.Vec2, error) {
	subPaths, err := c.subPaths(buf, group, index)
	if err != nil {
		return nil, err
	}
	var rings [][]vec.Vec2
	for _, sp := range subPaths {
		ring, ok := c.ring(sp)
		if !ok {
			c.log.Debug("skipping degenerate ring",
				"group", group, "path", index, "points", len(sp.Points))
			continue
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

func (c *converter) overlap(bands Bands, labels []string) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	fill := newOpacity(&c.cfg, len(bands.Levels))
	for gi, group := range bands.Groups {
		emitted := false
		for pi, buf := range group.Paths {
			rings, err := c.groupRings(buf, gi, pi)
			if err != nil {
				return nil, err
			}
			for _, ring := range rings {
				props := fillProperties(&c.cfg, group.Color, fill.value, labels[group.Level])
				fc.Append(newFeature(orb.Polygon{orb.Ring(orbPoints(ring))}, props))
				emitted = true
			}
		}
		if emitted {
			fill.next()
		} else {
			c.log.Debug("band without rings", "group", gi, "label", labels[group.Level])
		}
	}
	return fc, nil
}

func (c *converter) multiRing(bands Bands, labels []string) (*geojson.FeatureCollection, error) {
	groups := newRingGroups()
	for gi, group := range bands.Groups {
		key := groupKey{level: group.Level, color: group.Color}
		added := 0
		for pi, buf := range group.Paths {
			rings, err := c.groupRings(buf, gi, pi)
			if err != nil {
				return nil, err
			}
			polygons := AssembleRings(rings)
			groups.add(key, polygons)
			added += len(polygons)
		}
		if added == 0 {
			c.log.Debug("band without rings", "group", gi, "label", labels[group.Level])
		}
	}

	fc := geojson.NewFeatureCollection()
	fill := newOpacity(&c.cfg, len(bands.Levels))
	for _, g := range groups.groups {
		label := labels[g.key.level]
		if c.cfg.CheckHoles {
			for _, p := range checkHoles(g.polygons) {
				c.log.Warn("hole outside its outer ring",
					"label", label, "polygon", p.polygon, "hole", p.hole,
					"candidates", p.candidates)
			}
		}
		props := fillProperties(&c.cfg, g.key.color, fill.value, label)
		fc.Append(newFeature(multiPolygon(g.polygons), props))
		fill.next()
	}
	return fc, nil
}

// checkGroups verifies that every group refers to one of n labels.
func checkGroups(groups []Group, n int) error {
	for i, g := range groups {
		if g.Level < 0 || g.Level >= n {
			return &ShapeMismatchError{Labels: n, Groups: len(groups), Group: i}
		}
	}
	return nil
}

func allEqual(pts []vec.Vec2) bool {
	for _, p := range pts[1:] {
		if p != pts[0] {
			return false
		}
	}
	return true
}
