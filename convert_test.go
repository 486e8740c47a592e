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
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// closedBuffer encodes rings as one vertex buffer with explicit close codes.
func closedBuffer(rings ...[]vec.Vec2) VertexBuffer {
	var buf VertexBuffer
	for _, ring := range rings {
		n := len(ring)
		if ring[0] == ring[n-1] {
			n--
		}
		for i := range n {
			code := LineTo
			if i == 0 {
				code = MoveTo
			}
			buf.Points = append(buf.Points, ring[i])
			buf.Codes = append(buf.Codes, code)
		}
		buf.Points = append(buf.Points, vec.Vec2{})
		buf.Codes = append(buf.Codes, ClosePoly)
	}
	return buf
}

func TestContourToGeoJSON(t *testing.T) {
	lines := Isolines{
		Levels: []float64{0.5, 1.5},
		Groups: []Group{
			{
				Level: 0,
				Color: "#ff0000",
				Paths: []VertexBuffer{
					{Points: pts(0, 0, 1, 0, 2, 1)},
					{Points: pts(0, 0, 1, 1)},       // too short
					{Points: pts(3, 3, 3, 3, 3, 3)}, // a single point
				},
			},
			{
				Level: 1,
				Color: "#0000ff",
				Paths: []VertexBuffer{
					closedBuffer(square(0, 0, 2), square(5, 5, 1)),
				},
			},
		},
	}
	cfg := DefaultConfig()
	cfg.Unit = "m"

	fc, err := ContourToGeoJSON(lines, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 3 {
		t.Fatalf("got %d features, want 3", len(fc.Features))
	}

	f := fc.Features[0]
	ls, ok := f.Geometry.(orb.LineString)
	if !ok {
		t.Fatalf("geometry is %T, want orb.LineString", f.Geometry)
	}
	if len(ls) != 3 || ls[2] != (orb.Point{2, 1}) {
		t.Errorf("unexpected coordinates %v", ls)
	}
	want := map[string]any{
		"stroke":         "#ff0000",
		"stroke-width":   1.0,
		"stroke-opacity": 1.0,
		"title":          "0.50 m",
		"level-value":    0.5,
		"level-index":    0,
	}
	for k, v := range want {
		if f.Properties[k] != v {
			t.Errorf("property %s = %v, want %v", k, f.Properties[k], v)
		}
	}

	for _, f := range fc.Features[1:] {
		ls := f.Geometry.(orb.LineString)
		if ls[0] != ls[len(ls)-1] {
			t.Errorf("closed sub-path does not end at its start: %v", ls)
		}
		if f.Properties["level-index"] != 1 {
			t.Errorf("level-index = %v, want 1", f.Properties["level-index"])
		}
	}
}

func TestContourfMultiRing(t *testing.T) {
	outer := square(0, 0, 10)
	hole := Reverse(square(2, 2, 3))
	bands := Bands{
		Levels: []float64{0, 1},
		Groups: []Group{
			{Level: 0, Color: "#123456", Paths: []VertexBuffer{closedBuffer(outer, hole)}},
		},
	}
	cfg := DefaultConfig()
	cfg.Unit = "mm"

	fc, err := ContourfToGeoJSON(bands, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("got %d features, want 1", len(fc.Features))
	}
	f := fc.Features[0]
	mp, ok := f.Geometry.(orb.MultiPolygon)
	if !ok {
		t.Fatalf("geometry is %T, want orb.MultiPolygon", f.Geometry)
	}
	if len(mp) != 1 || len(mp[0]) != 2 {
		t.Fatalf("unexpected structure %v", mp)
	}
	if mp[0][0].Orientation() != orb.CCW || mp[0][1].Orientation() != orb.CW {
		t.Errorf("wrong ring orientations")
	}
	if !mp[0][0].Closed() || !mp[0][1].Closed() {
		t.Errorf("rings are not closed")
	}

	want := map[string]any{
		"stroke":         "#123456",
		"fill":           "#123456",
		"stroke-width":   1.0,
		"stroke-opacity": 1.0,
		"fill-opacity":   0.9,
		"title":          "0.00-1.00 mm",
	}
	for k, v := range want {
		if f.Properties[k] != v {
			t.Errorf("property %s = %v, want %v", k, f.Properties[k], v)
		}
	}
}

func TestContourfOverlap(t *testing.T) {
	bands := Bands{
		Levels: []float64{0, 1, 2},
		Groups: []Group{
			{Level: 0, Color: "#000000", Paths: []VertexBuffer{
				closedBuffer(square(0, 0, 10), Reverse(square(2, 2, 3))),
			}},
			{Level: 1, Color: "#ffffff", Paths: []VertexBuffer{
				closedBuffer(square(2, 2, 3)),
			}},
		},
	}
	cfg := DefaultConfig()
	cfg.Policy = PolicyOverlap

	fc, err := ContourfToGeoJSON(bands, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 3 {
		t.Fatalf("got %d features, want 3", len(fc.Features))
	}
	for i, f := range fc.Features {
		p, ok := f.Geometry.(orb.Polygon)
		if !ok || len(p) != 1 {
			t.Errorf("feature %d: want a polygon without holes, got %v", i, f.Geometry)
		}
	}
	if fc.Features[2].Properties["title"] != "1.00-2.00 " {
		t.Errorf("title = %q", fc.Features[2].Properties["title"])
	}
}

func TestContourfEmptyBand(t *testing.T) {
	bands := Bands{
		Levels: []float64{0, 1, 2},
		Groups: []Group{
			{Level: 0, Color: "#000000"},
			{Level: 1, Color: "#ffffff", Paths: []VertexBuffer{
				{Points: pts(0, 0, 1, 1), Codes: []Code{MoveTo, LineTo}},
			}},
		},
	}
	for _, policy := range []Policy{PolicyMultiRing, PolicyOverlap} {
		cfg := DefaultConfig()
		cfg.Policy = policy
		fc, err := ContourfToGeoJSON(bands, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if len(fc.Features) != 0 {
			t.Errorf("%s: got %d features, want 0", policy, len(fc.Features))
		}
	}
}

func TestContourfShapeMismatch(t *testing.T) {
	bands := Bands{
		Levels: []float64{0, 1},
		Groups: []Group{
			{Level: 0, Color: "#000000"},
			{Level: 1, Color: "#ffffff"},
		},
	}
	_, err := ContourfToGeoJSON(bands, DefaultConfig())
	var mismatch *ShapeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *ShapeMismatchError, got %v", err)
	}
	if mismatch.Group != 1 || mismatch.Labels != 1 {
		t.Errorf("unexpected error fields %+v", mismatch)
	}

	bands.Extend = ExtendMax
	if _, err := ContourfToGeoJSON(bands, DefaultConfig()); err != nil {
		t.Errorf("unexpected error with extend=max: %v", err)
	}
}

func TestContourfMalformed(t *testing.T) {
	bad := closedBuffer(square(0, 0, 4), square(10, 10, 4))
	bad.Codes[len(bad.Codes)-2] = 42

	bands := Bands{
		Levels: []float64{0, 1},
		Groups: []Group{{Level: 0, Color: "#00ff00", Paths: []VertexBuffer{bad}}},
	}

	fc, err := ContourfToGeoJSON(bands, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("got %d features, want 1", len(fc.Features))
	}
	if mp := fc.Features[0].Geometry.(orb.MultiPolygon); len(mp) != 1 {
		t.Errorf("got %d polygons, want the one before the error", len(mp))
	}

	cfg := DefaultConfig()
	cfg.StrictPaths = true
	_, err = ContourfToGeoJSON(bands, cfg)
	var malformed *MalformedPathError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedPathError, got %v", err)
	}
}

func TestContourfGrouping(t *testing.T) {
	bands := Bands{
		Levels: []float64{0, 1, 2},
		Groups: []Group{
			{Level: 0, Color: "#aa0000", Paths: []VertexBuffer{closedBuffer(square(0, 0, 1))}},
			{Level: 1, Color: "#00aa00", Paths: []VertexBuffer{closedBuffer(square(5, 0, 1))}},
			{Level: 0, Color: "#aa0000", Paths: []VertexBuffer{closedBuffer(square(10, 0, 1))}},
		},
	}
	fc, err := ContourfToGeoJSON(bands, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("got %d features, want 2", len(fc.Features))
	}
	if mp := fc.Features[0].Geometry.(orb.MultiPolygon); len(mp) != 2 {
		t.Errorf("first feature has %d polygons, want 2", len(mp))
	}
	if fc.Features[0].Properties["fill"] != "#aa0000" || fc.Features[1].Properties["fill"] != "#00aa00" {
		t.Errorf("features not in first-seen order")
	}
}

func TestContourfOpacityRange(t *testing.T) {
	levels := []float64{0, 1, 2, 3}
	var groups []Group
	for i := range 3 {
		groups = append(groups, Group{
			Level: i,
			Color: "#808080",
			Paths: []VertexBuffer{closedBuffer(square(float64(3*i), 0, 2))},
		})
	}
	cfg := DefaultConfig()
	cfg.FillOpacityRange = &[2]float64{0.2, 0.8}

	fc, err := ContourfToGeoJSON(Bands{Levels: levels, Groups: groups}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.2, 0.35, 0.5}
	if len(fc.Features) != len(want) {
		t.Fatalf("got %d features, want %d", len(fc.Features), len(want))
	}
	for i, f := range fc.Features {
		got := f.Properties["fill-opacity"].(float64)
		if math.Abs(got-want[i]) > 1e-12 {
			t.Errorf("feature %d: fill-opacity %g, want %g", i, got, want[i])
		}
	}
}

func TestPropertyMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Properties = map[string]any{"stroke": "#000000", "source": "test"}

	fc, err := ContourToGeoJSON(Isolines{
		Levels: []float64{1},
		Groups: []Group{{Level: 0, Color: "#ff0000", Paths: []VertexBuffer{{Points: pts(0, 0, 1, 0, 1, 1)}}}},
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	props := fc.Features[0].Properties
	if props["stroke"] != "#000000" || props["source"] != "test" {
		t.Errorf("extra properties not merged: %v", props)
	}
	if props["title"] != "1.00 " {
		t.Errorf("title = %q", props["title"])
	}
}

func TestSimplifyAndRound(t *testing.T) {
	cfg := DefaultConfig()
	angle := 170.0
	ndigits := 1
	cfg.MinAngleDeg = &angle
	cfg.NDigits = &ndigits

	fc, err := ContourToGeoJSON(Isolines{
		Levels: []float64{0},
		Groups: []Group{{Level: 0, Color: "#000000", Paths: []VertexBuffer{
			{Points: pts(0, 0, 1, 0, 1, 1, 2, 1, 3.14159, 1)},
		}}},
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	ls := fc.Features[0].Geometry.(orb.LineString)
	want := orb.LineString{{0, 0}, {3.1, 1}}
	if !ls.Equal(want) {
		t.Errorf("got %v, want %v", ls, want)
	}
}

func TestTransformAndBBox(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transform = matrix.Matrix{2, 0, 0, 3, 10, 20}
	cfg.BBox = true

	fc, err := ContourfToGeoJSON(Bands{
		Levels: []float64{0, 1},
		Groups: []Group{{Level: 0, Color: "#000000", Paths: []VertexBuffer{closedBuffer(square(0, 0, 1))}}},
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	mp := fc.Features[0].Geometry.(orb.MultiPolygon)
	b := mp.Bound()
	if b.Min != (orb.Point{10, 20}) || b.Max != (orb.Point{12, 23}) {
		t.Errorf("transformed bound %v", b)
	}
	if !fc.BBox.Valid() || fc.BBox.Bound() != b {
		t.Errorf("collection bbox %v, want %v", fc.BBox, b)
	}
}

func TestInvalidConfig(t *testing.T) {
	negative := -1.0
	digits := 20
	opacity := 0.5
	cases := map[string]func(*Config){
		"angle":     func(c *Config) { c.MinAngleDeg = &negative },
		"tolerance": func(c *Config) { c.Tolerance = &negative },
		"ndigits":   func(c *Config) { c.NDigits = &digits },
		"stroke":    func(c *Config) { c.StrokeWidth = -1 },
		"opacity": func(c *Config) {
			c.FillOpacity = &opacity
			c.FillOpacityRange = &[2]float64{0, 1}
		},
		"range":  func(c *Config) { c.FillOpacityRange = &[2]float64{0, 2} },
		"policy": func(c *Config) { c.Policy = 7 },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			modify(&cfg)
			_, err := ContourfToGeoJSON(Bands{}, cfg)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected *ConfigError, got %v", err)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicyMultiRing, PolicyOverlap} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %s, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePolicy("union"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}

func TestZeroPolicyAndStrokeWidth(t *testing.T) {
	var cfg Config
	if cfg.Policy != PolicyMultiRing {
		t.Fatalf("zero policy is %s", cfg.Policy)
	}
	cfg.StrokeWidth = 0.25

	sq := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	bands := Bands{
		Levels: []float64{0, 1},
		Groups: []Group{{Level: 0, Color: "#000000", Paths: []VertexBuffer{closedBuffer(sq)}}},
	}
	fc, err := ContourfToGeoJSON(bands, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("got %d features", len(fc.Features))
	}
	f := fc.Features[0]
	if _, ok := f.Geometry.(orb.MultiPolygon); !ok {
		t.Errorf("geometry is %T, want orb.MultiPolygon", f.Geometry)
	}
	if w := f.Properties["stroke-width"]; w != 0.25 {
		t.Errorf("stroke-width = %v", w)
	}

	lines := Isolines{
		Levels: []float64{1},
		Groups: []Group{{Level: 0, Color: "#000000", Paths: []VertexBuffer{{Points: sq}}}},
	}
	fc, err = ContourToGeoJSON(lines, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if w := fc.Features[0].Properties["stroke-width"]; w != 0.25 {
		t.Errorf("line stroke-width = %v", w)
	}
}

func TestEmptyInput(t *testing.T) {
	fc, err := ContourfToGeoJSON(Bands{}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 0 {
		t.Errorf("unexpected collection %+v", fc)
	}
}

// TestContourfRoundingMergesAnchor checks that an outer ring keeps its hole
// when rounding merges the leftmost vertex with its neighbour.
func TestContourfRoundingMergesAnchor(t *testing.T) {
	outer := pts(0, 0, 0.001, 0.001, 10, 0, 10, 10, 0, 10)
	hole := pts(3, 3, 3, 7, 7, 7, 7, 3)
	bands := Bands{
		Levels: []float64{0, 1},
		Groups: []Group{
			{Level: 0, Color: "#123456", Paths: []VertexBuffer{closedBuffer(outer, hole)}},
		},
	}
	cfg := DefaultConfig()
	ndigits := 2
	cfg.NDigits = &ndigits

	fc, err := ContourfToGeoJSON(bands, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("got %d features, want 1", len(fc.Features))
	}
	mp, ok := fc.Features[0].Geometry.(orb.MultiPolygon)
	if !ok {
		t.Fatalf("geometry is %T, want orb.MultiPolygon", fc.Features[0].Geometry)
	}
	if len(mp) != 1 || len(mp[0]) != 2 {
		t.Fatalf("got %d polygons, want one polygon with a hole", len(mp))
	}
	if mp[0][0][0] != mp[0][0][1] {
		t.Fatalf("rounding did not merge the first two vertices: %v", mp[0][0])
	}
	if o := mp[0][0].Orientation(); o != orb.CCW {
		t.Errorf("outer ring orientation %d, want CCW", o)
	}
	if o := mp[0][1].Orientation(); o != orb.CW {
		t.Errorf("hole orientation %d, want CW", o)
	}
}
