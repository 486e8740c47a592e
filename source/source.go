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

// Package source reads contour plots dumped by a contouring engine.
//
// A dump is a JSON document of the form
//
//	{
//	  "type": "contourf",
//	  "levels": [0, 1, 2],
//	  "extend": "neither",
//	  "collections": [
//	    {
//	      "level": 0,
//	      "color": "#1f77b4",
//	      "paths": [
//	        {"vertices": [[0, 0], [1, 0], [1, 1], [0, 0]], "codes": [1, 2, 2, 79]}
//	      ]
//	    }
//	  ]
//	}
//
// The type is "contour" for line plots and "contourf" for filled plots.
// "extend" is only used for filled plots.  Colors are given either as hex
// strings or as arrays of three or four components in the range [0, 1].
// If a collection has no "level" member, its position in the list is used,
// and the number of such collections must match the number of levels (line
// plots) or band labels (filled plots).  Without "codes", a path is a single
// open polyline.
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// Kind distinguishes line plots from filled plots.
type Kind int

const (
	Lines Kind = iota
	Filled
)

func (k Kind) String() string {
	if k == Filled {
		return "contourf"
	}
	return "contour"
}

// Dump is a decoded contour plot.
type Dump struct {
	Kind   Kind
	Levels []float64
	Extend contour.Extend
	Groups []contour.Group
}

// Isolines returns the dump as input for contour.ContourToGeoJSON.
func (d *Dump) Isolines() contour.Isolines {
	return contour.Isolines{Levels: d.Levels, Groups: d.Groups}
}

// Bands returns the dump as input for contour.ContourfToGeoJSON.
func (d *Dump) Bands() contour.Bands {
	return contour.Bands{Levels: d.Levels, Extend: d.Extend, Groups: d.Groups}
}

// Labels returns the number of labels the groups of d refer to.
func (d *Dump) Labels() int {
	if d.Kind == Filled {
		return len(contour.BandLabels(d.Levels, d.Extend))
	}
	return len(d.Levels)
}

// FormatError reports a dump which does not have the expected structure.
type FormatError struct {
	Path   string // gjson path of the offending member
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("contour dump: %s: %s", e.Path, e.Reason)
}

// Decode parses a contour dump.
func Decode(data []byte) (*Dump, error) {
	if !gjson.ValidBytes(data) {
		return nil, &FormatError{Path: "@this", Reason: "invalid JSON"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &FormatError{Path: "@this", Reason: "not an object"}
	}

	d := &Dump{}
	switch typ := root.Get("type").String(); typ {
	case "contour":
		d.Kind = Lines
	case "contourf":
		d.Kind = Filled
	default:
		return nil, &FormatError{Path: "type", Reason: fmt.Sprintf("unknown plot type %q", typ)}
	}

	levels := root.Get("levels")
	if !levels.IsArray() {
		return nil, &FormatError{Path: "levels", Reason: "missing or not an array"}
	}
	for i, l := range levels.Array() {
		if l.Type != gjson.Number {
			return nil, &FormatError{Path: fmt.Sprintf("levels.%d", i), Reason: "not a number"}
		}
		if i > 0 && l.Float() <= d.Levels[i-1] {
			return nil, &FormatError{Path: fmt.Sprintf("levels.%d", i), Reason: "levels are not strictly ascending"}
		}
		d.Levels = append(d.Levels, l.Float())
	}

	if ext := root.Get("extend"); ext.Exists() && d.Kind == Filled {
		e, err := contour.ParseExtend(ext.String())
		if err != nil {
			return nil, &FormatError{Path: "extend", Reason: err.Error()}
		}
		d.Extend = e
	}

	collections := root.Get("collections")
	if collections.Exists() && !collections.IsArray() {
		return nil, &FormatError{Path: "collections", Reason: "not an array"}
	}
	positional := 0
	for i, c := range collections.Array() {
		g, explicit, err := decodeGroup(c, i)
		if err != nil {
			return nil, err
		}
		if !explicit {
			positional++
		}
		d.Groups = append(d.Groups, g)
	}
	if positional > 0 && positional != d.Labels() {
		return nil, &contour.ShapeMismatchError{Labels: d.Labels(), Groups: positional, Group: -1}
	}
	return d, nil
}

// Read reads and decodes a contour dump from r.
func Read(r io.Reader) (*Dump, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading contour dump: %w", err)
	}
	return Decode(data)
}

// ReadFile reads and decodes the named contour dump.
func ReadFile(name string) (*Dump, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading contour dump: %w", err)
	}
	return Decode(data)
}

func decodeGroup(c gjson.Result, index int) (contour.Group, bool, error) {
	prefix := fmt.Sprintf("collections.%d", index)
	g := contour.Group{Level: index}

	explicit := false
	if level := c.Get("level"); level.Exists() {
		if level.Type != gjson.Number || level.Float() != float64(int(level.Int())) {
			return g, false, &FormatError{Path: prefix + ".level", Reason: "not an integer"}
		}
		g.Level = int(level.Int())
		explicit = true
	}

	color, err := decodeColor(c.Get("color"))
	if err != nil {
		return g, false, &FormatError{Path: prefix + ".color", Reason: err.Error()}
	}
	g.Color = color

	for j, p := range c.Get("paths").Array() {
		buf, err := decodePath(p, fmt.Sprintf("%s.paths.%d", prefix, j))
		if err != nil {
			return g, false, err
		}
		g.Paths = append(g.Paths, buf)
	}
	return g, explicit, nil
}

// defaultColor is used for collections without a color.
const defaultColor = "#000000"

func decodeColor(c gjson.Result) (string, error) {
	switch {
	case !c.Exists():
		return defaultColor, nil
	case c.Type == gjson.String:
		return contour.NormalizeColor(c.String())
	case c.IsArray():
		comp := c.Array()
		if len(comp) != 3 && len(comp) != 4 {
			return "", fmt.Errorf("%d color components", len(comp))
		}
		var rgb [3]float64
		for i := range rgb {
			if comp[i].Type != gjson.Number {
				return "", fmt.Errorf("component %d is not a number", i)
			}
			rgb[i] = comp[i].Float()
		}
		return contour.HexColor(rgb[0], rgb[1], rgb[2]), nil
	}
	return "", fmt.Errorf("unsupported color %s", c.Raw)
}

func decodePath(p gjson.Result, prefix string) (contour.VertexBuffer, error) {
	var buf contour.VertexBuffer

	vertices := p.Get("vertices")
	if !vertices.IsArray() {
		return buf, &FormatError{Path: prefix + ".vertices", Reason: "missing or not an array"}
	}
	for k, v := range vertices.Array() {
		xy := v.Array()
		if len(xy) != 2 || xy[0].Type != gjson.Number || xy[1].Type != gjson.Number {
			return buf, &FormatError{
				Path:   fmt.Sprintf("%s.vertices.%d", prefix, k),
				Reason: "not an [x, y] pair",
			}
		}
		buf.Points = append(buf.Points, vec.Vec2{X: xy[0].Float(), Y: xy[1].Float()})
	}

	codes := p.Get("codes")
	if !codes.Exists() || codes.Type == gjson.Null {
		return buf, nil
	}
	if !codes.IsArray() {
		return buf, &FormatError{Path: prefix + ".codes", Reason: "not an array"}
	}
	buf.Codes = make([]contour.Code, 0, len(buf.Points))
	for k, c := range codes.Array() {
		n := c.Int()
		if c.Type != gjson.Number || n < 0 || n > 255 {
			return buf, &FormatError{Path: fmt.Sprintf("%s.codes.%d", prefix, k), Reason: "not a path code"}
		}
		buf.Codes = append(buf.Codes, contour.Code(n))
	}
	return buf, nil
}
