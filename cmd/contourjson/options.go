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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/contour"
)

// options holds the parsed command line.
type options struct {
	in, out  string
	png, pdf string
	summary  bool
	cfg      contour.Config
}

// parseOptions parses the command line arguments.  Flags which are not
// given take their default from the CONTOUR_* environment variables.
func parseOptions(args []string, getenv func(string) string, stderr io.Writer) (*options, error) {
	opt := &options{cfg: contour.DefaultConfig()}
	cfg := &opt.cfg

	env := func(name, def string) string {
		if v := getenv(name); v != "" {
			return v
		}
		return def
	}

	fs := flag.NewFlagSet("contourjson", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: contourjson [flags] -in plot.json")
		fs.PrintDefaults()
	}

	fs.StringVar(&opt.in, "in", env("CONTOUR_IN", "-"), "contour dump to read (`file`), - for stdin")
	fs.StringVar(&opt.out, "out", env("CONTOUR_OUT", "-"), "GeoJSON output (`file`), - for stdout")
	fs.StringVar(&opt.png, "png", "", "also write a PNG preview to this file")
	fs.StringVar(&opt.pdf, "pdf", "", "also write a PDF preview to this file")
	fs.BoolVar(&opt.summary, "summary", false, "print a table of the generated features")

	minAngle := fs.String("min-angle", env("CONTOUR_MIN_ANGLE", ""), "remove vertices turning by at most this many `degrees`")
	tolerance := fs.String("tolerance", env("CONTOUR_TOLERANCE", ""), "Douglas-Peucker `distance` threshold")
	ndigits := fs.Int("ndigits", contour.DefaultNDigits, "decimal digits kept in coordinates, -1 keeps all")
	fs.StringVar(&cfg.Unit, "unit", env("CONTOUR_UNIT", ""), "unit appended to feature titles")
	fs.Float64Var(&cfg.StrokeWidth, "stroke-width", contour.DefaultStrokeWidth, "stroke width property")
	fillOpacity := fs.String("fill-opacity", env("CONTOUR_FILL_OPACITY", ""), "fill opacity of bands (default 0.9)")
	fillRange := fs.String("fill-opacity-range", env("CONTOUR_FILL_OPACITY_RANGE", ""), "fill opacity range as `min,max`")
	policy := fs.String("policy", env("CONTOUR_POLICY", "multi-ring"), "band policy, multi-ring or overlap")
	props := fs.String("props", env("CONTOUR_PROPS", ""), "JSON `object` merged into the feature properties")
	transform := fs.String("transform", env("CONTOUR_TRANSFORM", ""), "affine map `a,b,c,d,e,f` applied to coordinates")
	fs.BoolVar(&cfg.StrictPaths, "strict", false, "fail on malformed paths")
	fs.BoolVar(&cfg.CheckHoles, "check-holes", false, "warn about holes outside their outer ring")
	fs.BoolVar(&cfg.BBox, "bbox", false, "add a bounding box to the collection")

	if v := getenv("CONTOUR_NDIGITS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("CONTOUR_NDIGITS: %w", err)
		}
		*ndigits = n
	}
	if v := getenv("CONTOUR_STROKE_WIDTH"); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("CONTOUR_STROKE_WIDTH: %w", err)
		}
		cfg.StrokeWidth = w
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	var err error
	if cfg.MinAngleDeg, err = optionalFloat("min-angle", *minAngle); err != nil {
		return nil, err
	}
	if cfg.Tolerance, err = optionalFloat("tolerance", *tolerance); err != nil {
		return nil, err
	}
	if cfg.FillOpacity, err = optionalFloat("fill-opacity", *fillOpacity); err != nil {
		return nil, err
	}
	if *ndigits < 0 {
		cfg.NDigits = nil
	} else {
		cfg.NDigits = ndigits
	}

	if *fillRange != "" {
		x, err := floatList("fill-opacity-range", *fillRange, 2)
		if err != nil {
			return nil, err
		}
		cfg.FillOpacityRange = &[2]float64{x[0], x[1]}
	}
	if *transform != "" {
		x, err := floatList("transform", *transform, 6)
		if err != nil {
			return nil, err
		}
		cfg.Transform = matrix.Matrix{x[0], x[1], x[2], x[3], x[4], x[5]}
	}
	if cfg.Policy, err = contour.ParsePolicy(*policy); err != nil {
		return nil, err
	}
	if *props != "" {
		if cfg.Properties, err = parseProperties(*props); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

func optionalFloat(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("-%s: %w", name, err)
	}
	return &x, nil
}

// floatList parses exactly n comma separated numbers.
func floatList(name, s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("-%s: need %d comma separated numbers, got %d", name, n, len(fields))
	}
	x := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", name, err)
		}
		x[i] = v
	}
	return x, nil
}

var errNotObject = errors.New("-props: not a JSON object")

func parseProperties(s string) (map[string]any, error) {
	if !gjson.Valid(s) {
		return nil, errNotObject
	}
	m, ok := gjson.Parse(s).Value().(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return m, nil
}
