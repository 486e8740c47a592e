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
	"bytes"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/contour"
)

const bandsDump = `{
  "type": "contourf",
  "levels": [0, 1],
  "extend": "max",
  "collections": [
    {"color": "#1f77b4", "paths": [
      {"vertices": [[0,0],[4,0],[4,4],[0,4],[0,0],[1,1],[1,3],[3,3],[3,1],[1,1]],
       "codes": [1,2,2,2,79,1,2,2,2,79]}
    ]},
    {"color": "#d62728", "paths": [
      {"vertices": [[5,0],[6,0],[6,1],[5,1]], "codes": [1,2,2,2]}
    ]}
  ]
}`

func env(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestParseOptionsDefaults(t *testing.T) {
	opt, err := parseOptions(nil, env(nil), io.Discard)
	require.NoError(t, err)
	require.Equal(t, "-", opt.in)
	require.Equal(t, "-", opt.out)
	require.Equal(t, contour.DefaultConfig(), opt.cfg)
}

func TestParseOptionsFlags(t *testing.T) {
	args := []string{
		"-in", "plot.json",
		"-min-angle", "5",
		"-tolerance", "0.01",
		"-ndigits", "-1",
		"-fill-opacity-range", "0.2, 0.8",
		"-policy", "overlap",
		"-props", `{"source":"model","run":3}`,
		"-transform", "2,0,0,2,1,1",
		"-strict", "-bbox",
	}
	opt, err := parseOptions(args, env(nil), io.Discard)
	require.NoError(t, err)

	cfg := opt.cfg
	require.Equal(t, "plot.json", opt.in)
	require.Equal(t, 5.0, *cfg.MinAngleDeg)
	require.Equal(t, 0.01, *cfg.Tolerance)
	require.Nil(t, cfg.NDigits)
	require.Equal(t, &[2]float64{0.2, 0.8}, cfg.FillOpacityRange)
	require.Equal(t, contour.PolicyOverlap, cfg.Policy)
	require.Equal(t, map[string]any{"source": "model", "run": 3.0}, cfg.Properties)
	require.Equal(t, matrix.Matrix{2, 0, 0, 2, 1, 1}, cfg.Transform)
	require.True(t, cfg.StrictPaths)
	require.True(t, cfg.BBox)
	require.False(t, cfg.CheckHoles)
}

func TestParseOptionsEnvironment(t *testing.T) {
	vars := map[string]string{
		"CONTOUR_UNIT":         "K",
		"CONTOUR_NDIGITS":      "3",
		"CONTOUR_STROKE_WIDTH": "0.5",
		"CONTOUR_POLICY":       "overlap",
	}
	opt, err := parseOptions(nil, env(vars), io.Discard)
	require.NoError(t, err)
	require.Equal(t, "K", opt.cfg.Unit)
	require.Equal(t, 3, *opt.cfg.NDigits)
	require.Equal(t, 0.5, opt.cfg.StrokeWidth)
	require.Equal(t, contour.PolicyOverlap, opt.cfg.Policy)

	// flags take precedence
	opt, err = parseOptions([]string{"-unit", "m", "-ndigits", "1"}, env(vars), io.Discard)
	require.NoError(t, err)
	require.Equal(t, "m", opt.cfg.Unit)
	require.Equal(t, 1, *opt.cfg.NDigits)
}

func TestParseOptionsErrors(t *testing.T) {
	cases := map[string][]string{
		"bad_angle":     {"-min-angle", "steep"},
		"bad_range":     {"-fill-opacity-range", "0.5"},
		"bad_transform": {"-transform", "1,0,0,1"},
		"bad_policy":    {"-policy", "stacked"},
		"bad_props":     {"-props", "[1,2]"},
		"invalid_props": {"-props", "{"},
		"both_opacity":  {"-fill-opacity", "0.5", "-fill-opacity-range", "0,1"},
		"negative":      {"-stroke-width", "-1"},
		"extra_arg":     {"plot.json"},
		"unknown_flag":  {"-colour"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseOptions(args, env(nil), io.Discard)
			require.Error(t, err)
		})
	}

	_, err := parseOptions([]string{"-h"}, env(nil), io.Discard)
	require.True(t, errors.Is(err, flag.ErrHelp))

	_, err = parseOptions([]string{"-policy", "stacked"}, env(nil), io.Discard)
	var cfgErr *contour.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "plot.json")
	require.NoError(t, os.WriteFile(in, []byte(bandsDump), 0644))

	opt, err := parseOptions([]string{
		"-in", in,
		"-out", filepath.Join(dir, "plot.geojson"),
		"-png", filepath.Join(dir, "plot.png"),
		"-pdf", filepath.Join(dir, "plot.pdf"),
		"-unit", "mm",
		"-summary",
	}, env(nil), io.Discard)
	require.NoError(t, err)

	var stdout bytes.Buffer
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(opt, strings.NewReader(""), &stdout, io.Discard, l))

	data, err := os.ReadFile(filepath.Join(dir, "plot.geojson"))
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	require.Equal(t, "0.00-1.00 mm", fc.Features[0].Properties["title"])
	require.Equal(t, ">1.00 mm", fc.Features[1].Properties["title"])

	mp, ok := fc.Features[0].Geometry.(orb.MultiPolygon)
	require.True(t, ok)
	require.Len(t, mp, 1)
	require.Len(t, mp[0], 2)

	for _, name := range []string{"plot.png", "plot.pdf"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NotZero(t, info.Size())
	}

	require.Contains(t, stdout.String(), "0.00-1.00 mm")
	require.Contains(t, stdout.String(), "MultiPolygon")
}

func TestRunStdin(t *testing.T) {
	opt, err := parseOptions([]string{"-ndigits", "0"}, env(nil), io.Discard)
	require.NoError(t, err)

	var stdout bytes.Buffer
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(opt, strings.NewReader(bandsDump), &stdout, io.Discard, l))

	fc, err := contour.Unmarshal(stdout.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
}

func TestRunStdoutSummary(t *testing.T) {
	opt, err := parseOptions([]string{"-summary"}, env(nil), io.Discard)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(opt, strings.NewReader(bandsDump), &stdout, &stderr, l))

	fc, err := contour.Unmarshal(stdout.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	require.Contains(t, stderr.String(), "0.00-1.00")
	require.Contains(t, stderr.String(), "MultiPolygon")
	require.NotContains(t, stderr.String(), "FeatureCollection")
}

func TestRunMissingInput(t *testing.T) {
	opt, err := parseOptions([]string{"-in", filepath.Join(t.TempDir(), "missing.json")}, env(nil), io.Discard)
	require.NoError(t, err)

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	err = run(opt, strings.NewReader(""), io.Discard, io.Discard, l)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSummary(t *testing.T) {
	f1 := geojson.NewFeature(orb.Polygon{
		{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}},
		{{0.5, 0.5}, {0.5, 1.5}, {1.5, 1.5}, {1.5, 0.5}, {0.5, 0.5}},
	})
	f1.Properties["title"] = "0.00-1.00 "
	f1.Properties["fill"] = "#ff0000"
	f2 := geojson.NewFeature(orb.LineString{{0, 0}, {3, 4}})
	f2.Properties["title"] = "1.00 "
	fc := geojson.NewFeatureCollection()
	fc.Append(f1)
	fc.Append(f2)

	rows := summarize(fc)
	require.Len(t, rows, 2)
	require.Equal(t, summaryRow{
		title: "0.00-1.00 ", color: "#ff0000", geometry: "Polygon",
		parts: 1, points: 10, size: 3,
	}, rows[0])
	require.Equal(t, 5.0, rows[1].size)
	require.Equal(t, 2, rows[1].points)

	out := renderSummary(rows)
	require.Contains(t, out, "title")
	require.Contains(t, out, "LineString")
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	require.Contains(t, renderSummary(nil), "no features")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, env(map[string]string{"LOG_LEVEL": "warn", "LOG_FORMAT": "json"}))
	l.Info("hidden")
	l.Warn("shown", "n", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
}
